// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neural

import (
	"github.com/weave-ml/weave/internal/neural"
)

// Construction-time validation errors. All are synchronous and recoverable;
// a failed call never rolls back steps committed by earlier successful calls.
// Discriminate with errors.As:
//
//	var typeErr *neural.PortTypeError
//	if errors.As(err, &typeErr) {
//	    log.Println(typeErr.Expected, typeErr.Got, typeErr.Result)
//	}
type (
	// PortNameError: an argument names no declared input port.
	PortNameError = neural.PortNameError
	// PortTypeError: a tensor's type is not Same/Greater against the port.
	PortTypeError = neural.PortTypeError
	// ModeError: an illegal nesting of graph operation modes.
	ModeError = neural.ModeError
	// UnknownModuleError: a module name absent from a graph's table.
	UnknownModuleError = neural.UnknownModuleError
)
