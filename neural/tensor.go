// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neural

import (
	"github.com/weave-ml/weave/internal/neural"
)

// Tensor is a handle for a value produced by a module invocation, carrying
// provenance: producer, producer args and the growing consumer list.
type Tensor = neural.Tensor

// PortRef identifies one port of one module.
type PortRef = neural.PortRef

// Outputs is the fixed-schema result of an invocation: an insertion-ordered
// mapping from output port name to tensor handle. Single-output invocations
// read through Outputs.Tensor:
//
//	out, err := graph.Invoke(loss, neural.Args{"predictions": p, "target": y})
//	lossTensor := out.Tensor()
type Outputs = neural.Outputs
