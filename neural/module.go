// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neural

import (
	"github.com/weave-ml/weave/internal/neural"
)

// Module is the contract every graph-composable unit implements.
//
// Every module must provide:
//   - Name: the unique name it was registered under
//   - InputPorts: ordered, typed input port declarations
//   - OutputPorts: ordered, typed output port declarations
//
// Modules are invoked through graph.Invoke, which performs port validation,
// type checking and provenance bookkeeping on their behalf.
type Module = neural.Module

// Trainable is implemented by modules holding learnable parameters.
type Trainable = neural.Trainable

// Parameter is a named trainable parameter held by a module.
type Parameter = neural.Parameter

// NewParameter creates a parameter with the given name and values.
func NewParameter(name string, data []float32) *Parameter {
	return neural.NewParameter(name, data)
}

// PortMap is an insertion-ordered mapping from port name to neural type.
type PortMap = neural.PortMap

// NewPortMap creates an empty port map.
func NewPortMap() *PortMap {
	return neural.NewPortMap()
}

// Args carries the keyword arguments of one invocation: port name to *Tensor,
// or to a graph being bound as a deferred input source.
type Args = neural.Args
