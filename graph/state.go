// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/weave-ml/weave/internal/graph"
	"github.com/weave-ml/weave/internal/neural"
)

// AppState is the application-state facade: module registry, graph manager
// and active-graph slot.
type AppState = graph.AppState

// Manager is the graph registry plus the active-graph slot.
type Manager = graph.Manager

// StateOption configures an explicitly constructed application state.
type StateOption = graph.StateOption

// State returns the process-wide shared application state, creating it
// lazily on first call. The accessor is safe for concurrent use; construction
// against the returned state is caller-serialized.
func State() *AppState {
	return graph.State()
}

// NewState creates an independent application state for dependency
// injection:
//
//	st := graph.NewState()
//	g := graph.New(graph.WithState(st))
func NewState(opts ...StateOption) *AppState {
	return graph.NewState(opts...)
}

// WithDevice sets the compute device of a new application state.
func WithDevice(d neural.Device) StateOption {
	return graph.WithDevice(d)
}

// Invoke composes module m into the shared state's active graph: arguments
// are validated and type-checked, the step is recorded, and one provenance-
// carrying tensor handle is returned per declared output port.
func Invoke(m neural.Module, args neural.Args) (*neural.Outputs, error) {
	return graph.Invoke(m, args)
}
