// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/weave-ml/weave/internal/graph"
	"github.com/weave-ml/weave/internal/neural"
)

// Graph is an ordered recording of module invocations plus bound input and
// output port tables, itself invocable as a pseudo-module.
type Graph = graph.Graph

// Step is one recorded module invocation.
type Step = graph.Step

// BoundOutputs is a graph's ordered output binding table.
type BoundOutputs = graph.BoundOutputs

// Option configures a graph at creation.
type Option = graph.Option

// New creates and registers a graph.
//
// Example:
//
//	g := graph.New(graph.WithName("inference"), graph.WithMode(neural.ModeInference))
func New(opts ...Option) *Graph {
	return graph.New(opts...)
}

// WithName proposes a registration name.
func WithName(name string) Option {
	return graph.WithName(name)
}

// WithMode sets the operation mode (default neural.ModeBoth).
func WithMode(mode neural.OperationMode) Option {
	return graph.WithMode(mode)
}

// WithState builds the graph against an explicit application state.
func WithState(st *AppState) Option {
	return graph.WithState(st)
}
