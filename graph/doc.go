// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph builds and composes Weave neural graphs.
//
// # Basic usage
//
//	g := graph.New(graph.WithName("training"), graph.WithMode(neural.ModeTraining))
//	g.Construct(func() {
//	    out, _ := graph.Invoke(source, nil)
//	    pred, _ := graph.Invoke(model, neural.Args{"x": out.Tensor()})
//	    _ = pred
//	})
//
// While a graph is active, every invocation appends a (module, args) step and
// returns tensor handles with full provenance. A completed graph is itself a
// module: invoking it replays its steps into the currently active graph and
// returns its bound outputs rewired to the supplied inputs.
//
// # Application state
//
// Construction consults an application state holding the module registry, the
// graph manager and the active-graph slot. The shared instance comes from
// graph.State; tests and embedders can isolate themselves with graph.NewState
// and graph.WithState.
package graph
