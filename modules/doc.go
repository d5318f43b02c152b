// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package modules provides ready-made neural modules for composing graphs.
//
// # Overview
//
// This package contains:
//   - RealFunctionSource: a data source sampling a real-valued function
//   - TaylorNet: a trainable polynomial regressor
//   - MSELoss: mean squared error
//   - TokenTextSource: a text data source tokenizing with tiktoken encodings
//
// # Basic usage
//
//	source := modules.NewRealFunctionSource(100, 4)
//	model := modules.NewTaylorNet(4)
//	loss := modules.NewMSELoss()
//
//	out, _ := graph.Invoke(source, nil)
//	pred, _ := graph.Invoke(model, neural.Args{"x": mustGet(out, "x")})
//	l, _ := graph.Invoke(loss, neural.Args{"predictions": pred.Tensor(), "target": mustGet(out, "y")})
//
// All modules implement the Compute protocol of the exec package, so recorded
// graphs can be replayed in-memory for examples and tests.
package modules
