// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neural provides the typed building blocks of Weave graphs.
//
// # Overview
//
// This package contains:
//   - Neural types: NewType, Axis, ElementType hierarchy, comparison verdicts
//   - Tensor handles carrying producer/consumer provenance
//   - The Module contract and ordered PortMap declarations
//   - The construction-time error taxonomy
//
// # Declaring ports
//
//	in := neural.NewPortMap().
//	    Add("x", neural.NewType(neural.Channel, neural.Axis{Kind: neural.AxisBatch}, neural.Axis{Kind: neural.AxisDimension}))
//
// # Comparing types
//
// A port accepts a tensor when the declared type compares as Same or Greater
// against the tensor's type:
//
//	verdict := declared.Compare(t.Type())
//	if !verdict.Accepted() { ... }
//
// # Provenance
//
// Every tensor handle records who produced it, with which arguments, and who
// consumes it:
//
//	t.Producer()      // the producing module
//	t.ProducerArgs()  // input port -> tensor used to produce it
//	t.Consumers()     // ordered (module, port) pairs
package neural
