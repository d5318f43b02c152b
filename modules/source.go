// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package modules

import (
	"math"
	"math/rand"

	"github.com/weave-ml/weave/neural"
)

// RealFunctionSource is a data-source module sampling points from a
// real-valued function over [-4, 4]. It has no inputs and two outputs:
//
//	x: [B, D:1]<Channel>    sampled arguments
//	y: [B, D:1]<Regression> function values
//
// The default function is sin.
type RealFunctionSource struct {
	base
	n         int
	batchSize int
	fn        func(float32) float32
	rng       *rand.Rand
}

// NewRealFunctionSource creates a source producing n samples in batches of
// batchSize. Sampling is deterministic per instance.
func NewRealFunctionSource(n, batchSize int, opts ...Option) *RealFunctionSource {
	s := &RealFunctionSource{
		n:         n,
		batchSize: batchSize,
		fn:        func(x float32) float32 { return float32(math.Sin(float64(x))) },
		rng:       rand.New(rand.NewSource(42)),
	}
	s.base = newBase(s, applyOptions(opts),
		neural.NewPortMap(),
		neural.NewPortMap().
			Add("x", neural.NewType(neural.Channel,
				neural.Axis{Kind: neural.AxisBatch},
				neural.Axis{Kind: neural.AxisDimension, Size: 1})).
			Add("y", neural.NewType(neural.Regression,
				neural.Axis{Kind: neural.AxisBatch},
				neural.Axis{Kind: neural.AxisDimension, Size: 1})))
	return s
}

// SetFunction replaces the sampled function.
func (s *RealFunctionSource) SetFunction(fn func(float32) float32) {
	s.fn = fn
}

// BatchSize returns the configured batch size.
func (s *RealFunctionSource) BatchSize() int { return s.batchSize }

// Compute draws one batch of (x, f(x)) pairs.
func (s *RealFunctionSource) Compute(map[string][]float32) (map[string][]float32, error) {
	xs := make([]float32, s.batchSize)
	ys := make([]float32, s.batchSize)
	for i := range xs {
		xs[i] = s.rng.Float32()*8 - 4
		ys[i] = s.fn(xs[i])
	}
	return map[string][]float32{"x": xs, "y": ys}, nil
}
