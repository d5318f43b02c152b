// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package modules

import (
	"github.com/weave-ml/weave/neural"
)

// TaylorNet is a trainable module fitting a polynomial of configurable
// degree: y_pred = sum_i w_i * x^i.
//
//	input  x:      [B, D:1]<Channel>
//	output y_pred: [B, D:1]<Regression>
type TaylorNet struct {
	base
	dim     int
	weights *neural.Parameter
}

var _ neural.Trainable = (*TaylorNet)(nil)

// NewTaylorNet creates a polynomial regressor of the given degree.
// Coefficients start at 1/(i+1) so an untrained forward pass is non-trivial.
func NewTaylorNet(dim int, opts ...Option) *TaylorNet {
	coeffs := make([]float32, dim+1)
	for i := range coeffs {
		coeffs[i] = 1 / float32(i+1)
	}
	t := &TaylorNet{
		dim:     dim,
		weights: neural.NewParameter("weights", coeffs),
	}
	t.base = newBase(t, applyOptions(opts),
		neural.NewPortMap().
			Add("x", neural.NewType(neural.Channel,
				neural.Axis{Kind: neural.AxisBatch},
				neural.Axis{Kind: neural.AxisDimension, Size: 1})),
		neural.NewPortMap().
			Add("y_pred", neural.NewType(neural.Regression,
				neural.Axis{Kind: neural.AxisBatch},
				neural.Axis{Kind: neural.AxisDimension, Size: 1})))
	return t
}

// Dim returns the polynomial degree.
func (t *TaylorNet) Dim() int { return t.dim }

// Parameters returns the trainable coefficients.
func (t *TaylorNet) Parameters() []*neural.Parameter {
	return []*neural.Parameter{t.weights}
}

// Compute evaluates the polynomial element-wise over the "x" input.
func (t *TaylorNet) Compute(inputs map[string][]float32) (map[string][]float32, error) {
	xs := inputs["x"]
	w := t.weights.Data()
	out := make([]float32, len(xs))
	for i, x := range xs {
		var acc, pow float32 = 0, 1
		for _, c := range w {
			acc += c * pow
			pow *= x
		}
		out[i] = acc
	}
	return map[string][]float32{"y_pred": out}, nil
}
