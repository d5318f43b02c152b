// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package modules

import (
	"fmt"

	"github.com/weave-ml/weave/neural"
)

// MSELoss computes mean squared error between predictions and targets.
//
//	inputs  predictions, target: [B, D:1]<Regression>
//	output  loss:                <Loss> (scalar)
type MSELoss struct {
	base
}

// NewMSELoss creates an MSE loss module.
func NewMSELoss(opts ...Option) *MSELoss {
	batchValue := neural.NewType(neural.Regression,
		neural.Axis{Kind: neural.AxisBatch},
		neural.Axis{Kind: neural.AxisDimension, Size: 1})
	l := &MSELoss{}
	l.base = newBase(l, applyOptions(opts),
		neural.NewPortMap().
			Add("predictions", batchValue).
			Add("target", batchValue),
		neural.NewPortMap().
			Add("loss", neural.NewType(neural.Loss)))
	return l
}

// Compute returns mean((predictions - target)^2) as a one-element slice.
func (l *MSELoss) Compute(inputs map[string][]float32) (map[string][]float32, error) {
	preds, targets := inputs["predictions"], inputs["target"]
	if len(preds) != len(targets) {
		return nil, fmt.Errorf("mse: predictions and target lengths differ: %d vs %d", len(preds), len(targets))
	}
	if len(preds) == 0 {
		return nil, fmt.Errorf("mse: empty inputs")
	}
	var sum float32
	for i := range preds {
		d := preds[i] - targets[i]
		sum += d * d
	}
	return map[string][]float32{"loss": {sum / float32(len(preds))}}, nil
}
