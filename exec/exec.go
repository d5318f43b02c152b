// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package exec replays recorded graphs: it validates that the step order is a
// sound topological replay and evaluates modules implementing the Compute
// protocol over in-memory float32 payloads.
//
// Real training/inference engines are expected to bring their own numeric
// backend; this package exists so composed graphs can be checked and
// exercised without one.
package exec

import (
	"errors"
	"fmt"

	"github.com/weave-ml/weave/graph"
	"github.com/weave-ml/weave/neural"
)

// ErrNotComputable reports a planned module that does not implement the
// Compute protocol.
var ErrNotComputable = errors.New("module does not support in-memory compute")

// Computable is implemented by modules that can evaluate themselves over
// plain float32 payloads, keyed by port name.
type Computable interface {
	neural.Module

	// Compute maps input port payloads to output port payloads.
	Compute(inputs map[string][]float32) (map[string][]float32, error)
}

// Plan is a validated, ordered execution plan for one graph.
type Plan struct {
	steps []graph.Step
}

// Steps returns the planned steps in execution order.
func (p *Plan) Steps() []graph.Step {
	cp := make([]graph.Step, len(p.steps))
	copy(cp, p.steps)
	return cp
}

// Len returns the number of planned steps.
func (p *Plan) Len() int { return len(p.steps) }

// BuildPlan checks that every step's tensor inputs are available by the time
// the step runs (minted by an earlier step, connected through a bound input
// port, or produced outside the graph entirely) and returns the ordered
// plan. Availability is tracked per handle, so repeated invocations of one
// module stay distinct.
func BuildPlan(g *graph.Graph) (*Plan, error) {
	available := make(map[*neural.Tensor]bool)
	for _, port := range g.InputPorts().Names() {
		if t, ok := g.BoundInputTensor(port); ok && t != nil {
			available[t] = true
		}
	}

	steps := g.Steps()
	for i, s := range steps {
		for port, value := range s.Args {
			t, ok := value.(*neural.Tensor)
			if !ok {
				continue
			}
			if available[t] {
				continue
			}
			if _, err := g.Module(t.Producer().Name()); err != nil {
				// Producer is not part of this graph: externally supplied.
				continue
			}
			return nil, fmt.Errorf("step %d: module %q consumes %q.%s on port %q before it is produced",
				i, s.Module.Name(), t.Producer().Name(), t.Name(), port)
		}
		if s.Outputs != nil {
			for _, t := range s.Outputs.Tensors() {
				available[t] = true
			}
		}
	}
	return &Plan{steps: steps}, nil
}
