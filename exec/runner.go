// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"log/slog"

	"github.com/weave-ml/weave/graph"
	"github.com/weave-ml/weave/neural"
)

// Runner evaluates a recorded graph step by step.
type Runner struct {
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets a custom structured logger for the runner.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a runner. Without options it logs through slog.Default.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run builds a plan for g and evaluates it. Payloads for the graph's bound
// input ports come from feeds, keyed by port name. Every module in the plan
// must implement Computable. The result maps each bound output name to the
// payload its tensor resolved to.
func (r *Runner) Run(g *graph.Graph, feeds map[string][]float32) (map[string][]float32, error) {
	plan, err := BuildPlan(g)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", g.Name(), err)
	}

	// Payloads are keyed by handle identity, so repeated invocations of one
	// module resolve to their own step's outputs.
	env := make(map[string][]float32)
	for _, port := range g.InputPorts().Names() {
		t, ok := g.BoundInputTensor(port)
		if !ok || t == nil {
			continue
		}
		payload, ok := feeds[port]
		if !ok {
			return nil, fmt.Errorf("run %q: no feed for bound input port %q", g.Name(), port)
		}
		env[t.ID()] = payload
	}

	for i, s := range plan.Steps() {
		comp, ok := s.Module.(Computable)
		if !ok {
			return nil, fmt.Errorf("run %q: module %q: %w", g.Name(), s.Module.Name(), ErrNotComputable)
		}

		inputs := make(map[string][]float32, len(s.Args))
		for port, value := range s.Args {
			switch v := value.(type) {
			case *neural.Tensor:
				payload, ok := env[v.ID()]
				if !ok {
					return nil, fmt.Errorf("run %q: step %d: no payload for %q.%s", g.Name(), i, v.Producer().Name(), v.Name())
				}
				inputs[port] = payload

			case *graph.Graph:
				// Deferred binding: the payload comes from the tensor wired
				// to the graph's bound port, or straight from feeds while
				// the port is still unconnected.
				if t, _ := v.BoundInputTensor(port); t != nil {
					payload, ok := env[t.ID()]
					if !ok {
						return nil, fmt.Errorf("run %q: step %d: no payload for %q.%s", g.Name(), i, t.Producer().Name(), t.Name())
					}
					inputs[port] = payload
					continue
				}
				payload, ok := feeds[port]
				if !ok {
					return nil, fmt.Errorf("run %q: step %d: no feed for deferred input port %q", g.Name(), i, port)
				}
				inputs[port] = payload
			}
		}

		r.logger.Debug("replaying step",
			"graph", g.Name(),
			"step", i,
			"module", s.Module.Name(),
		)
		outputs, err := comp.Compute(inputs)
		if err != nil {
			return nil, fmt.Errorf("run %q: step %d (%s): %w", g.Name(), i, s.Module.Name(), err)
		}
		if s.Outputs == nil {
			continue
		}
		for port, payload := range outputs {
			if t, ok := s.Outputs.Get(port); ok {
				env[t.ID()] = payload
			}
		}
	}

	results := make(map[string][]float32)
	for _, name := range g.Outputs().Keys() {
		t, _ := g.Outputs().Get(name)
		if payload, ok := env[t.ID()]; ok {
			results[name] = payload
		}
	}
	return results, nil
}
