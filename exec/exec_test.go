// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package exec

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weave-ml/weave/graph"
	"github.com/weave-ml/weave/modules"
	"github.com/weave-ml/weave/neural"
)

var (
	_ Computable = (*modules.RealFunctionSource)(nil)
	_ Computable = (*modules.TaylorNet)(nil)
	_ Computable = (*modules.MSELoss)(nil)
)

// opaqueModule declares ports but has no Compute implementation.
type opaqueModule struct {
	name string
}

func (m *opaqueModule) Name() string                { return m.name }
func (m *opaqueModule) InputPorts() *neural.PortMap { return neural.NewPortMap() }
func (m *opaqueModule) OutputPorts() *neural.PortMap {
	return neural.NewPortMap().Add("out", neural.NewType(neural.Loss))
}

func scalarRegression() *neural.NeuralType {
	return neural.NewType(neural.Regression, neural.Axis{Kind: neural.AxisBatch})
}

// countingSource emits an incrementing value on every Compute call, so each
// invocation's payload is distinguishable.
type countingSource struct {
	name string
	n    float32
}

func (s *countingSource) Name() string                { return s.name }
func (s *countingSource) InputPorts() *neural.PortMap { return neural.NewPortMap() }
func (s *countingSource) OutputPorts() *neural.PortMap {
	return neural.NewPortMap().Add("v", scalarRegression())
}

func (s *countingSource) Compute(map[string][]float32) (map[string][]float32, error) {
	s.n++
	return map[string][]float32{"v": {s.n}}, nil
}

// identityModule passes its input through unchanged.
type identityModule struct {
	name string
}

func (m *identityModule) Name() string { return m.name }
func (m *identityModule) InputPorts() *neural.PortMap {
	return neural.NewPortMap().Add("v", scalarRegression())
}

func (m *identityModule) OutputPorts() *neural.PortMap {
	return neural.NewPortMap().Add("v", scalarRegression())
}

func (m *identityModule) Compute(inputs map[string][]float32) (map[string][]float32, error) {
	return map[string][]float32{"v": inputs["v"]}, nil
}

func quietRunner() *Runner {
	return NewRunner(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

// buildTraining records source -> taylor -> mse into a fresh graph.
func buildTraining(t *testing.T, st *graph.AppState) *graph.Graph {
	t.Helper()
	source := modules.NewRealFunctionSource(100, 8, modules.WithName("source"), modules.WithState(st))
	net := modules.NewTaylorNet(4, modules.WithName("taylor"), modules.WithState(st))
	loss := modules.NewMSELoss(modules.WithName("mse"), modules.WithState(st))

	g := graph.New(graph.WithState(st), graph.WithName("training"), graph.WithMode(neural.ModeTraining))
	g.Construct(func() {
		data, err := st.Invoke(source, nil)
		require.NoError(t, err)
		x, _ := data.Get("x")
		y, _ := data.Get("y")

		pred, err := st.Invoke(net, neural.Args{"x": x})
		require.NoError(t, err)

		_, err = st.Invoke(loss, neural.Args{"predictions": pred.Tensor(), "target": y})
		require.NoError(t, err)
	})
	return g
}

func TestBuildPlan_ValidOrder(t *testing.T) {
	st := graph.NewState()
	g := buildTraining(t, st)

	plan, err := BuildPlan(g)
	require.NoError(t, err)
	require.Equal(t, 3, plan.Len())
	steps := plan.Steps()
	assert.Equal(t, "source", steps[0].Module.Name())
	assert.Equal(t, "taylor", steps[1].Module.Name())
	assert.Equal(t, "mse", steps[2].Module.Name())
}

func TestBuildPlan_ConsumerBeforeProducer(t *testing.T) {
	st := graph.NewState()
	g := buildTraining(t, st)

	// Replay the recorded steps in reverse into a second graph: mse now
	// consumes taylor's output before any step produces it.
	steps := g.Steps()
	bad := graph.New(graph.WithState(st), graph.WithName("reversed"))
	for i := len(steps) - 1; i >= 0; i-- {
		bad.RecordStep(steps[i])
	}

	_, err := BuildPlan(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before it is produced")
}

func TestBuildPlan_ExternalProducerAllowed(t *testing.T) {
	st := graph.NewState()
	source := modules.NewRealFunctionSource(100, 8, modules.WithName("source"), modules.WithState(st))
	net := modules.NewTaylorNet(2, modules.WithName("taylor"), modules.WithState(st))

	// The source runs in the ambient default graph; only the taylor step is
	// recorded into g, so its input tensor is externally produced.
	data, err := st.Invoke(source, nil)
	require.NoError(t, err)
	x, _ := data.Get("x")

	g := graph.New(graph.WithState(st), graph.WithName("partial"))
	g.Construct(func() {
		_, err := st.Invoke(net, neural.Args{"x": x})
		require.NoError(t, err)
	})

	plan, err := BuildPlan(g)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Len())
}

func TestRunner_Run(t *testing.T) {
	st := graph.NewState()
	g := buildTraining(t, st)

	results, err := quietRunner().Run(g, nil)
	require.NoError(t, err)

	require.Len(t, results["x"], 8)
	require.Len(t, results["y"], 8)
	require.Len(t, results["y_pred"], 8)
	require.Len(t, results["loss"], 1)
	assert.False(t, math.IsNaN(float64(results["loss"][0])))
	assert.GreaterOrEqual(t, results["loss"][0], float32(0))
}

func TestRunner_DeferredInputFedDirectly(t *testing.T) {
	st := graph.NewState()
	net := modules.NewTaylorNet(1, modules.WithName("taylor"), modules.WithState(st))
	loss := modules.NewMSELoss(modules.WithName("mse"), modules.WithState(st))

	g := graph.New(graph.WithState(st), graph.WithName("model"), graph.WithMode(neural.ModeTraining))
	g.Construct(func() {
		pred, err := st.Invoke(net, neural.Args{"x": g})
		require.NoError(t, err)
		_, err = st.Invoke(loss, neural.Args{"predictions": pred.Tensor(), "target": g})
		require.NoError(t, err)
	})

	// Coefficients 1, 1/2: p(x) = 1 + x/2.
	results, err := quietRunner().Run(g, map[string][]float32{
		"x":      {0, 2},
		"target": {1, 2},
	})
	require.NoError(t, err)
	require.Len(t, results["y_pred"], 2)
	assert.InDelta(t, 1, float64(results["y_pred"][0]), 1e-6)
	assert.InDelta(t, 2, float64(results["y_pred"][1]), 1e-6)
	assert.InDelta(t, 0, float64(results["loss"][0]), 1e-6)
}

func TestRunner_MissingFeed(t *testing.T) {
	st := graph.NewState()
	net := modules.NewTaylorNet(1, modules.WithName("taylor"), modules.WithState(st))

	g := graph.New(graph.WithState(st), graph.WithName("model"))
	g.Construct(func() {
		_, err := st.Invoke(net, neural.Args{"x": g})
		require.NoError(t, err)
	})

	_, err := quietRunner().Run(g, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no feed")
}

func TestRunner_RepeatedModuleInvocations(t *testing.T) {
	st := graph.NewState()
	counter := &countingSource{name: "counter"}
	pass := &identityModule{name: "pass"}

	g := graph.New(graph.WithState(st), graph.WithName("repeat"))
	var v1, v2, passed *neural.Tensor
	g.Construct(func() {
		out, err := st.Invoke(counter, nil)
		require.NoError(t, err)
		v1 = out.Tensor()

		out, err = st.Invoke(counter, nil)
		require.NoError(t, err)
		v2 = out.Tensor()

		out, err = st.Invoke(pass, neural.Args{"v": v1})
		require.NoError(t, err)
		passed = out.Tensor()
	})

	// Each invocation mints its own handles.
	require.NotEqual(t, v1.ID(), v2.ID())
	g.Outputs().Set("first", v1)
	g.Outputs().Set("second", v2)
	g.Outputs().Set("passed", passed)

	results, err := quietRunner().Run(g, nil)
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, results["first"])
	assert.Equal(t, []float32{2}, results["second"])
	// The pass-through consumed the first invocation's tensor, not the
	// latest payload the counter produced.
	assert.Equal(t, []float32{1}, results["passed"])
}

func TestRunner_NotComputable(t *testing.T) {
	st := graph.NewState()
	g := graph.New(graph.WithState(st), graph.WithName("opaque"))
	g.Construct(func() {
		_, err := st.Invoke(&opaqueModule{name: "black-box"}, nil)
		require.NoError(t, err)
	})

	_, err := quietRunner().Run(g, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotComputable)
}

func TestRunner_PlanErrorPropagates(t *testing.T) {
	st := graph.NewState()
	g := buildTraining(t, st)

	steps := g.Steps()
	bad := graph.New(graph.WithState(st), graph.WithName("reversed"))
	for i := len(steps) - 1; i >= 0; i-- {
		bad.RecordStep(steps[i])
	}

	_, err := quietRunner().Run(bad, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `plan "reversed"`)
}
