package graph

import (
	"github.com/weave-ml/weave/internal/neural"
)

// stubModule is a minimal module used across the construction tests.
type stubModule struct {
	name string
	in   *neural.PortMap
	out  *neural.PortMap
}

func (m *stubModule) Name() string                 { return m.name }
func (m *stubModule) InputPorts() *neural.PortMap  { return m.in }
func (m *stubModule) OutputPorts() *neural.PortMap { return m.out }

func newStub(st *AppState, name string, in, out *neural.PortMap) *stubModule {
	m := &stubModule{in: in, out: out}
	m.name = st.RegisterModule(m, name)
	return m
}

func batchValue(elem *neural.ElementType) *neural.NeuralType {
	return neural.NewType(elem,
		neural.Axis{Kind: neural.AxisBatch},
		neural.Axis{Kind: neural.AxisDimension, Size: 1})
}

// newSource builds a stub with outputs x: <Channel> and y: <Regression>.
func newSource(st *AppState, name string) *stubModule {
	return newStub(st, name,
		neural.NewPortMap(),
		neural.NewPortMap().
			Add("x", batchValue(neural.Channel)).
			Add("y", batchValue(neural.Regression)))
}

// newTrainable builds a stub with input x: <Channel> and output y_pred: <Regression>.
func newTrainable(st *AppState, name string) *stubModule {
	return newStub(st, name,
		neural.NewPortMap().Add("x", batchValue(neural.Channel)),
		neural.NewPortMap().Add("y_pred", batchValue(neural.Regression)))
}

// newLoss builds a stub with inputs predictions/target and a scalar loss output.
func newLoss(st *AppState, name string) *stubModule {
	return newStub(st, name,
		neural.NewPortMap().
			Add("predictions", batchValue(neural.Regression)).
			Add("target", batchValue(neural.Regression)),
		neural.NewPortMap().Add("loss", neural.NewType(neural.Loss)))
}
