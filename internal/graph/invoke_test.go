package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weave-ml/weave/internal/neural"
)

func TestInvoke_ProducerArgs(t *testing.T) {
	st := NewState()
	source := newSource(st, "source")
	trainable := newTrainable(st, "tm")
	loss := newLoss(st, "loss")

	data, err := st.Invoke(source, nil)
	require.NoError(t, err)
	x, ok := data.Get("x")
	require.True(t, ok)
	y, ok := data.Get("y")
	require.True(t, ok)

	pred, err := st.Invoke(trainable, neural.Args{"x": x})
	require.NoError(t, err)
	yPred := pred.Tensor()
	require.NotNil(t, yPred)

	out, err := st.Invoke(loss, neural.Args{"predictions": yPred, "target": y})
	require.NoError(t, err)
	lossTensor := out.Tensor()
	require.NotNil(t, lossTensor)

	assert.Same(t, loss, lossTensor.Producer())
	assert.Equal(t, map[string]*neural.Tensor{"predictions": yPred, "target": y}, lossTensor.ProducerArgs())
	assert.Same(t, trainable, yPred.Producer())
	assert.Equal(t, map[string]*neural.Tensor{"x": x}, yPred.ProducerArgs())
	assert.Same(t, source, y.Producer())
	assert.Empty(t, y.ProducerArgs())
	assert.Same(t, source, x.Producer())
	assert.Empty(t, x.ProducerArgs())
}

func TestInvoke_ProducersAndConsumers(t *testing.T) {
	st := NewState()
	source := newSource(st, "source")
	trainable := newTrainable(st, "tm")
	loss := newLoss(st, "loss")
	loss2 := newLoss(st, "loss2")

	data, err := st.Invoke(source, nil)
	require.NoError(t, err)
	x, _ := data.Get("x")
	y, _ := data.Get("y")

	pred, err := st.Invoke(trainable, neural.Args{"x": x})
	require.NoError(t, err)
	yPred := pred.Tensor()

	_, err = st.Invoke(loss, neural.Args{"predictions": yPred, "target": y})
	require.NoError(t, err)
	_, err = st.Invoke(loss2, neural.Args{"predictions": yPred, "target": y})
	require.NoError(t, err)

	p := x.ProducerPort()
	assert.Equal(t, "source", p.Module.Name())
	assert.Equal(t, "x", p.Port)
	cs := x.Consumers()
	require.Len(t, cs, 1)
	assert.Equal(t, "tm", cs[0].Module.Name())
	assert.Equal(t, "x", cs[0].Port)

	p = y.ProducerPort()
	assert.Equal(t, "source", p.Module.Name())
	assert.Equal(t, "y", p.Port)
	cs = y.Consumers()
	require.Len(t, cs, 2)
	assert.Equal(t, "loss", cs[0].Module.Name())
	assert.Equal(t, "target", cs[0].Port)
	assert.Equal(t, "loss2", cs[1].Module.Name())
	assert.Equal(t, "target", cs[1].Port)

	cs = yPred.Consumers()
	require.Len(t, cs, 2)
	assert.Equal(t, "loss", cs[0].Module.Name())
	assert.Equal(t, "predictions", cs[0].Port)
	assert.Equal(t, "loss2", cs[1].Module.Name())
	assert.Equal(t, "predictions", cs[1].Port)
}

func TestInvoke_TensorTypesMatchDeclarations(t *testing.T) {
	st := NewState()
	source := newSource(st, "source")
	trainable := newTrainable(st, "tm")

	data, err := st.Invoke(source, nil)
	require.NoError(t, err)
	x, _ := data.Get("x")
	y, _ := data.Get("y")

	pred, err := st.Invoke(trainable, neural.Args{"x": x})
	require.NoError(t, err)
	yPred := pred.Tensor()

	xDecl, _ := source.OutputPorts().Get("x")
	yDecl, _ := source.OutputPorts().Get("y")
	predDecl, _ := trainable.OutputPorts().Get("y_pred")
	assert.Equal(t, neural.Same, x.Type().Compare(xDecl))
	assert.Equal(t, neural.Same, y.Type().Compare(yDecl))
	assert.Equal(t, neural.Same, yPred.Type().Compare(predDecl))
}

func TestInvoke_UnknownPortName(t *testing.T) {
	st := NewState()
	source := newSource(st, "source")
	trainable := newTrainable(st, "tm")

	data, err := st.Invoke(source, nil)
	require.NoError(t, err)
	x, _ := data.Get("x")

	active := st.ActiveGraph()
	stepsBefore := active.NumSteps()

	_, err = st.Invoke(trainable, neural.Args{"bogus": x})
	require.Error(t, err)

	var nameErr *neural.PortNameError
	require.True(t, errors.As(err, &nameErr))
	assert.Equal(t, "bogus", nameErr.Port)
	assert.Equal(t, "tm", nameErr.Target)
	assert.Equal(t, stepsBefore, active.NumSteps())
	assert.Empty(t, x.Consumers())
}

func TestInvoke_TypeMismatch(t *testing.T) {
	st := NewState()
	source := newSource(st, "source")
	trainable := newTrainable(st, "tm")

	data, err := st.Invoke(source, nil)
	require.NoError(t, err)
	y, _ := data.Get("y") // <Regression> specializes the <Channel> port

	_, err = st.Invoke(trainable, neural.Args{"x": y})
	require.Error(t, err)

	var typeErr *neural.PortTypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "x", typeErr.Port)
	assert.Equal(t, neural.Lesser, typeErr.Result)
	assert.Empty(t, y.Consumers())
}

func TestInvoke_GeneralizationAccepted(t *testing.T) {
	st := NewState()
	source := newSource(st, "source")
	loss := newLoss(st, "loss")

	data, err := st.Invoke(source, nil)
	require.NoError(t, err)
	x, _ := data.Get("x") // <Channel> generalizes the <Regression> port
	y, _ := data.Get("y")

	decl, _ := loss.InputPorts().Get("predictions")
	assert.Equal(t, neural.Greater, decl.Compare(x.Type()))

	_, err = st.Invoke(loss, neural.Args{"predictions": x, "target": y})
	require.NoError(t, err)
}

func TestInvoke_RecordsStepsInActiveGraph(t *testing.T) {
	st := NewState()
	source := newSource(st, "source")
	trainable := newTrainable(st, "tm")

	g := New(WithState(st), WithName("flow"))
	g.Construct(func() {
		data, err := st.Invoke(source, nil)
		require.NoError(t, err)
		x, _ := data.Get("x")
		_, err = st.Invoke(trainable, neural.Args{"x": x})
		require.NoError(t, err)
	})

	assert.Equal(t, 2, g.NumSteps())
	assert.Equal(t, 2, g.NumModules())

	m, err := g.Module("tm")
	require.NoError(t, err)
	assert.Same(t, trainable, m)

	// Default outputs accumulate from every step.
	assert.Equal(t, []string{"x", "y", "y_pred"}, g.Outputs().Keys())
}
