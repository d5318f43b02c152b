package neural

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModule struct {
	name string
	in   *PortMap
	out  *PortMap
}

func (m *fakeModule) Name() string          { return m.name }
func (m *fakeModule) InputPorts() *PortMap  { return m.in }
func (m *fakeModule) OutputPorts() *PortMap { return m.out }

func TestTensor_Provenance(t *testing.T) {
	producer := &fakeModule{name: "producer"}
	typ := NewType(Logits, Axis{Kind: AxisBatch})

	input := NewTensor(&fakeModule{name: "upstream"}, "h", typ, nil)
	out := NewTensor(producer, "logits", typ, map[string]*Tensor{"h": input})

	assert.Equal(t, "logits", out.Name())
	assert.Same(t, producer, out.Producer())
	assert.Equal(t, PortRef{Module: producer, Port: "logits"}, out.ProducerPort())
	assert.Equal(t, map[string]*Tensor{"h": input}, out.ProducerArgs())
	assert.NotEmpty(t, out.ID())
	assert.NotEqual(t, input.ID(), out.ID())
}

func TestTensor_ConsumersAppendInOrder(t *testing.T) {
	producer := &fakeModule{name: "producer"}
	m1 := &fakeModule{name: "m1"}
	m2 := &fakeModule{name: "m2"}
	tensor := NewTensor(producer, "x", NewType(Channel), nil)

	tensor.AddConsumer(m1, "p1")
	tensor.AddConsumer(m2, "p2")

	consumers := tensor.Consumers()
	require.Len(t, consumers, 2)
	assert.Equal(t, PortRef{Module: m1, Port: "p1"}, consumers[0])
	assert.Equal(t, PortRef{Module: m2, Port: "p2"}, consumers[1])
}

func TestTensor_SharedProducerArgs(t *testing.T) {
	producer := &fakeModule{name: "producer"}
	typ := NewType(Channel)
	shared := map[string]*Tensor{}

	a := NewTensor(producer, "a", typ, shared)
	b := NewTensor(producer, "b", typ, shared)

	replacement := NewTensor(&fakeModule{name: "other"}, "x", typ, nil)
	a.SetProducerArg("x", replacement)

	// Sibling outputs of one invocation see the same substitution.
	got, ok := b.ProducerArgs()["x"]
	require.True(t, ok)
	assert.Same(t, replacement, got)
}
