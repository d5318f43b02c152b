package neural

import (
	"fmt"

	"github.com/google/uuid"
)

// PortRef identifies one port of one module.
type PortRef struct {
	Module Module
	Port   string
}

// Tensor is a handle for a value produced by a module invocation.
//
// A tensor records its provenance: the producer module, the tensor arguments
// the producer was invoked with, and the growing list of consumers that later
// accept it as input. It is created exactly once, at invocation time, and is
// immutable except for the append-only consumer list and the producer-args
// substitution performed when a graph input is bound late.
//
// All output tensors of one invocation share a single producer-args map, so a
// late substitution on one port is visible through every sibling handle.
type Tensor struct {
	id           string
	name         string
	ntype        *NeuralType
	producer     Module
	producerArgs map[string]*Tensor
	consumers    []PortRef
}

// NewTensor creates a tensor handle for the producer's output port name.
// The args map is retained as-is so sibling outputs of the same invocation
// share it.
func NewTensor(producer Module, name string, ntype *NeuralType, args map[string]*Tensor) *Tensor {
	if args == nil {
		args = map[string]*Tensor{}
	}
	return &Tensor{
		id:           uuid.NewString(),
		name:         name,
		ntype:        ntype,
		producer:     producer,
		producerArgs: args,
	}
}

// ID returns the process-unique identifier of the handle.
func (t *Tensor) ID() string { return t.id }

// Name returns the producer output port the tensor came from.
func (t *Tensor) Name() string { return t.name }

// Type returns the declared neural type.
func (t *Tensor) Type() *NeuralType { return t.ntype }

// Producer returns the module that produced the tensor.
func (t *Tensor) Producer() Module { return t.producer }

// ProducerPort returns the (module, port) pair the tensor originates from.
func (t *Tensor) ProducerPort() PortRef {
	return PortRef{Module: t.producer, Port: t.name}
}

// ProducerArgs returns the live mapping from the producer's input port names
// to the tensors it was invoked with.
func (t *Tensor) ProducerArgs() map[string]*Tensor { return t.producerArgs }

// SetProducerArg substitutes the tensor bound to one of the producer's input
// ports. Used when a deferred graph input receives its concrete tensor.
func (t *Tensor) SetProducerArg(port string, arg *Tensor) {
	t.producerArgs[port] = arg
}

// AddConsumer appends a (module, port) pair to the consumer list.
func (t *Tensor) AddConsumer(m Module, port string) {
	t.consumers = append(t.consumers, PortRef{Module: m, Port: port})
}

// Consumers returns the consumer list in invocation order.
func (t *Tensor) Consumers() []PortRef {
	cp := make([]PortRef, len(t.consumers))
	copy(cp, t.consumers)
	return cp
}

// String renders the handle as "producer.port: type".
func (t *Tensor) String() string {
	return fmt.Sprintf("%s.%s: %s", t.producer.Name(), t.name, t.ntype)
}
