package neural

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Outputs is the fixed-schema result of a module or graph invocation: an
// insertion-ordered mapping from output port name to tensor handle.
type Outputs struct {
	tensors *orderedmap.OrderedMap[string, *Tensor]
}

// NewOutputs creates an empty result set.
func NewOutputs() *Outputs {
	return &Outputs{tensors: orderedmap.New[string, *Tensor]()}
}

// Add appends a named output.
func (o *Outputs) Add(name string, t *Tensor) {
	o.tensors.Set(name, t)
}

// Get returns the output bound to name.
func (o *Outputs) Get(name string) (*Tensor, bool) {
	return o.tensors.Get(name)
}

// Tensor returns the sole output when exactly one exists, nil otherwise.
// Single-output invocations are the common case and read naturally:
//
//	loss := out.Tensor()
func (o *Outputs) Tensor() *Tensor {
	if o.tensors.Len() != 1 {
		return nil
	}
	return o.tensors.Oldest().Value
}

// Names returns the output names in binding order.
func (o *Outputs) Names() []string {
	names := make([]string, 0, o.tensors.Len())
	for pair := o.tensors.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Tensors returns the outputs in binding order.
func (o *Outputs) Tensors() []*Tensor {
	ts := make([]*Tensor, 0, o.tensors.Len())
	for pair := o.tensors.Oldest(); pair != nil; pair = pair.Next() {
		ts = append(ts, pair.Value)
	}
	return ts
}

// Len returns the number of outputs.
func (o *Outputs) Len() int { return o.tensors.Len() }
