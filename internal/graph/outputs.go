package graph

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/weave-ml/weave/internal/neural"
)

// BoundOutputs maintains a graph's externally visible outputs: an ordered
// mapping from output name to tensor handle, kept separately from whatever a
// graph's final step would expose by default.
//
// Default bindings are derived from a tensor's originating port name and are
// inserted only when the name is still free. Explicit bindings always win and
// are never overwritten by later defaults.
type BoundOutputs struct {
	tensors *orderedmap.OrderedMap[string, *neural.Tensor]
}

// NewBoundOutputs creates an empty output binding table.
func NewBoundOutputs() *BoundOutputs {
	return &BoundOutputs{tensors: orderedmap.New[string, *neural.Tensor]()}
}

// Set explicitly binds name to t, overriding any previous binding.
func (b *BoundOutputs) Set(name string, t *neural.Tensor) {
	b.tensors.Set(name, t)
}

// BindDefaults inserts each tensor under the name of its originating port,
// skipping names that are already bound.
func (b *BoundOutputs) BindDefaults(tensors []*neural.Tensor) {
	for _, t := range tensors {
		if _, taken := b.tensors.Get(t.Name()); taken {
			continue
		}
		b.tensors.Set(t.Name(), t)
	}
}

// Get returns the tensor bound to name.
func (b *BoundOutputs) Get(name string) (*neural.Tensor, bool) {
	return b.tensors.Get(name)
}

// Keys returns the bound names in insertion order.
func (b *BoundOutputs) Keys() []string {
	keys := make([]string, 0, b.tensors.Len())
	for pair := b.tensors.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Values returns the bound tensors in insertion order.
func (b *BoundOutputs) Values() []*neural.Tensor {
	vals := make([]*neural.Tensor, 0, b.tensors.Len())
	for pair := b.tensors.Oldest(); pair != nil; pair = pair.Next() {
		vals = append(vals, pair.Value)
	}
	return vals
}

// Len returns the number of bound outputs.
func (b *BoundOutputs) Len() int { return b.tensors.Len() }
