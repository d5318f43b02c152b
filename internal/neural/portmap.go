package neural

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PortMap is an insertion-ordered mapping from port name to neural type.
// Modules declare their input and output ports with it; iteration order is
// the declaration order.
type PortMap struct {
	ports *orderedmap.OrderedMap[string, *NeuralType]
}

// NewPortMap creates an empty port map.
func NewPortMap() *PortMap {
	return &PortMap{ports: orderedmap.New[string, *NeuralType]()}
}

// Add declares a port and returns the map, so declarations chain:
//
//	neural.NewPortMap().Add("x", xType).Add("y", yType)
func (p *PortMap) Add(name string, t *NeuralType) *PortMap {
	p.ports.Set(name, t)
	return p
}

// Get returns the type declared for name.
func (p *PortMap) Get(name string) (*NeuralType, bool) {
	return p.ports.Get(name)
}

// Has reports whether name is declared.
func (p *PortMap) Has(name string) bool {
	_, ok := p.ports.Get(name)
	return ok
}

// Names returns the port names in declaration order.
func (p *PortMap) Names() []string {
	names := make([]string, 0, p.ports.Len())
	for pair := p.ports.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of declared ports.
func (p *PortMap) Len() int { return p.ports.Len() }

// Range calls fn for each port in declaration order until fn returns false.
func (p *PortMap) Range(fn func(name string, t *NeuralType) bool) {
	for pair := p.ports.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}
