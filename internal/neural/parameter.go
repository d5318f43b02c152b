package neural

// Parameter is a named trainable parameter held by a module.
// The construction core only tracks identity and raw values; optimization is
// an external concern.
type Parameter struct {
	name string
	data []float32
}

// NewParameter creates a parameter with the given name and values.
// The slice is retained, not copied.
func NewParameter(name string, data []float32) *Parameter {
	return &Parameter{name: name, data: data}
}

// Name returns the parameter name (e.g. "weight", "bias").
func (p *Parameter) Name() string { return p.name }

// Data returns the parameter values.
func (p *Parameter) Data() []float32 { return p.data }
