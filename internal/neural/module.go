package neural

// Module is the contract every graph-composable unit implements: a stable
// registered name plus ordered, typed input and output port declarations.
//
// Modules are invoked through the graph construction protocol (see the graph
// package), which performs port-name validation, type checking, step
// recording and tensor-handle bookkeeping on their behalf.
type Module interface {
	// Name returns the unique name the module was registered under.
	Name() string

	// InputPorts returns the ordered input port declarations.
	InputPorts() *PortMap

	// OutputPorts returns the ordered output port declarations.
	OutputPorts() *PortMap
}

// Trainable is implemented by modules holding learnable parameters.
type Trainable interface {
	Module

	// Parameters returns the module's trainable parameters.
	Parameters() []*Parameter
}

// Args carries the keyword arguments of one module or graph invocation.
// Values are either *Tensor (a concrete input) or a graph being bound as a
// deferred input source.
type Args map[string]any
