package neural

import "fmt"

// PortNameError reports an invocation argument that does not correspond to
// any declared input port.
type PortNameError struct {
	Target string // module or graph name
	Port   string // the offending argument name
}

// Error implements the error interface.
func (e *PortNameError) Error() string {
	return fmt.Sprintf("unknown input port %q on %q", e.Port, e.Target)
}

// PortTypeError reports a tensor whose type does not compare as Same or
// Greater against the expected port declaration.
type PortTypeError struct {
	Target   string
	Port     string
	Expected *NeuralType
	Got      *NeuralType
	Result   ComparisonResult
}

// Error implements the error interface.
func (e *PortTypeError) Error() string {
	return fmt.Sprintf("port %q on %q: incompatible neural types: expected %s, got %s (comparison: %s)",
		e.Port, e.Target, e.Expected, e.Got, e.Result)
}

// ModeError reports an illegal nesting of operation modes.
type ModeError struct {
	Inner OperationMode
	Outer OperationMode
}

// Error implements the error interface.
func (e *ModeError) Error() string {
	return fmt.Sprintf("cannot nest a %q graph into a %q graph", e.Inner, e.Outer)
}

// UnknownModuleError reports a lookup of a module name absent from a graph's
// module table.
type UnknownModuleError struct {
	Graph  string
	Module string
}

// Error implements the error interface.
func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("graph %q does not contain a module named %q", e.Graph, e.Module)
}
