package graph

import (
	"fmt"

	"github.com/weave-ml/weave/internal/neural"
)

// Invoke runs the module invocation protocol against the shared application
// state. See AppState.Invoke.
func Invoke(m neural.Module, args neural.Args) (*neural.Outputs, error) {
	return State().Invoke(m, args)
}

// Invoke composes module m into the active graph.
//
// The protocol: every argument name must be a declared input port (a
// violation aborts before any mutation); graph-valued arguments establish a
// deferred binding on the passed graph; tensor-valued arguments are
// type-checked against the port declaration (Same or Greater) and recorded as
// consumed by m. One tensor handle is then created per declared output port,
// all sharing the invocation's producer-args map; the invocation is appended
// to the active graph's steps together with the new handles, which are also
// bound as the graph's default outputs.
//
// Invoking a Graph delegates to its nesting protocol.
func (s *AppState) Invoke(m neural.Module, args neural.Args) (*neural.Outputs, error) {
	if g, ok := m.(*Graph); ok {
		return g.Call(args)
	}

	active := s.ActiveGraph()

	for port := range args {
		if !m.InputPorts().Has(port) {
			return nil, &neural.PortNameError{Target: m.Name(), Port: port}
		}
	}

	producerArgs := make(map[string]*neural.Tensor, len(args))
	for port, value := range args {
		def, _ := m.InputPorts().Get(port)
		switch v := value.(type) {
		case *Graph:
			// The module's input will arrive through the passed graph's
			// bound port; compatible by definition.
			v.BindInput(port, def, m)

		case *neural.Tensor:
			verdict := def.Compare(v.Type())
			if !verdict.Accepted() {
				return nil, &neural.PortTypeError{
					Target:   m.Name(),
					Port:     port,
					Expected: def,
					Got:      v.Type(),
					Result:   verdict,
				}
			}
			v.AddConsumer(m, port)
			producerArgs[port] = v

		default:
			return nil, fmt.Errorf("module %q: port %q: unsupported argument type %T", m.Name(), port, value)
		}
	}

	outputs := neural.NewOutputs()
	produced := make([]*neural.Tensor, 0, m.OutputPorts().Len())
	m.OutputPorts().Range(func(name string, t *neural.NeuralType) bool {
		handle := neural.NewTensor(m, name, t, producerArgs)
		outputs.Add(name, handle)
		produced = append(produced, handle)
		return true
	})

	active.RecordStep(Step{Module: m, Args: args, Outputs: outputs})
	active.BindDefaultOutputs(produced)

	return outputs, nil
}
