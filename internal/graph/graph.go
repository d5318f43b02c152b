package graph

import (
	"fmt"
	"strings"

	"github.com/weave-ml/weave/internal/neural"
)

// Step is one recorded module invocation: the module, the arguments it was
// called with, and the output handles minted for it. Invoking one module
// several times records several steps, each with its own handles.
type Step struct {
	Module  neural.Module
	Args    neural.Args
	Outputs *neural.Outputs
}

// Graph is an ordered recording of module invocations plus bound input and
// output port tables. While active, every module invocation appends a step;
// a completed graph can be invoked as a pseudo-module to nest its recording
// into another graph.
//
// A graph registers itself with its application state at creation and lives
// for the process lifetime. Construction against a single graph is not safe
// for concurrent use.
type Graph struct {
	state *AppState
	name  string
	mode  neural.OperationMode

	modules map[string]neural.Module
	steps   []Step

	boundInputPorts   *neural.PortMap
	boundInputTensors map[string]*neural.Tensor // nil value = not yet connected
	boundInputModules map[string]neural.Module

	outputs *BoundOutputs
}

// Option configures a graph at creation.
type Option func(*graphOptions)

type graphOptions struct {
	name  string
	mode  neural.OperationMode
	state *AppState
}

// WithName proposes a registration name. On collision the registry picks a
// deterministic variant.
func WithName(name string) Option {
	return func(o *graphOptions) { o.name = name }
}

// WithMode sets the operation mode (default neural.ModeBoth).
func WithMode(mode neural.OperationMode) Option {
	return func(o *graphOptions) { o.mode = mode }
}

// WithState builds the graph against an explicit application state instead of
// the shared one.
func WithState(st *AppState) Option {
	return func(o *graphOptions) { o.state = st }
}

// New creates and registers a graph.
func New(opts ...Option) *Graph {
	o := graphOptions{mode: neural.ModeBoth}
	for _, opt := range opts {
		opt(&o)
	}
	st := o.state
	if st == nil {
		st = State()
	}
	g := &Graph{
		state:             st,
		mode:              o.mode,
		modules:           make(map[string]neural.Module),
		boundInputPorts:   neural.NewPortMap(),
		boundInputTensors: make(map[string]*neural.Tensor),
		boundInputModules: make(map[string]neural.Module),
		outputs:           NewBoundOutputs(),
	}
	g.name = st.RegisterGraph(g, o.name)
	return g
}

// Name returns the unique registered name.
func (g *Graph) Name() string { return g.name }

// Mode returns the operation mode.
func (g *Graph) Mode() neural.OperationMode { return g.mode }

// State returns the application state the graph was built against.
func (g *Graph) State() *AppState { return g.state }

// Activate makes g the active construction context.
func (g *Graph) Activate() {
	g.state.SetActiveGraph(g)
}

// Deactivate clears the active construction context.
func (g *Graph) Deactivate() {
	g.state.SetActiveGraph(nil)
}

// Construct runs fn with g active, restoring the previous active graph when
// fn returns.
func (g *Graph) Construct(fn func()) {
	prev := g.state.Graphs().Active()
	g.state.SetActiveGraph(g)
	defer g.state.SetActiveGraph(prev)
	fn()
}

// RecordStep appends s to the execution record and inserts its module into
// the module table. Re-insertion of a known module is idempotent.
func (g *Graph) RecordStep(s Step) {
	g.modules[s.Module.Name()] = s.Module
	g.steps = append(g.steps, s)
}

// Steps returns a copy of the recorded steps in execution order.
func (g *Graph) Steps() []Step {
	cp := make([]Step, len(g.steps))
	copy(cp, g.steps)
	return cp
}

// NumSteps returns the number of recorded steps.
func (g *Graph) NumSteps() int { return len(g.steps) }

// Module returns the module registered in the graph under name.
func (g *Graph) Module(name string) (neural.Module, error) {
	m, ok := g.modules[name]
	if !ok {
		return nil, &neural.UnknownModuleError{Graph: g.name, Module: name}
	}
	return m, nil
}

// NumModules returns the number of distinct modules in the graph.
func (g *Graph) NumModules() int { return len(g.modules) }

// BindInput registers an input port that will be satisfied later by an
// enclosing scope. The bound module is the consumer the eventual tensor will
// be wired to.
func (g *Graph) BindInput(port string, def *neural.NeuralType, bound neural.Module) {
	g.boundInputPorts.Add(port, def)
	g.boundInputTensors[port] = nil
	g.boundInputModules[port] = bound
}

// BoundInputTensor returns the tensor connected to a bound input port.
// The tensor is nil while the port has not yet received a concrete input.
func (g *Graph) BoundInputTensor(port string) (*neural.Tensor, bool) {
	t, ok := g.boundInputTensors[port]
	return t, ok
}

// BindDefaultOutputs records the tensors as default named outputs, deriving
// names from their originating ports and never overwriting existing bindings.
func (g *Graph) BindDefaultOutputs(tensors []*neural.Tensor) {
	g.outputs.BindDefaults(tensors)
}

// Outputs returns the graph's output binding table. Explicit bindings go
// through it:
//
//	g.Outputs().Set("embeddings", t)
func (g *Graph) Outputs() *BoundOutputs { return g.outputs }

// InputPorts returns the graph's bound input port declarations.
// Part of the neural.Module contract.
func (g *Graph) InputPorts() *neural.PortMap { return g.boundInputPorts }

// OutputPorts returns port declarations derived from the bound outputs.
// Part of the neural.Module contract.
func (g *Graph) OutputPorts() *neural.PortMap {
	pm := neural.NewPortMap()
	for pair := g.outputs.tensors.Oldest(); pair != nil; pair = pair.Next() {
		pm.Add(pair.Key, pair.Value.Type())
	}
	return pm
}

// Call nests the graph's recorded steps into the currently active graph and
// returns the bound outputs rewired to the supplied inputs.
//
// The nesting protocol, in order: the operation modes of the two graphs must
// be compatible (a training or inference graph only nests into an outer graph
// of the same mode); argument names must all be declared bound input ports (a
// violation aborts before any mutation); the steps are replayed into the
// outer graph; each graph-valued argument establishes a deferred binding on
// the passed graph; each tensor-valued argument is type-checked (Same or
// Greater), registered as consumed by the port's bound module, and
// substituted into the producer args of every bound output the module
// produced.
func (g *Graph) Call(args neural.Args) (*neural.Outputs, error) {
	outer := g.state.ActiveGraph()

	// A training or inference graph may only nest into an outer graph of
	// exactly the same mode. A both-mode graph nests anywhere.
	inner, outerMode := g.mode, outer.Mode()
	if inner != neural.ModeBoth && inner != outerMode {
		return nil, &neural.ModeError{Inner: inner, Outer: outerMode}
	}

	for port := range args {
		if !g.boundInputPorts.Has(port) {
			return nil, &neural.PortNameError{Target: g.name, Port: port}
		}
	}

	for _, s := range g.steps {
		outer.RecordStep(s)
	}

	for port, value := range args {
		def, _ := g.boundInputPorts.Get(port)
		switch v := value.(type) {
		case *Graph:
			// Deferred input: the passed graph's own bound port will
			// supply this one. Compatible by definition, no type check.
			v.BindInput(port, def, g)

		case *neural.Tensor:
			verdict := def.Compare(v.Type())
			if !verdict.Accepted() {
				return nil, &neural.PortTypeError{
					Target:   g.name,
					Port:     port,
					Expected: def,
					Got:      v.Type(),
					Result:   verdict,
				}
			}
			consumer := g.boundInputModules[port]
			v.AddConsumer(consumer, port)
			g.boundInputTensors[port] = v
			// Propagate the substitution into outputs already produced by
			// the consuming module, so deferred replay sees the new input.
			for _, out := range g.outputs.Values() {
				if out.Producer().Name() == consumer.Name() {
					out.SetProducerArg(port, v)
				}
			}

		default:
			return nil, fmt.Errorf("graph %q: port %q: unsupported argument type %T", g.name, port, value)
		}
	}

	results := neural.NewOutputs()
	for pair := g.outputs.tensors.Oldest(); pair != nil; pair = pair.Next() {
		results.Add(pair.Key, pair.Value)
	}
	return results, nil
}

// Summary returns a short textual rendering of the execution record.
func (g *Graph) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "`%s` (%d):\n", g.name, len(g.steps))
	for _, s := range g.steps {
		fmt.Fprintf(&b, "  %s\n", s.Module.Name())
	}
	return b.String()
}

// ListModules returns a textual listing of the graph's module table.
func (g *Graph) ListModules() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d):\n", g.name, len(g.modules))
	// Listing follows step order for stability; maps iterate randomly.
	seen := make(map[string]bool, len(g.modules))
	for _, s := range g.steps {
		name := s.Module.Name()
		if seen[name] {
			continue
		}
		seen[name] = true
		fmt.Fprintf(&b, " * `%s` (in: %v, out: %v)\n", name, s.Module.InputPorts().Names(), s.Module.OutputPorts().Names())
	}
	return b.String()
}
