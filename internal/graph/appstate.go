package graph

import (
	"sync"

	"github.com/weave-ml/weave/internal/neural"
	"github.com/weave-ml/weave/internal/registry"
)

// AppState is the application-state facade: one module registry, one graph
// manager and the device setting. All graph construction consults it.
//
// The shared instance returned by State is created lazily under a lock so
// racing first accesses cannot create two. Everything past the accessor is
// caller-serialized, like the rest of construction.
type AppState struct {
	device  neural.Device
	modules *registry.Registry[neural.Module]
	graphs  *Manager
}

var (
	sharedMu    sync.Mutex
	sharedState *AppState
)

// State returns the process-wide shared application state, creating it on
// first call.
func State() *AppState {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedState == nil {
		sharedState = NewState()
	}
	return sharedState
}

// StateOption configures an explicitly constructed application state.
type StateOption func(*AppState)

// WithDevice sets the compute device (default neural.CPU).
func WithDevice(d neural.Device) StateOption {
	return func(s *AppState) { s.device = d }
}

// NewState creates an independent application state for dependency injection,
// e.g. to isolate tests from the shared instance.
func NewState(opts ...StateOption) *AppState {
	s := &AppState{
		device:  neural.CPU,
		modules: registry.New[neural.Module]("module"),
		graphs:  NewManager(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterModule stores the module under a unique name derived from proposed
// and returns the name.
func (s *AppState) RegisterModule(m neural.Module, proposed string) string {
	return s.modules.Register(m, proposed)
}

// RegisterGraph stores the graph under a unique name derived from proposed
// and returns the name.
func (s *AppState) RegisterGraph(g *Graph, proposed string) string {
	return s.graphs.Register(g, proposed)
}

// Modules returns the module registry.
func (s *AppState) Modules() *registry.Registry[neural.Module] { return s.modules }

// Graphs returns the graph manager.
func (s *AppState) Graphs() *Manager { return s.graphs }

// ActiveGraph returns the graph currently under construction. When no graph
// is active a fresh default graph (mode both) is created, activated and
// returned, so modules can be composed without an explicit enclosing graph.
func (s *AppState) ActiveGraph() *Graph {
	if g := s.graphs.Active(); g != nil {
		return g
	}
	g := New(WithState(s))
	s.graphs.SetActive(g)
	return g
}

// SetActiveGraph changes the active graph; nil clears the slot.
func (s *AppState) SetActiveGraph(g *Graph) {
	s.graphs.SetActive(g)
}

// Device returns the configured compute device.
func (s *AppState) Device() neural.Device { return s.device }

// SetDevice changes the compute device.
func (s *AppState) SetDevice(d neural.Device) { s.device = d }
