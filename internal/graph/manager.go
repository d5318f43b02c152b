package graph

import (
	"fmt"
	"strings"

	"github.com/weave-ml/weave/internal/registry"
)

// Manager is the process-wide graph registry plus the active-graph slot that
// records which graph is under construction.
type Manager struct {
	reg    *registry.Registry[*Graph]
	active *Graph
}

// NewManager creates an empty graph manager.
func NewManager() *Manager {
	return &Manager{reg: registry.New[*Graph]("graph")}
}

// Register stores g under a unique name derived from proposed.
func (m *Manager) Register(g *Graph, proposed string) string {
	return m.reg.Register(g, proposed)
}

// Get returns the graph registered under name.
func (m *Manager) Get(name string) (*Graph, bool) {
	return m.reg.Get(name)
}

// Names returns registered graph names in registration order.
func (m *Manager) Names() []string { return m.reg.Names() }

// Len returns the number of registered graphs.
func (m *Manager) Len() int { return m.reg.Len() }

// Active returns the graph currently under construction, or nil.
func (m *Manager) Active() *Graph { return m.active }

// SetActive changes the active graph. A nil graph clears the slot. No
// validation is performed; callers are responsible for well-nested
// activation.
func (m *Manager) SetActive(g *Graph) { m.active = g }

// Summary returns a textual listing of all registered graphs.
func (m *Manager) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "graphs (%d):\n", m.reg.Len())
	for _, name := range m.reg.Names() {
		g, _ := m.reg.Get(name)
		marker := ""
		if g == m.active {
			marker = " (active)"
		}
		fmt.Fprintf(&b, " * `%s` [%s]%s\n", name, g.Mode(), marker)
	}
	return b.String()
}
