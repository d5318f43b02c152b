// Package graph implements dynamic neural-graph construction for Weave.
//
// A Graph records module invocations (steps) made while it is active, manages
// the binding of its input and output ports, and can itself be invoked as a
// pseudo-module to nest its recorded steps into another graph. The package
// also holds the application state: the process-wide module and graph
// registries plus the active-graph slot that construction consults.
//
// Construction is in-memory bookkeeping only; nothing here computes numbers.
package graph
