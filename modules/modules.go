// Copyright 2025 Weave ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package modules

import (
	"github.com/weave-ml/weave/graph"
	"github.com/weave-ml/weave/neural"
)

// Option configures a module at creation.
type Option func(*moduleOptions)

type moduleOptions struct {
	name  string
	state *graph.AppState
}

// WithName proposes a registration name. On collision the module registry
// picks a deterministic variant.
func WithName(name string) Option {
	return func(o *moduleOptions) { o.name = name }
}

// WithState registers the module with an explicit application state instead
// of the shared one.
func WithState(st *graph.AppState) Option {
	return func(o *moduleOptions) { o.state = st }
}

func applyOptions(opts []Option) moduleOptions {
	var o moduleOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// base carries the registered name and port declarations shared by every
// module in this package.
type base struct {
	name string
	in   *neural.PortMap
	out  *neural.PortMap
}

// newBase registers m and builds its common state. Registration only records
// the instance, so m may still be partially initialized here.
func newBase(m neural.Module, o moduleOptions, in, out *neural.PortMap) base {
	st := o.state
	if st == nil {
		st = graph.State()
	}
	return base{
		name: st.RegisterModule(m, o.name),
		in:   in,
		out:  out,
	}
}

// Name returns the unique registered name.
func (b *base) Name() string { return b.name }

// InputPorts returns the ordered input port declarations.
func (b *base) InputPorts() *neural.PortMap { return b.in }

// OutputPorts returns the ordered output port declarations.
func (b *base) OutputPorts() *neural.PortMap { return b.out }
