// Package registry provides a process-wide object registry with deterministic
// unique-name generation.
package registry

import "strconv"

// Registry maps unique names to objects of type T. Names are assigned at
// registration and never released: the table only grows for the process
// lifetime.
//
// Registration is not synchronized; callers sharing a registry across
// goroutines must serialize access themselves.
type Registry[T any] struct {
	kind   string // used for generated names, e.g. "module" -> "module0"
	byName map[string]T
	order  []string
}

// New creates a registry. The kind seeds generated names for objects
// registered without a proposed name.
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:   kind,
		byName: make(map[string]T),
	}
}

// Register stores obj under a unique name and returns it.
//
// A proposed name is used verbatim when free; on collision the smallest
// integer suffix that frees it is appended ("m" -> "m1" -> "m2"). An empty
// proposal generates "<kind><n>" where n is the registration count.
func (r *Registry[T]) Register(obj T, proposed string) string {
	base := proposed
	if base == "" {
		base = r.kind + strconv.Itoa(len(r.order))
	}
	name := base
	for i := 1; ; i++ {
		if _, taken := r.byName[name]; !taken {
			break
		}
		name = base + strconv.Itoa(i)
	}
	r.byName[name] = obj
	r.order = append(r.order, name)
	return name
}

// Get returns the object registered under name.
func (r *Registry[T]) Get(name string) (T, bool) {
	obj, ok := r.byName[name]
	return obj, ok
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns all registered names in registration order.
func (r *Registry[T]) Names() []string {
	cp := make([]string, len(r.order))
	copy(cp, r.order)
	return cp
}

// Len returns the number of registered objects.
func (r *Registry[T]) Len() int { return len(r.order) }
