package decl

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps declarator names to declarators.
// The zero value is an empty registry ready to use.
type Registry struct {
	mu    sync.RWMutex
	decls map[string]Declarator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register makes d available under name.
// It panics if name is empty, d is nil or name is already registered.
func (r *Registry) Register(name string, d Declarator) {
	if name == "" {
		panic("decl: Register with empty name")
	}
	if d == nil {
		panic("decl: Register declarator is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.decls[name]; dup {
		panic("decl: Register called twice for declarator " + name)
	}
	if r.decls == nil {
		r.decls = make(map[string]Declarator)
	}
	r.decls[name] = d
}

// Lookup returns the declarator registered under name.
func (r *Registry) Lookup(name string) (Declarator, error) {
	r.mu.RLock()
	d, ok := r.decls[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("declarator %s: %w", name, ErrUnresolved)
	}
	return d, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.decls))
	for name := range r.decls {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
