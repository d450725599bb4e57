package decl

import (
	"errors"
	"slices"
	"testing"
)

type stubDecl struct{}

func (stubDecl) Generate(Environment, Options) error { return nil }
func (stubDecl) Exists(Environment) bool             { return true }

func TestRegistry(t *testing.T) {
	var r Registry
	r.Register("b", stubDecl{})
	r.Register("a", stubDecl{})

	if _, err := r.Lookup("a"); err != nil {
		t.Fatalf("Lookup(a) failed: %v", err)
	}
	if _, err := r.Lookup("c"); !errors.Is(err, ErrUnresolved) {
		t.Errorf("Lookup(c) error = %v, want ErrUnresolved", err)
	}
	if got := r.Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestRegistryPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func(r *Registry)
	}{
		{"Duplicate", func(r *Registry) { r.Register("a", stubDecl{}); r.Register("a", stubDecl{}) }},
		{"EmptyName", func(r *Registry) { r.Register("", stubDecl{}) }},
		{"Nil", func(r *Registry) { r.Register("a", nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn(NewRegistry())
		})
	}
}
