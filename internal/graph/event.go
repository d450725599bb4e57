package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goplus/libdecl/decl"
)

// Event is one registration received from a declarator.
// Libs is set for AddGroup, Name for every other kind.
type Event struct {
	Kind decl.ActionKind
	Name string
	Libs []string
}

func (ev Event) String() string {
	if ev.Kind == decl.AddGroup {
		return fmt.Sprintf("%s([%s])", ev.Kind, strings.Join(ev.Libs, " "))
	}
	return fmt.Sprintf("%s(%s)", ev.Kind, ev.Name)
}

// Recorder is a decl.Environment that records registrations without acting
// on them: companion declarators are not invoked and nothing is deduplicated.
type Recorder struct {
	Target    decl.Platform
	Container string
	Groups    map[decl.Group][]string

	// Missing lists companion names UseModule reports as unresolved.
	Missing []string

	Events []Event
}

func (r *Recorder) Platform() decl.Platform { return r.Target }
func (r *Recorder) ContainerName() string   { return r.Container }

func (r *Recorder) Group(g decl.Group) ([]string, error) {
	libs, ok := r.Groups[g]
	if !ok {
		return nil, fmt.Errorf("library group %s: %w", g, decl.ErrUnresolved)
	}
	return libs, nil
}

func (r *Recorder) AddLibrary(name string) {
	r.Events = append(r.Events, Event{Kind: decl.AddLibrary, Name: name})
}

func (r *Recorder) AddGroup(libs []string) {
	r.Events = append(r.Events, Event{Kind: decl.AddGroup, Libs: slices.Clone(libs)})
}

func (r *Recorder) UseModule(name string) error {
	if slices.Contains(r.Missing, name) {
		return fmt.Errorf("declarator %s: %w", name, decl.ErrUnresolved)
	}
	r.Events = append(r.Events, Event{Kind: decl.UseModule, Name: name})
	return nil
}

func (r *Recorder) FindPackage(name string) error {
	r.Events = append(r.Events, Event{Kind: decl.FindPackage, Name: name})
	return nil
}

// Strings returns the recorded events formatted with Event.String.
func (r *Recorder) Strings() []string {
	return eventStrings(r.Events)
}

func eventStrings(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.String()
	}
	return out
}
