package decl

import "fmt"

// ActionKind is the kind of a registration.
type ActionKind int

const (
	// AddLibrary registers a single library.
	AddLibrary ActionKind = iota
	// AddGroup registers every library of a group.
	AddGroup
	// UseModule delegates to a companion declarator.
	UseModule
	// FindPackage runs package-path discovery.
	FindPackage
)

var actionNames = [...]string{
	AddLibrary:  "addLibrary",
	AddGroup:    "addGroup",
	UseModule:   "useModule",
	FindPackage: "findPkgPath",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
	return actionNames[k]
}

// Action is one registration a declarator issues. Name is the library,
// module or package name; Group is only meaningful for AddGroup.
type Action struct {
	Kind  ActionKind
	Name  string
	Group Group
}

// Library returns an action registering lib.
func Library(lib string) Action { return Action{Kind: AddLibrary, Name: lib} }

// GroupOf returns an action registering the libraries of g.
func GroupOf(g Group) Action { return Action{Kind: AddGroup, Group: g} }

// Module returns an action delegating to the companion declarator name.
func Module(name string) Action { return Action{Kind: UseModule, Name: name} }

// Package returns an action discovering the path of package pkg.
func Package(pkg string) Action { return Action{Kind: FindPackage, Name: pkg} }

func (a Action) String() string {
	if a.Kind == AddGroup {
		return fmt.Sprintf("%s(%s)", a.Kind, a.Group)
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.Name)
}

// Apply issues actions against env in order. It stops at the first action
// that fails; registrations issued before it stay in place.
func Apply(env Environment, actions []Action) error {
	for _, a := range actions {
		switch a.Kind {
		case AddLibrary:
			env.AddLibrary(a.Name)
		case AddGroup:
			libs, err := env.Group(a.Group)
			if err != nil {
				return err
			}
			env.AddGroup(libs)
		case UseModule:
			if err := env.UseModule(a.Name); err != nil {
				return err
			}
		case FindPackage:
			if err := env.FindPackage(a.Name); err != nil {
				return err
			}
		default:
			return fmt.Errorf("decl: unknown action %v", a.Kind)
		}
	}
	return nil
}
