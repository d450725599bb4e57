package decl

import (
	"errors"
	"fmt"
)

// ErrUnknownGroup is returned when a group name is not one of the known
// library groups.
var ErrUnknownGroup = errors.New("unknown library group")

// Group identifies a library group: a named, ordered collection of library
// names populated by the environment before any declarator runs.
type Group int

const (
	// GroupObf holds the onboard-filter specific libraries.
	GroupObf Group = iota
	// GroupGaudi holds the framework and service libraries.
	GroupGaudi
	// GroupRoot holds the analysis and visualization libraries.
	GroupRoot
)

var groupNames = [...]string{
	GroupObf:   "obfLibs",
	GroupGaudi: "gaudiLibs",
	GroupRoot:  "rootLibs",
}

// Groups returns all known groups in declaration order.
func Groups() []Group {
	return []Group{GroupObf, GroupGaudi, GroupRoot}
}

// ParseGroup returns the Group named name.
func ParseGroup(name string) (Group, error) {
	for g, n := range groupNames {
		if n == name {
			return Group(g), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupNames[g]
}
