// Package companion provides the declarators OnboardFilter delegates to and
// the registry that wires them together.
package companion

import (
	"github.com/goplus/libdecl/decl"
	"github.com/goplus/libdecl/internal/onboardfilter"
)

// Library is a declarator for a component that links one library of its own,
// forwards some library groups and delegates to other declarators.
type Library struct {
	// Name is the library of the component; empty for header-only packages.
	Name string
	// Groups are forwarded after the library itself.
	Groups []decl.Group
	// Uses names the declarators delegated to, after Groups.
	Uses []string
}

// Plan returns the registrations of l for opts.
func (l *Library) Plan(opts decl.Options) []decl.Action {
	actions := make([]decl.Action, 0, 1+len(l.Groups)+len(l.Uses))
	if !opts.DepsOnly && l.Name != "" {
		actions = append(actions, decl.Library(l.Name))
	}
	for _, g := range l.Groups {
		actions = append(actions, decl.GroupOf(g))
	}
	for _, name := range l.Uses {
		actions = append(actions, decl.Module(name))
	}
	return actions
}

func (l *Library) Generate(env decl.Environment, opts decl.Options) error {
	return decl.Apply(env, l.Plan(opts))
}

func (l *Library) Exists(decl.Environment) bool {
	return true
}

// Declarator names of OnboardFilter itself.
const (
	OnboardFilterLib         = "OnboardFilterLib"
	OnboardFilterLibInitial  = "OnboardFilterLib@initial"
	OnboardFilterLibExternal = "OnboardFilterLib@external"
)

// OnboardFilterFor returns the declarator name of OnboardFilter at rev.
func OnboardFilterFor(rev onboardfilter.Revision) string {
	switch rev {
	case onboardfilter.RevisionInitial:
		return OnboardFilterLibInitial
	case onboardfilter.RevisionExternal:
		return OnboardFilterLibExternal
	}
	return OnboardFilterLib
}

// Register adds OnboardFilter, in each of its revisions, and its companions
// to reg.
func Register(reg *decl.Registry) {
	gaudi := []decl.Group{decl.GroupGaudi}

	reg.Register(onboardfilter.FacilitiesLib, &Library{Name: "facilities"})
	reg.Register(onboardfilter.EventLib, &Library{
		Name:   "Event",
		Groups: gaudi,
		Uses:   []string{onboardfilter.FacilitiesLib},
	})
	reg.Register(onboardfilter.LdfEventLib, &Library{
		Name:   "LdfEvent",
		Groups: gaudi,
		Uses:   []string{onboardfilter.EventLib},
	})
	reg.Register(onboardfilter.CalibDataLib, &Library{
		Name:   "CalibData",
		Groups: gaudi,
		Uses:   []string{onboardfilter.FacilitiesLib},
	})
	reg.Register(onboardfilter.MootSvcLib, &Library{
		Name:   "MootSvc",
		Groups: gaudi,
		Uses:   []string{onboardfilter.CalibDataLib, onboardfilter.FacilitiesLib},
	})
	reg.Register(onboardfilter.GlastSvcLib, &Library{
		Name:   "GlastSvc",
		Groups: gaudi,
		Uses:   []string{onboardfilter.FacilitiesLib},
	})
	reg.Register(onboardfilter.TdsLib, &Library{
		Name:   "OnboardFilterTds",
		Groups: gaudi,
		Uses:   []string{onboardfilter.EventLib},
	})

	reg.Register(OnboardFilterLib, onboardfilter.New(onboardfilter.RevisionLatest))
	reg.Register(OnboardFilterLibInitial, onboardfilter.New(onboardfilter.RevisionInitial))
	reg.Register(OnboardFilterLibExternal, onboardfilter.New(onboardfilter.RevisionExternal))
}

// Default returns a registry populated by Register.
func Default() *decl.Registry {
	reg := decl.NewRegistry()
	Register(reg)
	return reg
}
