package onboardfilter

import "github.com/goplus/libdecl/decl"

const (
	// Library is the primary artifact of the component.
	Library = "OnboardFilter"

	// ReleaseContainer is the release whose Windows layout keeps packages
	// out of tree.
	ReleaseContainer = "GlastRelease"
)

// Companion declarators, in delegation order.
const (
	TdsLib        = "OnboardFilterTdsLib"
	GlastSvcLib   = "GlastSvcLib"
	MootSvcLib    = "MootSvcLib"
	CalibDataLib  = "CalibDataLib"
	LdfEventLib   = "LdfEventLib"
	EventLib      = "EventLib"
	FacilitiesLib = "facilitiesLib"
)

// Packages discovered after all other registrations inside the Windows release.
var trailingPackages = []string{"enums", "OnboardFilterTds"}

// Companions returns the companion declarators of rev in delegation order.
func Companions(rev Revision) []string {
	if rev == RevisionInitial {
		return []string{TdsLib}
	}
	return []string{GlastSvcLib, MootSvcLib, CalibDataLib, LdfEventLib, EventLib, FacilitiesLib}
}

// Plan returns the registrations of rev for a build targeting platform p
// inside container, in the order they must be issued.
//
// Plan has no side effects; group contents and companion declarators are
// resolved only when the actions are applied.
func Plan(rev Revision, p decl.Platform, container string, opts decl.Options) []decl.Action {
	windowsRelease := p == decl.PlatformWindows && container == ReleaseContainer

	actions := make([]decl.Action, 0, 16)
	if !opts.DepsOnly {
		switch {
		case rev == RevisionInitial:
			actions = append(actions, decl.Library(Library))
		case windowsRelease:
			actions = append(actions, decl.Package(Library))
		case rev == RevisionLatest:
			actions = append(actions, decl.Library(Library))
		}
	}

	// dl and pthread have no Windows counterpart.
	if p != decl.PlatformWindows {
		actions = append(actions, decl.Library("dl"), decl.Library("pthread"))
	}

	actions = append(actions, decl.GroupOf(decl.GroupObf), decl.GroupOf(decl.GroupGaudi))
	for _, name := range Companions(rev) {
		actions = append(actions, decl.Module(name))
	}
	actions = append(actions, decl.GroupOf(decl.GroupRoot))

	if windowsRelease && rev != RevisionInitial {
		for _, pkg := range trailingPackages {
			actions = append(actions, decl.Package(pkg))
		}
	}
	return actions
}
