package onboardfilter

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/goplus/libdecl/decl"
	"github.com/goplus/libdecl/internal/graph"
)

var (
	genPlatform  = rapid.SampledFrom([]string{"linux", "darwin", "freebsd", "", "windows", "win32"})
	genContainer = rapid.OneOf(
		rapid.SampledFrom([]string{"", ReleaseContainer, "ScienceTools"}),
		rapid.StringMatching(`[A-Za-z]{0,12}`),
	)
	genRevision = rapid.SampledFrom([]Revision{RevisionLatest, RevisionInitial, RevisionExternal})
	genLibs     = rapid.SliceOfN(rapid.StringMatching(`[a-z][a-zA-Z0-9]{0,8}`), 0, 5)
)

func drawRecorder(t *rapid.T) *graph.Recorder {
	return &graph.Recorder{
		Target:    decl.ParsePlatform(genPlatform.Draw(t, "platform")),
		Container: genContainer.Draw(t, "container"),
		Groups: map[decl.Group][]string{
			decl.GroupObf:   genLibs.Draw(t, "obfLibs"),
			decl.GroupGaudi: genLibs.Draw(t, "gaudiLibs"),
			decl.GroupRoot:  genLibs.Draw(t, "rootLibs"),
		},
	}
}

func countLibrary(events []graph.Event, name string) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == decl.AddLibrary && ev.Name == name {
			n++
		}
	}
	return n
}

func TestSystemLibrariesProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		env := drawRecorder(t)
		rev := genRevision.Draw(t, "revision")
		opts := decl.Options{DepsOnly: rapid.Bool().Draw(t, "depsOnly")}

		require.NoError(t, New(rev).Generate(env, opts))

		want := 1
		if env.Target == decl.PlatformWindows {
			want = 0
		}
		require.Equal(t, want, countLibrary(env.Events, "dl"))
		require.Equal(t, want, countLibrary(env.Events, "pthread"))
	})
}

func TestGroupOrderProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rev := genRevision.Draw(t, "revision")
		p := decl.ParsePlatform(genPlatform.Draw(t, "platform"))
		container := genContainer.Draw(t, "container")
		opts := decl.Options{DepsOnly: rapid.Bool().Draw(t, "depsOnly")}

		var groups []decl.Group
		var modules []string
		lastModule := -1
		actions := Plan(rev, p, container, opts)
		for i, a := range actions {
			switch a.Kind {
			case decl.AddGroup:
				groups = append(groups, a.Group)
			case decl.UseModule:
				modules = append(modules, a.Name)
				lastModule = i
			}
		}
		require.Equal(t, []decl.Group{decl.GroupObf, decl.GroupGaudi, decl.GroupRoot}, groups)
		require.Equal(t, Companions(rev), modules)
		require.Equal(t, decl.GroupOf(decl.GroupRoot), actions[lastModule+1], "root group must follow the companion chain")
		require.Equal(t, decl.GroupOf(decl.GroupGaudi), actions[lastModule-len(modules)])
	})
}

func TestDepsOnlyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rev := rapid.SampledFrom([]Revision{RevisionLatest, RevisionInitial}).Draw(t, "revision")
		p := decl.ParsePlatform(genPlatform.Draw(t, "platform"))
		container := genContainer.Draw(t, "container")

		full := Plan(rev, p, container, decl.Options{})
		deps := Plan(rev, p, container, decl.Options{DepsOnly: true})

		require.Len(t, full, len(deps)+1)
		require.Equal(t, deps, full[1:])
		require.Contains(t, []decl.ActionKind{decl.AddLibrary, decl.FindPackage}, full[0].Kind)
		require.Equal(t, Library, full[0].Name)
	})
}

func TestExternalDepsOnlyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := decl.ParsePlatform(genPlatform.Draw(t, "platform"))
		container := genContainer.Draw(t, "container")

		full := Plan(RevisionExternal, p, container, decl.Options{})
		deps := Plan(RevisionExternal, p, container, decl.Options{DepsOnly: true})

		if p == decl.PlatformWindows && container == ReleaseContainer {
			require.Equal(t, decl.Package(Library), full[0])
			require.Equal(t, deps, full[1:])
			return
		}
		require.Equal(t, deps, full)
		require.NotContains(t, full, decl.Library(Library))
	})
}

func TestPlanHasNoSideEffects(t *testing.T) {
	a := Plan(RevisionLatest, decl.PlatformWindows, ReleaseContainer, decl.Options{})
	b := Plan(RevisionLatest, decl.PlatformWindows, ReleaseContainer, decl.Options{})
	if !slices.Equal(a, b) {
		t.Errorf("Plan is not deterministic: %v vs %v", a, b)
	}
	a[0] = decl.Library("mutated")
	if c := Plan(RevisionLatest, decl.PlatformWindows, ReleaseContainer, decl.Options{}); c[0] == a[0] {
		t.Error("Plan results share storage")
	}
}
