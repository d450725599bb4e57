package onboardfilter

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Revision selects one of the documented variants of the OnboardFilter
// dependency declarations.
type Revision int

const (
	// RevisionLatest registers the library itself (or discovers its package
	// path inside the Windows release), delegates to the full companion chain
	// and discovers the trailing packages inside the Windows release.
	RevisionLatest Revision = iota
	// RevisionInitial always registers the library itself, delegates only to
	// OnboardFilterTdsLib and never discovers package paths.
	RevisionInitial
	// RevisionExternal is RevisionLatest with direct self-registration dropped
	// everywhere; linking the library is left to the packaging step.
	RevisionExternal
)

// splitVersion is the first tag that carries the full companion chain.
const splitVersion = "v2.0.0"

var revisionNames = [...]string{
	RevisionLatest:   "latest",
	RevisionInitial:  "initial",
	RevisionExternal: "external",
}

func (r Revision) String() string {
	if r < 0 || int(r) >= len(revisionNames) {
		return fmt.Sprintf("Revision(%d)", int(r))
	}
	return revisionNames[r]
}

// ParseRevision returns the revision called name. The empty name is
// RevisionLatest.
func ParseRevision(name string) (Revision, error) {
	if name == "" {
		return RevisionLatest, nil
	}
	for r, n := range revisionNames {
		if n == name {
			return Revision(r), nil
		}
	}
	return 0, fmt.Errorf("unknown revision %q", name)
}

// RevisionFor picks the revision matching a package tag. The tag is either a
// semantic version ("v1.1.0") or a release tag of the form
// "OnboardFilter-01-01-00".
func RevisionFor(tag string) (Revision, error) {
	v, err := canonicalTag(tag)
	if err != nil {
		return 0, err
	}
	if semver.Compare(v, splitVersion) < 0 {
		return RevisionInitial, nil
	}
	return RevisionLatest, nil
}

func canonicalTag(tag string) (string, error) {
	if semver.IsValid(tag) {
		return semver.Canonical(tag), nil
	}
	// Release tags look like Package-MM-mm-pp.
	parts := strings.Split(tag, "-")
	if len(parts) < 4 {
		return "", fmt.Errorf("invalid package tag %q", tag)
	}
	nums := parts[len(parts)-3:]
	for i, n := range nums {
		x, err := strconv.Atoi(n)
		if err != nil || x < 0 {
			return "", fmt.Errorf("invalid package tag %q", tag)
		}
		nums[i] = strconv.Itoa(x)
	}
	v := "v" + strings.Join(nums, ".")
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid package tag %q", tag)
	}
	return v, nil
}
