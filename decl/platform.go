package decl

import "strings"

// Platform identifies the operating-system family a build targets.
type Platform int

const (
	// PlatformOther covers every POSIX-like target.
	PlatformOther Platform = iota
	// PlatformWindows is the Windows-like target.
	PlatformWindows
)

// ParsePlatform maps a platform name, as reported by runtime.GOOS or by the
// build orchestrator ("win32"), to a Platform.
// Unknown and empty names are PlatformOther.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(s) {
	case "windows", "win32", "win64":
		return PlatformWindows
	}
	return PlatformOther
}

func (p Platform) String() string {
	if p == PlatformWindows {
		return "windows"
	}
	return "other"
}
