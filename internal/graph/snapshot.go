package graph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goplus/libdecl/decl"
)

// Snapshot is the serialized state of a build environment before any
// declarator runs.
type Snapshot struct {
	Platform      string              `yaml:"platform"`
	ContainerName string              `yaml:"containerName,omitempty"`
	Groups        map[string][]string `yaml:"groups"`
}

// LoadSnapshot reads a YAML snapshot from path.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data)
}

// ParseSnapshot decodes a YAML snapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse environment snapshot: %w", err)
	}
	return &s, nil
}

// TypedGroups converts the group names of s to decl.Group identifiers. It
// fails on names that are not known library groups.
func (s *Snapshot) TypedGroups() (map[decl.Group][]string, error) {
	groups := make(map[decl.Group][]string, len(s.Groups))
	for name, libs := range s.Groups {
		g, err := decl.ParseGroup(name)
		if err != nil {
			return nil, err
		}
		groups[g] = libs
	}
	return groups, nil
}

// NewEnv builds the environment described by s.
func (s *Snapshot) NewEnv(registry *decl.Registry) (*Env, error) {
	groups, err := s.TypedGroups()
	if err != nil {
		return nil, err
	}
	return New(decl.ParsePlatform(s.Platform), s.ContainerName, groups, registry), nil
}
