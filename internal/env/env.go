// Package env resolves the configuration a declaration run starts from.
package env

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/goplus/libdecl/decl"
	"github.com/goplus/libdecl/internal/graph"
)

// Config is the configuration of a declaration run, merged from flags,
// environment variables and the config file.
type Config struct {
	// Platform overrides the platform of the snapshot.
	Platform string `mapstructure:"platform"`
	// Container overrides the container name of the snapshot.
	Container string `mapstructure:"container"`
	// EnvFile is the YAML environment snapshot to start from.
	EnvFile string `mapstructure:"env"`
	Verbose bool   `mapstructure:"verbose"`
}

// ConfigDir returns the directory searched for config.yaml:
// <UserConfigDir>/libdecl.
func ConfigDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userConfigDir, "libdecl"), nil
}

// Snapshot returns the environment snapshot described by c. Without an
// EnvFile the snapshot has no library groups. Platform defaults to the host
// platform.
func (c *Config) Snapshot() (*graph.Snapshot, error) {
	s := &graph.Snapshot{}
	if c.EnvFile != "" {
		var err error
		if s, err = graph.LoadSnapshot(c.EnvFile); err != nil {
			return nil, err
		}
	}
	if c.Platform != "" {
		s.Platform = c.Platform
	}
	if s.Platform == "" {
		s.Platform = runtime.GOOS
	}
	if c.Container != "" {
		s.ContainerName = c.Container
	}
	return s, nil
}

// NewEnv builds the environment described by c, resolving companion
// declarators through registry.
func (c *Config) NewEnv(registry *decl.Registry) (*graph.Env, error) {
	s, err := c.Snapshot()
	if err != nil {
		return nil, err
	}
	return s.NewEnv(registry)
}
