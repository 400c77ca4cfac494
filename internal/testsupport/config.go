// Package testsupport provides helpers shared by confmind tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"confmind/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test,
// so every test runs against its own isolated store.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.MindsDir = filepath.Join(base, "conferences")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.SocketPath = filepath.Join(base, "confmind.sock")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMindsDir overrides the minds root on the test config.
func WithMindsDir(dir string) ConfigOption {
	return func(c *config.Config) {
		c.Paths.MindsDir = dir
	}
}
