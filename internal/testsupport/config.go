package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"debuglog/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// WithLevel sets logging.level on the test config.
func WithLevel(level string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Level = level
	}
}

// WithSink sets logging.sink on the test config.
func WithSink(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Logging.Sink = path
	}
}

// WriteConfig encodes a default config with opts applied to a config.toml
// under a fresh temp directory and returns its path. HOME is pointed at the
// temp directory so the default lookup cannot pick up a real user file.
func WriteConfig(t testing.TB, opts ...ConfigOption) string {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv("DEBUGLOG_LEVEL", "")
	t.Setenv("DEBUGLOG_SINK", "")

	cfg := config.Default()
	cfg.Logging.Color = "never"
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
