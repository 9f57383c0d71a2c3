// Package testsupport provides fixture builders shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"langdeck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test,
// with every path already resolved the way config.Load would.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BaseDir = base
	cfgVal.Paths.InputFile = filepath.Join(base, "pimsler2.txt")
	cfgVal.Paths.MediaFile = filepath.Join(base, "anki", "media")
	cfgVal.Paths.OutputFile = filepath.Join(base, "clean.json")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithOutputFormat overrides the output format on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// WithUnitCutoff overrides the unit cutoff on the test config.
func WithUnitCutoff(cutoff int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Deck.UnitCutoff = cutoff
	}
}

// WithOutputName places the output file under the test base directory.
func WithOutputName(name string) ConfigOption {
	return func(b *configBuilder) {
		b.t.Helper()
		b.cfg.Paths.OutputFile = filepath.Join(b.baseDir, name)
	}
}
