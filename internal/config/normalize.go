package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeLogging()
	return nil
}

func (c *Config) applyEnv() {
	overrides := []struct {
		key    string
		target *string
	}{
		{"LANGDECK_BASE_DIR", &c.Paths.BaseDir},
		{"LANGDECK_INPUT_FILE", &c.Paths.InputFile},
		{"LANGDECK_MEDIA_FILE", &c.Paths.MediaFile},
		{"LANGDECK_OUTPUT_FILE", &c.Paths.OutputFile},
		{"LANGDECK_OUTPUT_FORMAT", &c.Output.Format},
		{"LANGDECK_LOG_LEVEL", &c.Logging.Level},
		{"LANGDECK_LOG_FORMAT", &c.Logging.Format},
	}
	for _, o := range overrides {
		if value, ok := os.LookupEnv(o.key); ok && strings.TrimSpace(value) != "" {
			*o.target = strings.TrimSpace(value)
		}
	}
	if value, ok := os.LookupEnv("LANGDECK_UNIT_CUTOFF"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			c.Deck.UnitCutoff = n
		}
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.BaseDir) == "" {
		if c.Paths.BaseDir, err = executableDir(); err != nil {
			return fmt.Errorf("paths.base_dir: resolve executable directory: %w", err)
		}
	}
	if c.Paths.BaseDir, err = expandPath(c.Paths.BaseDir); err != nil {
		return fmt.Errorf("paths.base_dir: %w", err)
	}
	if c.Paths.InputFile, err = c.anchor(c.Paths.InputFile, defaultInputFile); err != nil {
		return fmt.Errorf("paths.input_file: %w", err)
	}
	if c.Paths.MediaFile, err = c.anchor(c.Paths.MediaFile, defaultMediaFile); err != nil {
		return fmt.Errorf("paths.media_file: %w", err)
	}
	if c.Paths.OutputFile, err = c.anchor(c.Paths.OutputFile, defaultOutputFile); err != nil {
		return fmt.Errorf("paths.output_file: %w", err)
	}
	return nil
}

// anchor resolves value against the base directory unless it is absolute or
// starts with a tilde.
func (c *Config) anchor(value, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if !filepath.IsAbs(value) && !strings.HasPrefix(value, "~") {
		value = filepath.Join(c.Paths.BaseDir, value)
	}
	return expandPath(value)
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	switch c.Output.Format {
	case "":
		c.Output.Format = defaultOutFormat
	case "yml":
		c.Output.Format = "yaml"
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
