package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDeck(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDeck() error {
	if c.Deck.HeaderLines < 0 {
		return errors.New("deck.header_lines must be >= 0")
	}
	if c.Deck.UnitCutoff <= 0 {
		return errors.New("deck.unit_cutoff must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("output.format: unsupported value %q (want json or yaml)", c.Output.Format)
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		return errors.New("output.indent must be between 0 and 8")
	}
	if c.Paths.OutputFile == c.Paths.InputFile || c.Paths.OutputFile == c.Paths.MediaFile {
		return errors.New("paths.output_file must differ from paths.input_file and paths.media_file")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn or error)", c.Logging.Level)
	}
	return nil
}
