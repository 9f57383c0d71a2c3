// Package config loads, normalizes, and validates langdeck configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours LANGDECK_* environment overrides,
// optionally sourced from a .env file in the working directory. Relative file
// locations are anchored to the base directory, which defaults to the
// directory holding the running executable.
//
// Always obtain settings through this package so the pipeline receives
// absolute paths, canonical output and log formats, and clear validation errors.
package config
