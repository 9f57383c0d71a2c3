// Package output serializes final records and writes them to disk.
//
// JSON output mirrors a two-space indented array with non-ASCII text and
// HTML-significant characters left unescaped and no trailing newline. YAML
// keeps the same field order. Writes replace the destination atomically while
// holding an advisory lock beside it.
package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"langdeck/internal/fileutil"
	"langdeck/internal/records"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrLocked is returned when another process holds the output lock.
var ErrLocked = errors.New("output file is locked by another langdeck run")

// Options controls serialization and locking.
type Options struct {
	Format string
	Indent int
	// LockPath, when set, names the advisory lock file held during the write.
	LockPath string
}

// Marshal encodes recs in the requested format.
func Marshal(recs []records.Record, opts Options) ([]byte, error) {
	if recs == nil {
		recs = []records.Record{}
	}
	switch strings.ToLower(opts.Format) {
	case "", FormatJSON:
		return marshalJSON(recs, opts.Indent)
	case FormatYAML:
		return marshalYAML(recs, opts.Indent)
	default:
		return nil, fmt.Errorf("output format: unsupported value %q", opts.Format)
	}
}

func marshalJSON(recs []records.Record, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(recs); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func marshalYAML(recs []records.Record, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	if indent > 0 {
		enc.SetIndent(indent)
	}
	if err := enc.Encode(recs); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile serializes recs and replaces path with the result. It returns the
// number of records written.
func WriteFile(path string, recs []records.Record, opts Options) (int, error) {
	data, err := Marshal(recs, opts)
	if err != nil {
		return 0, err
	}

	if opts.LockPath != "" {
		lock := flock.New(opts.LockPath)
		ok, err := lock.TryLock()
		if err != nil {
			return 0, fmt.Errorf("acquire output lock: %w", err)
		}
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrLocked, opts.LockPath)
		}
		defer func() { _ = lock.Unlock() }()
	}

	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write output %s: %w", path, err)
	}
	return len(recs), nil
}
