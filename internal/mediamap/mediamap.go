// Package mediamap loads the media manifest that maps short identifiers to
// audio filenames and inverts it for filename lookups.
//
// The manifest is a JSON object. Entries keep their document order, so the
// inversion is deterministic: when two identifiers name the same file, the
// one appearing later in the document wins.
package mediamap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"langdeck/internal/fileutil"
)

// Entry is a single identifier to filename mapping.
type Entry struct {
	ID       string
	Filename string
}

// Map is an ordered media manifest.
type Map struct {
	slots []slot
	index map[string]int
}

// slot holds one identifier in document order. Identifiers whose value is not
// a string keep their position but never resolve to a filename.
type slot struct {
	Entry
	mapped bool
}

// Len returns the number of identifiers that name a file.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, s := range m.slots {
		if s.mapped {
			n++
		}
	}
	return n
}

// Entries returns the filename mappings in document order.
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.slots))
	for _, s := range m.slots {
		if s.mapped {
			out = append(out, s.Entry)
		}
	}
	return out
}

// Lookup returns the filename stored for id.
func (m *Map) Lookup(id string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[id]
	if !ok || !m.slots[i].mapped {
		return "", false
	}
	return m.slots[i].Filename, true
}

// set records id -> filename. A repeated id keeps its first position and
// takes the new value; mapped is false for null and other non-string values.
func (m *Map) set(id, filename string, mapped bool) {
	if i, ok := m.index[id]; ok {
		m.slots[i] = slot{Entry: Entry{ID: id, Filename: filename}, mapped: mapped}
		return
	}
	m.index[id] = len(m.slots)
	m.slots = append(m.slots, slot{Entry: Entry{ID: id, Filename: filename}, mapped: mapped})
}

// Invert builds the filename -> identifier lookup. Duplicate filenames
// resolve to the identifier processed last.
func (m *Map) Invert() map[string]string {
	inverse := make(map[string]string, m.Len())
	if m == nil {
		return inverse
	}
	for _, s := range m.slots {
		if s.mapped {
			inverse[s.Filename] = s.ID
		}
	}
	return inverse
}

// Load reads the manifest at path. A missing file yields a
// *fileutil.MissingInputError.
func Load(path string) (*Map, error) {
	if err := fileutil.RequireFile("media", path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open media map: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("media map %s: %w", path, err)
	}
	return m, nil
}

// LoadInverse loads the manifest at path and returns its inversion.
func LoadInverse(path string) (map[string]string, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return m.Invert(), nil
}

// Decode parses a JSON object, preserving key order. String values name
// files; null, numbers and nested values are kept as unmapped identifiers.
func Decode(r io.Reader) (*Map, error) {
	dec := json.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("decode: expected a JSON object")
	}

	m := &Map{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode key: %w", err)
		}
		id, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode: unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode value for %q: %w", id, err)
		}
		var filename string
		if len(raw) == 0 || raw[0] != '"' || json.Unmarshal(raw, &filename) != nil {
			m.set(id, "", false)
			continue
		}
		m.set(id, filename, true)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode: trailing data after JSON object")
	}
	return m, nil
}
