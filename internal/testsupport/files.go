package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ExportHeader is the six-line metadata block Anki writes ahead of the cards.
const ExportHeader = "#separator:tab\n#html:true\n#guid column:1\n#notetype column:2\n#deck column:3\n#tags column:7\n"

// Card is one row of a deck export fixture.
type Card struct {
	Deck    string
	English string
	Korean  string
	Audio   string
}

// Row renders the card as a tab-separated export line.
func (c Card) Row() string {
	return strings.Join([]string{"guid", "Basic", c.Deck, c.English, c.Korean, c.Audio, ""}, "\t")
}

// WriteExport writes ExportHeader followed by the given cards and any raw
// extra lines to path.
func WriteExport(t testing.TB, path string, cards []Card, extra ...string) {
	t.Helper()

	var b strings.Builder
	b.WriteString(ExportHeader)
	for _, c := range cards {
		b.WriteString(c.Row())
		b.WriteByte('\n')
	}
	for _, line := range extra {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	writeFile(t, path, []byte(b.String()))
}

// MediaEntry is one identifier -> filename pair of a media map fixture.
type MediaEntry struct {
	ID       string
	Filename string
}

// WriteMedia writes the entries as a JSON object in the given order.
func WriteMedia(t testing.TB, path string, entries ...MediaEntry) {
	t.Helper()

	var b strings.Builder
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		key, _ := json.Marshal(e.ID)
		value, _ := json.Marshal(e.Filename)
		b.Write(key)
		b.WriteString(": ")
		b.Write(value)
	}
	b.WriteByte('}')
	writeFile(t, path, []byte(b.String()))
}

// WriteMediaJSON writes raw as the media map, for manifests WriteMedia cannot
// express.
func WriteMediaJSON(t testing.TB, path, raw string) {
	t.Helper()
	writeFile(t, path, []byte(raw))
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
