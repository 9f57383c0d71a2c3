package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"langdeck/internal/records"
)

var sample = []records.Record{
	{Unit: "Unit_1", EnglishPhrase: "Hello & <welcome>", KoreanPhrase: "안녕하세요", AudioPath: "7.mp3", ID: 1},
}

func TestMarshalJSONLayout(t *testing.T) {
	got, err := Marshal(sample, Options{Format: FormatJSON, Indent: 2})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	want := `[
  {
    "unit": "Unit_1",
    "english_phrase": "Hello & <welcome>",
    "korean_phrase": "안녕하세요",
    "audio_path": "7.mp3",
    "id": 1
  }
]`
	if string(got) != want {
		t.Fatalf("unexpected json:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalZeroIndentIsCompact(t *testing.T) {
	got, err := Marshal(sample[:1], Options{Format: FormatJSON, Indent: 0})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if strings.Contains(string(got), "\n") {
		t.Fatalf("expected single-line JSON, got %q", got)
	}
	if !strings.HasPrefix(string(got), `[{"unit":`) {
		t.Fatalf("unexpected compact layout %q", got)
	}
}

func TestMarshalEmptyIsArray(t *testing.T) {
	got, err := Marshal(nil, Options{Indent: 2})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(got) != "[]" {
		t.Fatalf("expected [], got %q", got)
	}
}

func TestMarshalYAMLKeepsOrderAndText(t *testing.T) {
	got, err := Marshal(sample, Options{Format: FormatYAML, Indent: 2})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	text := string(got)
	if !strings.Contains(text, "안녕하세요") {
		t.Fatalf("expected literal korean text, got:\n%s", text)
	}
	order := []string{"unit:", "english_phrase:", "korean_phrase:", "audio_path:", "id:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(text, key)
		if idx <= last {
			t.Fatalf("key %s out of order in:\n%s", key, text)
		}
		last = idx
	}

	var back []records.Record
	if err := yaml.Unmarshal(got, &back); err != nil {
		t.Fatalf("yaml round trip: %v", err)
	}
	if len(back) != 1 || back[0] != sample[0] {
		t.Fatalf("yaml round trip mismatch: %+v", back)
	}
}

func TestMarshalUnknownFormat(t *testing.T) {
	if _, err := Marshal(sample, Options{Format: "csv"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clean.json")
	if err := os.WriteFile(path, []byte("stale data that is longer than the output"), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := WriteFile(path, sample, Options{Format: FormatJSON, Indent: 2, LockPath: filepath.Join(dir, ".clean.json.lock")})
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 record written, got %d", n)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Marshal(sample, Options{Format: FormatJSON, Indent: 2})
	if string(got) != string(want) {
		t.Fatalf("file content mismatch:\n%s", got)
	}
}

func TestWriteFileRespectsLock(t *testing.T) {
	dir := t.TempDir()
	lockPath := filepath.Join(dir, ".clean.json.lock")
	holder := flock.New(lockPath)
	ok, err := holder.TryLock()
	if err != nil || !ok {
		t.Fatalf("pre-acquire lock: ok=%v err=%v", ok, err)
	}
	t.Cleanup(func() { _ = holder.Unlock() })

	path := filepath.Join(dir, "clean.json")
	_, err = WriteFile(path, sample, Options{LockPath: lockPath})
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("output must not be written while locked: %v", statErr)
	}
}
