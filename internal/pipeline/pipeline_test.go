package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"langdeck/internal/fileutil"
	"langdeck/internal/logging"
	"langdeck/internal/pipeline"
	"langdeck/internal/records"
	"langdeck/internal/testsupport"
)

func fixtureCards() []testsupport.Card {
	return []testsupport.Card{
		{Deck: "Pimsleur::Level 2::Lesson 5", English: "Excuse me", Korean: "실례합니다", Audio: "[sound:pim_l2_05.mp3]"},
		{Deck: "Random Deck", English: "ignored", Korean: "무시", Audio: "[sound:x.mp3]"},
		{Deck: "Pimsleur::Level 1::Lesson 2", English: "Hello", Korean: "안녕하세요", Audio: "[sound:clip.mp3]"},
		{Deck: "Pimsleur::Level 3::Lesson 1", English: "Too late", Korean: "늦었어요", Audio: "[sound:late.mp3]"},
		{Deck: "Pimsleur::Level 1::Lesson 2", English: "Yes", Korean: "네", Audio: "unknown.mp3"},
	}
}

func TestRunWritesFinalRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteExport(t, cfg.Paths.InputFile, fixtureCards(), "short\trow")
	testsupport.WriteMedia(t, cfg.Paths.MediaFile,
		testsupport.MediaEntry{ID: "7", Filename: "clip.mp3"},
		testsupport.MediaEntry{ID: "9", Filename: "pim_l2_05.mp3"},
	)

	res, err := pipeline.Run(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Count() != 3 {
		t.Fatalf("expected 3 records, got %d", res.Count())
	}

	data, err := os.ReadFile(cfg.Paths.OutputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got []records.Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := []records.Record{
		{Unit: "Unit_2", EnglishPhrase: "Hello", KoreanPhrase: "안녕하세요", AudioPath: "7.mp3", ID: 1},
		{Unit: "Unit_2", EnglishPhrase: "Yes", KoreanPhrase: "네", AudioPath: "unknown.mp3", ID: 2},
		{Unit: "Unit_35", EnglishPhrase: "Excuse me", KoreanPhrase: "실례합니다", AudioPath: "9.mp3", ID: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if !bytes.Contains(data, []byte("안녕하세요")) {
		t.Fatal("expected korean text written literally")
	}
	if bytes.Contains(data, []byte("unit_number")) {
		t.Fatal("unit_number must not reach the output")
	}
}

func TestRunIgnoresNonStringMediaValues(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteExport(t, cfg.Paths.InputFile, []testsupport.Card{
		{Deck: "Level 1::Lesson 1", English: "No audio", Korean: "소리 없음", Audio: ""},
		{Deck: "Level 1::Lesson 2", English: "Hello", Korean: "안녕하세요", Audio: "[sound:clip.mp3]"},
		{Deck: "Level 614891469123651722::Lesson 1", English: "Wrapped", Korean: "넘침", Audio: ""},
	})
	testsupport.WriteMediaJSON(t, cfg.Paths.MediaFile, `{"1": null, "2": 5, "3": "clip.mp3"}`)

	res, err := pipeline.Run(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := []records.Record{
		{Unit: "Unit_1", EnglishPhrase: "No audio", KoreanPhrase: "소리 없음", AudioPath: "", ID: 1},
		{Unit: "Unit_2", EnglishPhrase: "Hello", KoreanPhrase: "안녕하세요", AudioPath: "3.mp3", ID: 2},
	}
	if diff := cmp.Diff(want, res.Records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteExport(t, cfg.Paths.InputFile, fixtureCards())
	testsupport.WriteMedia(t, cfg.Paths.MediaFile,
		testsupport.MediaEntry{ID: "1", Filename: "clip.mp3"},
		testsupport.MediaEntry{ID: "2", Filename: "clip.mp3"},
	)

	if _, err := pipeline.Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(cfg.Paths.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pipeline.Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(cfg.Paths.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("runs differ:\n%s\n---\n%s", first, second)
	}
	if !bytes.Contains(first, []byte(`"audio_path": "2.mp3"`)) {
		t.Fatalf("expected last duplicate identifier to win, got:\n%s", first)
	}
}

func TestRunMissingInputs(t *testing.T) {
	t.Run("input", func(t *testing.T) {
		cfg := testsupport.NewConfig(t)
		testsupport.WriteMedia(t, cfg.Paths.MediaFile)

		_, err := pipeline.Run(context.Background(), cfg, nil)
		var mie *fileutil.MissingInputError
		if !errors.As(err, &mie) || mie.Role != "input" || mie.Path != cfg.Paths.InputFile {
			t.Fatalf("expected missing input error, got %v", err)
		}
		assertNoOutput(t, cfg.Paths.OutputFile)
	})

	t.Run("media", func(t *testing.T) {
		cfg := testsupport.NewConfig(t)
		testsupport.WriteExport(t, cfg.Paths.InputFile, fixtureCards())

		_, err := pipeline.Run(context.Background(), cfg, nil)
		var mie *fileutil.MissingInputError
		if !errors.As(err, &mie) || mie.Role != "media" || mie.Path != cfg.Paths.MediaFile {
			t.Fatalf("expected missing media error, got %v", err)
		}
		assertNoOutput(t, cfg.Paths.OutputFile)
	})
}

func TestRunYAMLOutput(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithOutputFormat("yaml"), testsupport.WithOutputName("clean.yaml"))
	testsupport.WriteExport(t, cfg.Paths.InputFile, fixtureCards())
	testsupport.WriteMedia(t, cfg.Paths.MediaFile)

	if _, err := pipeline.Run(context.Background(), cfg, nil); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	data, err := os.ReadFile(cfg.Paths.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "- unit: Unit_2\n") {
		t.Fatalf("unexpected yaml output:\n%s", data)
	}
}

func TestRunCustomCutoff(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithUnitCutoff(90))
	testsupport.WriteExport(t, cfg.Paths.InputFile, fixtureCards())
	testsupport.WriteMedia(t, cfg.Paths.MediaFile)

	res, err := pipeline.Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if res.Count() != 4 {
		t.Fatalf("expected unit 61 kept with cutoff 90, got %d records", res.Count())
	}
	if res.Stats.OverCutoff != 0 {
		t.Fatalf("unexpected over-cutoff count %d", res.Stats.OverCutoff)
	}
}

func TestRunCanceledContext(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteExport(t, cfg.Paths.InputFile, fixtureCards())
	testsupport.WriteMedia(t, cfg.Paths.MediaFile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pipeline.Run(ctx, cfg, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	assertNoOutput(t, cfg.Paths.OutputFile)
}

func assertNoOutput(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no output at %s, stat err=%v", path, err)
	}
}
