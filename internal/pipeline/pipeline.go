// Package pipeline runs the export conversion end to end: verify inputs,
// load and invert the media map, parse the deck export, finalize records and
// write the output file.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"langdeck/internal/config"
	"langdeck/internal/deck"
	"langdeck/internal/fileutil"
	"langdeck/internal/logging"
	"langdeck/internal/mediamap"
	"langdeck/internal/output"
	"langdeck/internal/records"
)

// Result describes a completed run.
type Result struct {
	OutputPath string
	Records    []records.Record
	Stats      records.Stats
}

// Count returns the number of records written.
func (r *Result) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Records)
}

// Run executes one conversion. Both inputs are checked before anything is
// read; a missing one yields a *fileutil.MissingInputError and no output.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if cfg == nil {
		return nil, errors.New("pipeline: config is required")
	}
	logger = logging.NewComponentLogger(logger, "pipeline")
	started := time.Now()

	if err := fileutil.RequireFile("input", cfg.Paths.InputFile); err != nil {
		return nil, err
	}
	if err := fileutil.RequireFile("media", cfg.Paths.MediaFile); err != nil {
		return nil, err
	}

	media, err := mediamap.Load(cfg.Paths.MediaFile)
	if err != nil {
		return nil, err
	}
	audioToID := media.Invert()
	logger.Info("media map loaded",
		logging.String("path", cfg.Paths.MediaFile),
		logging.Int("entries", media.Len()),
		logging.Int("filenames", len(audioToID)),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cands, err := deck.ReadFile(cfg.Paths.InputFile, cfg.Deck.HeaderLines)
	if err != nil {
		return nil, err
	}
	logger.Info("deck export parsed",
		logging.String("path", cfg.Paths.InputFile),
		logging.Int("candidates", len(cands)),
	)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	recs, stats := records.Finalize(cands, audioToID, cfg.Deck.UnitCutoff)
	logger.Debug("records finalized",
		logging.Int("kept", len(recs)),
		logging.Int("over_cutoff", stats.OverCutoff),
		logging.Int("audio_mapped", stats.AudioMapped),
		logging.Int("audio_unmapped", stats.AudioMissed),
	)

	n, err := output.WriteFile(cfg.Paths.OutputFile, recs, output.Options{
		Format:   cfg.Output.Format,
		Indent:   cfg.Output.Indent,
		LockPath: cfg.LockPath(),
	})
	if err != nil {
		return nil, err
	}
	logger.Info("output written",
		logging.String("path", cfg.Paths.OutputFile),
		logging.Int("records", n),
		logging.String("elapsed", time.Since(started).Round(time.Millisecond).String()),
	)

	return &Result{OutputPath: cfg.Paths.OutputFile, Records: recs, Stats: stats}, nil
}
