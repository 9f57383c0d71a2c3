// Package records turns parsed candidates into the final, numbered record
// list: filter by unit cutoff, stable sort by unit, assign sequential ids and
// rewrite audio references through the inverted media map.
package records

import (
	"cmp"
	"slices"

	"langdeck/internal/deck"
)

// AudioExtension is appended to a media identifier when an audio filename is
// found in the media map.
const AudioExtension = ".mp3"

// Record is the output shape of a card. Field order is the serialized order.
type Record struct {
	Unit          string `json:"unit" yaml:"unit"`
	EnglishPhrase string `json:"english_phrase" yaml:"english_phrase"`
	KoreanPhrase  string `json:"korean_phrase" yaml:"korean_phrase"`
	AudioPath     string `json:"audio_path" yaml:"audio_path"`
	ID            int    `json:"id" yaml:"id"`
}

// Stats reports what Finalize did with its input.
type Stats struct {
	Candidates  int
	OverCutoff  int
	AudioMapped int
	AudioMissed int
}

// Finalize keeps candidates with UnitNumber <= cutoff, stable-sorts them by
// unit number, numbers them from 1 and maps audio filenames present in
// audioToID to "<id>.mp3". Misses keep the cleaned filename. The input slice
// is not modified.
func Finalize(cands []deck.Candidate, audioToID map[string]string, cutoff int) ([]Record, Stats) {
	stats := Stats{Candidates: len(cands)}
	kept := make([]deck.Candidate, 0, len(cands))
	for _, c := range cands {
		if c.UnitNumber <= cutoff {
			kept = append(kept, c)
			continue
		}
		stats.OverCutoff++
	}

	slices.SortStableFunc(kept, func(a, b deck.Candidate) int {
		return cmp.Compare(a.UnitNumber, b.UnitNumber)
	})

	out := make([]Record, len(kept))
	for i, c := range kept {
		audio := c.AudioPath
		if id, ok := audioToID[audio]; ok {
			audio = id + AudioExtension
			stats.AudioMapped++
		} else {
			stats.AudioMissed++
		}
		out[i] = Record{
			Unit:          c.Unit,
			EnglishPhrase: c.EnglishPhrase,
			KoreanPhrase:  c.KoreanPhrase,
			AudioPath:     audio,
			ID:            i + 1,
		}
	}
	return out, stats
}

// UnitCount is the number of records carrying one unit label.
type UnitCount struct {
	Unit    string
	Count   int
	FirstID int
	LastID  int
}

// Summarize groups consecutive records by unit label, in output order.
func Summarize(recs []Record) []UnitCount {
	var out []UnitCount
	for _, r := range recs {
		if n := len(out); n == 0 || out[n-1].Unit != r.Unit {
			out = append(out, UnitCount{Unit: r.Unit, FirstID: r.ID})
		}
		last := &out[len(out)-1]
		last.Count++
		last.LastID = r.ID
	}
	return out
}

