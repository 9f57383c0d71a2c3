package deck

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Fixed column positions of a card row.
const (
	ColumnDeck    = 2
	ColumnEnglish = 3
	ColumnKorean  = 4
	ColumnAudio   = 5

	// MinFields is the shortest row that carries every column above.
	MinFields = 6
)

// Candidate is a parsed card that qualified for output. UnitNumber is always
// derived from the deck name, so every candidate carries a real unit.
type Candidate struct {
	Unit          string
	UnitNumber    int
	EnglishPhrase string
	KoreanPhrase  string
	AudioPath     string
}

// ReadFile opens path and parses it with Parse.
func ReadFile(path string, headerLines int) ([]Candidate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck export: %w", err)
	}
	defer f.Close()

	cands, err := Parse(f, headerLines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cands, nil
}

// Parse skips headerLines raw lines, reads the remaining tab-delimited rows
// and returns the qualifying candidates in input order. A leading byte order
// mark is removed before any line is counted.
func Parse(r io.Reader, headerLines int) ([]Candidate, error) {
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	for i := 0; i < headerLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return []Candidate{}, nil
			}
			return nil, fmt.Errorf("skip header line %d: %w", i+1, err)
		}
	}

	rows, err := readRows(br)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows), nil
}

func readRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}
		rows = append(rows, record)
	}
}

// ParseRows converts data rows into candidates. Rows with fewer than
// MinFields fields and rows whose deck name carries no unit are dropped.
func ParseRows(rows [][]string) []Candidate {
	out := make([]Candidate, 0, len(rows))
	for _, fields := range rows {
		if c, ok := parseRow(fields); ok {
			out = append(out, c)
		}
	}
	return out
}

func parseRow(fields []string) (Candidate, bool) {
	if len(fields) < MinFields {
		return Candidate{}, false
	}
	unit, ok := UnitNumber(fields[ColumnDeck])
	if !ok {
		return Candidate{}, false
	}
	return Candidate{
		Unit:          FormatUnit(unit),
		UnitNumber:    unit,
		EnglishPhrase: fields[ColumnEnglish],
		KoreanPhrase:  fields[ColumnKorean],
		AudioPath:     CleanAudio(fields[ColumnAudio]),
	}, true
}
