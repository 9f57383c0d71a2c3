package deck

import (
	"math"
	"regexp"
	"strconv"
)

// LessonsPerLevel is the number of lessons folded into one level when
// linearizing a deck name.
const LessonsPerLevel = 30

// Whitespace matches Python's str.isspace set: RE2's \s plus \v, the
// information separators \x1c-\x1f, NEL and Unicode space separators.
var deckPattern = regexp.MustCompile(`(?i)Level[\s\v\x1c-\x1f\x{85}\p{Z}]+(\d+)::Lesson[\s\v\x1c-\x1f\x{85}\p{Z}]+(\d+)`)

// UnitNumber extracts the level and lesson from a deck name and returns
// (level-1)*LessonsPerLevel + lesson. The pattern may appear anywhere in the
// name. ok is false when the name does not match or the unit does not fit
// in an int.
func UnitNumber(deckName string) (int, bool) {
	m := deckPattern.FindStringSubmatch(deckName)
	if m == nil {
		return 0, false
	}
	level, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	lesson, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	// level >= 0, so only the positive side can overflow.
	if level-1 > (math.MaxInt-lesson)/LessonsPerLevel {
		return 0, false
	}
	return (level-1)*LessonsPerLevel + lesson, true
}

// FormatUnit renders a unit number as its label, e.g. "Unit_35".
func FormatUnit(unit int) string {
	return "Unit_" + strconv.Itoa(unit)
}
