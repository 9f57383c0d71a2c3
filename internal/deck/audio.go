package deck

import "strings"

const (
	soundPrefix = "[sound:"
	soundSuffix = "]"
)

// CleanAudio trims the field and strips a surrounding "[sound:...]" wrapper.
// Values without the wrapper are returned trimmed.
func CleanAudio(field string) string {
	field = strings.TrimSpace(field)
	if strings.HasPrefix(field, soundPrefix) && strings.HasSuffix(field, soundSuffix) {
		return field[len(soundPrefix) : len(field)-len(soundSuffix)]
	}
	return field
}
