// Package timestamp parses the weblog timestamp format MM/DD/YYYY HH:MM:SS.
package timestamp

import "time"

// layouts accepted for weblog timestamps, tried in order. The day may be one
// or two digits; month, year, and the 24-hour time part are fixed-width.
var layouts = []string{
	"01/02/2006 15:04:05",
	"01/2/2006 15:04:05",
}

// Parse parses a weblog timestamp. ok is false when the text matches no
// accepted layout.
func Parse(value string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Hour returns the hour of day (0-23) from a weblog timestamp. ok is false
// when the timestamp is malformed.
func Hour(value string) (int, bool) {
	t, ok := Parse(value)
	if !ok {
		return 0, false
	}
	return t.Hour(), true
}
