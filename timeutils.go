package gpx

import (
	"fmt"
	"time"
)

// ParseTime parses a GPX timestamp (ISO 8601 UTC, optional fractional
// seconds). Errors carry the ErrParse kind.
func ParseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: missing time element", ErrParse)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad time %q: %v", ErrParse, value, err)
	}
	return t, nil
}

// FormatTime renders a timestamp in the canonical GPX form
// YYYY-MM-DDTHH:MM:SSZ. Sub-second precision is dropped.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
