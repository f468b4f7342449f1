package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05.999999999Z0700",
}

// ParseTimestamp parses an ISO-8601 created_at value. The returned time keeps the
// offset written in the string.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// YearWindow returns the created_at range [from, to) that holds every ISO-8601
// timestamp falling in year in some zone. An offset never moves a timestamp by
// more than a day, so the range is the year widened by one day on each side.
func YearWindow(year int) (from, to string) {
	return fmt.Sprintf("%04d-12-31", year-1), fmt.Sprintf("%04d-01-02", year+1)
}
