package corpus

import (
	"net/mail"
	"strings"
	"time"
)

// ParsePublished parses a stored publication timestamp. Two encodings
// are accepted: calendar-date-first ISO (anything starting with
// YYYY-MM-DD, with or without a time suffix) and RFC 5322 email dates
// (the Naver API default).
func ParsePublished(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	datePart := value
	if i := strings.Index(value, "T"); i >= 0 {
		datePart = value[:i]
	}
	if t, err := time.Parse("2006-01-02", datePart); err == nil {
		return t, true
	}

	if t, err := mail.ParseDate(value); err == nil {
		return t, true
	}

	return time.Time{}, false
}

// WithinWindow reports whether an article dated value is still inside
// the retention window ending at cutoff. Missing or unparseable dates
// are retained: over-retention is preferred to silent data loss.
// Comparison is at day granularity, so an article dated exactly on the
// cutoff day is kept.
func WithinWindow(value string, cutoff time.Time) bool {
	published, ok := ParsePublished(value)
	if !ok {
		return true
	}
	return !day(published).Before(day(cutoff))
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
