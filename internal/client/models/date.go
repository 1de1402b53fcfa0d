package models

import (
	"regexp"
	"strings"
	"time"
)

var (
	ymdRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// IsYMD reports whether v is already a calendar date in YYYY-MM-DD form.
func IsYMD(v string) bool {
	return ymdRe.MatchString(v)
}

// ToYMD normalizes a date value to "YYYY-MM-DD".
//
// Values already in that shape pass through verbatim — no reparse, so a
// calendar date never shifts across timezones. "DD/MM/YYYY" is reordered.
// Anything else is parsed with a few common layouts and reformatted as a UTC
// calendar date. Unparseable input yields "".
func ToYMD(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if ymdRe.MatchString(v) {
		return v
	}
	if m := dmyRe.FindStringSubmatch(v); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"Jan 2, 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC().Format("2006-01-02")
		}
	}
	return ""
}

// Today returns now as a UTC calendar date, the form list filters compare against.
func Today(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}
