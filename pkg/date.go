package pkg

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in the YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return d, nil
}

// DateOrToday validates s, or returns today's date when s is empty.
func DateOrToday(s string, now time.Time) (string, error) {
	if s == "" {
		return now.Format(DateLayout), nil
	}
	if _, err := ParseDate(s); err != nil {
		return "", err
	}
	return s, nil
}
