// utils/dates.go
package utils

import "time"

// DateLayout is the wire format for calendar dates (no time component).
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// DayOf collapses a timestamp to its YYYY-MM-DD calendar date.
func DayOf(t time.Time) string {
	return t.Format(DateLayout)
}
