package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the text form of a Date
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses YYYY-MM-DD. RFC 3339 timestamps are also accepted and
// reduced to their date in the local time zone.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return DateOf(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t.In(time.Local)), nil
	}
	return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
}

// String renders the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Ptr returns a pointer to a copy of d
func (d Date) Ptr() *Date {
	return &d
}

// ParseDueDate accepts "today", "tomorrow" or any form ParseDate accepts
func ParseDueDate(s string, now time.Time) (Date, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return DateOf(now), nil
	case "tomorrow":
		return DateOf(now.AddDate(0, 0, 1)), nil
	}
	return ParseDate(s)
}
