package streak

import (
	"fmt"
	"time"
)

// DateLayout is the persisted form of a calendar date.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar date with no time-of-day component. It is stored as
// midnight UTC so that day arithmetic is exact and unaffected by DST.
// The zero Date means "no date"; any constructed Date, 0001-01-01
// included, is a real one.
type Date struct {
	t     time.Time
	valid bool
}

// NewDate returns the date year-month-day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), valid: true}
}

// Today returns the calendar date of now as observed in loc.
// A nil loc means UTC.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t: t, valid: true}, nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return !d.valid
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n), valid: d.valid}
}

// DaysUntil returns the number of whole days from d to other.
// It is negative when other is before d.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}
