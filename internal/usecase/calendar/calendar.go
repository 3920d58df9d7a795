// Package calendar reduces instants to calendar days in the single
// timezone the dashboard is deployed for.
package calendar

import (
	"fmt"
	"time"
	_ "time/tzdata" // timezone database for minimal containers
)

// DateFormat is the ISO-8601 layout used to print days
const DateFormat = "2006-01-02"

// Day is a calendar day without time of day or zone. Days are comparable and
// can be used as map keys.
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay returns a normalized Day for the given year, month and day
func NewDay(year int, month time.Month, day int) Day {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day{t.Year(), t.Month(), t.Day()}
}

// utc returns the canonical representation of the day (midnight UTC)
func (d Day) utc() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of d
func (d Day) Year() int { return d.y }

// Month returns the month of d
func (d Day) Month() time.Month { return d.m }

// Day returns the day of the month of d
func (d Day) Day() int { return d.d }

// String formats d as YYYY-MM-DD
func (d Day) String() string { return d.utc().Format(DateFormat) }

// IsZero reports whether d is the zero Day
func (d Day) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether d is earlier than x
func (d Day) Before(x Day) bool { return d.utc().Before(x.utc()) }

// After reports whether d is later than x
func (d Day) After(x Day) bool { return d.utc().After(x.utc()) }

// YearDay returns the day of the year of d, in [1, 366]
func (d Day) YearDay() int { return d.utc().YearDay() }

// AddDays returns the day n days after d; n may be negative
func (d Day) AddDays(n int) Day { return NewDay(d.y, d.m, d.d+n) }

// Sub returns the number of calendar days from x to d (positive when d is after x)
func (d Day) Sub(x Day) int {
	return int(d.utc().Sub(x.utc()) / (24 * time.Hour))
}

// Calendar turns instants into days of one fixed location
type Calendar struct {
	loc *time.Location
}

// New returns a Calendar for loc. A nil location means UTC.
func New(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// Load returns a Calendar for the IANA timezone name (e.g. "America/Los_Angeles")
func Load(name string) (Calendar, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return New(loc), nil
}

// Location returns the calendar's timezone
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// DayOf returns the calendar day t falls on
func (c Calendar) DayOf(t time.Time) Day {
	y, m, d := t.In(c.Location()).Date()
	return Day{y, m, d}
}

// Start returns midnight of day d
func (c Calendar) Start(d Day) time.Time {
	return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, c.Location())
}

// StartOfDay returns midnight of the calendar day t falls on.
// StartOfDay(StartOfDay(t)) == StartOfDay(t).
func (c Calendar) StartOfDay(t time.Time) time.Time {
	return c.Start(c.DayOf(t))
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Daylight saving transitions do not affect the count.
func (c Calendar) DaysBetween(from, to time.Time) int {
	return c.DayOf(to).Sub(c.DayOf(from))
}

// Format formats t in the calendar's timezone
func (c Calendar) Format(t time.Time, layout string) string {
	return t.In(c.Location()).Format(layout)
}
