// Package reportdate derives the calendar date used to partition stored rows.
package reportdate

import (
	"fmt"
	"time"
)

const Layout = "2006-01-02"

const DefaultTimezone = "America/New_York"

// Clock yields the reporting date in a fixed time zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(timezone string) (*Clock, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load reporting time zone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

func (c *Clock) Today() string {
	return c.now().In(c.loc).Format(Layout)
}

// Valid reports whether value is a YYYY-MM-DD calendar date.
func Valid(value string) bool {
	_, err := time.Parse(Layout, value)
	return err == nil
}

// Pinned always reports the same date, e.g. when replaying a known game day.
type Pinned string

func (p Pinned) Today() string {
	return string(p)
}
