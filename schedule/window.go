// Package schedule applies time-of-day intervals to particular days of the
// week, e.g. "4pm to 6pm on weekdays".
package schedule

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/cepro/timespan/interval"
)

// Window is a recurring slot of the day, e.g. "4pm to 6pm on weekdays".
type Window struct {
	ID    uuid.UUID             `json:"id"`
	Days  Days                  `json:"days"`
	Times interval.TimeInterval `json:"times"`
}

// Occurrence anchors the window's times onto the given date to give the
// concrete date-time interval for that day. The date is not checked against
// the day specification; use AppliesOn for that. Windows with an unbounded
// side cannot be anchored and return the interval's error.
func (w *Window) Occurrence(date civil.Date) (interval.LocalInterval, error) {
	return w.Times.OnDate(date)
}

// AppliesOn reports whether the window recurs on the given date.
func (w *Window) AppliesOn(date civil.Date) bool {
	return w.Days.AppliesOn(date)
}

// Contains returns true if the given dt is on an applicable day and within
// the window's times. The start of the window is included, the end excluded.
func (w *Window) Contains(dt civil.DateTime) bool {
	if !w.AppliesOn(dt.Date) {
		return false
	}
	return w.Times.Contains(dt.Time)
}
