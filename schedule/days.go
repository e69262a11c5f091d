package schedule

import (
	"time"

	"cloud.google.com/go/civil"
)

// Days is a string representation of the different ways to configure days. At
// the moment, only a few options are required, but we could allow any
// combination of days in the future. E.g. with a string like
// "weekends|monday|wednesday".
type Days string

const (
	WeekendDays Days = "weekends"
	WeekdayDays Days = "weekdays"
	AllDays     Days = "all"
)

// Valid reports whether d is one of the known day specifications. Unknown
// values are rejected at configuration load time rather than at evaluation
// time.
func (d Days) Valid() bool {
	switch d {
	case AllDays, WeekdayDays, WeekendDays:
		return true
	default:
		return false
	}
}

// AppliesOn reports whether the day specification covers the given date.
// Unknown specifications cover nothing.
func (d Days) AppliesOn(date civil.Date) bool {
	switch d {
	case AllDays:
		return true
	case WeekdayDays:
		return IsWeekday(date)
	case WeekendDays:
		return !IsWeekday(date)
	default:
		return false
	}
}

// IsWeekday returns true if the date is Mon-Fri inclusive, or false if the
// date is Sat or Sun.
func IsWeekday(date civil.Date) bool {
	day := date.In(time.UTC).Weekday()
	if day == time.Saturday || day == time.Sunday {
		return false
	}
	return true
}
