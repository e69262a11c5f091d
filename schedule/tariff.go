package schedule

import (
	"cloud.google.com/go/civil"

	"github.com/cepro/timespan/interval"
)

// Tariff is a p/kWh rate that applies during particular times of day, with
// separate times for weekdays and weekends.
type Tariff struct {
	Rate           float64                 `json:"rate"`
	WeekdayPeriods []interval.TimeInterval `json:"weekdayPeriods"`
	WeekendPeriods []interval.TimeInterval `json:"weekendPeriods"`
}

// RateAt returns the applicable p/kWh rate and a boolean indicating if the
// rate applies at the given dt or not.
func (t *Tariff) RateAt(dt civil.DateTime) (float64, bool) {
	periods := t.WeekendPeriods
	if IsWeekday(dt.Date) {
		periods = t.WeekdayPeriods
	}

	for _, period := range periods {
		if period.Contains(dt.Time) {
			return t.Rate, true
		}
	}
	return 0, false
}

// FirstRate returns the first of the given tariffs that applies at the given
// dt if one was found, and a boolean indicating if an applicable tariff was
// found.
func FirstRate(dt civil.DateTime, tariffs []Tariff) (float64, bool) {
	for _, tariff := range tariffs {
		rate, found := tariff.RateAt(dt)
		if found {
			return rate, true
		}
	}
	return 0, false
}

// SumRates returns the sum of the given tariffs that apply at the given dt.
func SumRates(dt civil.DateTime, tariffs []Tariff) float64 {
	total := 0.0

	for _, tariff := range tariffs {
		rate, found := tariff.RateAt(dt)
		if found {
			total += rate
		}
	}
	return total
}
