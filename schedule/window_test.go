package schedule

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cepro/timespan/interval"
)

// 2024-03-01 is a Friday, 2024-03-02 a Saturday.
var (
	friday   = civil.Date{Year: 2024, Month: time.March, Day: 1}
	saturday = civil.Date{Year: 2024, Month: time.March, Day: 2}
)

func mustTimeInterval(t *testing.T, text string) interval.TimeInterval {
	t.Helper()
	i, err := interval.ParseTimeInterval(text)
	require.NoError(t, err)
	return i
}

func timeIntervals(t *testing.T, texts ...string) []interval.TimeInterval {
	t.Helper()
	intervals := make([]interval.TimeInterval, 0, len(texts))
	for _, text := range texts {
		intervals = append(intervals, mustTimeInterval(t, text))
	}
	return intervals
}

func TestDaysAppliesOn(t *testing.T) {
	tests := []struct {
		name     string
		days     Days
		date     civil.Date
		expected bool
	}{
		{"AllOnWeekday", AllDays, friday, true},
		{"AllOnWeekend", AllDays, saturday, true},
		{"WeekdaysOnWeekday", WeekdayDays, friday, true},
		{"WeekdaysOnWeekend", WeekdayDays, saturday, false},
		{"WeekendsOnWeekday", WeekendDays, friday, false},
		{"WeekendsOnWeekend", WeekendDays, saturday, true},
		{"UnknownSpecification", Days("bank-holidays"), friday, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.days.AppliesOn(test.date))
		})
	}
}

func TestDaysValid(t *testing.T) {
	assert.True(t, AllDays.Valid())
	assert.True(t, WeekdayDays.Valid())
	assert.True(t, WeekendDays.Valid())
	assert.False(t, Days("").Valid())
	assert.False(t, Days("bank-holidays").Valid())
}

func TestWindowContains(t *testing.T) {
	window := Window{
		ID:    uuid.MustParse("64d84428-b989-4443-9a5e-aed02c224ee7"),
		Days:  WeekdayDays,
		Times: mustTimeInterval(t, "16:00:00/18:00:00"),
	}

	tests := []struct {
		name     string
		dt       civil.DateTime
		expected bool
	}{
		{"RightDayInside", civil.DateTime{Date: friday, Time: civil.Time{Hour: 16, Minute: 53}}, true},
		{"RightDayOnStart", civil.DateTime{Date: friday, Time: civil.Time{Hour: 16}}, true},
		{"RightDayOnEnd", civil.DateTime{Date: friday, Time: civil.Time{Hour: 18}}, false},
		{"RightDayWrongTime", civil.DateTime{Date: friday, Time: civil.Time{Hour: 10}}, false},
		{"WrongDayRightTime", civil.DateTime{Date: saturday, Time: civil.Time{Hour: 17}}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, window.Contains(test.dt))
		})
	}
}

func TestWindowOccurrence(t *testing.T) {
	window := Window{
		ID:    uuid.MustParse("f780594f-cbc2-462d-b845-4aa060d5bbe5"),
		Days:  AllDays,
		Times: mustTimeInterval(t, "16:00:00/18:00:00"),
	}

	occurrence, err := window.Occurrence(friday)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T16:00:00/2024-03-01T18:00:00", occurrence.String())
}

func TestWindowOccurrenceUnbounded(t *testing.T) {
	window := Window{
		Days:  AllDays,
		Times: mustTimeInterval(t, "-/18:00:00"),
	}

	_, err := window.Occurrence(friday)
	assert.ErrorIs(t, err, interval.ErrUnboundedStart)
}
