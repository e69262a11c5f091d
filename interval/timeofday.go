package interval

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rickb777/date/period"
)

// TimeInterval is a half-open interval between two times of day, without any
// date information, e.g. "08:00:00 to 17:30:00". The start is included and
// the end is excluded. Either bound may be absent, in which case the
// interval is unbounded in that direction.
//
// TimeInterval is an immutable value type: copies are independent and it is
// safe to share between goroutines.
type TimeInterval struct {
	start    civil.Time
	end      civil.Time
	hasStart bool
	hasEnd   bool
}

// NewTime returns the interval from start (inclusive) to end (exclusive).
// A zero-length interval (end == start) is allowed; end before start is not.
func NewTime(start, end civil.Time) (TimeInterval, error) {
	if compareTimes(end, start) < 0 {
		return TimeInterval{}, ErrEndBeforeStart
	}
	return TimeInterval{start: start, end: end, hasStart: true, hasEnd: true}, nil
}

// NewTimeOptional is like NewTime but either bound may be nil, meaning the
// interval is unbounded in that direction. The ordering check applies only
// when both bounds are given.
func NewTimeOptional(start, end *civil.Time) (TimeInterval, error) {
	if start != nil && end != nil {
		return NewTime(*start, *end)
	}
	var i TimeInterval
	if start != nil {
		i.start = *start
		i.hasStart = true
	}
	if end != nil {
		i.end = *end
		i.hasEnd = true
	}
	return i, nil
}

// ParseTimeInterval parses text of the form "<start>/<end>", the form
// produced by String, where each side is either "-" (absent bound) or a
// canonical extended ISO-8601 time of day. An out-of-order pair is rejected
// the same way as in NewTime.
func ParseTimeInterval(text string) (TimeInterval, error) {
	sep := strings.IndexByte(text, '/')
	if sep < 0 {
		return TimeInterval{}, fmt.Errorf("%w: %q", ErrNotAnInterval, text)
	}
	startText, endText := text[:sep], text[sep+1:]
	// Anything shorter than "HH:mm" before the separator, other than the
	// absent-bound dash, cannot be a time.
	if sep < 5 && startText != "-" {
		return TimeInterval{}, fmt.Errorf("%w: %q", ErrNotAnInterval, text)
	}
	var start, end *civil.Time
	if startText != "-" {
		t, err := civil.ParseTime(startText)
		if err != nil {
			return TimeInterval{}, fmt.Errorf("parse interval start: %w", err)
		}
		start = &t
	}
	if endText != "-" {
		t, err := civil.ParseTime(endText)
		if err != nil {
			return TimeInterval{}, fmt.Errorf("parse interval end: %w", err)
		}
		end = &t
	}
	return NewTimeOptional(start, end)
}

// Start returns the inclusive start bound, or ErrUnboundedStart if the
// interval extends to the start of time.
func (i TimeInterval) Start() (civil.Time, error) {
	if !i.hasStart {
		return civil.Time{}, ErrUnboundedStart
	}
	return i.start, nil
}

// HasStart reports whether the start bound is present.
func (i TimeInterval) HasStart() bool {
	return i.hasStart
}

// End returns the exclusive end bound, or ErrUnboundedEnd if the interval
// extends to the end of time.
func (i TimeInterval) End() (civil.Time, error) {
	if !i.hasEnd {
		return civil.Time{}, ErrUnboundedEnd
	}
	return i.end, nil
}

// HasEnd reports whether the end bound is present.
func (i TimeInterval) HasEnd() bool {
	return i.hasEnd
}

// Period returns the span from start to end. Both bounds must be present.
func (i TimeInterval) Period() (period.Period, error) {
	start, err := i.Start()
	if err != nil {
		return period.Period{}, err
	}
	end, err := i.End()
	if err != nil {
		return period.Period{}, err
	}
	return period.Between(timeOnEpochDate(start), timeOnEpochDate(end)), nil
}

// Duration returns the span from start to end as a time.Duration. Both
// bounds must be present.
func (i TimeInterval) Duration() (time.Duration, error) {
	p, err := i.Period()
	if err != nil {
		return 0, err
	}
	d, _ := p.Duration()
	return d, nil
}

// OnDate anchors the interval onto the given date, combining the date with
// each bound to build a fully-bounded LocalInterval. Both bounds must be
// present.
func (i TimeInterval) OnDate(date civil.Date) (LocalInterval, error) {
	start, err := i.Start()
	if err != nil {
		return LocalInterval{}, err
	}
	end, err := i.End()
	if err != nil {
		return LocalInterval{}, err
	}
	return NewLocal(
		civil.DateTime{Date: date, Time: start},
		civil.DateTime{Date: date, Time: end},
	)
}

// Contains reports whether t falls within the interval, treating an absent
// start as the infinite past and an absent end as the infinite future. The
// start is included and the end is excluded.
func (i TimeInterval) Contains(t civil.Time) bool {
	if i.hasStart && compareTimes(t, i.start) < 0 {
		return false
	}
	if i.hasEnd && compareTimes(t, i.end) >= 0 {
		return false
	}
	return true
}

// Bounds returns the raw bound pair, nil for an absent bound.
func (i TimeInterval) Bounds() (start, end *civil.Time) {
	if i.hasStart {
		s := i.start
		start = &s
	}
	if i.hasEnd {
		e := i.end
		end = &e
	}
	return start, end
}

// Equal reports whether both intervals have the same bounds, with an absent
// bound equal only to an absent bound.
func (i TimeInterval) Equal(other TimeInterval) bool {
	return i.hasStart == other.hasStart &&
		i.hasEnd == other.hasEnd &&
		(!i.hasStart || i.start == other.start) &&
		(!i.hasEnd || i.end == other.end)
}

// Hash returns a hash consistent with Equal.
func (i TimeInterval) Hash() uint32 {
	var start, end uint32
	if i.hasStart {
		start = hashText(i.start.String())
	}
	if i.hasEnd {
		end = hashText(i.end.String())
	}
	return combineHashes(start, end)
}

// String renders the interval as "<start>/<end>", with "-" for an absent
// bound and the canonical extended ISO-8601 time text otherwise. The result
// round-trips through ParseTimeInterval.
func (i TimeInterval) String() string {
	start, end := "-", "-"
	if i.hasStart {
		start = i.start.String()
	}
	if i.hasEnd {
		end = i.end.String()
	}
	return start + "/" + end
}

// MarshalText renders the interval in its String form.
func (i TimeInterval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses the form produced by MarshalText.
func (i *TimeInterval) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeInterval(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// compareTimes orders two times of day. civil.Time carries no ordering
// methods of its own.
func compareTimes(a, b civil.Time) int {
	an := nanosOfDay(a)
	bn := nanosOfDay(b)
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

func nanosOfDay(t civil.Time) int64 {
	return int64(t.Hour)*int64(time.Hour) +
		int64(t.Minute)*int64(time.Minute) +
		int64(t.Second)*int64(time.Second) +
		int64(t.Nanosecond)
}

// timeOnEpochDate places a time of day on a fixed reference date so that two
// times can be subtracted.
func timeOnEpochDate(t civil.Time) time.Time {
	return time.Date(2000, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC)
}
