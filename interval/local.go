package interval

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/rickb777/date/period"
)

// LocalInterval is a half-open interval between two civil date-times,
// e.g. "2024-03-01T08:00:00 to 2024-03-01T17:00:00". The start is included
// and the end is excluded. Either bound may be absent, in which case the
// interval is unbounded in that direction.
//
// LocalInterval is an immutable value type: copies are independent and it is
// safe to share between goroutines.
type LocalInterval struct {
	start    civil.DateTime
	end      civil.DateTime
	hasStart bool
	hasEnd   bool
}

// NewLocal returns the interval from start (inclusive) to end (exclusive).
// A zero-length interval (end == start) is allowed; end before start is not.
func NewLocal(start, end civil.DateTime) (LocalInterval, error) {
	if end.Before(start) {
		return LocalInterval{}, ErrEndBeforeStart
	}
	return LocalInterval{start: start, end: end, hasStart: true, hasEnd: true}, nil
}

// NewLocalOptional is like NewLocal but either bound may be nil, meaning the
// interval is unbounded in that direction. The ordering check applies only
// when both bounds are given.
func NewLocalOptional(start, end *civil.DateTime) (LocalInterval, error) {
	if start != nil && end != nil {
		return NewLocal(*start, *end)
	}
	var i LocalInterval
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

// Start returns the inclusive start bound, or ErrUnboundedStart if the
// interval extends to the start of time.
func (i LocalInterval) Start() (civil.DateTime, error) {
	if !i.hasStart {
		return civil.DateTime{}, ErrUnboundedStart
	}
	return i.start, nil
}

// HasStart reports whether the start bound is present.
func (i LocalInterval) HasStart() bool {
	return i.hasStart
}

// End returns the exclusive end bound, or ErrUnboundedEnd if the interval
// extends to the end of time.
func (i LocalInterval) End() (civil.DateTime, error) {
	if !i.hasEnd {
		return civil.DateTime{}, ErrUnboundedEnd
	}
	return i.end, nil
}

// HasEnd reports whether the end bound is present.
func (i LocalInterval) HasEnd() bool {
	return i.hasEnd
}

// Period returns the span from start to end. Both bounds must be present.
func (i LocalInterval) Period() (period.Period, error) {
	start, err := i.Start()
	if err != nil {
		return period.Period{}, err
	}
	end, err := i.End()
	if err != nil {
		return period.Period{}, err
	}
	return period.Between(start.In(time.UTC), end.In(time.UTC)), nil
}

// Duration returns the span from start to end as a time.Duration. Both
// bounds must be present.
func (i LocalInterval) Duration() (time.Duration, error) {
	p, err := i.Period()
	if err != nil {
		return 0, err
	}
	d, _ := p.Duration()
	return d, nil
}

// TimeInterval projects the interval onto the time-of-day axis, discarding
// the date component of each present bound. The result is not re-validated:
// bounds that fall on different dates can project to an inverted pair.
func (i LocalInterval) TimeInterval() TimeInterval {
	return TimeInterval{
		start:    i.start.Time,
		end:      i.end.Time,
		hasStart: i.hasStart,
		hasEnd:   i.hasEnd,
	}
}

// Contains reports whether dt falls within the interval, treating an absent
// start as the infinite past and an absent end as the infinite future. The
// start is included and the end is excluded.
func (i LocalInterval) Contains(dt civil.DateTime) bool {
	if i.hasStart && dt.Before(i.start) {
		return false
	}
	if i.hasEnd && !dt.Before(i.end) {
		return false
	}
	return true
}

// Bounds returns the raw bound pair, nil for an absent bound.
func (i LocalInterval) Bounds() (start, end *civil.DateTime) {
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
func (i LocalInterval) Equal(other LocalInterval) bool {
	return i.hasStart == other.hasStart &&
		i.hasEnd == other.hasEnd &&
		(!i.hasStart || i.start == other.start) &&
		(!i.hasEnd || i.end == other.end)
}

// Hash returns a hash consistent with Equal.
func (i LocalInterval) Hash() uint32 {
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
// bound and the canonical extended ISO-8601 date-time text otherwise.
func (i LocalInterval) String() string {
	start, end := "-", "-"
	if i.hasStart {
		start = i.start.String()
	}
	if i.hasEnd {
		end = i.end.String()
	}
	return start + "/" + end
}

// MarshalText renders the interval in its String form. There is no
// date-time interval parser, so LocalInterval does not unmarshal.
func (i LocalInterval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}
