// Package interval provides immutable half-open intervals over civil
// (zone-less) date-times and times of day. Each interval runs from an
// inclusive start to an exclusive end, and either bound may be absent to
// mean "unbounded" in that direction.
package interval

import (
	"errors"
	"hash/fnv"
)

var (
	// ErrEndBeforeStart is returned by the constructors when both bounds are
	// present and the end sorts before the start.
	ErrEndBeforeStart = errors.New("the end parameter must be equal to or later than the start parameter")

	// ErrUnboundedStart is returned when the start bound is requested from an
	// interval that has none.
	ErrUnboundedStart = errors.New("interval extends to start of time")

	// ErrUnboundedEnd is returned when the end bound is requested from an
	// interval that has none.
	ErrUnboundedEnd = errors.New("interval extends to end of time")

	// ErrNotAnInterval is returned when parsing text that does not contain a
	// valid "start/end" separator.
	ErrNotAnInterval = errors.New("not an interval value")
)

// combineHashes folds two bound hashes into one, order-sensitively, with
// uint32 wraparound. An absent bound contributes zero.
func combineHashes(start, end uint32) uint32 {
	return (17*37+start)*37 + end
}

// hashText hashes a bound's canonical text with FNV-32a.
func hashText(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
