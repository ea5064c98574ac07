package almanac

import (
	"fmt"

	"github.com/b97tsk/rangeset"
)

// Interval is a half-open range of values [Start, Start+Length).
// A valid Interval has Length >= 1; the operations in this package
// never construct or emit zero-length intervals.
type Interval struct {
	Start  uint64
	Length uint64
}

// End returns the first value past the interval.
func (iv Interval) End() uint64 { return iv.Start + iv.Length }

// Empty reports whether the interval covers no values.
func (iv Interval) Empty() bool { return iv.Length == 0 }

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End())
}

// Min returns the smallest start value among intervals.
// ok is false for an empty collection.
func Min(intervals []Interval) (m uint64, ok bool) {
	for _, iv := range intervals {
		if iv.Empty() {
			continue
		}
		if !ok || iv.Start < m {
			m, ok = iv.Start, true
		}
	}
	return m, ok
}

// TotalLength returns the number of values covered by intervals,
// counting overlapping intervals multiply.
func TotalLength(intervals []Interval) uint64 {
	var n uint64
	for _, iv := range intervals {
		n += iv.Length
	}
	return n
}

// Coverage returns the set of values the intervals cover, disregarding
// order and duplication.
func Coverage(intervals []Interval) rangeset.RangeSet[uint64] {
	var set rangeset.RangeSet[uint64]
	for _, iv := range intervals {
		set.AddRange(iv.Start, iv.End())
	}
	return set
}
