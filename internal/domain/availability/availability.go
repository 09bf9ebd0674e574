package availability

import (
	"sort"

	"vanbook/internal/domain/shared/dateonly"
)

// Interval is a half-open busy range [Start, End): the unit is occupied on
// every night from Start up to but not including End. The End day itself is
// checkout day and stays free for a new check-in.
type Interval struct {
	Start dateonly.Date
	End   dateonly.Date
}

func (iv Interval) Contains(d dateonly.Date) bool {
	return !d.Before(iv.Start) && d.Before(iv.End)
}

func (iv Interval) overlaps(a, bExclusive dateonly.Date) bool {
	return iv.Start.Before(bExclusive) && a.Before(iv.End)
}

func (iv Interval) valid() bool {
	return !iv.Start.IsZero() && iv.End.After(iv.Start)
}

// Set is the immutable busy-date snapshot for one unit, fetched once per page
// view and queried arbitrarily often.
type Set struct {
	intervals []Interval
}

// NewSet builds a set from upstream intervals. Malformed entries (end not
// after start) are dropped rather than errored; a broken row in the feed
// should not take the whole calendar down.
func NewSet(intervals []Interval) *Set {
	kept := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.valid() {
			kept = append(kept, iv)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Start.Before(kept[j].Start) })
	return &Set{intervals: kept}
}

func (s *Set) IsBusy(d dateonly.Date) bool {
	for _, iv := range s.intervals {
		if iv.Contains(d) {
			return true
		}
	}
	return false
}

// HasBusyWithin reports whether any busy day falls in [a, bExclusive).
// Intervals are day-granular, so interval overlap is equivalent to walking
// each day in the candidate range.
func (s *Set) HasBusyWithin(a, bExclusive dateonly.Date) bool {
	if !bExclusive.After(a) {
		return false
	}
	for _, iv := range s.intervals {
		if iv.overlaps(a, bExclusive) {
			return true
		}
	}
	return false
}

// Intervals returns a copy for rendering layers.
func (s *Set) Intervals() []Interval {
	return append([]Interval(nil), s.intervals...)
}
