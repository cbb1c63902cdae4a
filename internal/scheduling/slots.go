package scheduling

import "sort"

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open intervals intersect.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// ParseInterval converts a start/end clock pair to an Interval.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// SlotStarts returns the start minutes within window at which a booking of
// length duration fits entirely before window.End without overlapping any
// busy interval. Candidates step from window.Start in fixed increments.
func SlotStarts(window Interval, duration, step int, busy []Interval) []int {
	if duration <= 0 || step <= 0 || window.End <= window.Start {
		return nil
	}

	var starts []int
	for s := window.Start; s+duration <= window.End; s += step {
		cand := Interval{Start: s, End: s + duration}
		if !overlapsAny(cand, busy) {
			starts = append(starts, s)
		}
	}
	return starts
}

// MergeSlotStarts unions slot lists from multiple windows into one sorted,
// deduplicated list of "HH:mm" strings.
func MergeSlotStarts(lists ...[]int) []string {
	seen := make(map[int]bool)
	var all []int
	for _, list := range lists {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				all = append(all, s)
			}
		}
	}
	sort.Ints(all)

	out := make([]string, 0, len(all))
	for _, s := range all {
		out = append(out, FormatClock(s))
	}
	return out
}

func overlapsAny(cand Interval, busy []Interval) bool {
	for _, b := range busy {
		if cand.Overlaps(b) {
			return true
		}
	}
	return false
}
