package engine

import (
	"strings"
	"time"

	"skilldojo/internal/model"
)

// Status filter values accepted by Filter, alongside the three named statuses.
const StatusFilterAll = "all"

// Date-range filter values accepted by Filter.
const (
	RangeAllTime   = "all-time"
	RangeToday     = "today"
	RangeThisWeek  = "this-week"
	RangeThisMonth = "this-month"
)

type window struct {
	start time.Time
	end   time.Time
}

// rangeWindow computes the reference window for a date filter. The second
// return is false when the filter imposes no date constraint; unrecognized
// values fall through to unconstrained, matching the upstream behavior.
func rangeWindow(rangeFilter string, today time.Time) (window, bool) {
	today = Midnight(today)

	switch rangeFilter {
	case RangeToday:
		return window{start: today, end: today}, true
	case RangeThisWeek:
		// A fixed forward 7-day span beginning at today, not a calendar week.
		return window{start: today, end: today.AddDate(0, 0, 6)}, true
	case RangeThisMonth:
		return window{start: today, end: lastDayOfMonth(today)}, true
	default:
		return window{}, false
	}
}

// Overlaps reports whether the record's effective interval intersects
// [winStart, winEnd], inclusive on both ends. Records without a resolvable
// interval never overlap anything.
func Overlaps(r *model.AllocationRecord, winStart, winEnd time.Time) bool {
	start, end, ok := Interval(r)
	if !ok {
		return false
	}
	winStart = Midnight(winStart)
	winEnd = Midnight(winEnd)
	return !start.After(winEnd) && !end.Before(winStart)
}

// Filter selects the records matching both the status predicate and the
// date-window predicate. Pure: the input is not mutated and relative order is
// preserved.
func Filter(records []model.AllocationRecord, statusFilter, rangeFilter string, today time.Time) []model.AllocationRecord {
	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))
	win, bounded := rangeWindow(rangeFilter, today)

	out := make([]model.AllocationRecord, 0, len(records))
	for i := range records {
		r := &records[i]

		if statusFilter != "" && statusFilter != StatusFilterAll {
			if string(StatusOf(r, today)) != statusFilter {
				continue
			}
		}
		if bounded && !Overlaps(r, win.start, win.end) {
			continue
		}

		out = append(out, *r)
	}
	return out
}
