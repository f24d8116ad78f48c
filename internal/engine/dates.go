package engine

import (
	"strings"
	"time"

	"skilldojo/internal/model"
)

// ParseDate parses a wire-format calendar date, already normalized to
// midnight. The second return is false for empty or malformed input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Interval resolves a record's effective date interval. Rows carrying only
// the legacy single date field collapse to the degenerate interval
// [date, date]; the same fallback fills whichever endpoint is absent.
func Interval(r *model.AllocationRecord) (start, end time.Time, ok bool) {
	startStr := r.StartDate
	if startStr == "" {
		startStr = r.Date
	}
	endStr := r.EndDate
	if endStr == "" {
		endStr = r.Date
	}

	start, okStart := ParseDate(startStr)
	end, okEnd := ParseDate(endStr)
	if !okStart || !okEnd {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// EffectiveStartDate returns the record's start date string after the
// single-date fallback, or "N/A" when nothing is set.
func EffectiveStartDate(r *model.AllocationRecord) string {
	if r.StartDate != "" {
		return r.StartDate
	}
	if r.Date != "" {
		return r.Date
	}
	return "N/A"
}

// EffectiveEndDate is the end-date counterpart of EffectiveStartDate.
func EffectiveEndDate(r *model.AllocationRecord) string {
	if r.EndDate != "" {
		return r.EndDate
	}
	if r.Date != "" {
		return r.Date
	}
	return "N/A"
}

func lastDayOfMonth(t time.Time) time.Time {
	// Day 0 of the next month is the last day of this one.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
