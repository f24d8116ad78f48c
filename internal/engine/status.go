package engine

import (
	"time"

	"skilldojo/internal/model"
)

// Status is the lifecycle stage derived from comparing today's date with a
// record's interval. It is recomputed on every evaluation and never persisted;
// the status column stored on a record is unrelated and carried for display.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"

	// StatusUnknown is the fail-closed sentinel for records whose interval is
	// missing or unparseable. Such records never match a named status but stay
	// in totals and in unfiltered results.
	StatusUnknown Status = "unknown"
)

// Midnight strips the time-of-day so same-day comparisons are exact.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DeriveStatus maps an interval and a reference date to a lifecycle stage.
// Callers inject today rather than this function reading the clock, so
// repeated evaluations within a batch are deterministic.
//
// A single-day interval (start == end) is in-progress on that day and
// completed the day after.
func DeriveStatus(start, end, today time.Time) Status {
	start = Midnight(start)
	end = Midnight(end)
	today = Midnight(today)

	switch {
	case today.Before(start):
		return StatusScheduled
	case today.After(end):
		return StatusCompleted
	default:
		return StatusInProgress
	}
}

// StatusOf derives the status of one record, resolving the record's effective
// interval first. Malformed or missing dates yield StatusUnknown instead of
// failing the surrounding batch.
func StatusOf(r *model.AllocationRecord, today time.Time) Status {
	start, end, ok := Interval(r)
	if !ok {
		return StatusUnknown
	}
	return DeriveStatus(start, end, today)
}

// AnnotateGroups stamps the derived status onto every skill entry of the
// grouped view. Kept separate from GroupByEmployee so grouping itself stays
// independent of the status machine.
func AnnotateGroups(groups []model.EmployeeGroup, today time.Time) {
	for gi := range groups {
		for si := range groups[gi].Skills {
			entry := &groups[gi].Skills[si]
			entry.CurrentStatus = string(StatusOf(&entry.ModelData, today))
		}
	}
}
