package engine

import (
	"time"

	"skilldojo/internal/model"
)

// Stats holds the per-status counts for the overview counters. Total counts
// every input record; records with an unresolvable interval increment Total
// but none of the named buckets, so the buckets sum to at most Total.
type Stats struct {
	Scheduled  int `json:"scheduled"`
	InProgress int `json:"in-progress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

// Aggregate reduces a record collection to per-status counts in one pass.
// No memoization: every call recomputes against the today it is given.
func Aggregate(records []model.AllocationRecord, today time.Time) Stats {
	var stats Stats
	for i := range records {
		stats.Total++
		switch StatusOf(&records[i], today) {
		case StatusScheduled:
			stats.Scheduled++
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
