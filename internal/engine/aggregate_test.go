package engine

import (
	"testing"
	"time"
)

func TestAggregate_CountsEveryStatusOnce(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	stats := Aggregate(records, date(2024, time.June, 1))

	if stats.Total != len(records) {
		t.Fatalf("total: want=%d got=%d", len(records), stats.Total)
	}
	if stats.Scheduled != 2 || stats.InProgress != 1 || stats.Completed != 1 {
		t.Fatalf("buckets: got scheduled=%d in-progress=%d completed=%d",
			stats.Scheduled, stats.InProgress, stats.Completed)
	}
	// Record 4 has no dates: it is in Total but in no named bucket.
	if sum := stats.Scheduled + stats.InProgress + stats.Completed; sum != stats.Total-1 {
		t.Fatalf("bucket sum: want=%d got=%d", stats.Total-1, sum)
	}
}

func TestAggregate_BucketsSumToTotalWithoutUnknowns(t *testing.T) {
	t.Parallel()

	records := sampleRecords()[:3]
	stats := Aggregate(records, date(2024, time.June, 1))

	if sum := stats.Scheduled + stats.InProgress + stats.Completed; sum != stats.Total {
		t.Fatalf("bucket sum: want=%d got=%d", stats.Total, sum)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	t.Parallel()

	stats := Aggregate(nil, date(2024, time.June, 1))
	if stats != (Stats{}) {
		t.Fatalf("want zero stats, got %+v", stats)
	}
}

func TestAggregate_RecomputesAgainstInjectedToday(t *testing.T) {
	t.Parallel()

	records := sampleRecords()[:1] // [Jun 5, Jun 10]

	before := Aggregate(records, date(2024, time.June, 1))
	during := Aggregate(records, date(2024, time.June, 7))
	after := Aggregate(records, date(2024, time.June, 11))

	if before.Scheduled != 1 || during.InProgress != 1 || after.Completed != 1 {
		t.Fatalf("sweep: before=%+v during=%+v after=%+v", before, during, after)
	}
}
