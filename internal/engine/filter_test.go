package engine

import (
	"testing"
	"time"

	"skilldojo/internal/model"
)

func sampleRecords() []model.AllocationRecord {
	return []model.AllocationRecord{
		{ID: 1, EmployeeID: 7, StartDate: "2024-06-05", EndDate: "2024-06-10"}, // scheduled on Jun 1
		{ID: 2, EmployeeID: 7, StartDate: "2024-05-28", EndDate: "2024-06-03"}, // in-progress on Jun 1
		{ID: 3, EmployeeID: 9, StartDate: "2024-05-01", EndDate: "2024-05-20"}, // completed on Jun 1
		{ID: 4, EmployeeID: 9},                                                // no dates: unknown
		{ID: 5, EmployeeID: 3, StartDate: "2024-06-09", EndDate: "2024-06-20"}, // scheduled, outside this-week
	}
}

func ids(records []model.AllocationRecord) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func assertIDs(t *testing.T, got []model.AllocationRecord, want ...int64) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("ids: want=%v got=%v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("ids: want=%v got=%v", want, gotIDs)
		}
	}
}

func TestFilter_IdentityFilterReturnsAllInOrder(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	got := Filter(records, StatusFilterAll, RangeAllTime, date(2024, time.June, 1))
	assertIDs(t, got, 1, 2, 3, 4, 5)
}

func TestFilter_ByStatus(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	today := date(2024, time.June, 1)

	assertIDs(t, Filter(records, "scheduled", RangeAllTime, today), 1, 5)
	assertIDs(t, Filter(records, "in-progress", RangeAllTime, today), 2)
	assertIDs(t, Filter(records, "completed", RangeAllTime, today), 3)
}

func TestFilter_UnknownStatusOnlyMatchesAll(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	today := date(2024, time.June, 1)

	for _, status := range []string{"scheduled", "in-progress", "completed"} {
		for _, r := range Filter(records, status, RangeAllTime, today) {
			if r.ID == 4 {
				t.Fatalf("dateless record matched status %q", status)
			}
		}
	}
	assertIDs(t, Filter(records, StatusFilterAll, RangeAllTime, today), 1, 2, 3, 4, 5)
}

func TestFilter_ThisWeekWindow(t *testing.T) {
	t.Parallel()

	// Window for Jun 1 is [Jun 1, Jun 7]: record 1 overlaps, record 5 does not.
	records := sampleRecords()
	got := Filter(records, StatusFilterAll, RangeThisWeek, date(2024, time.June, 1))
	assertIDs(t, got, 1, 2)
}

func TestFilter_TodayWindow(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	got := Filter(records, StatusFilterAll, RangeToday, date(2024, time.June, 1))
	assertIDs(t, got, 2)
}

func TestFilter_ThisMonthWindow(t *testing.T) {
	t.Parallel()

	// Window for Jun 1 is [Jun 1, Jun 30]: everything with a June overlap.
	records := sampleRecords()
	got := Filter(records, StatusFilterAll, RangeThisMonth, date(2024, time.June, 1))
	assertIDs(t, got, 1, 2, 5)
}

func TestFilter_StatusAndDateCombineWithAnd(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	got := Filter(records, "scheduled", RangeThisWeek, date(2024, time.June, 1))
	assertIDs(t, got, 1)
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	today := date(2024, time.June, 1)

	once := Filter(records, "scheduled", RangeThisMonth, today)
	twice := Filter(once, "scheduled", RangeThisMonth, today)
	assertIDs(t, twice, ids(once)...)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	_ = Filter(records, "completed", RangeToday, date(2024, time.June, 1))
	assertIDs(t, records, 1, 2, 3, 4, 5)
}

func TestFilter_EmptyInput(t *testing.T) {
	t.Parallel()

	got := Filter(nil, StatusFilterAll, RangeThisWeek, date(2024, time.June, 1))
	if len(got) != 0 {
		t.Fatalf("want empty, got %d records", len(got))
	}
}

func TestOverlaps_InclusiveBounds(t *testing.T) {
	t.Parallel()

	rec := model.AllocationRecord{StartDate: "2024-06-05", EndDate: "2024-06-10"}

	if !Overlaps(&rec, date(2024, time.June, 1), date(2024, time.June, 5)) {
		t.Fatalf("window ending on start date should overlap")
	}
	if !Overlaps(&rec, date(2024, time.June, 10), date(2024, time.June, 15)) {
		t.Fatalf("window starting on end date should overlap")
	}
	if Overlaps(&rec, date(2024, time.June, 11), date(2024, time.June, 15)) {
		t.Fatalf("window past end date should not overlap")
	}
}
