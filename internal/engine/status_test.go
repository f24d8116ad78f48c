package engine

import (
	"testing"
	"time"

	"skilldojo/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatus_SingleDayWindow(t *testing.T) {
	t.Parallel()

	d := date(2024, time.June, 1)

	if got := DeriveStatus(d, d, date(2024, time.May, 31)); got != StatusScheduled {
		t.Fatalf("day before: want=%s got=%s", StatusScheduled, got)
	}
	if got := DeriveStatus(d, d, d); got != StatusInProgress {
		t.Fatalf("same day: want=%s got=%s", StatusInProgress, got)
	}
	if got := DeriveStatus(d, d, date(2024, time.June, 2)); got != StatusCompleted {
		t.Fatalf("day after: want=%s got=%s", StatusCompleted, got)
	}
}

func TestDeriveStatus_SweepPartitionsTimeline(t *testing.T) {
	t.Parallel()

	start := date(2024, time.June, 5)
	end := date(2024, time.June, 10)

	var seen []Status
	for today := start.AddDate(0, 0, -1); !today.After(end.AddDate(0, 0, 1)); today = today.AddDate(0, 0, 1) {
		s := DeriveStatus(start, end, today)
		if len(seen) == 0 || seen[len(seen)-1] != s {
			seen = append(seen, s)
		}
	}

	want := []Status{StatusScheduled, StatusInProgress, StatusCompleted}
	if len(seen) != len(want) {
		t.Fatalf("transitions: want=%v got=%v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("transitions: want=%v got=%v", want, seen)
		}
	}
}

func TestDeriveStatus_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	start := date(2024, time.June, 1)
	end := date(2024, time.June, 1)
	lateToday := time.Date(2024, time.June, 1, 23, 59, 0, 0, time.UTC)

	if got := DeriveStatus(start, end, lateToday); got != StatusInProgress {
		t.Fatalf("late same day: want=%s got=%s", StatusInProgress, got)
	}
}

func TestStatusOf_MalformedDatesFailClosed(t *testing.T) {
	t.Parallel()

	today := date(2024, time.June, 1)

	cases := []struct {
		name string
		rec  model.AllocationRecord
	}{
		{"no dates", model.AllocationRecord{}},
		{"garbage start", model.AllocationRecord{StartDate: "not-a-date", EndDate: "2024-06-10"}},
		{"garbage end", model.AllocationRecord{StartDate: "2024-06-01", EndDate: "10/06/2024"}},
		{"start only", model.AllocationRecord{StartDate: "2024-06-01"}},
	}
	for _, tc := range cases {
		if got := StatusOf(&tc.rec, today); got != StatusUnknown {
			t.Fatalf("%s: want=%s got=%s", tc.name, StatusUnknown, got)
		}
	}
}

func TestStatusOf_LegacySingleDateCollapsesToDegenerateInterval(t *testing.T) {
	t.Parallel()

	rec := model.AllocationRecord{Date: "2024-06-01"}

	if got := StatusOf(&rec, date(2024, time.May, 31)); got != StatusScheduled {
		t.Fatalf("before: want=%s got=%s", StatusScheduled, got)
	}
	if got := StatusOf(&rec, date(2024, time.June, 1)); got != StatusInProgress {
		t.Fatalf("on date: want=%s got=%s", StatusInProgress, got)
	}
	if got := StatusOf(&rec, date(2024, time.June, 2)); got != StatusCompleted {
		t.Fatalf("after: want=%s got=%s", StatusCompleted, got)
	}
}

func TestStatusOf_DateFillsMissingEndpoint(t *testing.T) {
	t.Parallel()

	rec := model.AllocationRecord{StartDate: "2024-06-01", Date: "2024-06-05"}
	if got := StatusOf(&rec, date(2024, time.June, 3)); got != StatusInProgress {
		t.Fatalf("fallback end: want=%s got=%s", StatusInProgress, got)
	}
}

func TestAnnotateGroups_StampsDerivedStatus(t *testing.T) {
	t.Parallel()

	groups := []model.EmployeeGroup{{
		EmployeeID: 7,
		Skills: []model.SkillEntry{
			{ModelData: model.AllocationRecord{StartDate: "2024-06-05", EndDate: "2024-06-10"}},
			{ModelData: model.AllocationRecord{StartDate: "2024-05-01", EndDate: "2024-05-02"}},
			{ModelData: model.AllocationRecord{}},
		},
	}}

	AnnotateGroups(groups, date(2024, time.June, 1))

	want := []string{"scheduled", "completed", "unknown"}
	for i, w := range want {
		if got := groups[0].Skills[i].CurrentStatus; got != w {
			t.Fatalf("entry %d: want=%s got=%s", i, w, got)
		}
	}
}
