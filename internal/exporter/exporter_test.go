package exporter

import (
	"path/filepath"
	"testing"
	"time"

	"skilldojo/internal/model"
	"skilldojo/internal/store"
)

func seedStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "skilldojo.db")
	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	empID, err := st.InsertEmployee(&model.Employee{
		EmployeeCode: "EMP001", FullName: "Asha Verma", Designation: "Operator",
	})
	if err != nil {
		t.Fatalf("insert employee: %v", err)
	}
	deptID, err := st.InsertDepartment(&model.Department{Department: "Head Lamp Assembly"})
	if err != nil {
		t.Fatalf("insert department: %v", err)
	}
	opID, err := st.InsertOperation(&model.Operation{MatrixID: deptID, Number: 3, Name: "Lens Fitting"})
	if err != nil {
		t.Fatalf("insert operation: %v", err)
	}

	records := []*model.AllocationRecord{
		{EmployeeID: empID, DepartmentID: deptID, OperationID: opID, StartDate: "2024-06-05", EndDate: "2024-06-10"},
		{EmployeeID: empID, DepartmentID: deptID, OperationID: opID, StartDate: "2024-05-01", EndDate: "2024-05-02"},
	}
	if err := st.BatchInsertAllocations(records); err != nil {
		t.Fatalf("seed allocations: %v", err)
	}
	return st
}

func TestExport_WritesDetailAndSummary(t *testing.T) {
	t.Parallel()

	st := seedStore(t)
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	f, err := NewExporter(st).Export(ExportOptions{Today: today})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(detailSheet)
	if err != nil {
		t.Fatalf("read detail sheet: %v", err)
	}
	if len(rows) != 3 { // header + 2 records
		t.Fatalf("detail rows: want=3 got=%d", len(rows))
	}
	if rows[1][0] != "EMP001" || rows[1][4] != "Lens Fitting" {
		t.Fatalf("detail row: %v", rows[1])
	}
	if rows[1][8] != "scheduled" || rows[2][8] != "completed" {
		t.Fatalf("derived statuses: %v / %v", rows[1][8], rows[2][8])
	}

	summary, err := f.GetRows(summarySheet)
	if err != nil {
		t.Fatalf("read summary sheet: %v", err)
	}
	got := map[string]string{}
	for _, row := range summary {
		if len(row) >= 2 {
			got[row[0]] = row[1]
		}
	}
	if got["Scheduled"] != "1" || got["Completed"] != "1" || got["Total"] != "2" {
		t.Fatalf("summary: %v", got)
	}
	if got["Reference Date"] != "2024-06-01" {
		t.Fatalf("reference date: %v", got["Reference Date"])
	}
}

func TestExport_AppliesFilters(t *testing.T) {
	t.Parallel()

	st := seedStore(t)
	today := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	f, err := NewExporter(st).Export(ExportOptions{Today: today, StatusFilter: "scheduled"})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })

	rows, err := f.GetRows(detailSheet)
	if err != nil {
		t.Fatalf("read detail sheet: %v", err)
	}
	if len(rows) != 2 { // header + 1 scheduled record
		t.Fatalf("detail rows: want=2 got=%d", len(rows))
	}
}
