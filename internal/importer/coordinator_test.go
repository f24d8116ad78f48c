package importer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"skilldojo/internal/store"
)

// writeTestWorkbook builds a two-sheet workbook: an operator master and an
// allocation sheet referencing it, plus one orphan allocation row.
func writeTestWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	alloc := "Sheet1"
	operatorRows := [][]interface{}{
		{"sr_no", "employee_code", "full_name", "date_of_join", "designation", "department", "department_code"},
		{1, "EMP001", "Asha Verma", "2021-03-15", "Operator", "Assembly", "ASM"},
		{2, "EMP002", "Ravi Kumar", "2022-07-01", "Technician", "Assembly", "ASM"},
	}
	allocationRows := [][]interface{}{
		{"employee_code", "department", "section", "operation", "skill_level", "start_date", "end_date", "remarks", "status"},
		{"EMP001", "Head Lamp Assembly", "Bezel Line", "Lens Fitting", "level_2", "2024-06-01", "2024-06-05", "", "scheduled"},
		{"EMP001", "Head Lamp Assembly", "", "Aiming Check", "level_1", "2024-06-10", "2024-06-12", "second batch", "scheduled"},
		{"EMP999", "Head Lamp Assembly", "", "Lens Fitting", "level_1", "2024-06-01", "2024-06-02", "", ""},
		{"EMP002", "Head Lamp Assembly", "Bezel Line", "Lens Fitting", "", "2024-06-03", "2024-06-03", "", ""},
	}

	if _, err := f.NewSheet("Operators"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	for i, row := range operatorRows {
		addr, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Operators", addr, &row); err != nil {
			t.Fatalf("set operator row: %v", err)
		}
	}
	for i, row := range allocationRows {
		addr, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(alloc, addr, &row); err != nil {
			t.Fatalf("set allocation row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "allocations.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func runImport(t *testing.T, st *store.Store, opts ImportOptions) ImportSummary {
	t.Helper()

	var summary ImportSummary
	for evt := range NewCoordinator(st).Import(opts) {
		switch evt.Type {
		case "error":
			t.Fatalf("import error: %s", evt.Message)
		case "done":
			if s, ok := evt.Data.(ImportSummary); ok {
				summary = s
			}
		}
	}
	return summary
}

func TestImport_WorkbookRoundTrip(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "skilldojo.db")
	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	path := writeTestWorkbook(t)
	summary := runImport(t, st, ImportOptions{
		FilePath:         path,
		OriginalFilename: "allocations.xlsx",
		OperatorSheet:    "Operators",
		ClearExisting:    true,
	})

	if summary.Employees != 2 {
		t.Fatalf("employees: want=2 got=%d", summary.Employees)
	}
	if summary.Allocations != 3 {
		t.Fatalf("allocations: want=3 got=%d", summary.Allocations)
	}
	if summary.Skipped != 1 {
		t.Fatalf("skipped: want=1 got=%d", summary.Skipped)
	}

	records, err := st.ListAllocations(store.AllocationQueryOptions{})
	if err != nil {
		t.Fatalf("list allocations: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows: want=3 got=%d", len(records))
	}

	// Denormalized fields were backfilled from the imported master.
	if records[0].FullName != "Asha Verma" || records[0].EmployeeCode != "EMP001" {
		t.Fatalf("backfill: %+v", records[0])
	}

	// Catalog rows were created on first sight and then reused.
	departments, err := st.ListDepartments()
	if err != nil {
		t.Fatalf("list departments: %v", err)
	}
	if len(departments) != 1 || departments[0].Department != "Head Lamp Assembly" {
		t.Fatalf("departments: %+v", departments)
	}
	operations, err := st.ListOperations()
	if err != nil {
		t.Fatalf("list operations: %v", err)
	}
	if len(operations) != 2 {
		t.Fatalf("operations: want=2 got=%d", len(operations))
	}
}

func TestImport_ReRunWithClearDoesNotDuplicate(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "skilldojo.db")
	st, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	path := writeTestWorkbook(t)
	opts := ImportOptions{FilePath: path, OperatorSheet: "Operators", ClearExisting: true}

	runImport(t, st, opts)
	runImport(t, st, opts)

	n, err := st.CountAllocations()
	if err != nil {
		t.Fatalf("count allocations: %v", err)
	}
	if n != 3 {
		t.Fatalf("allocations after re-run: want=3 got=%d", n)
	}
	employees, err := st.CountEmployees()
	if err != nil {
		t.Fatalf("count employees: %v", err)
	}
	if employees != 2 {
		t.Fatalf("employees after re-run: want=2 got=%d", employees)
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"2024-06-01", "2024-06-01"},
		{"06-01-24", "2024-06-01"},
		{"6/1/24", "2024-06-01"},
		{"Jun 1, 2024", "2024-06-01"},
		{"", ""},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		if got := normalizeDate(tc.in); got != tc.want {
			t.Fatalf("%q: want=%q got=%q", tc.in, tc.want, got)
		}
	}
}
