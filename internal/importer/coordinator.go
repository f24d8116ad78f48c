package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"skilldojo/internal/model"
	"skilldojo/internal/store"
)

// Coordinator drives a workbook import: operator master first, then
// allocation rows, resolving catalog references by name as it goes.
type Coordinator struct {
	store *store.Store
}

// NewCoordinator creates an import coordinator.
func NewCoordinator(store *store.Store) *Coordinator {
	return &Coordinator{store: store}
}

// ImportOptions controls one import run.
type ImportOptions struct {
	FilePath         string
	OriginalFilename string
	// OperatorSheet names the operator-master sheet; empty skips it.
	OperatorSheet string
	// AllocationSheet names the allocation sheet; empty means the first
	// sheet of the workbook.
	AllocationSheet string
	// ClearExisting wipes the allocations table before inserting.
	ClearExisting bool
}

// ProgressEvent is one step of the import stream.
type ProgressEvent struct {
	Type      string      `json:"type"` // start/sheet_start/sheet_done/done/error
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// ImportSummary is attached to the final done event.
type ImportSummary struct {
	Employees   int `json:"employees"`
	Allocations int `json:"allocations"`
	Skipped     int `json:"skipped"`
}

// Import runs the import in the background and returns its progress channel.
func (c *Coordinator) Import(opts ImportOptions) <-chan ProgressEvent {
	progress := make(chan ProgressEvent, 100)

	go func() {
		defer close(progress)
		c.doImport(opts, progress)
	}()

	return progress
}

func emit(ch chan<- ProgressEvent, typ, message string, data interface{}) {
	ch <- ProgressEvent{Type: typ, Message: message, Data: data, Timestamp: time.Now()}
}

func (c *Coordinator) doImport(opts ImportOptions, progress chan<- ProgressEvent) {
	emit(progress, "start", fmt.Sprintf("importing %s", opts.OriginalFilename), nil)

	f, err := excelize.OpenFile(opts.FilePath)
	if err != nil {
		emit(progress, "error", fmt.Sprintf("open workbook: %v", err), nil)
		return
	}
	defer f.Close()

	if opts.ClearExisting {
		if err := c.store.DeleteAllAllocations(); err != nil {
			emit(progress, "error", fmt.Sprintf("clear allocations: %v", err), nil)
			return
		}
	}

	summary := ImportSummary{}

	if opts.OperatorSheet != "" {
		emit(progress, "sheet_start", opts.OperatorSheet, nil)
		n, err := c.importOperators(f, opts.OperatorSheet)
		if err != nil {
			emit(progress, "error", fmt.Sprintf("operator sheet: %v", err), nil)
			return
		}
		summary.Employees = n
		emit(progress, "sheet_done", opts.OperatorSheet, n)
	}

	sheet := opts.AllocationSheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	emit(progress, "sheet_start", sheet, nil)
	inserted, skipped, err := c.importAllocations(f, sheet)
	if err != nil {
		emit(progress, "error", fmt.Sprintf("allocation sheet: %v", err), nil)
		return
	}
	summary.Allocations = inserted
	summary.Skipped = skipped
	emit(progress, "sheet_done", sheet, inserted)

	emit(progress, "done", "import complete", summary)
}

func (c *Coordinator) importOperators(f *excelize.File, sheet string) (int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return 0, nil
	}

	cols := headerIndex(rows[0])
	count := 0
	for _, row := range rows[1:] {
		code := cell(row, cols, "employee_code")
		if code == "" {
			continue
		}
		emp := model.Employee{
			SrNo:            atoiOrZero(cell(row, cols, "sr_no")),
			EmployeeCode:    code,
			FullName:        cell(row, cols, "full_name"),
			DateOfJoin:      normalizeDate(cell(row, cols, "date_of_join")),
			PatternCategory: cell(row, cols, "employee_pattern_category"),
			Designation:     cell(row, cols, "designation"),
			Department:      cell(row, cols, "department"),
			DepartmentCode:  cell(row, cols, "department_code"),
		}
		if _, err := c.store.UpsertEmployeeByCode(&emp); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (c *Coordinator) importAllocations(f *excelize.File, sheet string) (inserted, skipped int, err error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, 0, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return 0, 0, nil
	}

	employees, err := c.store.ListEmployees()
	if err != nil {
		return 0, 0, err
	}
	byCode := make(map[string]int64, len(employees))
	for _, e := range employees {
		byCode[strings.ToUpper(e.EmployeeCode)] = e.ID
	}

	resolver, err := newCatalogResolver(c.store)
	if err != nil {
		return 0, 0, err
	}

	cols := headerIndex(rows[0])
	batch := []*model.AllocationRecord{}
	for _, row := range rows[1:] {
		code := strings.ToUpper(cell(row, cols, "employee_code"))
		empID, ok := byCode[code]
		if !ok {
			// Row without a resolvable employee: skipped, never fatal.
			skipped++
			continue
		}

		deptID, err := resolver.department(cell(row, cols, "department"))
		if err != nil {
			return inserted, skipped, err
		}
		secID, err := resolver.section(cell(row, cols, "section"), deptID)
		if err != nil {
			return inserted, skipped, err
		}
		opID, err := resolver.operation(cell(row, cols, "operation"), deptID, secID)
		if err != nil {
			return inserted, skipped, err
		}

		rec := &model.AllocationRecord{
			EmployeeID:   empID,
			DepartmentID: deptID,
			SectionID:    secID,
			OperationID:  opID,
			SkillLevel:   cell(row, cols, "skill_level"),
			StartDate:    normalizeDate(cell(row, cols, "start_date")),
			EndDate:      normalizeDate(cell(row, cols, "end_date")),
			Date:         normalizeDate(cell(row, cols, "date")),
			Remarks:      cell(row, cols, "remarks"),
			Status:       cell(row, cols, "status"),
		}
		batch = append(batch, rec)
	}

	if err := c.store.BatchInsertAllocations(batch); err != nil {
		return 0, skipped, err
	}
	return len(batch), skipped, nil
}

// headerIndex maps normalized header names to their column positions.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		if key != "" {
			cols[key] = i
		}
	}
	return cols
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// normalizeDate rewrites common spreadsheet date renderings to the wire
// format. Unrecognized values pass through untouched; the engine treats them
// as unknown downstream.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	layouts := []string{
		model.DateLayout,
		"01-02-06", // excelize default short date
		"1/2/06",
		"02/01/2006",
		"2006/01/02",
		"Jan 2, 2006",
		"2 Jan 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(model.DateLayout)
		}
	}
	return s
}
