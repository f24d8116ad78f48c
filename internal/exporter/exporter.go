package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"skilldojo/internal/engine"
	"skilldojo/internal/model"
	"skilldojo/internal/store"
)

// Exporter writes the allocation schedule to a workbook: one detail sheet of
// grouped skill entries with their derived status and one summary sheet with
// the overview counters.
type Exporter struct {
	store *store.Store
}

// NewExporter creates an exporter.
func NewExporter(store *store.Store) *Exporter {
	return &Exporter{store: store}
}

// ExportOptions controls one export run.
type ExportOptions struct {
	// Today anchors the derived statuses, so exports are reproducible for a
	// fixed reference date.
	Today time.Time
	// StatusFilter/RangeFilter narrow the detail sheet the same way the
	// list view does; zero values export everything.
	StatusFilter string
	RangeFilter  string
}

const (
	detailSheet  = "Allocations"
	summarySheet = "Summary"
)

// Export builds the workbook. The caller owns the returned file.
func (e *Exporter) Export(opts ExportOptions) (*excelize.File, error) {
	records, err := e.store.ListAllocations(store.AllocationQueryOptions{})
	if err != nil {
		return nil, fmt.Errorf("load allocations: %w", err)
	}

	statusFilter := opts.StatusFilter
	if statusFilter == "" {
		statusFilter = engine.StatusFilterAll
	}
	rangeFilter := opts.RangeFilter
	if rangeFilter == "" {
		rangeFilter = engine.RangeAllTime
	}
	filtered := engine.Filter(records, statusFilter, rangeFilter, opts.Today)
	stats := engine.Aggregate(filtered, opts.Today)

	employees, err := e.store.ListEmployees()
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	departments, err := e.store.ListDepartments()
	if err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}
	sections, err := e.store.ListSections()
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	operations, err := e.store.ListOperations()
	if err != nil {
		return nil, fmt.Errorf("load operations: %w", err)
	}
	groups, dropped := engine.GroupByEmployee(filtered,
		engine.BuildLookups(employees, departments, sections, operations))
	engine.AnnotateGroups(groups, opts.Today)

	f := excelize.NewFile()
	if err := writeDetailSheet(f, groups); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := writeSummarySheet(f, stats, dropped, opts.Today); err != nil {
		_ = f.Close()
		return nil, err
	}

	idx, err := f.GetSheetIndex(detailSheet)
	if err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}

var detailHeader = []interface{}{
	"Employee Code", "Name", "Department", "Section", "Operation",
	"Skill Level", "Start Date", "End Date", "Status", "Recorded Status", "Remarks",
}

func writeDetailSheet(f *excelize.File, groups []model.EmployeeGroup) error {
	// The workbook starts with a default sheet; rename it instead of
	// leaving an empty Sheet1 behind.
	if err := f.SetSheetName(f.GetSheetName(0), detailSheet); err != nil {
		return fmt.Errorf("rename detail sheet: %w", err)
	}

	if err := setRow(f, detailSheet, 1, detailHeader); err != nil {
		return err
	}

	rowNo := 2
	for _, g := range groups {
		for _, skill := range g.Skills {
			row := []interface{}{
				g.CardNo, g.Name, skill.DepartmentName, skill.SectionName, skill.Station,
				skill.SkillLevel, skill.StartDate, skill.EndDate,
				skill.CurrentStatus, skill.Status, skill.Notes,
			}
			if err := setRow(f, detailSheet, rowNo, row); err != nil {
				return err
			}
			rowNo++
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, stats engine.Stats, dropped int, today time.Time) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Reference Date", today.Format(model.DateLayout)},
		{"Scheduled", stats.Scheduled},
		{"In Progress", stats.InProgress},
		{"Completed", stats.Completed},
		{"Total", stats.Total},
		{"Unresolved Employees", dropped},
	}
	for i, row := range rows {
		if err := setRow(f, summarySheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNo int, values []interface{}) error {
	addr, err := excelize.CoordinatesToCellName(1, rowNo)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, addr, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, rowNo, err)
	}
	return nil
}
