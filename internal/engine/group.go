package engine

import (
	"fmt"

	"skilldojo/internal/model"
)

// Placeholder labels for unresolved catalog references. Unresolved references
// never fail the batch; they surface as labels the UI can render as-is.
const (
	UnknownDepartment = "Unknown Department"
	UnknownSection    = "Unknown Section"
)

// Lookups bundles the four catalogs the grouper joins against, indexed by id.
// Built once per invocation from flat catalog slices.
type Lookups struct {
	Employees   map[int64]*model.Employee
	Departments map[int64]*model.Department
	Sections    map[int64]*model.Section
	Operations  map[int64]*model.Operation
}

// BuildLookups indexes the catalog slices by id for the join pass.
func BuildLookups(employees []model.Employee, departments []model.Department, sections []model.Section, operations []model.Operation) Lookups {
	l := Lookups{
		Employees:   make(map[int64]*model.Employee, len(employees)),
		Departments: make(map[int64]*model.Department, len(departments)),
		Sections:    make(map[int64]*model.Section, len(sections)),
		Operations:  make(map[int64]*model.Operation, len(operations)),
	}
	for i := range employees {
		l.Employees[employees[i].ID] = &employees[i]
	}
	for i := range departments {
		l.Departments[departments[i].ID] = &departments[i]
	}
	for i := range sections {
		l.Sections[sections[i].ID] = &sections[i]
	}
	for i := range operations {
		l.Operations[operations[i].ID] = &operations[i]
	}
	return l
}

// GroupByEmployee denormalizes flat allocation rows into one group per
// distinct employee, in order of first appearance. Records whose employee
// cannot be resolved are excluded and reported through dropped rather than
// silently vanishing. All other unresolved references fall back to
// placeholder labels and the record is kept.
//
// The first record seen for an employee establishes the group header,
// preferring fields inlined on the record over the employee catalog.
func GroupByEmployee(records []model.AllocationRecord, lookups Lookups) (groups []model.EmployeeGroup, dropped int) {
	byEmployee := make(map[int64]int, len(records))
	groups = []model.EmployeeGroup{}

	for i := range records {
		r := &records[i]

		emp := lookups.Employees[r.EmployeeID]
		if emp == nil {
			dropped++
			continue
		}

		dept := lookups.Departments[r.DepartmentID]
		var sec *model.Section
		if r.HasSection() {
			sec = lookups.Sections[r.SectionID]
		}
		op := lookups.Operations[r.OperationID]

		idx, seen := byEmployee[r.EmployeeID]
		if !seen {
			idx = len(groups)
			byEmployee[r.EmployeeID] = idx
			groups = append(groups, model.EmployeeGroup{
				EmployeeID:        r.EmployeeID,
				Name:              firstNonEmpty(r.FullName, emp.FullName, fmt.Sprintf("Employee %d", r.EmployeeID)),
				CardNo:            firstNonEmpty(r.EmployeeCode, emp.EmployeeCode, "N/A"),
				PayCode:           firstNonEmpty(r.Designation, emp.Designation, "N/A"),
				Department:        departmentLabel(dept, emp),
				Section:           sectionLabel(sec),
				JoiningDate:       firstNonEmpty(r.DateOfJoin, emp.DateOfJoin, ""),
				EmploymentPattern: emp.PatternCategory,
				DepartmentCode:    emp.DepartmentCode,
				SrNo:              emp.SrNo,
				Skills:            []model.SkillEntry{},
			})
		}

		entry := model.SkillEntry{
			Station:        operationLabel(op, r.OperationID),
			SkillLevel:     firstNonEmpty(r.SkillLevel, "basic"),
			StartDate:      EffectiveStartDate(r),
			EndDate:        EffectiveEndDate(r),
			Status:         firstNonEmpty(r.Status, "active"),
			Notes:          r.Remarks,
			SectionName:    sectionLabel(sec),
			DepartmentName: departmentLabel(dept, emp),
			ModelData:      *r,
		}
		if op != nil {
			entry.StationNumber = op.Number
			entry.MinimumSkillRequired = op.MinimumSkillRequired
		}

		groups[idx].Skills = append(groups[idx].Skills, entry)
	}

	return groups, dropped
}

func departmentLabel(dept *model.Department, emp *model.Employee) string {
	if dept != nil && dept.Department != "" {
		return dept.Department
	}
	if emp != nil && emp.Department != "" {
		return emp.Department
	}
	return UnknownDepartment
}

func sectionLabel(sec *model.Section) string {
	if sec != nil && sec.Name != "" {
		return sec.Name
	}
	return UnknownSection
}

func operationLabel(op *model.Operation, id int64) string {
	if op != nil && op.Name != "" {
		return op.Name
	}
	return fmt.Sprintf("Operation (%d)", id)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
