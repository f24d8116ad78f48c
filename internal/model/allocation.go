package model

// DateLayout is the wire format for all calendar dates. Comparisons are by
// date only; there is no time-of-day anywhere in the domain.
const DateLayout = "2006-01-02"

// AllocationRecord is one row of "this employee is scheduled to learn this
// skill at this operation between start_date and end_date".
//
// Dates travel as strings so that malformed upstream values stay representable;
// the engine parses them and degrades to an unknown status instead of failing.
type AllocationRecord struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee"`

	// Denormalized copies of employee attributes the backend may inline on
	// the row. When present they take precedence over the employee catalog.
	EmployeeCode string `json:"employee_code,omitempty"`
	FullName     string `json:"full_name,omitempty"`
	DateOfJoin   string `json:"date_of_join,omitempty"`
	Designation  string `json:"designation,omitempty"`

	DepartmentID int64 `json:"department"`
	SectionID    int64 `json:"section,omitempty"` // 0 = no section
	OperationID  int64 `json:"operation"`

	SkillLevel string `json:"skill_level,omitempty"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	// Date is the legacy single-date field. Rows carrying only Date are
	// normalized to the degenerate interval [Date, Date].
	Date    string `json:"date,omitempty"`
	Remarks string `json:"remarks,omitempty"`

	// Status is the value persisted with the record (scheduled/in-progress/
	// completed as recorded at write time). Display-only: the engine derives
	// the live status from the dates and never reads or writes this field.
	Status string `json:"status,omitempty"`
}

// HasSection reports whether the optional section reference is set.
func (r *AllocationRecord) HasSection() bool {
	return r.SectionID != 0
}
