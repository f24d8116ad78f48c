package model

// SkillEntry is one allocation row enriched for the grouped detail view:
// resolved catalog names plus the untouched source record under model_data.
type SkillEntry struct {
	Station              string `json:"station"`
	SkillLevel           string `json:"skill_level"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	Status               string `json:"status"`
	CurrentStatus        string `json:"current_status,omitempty"`
	StationNumber        int    `json:"station_number"`
	Notes                string `json:"notes"`
	MinimumSkillRequired int    `json:"minimum_skill_required"`
	SectionName          string `json:"section_name"`
	DepartmentName       string `json:"department_name"`

	ModelData AllocationRecord `json:"model_data"`
}

// EmployeeGroup is the per-employee denormalized view: identity header fields
// plus this employee's skill entries in input order.
type EmployeeGroup struct {
	EmployeeID        int64        `json:"employee_id"`
	Name              string       `json:"name"`
	CardNo            string       `json:"card_no"`
	PayCode           string       `json:"pay_code"`
	Department        string       `json:"department"`
	Section           string       `json:"section"`
	JoiningDate       string       `json:"joining_date"`
	EmploymentPattern string       `json:"employment_pattern"`
	DepartmentCode    string       `json:"department_code"`
	SrNo              int          `json:"sr_no"`
	Skills            []SkillEntry `json:"skills"`
}
