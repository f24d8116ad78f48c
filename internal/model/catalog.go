package model

// Employee is one row of the operator master catalog.
type Employee struct {
	ID              int64  `json:"id"`
	SrNo            int    `json:"sr_no"`
	EmployeeCode    string `json:"employee_code"`
	FullName        string `json:"full_name"`
	DateOfJoin      string `json:"date_of_join,omitempty"`
	PatternCategory string `json:"employee_pattern_category,omitempty"`
	Designation     string `json:"designation,omitempty"`
	Department      string `json:"department,omitempty"`
	DepartmentCode  string `json:"department_code,omitempty"`
}

// Department is one skill-matrix row; the catalog keeps the naming from the
// upstream store, where departments are tracked as skill matrices.
type Department struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
	UpdatedOn  string `json:"updated_on,omitempty"`
	NextReview string `json:"next_review,omitempty"`
	DocNo      string `json:"doc_no,omitempty"`
	PreparedBy string `json:"prepared_by,omitempty"`
	UploadedBy string `json:"uploaded_by,omitempty"`
}

// Section groups operations within a department.
type Section struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"department,omitempty"`
	Name         string `json:"name"`
}

// Operation is one station/operation an employee can be allocated to.
type Operation struct {
	ID                   int64  `json:"id"`
	MatrixID             int64  `json:"matrix"`
	SectionID            int64  `json:"section,omitempty"`
	Number               int    `json:"number"`
	Name                 string `json:"name"`
	MinimumSkillRequired int    `json:"minimum_skill_required"`
}
