package store

import (
	"database/sql"
	"fmt"

	"skilldojo/internal/model"
)

// InsertEmployee inserts one operator-master row and returns its id.
func (s *Store) InsertEmployee(e *model.Employee) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO employees (
			sr_no, employee_code, full_name, date_of_join,
			employee_pattern_category, designation, department, department_code
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.SrNo, e.EmployeeCode, e.FullName, e.DateOfJoin,
		e.PatternCategory, e.Designation, e.Department, e.DepartmentCode,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert employee: %w", err)
	}
	return res.LastInsertId()
}

// UpsertEmployeeByCode inserts the employee, or updates the existing row with
// the same employee_code (import re-runs must not duplicate the master).
func (s *Store) UpsertEmployeeByCode(e *model.Employee) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM employees WHERE employee_code = ?", e.EmployeeCode).Scan(&id)
	if err == sql.ErrNoRows {
		return s.InsertEmployee(e)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up employee: %w", err)
	}

	_, err = s.db.Exec(`
		UPDATE employees SET
			sr_no = ?, full_name = ?, date_of_join = ?,
			employee_pattern_category = ?, designation = ?, department = ?, department_code = ?
		WHERE id = ?
	`,
		e.SrNo, e.FullName, e.DateOfJoin,
		e.PatternCategory, e.Designation, e.Department, e.DepartmentCode,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update employee: %w", err)
	}
	return id, nil
}

// GetEmployee fetches one employee by id; (nil, nil) when absent.
func (s *Store) GetEmployee(id int64) (*model.Employee, error) {
	var e model.Employee
	err := s.db.QueryRow(`
		SELECT id, sr_no, employee_code, full_name, date_of_join,
			employee_pattern_category, designation, department, department_code
		FROM employees WHERE id = ?
	`, id).Scan(
		&e.ID, &e.SrNo, &e.EmployeeCode, &e.FullName, &e.DateOfJoin,
		&e.PatternCategory, &e.Designation, &e.Department, &e.DepartmentCode,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query employee: %w", err)
	}
	return &e, nil
}

// ListEmployees returns the operator master in id order.
func (s *Store) ListEmployees() ([]model.Employee, error) {
	rows, err := s.db.Query(`
		SELECT id, sr_no, employee_code, full_name, date_of_join,
			employee_pattern_category, designation, department, department_code
		FROM employees ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(
			&e.ID, &e.SrNo, &e.EmployeeCode, &e.FullName, &e.DateOfJoin,
			&e.PatternCategory, &e.Designation, &e.Department, &e.DepartmentCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// CountEmployees returns the number of operator-master rows.
func (s *Store) CountEmployees() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM employees").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

// InsertDepartment inserts one skill-matrix row and returns its id.
func (s *Store) InsertDepartment(d *model.Department) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO skill_matrix (department, updated_on, next_review, doc_no, prepared_by, uploaded_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`, d.Department, d.UpdatedOn, d.NextReview, d.DocNo, d.PreparedBy, d.UploadedBy)
	if err != nil {
		return 0, fmt.Errorf("failed to insert department: %w", err)
	}
	return res.LastInsertId()
}

// ListDepartments returns the skill-matrix catalog in id order.
func (s *Store) ListDepartments() ([]model.Department, error) {
	rows, err := s.db.Query(`
		SELECT id, department, updated_on, next_review, doc_no, prepared_by, uploaded_by
		FROM skill_matrix ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := []model.Department{}
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Department, &d.UpdatedOn, &d.NextReview, &d.DocNo, &d.PreparedBy, &d.UploadedBy); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// InsertSection inserts one section and returns its id.
func (s *Store) InsertSection(sec *model.Section) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO sections (department_id, name) VALUES (?, ?)",
		sec.DepartmentID, sec.Name,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert section: %w", err)
	}
	return res.LastInsertId()
}

// ListSections returns the section catalog in id order.
func (s *Store) ListSections() ([]model.Section, error) {
	rows, err := s.db.Query("SELECT id, department_id, name FROM sections ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	sections := []model.Section{}
	for rows.Next() {
		var sec model.Section
		if err := rows.Scan(&sec.ID, &sec.DepartmentID, &sec.Name); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, sec)
	}
	return sections, rows.Err()
}

// InsertOperation inserts one operation and returns its id.
func (s *Store) InsertOperation(op *model.Operation) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO operations (matrix_id, section_id, number, name, minimum_skill_required)
		VALUES (?, ?, ?, ?, ?)
	`, op.MatrixID, op.SectionID, op.Number, op.Name, op.MinimumSkillRequired)
	if err != nil {
		return 0, fmt.Errorf("failed to insert operation: %w", err)
	}
	return res.LastInsertId()
}

// ListOperations returns the operation catalog in id order.
func (s *Store) ListOperations() ([]model.Operation, error) {
	rows, err := s.db.Query(`
		SELECT id, matrix_id, section_id, number, name, minimum_skill_required
		FROM operations ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	operations := []model.Operation{}
	for rows.Next() {
		var op model.Operation
		if err := rows.Scan(&op.ID, &op.MatrixID, &op.SectionID, &op.Number, &op.Name, &op.MinimumSkillRequired); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		operations = append(operations, op)
	}
	return operations, rows.Err()
}
