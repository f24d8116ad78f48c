package store

import (
	"database/sql"
	"fmt"

	"skilldojo/internal/model"
)

const allocationColumns = `id, employee_id, employee_code, full_name, date_of_join, designation,
	department_id, section_id, operation_id, skill_level, start_date, end_date, date, remarks, status`

// InsertAllocation inserts one allocation row and returns its id. Denormalized
// employee fields left empty on the record are backfilled from the employee
// catalog, mirroring the upstream write path.
func (s *Store) InsertAllocation(r *model.AllocationRecord) (int64, error) {
	s.fillFromEmployee(r)

	res, err := s.db.Exec(`
		INSERT INTO allocations (
			employee_id, employee_code, full_name, date_of_join, designation,
			department_id, section_id, operation_id, skill_level,
			start_date, end_date, date, remarks, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.EmployeeID, r.EmployeeCode, r.FullName, r.DateOfJoin, r.Designation,
		r.DepartmentID, r.SectionID, r.OperationID, r.SkillLevel,
		r.StartDate, r.EndDate, r.Date, r.Remarks, r.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert allocation: %w", err)
	}
	return res.LastInsertId()
}

// BatchInsertAllocations inserts many allocation rows in one transaction.
// The backfill pass runs before the transaction opens: the store holds a
// single connection, and a catalog read during an open transaction would
// wait on it forever.
func (s *Store) BatchInsertAllocations(records []*model.AllocationRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, r := range records {
		s.fillFromEmployee(r)
	}

	tx, err := s.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO allocations (
			employee_id, employee_code, full_name, date_of_join, designation,
			department_id, section_id, operation_id, skill_level,
			start_date, end_date, date, remarks, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			r.EmployeeID, r.EmployeeCode, r.FullName, r.DateOfJoin, r.Designation,
			r.DepartmentID, r.SectionID, r.OperationID, r.SkillLevel,
			r.StartDate, r.EndDate, r.Date, r.Remarks, r.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// fillFromEmployee copies employee attributes onto the row when the caller
// left them blank and the employee exists in the catalog.
func (s *Store) fillFromEmployee(r *model.AllocationRecord) {
	if r.EmployeeID == 0 {
		return
	}
	if r.EmployeeCode != "" && r.FullName != "" && r.DateOfJoin != "" && r.Designation != "" {
		return
	}

	emp, err := s.GetEmployee(r.EmployeeID)
	if err != nil || emp == nil {
		return
	}
	if r.EmployeeCode == "" {
		r.EmployeeCode = emp.EmployeeCode
	}
	if r.FullName == "" {
		r.FullName = emp.FullName
	}
	if r.DateOfJoin == "" {
		r.DateOfJoin = emp.DateOfJoin
	}
	if r.Designation == "" {
		r.Designation = emp.Designation
	}
}

// GetAllocation fetches one allocation by id; (nil, nil) when absent.
func (s *Store) GetAllocation(id int64) (*model.AllocationRecord, error) {
	row := s.db.QueryRow("SELECT "+allocationColumns+" FROM allocations WHERE id = ?", id)

	r, err := scanAllocation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query allocation: %w", err)
	}
	return r, nil
}

// AllocationQueryOptions narrows ListAllocations. Nil fields impose no
// constraint.
type AllocationQueryOptions struct {
	EmployeeID   *int64
	DepartmentID *int64
	SectionID    *int64
	OperationID  *int64
}

// ListAllocations returns allocations in insertion order.
func (s *Store) ListAllocations(opts AllocationQueryOptions) ([]model.AllocationRecord, error) {
	query := "SELECT " + allocationColumns + " FROM allocations WHERE 1=1"
	args := []interface{}{}

	if opts.EmployeeID != nil {
		query += " AND employee_id = ?"
		args = append(args, *opts.EmployeeID)
	}
	if opts.DepartmentID != nil {
		query += " AND department_id = ?"
		args = append(args, *opts.DepartmentID)
	}
	if opts.SectionID != nil {
		query += " AND section_id = ?"
		args = append(args, *opts.SectionID)
	}
	if opts.OperationID != nil {
		query += " AND operation_id = ?"
		args = append(args, *opts.OperationID)
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations: %w", err)
	}
	defer rows.Close()

	records := []model.AllocationRecord{}
	for rows.Next() {
		r, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

// UpdateAllocation rewrites the mutable fields of one allocation.
func (s *Store) UpdateAllocation(r *model.AllocationRecord) error {
	s.fillFromEmployee(r)

	res, err := s.db.Exec(`
		UPDATE allocations SET
			employee_id = ?, employee_code = ?, full_name = ?, date_of_join = ?, designation = ?,
			department_id = ?, section_id = ?, operation_id = ?, skill_level = ?,
			start_date = ?, end_date = ?, date = ?, remarks = ?, status = ?
		WHERE id = ?
	`,
		r.EmployeeID, r.EmployeeCode, r.FullName, r.DateOfJoin, r.Designation,
		r.DepartmentID, r.SectionID, r.OperationID, r.SkillLevel,
		r.StartDate, r.EndDate, r.Date, r.Remarks, r.Status,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update allocation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("allocation %d not found", r.ID)
	}
	return nil
}

// DeleteAllocation removes one allocation by id.
func (s *Store) DeleteAllocation(id int64) error {
	res, err := s.db.Exec("DELETE FROM allocations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete allocation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("allocation %d not found", id)
	}
	return nil
}

// DeleteAllAllocations clears the table (used by import with clear_existing).
func (s *Store) DeleteAllAllocations() error {
	_, err := s.db.Exec("DELETE FROM allocations")
	if err != nil {
		return fmt.Errorf("failed to clear allocations: %w", err)
	}
	return nil
}

// CountAllocations returns the total number of allocation rows.
func (s *Store) CountAllocations() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM allocations").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count allocations: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAllocation(row rowScanner) (*model.AllocationRecord, error) {
	var r model.AllocationRecord
	err := row.Scan(
		&r.ID, &r.EmployeeID, &r.EmployeeCode, &r.FullName, &r.DateOfJoin, &r.Designation,
		&r.DepartmentID, &r.SectionID, &r.OperationID, &r.SkillLevel,
		&r.StartDate, &r.EndDate, &r.Date, &r.Remarks, &r.Status,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
