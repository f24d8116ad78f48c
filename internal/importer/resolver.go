package importer

import (
	"strings"

	"skilldojo/internal/model"
	"skilldojo/internal/store"
)

// catalogResolver resolves department/section/operation names to ids,
// creating catalog rows the first time a name appears in the workbook.
type catalogResolver struct {
	store       *store.Store
	departments map[string]int64
	sections    map[string]int64
	operations  map[string]int64
}

func newCatalogResolver(st *store.Store) (*catalogResolver, error) {
	r := &catalogResolver{
		store:       st,
		departments: map[string]int64{},
		sections:    map[string]int64{},
		operations:  map[string]int64{},
	}

	departments, err := st.ListDepartments()
	if err != nil {
		return nil, err
	}
	for _, d := range departments {
		r.departments[nameKey(d.Department)] = d.ID
	}

	sections, err := st.ListSections()
	if err != nil {
		return nil, err
	}
	for _, s := range sections {
		r.sections[nameKey(s.Name)] = s.ID
	}

	operations, err := st.ListOperations()
	if err != nil {
		return nil, err
	}
	for _, op := range operations {
		r.operations[nameKey(op.Name)] = op.ID
	}

	return r, nil
}

func (r *catalogResolver) department(name string) (int64, error) {
	if name == "" {
		return 0, nil
	}
	if id, ok := r.departments[nameKey(name)]; ok {
		return id, nil
	}
	id, err := r.store.InsertDepartment(&model.Department{Department: name})
	if err != nil {
		return 0, err
	}
	r.departments[nameKey(name)] = id
	return id, nil
}

func (r *catalogResolver) section(name string, departmentID int64) (int64, error) {
	if name == "" {
		return 0, nil
	}
	if id, ok := r.sections[nameKey(name)]; ok {
		return id, nil
	}
	id, err := r.store.InsertSection(&model.Section{DepartmentID: departmentID, Name: name})
	if err != nil {
		return 0, err
	}
	r.sections[nameKey(name)] = id
	return id, nil
}

func (r *catalogResolver) operation(name string, matrixID, sectionID int64) (int64, error) {
	if name == "" {
		return 0, nil
	}
	if id, ok := r.operations[nameKey(name)]; ok {
		return id, nil
	}
	id, err := r.store.InsertOperation(&model.Operation{
		MatrixID:  matrixID,
		SectionID: sectionID,
		Name:      name,
	})
	if err != nil {
		return 0, err
	}
	r.operations[nameKey(name)] = id
	return id, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
