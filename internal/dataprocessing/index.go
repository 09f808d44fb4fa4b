package dataprocessing

import (
	"sort"

	"orgpulse/pkg/contracts/domain"
)

// DepartmentIndex is the employee to department lookup shared by every
// builder. It is built once per dataset and never modified afterwards.
type DepartmentIndex struct {
	departments map[domain.EmployeeID]domain.Department
	members     map[domain.Department][]domain.EmployeeID
	order       []domain.EmployeeID
	ordered     map[domain.EmployeeID]int
}

// NewDepartmentIndex groups profiles by department. Employees of an
// unrecognized department stay resolvable through DepartmentOf but are
// left out of Members and Order.
func NewDepartmentIndex(profiles []domain.EmployeeProfile) *DepartmentIndex {
	idx := &DepartmentIndex{
		departments: make(map[domain.EmployeeID]domain.Department, len(profiles)),
		members:     make(map[domain.Department][]domain.EmployeeID, len(domain.DepartmentOrder)),
		ordered:     make(map[domain.EmployeeID]int, len(profiles)),
	}

	for _, p := range profiles {
		idx.departments[p.EmployeeID] = p.Department
	}

	// Group from the final map so a re-assigned employee is listed once.
	for id, dept := range idx.departments {
		if dept.IsRecognized() {
			idx.members[dept] = append(idx.members[dept], id)
		}
	}

	for _, dept := range domain.DepartmentOrder {
		ids := idx.members[dept]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			idx.ordered[id] = len(idx.order)
			idx.order = append(idx.order, id)
		}
	}

	return idx
}

// DepartmentOf returns the department recorded for id.
func (idx *DepartmentIndex) DepartmentOf(id domain.EmployeeID) (domain.Department, bool) {
	dept, ok := idx.departments[id]
	return dept, ok
}

// Members returns the sorted ids of a recognized department.
// The returned slice must not be modified.
func (idx *DepartmentIndex) Members(dept domain.Department) []domain.EmployeeID {
	return idx.members[dept]
}

// Order returns every recognized employee grouped by department in
// display order. The returned slice must not be modified.
func (idx *DepartmentIndex) Order() []domain.EmployeeID {
	return idx.order
}

// Position returns the row of id in Order.
func (idx *DepartmentIndex) Position(id domain.EmployeeID) (int, bool) {
	pos, ok := idx.ordered[id]
	return pos, ok
}

// Len returns the number of employees in Order.
func (idx *DepartmentIndex) Len() int {
	return len(idx.order)
}
