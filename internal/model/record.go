package model

import (
	"strconv"
)

// The view types below render as table rows: Columns gives the header
// names, Values the cells in the same order, with nil for an absent value.

func (e EmployeeView) Columns() []string {
	return []string{"id", "firstName", "lastName", "jobTitle", "department", "salary", "managerName"}
}

func (e EmployeeView) Values() []*string {
	return []*string{
		text(FormatID(e.ID)),
		text(e.FirstName),
		text(e.LastName),
		text(e.JobTitle),
		text(e.Department),
		text(FormatAmount(e.Salary)),
		e.ManagerName,
	}
}

func (m ManagerView) Columns() []string {
	return []string{"id", "firstName", "lastName"}
}

func (m ManagerView) Values() []*string {
	return []*string{text(FormatID(m.ID)), text(m.FirstName), text(m.LastName)}
}

func (r RoleView) Columns() []string {
	return []string{"id", "jobTitle", "department", "salary"}
}

func (r RoleView) Values() []*string {
	return []*string{text(FormatID(r.ID)), text(r.JobTitle), text(r.Department), text(FormatAmount(r.Salary))}
}

func (d DepartmentView) Columns() []string {
	return []string{"id", "name", "totalBudget"}
}

func (d DepartmentView) Values() []*string {
	var budget *string
	if d.TotalBudget != nil {
		budget = text(FormatAmount(*d.TotalBudget))
	}
	return []*string{text(FormatID(d.ID)), text(d.Name), budget}
}

func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// FormatAmount prints a salary without trailing zeros: 80000, 65000.5.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func text(s string) *string {
	return &s
}
