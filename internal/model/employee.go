package model

import "strings"

// Employee maps the employee table. ManagerID is nil for an employee without a manager.
type Employee struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(30);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(30);not null" json:"lastName"`
	RoleID    uint   `gorm:"not null" json:"roleId"`
	ManagerID *uint  `json:"managerId"`
}

func (Employee) TableName() string {
	return "employee"
}

// EmployeeView is an employee joined with role, department and manager.
// ManagerName is nil when the employee reports to nobody.
type EmployeeView struct {
	ID          uint    `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	JobTitle    string  `json:"jobTitle"`
	Department  string  `json:"department"`
	Salary      float64 `json:"salary"`
	ManagerName *string `json:"managerName"`
}

// FullName returns "First Last".
func (e EmployeeView) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// ManagerView is an employee that at least one other employee reports to.
type ManagerView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (m ManagerView) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}
