package model

// Department maps the department table.
type Department struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(30);not null" json:"name"`
}

// TableName pins the singular table name used by the schema.
func (Department) TableName() string {
	return "department"
}

// DepartmentView is one row of the department listing. TotalBudget is nil
// when no role in the department has an employee assigned, which is a
// different thing from a budget of zero.
type DepartmentView struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	TotalBudget *float64 `json:"totalBudget"`
}
