package model

// Role maps the role table. The foreign key column is named "department".
type Role struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string  `gorm:"type:varchar(30);not null" json:"title"`
	Salary       float64 `gorm:"type:decimal;not null" json:"salary"`
	DepartmentID uint    `gorm:"column:department;not null" json:"department"`
}

func (Role) TableName() string {
	return "role"
}

// RoleView is a role joined with its department name.
type RoleView struct {
	ID         uint    `json:"id"`
	JobTitle   string  `json:"jobTitle"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}
