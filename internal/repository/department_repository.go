package repository

import (
	"context"

	"employee_manager/internal/model"

	"gorm.io/gorm"
)

// departmentsSQL sums the salary of every assigned employee per department.
// Roles without employees contribute nothing; a department with no staffed
// role sums to zero.
const departmentsSQL = `
SELECT
	d.id,
	d.name,
	COALESCE(SUM(CASE WHEN e.id IS NOT NULL THEN r.salary END), 0) AS total_budget
FROM department d
LEFT JOIN role r ON d.id = r.department
LEFT JOIN employee e ON r.id = e.role_id
GROUP BY d.id, d.name
ORDER BY d.id`

type DepartmentRepository interface {
	// FindAll lists departments ordered by id with their budget; TotalBudget
	// is nil for a department nobody works in.
	FindAll(ctx context.Context) ([]model.DepartmentView, error)
	Create(ctx context.Context, name string) error
	// Delete removes the department; nil is a cancelled selection and a no-op.
	Delete(ctx context.Context, departmentID *uint) error
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

type departmentRow struct {
	ID          uint
	Name        string
	TotalBudget float64
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]model.DepartmentView, error) {
	var rows []departmentRow
	if err := r.db.WithContext(ctx).Raw(departmentsSQL).Scan(&rows).Error; err != nil {
		return nil, fail("department.find_all", err)
	}

	departments := make([]model.DepartmentView, 0, len(rows))
	for _, row := range rows {
		view := model.DepartmentView{ID: row.ID, Name: row.Name}
		if row.TotalBudget != 0 {
			budget := row.TotalBudget
			view.TotalBudget = &budget
		}
		departments = append(departments, view)
	}
	return departments, nil
}

func (r *departmentRepository) Create(ctx context.Context, name string) error {
	if err := r.db.WithContext(ctx).Create(&model.Department{Name: name}).Error; err != nil {
		return fail("department.create", err)
	}
	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, departmentID *uint) error {
	if departmentID == nil {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id = ?", *departmentID).Delete(&model.Department{}).Error; err != nil {
		return fail("department.delete", err)
	}
	return nil
}
