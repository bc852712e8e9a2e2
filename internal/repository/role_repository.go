package repository

import (
	"context"

	"employee_manager/internal/model"

	"gorm.io/gorm"
)

const rolesSQL = `
SELECT r.id, r.title AS job_title, d.name AS department, r.salary
FROM role r
JOIN department d ON r.department = d.id
ORDER BY r.id`

type RoleRepository interface {
	FindAll(ctx context.Context) ([]model.RoleView, error)
	Create(ctx context.Context, title string, salary float64, departmentID uint) error
	// Delete removes the role; nil is a cancelled selection and a no-op.
	// Employees still holding the role are not checked here.
	Delete(ctx context.Context, roleID *uint) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindAll(ctx context.Context) ([]model.RoleView, error) {
	roles := []model.RoleView{}
	if err := r.db.WithContext(ctx).Raw(rolesSQL).Scan(&roles).Error; err != nil {
		return nil, fail("role.find_all", err)
	}
	return roles, nil
}

func (r *roleRepository) Create(ctx context.Context, title string, salary float64, departmentID uint) error {
	role := &model.Role{Title: title, Salary: salary, DepartmentID: departmentID}
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return fail("role.create", err)
	}
	return nil
}

func (r *roleRepository) Delete(ctx context.Context, roleID *uint) error {
	if roleID == nil {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id = ?", *roleID).Delete(&model.Role{}).Error; err != nil {
		return fail("role.delete", err)
	}
	return nil
}
