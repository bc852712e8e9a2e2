package repository

import (
	"context"

	"employee_manager/internal/model"

	"gorm.io/gorm"
)

// employeeViewSQL is the shared projection for every employee listing:
// inner joins to role and department, left self-join for the manager's name.
const employeeViewSQL = `
SELECT
	e.id,
	e.first_name,
	e.last_name,
	r.title AS job_title,
	d.name AS department,
	r.salary,
	CASE WHEN m.id IS NULL THEN NULL ELSE CONCAT(m.first_name, ' ', m.last_name) END AS manager_name
FROM employee e
JOIN role r ON e.role_id = r.id
JOIN department d ON r.department = d.id
LEFT JOIN employee m ON e.manager_id = m.id`

const managersSQL = `
SELECT id, first_name, last_name
FROM employee
WHERE id IN (SELECT DISTINCT manager_id FROM employee WHERE manager_id IS NOT NULL)
ORDER BY id`

// EmployeeRepository issues exactly one statement per call against the employee table.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]model.EmployeeView, error)
	FindByManager(ctx context.Context, managerID uint) ([]model.EmployeeView, error)
	FindByDepartment(ctx context.Context, departmentID uint) ([]model.EmployeeView, error)
	// FindManagers returns the distinct employees that someone reports to.
	FindManagers(ctx context.Context) ([]model.ManagerView, error)
	// Create inserts an employee. A nil managerID is stored as NULL.
	Create(ctx context.Context, firstName, lastName string, roleID uint, managerID *uint) error
	UpdateRole(ctx context.Context, employeeID, roleID uint) error
	// UpdateManager reassigns the manager; nil clears it.
	UpdateManager(ctx context.Context, employeeID uint, managerID *uint) error
	// Delete removes the employee. A nil id means the operator cancelled and
	// nothing is sent to the store.
	Delete(ctx context.Context, employeeID *uint) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]model.EmployeeView, error) {
	return r.findViews(ctx, "employee.find_all", employeeViewSQL+"\nORDER BY e.id")
}

func (r *employeeRepository) FindByManager(ctx context.Context, managerID uint) ([]model.EmployeeView, error) {
	return r.findViews(ctx, "employee.find_by_manager", employeeViewSQL+"\nWHERE e.manager_id = ?\nORDER BY e.id", managerID)
}

func (r *employeeRepository) FindByDepartment(ctx context.Context, departmentID uint) ([]model.EmployeeView, error) {
	return r.findViews(ctx, "employee.find_by_department", employeeViewSQL+"\nWHERE d.id = ?\nORDER BY e.id", departmentID)
}

func (r *employeeRepository) findViews(ctx context.Context, op, query string, args ...interface{}) ([]model.EmployeeView, error) {
	employees := []model.EmployeeView{}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&employees).Error; err != nil {
		return nil, fail(op, err)
	}
	return employees, nil
}

func (r *employeeRepository) FindManagers(ctx context.Context) ([]model.ManagerView, error) {
	managers := []model.ManagerView{}
	if err := r.db.WithContext(ctx).Raw(managersSQL).Scan(&managers).Error; err != nil {
		return nil, fail("employee.find_managers", err)
	}
	return managers, nil
}

func (r *employeeRepository) Create(ctx context.Context, firstName, lastName string, roleID uint, managerID *uint) error {
	employee := &model.Employee{
		FirstName: firstName,
		LastName:  lastName,
		RoleID:    roleID,
		ManagerID: managerID,
	}
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		return fail("employee.create", err)
	}
	return nil
}

// UpdateRole touches role_id only. Zero affected rows is not reported as an
// error: MySQL counts a same-value update as zero changed rows.
func (r *employeeRepository) UpdateRole(ctx context.Context, employeeID, roleID uint) error {
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", employeeID).
		Update("role_id", roleID).Error
	if err != nil {
		return fail("employee.update_role", err)
	}
	return nil
}

func (r *employeeRepository) UpdateManager(ctx context.Context, employeeID uint, managerID *uint) error {
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("id = ?", employeeID).
		Update("manager_id", managerID).Error
	if err != nil {
		return fail("employee.update_manager", err)
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, employeeID *uint) error {
	if employeeID == nil {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id = ?", *employeeID).Delete(&model.Employee{}).Error; err != nil {
		return fail("employee.delete", err)
	}
	return nil
}
