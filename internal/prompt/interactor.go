package prompt

import (
	"context"
	"fmt"

	"employee_manager/internal/repository"
)

// Interactor holds the question sequence of every menu action. Each sequence
// is a fixed chain; choice lists are read fresh from the store every time.
type Interactor struct {
	p           Prompter
	employees   repository.EmployeeRepository
	roles       repository.RoleRepository
	departments repository.DepartmentRepository
}

func NewInteractor(p Prompter, employees repository.EmployeeRepository, roles repository.RoleRepository, departments repository.DepartmentRepository) *Interactor {
	return &Interactor{p: p, employees: employees, roles: roles, departments: departments}
}

type NewEmployee struct {
	FirstName string
	LastName  string
	RoleID    uint
	// ManagerID is nil when "No Manager" was picked.
	ManagerID *uint
}

type NewRole struct {
	Title        string
	Salary       float64
	DepartmentID uint
}

type RoleChange struct {
	EmployeeID uint
	RoleID     uint
}

type ManagerChange struct {
	EmployeeID uint
	// ManagerID is nil when "No Manager" was picked; the manager is cleared.
	ManagerID *uint
}

func noChoices(what string) error {
	return fmt.Errorf("%w: no %s exist yet", ErrNoChoices, what)
}

func (i *Interactor) employeeChoices(ctx context.Context) ([]Choice, error) {
	employees, err := i.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return EmployeeChoices(employees), nil
}

func (i *Interactor) roleChoices(ctx context.Context) ([]Choice, error) {
	roles, err := i.roles.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return RoleChoices(roles), nil
}

func (i *Interactor) departmentChoices(ctx context.Context) ([]Choice, error) {
	departments, err := i.departments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return DepartmentChoices(departments), nil
}

func managerID(c Choice) *uint {
	if c.IsNoManager() {
		return nil
	}
	id := c.ID
	return &id
}

func (i *Interactor) NewEmployee(ctx context.Context) (NewEmployee, error) {
	var out NewEmployee

	roles, err := i.roleChoices(ctx)
	if err != nil {
		return out, err
	}
	if len(roles) == 0 {
		return out, noChoices("roles")
	}
	employees, err := i.employeeChoices(ctx)
	if err != nil {
		return out, err
	}

	if out.FirstName, err = i.p.Input(ctx, "Enter the first name of the employee:"); err != nil {
		return out, err
	}
	if out.LastName, err = i.p.Input(ctx, "Enter the last name of the employee:"); err != nil {
		return out, err
	}
	role, err := i.p.Select(ctx, "Select role for the employee:", roles)
	if err != nil {
		return out, err
	}
	out.RoleID = role.ID
	manager, err := i.p.Select(ctx, "Select the manager for the employee:", withNoManager(employees))
	if err != nil {
		return out, err
	}
	out.ManagerID = managerID(manager)
	return out, nil
}

func (i *Interactor) NewRole(ctx context.Context) (NewRole, error) {
	var out NewRole

	departments, err := i.departmentChoices(ctx)
	if err != nil {
		return out, err
	}
	if len(departments) == 0 {
		return out, noChoices("departments")
	}

	if out.Title, err = i.p.Input(ctx, "Enter the role title:"); err != nil {
		return out, err
	}
	if out.Salary, err = i.p.Number(ctx, "Enter the salary for the role:"); err != nil {
		return out, err
	}
	department, err := i.p.Select(ctx, "Choose the department for the role:", departments)
	if err != nil {
		return out, err
	}
	out.DepartmentID = department.ID
	return out, nil
}

// NewDepartment asks for the department name.
func (i *Interactor) NewDepartment(ctx context.Context) (string, error) {
	return i.p.Input(ctx, "Enter the name of the new department:")
}

func (i *Interactor) EmployeeRoleChange(ctx context.Context) (RoleChange, error) {
	var out RoleChange

	employees, err := i.employeeChoices(ctx)
	if err != nil {
		return out, err
	}
	if len(employees) == 0 {
		return out, noChoices("employees")
	}
	roles, err := i.roleChoices(ctx)
	if err != nil {
		return out, err
	}
	if len(roles) == 0 {
		return out, noChoices("roles")
	}

	employee, err := i.p.Select(ctx, "Choose the employee whose role you want to update:", employees)
	if err != nil {
		return out, err
	}
	out.EmployeeID = employee.ID
	role, err := i.p.Select(ctx, "Select the new role for the employee:", roles)
	if err != nil {
		return out, err
	}
	out.RoleID = role.ID
	return out, nil
}

// EmployeeManagerChange never offers an employee as their own manager.
// Longer cycles are not detected.
func (i *Interactor) EmployeeManagerChange(ctx context.Context) (ManagerChange, error) {
	var out ManagerChange

	employees, err := i.employeeChoices(ctx)
	if err != nil {
		return out, err
	}
	if len(employees) == 0 {
		return out, noChoices("employees")
	}

	employee, err := i.p.Select(ctx, "Select the employee whose manager needs to be updated:", employees)
	if err != nil {
		return out, err
	}
	out.EmployeeID = employee.ID
	manager, err := i.p.Select(ctx, "Select the new manager for this employee:", withNoManager(without(employees, employee.ID)))
	if err != nil {
		return out, err
	}
	out.ManagerID = managerID(manager)
	return out, nil
}

// ManagerToView asks which manager's direct reports to list.
func (i *Interactor) ManagerToView(ctx context.Context) (uint, error) {
	managers, err := i.employees.FindManagers(ctx)
	if err != nil {
		return 0, err
	}
	if len(managers) == 0 {
		return 0, noChoices("managers")
	}
	c, err := i.p.Select(ctx, "Choose a manager to see their direct reports:", ManagerChoices(managers))
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (i *Interactor) DepartmentToView(ctx context.Context) (uint, error) {
	departments, err := i.departmentChoices(ctx)
	if err != nil {
		return 0, err
	}
	if len(departments) == 0 {
		return 0, noChoices("departments")
	}
	c, err := i.p.Select(ctx, "Select a department to see employees:", departments)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (i *Interactor) EmployeeToDelete(ctx context.Context) (Selection, error) {
	employees, err := i.employeeChoices(ctx)
	if err != nil {
		return Selection{}, err
	}
	return i.selectForDeletion(ctx, "Select the employee to remove:", employees)
}

func (i *Interactor) RoleToDelete(ctx context.Context) (Selection, error) {
	roles, err := i.roleChoices(ctx)
	if err != nil {
		return Selection{}, err
	}
	return i.selectForDeletion(ctx, "Select the role to delete:", roles)
}

func (i *Interactor) DepartmentToDelete(ctx context.Context) (Selection, error) {
	departments, err := i.departmentChoices(ctx)
	if err != nil {
		return Selection{}, err
	}
	return i.selectForDeletion(ctx, "Select the department to delete:", departments)
}

func (i *Interactor) selectForDeletion(ctx context.Context, message string, choices []Choice) (Selection, error) {
	c, err := i.p.Select(ctx, message, withCancel(choices))
	if err != nil {
		return Selection{}, err
	}
	if c.IsCancel() {
		return Selection{Cancelled: true}, nil
	}
	return Selection{ID: c.ID}, nil
}
