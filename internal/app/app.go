// Package app runs the interactive session: menu, dispatch, render, repeat.
package app

import (
	"context"
	"errors"

	"employee_manager/internal/display"
	"employee_manager/internal/prompt"
	"employee_manager/internal/repository"
	"employee_manager/pkg/log"
)

// Menu is the part of the interaction layer the loop needs.
type Menu interface {
	MainMenu(ctx context.Context) (prompt.Action, error)
	NewEmployee(ctx context.Context) (prompt.NewEmployee, error)
	NewRole(ctx context.Context) (prompt.NewRole, error)
	NewDepartment(ctx context.Context) (string, error)
	EmployeeRoleChange(ctx context.Context) (prompt.RoleChange, error)
	EmployeeManagerChange(ctx context.Context) (prompt.ManagerChange, error)
	ManagerToView(ctx context.Context) (uint, error)
	DepartmentToView(ctx context.Context) (uint, error)
	EmployeeToDelete(ctx context.Context) (prompt.Selection, error)
	RoleToDelete(ctx context.Context) (prompt.Selection, error)
	DepartmentToDelete(ctx context.Context) (prompt.Selection, error)
}

type App struct {
	menu        Menu
	employees   repository.EmployeeRepository
	roles       repository.RoleRepository
	departments repository.DepartmentRepository
	out         *display.Renderer
	handlers    map[prompt.Action]func(ctx context.Context) error
}

func New(menu Menu, employees repository.EmployeeRepository, roles repository.RoleRepository, departments repository.DepartmentRepository, out *display.Renderer) *App {
	a := &App{
		menu:        menu,
		employees:   employees,
		roles:       roles,
		departments: departments,
		out:         out,
	}
	a.handlers = map[prompt.Action]func(ctx context.Context) error{
		prompt.ViewEmployees:             a.viewEmployees,
		prompt.AddEmployee:               a.addEmployee,
		prompt.DeleteEmployee:            a.deleteEmployee,
		prompt.UpdateEmployeeRole:        a.updateEmployeeRole,
		prompt.ViewEmployeesByManager:    a.viewEmployeesByManager,
		prompt.UpdateEmployeeManager:     a.updateEmployeeManager,
		prompt.ViewRoles:                 a.viewRoles,
		prompt.AddRole:                   a.addRole,
		prompt.DeleteRole:                a.deleteRole,
		prompt.ViewDepartments:           a.viewDepartments,
		prompt.ViewEmployeesByDepartment: a.viewEmployeesByDepartment,
		prompt.AddDepartment:             a.addDepartment,
		prompt.DeleteDepartment:          a.deleteDepartment,
	}
	return a
}

// Run shows the banner and processes one action at a time until Exit is
// chosen, the operator aborts a prompt, or ctx is cancelled. Failed actions
// are reported and the loop goes on.
func (a *App) Run(ctx context.Context) error {
	a.out.Banner()
	log.Info("Session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := a.menu.MainMenu(ctx)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				a.farewell("aborted")
				return nil
			}
			return err
		}
		if action == prompt.Exit {
			a.farewell("exit")
			return nil
		}

		if err := a.Dispatch(ctx, action); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				a.farewell("aborted")
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
		}
	}
}

func (a *App) farewell(reason string) {
	a.out.Plain("Goodbye!")
	log.Infow("Session ended", "reason", reason)
}

// Dispatch runs a single action and reports its outcome. The returned error
// is only for the loop's own decisions; it has already been shown.
func (a *App) Dispatch(ctx context.Context, action prompt.Action) error {
	handler, ok := a.handlers[action]
	if !ok {
		a.out.Plain("This feature has not been implemented yet.")
		return nil
	}

	err := handler(ctx)
	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrAborted), errors.Is(err, context.Canceled):
	case errors.Is(err, prompt.ErrNoChoices):
		a.out.Notice("%s: %v", action, err)
	default:
		log.Errorw("action failed", "action", string(action), "op", repository.Op(err), "error", err)
		a.out.Error("%s failed: %v", action, err)
		if repository.IsForeignKeyViolation(err) {
			a.out.Notice("The record is still referenced by other records, or points at one that no longer exists.")
		}
	}
	return err
}

func (a *App) viewEmployees(ctx context.Context) error {
	employees, err := a.employees.FindAll(ctx)
	if err != nil {
		return err
	}
	a.out.Table(display.Records(employees))
	return nil
}

func (a *App) viewEmployeesByManager(ctx context.Context) error {
	managerID, err := a.menu.ManagerToView(ctx)
	if err != nil {
		return err
	}
	employees, err := a.employees.FindByManager(ctx, managerID)
	if err != nil {
		return err
	}
	a.out.Table(display.Records(employees))
	return nil
}

func (a *App) viewEmployeesByDepartment(ctx context.Context) error {
	departmentID, err := a.menu.DepartmentToView(ctx)
	if err != nil {
		return err
	}
	employees, err := a.employees.FindByDepartment(ctx, departmentID)
	if err != nil {
		return err
	}
	a.out.Table(display.Records(employees))
	return nil
}

func (a *App) viewRoles(ctx context.Context) error {
	roles, err := a.roles.FindAll(ctx)
	if err != nil {
		return err
	}
	a.out.Table(display.Records(roles))
	return nil
}

func (a *App) viewDepartments(ctx context.Context) error {
	departments, err := a.departments.FindAll(ctx)
	if err != nil {
		return err
	}
	a.out.Table(display.Records(departments))
	return nil
}

func (a *App) addEmployee(ctx context.Context) error {
	in, err := a.menu.NewEmployee(ctx)
	if err != nil {
		return err
	}
	if err := a.employees.Create(ctx, in.FirstName, in.LastName, in.RoleID, in.ManagerID); err != nil {
		return err
	}
	a.out.Success("Employee added successfully.")
	return nil
}

func (a *App) addRole(ctx context.Context) error {
	in, err := a.menu.NewRole(ctx)
	if err != nil {
		return err
	}
	if err := a.roles.Create(ctx, in.Title, in.Salary, in.DepartmentID); err != nil {
		return err
	}
	a.out.Success("Role added successfully.")
	return nil
}

func (a *App) addDepartment(ctx context.Context) error {
	name, err := a.menu.NewDepartment(ctx)
	if err != nil {
		return err
	}
	if err := a.departments.Create(ctx, name); err != nil {
		return err
	}
	a.out.Success("Department added successfully.")
	return nil
}

func (a *App) updateEmployeeRole(ctx context.Context) error {
	change, err := a.menu.EmployeeRoleChange(ctx)
	if err != nil {
		return err
	}
	if err := a.employees.UpdateRole(ctx, change.EmployeeID, change.RoleID); err != nil {
		return err
	}
	a.out.Success("Employee role updated successfully.")
	return nil
}

func (a *App) updateEmployeeManager(ctx context.Context) error {
	change, err := a.menu.EmployeeManagerChange(ctx)
	if err != nil {
		return err
	}
	if err := a.employees.UpdateManager(ctx, change.EmployeeID, change.ManagerID); err != nil {
		return err
	}
	a.out.Success("Employee manager updated successfully.")
	return nil
}

func (a *App) deleteEmployee(ctx context.Context) error {
	return a.deleteEntity(ctx, "Employee", a.menu.EmployeeToDelete, a.employees.Delete)
}

func (a *App) deleteRole(ctx context.Context) error {
	return a.deleteEntity(ctx, "Role", a.menu.RoleToDelete, a.roles.Delete)
}

func (a *App) deleteDepartment(ctx context.Context) error {
	return a.deleteEntity(ctx, "Department", a.menu.DepartmentToDelete, a.departments.Delete)
}

// deleteEntity asks which record to delete and deletes it unless the
// operator picked Cancel. No reference check is made before deleting.
func (a *App) deleteEntity(
	ctx context.Context,
	entity string,
	choose func(context.Context) (prompt.Selection, error),
	remove func(context.Context, *uint) error,
) error {
	sel, err := choose(ctx)
	if err != nil {
		return err
	}
	if sel.Cancelled {
		a.out.Notice("%s deletion was cancelled.", entity)
		return nil
	}
	if err := remove(ctx, sel.Target()); err != nil {
		return err
	}
	a.out.Success("%s deleted successfully.", entity)
	return nil
}
