package prompt

import "context"

// Action is one entry of the main menu.
type Action string

const (
	ViewEmployees             Action = "View All Employees"
	AddEmployee               Action = "Add Employee"
	DeleteEmployee            Action = "Delete Employee"
	UpdateEmployeeRole        Action = "Update Employee Role"
	ViewEmployeesByManager    Action = "View Employees by Manager"
	UpdateEmployeeManager     Action = "Update Employee Manager"
	ViewRoles                 Action = "View All Roles"
	AddRole                   Action = "Add Role"
	DeleteRole                Action = "Delete Role"
	ViewDepartments           Action = "View All Departments"
	ViewEmployeesByDepartment Action = "View Employees by Department"
	AddDepartment             Action = "Add Department"
	DeleteDepartment          Action = "Delete Department"
	Exit                      Action = "Exit"
)

// Actions is the fixed menu, in display order.
var Actions = []Action{
	ViewEmployees,
	AddEmployee,
	DeleteEmployee,
	UpdateEmployeeRole,
	ViewEmployeesByManager,
	UpdateEmployeeManager,
	ViewRoles,
	AddRole,
	DeleteRole,
	ViewDepartments,
	ViewEmployeesByDepartment,
	AddDepartment,
	DeleteDepartment,
	Exit,
}

// MainMenu asks which action to run next.
func (i *Interactor) MainMenu(ctx context.Context) (Action, error) {
	choices := make([]Choice, len(Actions))
	for n, a := range Actions {
		choices[n] = Choice{Label: string(a), ID: uint(n)}
	}
	c, err := i.p.Select(ctx, "Choose your action:", choices)
	if err != nil {
		return "", err
	}
	return Action(c.Label), nil
}
