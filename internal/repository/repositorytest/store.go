// Package repositorytest provides an in-memory implementation of the
// repository interfaces for tests that need real read-after-write behaviour.
package repositorytest

import (
	"context"
	"sort"

	"employee_manager/internal/model"
	"employee_manager/internal/repository"
)

// Store keeps the three tables in maps and answers the same projections as
// the SQL repositories. It enforces no foreign keys, like the application.
type Store struct {
	departments map[uint]model.Department
	roles       map[uint]model.Role
	employees   map[uint]model.Employee
	nextID      uint

	// Errors makes the operation with the given name fail, e.g. "role.delete".
	Errors map[string]error
	// Mutations counts successful insert, update and delete calls.
	Mutations int
}

func NewStore() *Store {
	return &Store{
		departments: map[uint]model.Department{},
		roles:       map[uint]model.Role{},
		employees:   map[uint]model.Employee{},
		Errors:      map[string]error{},
	}
}

func (s *Store) Employees() repository.EmployeeRepository     { return employeeStore{s} }
func (s *Store) Roles() repository.RoleRepository             { return roleStore{s} }
func (s *Store) Departments() repository.DepartmentRepository { return departmentStore{s} }

func (s *Store) check(op string) error {
	if err, ok := s.Errors[op]; ok {
		return &repository.StoreError{Op: op, Err: err}
	}
	return nil
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// Employee returns the stored row, for assertions.
func (s *Store) Employee(id uint) (model.Employee, bool) {
	e, ok := s.employees[id]
	return e, ok
}

func (s *Store) EmployeeCount() int   { return len(s.employees) }
func (s *Store) RoleCount() int       { return len(s.roles) }
func (s *Store) DepartmentCount() int { return len(s.departments) }

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type employeeStore struct{ s *Store }

func (r employeeStore) views(filter func(e model.Employee, r model.Role) bool) []model.EmployeeView {
	views := []model.EmployeeView{}
	for _, id := range sortedKeys(r.s.employees) {
		e := r.s.employees[id]
		role, ok := r.s.roles[e.RoleID]
		if !ok {
			continue
		}
		dept, ok := r.s.departments[role.DepartmentID]
		if !ok {
			continue
		}
		if filter != nil && !filter(e, role) {
			continue
		}
		view := model.EmployeeView{
			ID:         e.ID,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			JobTitle:   role.Title,
			Department: dept.Name,
			Salary:     role.Salary,
		}
		if e.ManagerID != nil {
			if m, ok := r.s.employees[*e.ManagerID]; ok {
				name := m.FirstName + " " + m.LastName
				view.ManagerName = &name
			}
		}
		views = append(views, view)
	}
	return views
}

func (r employeeStore) FindAll(ctx context.Context) ([]model.EmployeeView, error) {
	if err := r.s.check("employee.find_all"); err != nil {
		return nil, err
	}
	return r.views(nil), nil
}

func (r employeeStore) FindByManager(ctx context.Context, managerID uint) ([]model.EmployeeView, error) {
	if err := r.s.check("employee.find_by_manager"); err != nil {
		return nil, err
	}
	return r.views(func(e model.Employee, _ model.Role) bool {
		return e.ManagerID != nil && *e.ManagerID == managerID
	}), nil
}

func (r employeeStore) FindByDepartment(ctx context.Context, departmentID uint) ([]model.EmployeeView, error) {
	if err := r.s.check("employee.find_by_department"); err != nil {
		return nil, err
	}
	return r.views(func(_ model.Employee, role model.Role) bool {
		return role.DepartmentID == departmentID
	}), nil
}

func (r employeeStore) FindManagers(ctx context.Context) ([]model.ManagerView, error) {
	if err := r.s.check("employee.find_managers"); err != nil {
		return nil, err
	}
	isManager := map[uint]bool{}
	for _, e := range r.s.employees {
		if e.ManagerID != nil {
			isManager[*e.ManagerID] = true
		}
	}
	managers := []model.ManagerView{}
	for _, id := range sortedKeys(r.s.employees) {
		if isManager[id] {
			e := r.s.employees[id]
			managers = append(managers, model.ManagerView{ID: e.ID, FirstName: e.FirstName, LastName: e.LastName})
		}
	}
	return managers, nil
}

func (r employeeStore) Create(ctx context.Context, firstName, lastName string, roleID uint, managerID *uint) error {
	if err := r.s.check("employee.create"); err != nil {
		return err
	}
	id := r.s.id()
	r.s.employees[id] = model.Employee{ID: id, FirstName: firstName, LastName: lastName, RoleID: roleID, ManagerID: managerID}
	r.s.Mutations++
	return nil
}

func (r employeeStore) UpdateRole(ctx context.Context, employeeID, roleID uint) error {
	if err := r.s.check("employee.update_role"); err != nil {
		return err
	}
	if e, ok := r.s.employees[employeeID]; ok {
		e.RoleID = roleID
		r.s.employees[employeeID] = e
	}
	r.s.Mutations++
	return nil
}

func (r employeeStore) UpdateManager(ctx context.Context, employeeID uint, managerID *uint) error {
	if err := r.s.check("employee.update_manager"); err != nil {
		return err
	}
	if e, ok := r.s.employees[employeeID]; ok {
		e.ManagerID = managerID
		r.s.employees[employeeID] = e
	}
	r.s.Mutations++
	return nil
}

func (r employeeStore) Delete(ctx context.Context, employeeID *uint) error {
	if employeeID == nil {
		return nil
	}
	if err := r.s.check("employee.delete"); err != nil {
		return err
	}
	delete(r.s.employees, *employeeID)
	r.s.Mutations++
	return nil
}

type roleStore struct{ s *Store }

func (r roleStore) FindAll(ctx context.Context) ([]model.RoleView, error) {
	if err := r.s.check("role.find_all"); err != nil {
		return nil, err
	}
	roles := []model.RoleView{}
	for _, id := range sortedKeys(r.s.roles) {
		role := r.s.roles[id]
		dept, ok := r.s.departments[role.DepartmentID]
		if !ok {
			continue
		}
		roles = append(roles, model.RoleView{ID: role.ID, JobTitle: role.Title, Department: dept.Name, Salary: role.Salary})
	}
	return roles, nil
}

func (r roleStore) Create(ctx context.Context, title string, salary float64, departmentID uint) error {
	if err := r.s.check("role.create"); err != nil {
		return err
	}
	id := r.s.id()
	r.s.roles[id] = model.Role{ID: id, Title: title, Salary: salary, DepartmentID: departmentID}
	r.s.Mutations++
	return nil
}

func (r roleStore) Delete(ctx context.Context, roleID *uint) error {
	if roleID == nil {
		return nil
	}
	if err := r.s.check("role.delete"); err != nil {
		return err
	}
	delete(r.s.roles, *roleID)
	r.s.Mutations++
	return nil
}

type departmentStore struct{ s *Store }

func (r departmentStore) FindAll(ctx context.Context) ([]model.DepartmentView, error) {
	if err := r.s.check("department.find_all"); err != nil {
		return nil, err
	}
	budgets := map[uint]float64{}
	for _, e := range r.s.employees {
		if role, ok := r.s.roles[e.RoleID]; ok {
			budgets[role.DepartmentID] += role.Salary
		}
	}
	departments := []model.DepartmentView{}
	for _, id := range sortedKeys(r.s.departments) {
		view := model.DepartmentView{ID: id, Name: r.s.departments[id].Name}
		if b := budgets[id]; b != 0 {
			view.TotalBudget = &b
		}
		departments = append(departments, view)
	}
	return departments, nil
}

func (r departmentStore) Create(ctx context.Context, name string) error {
	if err := r.s.check("department.create"); err != nil {
		return err
	}
	id := r.s.id()
	r.s.departments[id] = model.Department{ID: id, Name: name}
	r.s.Mutations++
	return nil
}

func (r departmentStore) Delete(ctx context.Context, departmentID *uint) error {
	if departmentID == nil {
		return nil
	}
	if err := r.s.check("department.delete"); err != nil {
		return err
	}
	delete(r.s.departments, *departmentID)
	r.s.Mutations++
	return nil
}
