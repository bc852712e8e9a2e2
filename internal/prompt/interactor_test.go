package prompt_test

import (
	"context"
	"errors"
	"testing"

	"employee_manager/internal/prompt"
	"employee_manager/internal/prompt/prompttest"
	"employee_manager/internal/repository/repositorytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seed creates Engineering(1), Engineer(2) and Ada Lovelace(3).
func seed(t *testing.T) *repositorytest.Store {
	t.Helper()
	ctx := context.Background()
	s := repositorytest.NewStore()
	require.NoError(t, s.Departments().Create(ctx, "Engineering"))
	require.NoError(t, s.Roles().Create(ctx, "Engineer", 80000, 1))
	require.NoError(t, s.Employees().Create(ctx, "Ada", "Lovelace", 2, nil))
	return s
}

func newInteractor(s *repositorytest.Store, answers ...string) (*prompt.Interactor, *prompttest.Script) {
	script := prompttest.New(answers...)
	return prompt.NewInteractor(script, s.Employees(), s.Roles(), s.Departments()), script
}

func TestMainMenu(t *testing.T) {
	i, script := newInteractor(repositorytest.NewStore(), "View All Roles")

	action, err := i.MainMenu(context.Background())

	require.NoError(t, err)
	assert.Equal(t, prompt.ViewRoles, action)
	require.Len(t, script.Asked, 1)
	assert.Len(t, script.Asked[0].Labels, len(prompt.Actions))
	assert.Equal(t, "Exit", script.Asked[0].Labels[len(prompt.Actions)-1])
}

func TestNewEmployee_NoManager(t *testing.T) {
	i, script := newInteractor(seed(t), "Jane", "Doe", "Engineer", "No Manager")

	in, err := i.NewEmployee(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Jane", in.FirstName)
	assert.Equal(t, "Doe", in.LastName)
	assert.Equal(t, uint(2), in.RoleID)
	assert.Nil(t, in.ManagerID, "No Manager leaves the manager unset")
	assert.Equal(t, []string{"Ada Lovelace", "No Manager"}, script.Last().Labels)
}

func TestNewEmployee_WithManager(t *testing.T) {
	i, _ := newInteractor(seed(t), "Jane", "Doe", "Engineer", "Ada Lovelace")

	in, err := i.NewEmployee(context.Background())

	require.NoError(t, err)
	require.NotNil(t, in.ManagerID)
	assert.Equal(t, uint(3), *in.ManagerID)
}

func TestNewEmployee_RequiresRoles(t *testing.T) {
	i, script := newInteractor(repositorytest.NewStore(), "Jane")

	_, err := i.NewEmployee(context.Background())

	assert.ErrorIs(t, err, prompt.ErrNoChoices)
	assert.Empty(t, script.Asked, "no question is asked when nothing can be chosen")
}

func TestNewRole(t *testing.T) {
	i, script := newInteractor(seed(t), "Architect", "95000.5", "Engineering")

	in, err := i.NewRole(context.Background())

	require.NoError(t, err)
	assert.Equal(t, prompt.NewRole{Title: "Architect", Salary: 95000.5, DepartmentID: 1}, in)
	assert.Equal(t, "Enter the salary for the role:", script.Asked[1].Message)
}

func TestNewDepartment(t *testing.T) {
	i, _ := newInteractor(repositorytest.NewStore(), "Finance")

	name, err := i.NewDepartment(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Finance", name)
}

func TestEmployeeRoleChange(t *testing.T) {
	s := seed(t)
	require.NoError(t, s.Roles().Create(context.Background(), "Architect", 95000, 1))
	i, _ := newInteractor(s, "Ada Lovelace", "Architect")

	change, err := i.EmployeeRoleChange(context.Background())

	require.NoError(t, err)
	assert.Equal(t, prompt.RoleChange{EmployeeID: 3, RoleID: 4}, change)
}

func TestEmployeeManagerChange_ExcludesSelf(t *testing.T) {
	s := seed(t)
	require.NoError(t, s.Employees().Create(context.Background(), "Jane", "Doe", 2, nil))
	i, script := newInteractor(s, "Jane Doe", "Ada Lovelace")

	change, err := i.EmployeeManagerChange(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint(4), change.EmployeeID)
	require.NotNil(t, change.ManagerID)
	assert.Equal(t, uint(3), *change.ManagerID)
	assert.Equal(t, []string{"Ada Lovelace", "No Manager"}, script.Last().Labels)
}

func TestEmployeeManagerChange_Clear(t *testing.T) {
	i, _ := newInteractor(seed(t), "Ada Lovelace", "No Manager")

	change, err := i.EmployeeManagerChange(context.Background())

	require.NoError(t, err)
	assert.Nil(t, change.ManagerID)
}

func TestManagerToView(t *testing.T) {
	s := seed(t)
	managerID := uint(3)
	require.NoError(t, s.Employees().Create(context.Background(), "Jane", "Doe", 2, &managerID))
	i, script := newInteractor(s, "Ada Lovelace")

	id, err := i.ManagerToView(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint(3), id)
	assert.Equal(t, []string{"Ada Lovelace"}, script.Last().Labels, "only employees someone reports to are offered")
}

func TestManagerToView_NoManagers(t *testing.T) {
	i, _ := newInteractor(seed(t))

	_, err := i.ManagerToView(context.Background())

	assert.ErrorIs(t, err, prompt.ErrNoChoices)
}

func TestDepartmentToView(t *testing.T) {
	i, _ := newInteractor(seed(t), "Engineering")

	id, err := i.DepartmentToView(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
}

func TestDeletionSelections(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		ask    func(*prompt.Interactor) (prompt.Selection, error)
		wantID uint
	}{
		{name: "employee", answer: "Ada Lovelace", ask: func(i *prompt.Interactor) (prompt.Selection, error) { return i.EmployeeToDelete(context.Background()) }, wantID: 3},
		{name: "role", answer: "Engineer", ask: func(i *prompt.Interactor) (prompt.Selection, error) { return i.RoleToDelete(context.Background()) }, wantID: 2},
		{name: "department", answer: "Engineering", ask: func(i *prompt.Interactor) (prompt.Selection, error) { return i.DepartmentToDelete(context.Background()) }, wantID: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			i, script := newInteractor(seed(t), tc.answer)
			sel, err := tc.ask(i)
			require.NoError(t, err)
			assert.Equal(t, prompt.Selection{ID: tc.wantID}, sel)
			assert.Equal(t, "Cancel", script.Last().Labels[0])

			i, _ = newInteractor(seed(t), "Cancel")
			sel, err = tc.ask(i)
			require.NoError(t, err)
			assert.True(t, sel.Cancelled)
			assert.Nil(t, sel.Target())
		})
	}
}

func TestStoreErrorPropagates(t *testing.T) {
	s := seed(t)
	dbErr := errors.New("connection lost")
	s.Errors["role.find_all"] = dbErr
	i, _ := newInteractor(s)

	_, err := i.RoleToDelete(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestAbortedPrompt(t *testing.T) {
	i, _ := newInteractor(seed(t), "Jane")

	_, err := i.NewEmployee(context.Background())

	assert.ErrorIs(t, err, prompt.ErrAborted)
}
