// Package prompt collects operator input: the main menu, free text, numbers
// and single choices among existing records.
package prompt

import (
	"employee_manager/internal/model"
)

type choiceKind int

const (
	kindRecord choiceKind = iota
	kindNoManager
	kindCancel
)

// Choice is one selectable line: a label for the operator and the id of the
// record it stands for.
type Choice struct {
	Label string
	ID    uint
	kind  choiceKind
}

var (
	// NoManager means the employee reports to nobody.
	NoManager = Choice{Label: "No Manager", kind: kindNoManager}
	// Cancel aborts a destructive action before anything is sent to the store.
	Cancel = Choice{Label: "Cancel", kind: kindCancel}
)

func (c Choice) IsNoManager() bool { return c.kind == kindNoManager }
func (c Choice) IsCancel() bool    { return c.kind == kindCancel }

// Selection is the outcome of a "pick a record to delete" question.
type Selection struct {
	ID        uint
	Cancelled bool
}

// Target returns the id to act on, or nil when the operator cancelled.
func (s Selection) Target() *uint {
	if s.Cancelled {
		return nil
	}
	id := s.ID
	return &id
}

func EmployeeChoices(employees []model.EmployeeView) []Choice {
	choices := make([]Choice, 0, len(employees))
	for _, e := range employees {
		choices = append(choices, Choice{Label: e.FullName(), ID: e.ID})
	}
	return choices
}

func ManagerChoices(managers []model.ManagerView) []Choice {
	choices := make([]Choice, 0, len(managers))
	for _, m := range managers {
		choices = append(choices, Choice{Label: m.FullName(), ID: m.ID})
	}
	return choices
}

func RoleChoices(roles []model.RoleView) []Choice {
	choices := make([]Choice, 0, len(roles))
	for _, r := range roles {
		choices = append(choices, Choice{Label: r.JobTitle, ID: r.ID})
	}
	return choices
}

func DepartmentChoices(departments []model.DepartmentView) []Choice {
	choices := make([]Choice, 0, len(departments))
	for _, d := range departments {
		choices = append(choices, Choice{Label: d.Name, ID: d.ID})
	}
	return choices
}

// withCancel puts Cancel first so it is the default cursor position.
func withCancel(choices []Choice) []Choice {
	return append([]Choice{Cancel}, choices...)
}

func withNoManager(choices []Choice) []Choice {
	return append(choices, NoManager)
}

func without(choices []Choice, id uint) []Choice {
	out := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if c.kind == kindRecord && c.ID == id {
			continue
		}
		out = append(out, c)
	}
	return out
}
