package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStyles() teaStyles {
	return newTeaStyles(lipgloss.NewRenderer(&bytes.Buffer{}))
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectModel_Navigation(t *testing.T) {
	choices := []Choice{Cancel, {Label: "Engineer", ID: 3}, {Label: "Accountant", ID: 4}}
	var m tea.Model = newSelectModel("Select the role to delete:", choices, testStyles())

	m, _ = m.Update(key(tea.KeyUp))
	assert.Equal(t, 2, m.(selectModel).cursor, "up from the first entry wraps to the last")

	m, _ = m.Update(key(tea.KeyDown))
	assert.Equal(t, 0, m.(selectModel).cursor)

	m, _ = m.Update(key(tea.KeyDown))
	m, cmd := m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	sm := m.(selectModel)
	assert.True(t, sm.done)
	assert.Equal(t, "Engineer", sm.choices[sm.cursor].Label)
	assert.Contains(t, sm.View(), "Engineer")
}

func TestSelectModel_Abort(t *testing.T) {
	var m tea.Model = newSelectModel("Choose your action:", []Choice{{Label: "Exit"}}, testStyles())

	m, cmd := m.Update(key(tea.KeyCtrlC))

	require.NotNil(t, cmd)
	assert.True(t, m.(selectModel).aborted)
}

func TestSelectModel_ViewMarksCursor(t *testing.T) {
	m := newSelectModel("Pick:", []Choice{{Label: "A"}, {Label: "B"}}, testStyles())

	view := m.View()

	assert.Contains(t, view, "? Pick:")
	assert.Contains(t, view, "> A")
	assert.Contains(t, view, "  B")
}

func TestInputModel_NumberValidation(t *testing.T) {
	var m tea.Model = newInputModel("Enter the salary for the role:", parseNumber, testStyles())

	m, _ = m.Update(runes("80k"))
	m, cmd := m.Update(key(tea.KeyEnter))
	im := m.(inputModel)
	assert.Nil(t, cmd)
	assert.False(t, im.done)
	assert.Equal(t, "please enter a number", im.errMsg)
	assert.Contains(t, im.View(), "please enter a number")

	m, _ = m.Update(key(tea.KeyBackspace))
	m, _ = m.Update(runes("000"))
	m, cmd = m.Update(key(tea.KeyEnter))
	im = m.(inputModel)
	require.NotNil(t, cmd)
	assert.True(t, im.done)
	assert.Equal(t, "80000", im.value)
}

func TestInputModel_TrimsAndAborts(t *testing.T) {
	var m tea.Model = newInputModel("Enter the role title:", nil, testStyles())

	m, _ = m.Update(runes("  Engineer  "))
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Equal(t, "Engineer", m.(inputModel).value)

	m = newInputModel("Enter the role title:", nil, testStyles())
	m, _ = m.Update(key(tea.KeyEsc))
	assert.True(t, m.(inputModel).aborted)
}

func TestTeaPrompter_Select(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewTeaPrompter(strings.NewReader("\x1b[B\r"), out)

	c, err := p.Select(context.Background(), "Select the role to delete:", []Choice{Cancel, {Label: "Engineer", ID: 3}})

	require.NoError(t, err)
	assert.Equal(t, uint(3), c.ID)
	assert.False(t, c.IsCancel())
}

func TestTeaPrompter_Input(t *testing.T) {
	p := NewTeaPrompter(strings.NewReader("Jane\r"), &bytes.Buffer{})

	v, err := p.Input(context.Background(), "Enter the first name of the employee:")

	require.NoError(t, err)
	assert.Equal(t, "Jane", v)
}

func TestTeaPrompter_SelectWithoutChoices(t *testing.T) {
	p := NewTeaPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Select(context.Background(), "Pick:", nil)

	assert.ErrorIs(t, err, ErrNoChoices)
}

func TestParseNumber_RejectsNonFinite(t *testing.T) {
	for _, in := range []string{"NaN", "nan", "Inf", "+Inf", "-Infinity", "1e400"} {
		assert.Error(t, parseNumber(in), in)
	}
	for _, in := range []string{"0", "80000", "-1.5", "1e3"} {
		assert.NoError(t, parseNumber(in), in)
	}
}

func TestSelectModel_InputClosed(t *testing.T) {
	var m tea.Model = newSelectModel("Choose your action:", []Choice{{Label: "Exit"}}, testStyles())

	m, cmd := m.Update(inputClosedMsg{})

	require.NotNil(t, cmd)
	assert.True(t, m.(selectModel).aborted)
}

func TestSelectModel_InputClosedAfterAnswer(t *testing.T) {
	var m tea.Model = newSelectModel("Choose your action:", []Choice{{Label: "Exit"}}, testStyles())

	m, _ = m.Update(key(tea.KeyEnter))
	m, _ = m.Update(inputClosedMsg{})

	assert.True(t, m.(selectModel).done)
	assert.False(t, m.(selectModel).aborted)
}

func TestInputModel_InputClosed(t *testing.T) {
	var m tea.Model = newInputModel("Enter the role title:", nil, testStyles())

	m, _ = m.Update(runes("Eng"))
	m, cmd := m.Update(inputClosedMsg{})

	require.NotNil(t, cmd)
	assert.True(t, m.(inputModel).aborted)
}

// answerWithin fails the test if ask does not return in time.
func answerWithin(t *testing.T, ask func() error) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- ask() }()
	select {
	case err := <-done:
		return err
	case <-time.After(3 * time.Second):
		t.Fatalf("prompt still blocked after the input ended")
		return nil
	}
}

func TestTeaPrompter_SelectEndsWithInput(t *testing.T) {
	p := NewTeaPrompter(strings.NewReader(""), &bytes.Buffer{})

	err := answerWithin(t, func() error {
		_, err := p.Select(context.Background(), "Choose your action:", []Choice{{Label: "Exit"}})
		return err
	})

	assert.ErrorIs(t, err, ErrAborted)
}

func TestTeaPrompter_InputEndsWithInput(t *testing.T) {
	p := NewTeaPrompter(strings.NewReader("Jan"), &bytes.Buffer{})

	err := answerWithin(t, func() error {
		_, err := p.Input(context.Background(), "Enter the first name of the employee:")
		return err
	})

	assert.ErrorIs(t, err, ErrAborted)
}

func TestTeaPrompter_AnswerBeforeInputEnds(t *testing.T) {
	p := NewTeaPrompter(strings.NewReader("42\r"), &bytes.Buffer{})

	var v float64
	err := answerWithin(t, func() error {
		var err error
		v, err = p.Number(context.Background(), "Enter the salary for the role:")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}
