package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type teaStyles struct {
	question lipgloss.Style
	cursor   lipgloss.Style
	answer   lipgloss.Style
	errorMsg lipgloss.Style
	hint     lipgloss.Style
}

func newTeaStyles(r *lipgloss.Renderer) teaStyles {
	return teaStyles{
		question: r.NewStyle().Bold(true),
		cursor:   r.NewStyle().Foreground(lipgloss.Color("6")),
		answer:   r.NewStyle().Foreground(lipgloss.Color("6")),
		errorMsg: r.NewStyle().Foreground(lipgloss.Color("9")),
		hint:     r.NewStyle().Faint(true),
	}
}

// TeaPrompter runs one short-lived bubbletea program per question.
//
// Every program reads from the same input. On a terminal each key is read as
// it is typed, but with piped input a program may buffer bytes past the Enter
// that ends its question, and those keys are lost to the next question. Piped
// input is therefore only reliable for a single answer followed by end of input.
type TeaPrompter struct {
	in     io.Reader
	out    io.Writer
	styles teaStyles
}

func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &TeaPrompter{in: in, out: out, styles: newTeaStyles(lipgloss.NewRenderer(out))}
}

// inputClosedMsg tells a running question that no more keys will arrive.
type inputClosedMsg struct{}

// eofReader calls onEOF the first time the wrapped reader reports io.EOF.
type eofReader struct {
	r     io.Reader
	once  sync.Once
	onEOF func()
}

func (e *eofReader) Read(b []byte) (int, error) {
	n, err := e.r.Read(b)
	if errors.Is(err, io.EOF) && e.onEOF != nil {
		e.once.Do(e.onEOF)
	}
	return n, err
}

func (p *TeaPrompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	in := &eofReader{r: p.in}
	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(p.out),
	)
	in.onEOF = func() { prog.Send(inputClosedMsg{}) }
	final, err := prog.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

func (p *TeaPrompter) Select(ctx context.Context, message string, choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}
	final, err := p.run(ctx, newSelectModel(message, choices, p.styles))
	if err != nil {
		return Choice{}, err
	}
	m := final.(selectModel)
	if m.aborted {
		return Choice{}, ErrAborted
	}
	return m.choices[m.cursor], nil
}

func (p *TeaPrompter) Input(ctx context.Context, message string) (string, error) {
	final, err := p.run(ctx, newInputModel(message, nil, p.styles))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.value, nil
}

func (p *TeaPrompter) Number(ctx context.Context, message string) (float64, error) {
	final, err := p.run(ctx, newInputModel(message, parseNumber, p.styles))
	if err != nil {
		return 0, err
	}
	m := final.(inputModel)
	if m.aborted {
		return 0, ErrAborted
	}
	return strconv.ParseFloat(m.value, 64)
}

// parseNumber accepts finite numbers only; NaN and Inf cannot be stored as a salary.
func parseNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("please enter a number")
	}
	return nil
}

// selectModel is a vertical list with a cursor.
type selectModel struct {
	message string
	choices []Choice
	cursor  int
	done    bool
	aborted bool
	styles  teaStyles
}

func newSelectModel(message string, choices []Choice, styles teaStyles) selectModel {
	return selectModel{message: message, choices: choices, styles: styles}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, closed := msg.(inputClosedMsg); closed {
		if !m.done {
			m.aborted = true
		}
		return m, tea.Quit
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k", "shift+tab":
		m.cursor--
		if m.cursor < 0 {
			m.cursor = len(m.choices) - 1
		}
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(m.choices)
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = len(m.choices) - 1
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.question.Render("? " + m.message))
	if m.done {
		b.WriteString(" " + m.styles.answer.Render(m.choices[m.cursor].Label) + "\n")
		return b.String()
	}
	if m.aborted {
		return b.String() + "\n"
	}
	b.WriteString(" " + m.styles.hint.Render("(use arrow keys)") + "\n")
	for i, c := range m.choices {
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> "+c.Label) + "\n")
			continue
		}
		b.WriteString("  " + c.Label + "\n")
	}
	return b.String()
}

// inputModel is a single-line text question with optional validation.
type inputModel struct {
	message  string
	input    textinput.Model
	validate func(string) error
	errMsg   string
	value    string
	done     bool
	aborted  bool
	styles   teaStyles
}

func newInputModel(message string, validate func(string) error, styles teaStyles) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	return inputModel{message: message, input: ti, validate: validate, styles: styles}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, closed := msg.(inputClosedMsg); closed {
		if !m.done {
			m.aborted = true
		}
		return m, tea.Quit
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	question := m.styles.question.Render("? " + m.message)
	if m.done {
		return question + " " + m.styles.answer.Render(m.value) + "\n"
	}
	if m.aborted {
		return question + "\n"
	}
	view := question + " " + m.input.View() + "\n"
	if m.errMsg != "" {
		view += m.styles.errorMsg.Render(">> "+m.errMsg) + "\n"
	}
	return view
}
