// Package tui is the interactive terminal front end of a single calculator.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"go-calculators/internal/calc"
	"go-calculators/internal/shell"
	"go-calculators/internal/share"
)

const inputWidth = 32

// Model drives one shell.Instance from the keyboard.
type Model struct {
	form    *shell.Instance
	inputs  []textinput.Model
	focused int
	shared  string
	err     error
}

// New builds a model with the calculator's default inputs and the first field
// focused.
func New(def *calc.Definition) Model {
	m := Model{form: shell.New(def)}
	m.inputs = make([]textinput.Model, len(def.Fields))
	for i, spec := range def.Fields {
		m.inputs[i] = newInput(spec)
	}
	m.load()
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func newInput(spec calc.FieldSpec) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = inputWidth
	switch {
	case len(spec.Options) > 0:
		ti.Placeholder = strings.Join(spec.Options, " | ")
	case spec.Kind == calc.KindNumber:
		ti.Placeholder = "0"
	}
	return ti
}

// load copies the form's raw values into the text inputs.
func (m *Model) load() {
	for i, spec := range m.form.Definition().Fields {
		v, _ := m.form.Value(spec.Name)
		m.inputs[i].SetValue(v)
	}
}

// Form exposes the underlying form, mainly for tests.
func (m Model) Form() *shell.Instance {
	return m.form
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return m.focus(m.focused + 1), nil
	case tea.KeyShiftTab, tea.KeyUp:
		return m.focus(m.focused - 1), nil
	case tea.KeyEnter:
		m.shared = ""
		m.err = nil
		if _, err := m.form.Calculate(); err != nil {
			if _, ok := calc.AsValidation(err); !ok {
				m.err = err
			}
		}
		return m, nil
	case tea.KeyCtrlR:
		m.form.Reset()
		m.load()
		m.shared = ""
		m.err = nil
		return m, nil
	case tea.KeyCtrlS:
		m.shared, m.err = m.share()
		return m, nil
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	name := m.form.Definition().Fields[m.focused].Name
	if err := m.form.Set(name, m.inputs[m.focused].Value()); err != nil {
		m.err = err
	}
	return m, cmd
}

// focus moves the cursor to field i, wrapping at both ends.
func (m Model) focus(i int) Model {
	n := len(m.inputs)
	if n == 0 {
		return m
	}
	i = (i%n + n) % n
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[i].Focus()
	return m
}

func (m Model) share() (string, error) {
	s, ok := m.form.Summary()
	if !ok {
		return "", fmt.Errorf("calculate a result before sharing")
	}
	var sb strings.Builder
	if err := (share.Text{}).Export(&sb, s); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (m Model) View() string {
	def := m.form.Definition()
	var b strings.Builder

	b.WriteString(titleStyle.Render(def.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(def.Description))
	b.WriteString("\n\n")

	for i, spec := range def.Fields {
		label := spec.Label
		if spec.Unit != "" {
			label += " (" + spec.Unit + ")"
		}
		if i == m.focused {
			b.WriteString(focusStyle.Render(label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if msg := m.form.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if res, ok := m.form.Result(); ok {
		b.WriteString("\n")
		b.WriteString(resultBox.Render(renderResult(res)))
		b.WriteString("\n")
	}

	if m.shared != "" {
		b.WriteString("\n")
		b.WriteString(m.shared)
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab/↑↓ move • enter calculate • ctrl+s share • ctrl+r reset • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func renderResult(r calc.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", r.Primary.Label, primaryStyle.Render(withUnit(r.Primary)))
	for _, v := range r.Secondary {
		fmt.Fprintf(&b, "\n%s: %s", labelStyle.Render(v.Label), withUnit(v))
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "\n• %s", rec)
	}
	return b.String()
}

func withUnit(v calc.Value) string {
	if v.Unit == "" {
		return v.Display
	}
	return v.Display + " " + v.Unit
}
