package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/renderer"
)

// varsForm prompts for one variable value at a time, in template order.
type varsForm struct {
	names     []string
	input     textinput.Model
	current   int
	values    []renderer.Substitution
	cancelled bool
}

func newVarsForm(names []string) *varsForm {
	ti := textinput.New()
	ti.Width = 50
	ti.Focus()
	return &varsForm{names: names, input: ti}
}

func (f *varsForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f *varsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			f.cancelled = true
			return f, tea.Quit
		case "enter":
			f.values = append(f.values, renderer.Substitution{
				Key:   f.names[f.current],
				Value: f.input.Value(),
			})
			f.current++
			if f.current >= len(f.names) {
				return f, tea.Quit
			}
			f.input.Reset()
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *varsForm) View() string {
	if f.current >= len(f.names) {
		return ""
	}

	var b strings.Builder
	b.WriteString(BoldStyle.Render(fmt.Sprintf("Variable %d of %d", f.current+1, len(f.names))))
	b.WriteString("\n\n")
	b.WriteString(VarStyle.Render("{{" + f.names[f.current] + "}}"))
	b.WriteString("\n")
	b.WriteString(f.input.View())
	b.WriteString("\n\n")
	b.WriteString(DimStyle.Render("enter: confirm • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// RunVariableForm asks for a value for each named variable, in order, and
// returns the collected substitutions. Cancelling is an invalid-input error.
func RunVariableForm(names []string) ([]renderer.Substitution, error) {
	if len(names) == 0 {
		return nil, nil
	}

	final, err := tea.NewProgram(newVarsForm(names)).Run()
	if err != nil {
		return nil, errors.InvalidInput(fmt.Sprintf("interactive input failed: %v", err))
	}

	result := final.(*varsForm)
	if result.cancelled {
		return nil, errors.InvalidInput("cancelled")
	}
	return result.values, nil
}
