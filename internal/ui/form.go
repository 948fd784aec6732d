package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/models"
)

// AddValues holds the raw field values for prompt creation. Tags stays
// comma-separated; parsing happens in the CLI.
type AddValues struct {
	Name        string
	Category    string
	Description string
	Tags        string
	Content     string
}

// addField is one text input line in the add form.
type addField struct {
	label string
	input textinput.Model
	set   func(*AddValues, string)
}

// addForm collects whichever creation fields were not supplied as flags.
type addForm struct {
	fields    []addField
	content   textarea.Model
	wantsBody bool
	focused   int
	submitted bool
	cancelled bool
	values    AddValues
}

func newAddForm(values AddValues) *addForm {
	form := &addForm{values: values, wantsBody: values.Content == ""}

	add := func(label, placeholder string, suggestions []string, set func(*AddValues, string)) {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 200
		ti.Width = 50
		if len(suggestions) > 0 {
			ti.ShowSuggestions = true
			ti.SetSuggestions(suggestions)
		}
		form.fields = append(form.fields, addField{label: label, input: ti, set: set})
	}

	if values.Name == "" {
		add("Prompt name", "code-reviewer", nil,
			func(v *AddValues, s string) { v.Name = s })
	}
	if values.Category == "" {
		add("Category", strings.Join(models.KnownCategories, ", "), models.KnownCategories,
			func(v *AddValues, s string) { v.Category = s })
	}
	if values.Description == "" {
		add("Description", "what this prompt is for", nil,
			func(v *AddValues, s string) { v.Description = s })
	}
	if values.Tags == "" {
		add("Tags (comma-separated, optional)", "review, go", nil,
			func(v *AddValues, s string) { v.Tags = s })
	}

	if form.wantsBody {
		ta := textarea.New()
		ta.Placeholder = "Enter your prompt content here. Use {{name}} for variables."
		ta.SetWidth(70)
		ta.SetHeight(10)
		form.content = ta
	}

	if len(form.fields) > 0 {
		form.fields[0].input.Focus()
	} else if form.wantsBody {
		form.content.Focus()
	}

	return form
}

// fieldCount returns the number of focusable elements, textarea included.
func (f *addForm) fieldCount() int {
	n := len(f.fields)
	if f.wantsBody {
		n++
	}
	return n
}

func (f *addForm) onTextarea() bool {
	return f.wantsBody && f.focused == len(f.fields)
}

func (f *addForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f *addForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			f.cancelled = true
			return f, tea.Quit
		case "ctrl+d":
			if f.onTextarea() {
				f.submit()
				return f, tea.Quit
			}
		case "enter":
			// Enter inserts a newline inside the textarea; everywhere else
			// it advances to the next field.
			if !f.onTextarea() {
				if f.focused == f.fieldCount()-1 {
					f.submit()
					return f, tea.Quit
				}
				return f, f.focusIndex(f.focused + 1)
			}
		case "tab":
			return f, f.focusIndex((f.focused + 1) % f.fieldCount())
		case "shift+tab":
			return f, f.focusIndex((f.focused - 1 + f.fieldCount()) % f.fieldCount())
		}
	}

	var cmd tea.Cmd
	if f.onTextarea() {
		f.content, cmd = f.content.Update(msg)
	} else if f.focused < len(f.fields) {
		f.fields[f.focused].input, cmd = f.fields[f.focused].input.Update(msg)
	}
	return f, cmd
}

func (f *addForm) focusIndex(i int) tea.Cmd {
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	if f.wantsBody {
		f.content.Blur()
	}

	f.focused = i
	if f.onTextarea() {
		return f.content.Focus()
	}
	return f.fields[i].input.Focus()
}

func (f *addForm) submit() {
	f.submitted = true
	for i := range f.fields {
		f.fields[i].set(&f.values, strings.TrimSpace(f.fields[i].input.Value()))
	}
	if f.wantsBody {
		f.values.Content = f.content.Value()
	}
}

func (f *addForm) View() string {
	var b strings.Builder
	b.WriteString(BoldStyle.Render("New prompt"))
	b.WriteString("\n\n")

	for i := range f.fields {
		b.WriteString(LabelStyle.Render(f.fields[i].label))
		b.WriteString("\n")
		b.WriteString(f.fields[i].input.View())
		b.WriteString("\n\n")
	}

	if f.wantsBody {
		b.WriteString(LabelStyle.Render("Content"))
		b.WriteString("\n")
		b.WriteString(f.content.View())
		b.WriteString("\n\n")
		b.WriteString(DimStyle.Render("enter: next field • ctrl+d: save • esc: cancel"))
	} else {
		b.WriteString(DimStyle.Render("enter: next field • esc: cancel"))
	}
	b.WriteString("\n")

	return b.String()
}

// RunAddForm interactively completes whichever AddValues fields are empty
// and returns the full set. Fields already filled in are kept untouched and
// not shown. Cancelling the form is an invalid-input error.
func RunAddForm(values AddValues) (AddValues, error) {
	form := newAddForm(values)
	if form.fieldCount() == 0 {
		return values, nil
	}

	final, err := tea.NewProgram(form).Run()
	if err != nil {
		return AddValues{}, errors.InvalidInput(fmt.Sprintf("interactive input failed: %v", err))
	}

	result := final.(*addForm)
	if result.cancelled || !result.submitted {
		return AddValues{}, errors.InvalidInput("cancelled")
	}
	return result.values, nil
}
