package errors

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
)

// CLIHandler formats errors for terminal display.
type CLIHandler struct {
	out io.Writer
}

// NewCLIHandler creates a handler writing to the given stream, normally
// stderr.
func NewCLIHandler(out io.Writer) *CLIHandler {
	return &CLIHandler{out: out}
}

// Handle prints the error once in its user-facing form and returns the
// process exit code.
func (h *CLIHandler) Handle(err error) int {
	if err == nil {
		return 0
	}
	appErr := GetAppError(err)
	fmt.Fprintf(h.out, "%s %s\n", errorStyle.Render("Error:"), appErr.Error())
	if appErr.Suggestion != "" {
		fmt.Fprintf(h.out, "%s\n", suggestionStyle.Render(appErr.Suggestion))
	}
	return 1
}
