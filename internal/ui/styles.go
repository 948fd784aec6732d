package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Semantic colors, adaptive to the terminal background.
var (
	ColorSuccess lipgloss.Color
	ColorWarning lipgloss.Color
	ColorAccent  lipgloss.Color
	ColorInfo    lipgloss.Color
	ColorMuted   lipgloss.Color
	ColorVar     lipgloss.Color
)

// Shared styles used by the CLI output and the interactive forms.
var (
	SuccessStyle  lipgloss.Style
	WarningStyle  lipgloss.Style
	BoldStyle     lipgloss.Style
	IDStyle       lipgloss.Style
	CategoryStyle lipgloss.Style
	TagStyle      lipgloss.Style
	VarStyle      lipgloss.Style
	DimStyle      lipgloss.Style
	LabelStyle    lipgloss.Style
)

func init() {
	if lipgloss.HasDarkBackground() {
		ColorSuccess = lipgloss.Color("42")
		ColorWarning = lipgloss.Color("214")
		ColorAccent = lipgloss.Color("51")
		ColorInfo = lipgloss.Color("33")
		ColorMuted = lipgloss.Color("245")
		ColorVar = lipgloss.Color("213")
	} else {
		ColorSuccess = lipgloss.Color("28")
		ColorWarning = lipgloss.Color("130")
		ColorAccent = lipgloss.Color("25")
		ColorInfo = lipgloss.Color("19")
		ColorMuted = lipgloss.Color("243")
		ColorVar = lipgloss.Color("90")
	}

	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	BoldStyle = lipgloss.NewStyle().Bold(true)
	IDStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	CategoryStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TagStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	VarStyle = lipgloss.NewStyle().Foreground(ColorVar)
	DimStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	LabelStyle = lipgloss.NewStyle().Bold(true).Underline(true)
}
