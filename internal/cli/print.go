package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/ff-vivek/promptbank/internal/models"
	"github.com/ff-vivek/promptbank/internal/ui"
)

// printSummary prints the one-entry listing form used by list and search.
func (c *CLI) printSummary(prompt *models.Prompt, full bool) {
	fmt.Printf("  %s %s [%s]\n",
		ui.IDStyle.Render(prompt.ID),
		ui.BoldStyle.Render(prompt.Name),
		ui.CategoryStyle.Render(prompt.Category.String()))
	if prompt.Description != "" {
		fmt.Printf("    %s\n", ui.DimStyle.Render(prompt.Description))
	}
	if len(prompt.Tags) > 0 {
		fmt.Printf("    Tags: %s\n", ui.TagStyle.Render(strings.Join(prompt.Tags, ", ")))
	}
	if len(prompt.Variables) > 0 {
		fmt.Printf("    Variables: %s\n", ui.VarStyle.Render(strings.Join(prompt.Variables, ", ")))
	}

	if full {
		rule := ui.DimStyle.Render(strings.Repeat("─", 50))
		fmt.Printf("\n%s\n%s\n%s\n\n", rule, prompt.Content, rule)
	} else {
		fmt.Println()
	}
}

// printFull prints the detail view used by get, rendering the content as
// markdown when the terminal supports it.
func (c *CLI) printFull(prompt *models.Prompt) {
	rule := ui.DimStyle.Render(strings.Repeat("═", 60))

	fmt.Printf("\n%s\n", rule)
	fmt.Printf("%s: %s (%s)\n", ui.BoldStyle.Render("ID"),
		ui.IDStyle.Render(prompt.ID), ui.CategoryStyle.Render(prompt.Category.String()))
	fmt.Printf("%s: %s\n", ui.BoldStyle.Render("Name"), prompt.Name)
	fmt.Printf("%s: %s\n", ui.BoldStyle.Render("Description"), prompt.Description)
	if len(prompt.Tags) > 0 {
		fmt.Printf("%s: %s\n", ui.BoldStyle.Render("Tags"), ui.TagStyle.Render(strings.Join(prompt.Tags, ", ")))
	}
	if len(prompt.Variables) > 0 {
		fmt.Printf("%s: %s\n", ui.BoldStyle.Render("Variables"), ui.VarStyle.Render(strings.Join(prompt.Variables, ", ")))
	}
	fmt.Printf("%s: %s\n", ui.BoldStyle.Render("Created"), prompt.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("%s: %s\n", ui.BoldStyle.Render("Updated"), prompt.UpdatedAt.Format("2006-01-02 15:04"))

	fmt.Printf("\n%s\n", ui.LabelStyle.Render("Content:"))
	fmt.Println(ui.DimStyle.Render(strings.Repeat("─", 60)))
	fmt.Println(renderMarkdown(prompt.Content))
	fmt.Println(rule)
}

// renderMarkdown renders content for terminal display, falling back to the
// raw text when glamour cannot initialize (e.g. no usable terminal).
func renderMarkdown(content string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
