package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ff-vivek/promptbank/internal/clipboard"
	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/models"
	"github.com/ff-vivek/promptbank/internal/renderer"
	"github.com/ff-vivek/promptbank/internal/service"
	"github.com/ff-vivek/promptbank/internal/ui"
)

// CLI dispatches command-line verbs against the prompt service.
type CLI struct {
	service *service.Service
}

// NewCLI creates a CLI instance.
func NewCLI(svc *service.Service) *CLI {
	return &CLI{service: svc}
}

// ExecuteCommand processes one CLI command. Every mutating command persists
// the bank before returning.
func (c *CLI) ExecuteCommand(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "add", "new":
		return c.addPrompt(commandArgs)
	case "list", "ls":
		return c.listPrompts(commandArgs)
	case "get", "show":
		return c.getPrompt(commandArgs)
	case "apply", "render":
		return c.applyPrompt(commandArgs)
	case "edit":
		return c.editPrompt(commandArgs)
	case "delete", "rm":
		return c.deletePrompt(commandArgs)
	case "search":
		return c.searchPrompts(commandArgs)
	case "export":
		return c.exportPrompts(commandArgs)
	case "import":
		return c.importPrompts(commandArgs)
	case "info":
		return c.showInfo()
	case "claude":
		return c.handleClaude(commandArgs)
	case "community":
		return c.handleCommunity(commandArgs)
	case "help":
		printUsage()
		return nil
	default:
		return errors.InvalidInput(fmt.Sprintf("unknown command: %s. Use 'help' for usage information", command))
	}
}

// addPrompt creates a new prompt. Fields not supplied as flags fall back to
// the interactive form.
func (c *CLI) addPrompt(args []string) error {
	values := ui.AddValues{}
	var file string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--name", "-n":
			if i+1 < len(args) {
				values.Name = args[i+1]
				i++
			}
		case "--category", "-c":
			if i+1 < len(args) {
				values.Category = args[i+1]
				i++
			}
		case "--description", "-d":
			if i+1 < len(args) {
				values.Description = args[i+1]
				i++
			}
		case "--tags", "-t":
			if i+1 < len(args) {
				values.Tags = args[i+1]
				i++
			}
		case "--content":
			if i+1 < len(args) {
				values.Content = args[i+1]
				i++
			}
		case "--file", "-f":
			if i+1 < len(args) {
				file = args[i+1]
				i++
			}
		default:
			return errors.InvalidInput(fmt.Sprintf("unknown flag: %s", args[i]))
		}
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return errors.StorageError(fmt.Sprintf("read %s", file), err)
		}
		values.Content = string(data)
	}

	values, err := ui.RunAddForm(values)
	if err != nil {
		return err
	}
	if values.Name == "" {
		return errors.InvalidInput("prompt name is required")
	}
	if strings.TrimSpace(values.Content) == "" {
		return errors.InvalidInput("no content provided")
	}

	category, err := models.ParseCategory(values.Category)
	if err != nil {
		return errors.InvalidCategory(values.Category)
	}

	prompt := models.NewPrompt(values.Name, category, values.Description,
		values.Content, service.ParseTags(values.Tags))
	if err := c.service.CreatePrompt(prompt); err != nil {
		return err
	}

	fmt.Printf("%s Prompt '%s' added with ID: %s\n",
		ui.SuccessStyle.Render("✓"), values.Name, ui.IDStyle.Render(prompt.ID))
	return nil
}

// listPrompts enumerates prompts, optionally filtered by category.
func (c *CLI) listPrompts(args []string) error {
	var category string
	var full bool

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--category", "-c":
			if i+1 < len(args) {
				category = args[i+1]
				i++
			}
		case "--full":
			full = true
		}
	}

	var prompts []*models.Prompt
	if category != "" {
		var err error
		prompts, err = c.service.ListByCategory(category)
		if err != nil {
			return err
		}
	} else {
		prompts = c.service.ListPrompts()
	}

	if len(prompts) == 0 {
		fmt.Println(ui.WarningStyle.Render("No prompts found."))
		return nil
	}

	fmt.Printf("\n%s %s prompt(s) found:\n\n",
		ui.DimStyle.Render("→"), ui.IDStyle.Render(fmt.Sprintf("%d", len(prompts))))
	for _, prompt := range prompts {
		c.printSummary(prompt, full)
	}
	return nil
}

// getPrompt prints a single prompt.
func (c *CLI) getPrompt(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("get requires a prompt id or name")
	}

	key := args[0]
	var copyToClipboard, raw bool
	for _, arg := range args[1:] {
		switch arg {
		case "--copy":
			copyToClipboard = true
		case "--raw", "-r":
			raw = true
		}
	}

	prompt, err := c.service.GetPrompt(key)
	if err != nil {
		return err
	}

	if raw {
		fmt.Println(prompt.Content)
	} else {
		c.printFull(prompt)
	}

	if copyToClipboard {
		if err := clipboard.Copy(prompt.Content); err != nil {
			return errors.ClipboardError(err)
		}
		if !raw {
			fmt.Printf("\n%s Copied to clipboard!\n", ui.SuccessStyle.Render("✓"))
		}
	}
	return nil
}

// applyPrompt renders a prompt with variable substitutions.
func (c *CLI) applyPrompt(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("apply requires a prompt id or name")
	}

	key := args[0]
	var varArgs []string
	var copyToClipboard, interactive bool

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--var", "-v":
			if i+1 < len(args) {
				varArgs = append(varArgs, args[i+1])
				i++
			}
		case "--copy":
			copyToClipboard = true
		case "--interactive", "-i":
			interactive = true
		}
	}

	prompt, err := c.service.GetPrompt(key)
	if err != nil {
		return err
	}

	subs, err := renderer.ParseSubstitutions(varArgs)
	if err != nil {
		return errors.InvalidInput(err.Error())
	}

	if interactive {
		supplied := make(map[string]bool, len(subs))
		for _, sub := range subs {
			supplied[sub.Key] = true
		}
		var missing []string
		for _, name := range prompt.Variables {
			if !supplied[name] {
				missing = append(missing, name)
			}
		}
		extra, err := ui.RunVariableForm(missing)
		if err != nil {
			return err
		}
		subs = append(subs, extra...)
	}

	rendered := prompt.Render(subs)

	rule := ui.DimStyle.Render(strings.Repeat("═", 60))
	fmt.Printf("\n%s\n%s\n%s\n", rule, rendered, rule)

	if copyToClipboard {
		if err := clipboard.Copy(rendered); err != nil {
			return errors.ClipboardError(err)
		}
		fmt.Printf("\n%s Copied to clipboard!\n", ui.SuccessStyle.Render("✓"))
	}
	return nil
}

// editPrompt round-trips the content through the user's editor.
func (c *CLI) editPrompt(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("edit requires a prompt id or name")
	}
	key := args[0]

	prompt, err := c.service.GetPrompt(key)
	if err != nil {
		return err
	}

	newContent, err := openEditor(prompt.Content)
	if err != nil {
		return err
	}

	if newContent == prompt.Content {
		fmt.Println(ui.WarningStyle.Render("No changes made."))
		return nil
	}

	if _, err := c.service.UpdateContent(key, newContent); err != nil {
		return err
	}
	fmt.Printf("%s Prompt '%s' updated.\n", ui.SuccessStyle.Render("✓"), key)
	return nil
}

// deletePrompt removes a prompt, confirming first unless forced.
func (c *CLI) deletePrompt(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("delete requires a prompt id or name")
	}

	key := args[0]
	var force bool
	for _, arg := range args[1:] {
		if arg == "--force" || arg == "-f" {
			force = true
		}
	}

	prompt, err := c.service.GetPrompt(key)
	if err != nil {
		return err
	}

	if !force && !confirm(fmt.Sprintf("Delete prompt '%s'?", prompt.Name)) {
		fmt.Println(ui.WarningStyle.Render("Cancelled."))
		return nil
	}

	if err := c.service.DeletePrompt(key); err != nil {
		return err
	}
	fmt.Printf("%s Prompt '%s' deleted.\n", ui.SuccessStyle.Render("✓"), prompt.Name)
	return nil
}

// searchPrompts runs a substring query over the bank.
func (c *CLI) searchPrompts(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("search requires a query")
	}
	query := strings.Join(args, " ")

	prompts := c.service.SearchPrompts(query)
	if len(prompts) == 0 {
		fmt.Printf("%s No prompts matching '%s'\n", ui.WarningStyle.Render("→"), query)
		return nil
	}

	fmt.Printf("\n%s %s result(s) for '%s':\n\n",
		ui.DimStyle.Render("→"), ui.IDStyle.Render(fmt.Sprintf("%d", len(prompts))), query)
	for _, prompt := range prompts {
		c.printSummary(prompt, false)
	}
	return nil
}

// exportPrompts dumps the bank to a path.
func (c *CLI) exportPrompts(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("export requires an output path")
	}

	count, err := c.service.Export(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s Exported %d prompts to %s\n", ui.SuccessStyle.Render("✓"), count, args[0])
	return nil
}

// importPrompts loads a bank from a path, replacing or merging.
func (c *CLI) importPrompts(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("import requires an input path")
	}

	path := args[0]
	var merge bool
	for _, arg := range args[1:] {
		if arg == "--merge" || arg == "-m" {
			merge = true
		}
	}

	count, err := c.service.Import(path, merge)
	if err != nil {
		return err
	}
	fmt.Printf("%s Imported %d prompts from %s\n", ui.SuccessStyle.Render("✓"), count, path)
	return nil
}

// showInfo prints summary statistics.
func (c *CLI) showInfo() error {
	stats := c.service.Stats()

	fmt.Printf("\n%s\n", ui.LabelStyle.Render("Promptbank Info"))
	fmt.Printf("  Data file: %s\n", stats.DataPath)
	fmt.Printf("  Format version: %s\n", stats.Version)
	fmt.Printf("  Total prompts: %d\n", stats.Total)

	if len(stats.ByCategory) > 0 {
		fmt.Printf("\n  %s\n", ui.DimStyle.Render("By category:"))
		for _, tag := range sortedKeys(stats.ByCategory) {
			fmt.Printf("    %s: %d\n", tag, stats.ByCategory[tag])
		}
	}
	fmt.Println()
	return nil
}

// confirm asks a yes/no question on stdin, defaulting to no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func printUsage() {
	fmt.Print(`promptbank - Manage and apply prompts for Claude AI

USAGE:
    promptbank <COMMAND> [OPTIONS]

COMMANDS:
    add                Add a new prompt (interactive for omitted fields)
                         --name --category --description --tags --content --file
    list, ls           List prompts [--category <tag>] [--full]
    get, show <id>     Show a prompt by id or name [--copy] [--raw]
    apply <id>         Render a prompt with variables
                         [--var key=value]... [--interactive] [--copy]
    edit <id>          Edit prompt content in $EDITOR
    delete, rm <id>    Delete a prompt [--force]
    search <query>     Search prompts by substring
    export <path>      Export the collection to a file
    import <path>      Import a collection [--merge]
    info               Show storage info and statistics
    claude             Install prompts into Claude Code
                         install <id> [--command] | list | remove <name>
    community          Browse shared prompts
                         list | search <query> | get <path>
    help               Show this help

CATEGORIES:
    system, skill, agent, role, task, template, custom:<name>

STORAGE:
    Default directory: ~/.promptbank
    Override with: PROMPTBANK_DIR=<path>
`)
}
