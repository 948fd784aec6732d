package cli

import (
	"fmt"
	"strings"

	"github.com/ff-vivek/promptbank/internal/claude"
	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/ui"
)

// handleClaude dispatches the claude subcommands: install, list, remove.
func (c *CLI) handleClaude(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("claude requires a subcommand: install, list, remove")
	}

	integration, err := claude.NewIntegration()
	if err != nil {
		return err
	}

	switch args[0] {
	case "install":
		return c.claudeInstall(integration, args[1:])
	case "list", "ls":
		return c.claudeList(integration)
	case "remove", "rm":
		return c.claudeRemove(integration, args[1:])
	default:
		return errors.InvalidInput(fmt.Sprintf("unknown claude subcommand: %s", args[0]))
	}
}

// claudeInstall writes a prompt into ~/.claude as a skill, or as a slash
// command with --command.
func (c *CLI) claudeInstall(integration *claude.Integration, args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("claude install requires a prompt id or name")
	}

	key := args[0]
	mode := claude.ModeSkill
	for _, arg := range args[1:] {
		if arg == "--command" {
			mode = claude.ModeCommand
		}
	}

	prompt, err := c.service.GetPrompt(key)
	if err != nil {
		return err
	}

	path, err := integration.Install(prompt, mode)
	if err != nil {
		return err
	}

	kind := "skill"
	if mode == claude.ModeCommand {
		kind = "command"
	}
	fmt.Printf("%s Installed '%s' as a %s: %s\n",
		ui.SuccessStyle.Render("✓"), prompt.Name, kind, path)
	return nil
}

// claudeList shows installed skills and commands.
func (c *CLI) claudeList(integration *claude.Integration) error {
	skills, commands, err := integration.ListInstalled()
	if err != nil {
		return err
	}

	if len(skills) == 0 && len(commands) == 0 {
		fmt.Println(ui.WarningStyle.Render("Nothing installed."))
		return nil
	}

	if len(skills) > 0 {
		fmt.Printf("\n%s\n", ui.LabelStyle.Render("Skills"))
		for _, name := range skills {
			fmt.Printf("  %s\n", name)
		}
	}
	if len(commands) > 0 {
		fmt.Printf("\n%s\n", ui.LabelStyle.Render("Commands"))
		for _, name := range commands {
			fmt.Printf("  /%s\n", name)
		}
	}
	fmt.Println()
	return nil
}

// claudeRemove deletes an installed skill or command by name.
func (c *CLI) claudeRemove(integration *claude.Integration, args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("claude remove requires a name")
	}
	name := args[0]

	removed, err := integration.Remove(name)
	if err != nil {
		return err
	}
	if !removed {
		return errors.NotFound(name).WithSuggestion(
			"use 'promptbank claude list' to see what is installed")
	}

	fmt.Printf("%s Removed '%s' from %s\n",
		ui.SuccessStyle.Render("✓"), name, strings.TrimSuffix(integration.Dir(), "/"))
	return nil
}
