package cli

import (
	"fmt"
	"strings"

	"github.com/ff-vivek/promptbank/internal/community"
	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/ui"
)

// handleCommunity dispatches the community subcommands: list, search, get.
func (c *CLI) handleCommunity(args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("community requires a subcommand: list, search, get")
	}

	client := community.NewClient()

	switch args[0] {
	case "list", "ls":
		return c.communityList(client)
	case "search":
		return c.communitySearch(client, args[1:])
	case "get":
		return c.communityGet(client, args[1:])
	default:
		return errors.InvalidInput(fmt.Sprintf("unknown community subcommand: %s", args[0]))
	}
}

// communityList shows every entry in the shared index.
func (c *CLI) communityList(client *community.Client) error {
	index, err := client.FetchIndex()
	if err != nil {
		return err
	}
	if len(index.Prompts) == 0 {
		fmt.Println(ui.WarningStyle.Render("No community prompts available."))
		return nil
	}

	fmt.Printf("\n%s %s shared prompt(s):\n\n",
		ui.DimStyle.Render("→"), ui.IDStyle.Render(fmt.Sprintf("%d", len(index.Prompts))))
	for _, entry := range index.Prompts {
		printCommunityEntry(entry)
	}
	fmt.Printf("Contribute at %s\n", ui.TagStyle.Render(community.RepoURL()))
	return nil
}

// communitySearch filters the shared index by substring.
func (c *CLI) communitySearch(client *community.Client, args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("community search requires a query")
	}
	query := strings.Join(args, " ")

	index, err := client.FetchIndex()
	if err != nil {
		return err
	}

	matches := community.Search(index, query)
	if len(matches) == 0 {
		fmt.Printf("%s No community prompts matching '%s'\n", ui.WarningStyle.Render("→"), query)
		return nil
	}

	fmt.Printf("\n%s %s result(s) for '%s':\n\n",
		ui.DimStyle.Render("→"), ui.IDStyle.Render(fmt.Sprintf("%d", len(matches))), query)
	for _, entry := range matches {
		printCommunityEntry(entry)
	}
	return nil
}

// communityGet downloads a shared prompt by its index path and adds it to
// the local bank.
func (c *CLI) communityGet(client *community.Client, args []string) error {
	if len(args) == 0 {
		return errors.InvalidInput("community get requires a prompt path from the index")
	}

	doc, err := client.FetchPrompt(args[0])
	if err != nil {
		return err
	}

	prompt, err := community.ToLocalPrompt(doc)
	if err != nil {
		return err
	}

	if err := c.service.CreatePrompt(prompt); err != nil {
		return err
	}
	fmt.Printf("%s Added '%s' by %s with ID: %s\n",
		ui.SuccessStyle.Render("✓"), prompt.Name, doc.Author, ui.IDStyle.Render(prompt.ID))
	return nil
}

func printCommunityEntry(entry community.Entry) {
	fmt.Printf("  %s [%s] %s\n",
		ui.BoldStyle.Render(entry.Name),
		ui.CategoryStyle.Render(entry.Category),
		ui.DimStyle.Render(fmt.Sprintf("by %s, %d downloads", entry.Author, entry.Downloads)))
	if entry.Description != "" {
		fmt.Printf("    %s\n", ui.DimStyle.Render(entry.Description))
	}
	if len(entry.Tags) > 0 {
		fmt.Printf("    Tags: %s\n", ui.TagStyle.Render(strings.Join(entry.Tags, ", ")))
	}
	fmt.Printf("    Path: %s\n\n", entry.Path)
}
