// Package claude installs prompts into a Claude Code configuration
// directory, either as skills (skills/<name>/SKILL.md with YAML frontmatter)
// or as slash commands (commands/<name>.md).
package claude

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/models"
)

// allowedTools is the capability tag written into every installed skill.
const allowedTools = "Read, Write, Edit, Bash, Glob, Grep, Task"

// InstallMode selects the install target layout.
type InstallMode int

const (
	ModeSkill InstallMode = iota
	ModeCommand
)

// Integration operates on a Claude Code configuration directory.
type Integration struct {
	claudeDir string
}

// NewIntegration locates ~/.claude. The directory must already exist; its
// absence means Claude Code is not installed.
func NewIntegration() (*Integration, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.EnvironmentError("could not determine home directory")
	}
	return NewIntegrationAt(filepath.Join(homeDir, ".claude"))
}

// NewIntegrationAt operates on an explicit configuration directory.
func NewIntegrationAt(dir string) (*Integration, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.EnvironmentError(
			fmt.Sprintf("Claude directory %s not found. Is Claude Code installed?", dir))
	}
	return &Integration{claudeDir: dir}, nil
}

// Dir returns the configuration directory path.
func (c *Integration) Dir() string {
	return c.claudeDir
}

// Install writes the prompt into the configuration directory and returns the
// path of the written file.
func (c *Integration) Install(prompt *models.Prompt, mode InstallMode) (string, error) {
	switch mode {
	case ModeCommand:
		return c.installCommand(prompt)
	default:
		return c.installSkill(prompt)
	}
}

func (c *Integration) installSkill(prompt *models.Prompt) (string, error) {
	skillDir := filepath.Join(c.claudeDir, "skills", prompt.Name)
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		return "", errors.StorageError("create skill directory", err)
	}

	path := filepath.Join(skillDir, "SKILL.md")
	content, err := skillDocument(prompt)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", errors.StorageError("write skill file", err)
	}
	return path, nil
}

func (c *Integration) installCommand(prompt *models.Prompt) (string, error) {
	commandsDir := filepath.Join(c.claudeDir, "commands")
	if err := os.MkdirAll(commandsDir, 0755); err != nil {
		return "", errors.StorageError("create commands directory", err)
	}

	path := filepath.Join(commandsDir, prompt.Name+".md")
	if err := os.WriteFile(path, []byte(prompt.Content), 0644); err != nil {
		return "", errors.StorageError("write command file", err)
	}
	return path, nil
}

// skillFrontmatter is the SKILL.md manifest header.
type skillFrontmatter struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	ArgumentHint string `yaml:"argument-hint,omitempty"`
	AllowedTools string `yaml:"allowed-tools"`
}

// skillDocument renders the SKILL.md body: YAML frontmatter between ---
// fences, then the prompt content.
func skillDocument(prompt *models.Prompt) ([]byte, error) {
	fm := skillFrontmatter{
		Name:         prompt.Name,
		Description:  prompt.Description,
		ArgumentHint: ArgumentHint(prompt.Variables),
		AllowedTools: allowedTools,
	}

	header, err := yaml.Marshal(&fm)
	if err != nil {
		return nil, errors.StorageError("serialize skill frontmatter", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")
	buf.WriteString(prompt.Content)
	return buf.Bytes(), nil
}

// ArgumentHint formats a variable list as "<a> <b>", or empty when the
// prompt has no variables.
func ArgumentHint(variables []string) string {
	if len(variables) == 0 {
		return ""
	}
	return "<" + strings.Join(variables, "> <") + ">"
}

// ListInstalled returns the sorted names of installed skills and commands.
func (c *Integration) ListInstalled() (skills, commands []string, err error) {
	skillsDir := filepath.Join(c.claudeDir, "skills")
	if entries, err := os.ReadDir(skillsDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				skills = append(skills, entry.Name())
			}
		}
	}

	commandsDir := filepath.Join(c.claudeDir, "commands")
	if entries, err := os.ReadDir(commandsDir); err == nil {
		for _, entry := range entries {
			name := entry.Name()
			if !entry.IsDir() && strings.HasSuffix(name, ".md") {
				commands = append(commands, strings.TrimSuffix(name, ".md"))
			}
		}
	}

	sort.Strings(skills)
	sort.Strings(commands)
	return skills, commands, nil
}

// Remove deletes the installed skill directory and/or command file for the
// given name, reporting whether anything was removed.
func (c *Integration) Remove(name string) (bool, error) {
	removed := false

	skillDir := filepath.Join(c.claudeDir, "skills", name)
	if _, err := os.Stat(skillDir); err == nil {
		if err := os.RemoveAll(skillDir); err != nil {
			return removed, errors.StorageError("remove skill", err)
		}
		removed = true
	}

	commandFile := filepath.Join(c.claudeDir, "commands", name+".md")
	if _, err := os.Stat(commandFile); err == nil {
		if err := os.Remove(commandFile); err != nil {
			return removed, errors.StorageError("remove command", err)
		}
		removed = true
	}

	return removed, nil
}
