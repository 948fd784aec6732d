package claude

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ff-vivek/promptbank/internal/models"
)

func newTestIntegration(t *testing.T) *Integration {
	t.Helper()
	dir := t.TempDir()
	integration, err := NewIntegrationAt(dir)
	if err != nil {
		t.Fatalf("failed to create integration: %v", err)
	}
	return integration
}

func TestNewIntegrationAtMissingDir(t *testing.T) {
	if _, err := NewIntegrationAt(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for a missing configuration directory")
	}
}

func TestInstallSkill(t *testing.T) {
	integration := newTestIntegration(t)
	prompt := models.NewPrompt("code-review", models.NewCategory(models.CategorySkill),
		"Reviews code", "Review {{file}} focusing on {{aspect}}.", nil)

	path, err := integration.Install(prompt, ModeSkill)
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if filepath.Base(path) != "SKILL.md" {
		t.Errorf("unexpected install path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "---\n") {
		t.Error("skill file should start with a frontmatter fence")
	}
	for _, want := range []string{
		"name: code-review",
		"description: Reviews code",
		`argument-hint: <file> <aspect>`,
		"allowed-tools: Read, Write, Edit, Bash, Glob, Grep, Task",
		"Review {{file}} focusing on {{aspect}}.",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("skill file missing %q:\n%s", want, content)
		}
	}
}

func TestInstallSkillWithoutVariablesOmitsHint(t *testing.T) {
	integration := newTestIntegration(t)
	prompt := models.NewPrompt("plain", models.NewCategory(models.CategorySkill), "d", "no vars", nil)

	path, err := integration.Install(prompt, ModeSkill)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "argument-hint") {
		t.Error("argument-hint should be omitted when the prompt has no variables")
	}
}

func TestInstallCommand(t *testing.T) {
	integration := newTestIntegration(t)
	prompt := models.NewPrompt("deploy", models.NewCategory(models.CategoryTask),
		"d", "Deploy {{env}} now.", nil)

	path, err := integration.Install(prompt, ModeCommand)
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if filepath.Base(path) != "deploy.md" {
		t.Errorf("unexpected install path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// Command files carry the raw content, no frontmatter.
	if string(data) != "Deploy {{env}} now." {
		t.Errorf("unexpected command content: %q", data)
	}
}

func TestListInstalled(t *testing.T) {
	integration := newTestIntegration(t)

	for _, name := range []string{"zeta", "alpha"} {
		p := models.NewPrompt(name, models.NewCategory(models.CategorySkill), "", "c", nil)
		if _, err := integration.Install(p, ModeSkill); err != nil {
			t.Fatal(err)
		}
	}
	cmd := models.NewPrompt("runner", models.NewCategory(models.CategoryTask), "", "c", nil)
	if _, err := integration.Install(cmd, ModeCommand); err != nil {
		t.Fatal(err)
	}

	skills, commands, err := integration.ListInstalled()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(skills, []string{"alpha", "zeta"}) {
		t.Errorf("skills = %v, want sorted [alpha zeta]", skills)
	}
	if !reflect.DeepEqual(commands, []string{"runner"}) {
		t.Errorf("commands = %v", commands)
	}
}

func TestRemove(t *testing.T) {
	integration := newTestIntegration(t)

	p := models.NewPrompt("both", models.NewCategory(models.CategorySkill), "", "c", nil)
	if _, err := integration.Install(p, ModeSkill); err != nil {
		t.Fatal(err)
	}
	if _, err := integration.Install(p, ModeCommand); err != nil {
		t.Fatal(err)
	}

	removed, err := integration.Remove("both")
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Error("expected removal to report true")
	}

	skills, commands, _ := integration.ListInstalled()
	if len(skills) != 0 || len(commands) != 0 {
		t.Errorf("expected nothing left, got skills=%v commands=%v", skills, commands)
	}

	removed, err = integration.Remove("both")
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Error("removing an unknown name should report false")
	}
}

func TestArgumentHint(t *testing.T) {
	if got := ArgumentHint(nil); got != "" {
		t.Errorf("ArgumentHint(nil) = %q", got)
	}
	if got := ArgumentHint([]string{"a", "b"}); got != "<a> <b>" {
		t.Errorf("ArgumentHint = %q, want <a> <b>", got)
	}
}
