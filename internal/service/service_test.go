package service

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/models"
	"github.com/ff-vivek/promptbank/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func addPrompt(t *testing.T, svc *Service, name string) *models.Prompt {
	t.Helper()
	p := models.NewPrompt(name, models.NewCategory(models.CategoryTask), "desc", "content", nil)
	if err := svc.CreatePrompt(p); err != nil {
		t.Fatalf("failed to create prompt: %v", err)
	}
	return p
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	p := addPrompt(t, svc, "my-prompt")

	byID, err := svc.GetPrompt(p.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	byName, err := svc.GetPrompt("my-prompt")
	if err != nil {
		t.Fatalf("get by name failed: %v", err)
	}
	if byID != byName {
		t.Error("id and name lookups should resolve the same prompt")
	}
}

func TestGetMissingSuggestsClosestName(t *testing.T) {
	svc := newTestService(t)
	addPrompt(t, svc, "code-reviewer")

	_, err := svc.GetPrompt("code-reviwer")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	appErr := errors.GetAppError(err)
	if appErr.Suggestion == "" {
		t.Error("expected a did-you-mean suggestion for a near-miss key")
	}
}

func TestCreatePersists(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(dir)
	if err != nil {
		t.Fatal(err)
	}
	p := addPrompt(t, svc, "persisted")

	// A fresh service over the same directory must see the prompt.
	reloaded, err := NewService(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := reloaded.GetPrompt(p.ID); err != nil {
		t.Errorf("prompt not visible after reload: %v", err)
	}
}

func TestUpdateContent(t *testing.T) {
	svc := newTestService(t)
	p := addPrompt(t, svc, "editable")

	updated, err := svc.UpdateContent(p.ID, "{{y}} {{z}}")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !reflect.DeepEqual(updated.Variables, []string{"y", "z"}) {
		t.Errorf("Variables = %v, want [y z]", updated.Variables)
	}
}

func TestDeletePrompt(t *testing.T) {
	svc := newTestService(t)
	p := addPrompt(t, svc, "doomed")

	if err := svc.DeletePrompt(p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetPrompt(p.ID); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Error("deleted prompt should not resolve")
	}
	if err := svc.DeletePrompt(p.ID); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("deleting an unknown key should be NOT_FOUND, got %v", err)
	}
}

func TestListByCategoryInvalidTag(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.ListByCategory("bogus"); !errors.HasCode(err, errors.ErrCodeInvalidCategory) {
		t.Errorf("expected INVALID_CATEGORY, got %v", err)
	}
}

func exportBank(t *testing.T, prompts ...*models.Prompt) string {
	t.Helper()
	bank := models.NewBank()
	for _, p := range prompts {
		bank.Add(p)
	}
	dir := t.TempDir()
	store, err := storage.NewStorage(dir)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "export.json")
	if err := store.Export(bank, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestImportReplace(t *testing.T) {
	svc := newTestService(t)
	addPrompt(t, svc, "original")

	incoming := models.NewPrompt("incoming", models.NewCategory(models.CategorySkill), "", "c", nil)
	path := exportBank(t, incoming)

	count, err := svc.Import(path, false)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if len(svc.ListPrompts()) != 1 {
		t.Error("replace import should drop existing prompts")
	}
	if _, err := svc.GetPrompt("original"); err == nil {
		t.Error("original prompt should be gone after replace import")
	}
}

func TestImportMergeSkipsExistingIDs(t *testing.T) {
	svc := newTestService(t)
	existing := addPrompt(t, svc, "existing")

	duplicate := models.NewPrompt("duplicate", models.NewCategory(models.CategoryTask), "", "new content", nil)
	duplicate.ID = existing.ID
	fresh := models.NewPrompt("fresh", models.NewCategory(models.CategoryTask), "", "c", nil)
	path := exportBank(t, duplicate, fresh)

	if _, err := svc.Import(path, true); err != nil {
		t.Fatalf("merge import failed: %v", err)
	}

	prompts := svc.ListPrompts()
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts after merge, got %d", len(prompts))
	}
	kept, err := svc.GetPrompt(existing.ID)
	if err != nil {
		t.Fatal(err)
	}
	if kept.Name != "existing" {
		t.Error("merge must keep the existing record for a colliding id")
	}
}

func TestStats(t *testing.T) {
	svc := newTestService(t)
	addPrompt(t, svc, "a")
	addPrompt(t, svc, "b")
	custom := models.NewPrompt("c", models.NewCustomCategory("ops"), "", "", nil)
	if err := svc.CreatePrompt(custom); err != nil {
		t.Fatal(err)
	}

	stats := svc.Stats()
	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if stats.ByCategory["task"] != 2 || stats.ByCategory["custom:ops"] != 1 {
		t.Errorf("ByCategory = %v", stats.ByCategory)
	}
	if stats.Version != models.BankVersion {
		t.Errorf("Version = %q", stats.Version)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"a,b,c", []string{"a", "b", "c"}},
		{" go , review ,", []string{"go", "review"}},
	}
	for _, tt := range tests {
		if got := ParseTags(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
