package service

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/models"
	"github.com/ff-vivek/promptbank/internal/storage"
)

// Service provides the business logic for prompt management. The whole bank
// is loaded at construction and persisted wholesale after every mutating
// operation.
type Service struct {
	storage *storage.Storage
	bank    *models.Bank
}

// NewService creates a service backed by storage rooted at rootPath. An
// empty rootPath resolves the default root (PROMPTBANK_DIR or ~/.promptbank).
func NewService(rootPath string) (*Service, error) {
	if rootPath == "" {
		var err error
		rootPath, err = storage.DefaultRoot()
		if err != nil {
			return nil, err
		}
	}

	store, err := storage.NewStorage(rootPath)
	if err != nil {
		return nil, err
	}

	bank, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &Service{storage: store, bank: bank}, nil
}

// DataPath returns the backing file path for display.
func (s *Service) DataPath() string {
	return s.storage.DataPath()
}

// CreatePrompt adds a prompt to the bank and persists it.
func (s *Service) CreatePrompt(prompt *models.Prompt) error {
	s.bank.Add(prompt)
	return s.storage.Save(s.bank)
}

// GetPrompt resolves a prompt by id or name. A miss returns a not-found
// error carrying a fuzzy "did you mean" suggestion when a close name exists.
func (s *Service) GetPrompt(key string) (*models.Prompt, error) {
	if p := s.bank.Get(key); p != nil {
		return p, nil
	}

	err := errors.NotFound(key)
	if suggestion := s.closestName(key); suggestion != "" {
		err = err.WithSuggestion(fmt.Sprintf("did you mean %q?", suggestion))
	}
	return nil, err
}

// closestName fuzzy-matches key against prompt names and ids and returns the
// best candidate, if any.
func (s *Service) closestName(key string) string {
	var candidates []string
	for _, p := range s.bank.Prompts {
		candidates = append(candidates, p.Name, p.ID)
	}
	matches := fuzzy.Find(key, candidates)
	if len(matches) == 0 {
		return ""
	}
	return candidates[matches[0].Index]
}

// ListPrompts returns every prompt in collection order.
func (s *Service) ListPrompts() []*models.Prompt {
	return s.bank.Prompts
}

// ListByCategory parses the category tag and returns exact matches.
func (s *Service) ListByCategory(tag string) ([]*models.Prompt, error) {
	category, err := models.ParseCategory(tag)
	if err != nil {
		return nil, errors.InvalidCategory(tag)
	}
	return s.bank.ListByCategory(category), nil
}

// SearchPrompts returns case-insensitive substring matches in collection
// order.
func (s *Service) SearchPrompts(query string) []*models.Prompt {
	return s.bank.Search(query)
}

// UpdateContent replaces a prompt's content, recomputing its variables, and
// persists the bank.
func (s *Service) UpdateContent(key, content string) (*models.Prompt, error) {
	prompt, err := s.GetPrompt(key)
	if err != nil {
		return nil, err
	}
	prompt.UpdateContent(content)
	if err := s.storage.Save(s.bank); err != nil {
		return nil, err
	}
	return prompt, nil
}

// DeletePrompt removes the first prompt matching key by id or name and
// persists the bank. Deleting an unknown key is a not-found error.
func (s *Service) DeletePrompt(key string) error {
	if !s.bank.Delete(key) {
		return errors.NotFound(key)
	}
	return s.storage.Save(s.bank)
}

// Export writes the current bank to the given path.
func (s *Service) Export(path string) (int, error) {
	if err := s.storage.Export(s.bank, path); err != nil {
		return 0, err
	}
	return len(s.bank.Prompts), nil
}

// Import loads a bank from path. With merge set, records whose id already
// exists are skipped and the rest appended; otherwise the imported bank
// replaces the current one entirely.
func (s *Service) Import(path string, merge bool) (int, error) {
	imported, err := s.storage.Import(path)
	if err != nil {
		return 0, err
	}
	count := len(imported.Prompts)

	if merge {
		for _, p := range imported.Prompts {
			if s.bank.Get(p.ID) == nil {
				s.bank.Add(p)
			}
		}
	} else {
		s.bank = imported
	}

	if err := s.storage.Save(s.bank); err != nil {
		return 0, err
	}
	return count, nil
}

// Stats summarizes the bank for the info command.
type Stats struct {
	DataPath   string
	Version    string
	Total      int
	ByCategory map[string]int
}

// Stats returns summary statistics over the bank.
func (s *Service) Stats() Stats {
	byCategory := make(map[string]int)
	for _, p := range s.bank.Prompts {
		byCategory[p.Category.String()]++
	}
	return Stats{
		DataPath:   s.storage.DataPath(),
		Version:    s.bank.Version,
		Total:      len(s.bank.Prompts),
		ByCategory: byCategory,
	}
}

// ParseTags splits a comma-separated tag list, trimming whitespace and
// dropping empty entries.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
