package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ff-vivek/promptbank/internal/renderer"
)

// BankVersion is the backing-file format version tag.
const BankVersion = "1.0"

// Prompt is a single reusable prompt entry. Variables is derived from
// Content and is recomputed whenever the content changes; it always holds
// the deduplicated, first-occurrence-ordered placeholder names present in
// the content.
type Prompt struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	Variables   []string  `json:"variables"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPrompt constructs a prompt with a fresh short id, derived variables,
// and both timestamps set to now.
func NewPrompt(name string, category Category, description, content string, tags []string) *Prompt {
	now := time.Now().UTC()
	return &Prompt{
		ID:          uuid.NewString()[:8],
		Name:        name,
		Category:    category,
		Description: description,
		Content:     content,
		Tags:        tags,
		Variables:   renderer.ExtractVariables(content),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateContent replaces the prompt content, recomputes the derived variable
// list, and refreshes the updated timestamp. CreatedAt is never touched.
func (p *Prompt) UpdateContent(content string) {
	p.Content = content
	p.Variables = renderer.ExtractVariables(content)
	p.UpdatedAt = time.Now().UTC()
}

// Render applies variable substitutions to the prompt content.
func (p *Prompt) Render(subs []renderer.Substitution) string {
	return renderer.Render(p.Content, subs)
}

// Bank is the full collection of prompts plus a format version tag. Order is
// insertion order; name uniqueness is not enforced.
type Bank struct {
	Prompts []*Prompt `json:"prompts"`
	Version string    `json:"version"`
}

// NewBank returns an empty bank at the current format version.
func NewBank() *Bank {
	return &Bank{Prompts: []*Prompt{}, Version: BankVersion}
}

// Add appends a prompt to the end of the collection.
func (b *Bank) Add(prompt *Prompt) {
	b.Prompts = append(b.Prompts, prompt)
}

// Get looks a prompt up by id or name. An exact id match takes priority;
// only when no id matches is the key tried as a name. The first match in
// collection order wins.
func (b *Bank) Get(key string) *Prompt {
	for _, p := range b.Prompts {
		if p.ID == key {
			return p
		}
	}
	for _, p := range b.Prompts {
		if p.Name == key {
			return p
		}
	}
	return nil
}

// Delete removes the first prompt whose id or name equals key, using the
// same resolution as Get. It reports whether a prompt was removed.
func (b *Bank) Delete(key string) bool {
	target := b.Get(key)
	if target == nil {
		return false
	}
	for i, p := range b.Prompts {
		if p == target {
			b.Prompts = append(b.Prompts[:i], b.Prompts[i+1:]...)
			return true
		}
	}
	return false
}

// ListByCategory returns the prompts whose category exactly equals the given
// one, in collection order. Custom categories match only identical names.
func (b *Bank) ListByCategory(category Category) []*Prompt {
	var matches []*Prompt
	for _, p := range b.Prompts {
		if p.Category.Equal(category) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Search returns prompts whose name, description, tags, or content contain
// the query, case-insensitively, in collection order without ranking.
func (b *Bank) Search(query string) []*Prompt {
	q := strings.ToLower(query)
	var matches []*Prompt
	for _, p := range b.Prompts {
		if p.matches(q) {
			matches = append(matches, p)
		}
	}
	return matches
}

func (p *Prompt) matches(query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Content), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
