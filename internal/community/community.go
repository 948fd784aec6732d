// Package community fetches shared prompts from the community repository's
// static JSON index.
package community

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/models"
)

const (
	// Repo is the GitHub repository accepting contributions.
	Repo = "ff-vivek/promptbank-community"

	defaultBaseURL = "https://raw.githubusercontent.com/ff-vivek/promptbank-community/main"
)

// Index describes the available shared prompts.
type Index struct {
	Version string  `json:"version"`
	Prompts []Entry `json:"prompts"`
}

// Entry is one row of the community index.
type Entry struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Path        string   `json:"path"`
	Tags        []string `json:"tags"`
	Downloads   uint64   `json:"downloads"`
}

// Document is an individual shared prompt fetched by its relative path.
type Document struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Variables   []string `json:"variables,omitempty"`
	Author      string   `json:"author"`
	Version     string   `json:"version"`
}

// Client fetches community documents over HTTP.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client against the community repository.
func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL creates a client against an arbitrary base URL.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchIndex downloads and parses the community index.
func (c *Client) FetchIndex() (*Index, error) {
	var index Index
	if err := c.getJSON("index.json", &index); err != nil {
		return nil, err
	}
	return &index, nil
}

// FetchPrompt downloads a single prompt document by its relative path.
func (c *Client) FetchPrompt(path string) (*Document, error) {
	var doc Document
	if err := c.getJSON(path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) getJSON(path string, v interface{}) error {
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	resp, err := c.httpc.Get(url)
	if err != nil {
		return errors.NetworkError(fmt.Sprintf("fetch %s", path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New(errors.ErrCodeNetwork,
			fmt.Sprintf("fetch %s: unexpected status %s", path, resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.ParseError(path, err)
	}
	return nil
}

// Search filters index entries by case-insensitive substring match against
// name, description, tags, or category, preserving index order.
func Search(index *Index, query string) []Entry {
	q := strings.ToLower(query)
	var matches []Entry
	for _, entry := range index.Prompts {
		if entryMatches(entry, q) {
			matches = append(matches, entry)
		}
	}
	return matches
}

func entryMatches(entry Entry, query string) bool {
	if strings.Contains(strings.ToLower(entry.Name), query) ||
		strings.Contains(strings.ToLower(entry.Description), query) ||
		strings.Contains(strings.ToLower(entry.Category), query) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// ToLocalPrompt converts a fetched document into a local prompt, assigning a
// fresh id and re-deriving the variable list from the content.
func ToLocalPrompt(doc *Document) (*models.Prompt, error) {
	category, err := models.ParseCategory(doc.Category)
	if err != nil {
		return nil, errors.InvalidCategory(doc.Category)
	}
	return models.NewPrompt(doc.Name, category, doc.Description, doc.Content, doc.Tags), nil
}

// RepoURL returns the GitHub URL for community contributions.
func RepoURL() string {
	return "https://github.com/" + Repo
}
