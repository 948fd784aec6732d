package community

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/ff-vivek/promptbank/internal/errors"
)

const testIndex = `{
  "version": "1.0",
  "prompts": [
    {
      "name": "code-reviewer",
      "category": "skill",
      "description": "Thorough Go code review",
      "author": "alice",
      "path": "prompts/code-reviewer.json",
      "tags": ["go", "review"],
      "downloads": 42
    },
    {
      "name": "meeting-notes",
      "category": "template",
      "description": "Summarize MEETING transcripts",
      "author": "bob",
      "path": "prompts/meeting-notes.json",
      "tags": ["writing"],
      "downloads": 7
    }
  ]
}`

const testPrompt = `{
  "name": "code-reviewer",
  "category": "skill",
  "description": "Thorough Go code review",
  "content": "Review {{file}} carefully.",
  "tags": ["go"],
  "author": "alice",
  "version": "1.0"
}`

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/index.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testIndex))
	})
	mux.HandleFunc("/prompts/code-reviewer.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testPrompt))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClientWithBaseURL(srv.URL)
}

func TestFetchIndex(t *testing.T) {
	client := newTestClient(t)

	index, err := client.FetchIndex()
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if index.Version != "1.0" {
		t.Errorf("Version = %q", index.Version)
	}
	if len(index.Prompts) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(index.Prompts))
	}
	if index.Prompts[0].Name != "code-reviewer" || index.Prompts[0].Downloads != 42 {
		t.Errorf("unexpected first entry: %+v", index.Prompts[0])
	}
}

func TestFetchPromptAndConvert(t *testing.T) {
	client := newTestClient(t)

	doc, err := client.FetchPrompt("prompts/code-reviewer.json")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	prompt, err := ToLocalPrompt(doc)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if prompt.Name != "code-reviewer" || prompt.Category.String() != "skill" {
		t.Errorf("unexpected prompt: %+v", prompt)
	}
	// Variables are re-derived locally from the content.
	if !reflect.DeepEqual(prompt.Variables, []string{"file"}) {
		t.Errorf("Variables = %v, want [file]", prompt.Variables)
	}
}

func TestToLocalPromptInvalidCategory(t *testing.T) {
	_, err := ToLocalPrompt(&Document{Name: "x", Category: "bogus"})
	if !errors.HasCode(err, errors.ErrCodeInvalidCategory) {
		t.Errorf("expected INVALID_CATEGORY, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	client := newTestClient(t)
	index, err := client.FetchIndex()
	if err != nil {
		t.Fatal(err)
	}

	// Case-insensitive description match.
	if got := Search(index, "meeting"); len(got) != 1 || got[0].Name != "meeting-notes" {
		t.Errorf("Search(meeting) = %v", got)
	}
	// Tag match.
	if got := Search(index, "REVIEW"); len(got) != 1 || got[0].Name != "code-reviewer" {
		t.Errorf("Search(REVIEW) = %v", got)
	}
	// Category match.
	if got := Search(index, "template"); len(got) != 1 || got[0].Name != "meeting-notes" {
		t.Errorf("Search(template) = %v", got)
	}
	if got := Search(index, "zzz"); len(got) != 0 {
		t.Errorf("Search(zzz) = %v", got)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	_, err := client.FetchIndex()
	if !errors.HasCode(err, errors.ErrCodeNetwork) {
		t.Errorf("expected NETWORK_FAILURE, got %v", err)
	}
}
