package markdown

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-mdsections/internal/storage"
)

func TestParseFrontMatter(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte(readFixture(t, "testdata/guide.md")))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "Section Guide" || fm.Slug != "section-guide" {
		t.Fatalf("unexpected title/slug: %q %q", fm.Title, fm.Slug)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "docs" {
		t.Fatalf("unexpected tags %#v", fm.Tags)
	}
	if fm.Custom["owner"] != "docs-team" || fm.Raw["owner"] != "docs-team" {
		t.Fatalf("expected custom owner key, got %#v", fm.Custom)
	}
	if fm.Raw["title"] != "Section Guide" {
		t.Fatalf("expected raw title, got %#v", fm.Raw)
	}
	if !strings.Contains(string(body), "# Usage") || strings.Contains(string(body), "title:") {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("# Title\nbody"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" {
		t.Fatalf("expected empty front matter, got %#v", fm)
	}
	if string(body) != "# Title\nbody" {
		t.Fatalf("expected body unchanged, got %q", string(body))
	}
}

func TestDocumentFrontMatter(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	if err := store.WriteDocument(ctx, "guide.md", []byte(readFixture(t, "testdata/guide.md"))); err != nil {
		t.Fatalf("seed: %v", err)
	}

	fm, _, err := NewDocument("guide.md", WithStore(store)).FrontMatter(ctx)
	if err != nil {
		t.Fatalf("FrontMatter: %v", err)
	}
	if fm.Title != "Section Guide" {
		t.Fatalf("unexpected title %q", fm.Title)
	}
}
