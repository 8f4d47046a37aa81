package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestLoader_ValidCollection(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "agents.json", `[
		{"id":"a1","name":"Maria","title":"Broker","email":"m@x.com","isActive":true},
		{"id":"a2","name":"Devon","title":"Agent","email":"d@x.com","isActive":false}
	]`)
	loader := NewLoader(dir, zerolog.Nop())

	agents := loader.Agents(context.Background())
	if len(agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(agents))
	}
	if agents[0].ID != "a1" || agents[1].ID != "a2" {
		t.Errorf("load order not preserved: %v", agents)
	}
	if !agents[0].IsActive || agents[1].IsActive {
		t.Errorf("flags not decoded: %v", agents)
	}
}

func TestLoader_MissingFileIsEmptyNotError(t *testing.T) {
	loader := NewLoader(t.TempDir(), zerolog.Nop())

	agents := loader.Agents(context.Background())
	if agents == nil {
		t.Fatal("missing collection must yield an empty slice, not nil")
	}
	if len(agents) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(agents))
	}
}

func TestLoader_MalformedFileIsEmptyNotError(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "properties.json", `{"this is": "not an array"`)
	loader := NewLoader(dir, zerolog.Nop())

	properties := loader.Properties(context.Background())
	if properties == nil || len(properties) != 0 {
		t.Fatalf("malformed collection must yield an empty slice, got %v", properties)
	}
}

func TestLoader_NullDocumentIsEmptyNotNil(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "testimonials.json", `null`)
	loader := NewLoader(dir, zerolog.Nop())

	if loader.Testimonials(context.Background()) == nil {
		t.Fatal("null document must yield an empty slice, not nil")
	}
}

func TestLoader_RereadsOnEveryCall(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "blog-posts.json", `[]`)
	loader := NewLoader(dir, zerolog.Nop())

	if got := loader.BlogPosts(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty, got %d", len(got))
	}

	writeFixture(t, dir, "blog-posts.json", `[
		{"id":"b1","title":"T","slug":"t","content":"c","category":"x","author":"a","isPublished":true}
	]`)
	if got := loader.BlogPosts(context.Background()); len(got) != 1 {
		t.Fatalf("fixture update must be visible on next read, got %d", len(got))
	}
}
