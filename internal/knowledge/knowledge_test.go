package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("Valid Document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "resume.json")
		if err := os.WriteFile(path, []byte(`{"name":"David Kunze","skills":["Go"]}`), 0o644); err != nil {
			t.Fatal(err)
		}

		doc, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(doc.Content(), "David Kunze") {
			t.Errorf("content missing profile data: %q", doc.Content())
		}
	})

	t.Run("Missing File Falls Back To Placeholder", func(t *testing.T) {
		doc, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if doc.Content() != PlaceholderContent {
			t.Errorf("expected placeholder, got %q", doc.Content())
		}
	})

	t.Run("Invalid JSON Falls Back To Placeholder", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		if err := os.WriteFile(path, []byte(`{broken`), 0o644); err != nil {
			t.Fatal(err)
		}

		doc, err := Load(path)
		if err == nil {
			t.Fatal("expected error for invalid JSON")
		}
		if doc.Content() != PlaceholderContent {
			t.Errorf("expected placeholder, got %q", doc.Content())
		}
	})
}
