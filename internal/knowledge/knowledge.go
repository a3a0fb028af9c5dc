package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// PlaceholderContent is substituted when the knowledge document cannot be
// loaded, so the service starts regardless.
const PlaceholderContent = "Information is currently unavailable."

// Document is the immutable profile record the informational responder
// answers from. Loaded once at startup, read-only afterwards.
type Document struct {
	content string
}

// Content returns the document text embedded into prompts.
func (d Document) Content() string {
	return d.content
}

// NewDocument wraps raw content in a Document. Used by tests.
func NewDocument(content string) Document {
	return Document{content: content}
}

// Load reads the profile JSON from path. On any failure it returns a
// placeholder document together with the error, so the caller can log and
// continue.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{content: PlaceholderContent}, fmt.Errorf("knowledge: failed to read %s: %w", path, err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return Document{content: PlaceholderContent}, fmt.Errorf("knowledge: invalid JSON in %s: %w", path, err)
	}

	return Document{content: pretty.String()}, nil
}
