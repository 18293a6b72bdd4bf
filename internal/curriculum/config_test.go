package curriculum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDoc = `{
	"lessons": [
		{
			"id": "basics",
			"title": "Basics",
			"content": "Variables and types.",
			"question": {
				"prompt": "What is the output of print(2 + 2)?",
				"mode": "freetext",
				"answer": "4"
			}
		},
		{
			"id": "loops",
			"title": "Loops",
			"content": "for and while.",
			"question": {
				"prompt": "Which loop iterates over a sequence?",
				"mode": "choice",
				"options": ["for", "while"],
				"answer": "for"
			}
		}
	]
}`

func TestParseValid(t *testing.T) {
	c, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Size() != 2 {
		t.Fatalf("size = %d, want 2", c.Size())
	}
	if c.First().ID != "basics" {
		t.Errorf("first = %q, want basics", c.First().ID)
	}

	loops, err := c.Get("loops")
	if err != nil {
		t.Fatalf("Get(loops): %v", err)
	}
	if loops.Question.Mode != ModeChoice {
		t.Errorf("mode = %q, want choice", loops.Question.Mode)
	}
	if len(loops.Question.Options) != 2 {
		t.Errorf("options = %v, want 2 entries", loops.Question.Options)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "not json",
			doc:     "{nope",
			wantErr: "invalid JSON",
		},
		{
			name:    "no lessons key",
			doc:     `{"units": []}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "empty lessons",
			doc:     `{"lessons": []}`,
			wantErr: "schema validation failed",
		},
		{
			name: "bad mode",
			doc: `{"lessons": [{"id": "x", "title": "X", "content": "c",
				"question": {"prompt": "p", "mode": "essay", "answer": "a"}}]}`,
			wantErr: "schema validation failed",
		},
		{
			name: "missing answer",
			doc: `{"lessons": [{"id": "x", "title": "X", "content": "c",
				"question": {"prompt": "p", "mode": "freetext"}}]}`,
			wantErr: "schema validation failed",
		},
		{
			name: "structurally valid but inconsistent",
			doc: `{"lessons": [{"id": "x", "title": "X", "content": "c",
				"question": {"prompt": "p", "mode": "choice", "options": ["a", "b"], "answer": "z"}}]}`,
			wantErr: "not among options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course.json")
	if err := os.WriteFile(path, []byte(validDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Size() != 2 {
		t.Errorf("size = %d, want 2", c.Size())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
