package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileDocument mirrors the curriculum JSON file layout.
type fileDocument struct {
	Lessons []fileLesson `json:"lessons"`
}

type fileLesson struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Question fileQuestion `json:"question"`
}

type fileQuestion struct {
	Prompt  string   `json:"prompt"`
	Mode    string   `json:"mode"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// LoadFile reads a curriculum JSON file, validates it against the embedded
// schema, and builds a Catalog. File order defines catalog order.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Catalog from raw curriculum JSON.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc fileDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse curriculum file: %w", err)
	}

	units := make([]Unit, 0, len(doc.Lessons))
	for _, l := range doc.Lessons {
		units = append(units, Unit{
			ID:      l.ID,
			Title:   l.Title,
			Content: l.Content,
			Question: Question{
				Prompt:  l.Question.Prompt,
				Mode:    Mode(l.Question.Mode),
				Options: l.Question.Options,
				Answer:  l.Question.Answer,
			},
		})
	}

	return New(units)
}
