package grading

import (
	"testing"

	"github.com/abhisek/pytutor/internal/curriculum"
)

func choiceQuestion() curriculum.Question {
	return curriculum.Question{
		Prompt:  "Which loop iterates over a sequence?",
		Mode:    curriculum.ModeChoice,
		Options: []string{"for", "while", "goto"},
		Answer:  "for",
	}
}

func freeTextQuestion() curriculum.Question {
	return curriculum.Question{
		Prompt: "What is the output of print(2 + 2)?",
		Mode:   curriculum.ModeFreeText,
		Answer: "4",
	}
}

func TestGradeChoice(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"exact label", "for", true},
		{"uppercase label", "FOR", true},
		{"label with whitespace", "  for  ", true},
		{"correct 1-based index", "1", true},
		{"wrong label", "while", false},
		{"wrong index", "2", false},
		{"index out of range", "4", false},
		{"index zero", "0", false},
		{"not an option", "loop", false},
		{"answer embedded in prose", "I'd pick the for loop", false},
		{"empty", "", false},
	}

	q := choiceQuestion()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(q, tt.submitted); got != tt.want {
				t.Errorf("Grade(%q) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestGradeFreeText(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"exact", "4", true},
		{"with whitespace", "  4 ", true},
		{"embedded in phrase", "it prints 4", true},
		// Containment is deliberately lenient: "4" inside "44" passes.
		{"embedded in larger number", "44", true},
		{"wrong answer", "5", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}

	q := freeTextQuestion()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(q, tt.submitted); got != tt.want {
				t.Errorf("Grade(%q) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestGradeFreeTextCaseInsensitive(t *testing.T) {
	q := curriculum.Question{
		Prompt: "What keyword defines a function?",
		Mode:   curriculum.ModeFreeText,
		Answer: "def",
	}

	if !Grade(q, "DEF") {
		t.Error("expected case-insensitive match")
	}
	if !Grade(q, "you use the def keyword") {
		t.Error("expected containment match in a phrase")
	}
	if Grade(q, "lambda") {
		t.Error("expected wrong keyword to fail")
	}
}
