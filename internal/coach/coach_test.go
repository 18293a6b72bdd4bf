package coach

import (
	"strings"
	"testing"

	"github.com/abhisek/pytutor/internal/curriculum"
	"github.com/abhisek/pytutor/internal/llm"
)

func lesson() curriculum.Unit {
	return curriculum.Unit{
		ID:      "loops",
		Title:   "Loops in Python",
		Content: "for and while",
		Question: curriculum.Question{
			Prompt:  "Which loop iterates over a sequence?",
			Mode:    curriculum.ModeChoice,
			Options: []string{"for", "while", "goto"},
			Answer:  "for",
		},
	}
}

func TestExplainUsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "  A while loop waits on a condition; iterating a sequence is what for does.  "},
	)
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Explain(t.Context(), ExplainInput{Lesson: lesson(), Submitted: "while"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
		t.Errorf("response not trimmed: %q", got)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != explainSystemPrompt {
		t.Error("wrong system prompt")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Loops in Python", "for, while, goto", "Correct answer: for", "Student's answer: while"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestExplainFallbackWithoutProvider(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	got, err := svc.Explain(t.Context(), ExplainInput{Lesson: lesson(), Submitted: "while"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"for"`) || !strings.Contains(got, `"while"`) {
		t.Errorf("fallback does not mention both answers: %q", got)
	}
}

func TestAskUsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "A list holds ordered values."})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Ask(t.Context(), "what is a list?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A list holds ordered values." {
		t.Errorf("answer = %q", got)
	}
	if mock.Calls[0].Messages[0].Content != "what is a list?" {
		t.Errorf("question not forwarded: %+v", mock.Calls[0])
	}
}

func TestAskEmptyQuestion(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Ask(t.Context(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Error("expected a nudge for an empty question")
	}
	if mock.CallCount() != 0 {
		t.Errorf("empty question reached the provider (%d calls)", mock.CallCount())
	}
}

func TestAskFallbackKeywords(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	tests := []struct {
		question string
		want     string
	}{
		{"what is a LIST?", "append"},
		{"how do dictionaries work", "keys"},
		{"explain while loops", "stopping condition"},
		{"how do I define a function", "def"},
		{"something unrelated entirely", "rereading"},
	}

	for _, tt := range tests {
		got, err := svc.Ask(t.Context(), tt.question)
		if err != nil {
			t.Fatalf("Ask(%q): %v", tt.question, err)
		}
		if !strings.Contains(strings.ToLower(got), strings.ToLower(tt.want)) {
			t.Errorf("Ask(%q) = %q, missing %q", tt.question, got, tt.want)
		}
	}
}
