package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/pytutor/internal/coach"
	"github.com/abhisek/pytutor/internal/curriculum"
	"github.com/abhisek/pytutor/internal/dispatch"
	"github.com/abhisek/pytutor/internal/engine"
)

// recordingHandler captures dispatched events.
type recordingHandler struct {
	events []engine.Event
}

func (h *recordingHandler) Handle(_ context.Context, _ string, ev engine.Event) (engine.Outcome, error) {
	h.events = append(h.events, ev)
	return engine.Outcome{Text: "ok", State: engine.StateViewingLesson}, nil
}

func testModel(t *testing.T) (Model, *recordingHandler) {
	t.Helper()
	h := &recordingHandler{}
	catalog, err := curriculum.New([]curriculum.Unit{
		{
			ID: "basics", Title: "Basics", Content: "c",
			Question: curriculum.Question{Prompt: "2+2?", Mode: curriculum.ModeFreeText, Answer: "4"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	m := New(Deps{
		Dispatcher: dispatch.New(h),
		Catalog:    catalog,
		Coach:      coach.NewService(nil, coach.DefaultConfig()),
		UserID:     "u1",
	})
	return m, h
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  engine.Event
		ok    bool
	}{
		{"/restart", engine.Begin{}, true},
		{"/QUIZ", engine.StartQuiz{}, true},
		{"/prev", engine.ViewPrevious{}, true},
		{"/stats", engine.RequestStats{}, true},
		{"/certificate", engine.RequestCertificate{}, true},
		{"/unknown", nil, false},
		{"not a command", nil, false},
	}

	for _, tt := range tests {
		got, ok := parseCommand(tt.input)
		if ok != tt.ok {
			t.Errorf("parseCommand(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("parseCommand(%q) = %#v, want %#v", tt.input, got, tt.want)
		}
	}
}

func TestNumberSelectsChoice(t *testing.T) {
	m, h := testModel(t)
	m.choices = []engine.Choice{
		{Label: "Take the quiz", Event: engine.StartQuiz{}},
		{Label: "My stats", Event: engine.RequestStats{}},
	}

	m.input.SetValue("2")
	_, cmd := m.handleSubmit()
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	if _, ok := cmd().(outcomeMsg); !ok {
		t.Fatal("expected an outcomeMsg")
	}

	if len(h.events) != 1 {
		t.Fatalf("events = %d, want 1", len(h.events))
	}
	if _, ok := h.events[0].(engine.RequestStats); !ok {
		t.Errorf("event = %T, want RequestStats", h.events[0])
	}
}

func TestTextSubmitsAnswerWhileQuizOpen(t *testing.T) {
	m, h := testModel(t)
	m.state = engine.StateAwaitingAnswer

	m.input.SetValue("4")
	_, cmd := m.handleSubmit()
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	msg, ok := cmd().(outcomeMsg)
	if !ok {
		t.Fatal("expected an outcomeMsg")
	}
	if msg.submitted != "4" {
		t.Errorf("submitted = %q, want 4", msg.submitted)
	}

	sa, ok := h.events[0].(engine.SubmitAnswer)
	if !ok || sa.Text != "4" {
		t.Errorf("event = %#v, want SubmitAnswer{4}", h.events[0])
	}
}

func TestTextGoesToCoachOtherwise(t *testing.T) {
	m, h := testModel(t)
	m.state = engine.StateViewingLesson

	m.input.SetValue("what is a list?")
	_, cmd := m.handleSubmit()
	if cmd == nil {
		t.Fatal("expected a coach command")
	}
	msg, ok := cmd().(coachMsg)
	if !ok {
		t.Fatalf("expected a coachMsg, got %T", cmd())
	}
	if msg.err != nil || msg.text == "" {
		t.Errorf("coach reply = %+v", msg)
	}
	if len(h.events) != 0 {
		t.Errorf("coach question reached the engine: %v", h.events)
	}
}

func TestEmptyInputIsIgnored(t *testing.T) {
	m, _ := testModel(t)
	m.input.SetValue("   ")
	_, cmd := m.handleSubmit()
	if cmd != nil {
		t.Error("expected no command for blank input")
	}
}

func TestAdviseError(t *testing.T) {
	if got := adviseError(engine.ErrBusy); got == "" {
		t.Error("busy advisory empty")
	}
	if got := adviseError(engine.ErrStorageUnavailable); got == "" {
		t.Error("storage advisory empty")
	}
	got := adviseError(errors.New("boom"))
	if got == "" {
		t.Error("generic advisory empty")
	}
}
