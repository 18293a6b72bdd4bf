package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/pytutor/internal/store"
)

// recordingEventRepo captures appended events in memory.
type recordingEventRepo struct {
	events  []store.LLMRequestEventData
	failing bool
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.failing {
		return errors.New("event store down")
	}
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]*store.LLMEvent, error) {
	return nil, nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "answer", Usage: Usage{InputTokens: 12, OutputTokens: 34}},
	)
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "ask")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "ask" {
		t.Errorf("purpose = %q, want ask", e.Purpose)
	}
	if e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", e.InputTokens, e.OutputTokens)
	}
	if !e.Success || e.ErrorMessage != "" {
		t.Errorf("event = %+v", e)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &recordingEventRepo{}
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success || e.ErrorMessage == "" {
		t.Errorf("event = %+v", e)
	}
}

func TestLoggingFailureDoesNotFailRequest(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "fine"})
	p := WithLogging(mock, &recordingEventRepo{failing: true})

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("logging failure surfaced to caller: %v", err)
	}
	if resp.Text != "fine" {
		t.Errorf("text = %q", resp.Text)
	}
}

func TestPurposeContext(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q, want unknown", got)
	}
	ctx := WithPurpose(context.Background(), "explain")
	if got := PurposeFrom(ctx); got != "explain" {
		t.Errorf("purpose = %q, want explain", got)
	}
}
