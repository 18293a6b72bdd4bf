package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressLoadCreatesDefault(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx, "u1", "basics")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if p.UserID != "u1" || p.CurrentLessonID != "basics" {
		t.Errorf("default record = %+v", p)
	}
	if p.Points != 0 || p.ActivityCount != 0 || p.LessonsCompleted != 0 {
		t.Errorf("default counters non-zero: %+v", p)
	}
	if p.JoinedAt.IsZero() {
		t.Error("joined_at not set")
	}

	// A second load returns the same durable record, not a fresh one.
	again, err := repo.Load(ctx, "u1", "loops")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.CurrentLessonID != "basics" {
		t.Errorf("reload lesson = %q, want basics", again.CurrentLessonID)
	}
}

func TestProgressSaveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx, "u1", "basics")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	p.DisplayName = "Ada"
	p.CurrentLessonID = "loops"
	p.QuizPassed = true
	p.Points = 10
	p.ActivityCount = 4
	p.LessonsCompleted = 2
	p.LastActivityAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "u1", "basics")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.DisplayName != "Ada" || got.CurrentLessonID != "loops" || !got.QuizPassed {
		t.Errorf("round trip = %+v", got)
	}
	if got.Points != 10 || got.ActivityCount != 4 || got.LessonsCompleted != 2 {
		t.Errorf("counters = %+v", got)
	}
}

func TestProgressSaveMissingRecord(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()

	err := repo.Save(context.Background(), &Progress{UserID: "ghost"})
	if err == nil {
		t.Error("expected error saving a record that was never loaded")
	}
}

func TestProgressAllOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	for i, user := range []string{"u1", "u2", "u3"} {
		p, err := repo.Load(ctx, user, "basics")
		if err != nil {
			t.Fatalf("load %s: %v", user, err)
		}
		p.LastActivityAt = time.Date(2025, 6, 1, 12, i, 0, 0, time.UTC)
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("save %s: %v", user, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	// Most recently active first.
	if all[0].UserID != "u3" || all[2].UserID != "u1" {
		t.Errorf("order = %s, %s, %s", all[0].UserID, all[1].UserID, all[2].UserID)
	}
}

func TestAttemptAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.AttemptRepo().Append(ctx, AttemptData{
		UserID:          "u1",
		LessonID:        "basics",
		Question:        "2+2?",
		CorrectAnswer:   "4",
		SubmittedAnswer: "5",
		Correct:         false,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().QuizAttempt.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"explain", "ask"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  10,
			OutputTokens: 20,
			LatencyMs:    5,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Purpose != "ask" || events[1].Purpose != "explain" {
		t.Errorf("order = %s, %s", events[0].Purpose, events[1].Purpose)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequence not increasing: %d, %d", events[0].Sequence, events[1].Sequence)
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	attempt := AttemptData{
		UserID:          "u1",
		LessonID:        "basics",
		Question:        "2+2?",
		CorrectAnswer:   "4",
		SubmittedAnswer: "4",
		Correct:         true,
	}
	if err := s.AttemptRepo().Append(ctx, attempt); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock"}); err != nil {
		t.Fatalf("append llm event: %v", err)
	}

	last, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	// One shared counter: two appends consumed exactly two numbers.
	if last != first+3 {
		t.Errorf("sequence advanced by %d, want 3", last-first)
	}
}
