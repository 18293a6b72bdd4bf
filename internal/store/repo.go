package store

import (
	"context"
	"time"
)

// Progress is the durable per-user record of curriculum position and
// accumulated counters. Points, ActivityCount and LessonsCompleted are
// lifetime counters and never decrease.
type Progress struct {
	UserID           string
	DisplayName      string
	CurrentLessonID  string
	QuizPassed       bool
	Points           int
	ActivityCount    int
	LessonsCompleted int
	JoinedAt         time.Time
	LastActivityAt   time.Time
}

// AttemptData captures one graded answer submission for the append-only
// attempt log.
type AttemptData struct {
	UserID          string
	LessonID        string
	Question        string
	CorrectAnswer   string
	SubmittedAnswer string
	Correct         bool
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// ProgressRepo manages the one-row-per-user progress records.
//
// All writes for a given user are serialized by the dispatcher, so Save
// can be a plain full-record update without conflict handling. Writers
// for different users never touch the same row.
type ProgressRepo interface {
	// Load returns the user's progress record, durably creating a fresh
	// default record (positioned on firstLessonID, all counters zero)
	// when none exists. Concurrent readers therefore always observe a
	// consistent baseline.
	Load(ctx context.Context, userID, firstLessonID string) (*Progress, error)

	// Save writes the full record that Load created. It is an error to
	// save a record for a user that was never loaded.
	Save(ctx context.Context, p *Progress) error

	// All returns every progress record, most recently active first.
	All(ctx context.Context) ([]*Progress, error)
}

// AttemptRepo appends to the quiz-attempt audit log. Entries are written
// once and never mutated; the progression logic does not read them.
type AttemptRepo interface {
	Append(ctx context.Context, data AttemptData) error
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)
}
