package engine

import "time"

// State is the progression state derived from a progress record plus the
// in-flight quiz marker.
type State string

const (
	StateNotStarted     State = "not_started"
	StateViewingLesson  State = "viewing_lesson"
	StateAwaitingAnswer State = "awaiting_answer"
	StateLessonPassed   State = "lesson_passed"
	StateCourseComplete State = "course_complete"
)

// Rejection classifies benign event rejections. A rejected event performs
// no transition and persists nothing; it is reported, not raised.
type Rejection string

const (
	RejectNone           Rejection = ""
	RejectLessonNotFound Rejection = "lesson_not_found"
	RejectNoActiveQuiz   Rejection = "no_active_quiz"
	RejectAtStart        Rejection = "at_start"
	RejectIneligible     Rejection = "ineligible"
)

// Choice is a follow-up intent the transport may render as a button or
// numbered option. Selecting it dispatches Event.
type Choice struct {
	Label string
	Event Event
}

// ArtifactRequest asks the external artifact collaborator to render a
// completion certificate. The engine only gates eligibility.
type ArtifactRequest struct {
	UserID           string
	DisplayName      string
	Points           int
	LessonsCompleted int
	CompletedAt      time.Time
}

// Stats is the read-only projection returned for RequestStats.
type Stats struct {
	DisplayName      string
	JoinedAt         time.Time
	LastActivityAt   time.Time
	ActivityCount    int
	Points           int
	LessonsCompleted int
	TotalLessons     int
}

// Outcome is the engine's response intent: advisory text plus optional
// choices and collaborator requests. How it is rendered is entirely the
// transport's concern.
type Outcome struct {
	// Text is the user-visible response. Always advisory; never raw
	// internal fault detail.
	Text string

	// Choices are follow-up intents, in display order.
	Choices []Choice

	// State is the progression state after the event.
	State State

	// LessonID names the lesson the outcome concerns, when there is one.
	LessonID string

	// Rejection is set when the event was a benign no-op.
	Rejection Rejection

	// Stats is set for RequestStats.
	Stats *Stats

	// Artifact is set when a certificate request was eligible.
	Artifact *ArtifactRequest
}
