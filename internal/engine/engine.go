// Package engine implements the progression state machine: given a user's
// durable progress record and an inbound event, it computes the next state,
// persists it, and returns the outward response intent. It is deterministic
// for identical (state, event) pairs and transport-agnostic.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/pytutor/internal/curriculum"
	"github.com/abhisek/pytutor/internal/grading"
	"github.com/abhisek/pytutor/internal/store"
)

// Config holds the engine's tunable behavior.
type Config struct {
	// LessonAward is the fixed number of points granted for passing a
	// lesson's gating quiz.
	LessonAward int
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{LessonAward: 5}
}

// Service is the progression state machine. It owns the in-flight quiz
// registry and drives the load-grade-save sequence for each event. Callers
// must serialize events per user (see the dispatch package); the service
// itself assumes at most one in-flight transition per user.
type Service struct {
	catalog  *curriculum.Catalog
	progress store.ProgressRepo
	attempts store.AttemptRepo
	cfg      Config
	inflight *inFlightRegistry

	// clock is swappable for tests.
	clock func() time.Time
}

// NewService creates the state machine over the given catalog and repos.
func NewService(catalog *curriculum.Catalog, progress store.ProgressRepo, attempts store.AttemptRepo, cfg Config) *Service {
	return &Service{
		catalog:  catalog,
		progress: progress,
		attempts: attempts,
		cfg:      cfg,
		inflight: newInFlightRegistry(),
		clock:    time.Now,
	}
}

// Catalog returns the curriculum this engine serves.
func (s *Service) Catalog() *curriculum.Catalog {
	return s.catalog
}

// Handle applies one event for one user.
//
// The transition is computed on a copy of the loaded record; the copy is
// persisted before any in-memory effect (in-flight quiz changes) becomes
// visible. A failed save therefore aborts the event completely: the
// caller sees ErrStorageUnavailable and no state — durable or ephemeral —
// has moved.
func (s *Service) Handle(ctx context.Context, userID string, ev Event) (Outcome, error) {
	rec, err := s.progress.Load(ctx, userID, s.catalog.First().ID)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: load progress: %v", ErrStorageUnavailable, err)
	}

	// Work on a copy so a failed save leaves nothing applied.
	next := *rec

	var (
		out    Outcome
		commit func()
	)

	switch e := ev.(type) {
	case Begin:
		out, commit = s.handleBegin(&next, e, userID)
	case ViewLesson:
		out, commit = s.handleViewLesson(&next, e, userID)
	case ViewPrevious:
		out, commit = s.handleViewPrevious(&next, userID)
	case StartQuiz:
		out, commit = s.handleStartQuiz(&next, userID)
	case SubmitAnswer:
		out, commit, err = s.handleSubmitAnswer(ctx, &next, e, userID)
		if err != nil {
			return Outcome{}, err
		}
	case RequestStats:
		out = s.handleRequestStats(&next, userID)
	case RequestCertificate:
		out = s.handleRequestCertificate(&next, userID)
	default:
		return Outcome{}, fmt.Errorf("unknown event type %T", ev)
	}

	// Benign rejections are not transitions: nothing is persisted and
	// the progress record is reported unchanged.
	if out.Rejection != RejectNone {
		return out, nil
	}

	next.ActivityCount++
	next.LastActivityAt = s.clock().UTC()

	if err := s.progress.Save(ctx, &next); err != nil {
		return Outcome{}, fmt.Errorf("%w: save progress: %v", ErrStorageUnavailable, err)
	}
	if commit != nil {
		commit()
	}
	return out, nil
}

// handleBegin resets the position to the first lesson. Lifetime counters
// (points, activity, lessons completed) are monotone and survive a restart.
func (s *Service) handleBegin(p *store.Progress, e Begin, userID string) (Outcome, func()) {
	first := s.catalog.First()
	if e.DisplayName != "" {
		p.DisplayName = e.DisplayName
	}
	p.CurrentLessonID = first.ID
	p.QuizPassed = false

	out := Outcome{
		Text:     s.renderLesson(first, "Welcome! Let's learn Python together.\n\n"),
		State:    StateViewingLesson,
		LessonID: first.ID,
		Choices:  s.lessonChoices(first.ID),
	}
	// A restart abandons any quiz left open by a previous position.
	return out, func() { s.inflight.clear(userID) }
}

func (s *Service) handleViewLesson(p *store.Progress, e ViewLesson, userID string) (Outcome, func()) {
	unit, err := s.catalog.Get(e.ID)
	if err != nil {
		return Outcome{
			Text:      fmt.Sprintf("There is no lesson %q. Pick one from the lesson list.", e.ID),
			State:     s.stateOf(p, userID),
			Rejection: RejectLessonNotFound,
		}, nil
	}

	// Re-viewing is non-destructive: quiz_passed is left alone.
	p.CurrentLessonID = unit.ID

	return Outcome{
		Text:     s.renderLesson(unit, ""),
		State:    StateViewingLesson,
		LessonID: unit.ID,
		Choices:  s.lessonChoices(unit.ID),
	}, nil
}

func (s *Service) handleViewPrevious(p *store.Progress, userID string) (Outcome, func()) {
	prev, err := s.catalog.Previous(p.CurrentLessonID)
	if errors.Is(err, curriculum.ErrLessonNotFound) {
		// The record points at a lesson this curriculum doesn't have,
		// e.g. after switching to a different curriculum file.
		return Outcome{
			Text:      "Your current lesson is missing from the curriculum. Use Begin to restart.",
			State:     s.stateOf(p, userID),
			Rejection: RejectLessonNotFound,
		}, nil
	}
	if err != nil {
		return Outcome{
			Text:      "You're already at the first lesson.",
			State:     s.stateOf(p, userID),
			Rejection: RejectAtStart,
		}, nil
	}

	p.CurrentLessonID = prev.ID

	return Outcome{
		Text:     s.renderLesson(prev, ""),
		State:    StateViewingLesson,
		LessonID: prev.ID,
		Choices:  s.lessonChoices(prev.ID),
	}, nil
}

func (s *Service) handleStartQuiz(p *store.Progress, userID string) (Outcome, func()) {
	unit, err := s.catalog.Get(p.CurrentLessonID)
	if err != nil {
		return Outcome{
			Text:      "Your current lesson is missing from the curriculum. Use Begin to restart.",
			State:     s.stateOf(p, userID),
			Rejection: RejectLessonNotFound,
		}, nil
	}

	out := Outcome{
		Text:     renderQuestion(unit),
		State:    StateAwaitingAnswer,
		LessonID: unit.ID,
		Choices:  answerChoices(unit.Question),
	}
	// Starting a quiz replaces any previously open one for this user.
	return out, func() { s.inflight.open(userID, unit.ID) }
}

func (s *Service) handleSubmitAnswer(ctx context.Context, p *store.Progress, e SubmitAnswer, userID string) (Outcome, func(), error) {
	quiz, ok := s.inflight.get(userID)
	if !ok {
		return Outcome{
			Text:      "You don't have an open quiz. Start one from your lesson first.",
			State:     s.stateOf(p, userID),
			Rejection: RejectNoActiveQuiz,
		}, nil, nil
	}

	unit, err := s.catalog.Get(quiz.LessonID)
	if err != nil {
		// The quiz references a lesson the catalog no longer has; drop it.
		s.inflight.clear(userID)
		return Outcome{
			Text:      "That quiz is no longer available. Start one from your lesson.",
			State:     s.stateOf(p, userID),
			Rejection: RejectNoActiveQuiz,
		}, nil, nil
	}

	correct := grading.Grade(unit.Question, e.Text)

	// The attempt log is independent of the progress record: it records
	// what was graded even if the progress save later fails.
	err = s.attempts.Append(ctx, store.AttemptData{
		UserID:          userID,
		LessonID:        unit.ID,
		Question:        unit.Question.Prompt,
		CorrectAnswer:   unit.Question.Answer,
		SubmittedAnswer: e.Text,
		Correct:         correct,
	})
	if err != nil {
		return Outcome{}, nil, fmt.Errorf("%w: record attempt: %v", ErrStorageUnavailable, err)
	}

	commit := func() { s.inflight.clear(userID) }

	if !correct {
		return Outcome{
			Text: fmt.Sprintf("Not quite. The answer was: %s\nRe-read the lesson and try again.",
				unit.Question.Answer),
			State:    StateViewingLesson,
			LessonID: unit.ID,
			Choices: []Choice{
				{Label: "Re-read lesson", Event: ViewLesson{ID: unit.ID}},
				{Label: "Retry quiz", Event: StartQuiz{}},
			},
		}, commit, nil
	}

	p.QuizPassed = true
	p.Points += s.cfg.LessonAward

	// LessonsCompleted counts lessons up to the furthest pass, so
	// re-passing an earlier quiz never pushes it past the catalog size.
	pos, _ := s.catalog.Position(unit.ID)
	if pos+1 > p.LessonsCompleted {
		p.LessonsCompleted = pos + 1
	}

	nextUnit, err := s.catalog.Next(unit.ID)
	if errors.Is(err, curriculum.ErrEndOfCourse) {
		p.CurrentLessonID = unit.ID
		return Outcome{
			Text: fmt.Sprintf("Correct! +%d points.\n\nThat was the last lesson — you've completed the course! 🎉",
				s.cfg.LessonAward),
			State:    StateCourseComplete,
			LessonID: unit.ID,
			Choices: []Choice{
				{Label: "Get certificate", Event: RequestCertificate{}},
				{Label: "My stats", Event: RequestStats{}},
			},
		}, commit, nil
	}
	if err != nil {
		return Outcome{}, nil, fmt.Errorf("advance past %q: %w", unit.ID, err)
	}

	p.CurrentLessonID = nextUnit.ID
	p.QuizPassed = false

	return Outcome{
		Text: fmt.Sprintf("Correct! +%d points.\n\n%s", s.cfg.LessonAward,
			s.renderLesson(nextUnit, "Next up:\n\n")),
		State:    StateLessonPassed,
		LessonID: nextUnit.ID,
		Choices:  s.lessonChoices(nextUnit.ID),
	}, commit, nil
}

func (s *Service) handleRequestStats(p *store.Progress, userID string) Outcome {
	st := &Stats{
		DisplayName:      p.DisplayName,
		JoinedAt:         p.JoinedAt,
		LastActivityAt:   p.LastActivityAt,
		ActivityCount:    p.ActivityCount,
		Points:           p.Points,
		LessonsCompleted: p.LessonsCompleted,
		TotalLessons:     s.catalog.Size(),
	}
	name := p.DisplayName
	if name == "" {
		name = p.UserID
	}
	return Outcome{
		Text: fmt.Sprintf(
			"Stats for %s:\nJoined: %s\nPoints: %d\nLessons completed: %d of %d\nActivity count: %d",
			name,
			p.JoinedAt.Local().Format("2006-01-02"),
			p.Points,
			p.LessonsCompleted,
			s.catalog.Size(),
			p.ActivityCount,
		),
		State: s.stateOf(p, userID),
		Stats: st,
	}
}

func (s *Service) handleRequestCertificate(p *store.Progress, userID string) Outcome {
	eligible := p.CurrentLessonID == s.catalog.Last().ID && p.QuizPassed
	if !eligible {
		return Outcome{
			Text:      "Certificate not available yet: curriculum incomplete.",
			State:     s.stateOf(p, userID),
			Rejection: RejectIneligible,
		}
	}

	return Outcome{
		Text:  "Congratulations — certificate earned!",
		State: StateCourseComplete,
		Artifact: &ArtifactRequest{
			UserID:           userID,
			DisplayName:      p.DisplayName,
			Points:           p.Points,
			LessonsCompleted: p.LessonsCompleted,
			CompletedAt:      s.clock().UTC(),
		},
	}
}

// stateOf derives the progression state from the record plus the user's
// in-flight quiz, if one is open.
func (s *Service) stateOf(p *store.Progress, userID string) State {
	_, quizOpen := s.inflight.get(userID)
	switch {
	case quizOpen:
		return StateAwaitingAnswer
	case p.ActivityCount == 0:
		return StateNotStarted
	case p.QuizPassed && p.CurrentLessonID == s.catalog.Last().ID:
		return StateCourseComplete
	case p.QuizPassed:
		return StateLessonPassed
	default:
		return StateViewingLesson
	}
}

// renderLesson formats a lesson for display, prefixed by an optional lead-in.
func (s *Service) renderLesson(u curriculum.Unit, leadIn string) string {
	pos, _ := s.catalog.Position(u.ID)
	return fmt.Sprintf("%sLesson %d of %d: %s\n\n%s", leadIn, pos+1, s.catalog.Size(), u.Title, u.Content)
}

// lessonChoices returns the standard follow-ups while viewing a lesson.
func (s *Service) lessonChoices(lessonID string) []Choice {
	choices := []Choice{
		{Label: "Take the quiz", Event: StartQuiz{}},
	}
	if _, err := s.catalog.Previous(lessonID); err == nil {
		choices = append(choices, Choice{Label: "Previous lesson", Event: ViewPrevious{}})
	}
	choices = append(choices, Choice{Label: "My stats", Event: RequestStats{}})
	return choices
}

// renderQuestion formats a gating question, listing options for choice mode.
func renderQuestion(u curriculum.Unit) string {
	q := u.Question
	text := fmt.Sprintf("Quiz for %s:\n\n%s", u.Title, q.Prompt)
	if q.Mode == curriculum.ModeChoice {
		for i, opt := range q.Options {
			text += fmt.Sprintf("\n  %d. %s", i+1, opt)
		}
	}
	return text
}

// answerChoices turns choice-mode options into submit intents.
func answerChoices(q curriculum.Question) []Choice {
	if q.Mode != curriculum.ModeChoice {
		return nil
	}
	choices := make([]Choice, len(q.Options))
	for i, opt := range q.Options {
		choices[i] = Choice{Label: opt, Event: SubmitAnswer{Text: opt}}
	}
	return choices
}
