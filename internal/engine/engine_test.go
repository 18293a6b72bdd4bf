package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/pytutor/internal/curriculum"
	"github.com/abhisek/pytutor/internal/store"
)

// fakeProgressRepo is an in-memory ProgressRepo with controllable save
// failures.
type fakeProgressRepo struct {
	records   map[string]*store.Progress
	saves     int
	failSaves int
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{records: make(map[string]*store.Progress)}
}

func (f *fakeProgressRepo) Load(_ context.Context, userID, firstLessonID string) (*store.Progress, error) {
	if p, ok := f.records[userID]; ok {
		cp := *p
		return &cp, nil
	}
	now := time.Now().UTC()
	p := &store.Progress{
		UserID:          userID,
		CurrentLessonID: firstLessonID,
		JoinedAt:        now,
		LastActivityAt:  now,
	}
	f.records[userID] = p
	cp := *p
	return &cp, nil
}

func (f *fakeProgressRepo) Save(_ context.Context, p *store.Progress) error {
	if f.failSaves > 0 {
		f.failSaves--
		return errors.New("disk full")
	}
	f.saves++
	cp := *p
	f.records[p.UserID] = &cp
	return nil
}

func (f *fakeProgressRepo) All(_ context.Context) ([]*store.Progress, error) {
	var out []*store.Progress
	for _, p := range f.records {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// fakeAttemptRepo records appended attempts and can fail on demand.
type fakeAttemptRepo struct {
	attempts    []store.AttemptData
	failAppends int
}

func (f *fakeAttemptRepo) Append(_ context.Context, data store.AttemptData) error {
	if f.failAppends > 0 {
		f.failAppends--
		return errors.New("disk full")
	}
	f.attempts = append(f.attempts, data)
	return nil
}

func testCatalog(t *testing.T) *curriculum.Catalog {
	t.Helper()
	c, err := curriculum.New([]Unit{
		{
			ID: "basics", Title: "Basics", Content: "variables",
			Question: curriculum.Question{Prompt: "2+2?", Mode: curriculum.ModeFreeText, Answer: "4"},
		},
		{
			ID: "loops", Title: "Loops", Content: "for and while",
			Question: curriculum.Question{
				Prompt: "which loop?", Mode: curriculum.ModeChoice,
				Options: []string{"for", "while"}, Answer: "for",
			},
		},
		{
			ID: "functions", Title: "Functions", Content: "def",
			Question: curriculum.Question{Prompt: "keyword?", Mode: curriculum.ModeFreeText, Answer: "def"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// Unit aliases keep the literal above readable.
type Unit = curriculum.Unit

func newTestService(t *testing.T) (*Service, *fakeProgressRepo, *fakeAttemptRepo) {
	t.Helper()
	progress := newFakeProgressRepo()
	attempts := &fakeAttemptRepo{}
	svc := NewService(testCatalog(t), progress, attempts, DefaultConfig())
	svc.clock = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, progress, attempts
}

func handle(t *testing.T, svc *Service, ev Event) Outcome {
	t.Helper()
	out, err := svc.Handle(t.Context(), "u1", ev)
	if err != nil {
		t.Fatalf("Handle(%T): %v", ev, err)
	}
	return out
}

func TestBeginShowsFirstLesson(t *testing.T) {
	svc, progress, _ := newTestService(t)

	out := handle(t, svc, Begin{DisplayName: "Ada"})

	if out.State != StateViewingLesson {
		t.Errorf("state = %q, want viewing_lesson", out.State)
	}
	if !strings.Contains(out.Text, "Lesson 1 of 3") {
		t.Errorf("text does not show position: %q", out.Text)
	}
	if len(out.Choices) == 0 || out.Choices[0].Label != "Take the quiz" {
		t.Errorf("unexpected choices: %+v", out.Choices)
	}

	rec := progress.records["u1"]
	if rec.DisplayName != "Ada" {
		t.Errorf("display name = %q, want Ada", rec.DisplayName)
	}
	if rec.CurrentLessonID != "basics" {
		t.Errorf("lesson = %q, want basics", rec.CurrentLessonID)
	}
	if rec.ActivityCount != 1 {
		t.Errorf("activity count = %d, want 1", rec.ActivityCount)
	}
}

func TestCorrectAnswerAdvances(t *testing.T) {
	svc, progress, attempts := newTestService(t)

	handle(t, svc, Begin{})
	out := handle(t, svc, StartQuiz{})
	if out.State != StateAwaitingAnswer {
		t.Fatalf("state = %q, want awaiting_answer", out.State)
	}

	out = handle(t, svc, SubmitAnswer{Text: "4"})
	if out.State != StateLessonPassed {
		t.Errorf("state = %q, want lesson_passed", out.State)
	}
	if !strings.Contains(out.Text, "Correct! +5 points") {
		t.Errorf("text = %q", out.Text)
	}
	if out.LessonID != "loops" {
		t.Errorf("lesson = %q, want loops", out.LessonID)
	}

	rec := progress.records["u1"]
	if rec.Points != 5 || rec.LessonsCompleted != 1 {
		t.Errorf("points = %d, completed = %d; want 5, 1", rec.Points, rec.LessonsCompleted)
	}
	if rec.CurrentLessonID != "loops" || rec.QuizPassed {
		t.Errorf("position = %q (passed=%v), want loops (false)", rec.CurrentLessonID, rec.QuizPassed)
	}

	if len(attempts.attempts) != 1 {
		t.Fatalf("attempts logged = %d, want 1", len(attempts.attempts))
	}
	a := attempts.attempts[0]
	if !a.Correct || a.LessonID != "basics" || a.SubmittedAnswer != "4" {
		t.Errorf("unexpected attempt record: %+v", a)
	}
}

func TestWrongAnswerRevealsAndAllowsRetry(t *testing.T) {
	svc, progress, attempts := newTestService(t)

	handle(t, svc, Begin{})
	handle(t, svc, StartQuiz{})
	out := handle(t, svc, SubmitAnswer{Text: "5"})

	if out.State != StateViewingLesson {
		t.Errorf("state = %q, want viewing_lesson", out.State)
	}
	if !strings.Contains(out.Text, "The answer was: 4") {
		t.Errorf("text does not reveal answer: %q", out.Text)
	}

	var labels []string
	for _, c := range out.Choices {
		labels = append(labels, c.Label)
	}
	if fmt.Sprint(labels) != "[Re-read lesson Retry quiz]" {
		t.Errorf("choices = %v", labels)
	}

	rec := progress.records["u1"]
	if rec.Points != 0 || rec.LessonsCompleted != 0 {
		t.Errorf("wrong answer changed counters: %+v", rec)
	}
	if len(attempts.attempts) != 1 || attempts.attempts[0].Correct {
		t.Errorf("expected one incorrect attempt, got %+v", attempts.attempts)
	}

	// The quiz was consumed; a second submission has nothing to grade.
	out = handle(t, svc, SubmitAnswer{Text: "4"})
	if out.Rejection != RejectNoActiveQuiz {
		t.Errorf("rejection = %q, want no_active_quiz", out.Rejection)
	}
}

func TestSubmitWithoutQuizPersistsNothing(t *testing.T) {
	svc, progress, attempts := newTestService(t)

	handle(t, svc, Begin{})
	savesBefore := progress.saves

	out := handle(t, svc, SubmitAnswer{Text: "4"})
	if out.Rejection != RejectNoActiveQuiz {
		t.Fatalf("rejection = %q, want no_active_quiz", out.Rejection)
	}
	if progress.saves != savesBefore {
		t.Error("rejected event was persisted")
	}
	if len(attempts.attempts) != 0 {
		t.Error("rejected event logged an attempt")
	}
	if progress.records["u1"].ActivityCount != 1 {
		t.Errorf("activity count = %d, want 1", progress.records["u1"].ActivityCount)
	}
}

func TestViewPreviousAtStart(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{})
	savesBefore := progress.saves

	out := handle(t, svc, ViewPrevious{})
	if out.Rejection != RejectAtStart {
		t.Errorf("rejection = %q, want at_start", out.Rejection)
	}
	if progress.saves != savesBefore {
		t.Error("rejected event was persisted")
	}
}

func TestViewUnknownLesson(t *testing.T) {
	svc, _, _ := newTestService(t)

	handle(t, svc, Begin{})
	out := handle(t, svc, ViewLesson{ID: "decorators"})
	if out.Rejection != RejectLessonNotFound {
		t.Errorf("rejection = %q, want lesson_not_found", out.Rejection)
	}
}

func TestFullCourseCompletion(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{DisplayName: "Ada"})

	answers := []string{"4", "for", "def"}
	var last Outcome
	for _, a := range answers {
		handle(t, svc, StartQuiz{})
		last = handle(t, svc, SubmitAnswer{Text: a})
	}

	if last.State != StateCourseComplete {
		t.Fatalf("state = %q, want course_complete", last.State)
	}

	rec := progress.records["u1"]
	if rec.Points != 15 || rec.LessonsCompleted != 3 {
		t.Errorf("points = %d, completed = %d; want 15, 3", rec.Points, rec.LessonsCompleted)
	}
	if rec.CurrentLessonID != "functions" || !rec.QuizPassed {
		t.Errorf("final position = %q (passed=%v)", rec.CurrentLessonID, rec.QuizPassed)
	}

	out := handle(t, svc, RequestCertificate{})
	if out.Artifact == nil {
		t.Fatal("expected certificate artifact")
	}
	if out.Artifact.DisplayName != "Ada" || out.Artifact.Points != 15 {
		t.Errorf("artifact = %+v", out.Artifact)
	}
}

func TestCertificateIneligible(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{})
	savesBefore := progress.saves

	out := handle(t, svc, RequestCertificate{})
	if out.Rejection != RejectIneligible {
		t.Errorf("rejection = %q, want ineligible", out.Rejection)
	}
	if out.Artifact != nil {
		t.Error("ineligible request produced an artifact")
	}
	if progress.saves != savesBefore {
		t.Error("rejected event was persisted")
	}
}

func TestBeginPreservesLifetimeCounters(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{DisplayName: "Ada"})
	handle(t, svc, StartQuiz{})
	handle(t, svc, SubmitAnswer{Text: "4"})

	handle(t, svc, Begin{})

	rec := progress.records["u1"]
	if rec.CurrentLessonID != "basics" || rec.QuizPassed {
		t.Errorf("restart position = %q (passed=%v), want basics (false)", rec.CurrentLessonID, rec.QuizPassed)
	}
	if rec.Points != 5 || rec.LessonsCompleted != 1 {
		t.Errorf("restart reset counters: %+v", rec)
	}
	if rec.DisplayName != "Ada" {
		t.Errorf("restart cleared display name: %q", rec.DisplayName)
	}
}

func TestBeginAbandonsOpenQuiz(t *testing.T) {
	svc, _, _ := newTestService(t)

	handle(t, svc, Begin{})
	handle(t, svc, StartQuiz{})
	handle(t, svc, Begin{})

	out := handle(t, svc, SubmitAnswer{Text: "4"})
	if out.Rejection != RejectNoActiveQuiz {
		t.Errorf("rejection = %q, want no_active_quiz", out.Rejection)
	}
}

func TestFailedSaveLeavesQuizOpen(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{})
	handle(t, svc, StartQuiz{})

	progress.failSaves = 1
	_, err := svc.Handle(t.Context(), "u1", SubmitAnswer{Text: "4"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("error = %v, want ErrStorageUnavailable", err)
	}

	rec := progress.records["u1"]
	if rec.Points != 0 {
		t.Errorf("failed save changed durable state: %+v", rec)
	}

	// The quiz survives the failure, so the same answer can be retried.
	out := handle(t, svc, SubmitAnswer{Text: "4"})
	if out.State != StateLessonPassed {
		t.Errorf("retry state = %q, want lesson_passed", out.State)
	}
	if progress.records["u1"].Points != 5 {
		t.Errorf("retry points = %d, want 5", progress.records["u1"].Points)
	}
}

func TestFailedAttemptLogAborts(t *testing.T) {
	svc, progress, attempts := newTestService(t)

	handle(t, svc, Begin{})
	handle(t, svc, StartQuiz{})

	attempts.failAppends = 1
	_, err := svc.Handle(t.Context(), "u1", SubmitAnswer{Text: "4"})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("error = %v, want ErrStorageUnavailable", err)
	}
	if progress.records["u1"].Points != 0 {
		t.Error("aborted submission changed durable state")
	}
}

func TestStatsProjection(t *testing.T) {
	svc, _, _ := newTestService(t)

	handle(t, svc, Begin{DisplayName: "Ada"})
	handle(t, svc, StartQuiz{})
	handle(t, svc, SubmitAnswer{Text: "4"})

	out := handle(t, svc, RequestStats{})
	if out.Stats == nil {
		t.Fatal("expected stats projection")
	}
	st := out.Stats
	if st.Points != 5 || st.LessonsCompleted != 1 || st.TotalLessons != 3 {
		t.Errorf("stats = %+v", st)
	}
	// Begin, StartQuiz, SubmitAnswer landed before this event.
	if st.ActivityCount != 3 {
		t.Errorf("activity count = %d, want 3", st.ActivityCount)
	}
	if !strings.Contains(out.Text, "Points: 5") {
		t.Errorf("text = %q", out.Text)
	}
}

func TestStateReflectsOpenQuiz(t *testing.T) {
	svc, _, _ := newTestService(t)

	handle(t, svc, Begin{})
	handle(t, svc, StartQuiz{})

	// Reading stats mid-quiz must not hide the open quiz from the caller.
	out := handle(t, svc, RequestStats{})
	if out.State != StateAwaitingAnswer {
		t.Errorf("stats state = %q, want awaiting_answer", out.State)
	}

	out = handle(t, svc, ViewLesson{ID: "decorators"})
	if out.State != StateAwaitingAnswer {
		t.Errorf("rejection state = %q, want awaiting_answer", out.State)
	}

	// The quiz is still gradeable afterwards.
	out = handle(t, svc, SubmitAnswer{Text: "4"})
	if out.State != StateLessonPassed {
		t.Errorf("submit state = %q, want lesson_passed", out.State)
	}
}

func TestViewPreviousWithUnknownCurrentLesson(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{})
	// Simulate a record written against a curriculum that no longer has
	// this lesson.
	progress.records["u1"].CurrentLessonID = "decorators"

	out := handle(t, svc, ViewPrevious{})
	if out.Rejection != RejectLessonNotFound {
		t.Errorf("rejection = %q, want lesson_not_found", out.Rejection)
	}
	if !strings.Contains(out.Text, "missing from the curriculum") {
		t.Errorf("text = %q", out.Text)
	}
}

func TestViewLessonIsIdempotent(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{})
	first := handle(t, svc, ViewLesson{ID: "loops"})
	after1 := *progress.records["u1"]

	second := handle(t, svc, ViewLesson{ID: "loops"})
	after2 := *progress.records["u1"]

	if first.Text != second.Text || first.State != second.State {
		t.Error("repeated viewLesson produced different outcomes")
	}

	// Identical apart from activity bookkeeping.
	after2.ActivityCount = after1.ActivityCount
	after2.LastActivityAt = after1.LastActivityAt
	if after1 != after2 {
		t.Errorf("repeated viewLesson changed progress:\n%+v\n%+v", after1, after2)
	}
}

func TestRepassingNeverExceedsCatalogSize(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{})
	// Pass the first lesson three times via previous-lesson loops and a
	// restart.
	script := []Event{
		StartQuiz{}, SubmitAnswer{Text: "4"},
		ViewPrevious{}, StartQuiz{}, SubmitAnswer{Text: "4"},
		Begin{}, StartQuiz{}, SubmitAnswer{Text: "4"},
	}
	for _, ev := range script {
		handle(t, svc, ev)
		rec := progress.records["u1"]
		if rec.LessonsCompleted > svc.Catalog().Size() {
			t.Fatalf("lessons completed %d exceeds catalog size %d", rec.LessonsCompleted, svc.Catalog().Size())
		}
	}

	// Only the first lesson was ever passed.
	if got := progress.records["u1"].LessonsCompleted; got != 1 {
		t.Errorf("lessons completed = %d, want 1", got)
	}
	// Each pass still awards points.
	if got := progress.records["u1"].Points; got != 15 {
		t.Errorf("points = %d, want 15", got)
	}
}

func TestPointsAreMonotone(t *testing.T) {
	svc, progress, _ := newTestService(t)

	handle(t, svc, Begin{})
	lastPoints, lastCompleted := 0, 0

	script := []Event{
		StartQuiz{}, SubmitAnswer{Text: "wrong"},
		StartQuiz{}, SubmitAnswer{Text: "4"},
		ViewPrevious{}, StartQuiz{}, SubmitAnswer{Text: "4"},
		Begin{},
		StartQuiz{}, SubmitAnswer{Text: "4"},
	}
	for _, ev := range script {
		handle(t, svc, ev)
		rec := progress.records["u1"]
		if rec.Points < lastPoints || rec.LessonsCompleted < lastCompleted {
			t.Fatalf("counters decreased after %T: %+v", ev, rec)
		}
		lastPoints, lastCompleted = rec.Points, rec.LessonsCompleted
	}
}
