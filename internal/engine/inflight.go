package engine

import "sync"

// inFlightQuiz marks that a user has been shown the gating question for a
// lesson and an answer is expected next. Held in memory only, at most one
// per user, cleared on submission or replaced by starting another quiz.
// It does not survive a process restart.
type inFlightQuiz struct {
	LessonID string
}

// inFlightRegistry holds the per-user in-flight quiz markers. The
// dispatcher serializes events per user, but distinct users reach the
// registry concurrently, so access is mutex-guarded.
type inFlightRegistry struct {
	mu     sync.Mutex
	byUser map[string]inFlightQuiz
}

func newInFlightRegistry() *inFlightRegistry {
	return &inFlightRegistry{byUser: make(map[string]inFlightQuiz)}
}

func (r *inFlightRegistry) get(userID string) (inFlightQuiz, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.byUser[userID]
	return q, ok
}

func (r *inFlightRegistry) open(userID, lessonID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byUser[userID] = inFlightQuiz{LessonID: lessonID}
}

func (r *inFlightRegistry) clear(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byUser, userID)
}
