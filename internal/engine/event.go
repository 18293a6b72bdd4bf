package engine

// Event is the closed set of inbound session events. Transports construct
// a concrete event once at their boundary and pass it in; the engine never
// parses transport identifiers.
type Event interface {
	isEvent()
}

// Begin starts (or restarts) the curriculum from the first lesson.
type Begin struct {
	// DisplayName, when non-empty, is stored on the progress record for
	// stats and the certificate.
	DisplayName string
}

// ViewLesson positions the user on the lesson with the given id.
type ViewLesson struct {
	ID string
}

// ViewPrevious moves one lesson back in catalog order.
type ViewPrevious struct{}

// StartQuiz opens the gating quiz for the current lesson.
type StartQuiz struct{}

// SubmitAnswer submits an answer for the open quiz.
type SubmitAnswer struct {
	Text string
}

// RequestStats asks for a read-only projection of the user's progress.
type RequestStats struct{}

// RequestCertificate asks whether the user has earned the completion
// certificate, and for the artifact request if so.
type RequestCertificate struct{}

func (Begin) isEvent()              {}
func (ViewLesson) isEvent()         {}
func (ViewPrevious) isEvent()       {}
func (StartQuiz) isEvent()          {}
func (SubmitAnswer) isEvent()       {}
func (RequestStats) isEvent()       {}
func (RequestCertificate) isEvent() {}
