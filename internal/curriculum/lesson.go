package curriculum

// Mode selects how a gating question is graded.
type Mode string

const (
	// ModeChoice grades against a small enumerated set of option labels,
	// case-insensitively. Options are also selectable by 1-based index.
	ModeChoice Mode = "choice"

	// ModeFreeText grades by substring containment of the normalized
	// canonical answer within the normalized submission. Deliberately
	// lenient: phrasing of natural-language answers varies.
	ModeFreeText Mode = "freetext"
)

// Question is the single gating question attached to a lesson.
type Question struct {
	// Prompt is the question text shown to the user.
	Prompt string

	// Mode selects the grading comparison.
	Mode Mode

	// Options are the accepted option labels for ModeChoice.
	// Empty for ModeFreeText.
	Options []string

	// Answer is the canonical correct answer. For ModeChoice it must
	// equal one of Options.
	Answer string
}

// Unit is one curriculum item: teaching content plus exactly one gating
// question. Units are immutable after catalog load.
type Unit struct {
	// ID is unique within the catalog and doubles as the ordering key
	// for persistence; position is defined by catalog order.
	ID string

	// Title is the human-readable lesson name.
	Title string

	// Content is the lesson body, opaque to the engine.
	Content string

	// Question gates progression past this lesson.
	Question Question
}
