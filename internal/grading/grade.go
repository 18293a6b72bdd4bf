// Package grading evaluates submitted answers against a lesson's gating
// question. Grading is a pure function: no persistence, no side effects.
package grading

import (
	"strconv"
	"strings"

	"github.com/abhisek/pytutor/internal/curriculum"
)

// Grade compares a submitted answer against the question's canonical
// answer and returns true if it is accepted.
//
// Comparison rules:
//   - Whitespace is trimmed, comparison is case-insensitive.
//   - Choice questions accept an option label or its 1-based index, and
//     are correct when the selected option equals the canonical answer.
//   - Free-text questions accept any submission that contains the
//     normalized canonical answer as a substring. This leniency is a
//     documented policy: natural-language answers vary in phrasing, so
//     "a for loop" is accepted for the answer "for". It also means "4"
//     is accepted inside "44".
func Grade(q curriculum.Question, submitted string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}

	if q.Mode == curriculum.ModeChoice {
		return gradeChoice(q, submitted)
	}
	return gradeFreeText(q, submitted)
}

// gradeChoice checks the submission against the enumerated option labels.
func gradeChoice(q curriculum.Question, submitted string) bool {
	// Try matching by 1-based index.
	if idx, err := strconv.Atoi(submitted); err == nil && idx >= 1 && idx <= len(q.Options) {
		return strings.EqualFold(
			strings.TrimSpace(q.Options[idx-1]),
			strings.TrimSpace(q.Answer),
		)
	}

	// Match by label (case-insensitive). The submission must name an
	// actual option; arbitrary text containing the answer is not enough.
	for _, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), submitted) {
			return strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(q.Answer))
		}
	}
	return false
}

// gradeFreeText checks containment of the normalized canonical answer in
// the normalized submission.
func gradeFreeText(q curriculum.Question, submitted string) bool {
	return strings.Contains(normalize(submitted), normalize(q.Answer))
}

// normalize lower-cases and trims an answer for comparison.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
