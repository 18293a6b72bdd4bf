package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pytutor/ent"
)

// attemptRepo implements AttemptRepo backed by ent and the global
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAttempt.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetLessonID(data.LessonID).
		SetQuestion(data.Question).
		SetCorrectAnswer(data.CorrectAnswer).
		SetSubmittedAnswer(data.SubmittedAnswer).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}
