package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/pytutor/ent"
	"github.com/abhisek/pytutor/ent/userprogress"
)

// progressRepo implements ProgressRepo backed by ent.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, userID, firstLessonID string) (*Progress, error) {
	row, err := r.client.UserProgress.Query().
		Where(userprogress.UserID(userID)).
		Only(ctx)
	if err == nil {
		return fromEnt(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query progress for %q: %w", userID, err)
	}

	// First contact: durably create the default record so concurrent
	// readers see a consistent baseline.
	now := time.Now().UTC()
	row, err = r.client.UserProgress.Create().
		SetUserID(userID).
		SetCurrentLessonID(firstLessonID).
		SetJoinedAt(now).
		SetLastActivityAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create progress for %q: %w", userID, err)
	}
	return fromEnt(row), nil
}

func (r *progressRepo) Save(ctx context.Context, p *Progress) error {
	n, err := r.client.UserProgress.Update().
		Where(userprogress.UserID(p.UserID)).
		SetDisplayName(p.DisplayName).
		SetCurrentLessonID(p.CurrentLessonID).
		SetQuizPassed(p.QuizPassed).
		SetPoints(p.Points).
		SetActivityCount(p.ActivityCount).
		SetLessonsCompleted(p.LessonsCompleted).
		SetLastActivityAt(p.LastActivityAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress for %q: %w", p.UserID, err)
	}
	if n == 0 {
		return fmt.Errorf("save progress for %q: record missing", p.UserID)
	}
	return nil
}

func (r *progressRepo) All(ctx context.Context) ([]*Progress, error) {
	rows, err := r.client.UserProgress.Query().
		Order(ent.Desc(userprogress.FieldLastActivityAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all progress: %w", err)
	}
	out := make([]*Progress, len(rows))
	for i, row := range rows {
		out[i] = fromEnt(row)
	}
	return out, nil
}

// fromEnt maps the ent entity to the repo's domain struct.
func fromEnt(row *ent.UserProgress) *Progress {
	return &Progress{
		UserID:           row.UserID,
		DisplayName:      row.DisplayName,
		CurrentLessonID:  row.CurrentLessonID,
		QuizPassed:       row.QuizPassed,
		Points:           row.Points,
		ActivityCount:    row.ActivityCount,
		LessonsCompleted: row.LessonsCompleted,
		JoinedAt:         row.JoinedAt,
		LastActivityAt:   row.LastActivityAt,
	}
}
