package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt records a single graded answer submission. Rows are
// append-only: written once, never mutated or deleted. The progression
// logic never reads them; they exist for audit and analytics.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Who submitted the answer"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson whose gating question was answered"),
		field.String("question").
			NotEmpty().
			Comment("The question prompt as shown"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("submitted_answer").
			Comment("What the user entered, verbatim"),
		field.Bool("correct").
			Comment("Grading result"),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("lesson_id"),
		index.Fields("correct"),
	}
}
