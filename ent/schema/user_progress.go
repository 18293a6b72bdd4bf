package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProgress is the durable per-user snapshot of curriculum position and
// accumulated counters. One row per user, created lazily on first contact
// and never deleted.
type UserProgress struct {
	ent.Schema
}

func (UserProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Transport-level user identifier"),
		field.String("display_name").
			Default("").
			Comment("Name shown in stats and on the certificate"),
		field.String("current_lesson_id").
			NotEmpty().
			Comment("Lesson the user is positioned on"),
		field.Bool("quiz_passed").
			Default(false).
			Comment("Whether the gating quiz for current_lesson_id was passed"),
		field.Int("points").
			Default(0).
			NonNegative().
			Comment("Lifetime points, never decreases"),
		field.Int("activity_count").
			Default(0).
			NonNegative().
			Comment("Number of accepted events, never decreases"),
		field.Int("lessons_completed").
			Default(0).
			NonNegative().
			Comment("Furthest lesson position ever passed, never decreases"),
		field.Time("joined_at").
			Default(time.Now).
			Immutable().
			Comment("Set once when the row is created"),
		field.Time("last_activity_at").
			Default(time.Now).
			Comment("Updated on every accepted event"),
	}
}

func (UserProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("last_activity_at"),
	}
}
