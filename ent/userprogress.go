// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pytutor/ent/userprogress"
)

// UserProgress is the model entity for the UserProgress schema.
type UserProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Transport-level user identifier
	UserID string `json:"user_id,omitempty"`
	// Name shown in stats and on the certificate
	DisplayName string `json:"display_name,omitempty"`
	// Lesson the user is positioned on
	CurrentLessonID string `json:"current_lesson_id,omitempty"`
	// Whether the gating quiz for current_lesson_id was passed
	QuizPassed bool `json:"quiz_passed,omitempty"`
	// Lifetime points, never decreases
	Points int `json:"points,omitempty"`
	// Number of accepted events, never decreases
	ActivityCount int `json:"activity_count,omitempty"`
	// Furthest lesson position ever passed, never decreases
	LessonsCompleted int `json:"lessons_completed,omitempty"`
	// Set once when the row is created
	JoinedAt time.Time `json:"joined_at,omitempty"`
	// Updated on every accepted event
	LastActivityAt time.Time `json:"last_activity_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldQuizPassed:
			values[i] = new(sql.NullBool)
		case userprogress.FieldID, userprogress.FieldPoints, userprogress.FieldActivityCount, userprogress.FieldLessonsCompleted:
			values[i] = new(sql.NullInt64)
		case userprogress.FieldUserID, userprogress.FieldDisplayName, userprogress.FieldCurrentLessonID:
			values[i] = new(sql.NullString)
		case userprogress.FieldJoinedAt, userprogress.FieldLastActivityAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserProgress fields.
func (_m *UserProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case userprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case userprogress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case userprogress.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case userprogress.FieldCurrentLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_lesson_id", values[i])
			} else if value.Valid {
				_m.CurrentLessonID = value.String
			}
		case userprogress.FieldQuizPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_passed", values[i])
			} else if value.Valid {
				_m.QuizPassed = value.Bool
			}
		case userprogress.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case userprogress.FieldActivityCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field activity_count", values[i])
			} else if value.Valid {
				_m.ActivityCount = int(value.Int64)
			}
		case userprogress.FieldLessonsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lessons_completed", values[i])
			} else if value.Valid {
				_m.LessonsCompleted = int(value.Int64)
			}
		case userprogress.FieldJoinedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field joined_at", values[i])
			} else if value.Valid {
				_m.JoinedAt = value.Time
			}
		case userprogress.FieldLastActivityAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_at", values[i])
			} else if value.Valid {
				_m.LastActivityAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserProgress.
// This includes values selected through modifiers, order, etc.
func (_m *UserProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UserProgress.
// Note that you need to call UserProgress.Unwrap() before calling this method if this UserProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UserProgress) Update() *UserProgressUpdateOne {
	return NewUserProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UserProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UserProgress) Unwrap() *UserProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UserProgress) String() string {
	var builder strings.Builder
	builder.WriteString("UserProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("current_lesson_id=")
	builder.WriteString(_m.CurrentLessonID)
	builder.WriteString(", ")
	builder.WriteString("quiz_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizPassed))
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	builder.WriteString("activity_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActivityCount))
	builder.WriteString(", ")
	builder.WriteString("lessons_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonsCompleted))
	builder.WriteString(", ")
	builder.WriteString("joined_at=")
	builder.WriteString(_m.JoinedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_activity_at=")
	builder.WriteString(_m.LastActivityAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserProgresses is a parsable slice of UserProgress.
type UserProgresses []*UserProgress
