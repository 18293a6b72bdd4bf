// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userprogress type in the database.
	Label = "user_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldCurrentLessonID holds the string denoting the current_lesson_id field in the database.
	FieldCurrentLessonID = "current_lesson_id"
	// FieldQuizPassed holds the string denoting the quiz_passed field in the database.
	FieldQuizPassed = "quiz_passed"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// FieldActivityCount holds the string denoting the activity_count field in the database.
	FieldActivityCount = "activity_count"
	// FieldLessonsCompleted holds the string denoting the lessons_completed field in the database.
	FieldLessonsCompleted = "lessons_completed"
	// FieldJoinedAt holds the string denoting the joined_at field in the database.
	FieldJoinedAt = "joined_at"
	// FieldLastActivityAt holds the string denoting the last_activity_at field in the database.
	FieldLastActivityAt = "last_activity_at"
	// Table holds the table name of the userprogress in the database.
	Table = "user_progresses"
)

// Columns holds all SQL columns for userprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldDisplayName,
	FieldCurrentLessonID,
	FieldQuizPassed,
	FieldPoints,
	FieldActivityCount,
	FieldLessonsCompleted,
	FieldJoinedAt,
	FieldLastActivityAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultDisplayName holds the default value on creation for the "display_name" field.
	DefaultDisplayName string
	// CurrentLessonIDValidator is a validator for the "current_lesson_id" field. It is called by the builders before save.
	CurrentLessonIDValidator func(string) error
	// DefaultQuizPassed holds the default value on creation for the "quiz_passed" field.
	DefaultQuizPassed bool
	// DefaultPoints holds the default value on creation for the "points" field.
	DefaultPoints int
	// PointsValidator is a validator for the "points" field. It is called by the builders before save.
	PointsValidator func(int) error
	// DefaultActivityCount holds the default value on creation for the "activity_count" field.
	DefaultActivityCount int
	// ActivityCountValidator is a validator for the "activity_count" field. It is called by the builders before save.
	ActivityCountValidator func(int) error
	// DefaultLessonsCompleted holds the default value on creation for the "lessons_completed" field.
	DefaultLessonsCompleted int
	// LessonsCompletedValidator is a validator for the "lessons_completed" field. It is called by the builders before save.
	LessonsCompletedValidator func(int) error
	// DefaultJoinedAt holds the default value on creation for the "joined_at" field.
	DefaultJoinedAt func() time.Time
	// DefaultLastActivityAt holds the default value on creation for the "last_activity_at" field.
	DefaultLastActivityAt func() time.Time
)

// OrderOption defines the ordering options for the UserProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByCurrentLessonID orders the results by the current_lesson_id field.
func ByCurrentLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentLessonID, opts...).ToFunc()
}

// ByQuizPassed orders the results by the quiz_passed field.
func ByQuizPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizPassed, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

// ByActivityCount orders the results by the activity_count field.
func ByActivityCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityCount, opts...).ToFunc()
}

// ByLessonsCompleted orders the results by the lessons_completed field.
func ByLessonsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonsCompleted, opts...).ToFunc()
}

// ByJoinedAt orders the results by the joined_at field.
func ByJoinedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJoinedAt, opts...).ToFunc()
}

// ByLastActivityAt orders the results by the last_activity_at field.
func ByLastActivityAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityAt, opts...).ToFunc()
}
