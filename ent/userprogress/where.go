// Code generated by ent, DO NOT EDIT.

package userprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pytutor/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUserID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldDisplayName, v))
}

// CurrentLessonID applies equality check predicate on the "current_lesson_id" field. It's identical to CurrentLessonIDEQ.
func CurrentLessonID(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCurrentLessonID, v))
}

// QuizPassed applies equality check predicate on the "quiz_passed" field. It's identical to QuizPassedEQ.
func QuizPassed(v bool) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldQuizPassed, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldPoints, v))
}

// ActivityCount applies equality check predicate on the "activity_count" field. It's identical to ActivityCountEQ.
func ActivityCount(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldActivityCount, v))
}

// LessonsCompleted applies equality check predicate on the "lessons_completed" field. It's identical to LessonsCompletedEQ.
func LessonsCompleted(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLessonsCompleted, v))
}

// JoinedAt applies equality check predicate on the "joined_at" field. It's identical to JoinedAtEQ.
func JoinedAt(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldJoinedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLastActivityAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldUserID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldDisplayName, v))
}

// CurrentLessonIDEQ applies the EQ predicate on the "current_lesson_id" field.
func CurrentLessonIDEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldCurrentLessonID, v))
}

// CurrentLessonIDNEQ applies the NEQ predicate on the "current_lesson_id" field.
func CurrentLessonIDNEQ(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldCurrentLessonID, v))
}

// CurrentLessonIDIn applies the In predicate on the "current_lesson_id" field.
func CurrentLessonIDIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldCurrentLessonID, vs...))
}

// CurrentLessonIDNotIn applies the NotIn predicate on the "current_lesson_id" field.
func CurrentLessonIDNotIn(vs ...string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldCurrentLessonID, vs...))
}

// CurrentLessonIDGT applies the GT predicate on the "current_lesson_id" field.
func CurrentLessonIDGT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldCurrentLessonID, v))
}

// CurrentLessonIDGTE applies the GTE predicate on the "current_lesson_id" field.
func CurrentLessonIDGTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldCurrentLessonID, v))
}

// CurrentLessonIDLT applies the LT predicate on the "current_lesson_id" field.
func CurrentLessonIDLT(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldCurrentLessonID, v))
}

// CurrentLessonIDLTE applies the LTE predicate on the "current_lesson_id" field.
func CurrentLessonIDLTE(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldCurrentLessonID, v))
}

// CurrentLessonIDContains applies the Contains predicate on the "current_lesson_id" field.
func CurrentLessonIDContains(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContains(FieldCurrentLessonID, v))
}

// CurrentLessonIDHasPrefix applies the HasPrefix predicate on the "current_lesson_id" field.
func CurrentLessonIDHasPrefix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasPrefix(FieldCurrentLessonID, v))
}

// CurrentLessonIDHasSuffix applies the HasSuffix predicate on the "current_lesson_id" field.
func CurrentLessonIDHasSuffix(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldHasSuffix(FieldCurrentLessonID, v))
}

// CurrentLessonIDEqualFold applies the EqualFold predicate on the "current_lesson_id" field.
func CurrentLessonIDEqualFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEqualFold(FieldCurrentLessonID, v))
}

// CurrentLessonIDContainsFold applies the ContainsFold predicate on the "current_lesson_id" field.
func CurrentLessonIDContainsFold(v string) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldContainsFold(FieldCurrentLessonID, v))
}

// QuizPassedEQ applies the EQ predicate on the "quiz_passed" field.
func QuizPassedEQ(v bool) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldQuizPassed, v))
}

// QuizPassedNEQ applies the NEQ predicate on the "quiz_passed" field.
func QuizPassedNEQ(v bool) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldQuizPassed, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldPoints, v))
}

// ActivityCountEQ applies the EQ predicate on the "activity_count" field.
func ActivityCountEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldActivityCount, v))
}

// ActivityCountNEQ applies the NEQ predicate on the "activity_count" field.
func ActivityCountNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldActivityCount, v))
}

// ActivityCountIn applies the In predicate on the "activity_count" field.
func ActivityCountIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldActivityCount, vs...))
}

// ActivityCountNotIn applies the NotIn predicate on the "activity_count" field.
func ActivityCountNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldActivityCount, vs...))
}

// ActivityCountGT applies the GT predicate on the "activity_count" field.
func ActivityCountGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldActivityCount, v))
}

// ActivityCountGTE applies the GTE predicate on the "activity_count" field.
func ActivityCountGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldActivityCount, v))
}

// ActivityCountLT applies the LT predicate on the "activity_count" field.
func ActivityCountLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldActivityCount, v))
}

// ActivityCountLTE applies the LTE predicate on the "activity_count" field.
func ActivityCountLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldActivityCount, v))
}

// LessonsCompletedEQ applies the EQ predicate on the "lessons_completed" field.
func LessonsCompletedEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedNEQ applies the NEQ predicate on the "lessons_completed" field.
func LessonsCompletedNEQ(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedIn applies the In predicate on the "lessons_completed" field.
func LessonsCompletedIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedNotIn applies the NotIn predicate on the "lessons_completed" field.
func LessonsCompletedNotIn(vs ...int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedGT applies the GT predicate on the "lessons_completed" field.
func LessonsCompletedGT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldLessonsCompleted, v))
}

// LessonsCompletedGTE applies the GTE predicate on the "lessons_completed" field.
func LessonsCompletedGTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldLessonsCompleted, v))
}

// LessonsCompletedLT applies the LT predicate on the "lessons_completed" field.
func LessonsCompletedLT(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldLessonsCompleted, v))
}

// LessonsCompletedLTE applies the LTE predicate on the "lessons_completed" field.
func LessonsCompletedLTE(v int) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldLessonsCompleted, v))
}

// JoinedAtEQ applies the EQ predicate on the "joined_at" field.
func JoinedAtEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldJoinedAt, v))
}

// JoinedAtNEQ applies the NEQ predicate on the "joined_at" field.
func JoinedAtNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldJoinedAt, v))
}

// JoinedAtIn applies the In predicate on the "joined_at" field.
func JoinedAtIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldJoinedAt, vs...))
}

// JoinedAtNotIn applies the NotIn predicate on the "joined_at" field.
func JoinedAtNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldJoinedAt, vs...))
}

// JoinedAtGT applies the GT predicate on the "joined_at" field.
func JoinedAtGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldJoinedAt, v))
}

// JoinedAtGTE applies the GTE predicate on the "joined_at" field.
func JoinedAtGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldJoinedAt, v))
}

// JoinedAtLT applies the LT predicate on the "joined_at" field.
func JoinedAtLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldJoinedAt, v))
}

// JoinedAtLTE applies the LTE predicate on the "joined_at" field.
func JoinedAtLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldJoinedAt, v))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.UserProgress {
	return predicate.UserProgress(sql.FieldLTE(FieldLastActivityAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProgress) predicate.UserProgress {
	return predicate.UserProgress(sql.NotPredicates(p))
}
