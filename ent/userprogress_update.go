// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pytutor/ent/predicate"
	"github.com/abhisek/pytutor/ent/userprogress"
)

// UserProgressUpdate is the builder for updating UserProgress entities.
type UserProgressUpdate struct {
	config
	hooks    []Hook
	mutation *UserProgressMutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdate) Where(ps ...predicate.UserProgress) *UserProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *UserProgressUpdate) SetDisplayName(v string) *UserProgressUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableDisplayName(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetCurrentLessonID sets the "current_lesson_id" field.
func (_u *UserProgressUpdate) SetCurrentLessonID(v string) *UserProgressUpdate {
	_u.mutation.SetCurrentLessonID(v)
	return _u
}

// SetNillableCurrentLessonID sets the "current_lesson_id" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableCurrentLessonID(v *string) *UserProgressUpdate {
	if v != nil {
		_u.SetCurrentLessonID(*v)
	}
	return _u
}

// SetQuizPassed sets the "quiz_passed" field.
func (_u *UserProgressUpdate) SetQuizPassed(v bool) *UserProgressUpdate {
	_u.mutation.SetQuizPassed(v)
	return _u
}

// SetNillableQuizPassed sets the "quiz_passed" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableQuizPassed(v *bool) *UserProgressUpdate {
	if v != nil {
		_u.SetQuizPassed(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *UserProgressUpdate) SetPoints(v int) *UserProgressUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillablePoints(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *UserProgressUpdate) AddPoints(v int) *UserProgressUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetActivityCount sets the "activity_count" field.
func (_u *UserProgressUpdate) SetActivityCount(v int) *UserProgressUpdate {
	_u.mutation.ResetActivityCount()
	_u.mutation.SetActivityCount(v)
	return _u
}

// SetNillableActivityCount sets the "activity_count" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableActivityCount(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetActivityCount(*v)
	}
	return _u
}

// AddActivityCount adds value to the "activity_count" field.
func (_u *UserProgressUpdate) AddActivityCount(v int) *UserProgressUpdate {
	_u.mutation.AddActivityCount(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *UserProgressUpdate) SetLessonsCompleted(v int) *UserProgressUpdate {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableLessonsCompleted(v *int) *UserProgressUpdate {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *UserProgressUpdate) AddLessonsCompleted(v int) *UserProgressUpdate {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *UserProgressUpdate) SetLastActivityAt(v time.Time) *UserProgressUpdate {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *UserProgressUpdate) SetNillableLastActivityAt(v *time.Time) *UserProgressUpdate {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdate) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdate) check() error {
	if v, ok := _u.mutation.CurrentLessonID(); ok {
		if err := userprogress.CurrentLessonIDValidator(v); err != nil {
			return &ValidationError{Name: "current_lesson_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.current_lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := userprogress.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "UserProgress.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityCount(); ok {
		if err := userprogress.ActivityCountValidator(v); err != nil {
			return &ValidationError{Name: "activity_count", err: fmt.Errorf(`ent: validator failed for field "UserProgress.activity_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonsCompleted(); ok {
		if err := userprogress.LessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "lessons_completed", err: fmt.Errorf(`ent: validator failed for field "UserProgress.lessons_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(userprogress.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentLessonID(); ok {
		_spec.SetField(userprogress.FieldCurrentLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizPassed(); ok {
		_spec.SetField(userprogress.FieldQuizPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(userprogress.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(userprogress.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActivityCount(); ok {
		_spec.SetField(userprogress.FieldActivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActivityCount(); ok {
		_spec.AddField(userprogress.FieldActivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(userprogress.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(userprogress.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(userprogress.FieldLastActivityAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProgressUpdateOne is the builder for updating a single UserProgress entity.
type UserProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProgressMutation
}

// SetDisplayName sets the "display_name" field.
func (_u *UserProgressUpdateOne) SetDisplayName(v string) *UserProgressUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableDisplayName(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetCurrentLessonID sets the "current_lesson_id" field.
func (_u *UserProgressUpdateOne) SetCurrentLessonID(v string) *UserProgressUpdateOne {
	_u.mutation.SetCurrentLessonID(v)
	return _u
}

// SetNillableCurrentLessonID sets the "current_lesson_id" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableCurrentLessonID(v *string) *UserProgressUpdateOne {
	if v != nil {
		_u.SetCurrentLessonID(*v)
	}
	return _u
}

// SetQuizPassed sets the "quiz_passed" field.
func (_u *UserProgressUpdateOne) SetQuizPassed(v bool) *UserProgressUpdateOne {
	_u.mutation.SetQuizPassed(v)
	return _u
}

// SetNillableQuizPassed sets the "quiz_passed" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableQuizPassed(v *bool) *UserProgressUpdateOne {
	if v != nil {
		_u.SetQuizPassed(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *UserProgressUpdateOne) SetPoints(v int) *UserProgressUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillablePoints(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *UserProgressUpdateOne) AddPoints(v int) *UserProgressUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetActivityCount sets the "activity_count" field.
func (_u *UserProgressUpdateOne) SetActivityCount(v int) *UserProgressUpdateOne {
	_u.mutation.ResetActivityCount()
	_u.mutation.SetActivityCount(v)
	return _u
}

// SetNillableActivityCount sets the "activity_count" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableActivityCount(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetActivityCount(*v)
	}
	return _u
}

// AddActivityCount adds value to the "activity_count" field.
func (_u *UserProgressUpdateOne) AddActivityCount(v int) *UserProgressUpdateOne {
	_u.mutation.AddActivityCount(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *UserProgressUpdateOne) SetLessonsCompleted(v int) *UserProgressUpdateOne {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableLessonsCompleted(v *int) *UserProgressUpdateOne {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *UserProgressUpdateOne) AddLessonsCompleted(v int) *UserProgressUpdateOne {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_u *UserProgressUpdateOne) SetLastActivityAt(v time.Time) *UserProgressUpdateOne {
	_u.mutation.SetLastActivityAt(v)
	return _u
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_u *UserProgressUpdateOne) SetNillableLastActivityAt(v *time.Time) *UserProgressUpdateOne {
	if v != nil {
		_u.SetLastActivityAt(*v)
	}
	return _u
}

// Mutation returns the UserProgressMutation object of the builder.
func (_u *UserProgressUpdateOne) Mutation() *UserProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProgressUpdate builder.
func (_u *UserProgressUpdateOne) Where(ps ...predicate.UserProgress) *UserProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProgressUpdateOne) Select(field string, fields ...string) *UserProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProgress entity.
func (_u *UserProgressUpdateOne) Save(ctx context.Context) (*UserProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProgressUpdateOne) SaveX(ctx context.Context) *UserProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserProgressUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentLessonID(); ok {
		if err := userprogress.CurrentLessonIDValidator(v); err != nil {
			return &ValidationError{Name: "current_lesson_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.current_lesson_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := userprogress.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "UserProgress.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityCount(); ok {
		if err := userprogress.ActivityCountValidator(v); err != nil {
			return &ValidationError{Name: "activity_count", err: fmt.Errorf(`ent: validator failed for field "UserProgress.activity_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonsCompleted(); ok {
		if err := userprogress.LessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "lessons_completed", err: fmt.Errorf(`ent: validator failed for field "UserProgress.lessons_completed": %w`, err)}
		}
	}
	return nil
}

func (_u *UserProgressUpdateOne) sqlSave(ctx context.Context) (_node *UserProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userprogress.Table, userprogress.Columns, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprogress.FieldID)
		for _, f := range fields {
			if !userprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(userprogress.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentLessonID(); ok {
		_spec.SetField(userprogress.FieldCurrentLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizPassed(); ok {
		_spec.SetField(userprogress.FieldQuizPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(userprogress.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(userprogress.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActivityCount(); ok {
		_spec.SetField(userprogress.FieldActivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActivityCount(); ok {
		_spec.AddField(userprogress.FieldActivityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(userprogress.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(userprogress.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityAt(); ok {
		_spec.SetField(userprogress.FieldLastActivityAt, field.TypeTime, value)
	}
	_node = &UserProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
