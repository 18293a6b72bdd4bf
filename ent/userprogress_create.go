// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pytutor/ent/userprogress"
)

// UserProgressCreate is the builder for creating a UserProgress entity.
type UserProgressCreate struct {
	config
	mutation *UserProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UserProgressCreate) SetUserID(v string) *UserProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *UserProgressCreate) SetDisplayName(v string) *UserProgressCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableDisplayName(v *string) *UserProgressCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetCurrentLessonID sets the "current_lesson_id" field.
func (_c *UserProgressCreate) SetCurrentLessonID(v string) *UserProgressCreate {
	_c.mutation.SetCurrentLessonID(v)
	return _c
}

// SetQuizPassed sets the "quiz_passed" field.
func (_c *UserProgressCreate) SetQuizPassed(v bool) *UserProgressCreate {
	_c.mutation.SetQuizPassed(v)
	return _c
}

// SetNillableQuizPassed sets the "quiz_passed" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableQuizPassed(v *bool) *UserProgressCreate {
	if v != nil {
		_c.SetQuizPassed(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *UserProgressCreate) SetPoints(v int) *UserProgressCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillablePoints(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetActivityCount sets the "activity_count" field.
func (_c *UserProgressCreate) SetActivityCount(v int) *UserProgressCreate {
	_c.mutation.SetActivityCount(v)
	return _c
}

// SetNillableActivityCount sets the "activity_count" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableActivityCount(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetActivityCount(*v)
	}
	return _c
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_c *UserProgressCreate) SetLessonsCompleted(v int) *UserProgressCreate {
	_c.mutation.SetLessonsCompleted(v)
	return _c
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableLessonsCompleted(v *int) *UserProgressCreate {
	if v != nil {
		_c.SetLessonsCompleted(*v)
	}
	return _c
}

// SetJoinedAt sets the "joined_at" field.
func (_c *UserProgressCreate) SetJoinedAt(v time.Time) *UserProgressCreate {
	_c.mutation.SetJoinedAt(v)
	return _c
}

// SetNillableJoinedAt sets the "joined_at" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableJoinedAt(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetJoinedAt(*v)
	}
	return _c
}

// SetLastActivityAt sets the "last_activity_at" field.
func (_c *UserProgressCreate) SetLastActivityAt(v time.Time) *UserProgressCreate {
	_c.mutation.SetLastActivityAt(v)
	return _c
}

// SetNillableLastActivityAt sets the "last_activity_at" field if the given value is not nil.
func (_c *UserProgressCreate) SetNillableLastActivityAt(v *time.Time) *UserProgressCreate {
	if v != nil {
		_c.SetLastActivityAt(*v)
	}
	return _c
}

// Mutation returns the UserProgressMutation object of the builder.
func (_c *UserProgressCreate) Mutation() *UserProgressMutation {
	return _c.mutation
}

// Save creates the UserProgress in the database.
func (_c *UserProgressCreate) Save(ctx context.Context) (*UserProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserProgressCreate) SaveX(ctx context.Context) *UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserProgressCreate) defaults() {
	if _, ok := _c.mutation.DisplayName(); !ok {
		v := userprogress.DefaultDisplayName
		_c.mutation.SetDisplayName(v)
	}
	if _, ok := _c.mutation.QuizPassed(); !ok {
		v := userprogress.DefaultQuizPassed
		_c.mutation.SetQuizPassed(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := userprogress.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.ActivityCount(); !ok {
		v := userprogress.DefaultActivityCount
		_c.mutation.SetActivityCount(v)
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		v := userprogress.DefaultLessonsCompleted
		_c.mutation.SetLessonsCompleted(v)
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		v := userprogress.DefaultJoinedAt()
		_c.mutation.SetJoinedAt(v)
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		v := userprogress.DefaultLastActivityAt()
		_c.mutation.SetLastActivityAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := userprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "UserProgress.display_name"`)}
	}
	if _, ok := _c.mutation.CurrentLessonID(); !ok {
		return &ValidationError{Name: "current_lesson_id", err: errors.New(`ent: missing required field "UserProgress.current_lesson_id"`)}
	}
	if v, ok := _c.mutation.CurrentLessonID(); ok {
		if err := userprogress.CurrentLessonIDValidator(v); err != nil {
			return &ValidationError{Name: "current_lesson_id", err: fmt.Errorf(`ent: validator failed for field "UserProgress.current_lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizPassed(); !ok {
		return &ValidationError{Name: "quiz_passed", err: errors.New(`ent: missing required field "UserProgress.quiz_passed"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "UserProgress.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := userprogress.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "UserProgress.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityCount(); !ok {
		return &ValidationError{Name: "activity_count", err: errors.New(`ent: missing required field "UserProgress.activity_count"`)}
	}
	if v, ok := _c.mutation.ActivityCount(); ok {
		if err := userprogress.ActivityCountValidator(v); err != nil {
			return &ValidationError{Name: "activity_count", err: fmt.Errorf(`ent: validator failed for field "UserProgress.activity_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		return &ValidationError{Name: "lessons_completed", err: errors.New(`ent: missing required field "UserProgress.lessons_completed"`)}
	}
	if v, ok := _c.mutation.LessonsCompleted(); ok {
		if err := userprogress.LessonsCompletedValidator(v); err != nil {
			return &ValidationError{Name: "lessons_completed", err: fmt.Errorf(`ent: validator failed for field "UserProgress.lessons_completed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JoinedAt(); !ok {
		return &ValidationError{Name: "joined_at", err: errors.New(`ent: missing required field "UserProgress.joined_at"`)}
	}
	if _, ok := _c.mutation.LastActivityAt(); !ok {
		return &ValidationError{Name: "last_activity_at", err: errors.New(`ent: missing required field "UserProgress.last_activity_at"`)}
	}
	return nil
}

func (_c *UserProgressCreate) sqlSave(ctx context.Context) (*UserProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserProgressCreate) createSpec() (*UserProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &UserProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userprogress.Table, sqlgraph.NewFieldSpec(userprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(userprogress.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.CurrentLessonID(); ok {
		_spec.SetField(userprogress.FieldCurrentLessonID, field.TypeString, value)
		_node.CurrentLessonID = value
	}
	if value, ok := _c.mutation.QuizPassed(); ok {
		_spec.SetField(userprogress.FieldQuizPassed, field.TypeBool, value)
		_node.QuizPassed = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(userprogress.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.ActivityCount(); ok {
		_spec.SetField(userprogress.FieldActivityCount, field.TypeInt, value)
		_node.ActivityCount = value
	}
	if value, ok := _c.mutation.LessonsCompleted(); ok {
		_spec.SetField(userprogress.FieldLessonsCompleted, field.TypeInt, value)
		_node.LessonsCompleted = value
	}
	if value, ok := _c.mutation.JoinedAt(); ok {
		_spec.SetField(userprogress.FieldJoinedAt, field.TypeTime, value)
		_node.JoinedAt = value
	}
	if value, ok := _c.mutation.LastActivityAt(); ok {
		_spec.SetField(userprogress.FieldLastActivityAt, field.TypeTime, value)
		_node.LastActivityAt = value
	}
	return _node, _spec
}

// UserProgressCreateBulk is the builder for creating many UserProgress entities in bulk.
type UserProgressCreateBulk struct {
	config
	err      error
	builders []*UserProgressCreate
}

// Save creates the UserProgress entities in the database.
func (_c *UserProgressCreateBulk) Save(ctx context.Context) ([]*UserProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *UserProgressCreateBulk) SaveX(ctx context.Context) []*UserProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
