// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pytutor/ent/llmrequestevent"
	"github.com/abhisek/pytutor/ent/quizattempt"
	"github.com/abhisek/pytutor/ent/schema"
	"github.com/abhisek/pytutor/ent/userprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescTimestamp is the schema descriptor for timestamp field.
	quizattemptDescTimestamp := quizattemptMixinFields0[1].Descriptor()
	// quizattempt.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizattempt.DefaultTimestamp = quizattemptDescTimestamp.Default.(func() time.Time)
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptFields[0].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescLessonID is the schema descriptor for lesson_id field.
	quizattemptDescLessonID := quizattemptFields[1].Descriptor()
	// quizattempt.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	quizattempt.LessonIDValidator = quizattemptDescLessonID.Validators[0].(func(string) error)
	// quizattemptDescQuestion is the schema descriptor for question field.
	quizattemptDescQuestion := quizattemptFields[2].Descriptor()
	// quizattempt.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	quizattempt.QuestionValidator = quizattemptDescQuestion.Validators[0].(func(string) error)
	// quizattemptDescCorrectAnswer is the schema descriptor for correct_answer field.
	quizattemptDescCorrectAnswer := quizattemptFields[3].Descriptor()
	// quizattempt.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	quizattempt.CorrectAnswerValidator = quizattemptDescCorrectAnswer.Validators[0].(func(string) error)
	userprogressFields := schema.UserProgress{}.Fields()
	_ = userprogressFields
	// userprogressDescUserID is the schema descriptor for user_id field.
	userprogressDescUserID := userprogressFields[0].Descriptor()
	// userprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprogress.UserIDValidator = userprogressDescUserID.Validators[0].(func(string) error)
	// userprogressDescDisplayName is the schema descriptor for display_name field.
	userprogressDescDisplayName := userprogressFields[1].Descriptor()
	// userprogress.DefaultDisplayName holds the default value on creation for the display_name field.
	userprogress.DefaultDisplayName = userprogressDescDisplayName.Default.(string)
	// userprogressDescCurrentLessonID is the schema descriptor for current_lesson_id field.
	userprogressDescCurrentLessonID := userprogressFields[2].Descriptor()
	// userprogress.CurrentLessonIDValidator is a validator for the "current_lesson_id" field. It is called by the builders before save.
	userprogress.CurrentLessonIDValidator = userprogressDescCurrentLessonID.Validators[0].(func(string) error)
	// userprogressDescQuizPassed is the schema descriptor for quiz_passed field.
	userprogressDescQuizPassed := userprogressFields[3].Descriptor()
	// userprogress.DefaultQuizPassed holds the default value on creation for the quiz_passed field.
	userprogress.DefaultQuizPassed = userprogressDescQuizPassed.Default.(bool)
	// userprogressDescPoints is the schema descriptor for points field.
	userprogressDescPoints := userprogressFields[4].Descriptor()
	// userprogress.DefaultPoints holds the default value on creation for the points field.
	userprogress.DefaultPoints = userprogressDescPoints.Default.(int)
	// userprogress.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	userprogress.PointsValidator = userprogressDescPoints.Validators[0].(func(int) error)
	// userprogressDescActivityCount is the schema descriptor for activity_count field.
	userprogressDescActivityCount := userprogressFields[5].Descriptor()
	// userprogress.DefaultActivityCount holds the default value on creation for the activity_count field.
	userprogress.DefaultActivityCount = userprogressDescActivityCount.Default.(int)
	// userprogress.ActivityCountValidator is a validator for the "activity_count" field. It is called by the builders before save.
	userprogress.ActivityCountValidator = userprogressDescActivityCount.Validators[0].(func(int) error)
	// userprogressDescLessonsCompleted is the schema descriptor for lessons_completed field.
	userprogressDescLessonsCompleted := userprogressFields[6].Descriptor()
	// userprogress.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	userprogress.DefaultLessonsCompleted = userprogressDescLessonsCompleted.Default.(int)
	// userprogress.LessonsCompletedValidator is a validator for the "lessons_completed" field. It is called by the builders before save.
	userprogress.LessonsCompletedValidator = userprogressDescLessonsCompleted.Validators[0].(func(int) error)
	// userprogressDescJoinedAt is the schema descriptor for joined_at field.
	userprogressDescJoinedAt := userprogressFields[7].Descriptor()
	// userprogress.DefaultJoinedAt holds the default value on creation for the joined_at field.
	userprogress.DefaultJoinedAt = userprogressDescJoinedAt.Default.(func() time.Time)
	// userprogressDescLastActivityAt is the schema descriptor for last_activity_at field.
	userprogressDescLastActivityAt := userprogressFields[8].Descriptor()
	// userprogress.DefaultLastActivityAt holds the default value on creation for the last_activity_at field.
	userprogress.DefaultLastActivityAt = userprogressDescLastActivityAt.Default.(func() time.Time)
}
