// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/devroad/devroad/ent/attemptevent"
	"github.com/devroad/devroad/ent/course"
	"github.com/devroad/devroad/ent/exercise"
	"github.com/devroad/devroad/ent/flashcard"
	"github.com/devroad/devroad/ent/lesson"
	"github.com/devroad/devroad/ent/schema"
	"github.com/devroad/devroad/ent/sequence"
	"github.com/devroad/devroad/ent/userprogress"
	"github.com/devroad/devroad/ent/userscore"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventMixinFields0[2].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventMixinFields0[3].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescLessonID is the schema descriptor for lesson_id field.
	attempteventDescLessonID := attempteventFields[0].Descriptor()
	// attemptevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	attemptevent.LessonIDValidator = attempteventDescLessonID.Validators[0].(func(string) error)
	// attempteventDescExerciseID is the schema descriptor for exercise_id field.
	attempteventDescExerciseID := attempteventFields[1].Descriptor()
	// attemptevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	attemptevent.ExerciseIDValidator = attempteventDescExerciseID.Validators[0].(func(string) error)
	// attempteventDescKind is the schema descriptor for kind field.
	attempteventDescKind := attempteventFields[2].Descriptor()
	// attemptevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	attemptevent.KindValidator = attempteventDescKind.Validators[0].(func(string) error)
	// attempteventDescPoints is the schema descriptor for points field.
	attempteventDescPoints := attempteventFields[4].Descriptor()
	// attemptevent.DefaultPoints holds the default value on creation for the points field.
	attemptevent.DefaultPoints = attempteventDescPoints.Default.(int)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescTitle is the schema descriptor for title field.
	courseDescTitle := courseFields[1].Descriptor()
	// course.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	course.TitleValidator = courseDescTitle.Validators[0].(func(string) error)
	// courseDescDescription is the schema descriptor for description field.
	courseDescDescription := courseFields[2].Descriptor()
	// course.DefaultDescription holds the default value on creation for the description field.
	course.DefaultDescription = courseDescDescription.Default.(string)
	// courseDescOrderIndex is the schema descriptor for order_index field.
	courseDescOrderIndex := courseFields[3].Descriptor()
	// course.DefaultOrderIndex holds the default value on creation for the order_index field.
	course.DefaultOrderIndex = courseDescOrderIndex.Default.(int)
	// courseDescIsPremium is the schema descriptor for is_premium field.
	courseDescIsPremium := courseFields[4].Descriptor()
	// course.DefaultIsPremium holds the default value on creation for the is_premium field.
	course.DefaultIsPremium = courseDescIsPremium.Default.(bool)
	// courseDescRequiredScore is the schema descriptor for required_score field.
	courseDescRequiredScore := courseFields[5].Descriptor()
	// course.DefaultRequiredScore holds the default value on creation for the required_score field.
	course.DefaultRequiredScore = courseDescRequiredScore.Default.(int)
	// course.RequiredScoreValidator is a validator for the "required_score" field. It is called by the builders before save.
	course.RequiredScoreValidator = courseDescRequiredScore.Validators[0].(func(int) error)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.IDValidator is a validator for the "id" field. It is called by the builders before save.
	course.IDValidator = courseDescID.Validators[0].(func(string) error)
	exerciseFields := schema.Exercise{}.Fields()
	_ = exerciseFields
	// exerciseDescExerciseID is the schema descriptor for exercise_id field.
	exerciseDescExerciseID := exerciseFields[0].Descriptor()
	// exercise.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	exercise.ExerciseIDValidator = exerciseDescExerciseID.Validators[0].(func(string) error)
	// exerciseDescLessonID is the schema descriptor for lesson_id field.
	exerciseDescLessonID := exerciseFields[1].Descriptor()
	// exercise.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	exercise.LessonIDValidator = exerciseDescLessonID.Validators[0].(func(string) error)
	// exerciseDescKind is the schema descriptor for kind field.
	exerciseDescKind := exerciseFields[2].Descriptor()
	// exercise.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	exercise.KindValidator = exerciseDescKind.Validators[0].(func(string) error)
	// exerciseDescQuestion is the schema descriptor for question field.
	exerciseDescQuestion := exerciseFields[3].Descriptor()
	// exercise.DefaultQuestion holds the default value on creation for the question field.
	exercise.DefaultQuestion = exerciseDescQuestion.Default.(string)
	// exerciseDescData is the schema descriptor for data field.
	exerciseDescData := exerciseFields[4].Descriptor()
	// exercise.DataValidator is a validator for the "data" field. It is called by the builders before save.
	exercise.DataValidator = exerciseDescData.Validators[0].(func(string) error)
	// exerciseDescAnswer is the schema descriptor for answer field.
	exerciseDescAnswer := exerciseFields[5].Descriptor()
	// exercise.DefaultAnswer holds the default value on creation for the answer field.
	exercise.DefaultAnswer = exerciseDescAnswer.Default.(string)
	// exerciseDescPoints is the schema descriptor for points field.
	exerciseDescPoints := exerciseFields[6].Descriptor()
	// exercise.DefaultPoints holds the default value on creation for the points field.
	exercise.DefaultPoints = exerciseDescPoints.Default.(int)
	// exercise.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	exercise.PointsValidator = exerciseDescPoints.Validators[0].(func(int) error)
	// exerciseDescOrderIndex is the schema descriptor for order_index field.
	exerciseDescOrderIndex := exerciseFields[7].Descriptor()
	// exercise.DefaultOrderIndex holds the default value on creation for the order_index field.
	exercise.DefaultOrderIndex = exerciseDescOrderIndex.Default.(int)
	flashcardFields := schema.Flashcard{}.Fields()
	_ = flashcardFields
	// flashcardDescCardID is the schema descriptor for card_id field.
	flashcardDescCardID := flashcardFields[0].Descriptor()
	// flashcard.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	flashcard.CardIDValidator = flashcardDescCardID.Validators[0].(func(string) error)
	// flashcardDescLessonID is the schema descriptor for lesson_id field.
	flashcardDescLessonID := flashcardFields[1].Descriptor()
	// flashcard.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	flashcard.LessonIDValidator = flashcardDescLessonID.Validators[0].(func(string) error)
	// flashcardDescFrontContent is the schema descriptor for front_content field.
	flashcardDescFrontContent := flashcardFields[2].Descriptor()
	// flashcard.FrontContentValidator is a validator for the "front_content" field. It is called by the builders before save.
	flashcard.FrontContentValidator = flashcardDescFrontContent.Validators[0].(func(string) error)
	// flashcardDescBackContent is the schema descriptor for back_content field.
	flashcardDescBackContent := flashcardFields[3].Descriptor()
	// flashcard.DefaultBackContent holds the default value on creation for the back_content field.
	flashcard.DefaultBackContent = flashcardDescBackContent.Default.(string)
	// flashcardDescOrderIndex is the schema descriptor for order_index field.
	flashcardDescOrderIndex := flashcardFields[4].Descriptor()
	// flashcard.DefaultOrderIndex holds the default value on creation for the order_index field.
	flashcard.DefaultOrderIndex = flashcardDescOrderIndex.Default.(int)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescCourseID is the schema descriptor for course_id field.
	lessonDescCourseID := lessonFields[1].Descriptor()
	// lesson.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lesson.CourseIDValidator = lessonDescCourseID.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[2].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
	// lessonDescOrderIndex is the schema descriptor for order_index field.
	lessonDescOrderIndex := lessonFields[3].Descriptor()
	// lesson.DefaultOrderIndex holds the default value on creation for the order_index field.
	lesson.DefaultOrderIndex = lessonDescOrderIndex.Default.(int)
	// lessonDescIsPremium is the schema descriptor for is_premium field.
	lessonDescIsPremium := lessonFields[4].Descriptor()
	// lesson.DefaultIsPremium holds the default value on creation for the is_premium field.
	lesson.DefaultIsPremium = lessonDescIsPremium.Default.(bool)
	// lessonDescRequiredScore is the schema descriptor for required_score field.
	lessonDescRequiredScore := lessonFields[5].Descriptor()
	// lesson.DefaultRequiredScore holds the default value on creation for the required_score field.
	lesson.DefaultRequiredScore = lessonDescRequiredScore.Default.(int)
	// lesson.RequiredScoreValidator is a validator for the "required_score" field. It is called by the builders before save.
	lesson.RequiredScoreValidator = lessonDescRequiredScore.Validators[0].(func(int) error)
	// lessonDescID is the schema descriptor for id field.
	lessonDescID := lessonFields[0].Descriptor()
	// lesson.IDValidator is a validator for the "id" field. It is called by the builders before save.
	lesson.IDValidator = lessonDescID.Validators[0].(func(string) error)
	sequenceFields := schema.Sequence{}.Fields()
	_ = sequenceFields
	// sequenceDescNextVal is the schema descriptor for next_val field.
	sequenceDescNextVal := sequenceFields[1].Descriptor()
	// sequence.DefaultNextVal holds the default value on creation for the next_val field.
	sequence.DefaultNextVal = sequenceDescNextVal.Default.(int64)
	// sequenceDescID is the schema descriptor for id field.
	sequenceDescID := sequenceFields[0].Descriptor()
	// sequence.IDValidator is a validator for the "id" field. It is called by the builders before save.
	sequence.IDValidator = sequenceDescID.Validators[0].(func(string) error)
	userprogressFields := schema.UserProgress{}.Fields()
	_ = userprogressFields
	// userprogressDescUserID is the schema descriptor for user_id field.
	userprogressDescUserID := userprogressFields[0].Descriptor()
	// userprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprogress.UserIDValidator = userprogressDescUserID.Validators[0].(func(string) error)
	// userprogressDescLessonID is the schema descriptor for lesson_id field.
	userprogressDescLessonID := userprogressFields[1].Descriptor()
	// userprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	userprogress.LessonIDValidator = userprogressDescLessonID.Validators[0].(func(string) error)
	// userprogressDescCompleted is the schema descriptor for completed field.
	userprogressDescCompleted := userprogressFields[2].Descriptor()
	// userprogress.DefaultCompleted holds the default value on creation for the completed field.
	userprogress.DefaultCompleted = userprogressDescCompleted.Default.(bool)
	// userprogressDescScore is the schema descriptor for score field.
	userprogressDescScore := userprogressFields[3].Descriptor()
	// userprogress.DefaultScore holds the default value on creation for the score field.
	userprogress.DefaultScore = userprogressDescScore.Default.(int)
	// userprogressDescUpdatedAt is the schema descriptor for updated_at field.
	userprogressDescUpdatedAt := userprogressFields[4].Descriptor()
	// userprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprogress.DefaultUpdatedAt = userprogressDescUpdatedAt.Default.(func() time.Time)
	// userprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprogress.UpdateDefaultUpdatedAt = userprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	userscoreFields := schema.UserScore{}.Fields()
	_ = userscoreFields
	// userscoreDescUserID is the schema descriptor for user_id field.
	userscoreDescUserID := userscoreFields[0].Descriptor()
	// userscore.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userscore.UserIDValidator = userscoreDescUserID.Validators[0].(func(string) error)
	// userscoreDescScore is the schema descriptor for score field.
	userscoreDescScore := userscoreFields[1].Descriptor()
	// userscore.DefaultScore holds the default value on creation for the score field.
	userscore.DefaultScore = userscoreDescScore.Default.(int)
	// userscoreDescUpdatedAt is the schema descriptor for updated_at field.
	userscoreDescUpdatedAt := userscoreFields[2].Descriptor()
	// userscore.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userscore.DefaultUpdatedAt = userscoreDescUpdatedAt.Default.(func() time.Time)
	// userscore.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userscore.UpdateDefaultUpdatedAt = userscoreDescUpdatedAt.UpdateDefault.(func() time.Time)
}
