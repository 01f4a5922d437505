package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/devroad/devroad/ent"
	"github.com/devroad/devroad/ent/course"
	entexercise "github.com/devroad/devroad/ent/exercise"
	"github.com/devroad/devroad/ent/flashcard"
	"github.com/devroad/devroad/ent/lesson"
	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
)

// CatalogRepo reads and writes courses, lessons, flashcards and exercises.
// It is also the local exercise loader of the session controller.
type CatalogRepo struct {
	client *ent.Client
}

// UpsertCourse inserts c or replaces the stored course with the same id.
func (r *CatalogRepo) UpsertCourse(ctx context.Context, c catalog.Course) error {
	return upsertCourse(ctx, r.client, c)
}

// UpsertLesson inserts l or replaces the stored lesson with the same id.
func (r *CatalogRepo) UpsertLesson(ctx context.Context, l catalog.Lesson) error {
	return upsertLesson(ctx, r.client, l)
}

// UpsertExercise inserts rec or replaces the exercise with the same id in
// the same lesson. The record is parsed first so malformed content never
// reaches the database.
func (r *CatalogRepo) UpsertExercise(ctx context.Context, rec exercise.Record) error {
	return upsertExercise(ctx, r.client, rec)
}

// UpsertFlashcard inserts fc or replaces the card with the same id in the
// same lesson.
func (r *CatalogRepo) UpsertFlashcard(ctx context.Context, fc catalog.Flashcard) error {
	return upsertFlashcard(ctx, r.client, fc)
}

func upsertCourse(ctx context.Context, client *ent.Client, c catalog.Course) error {
	err := client.Course.Create().
		SetID(c.ID).
		SetTitle(c.Title).
		SetDescription(c.Description).
		SetOrderIndex(c.OrderIndex).
		SetIsPremium(c.Premium).
		SetRequiredScore(c.RequiredScore).
		OnConflictColumns(course.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert course %s: %w", c.ID, err)
	}
	return nil
}

func upsertLesson(ctx context.Context, client *ent.Client, l catalog.Lesson) error {
	err := client.Lesson.Create().
		SetID(l.ID).
		SetCourseID(l.CourseID).
		SetTitle(l.Title).
		SetOrderIndex(l.OrderIndex).
		SetIsPremium(l.Premium).
		SetRequiredScore(l.RequiredScore).
		OnConflictColumns(lesson.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert lesson %s: %w", l.ID, err)
	}
	return nil
}

func upsertExercise(ctx context.Context, client *ent.Client, rec exercise.Record) error {
	if _, err := exercise.Parse(rec); err != nil {
		return err
	}
	err := client.Exercise.Create().
		SetExerciseID(rec.ID).
		SetLessonID(rec.LessonID).
		SetKind(rec.Type).
		SetQuestion(rec.Question).
		SetData(string(rec.Data)).
		SetAnswer(rec.Answer).
		SetPoints(rec.Points).
		SetOrderIndex(rec.OrderIndex).
		OnConflictColumns(entexercise.FieldLessonID, entexercise.FieldExerciseID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert exercise %s/%s: %w", rec.LessonID, rec.ID, err)
	}
	return nil
}

func upsertFlashcard(ctx context.Context, client *ent.Client, fc catalog.Flashcard) error {
	err := client.Flashcard.Create().
		SetCardID(fc.ID).
		SetLessonID(fc.LessonID).
		SetFrontContent(fc.Front).
		SetBackContent(fc.Back).
		SetOrderIndex(fc.OrderIndex).
		OnConflictColumns(flashcard.FieldLessonID, flashcard.FieldCardID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert flashcard %s/%s: %w", fc.LessonID, fc.ID, err)
	}
	return nil
}

// ListCourses returns every course ordered for display.
func (r *CatalogRepo) ListCourses(ctx context.Context) ([]catalog.Course, error) {
	rows, err := r.client.Course.Query().
		Order(ent.Asc(course.FieldOrderIndex), ent.Asc(course.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	out := make([]catalog.Course, 0, len(rows))
	for _, c := range rows {
		out = append(out, entCourseToCourse(c))
	}
	return out, nil
}

// GetCourse returns the course with id, or ErrNotFound.
func (r *CatalogRepo) GetCourse(ctx context.Context, id string) (catalog.Course, error) {
	c, err := r.client.Course.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return catalog.Course{}, fmt.Errorf("course %s: %w", id, ErrNotFound)
		}
		return catalog.Course{}, fmt.Errorf("query course %s: %w", id, err)
	}
	return entCourseToCourse(c), nil
}

// ListLessons returns the lessons of courseID ordered for display. An empty
// courseID lists every lesson.
func (r *CatalogRepo) ListLessons(ctx context.Context, courseID string) ([]catalog.Lesson, error) {
	q := r.client.Lesson.Query()
	if courseID != "" {
		q = q.Where(lesson.CourseID(courseID))
	}
	rows, err := q.
		Order(ent.Asc(lesson.FieldCourseID), ent.Asc(lesson.FieldOrderIndex), ent.Asc(lesson.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	out := make([]catalog.Lesson, 0, len(rows))
	for _, l := range rows {
		out = append(out, entLessonToLesson(l))
	}
	return out, nil
}

// GetLesson returns the lesson with id, or ErrNotFound.
func (r *CatalogRepo) GetLesson(ctx context.Context, id string) (catalog.Lesson, error) {
	l, err := r.client.Lesson.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return catalog.Lesson{}, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
		}
		return catalog.Lesson{}, fmt.Errorf("query lesson %s: %w", id, err)
	}
	return entLessonToLesson(l), nil
}

// ListFlashcards returns the cards of lessonID in presentation order.
func (r *CatalogRepo) ListFlashcards(ctx context.Context, lessonID string) ([]catalog.Flashcard, error) {
	rows, err := r.client.Flashcard.Query().
		Where(flashcard.LessonID(lessonID)).
		Order(ent.Asc(flashcard.FieldOrderIndex), ent.Asc(flashcard.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query flashcards: %w", err)
	}
	out := make([]catalog.Flashcard, 0, len(rows))
	for _, fc := range rows {
		out = append(out, catalog.Flashcard{
			ID:         fc.CardID,
			LessonID:   fc.LessonID,
			Front:      fc.FrontContent,
			Back:       fc.BackContent,
			OrderIndex: fc.OrderIndex,
		})
	}
	return out, nil
}

// ExerciseRecords returns the raw exercise rows of lessonID in stored order.
func (r *CatalogRepo) ExerciseRecords(ctx context.Context, lessonID string) ([]exercise.Record, error) {
	rows, err := r.client.Exercise.Query().
		Where(entexercise.LessonID(lessonID)).
		Order(ent.Asc(entexercise.FieldOrderIndex), ent.Asc(entexercise.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	out := make([]exercise.Record, 0, len(rows))
	for _, e := range rows {
		out = append(out, exercise.Record{
			ID:         e.ExerciseID,
			LessonID:   e.LessonID,
			Type:       e.Kind,
			Question:   e.Question,
			Data:       json.RawMessage(e.Data),
			Answer:     e.Answer,
			Points:     e.Points,
			OrderIndex: e.OrderIndex,
		})
	}
	return out, nil
}

// LoadExercises implements session.Loader on the local catalog.
func (r *CatalogRepo) LoadExercises(ctx context.Context, lessonID string) ([]exercise.Spec, error) {
	recs, err := r.ExerciseRecords(ctx, lessonID)
	if err != nil {
		return nil, &exercise.TransportError{Op: "load exercises from catalog", Err: err}
	}
	return exercise.ParseAll(recs)
}

// CountExercises returns the number of exercises per lesson.
func (r *CatalogRepo) CountExercises(ctx context.Context) (map[string]int, error) {
	var counts []struct {
		LessonID string `json:"lesson_id"`
		Count    int    `json:"count"`
	}
	err := r.client.Exercise.Query().
		GroupBy(entexercise.FieldLessonID).
		Aggregate(ent.Count()).
		Scan(ctx, &counts)
	if err != nil {
		return nil, fmt.Errorf("count exercises: %w", err)
	}
	out := make(map[string]int, len(counts))
	for _, c := range counts {
		out[c.LessonID] = c.Count
	}
	return out, nil
}

func entCourseToCourse(c *ent.Course) catalog.Course {
	return catalog.Course{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		OrderIndex:    c.OrderIndex,
		Premium:       c.IsPremium,
		RequiredScore: c.RequiredScore,
	}
}

func entLessonToLesson(l *ent.Lesson) catalog.Lesson {
	return catalog.Lesson{
		ID:            l.ID,
		CourseID:      l.CourseID,
		Title:         l.Title,
		OrderIndex:    l.OrderIndex,
		Premium:       l.IsPremium,
		RequiredScore: l.RequiredScore,
	}
}
