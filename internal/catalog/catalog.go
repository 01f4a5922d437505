// Package catalog models courses, lessons and flashcards, and the score
// thresholds that unlock premium content.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// ErrLocked is matched by every *LockedError.
var ErrLocked = errors.New("content locked")

// LockedError reports premium content the learner has not unlocked yet.
type LockedError struct {
	ID            string
	RequiredScore int
	Score         int
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%s is locked: requires %d points, have %d", e.ID, e.RequiredScore, e.Score)
}

func (e *LockedError) Is(target error) bool { return target == ErrLocked }

// Course groups lessons.
type Course struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	OrderIndex    int    `json:"order_index"`
	Premium       bool   `json:"is_premium"`
	RequiredScore int    `json:"required_score"`
}

// Lesson is a playable sequence of exercises.
type Lesson struct {
	ID            string `json:"id"`
	CourseID      string `json:"course_id"`
	Title         string `json:"title"`
	OrderIndex    int    `json:"order_index"`
	Premium       bool   `json:"is_premium"`
	RequiredScore int    `json:"required_score"`
}

// Flashcard is one study card shown before a lesson's exercises.
type Flashcard struct {
	ID         string `json:"id"`
	LessonID   string `json:"lesson_id"`
	Front      string `json:"front_content"`
	Back       string `json:"back_content"`
	OrderIndex int    `json:"order_index"`
}

// Unlocked reports whether a learner with score may open the course.
func (c Course) Unlocked(score int) bool {
	return unlocked(c.Premium, c.RequiredScore, score)
}

// CheckUnlocked returns a *LockedError when the course is locked for score.
func (c Course) CheckUnlocked(score int) error {
	if c.Unlocked(score) {
		return nil
	}
	return &LockedError{ID: c.ID, RequiredScore: c.RequiredScore, Score: score}
}

// CheckPlayable refuses a lesson that is locked itself or sits in a locked
// course.
func CheckPlayable(c Course, l Lesson, score int) error {
	if err := c.CheckUnlocked(score); err != nil {
		return err
	}
	return l.CheckUnlocked(score)
}

// Unlocked reports whether a learner with score may play the lesson.
func (l Lesson) Unlocked(score int) bool {
	return unlocked(l.Premium, l.RequiredScore, score)
}

// CheckUnlocked returns a *LockedError when the lesson is locked for score.
func (l Lesson) CheckUnlocked(score int) error {
	if l.Unlocked(score) {
		return nil
	}
	return &LockedError{ID: l.ID, RequiredScore: l.RequiredScore, Score: score}
}

// PointsToUnlock returns how many more points score needs, or 0.
func (l Lesson) PointsToUnlock(score int) int {
	if l.Unlocked(score) {
		return 0
	}
	return l.RequiredScore - score
}

func unlocked(premium bool, required, score int) bool {
	return !premium || score >= required
}

// SortCourses orders courses by OrderIndex, then ID.
func SortCourses(cs []Course) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].OrderIndex != cs[j].OrderIndex {
			return cs[i].OrderIndex < cs[j].OrderIndex
		}
		return cs[i].ID < cs[j].ID
	})
}

// SortLessons orders lessons by OrderIndex, then ID.
func SortLessons(ls []Lesson) {
	sort.SliceStable(ls, func(i, j int) bool {
		if ls[i].OrderIndex != ls[j].OrderIndex {
			return ls[i].OrderIndex < ls[j].OrderIndex
		}
		return ls[i].ID < ls[j].ID
	})
}

// SortFlashcards orders cards by OrderIndex, keeping the input order of ties.
func SortFlashcards(fs []Flashcard) {
	sort.SliceStable(fs, func(i, j int) bool {
		return fs[i].OrderIndex < fs[j].OrderIndex
	})
}
