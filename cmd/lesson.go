package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/screen"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Browse lessons",
}

var lessonListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lessons of a course",
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, _ := cmd.Flags().GetString("course")

		d, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		cat, err := d.catalog()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		lessons, err := cat.ListLessons(ctx, courseID)
		if err != nil {
			return fmt.Errorf("list lessons: %w", err)
		}
		if len(lessons) == 0 {
			return fmt.Errorf("no lessons found for course %q", courseID)
		}
		catalog.SortLessons(lessons)

		score, err := d.scores.GetScore(ctx)
		if err != nil {
			return fmt.Errorf("read score: %w", err)
		}
		progress, err := d.st.ProgressRepo(d.cfg.User).All(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s  %-36s  %-20s  %s\n", "ID", "Title", "Access", "Best")
		fmt.Fprintln(out, strings.Repeat("─", 92))
		for _, l := range lessons {
			best := "-"
			if p, ok := progress[l.ID]; ok && p.Completed {
				best = fmt.Sprintf("%d", p.Score)
			}
			fmt.Fprintf(out, "%-24s  %-36s  %-20s  %s\n", l.ID, truncate(l.Title, 36),
				access(l.Premium, l.Unlocked(score), l.RequiredScore), best)
		}
		fmt.Fprintf(out, "\n%d lessons\n", len(lessons))
		return nil
	},
}

func init() {
	lessonListCmd.Flags().String("course", "", "Course ID (required)")
	_ = lessonListCmd.MarkFlagRequired("course")
	lessonCmd.AddCommand(lessonListCmd)
}

// findLesson looks lessonID up across every course and refuses a lesson
// the learner cannot open yet.
func findLesson(cmd *cobra.Command, d *deps, cat catalogSource, lessonID string) (catalog.Lesson, error) {
	ctx := cmd.Context()
	score, err := d.scores.GetScore(ctx)
	if err != nil {
		return catalog.Lesson{}, fmt.Errorf("read score: %w", err)
	}
	return playableLesson(ctx, cat, lessonID, score)
}

// playableLesson returns lessonID if neither it nor its course is locked
// for score.
func playableLesson(ctx context.Context, cat screen.Catalog, lessonID string, score int) (catalog.Lesson, error) {
	courses, err := cat.ListCourses(ctx)
	if err != nil {
		return catalog.Lesson{}, fmt.Errorf("list courses: %w", err)
	}
	for _, c := range courses {
		lessons, err := cat.ListLessons(ctx, c.ID)
		if err != nil {
			return catalog.Lesson{}, fmt.Errorf("list lessons of %s: %w", c.ID, err)
		}
		for _, l := range lessons {
			if l.ID != lessonID {
				continue
			}
			if err := catalog.CheckPlayable(c, l, score); err != nil {
				return catalog.Lesson{}, err
			}
			return l, nil
		}
	}
	return catalog.Lesson{}, fmt.Errorf("lesson %q not found", lessonID)
}
