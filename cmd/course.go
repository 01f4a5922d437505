package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devroad/devroad/internal/catalog"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Browse courses",
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses with their lock state",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		courses, err := cat.ListCourses(ctx)
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		catalog.SortCourses(courses)
		score, err := d.scores.GetScore(ctx)
		if err != nil {
			return fmt.Errorf("read score: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-24s  %-36s  %s\n", "ID", "Title", "Access")
		fmt.Fprintln(out, strings.Repeat("─", 80))
		for _, c := range courses {
			fmt.Fprintf(out, "%-24s  %-36s  %s\n", c.ID, truncate(c.Title, 36),
				access(c.Premium, c.Unlocked(score), c.RequiredScore))
		}
		fmt.Fprintf(out, "\n%d courses, score %d\n", len(courses), score)
		return nil
	},
}

func init() {
	courseCmd.AddCommand(courseListCmd)
}

func access(premium, unlocked bool, required int) string {
	switch {
	case !premium:
		return "free"
	case unlocked:
		return "premium (unlocked)"
	default:
		return fmt.Sprintf("locked (%d points)", required)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
