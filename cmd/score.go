package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show or reset the total score",
}

var scoreShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the total score and lesson statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		score, err := d.scores.GetScore(ctx)
		if err != nil {
			return fmt.Errorf("read score: %w", err)
		}
		progress, err := d.st.ProgressRepo(d.cfg.User).All(ctx)
		if err != nil {
			return err
		}
		completed := 0
		for _, p := range progress {
			if p.Completed {
				completed++
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "User:              %s\n", d.cfg.User)
		fmt.Fprintf(out, "Score:             %d (%s)\n", score, d.cfg.ScoreBackend)
		fmt.Fprintf(out, "Lessons completed: %d\n", completed)

		lessonID, _ := cmd.Flags().GetString("lesson")
		if lessonID != "" {
			acc, n, err := d.st.AttemptRepo(d.cfg.User).Accuracy(ctx, lessonID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Accuracy on %s: %.0f%% over %d attempts\n", lessonID, acc*100, n)
		}
		return nil
	},
}

type resetter interface {
	Reset(ctx context.Context) error
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set the total score back to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		d, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		if r, ok := d.scores.(resetter); ok {
			err = r.Reset(ctx)
		} else {
			err = d.scores.SetScore(ctx, 0)
		}
		if err != nil {
			return fmt.Errorf("reset score: %w", err)
		}

		if all {
			if err := d.st.ProgressRepo(d.cfg.User).Reset(ctx); err != nil {
				return err
			}
			if err := d.st.AttemptRepo(d.cfg.User).Reset(ctx); err != nil {
				return err
			}
		}
		d.log.Info("score reset", "user", d.cfg.User, "all", all)
		fmt.Fprintln(cmd.OutOrStdout(), "Score reset.")
		return nil
	},
}

func init() {
	scoreShowCmd.Flags().String("lesson", "", "Also show answer accuracy on this lesson")
	scoreResetCmd.Flags().Bool("all", false, "Also clear lesson progress and the attempt log")
	scoreCmd.AddCommand(scoreShowCmd)
	scoreCmd.AddCommand(scoreResetCmd)
}
