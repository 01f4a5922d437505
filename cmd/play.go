package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devroad/devroad/internal/app"
	"github.com/devroad/devroad/internal/audio"
	"github.com/devroad/devroad/internal/i18n"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/validate"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the course browser, or jump straight into a lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID, _ := cmd.Flags().GetString("lesson")
		return runPlay(cmd, lessonID)
	},
}

func init() {
	playCmd.Flags().String("lesson", "", "Start this lesson immediately")
}

// runPlay opens the store, builds dependencies, and launches the TUI.
func runPlay(cmd *cobra.Command, lessonID string) error {
	d, err := setup(cmd, setupOptions{logToFile: true})
	if err != nil {
		return err
	}
	defer d.Close()

	cat, err := d.catalog()
	if err != nil {
		return err
	}

	tr, err := i18n.New(d.cfg.Lang)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Language not available, using English:", err)
		tr = i18n.English()
	}

	ringer := &app.Ringer{}
	bell := audio.NewAsync(audio.NewBell(ringer.Ring), 0)
	defer bell.Close()

	progress := d.st.ProgressRepo(d.cfg.User)
	attempts := app.AttemptListener(d.st.AttemptRepo(d.cfg.User), d.log)
	cfg := session.Config{
		FeedbackDelay: d.cfg.FeedbackDelay,
		Policy:        validate.Policy{StrictDragDrop: d.cfg.StrictDragDrop},
	}

	env := &screen.Env{
		Catalog:  cat,
		Scores:   d.scores,
		Progress: progress,
		Tr:       tr,
		Log:      d.log,
		NewSession: func(l session.Listener) *session.Controller {
			return session.New(session.Options{
				Config:   cfg,
				Loader:   cat,
				Scores:   d.scores,
				Audio:    bell,
				Listener: session.Listeners(l, attempts),
				Progress: progress,
				Logger:   d.log,
			})
		},
	}

	opts := app.Options{Ringer: ringer}
	if lessonID != "" {
		lesson, err := findLesson(cmd, d, cat, lessonID)
		if err != nil {
			return err
		}
		opts.StartLesson = &lesson
	}

	d.log.Info("starting tui", "user", d.cfg.User, "remote", d.cfg.UsesRemote(), "score_backend", d.cfg.ScoreBackend)
	return app.Run(env, opts)
}
