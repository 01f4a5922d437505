package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "devroad",
	Short: "Learn programming one lesson at a time",
	Long:  "devroad is a terminal client for bite-sized programming lessons with scored exercises.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, "")
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides DEVROAD_DB env var)")
	flags.String("user", "", "Learner id the score and progress belong to")
	flags.String("lang", "", "Interface language (en, fr)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Write logs to this file")
	flags.String("remote-url", "", "Load the catalog from this backend instead of the local database")
	flags.String("score-backend", "", "Where the total score is kept: sqlite, redis or memory")
	flags.Duration("feedback-delay", 0, "How long a verdict stays on screen (default 1.5s)")
	flags.Bool("strict-drag-drop", false, "Require every drag-and-drop item on its own target")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newVersionCmd())
}
