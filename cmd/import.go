package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devroad/devroad/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Load a catalog file into the local database",
	Long: `Import courses, lessons and exercises from a JSON catalog file.

Every exercise is validated before anything is written; a single malformed
exercise aborts the whole import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()

		file, err := store.ReadCatalogFile(f)
		if err != nil {
			return err
		}

		d, err := setup(cmd, setupOptions{})
		if err != nil {
			return err
		}
		defer d.Close()

		res, err := d.st.CatalogRepo().Import(cmd.Context(), file)
		if err != nil {
			return err
		}
		d.log.Info("catalog imported", "file", args[0], "courses", res.Courses, "lessons", res.Lessons, "flashcards", res.Flashcards, "exercises", res.Exercises)
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d courses, %d lessons, %d flashcards, %d exercises into %s\n",
			res.Courses, res.Lessons, res.Flashcards, res.Exercises, d.dbPath)
		return nil
	},
}
