package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/lexio/internal/importer"
	"github.com/abhisek/lexio/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import vocabulary from an xlsx or CSV file",
	Long: `Import vocabulary from a spreadsheet. Expected columns, in order:
term, translation, part_of_speech, tier, topic. The first row is treated
as a header. Terms that already exist are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		im := importer.New(s.EntryRepo(), s.ItemRepo())
		res, err := im.Import(context.Background(), args[0], time.Now().UTC())
		if err != nil {
			return err
		}

		fmt.Printf("Processed %d rows: %d created, %d skipped.\n",
			res.Processed, res.Created, res.Skipped)
		for _, e := range res.Errors {
			fmt.Println("  !", e)
		}
		return nil
	},
}
