package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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

		ctx := context.Background()
		items, err := s.ItemRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No vocabulary yet. Run `lexio import <file>` to get started.")
			return nil
		}

		now := time.Now().UTC()
		stageCounts := map[srs.Stage]int{}
		due := 0
		for _, it := range items {
			stageCounts[it.Stage]++
			if it.IsDue(now) {
				due++
			}
		}

		fmt.Println("Vocabulary")
		fmt.Println(strings.Repeat("─", 36))
		stages := []srs.Stage{srs.StageIntroducing, srs.StageRecalling, srs.StagePracticing, srs.StageMastered}
		for _, st := range stages {
			fmt.Printf("%-14s  %5d\n", st, stageCounts[st])
		}
		fmt.Println(strings.Repeat("─", 36))
		fmt.Printf("%-14s  %5d\n", "total", len(items))
		fmt.Printf("%-14s  %5d\n", "due today", due)

		total, correct, err := s.EventRepo().AttemptCounts(ctx)
		if err != nil {
			return fmt.Errorf("count attempts: %w", err)
		}
		if total > 0 {
			fmt.Println()
			fmt.Printf("Attempts: %d (%.0f%% correct)\n", total, 100*float64(correct)/float64(total))
		}
		return nil
	},
}
