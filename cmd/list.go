package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List vocabulary with learning state",
	RunE: func(cmd *cobra.Command, args []string) error {
		stageFilter, _ := cmd.Flags().GetString("stage")

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
			fmt.Println("No vocabulary yet.")
			return nil
		}

		entries, err := s.EntryRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("load entries: %w", err)
		}
		byID := make(map[string]string, len(entries))
		translations := make(map[string]string, len(entries))
		for _, e := range entries {
			byID[e.ID] = e.Term
			translations[e.ID] = e.Translation
		}

		// Rank by priority as of now, not the score stored at last review.
		now := time.Now().UTC()
		scores := make(map[string]int, len(items))
		for _, it := range items {
			scores[it.ID] = srs.ComputePriority(it, now)
		}
		sort.SliceStable(items, func(i, j int) bool {
			return scores[items[i].ID] > scores[items[j].ID]
		})

		fmt.Printf("%-20s  %-20s  %-12s  %-5s  %8s\n",
			"Term", "Translation", "Stage", "Tier", "Priority")
		fmt.Println(strings.Repeat("─", 74))
		for _, it := range items {
			if stageFilter != "" && string(it.Stage) != stageFilter {
				continue
			}
			fmt.Printf("%-20s  %-20s  %-12s  %-5s  %8d\n",
				truncate(byID[it.EntryID], 20),
				truncate(translations[it.EntryID], 20),
				it.Stage,
				it.Tier,
				scores[it.ID],
			)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("stage", "s", "", "Filter by stage (introducing, recalling, practicing, mastered)")
}
