package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/lexio/internal/enrich"
	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/store"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Generate definitions, examples, and mnemonics for entries that lack them",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("enrichment needs an LLM provider: %w", err)
		}

		entries, err := s.EntryRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("load entries: %w", err)
		}

		svc := enrich.NewService(provider, enrich.DefaultConfig())
		done := 0
		for _, e := range entries {
			if e.Enriched() {
				continue
			}
			if limit > 0 && done >= limit {
				break
			}

			en, err := svc.Enrich(ctx, e)
			if err != nil {
				fmt.Printf("  ! %s: %v\n", e.Term, err)
				continue
			}
			if err := s.EntryRepo().SaveEnrichment(ctx, e.ID, en.Definition, en.Examples, en.Mnemonic); err != nil {
				return fmt.Errorf("save enrichment for %q: %w", e.Term, err)
			}
			fmt.Printf("  ✓ %s\n", e.Term)
			done++
		}

		if done == 0 {
			fmt.Println("All entries are already enriched.")
		} else {
			fmt.Printf("Enriched %d entries.\n", done)
		}
		return nil
	},
}

func init() {
	enrichCmd.Flags().IntP("limit", "n", 0, "Stop after this many entries (0 = no limit)")
}
