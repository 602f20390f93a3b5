package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/store"
	"github.com/abhisek/lexio/internal/vocab"
)

var addCmd = &cobra.Command{
	Use:   "add <term> <translation>",
	Short: "Add a single vocabulary entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		term, translation := args[0], args[1]

		tierFlag, _ := cmd.Flags().GetString("tier")
		tier, ok := srs.ParseTier(tierFlag)
		if !ok {
			return fmt.Errorf("unknown tier %q (want a1..c2)", tierFlag)
		}
		pos, _ := cmd.Flags().GetString("pos")
		topic, _ := cmd.Flags().GetString("topic")

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
		if existing, err := s.EntryRepo().ByTerm(ctx, term); err != nil {
			return fmt.Errorf("look up term: %w", err)
		} else if existing != nil {
			fmt.Printf("%q already exists.\n", term)
			return nil
		}

		now := time.Now().UTC()
		entry := &vocab.Entry{
			ID:           uuid.NewString(),
			Term:         term,
			Translation:  translation,
			PartOfSpeech: pos,
			Tier:         tier,
			Topic:        topic,
			CreatedAt:    now,
		}
		if err := s.EntryRepo().Create(ctx, entry); err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		item := srs.NewLearningItem(uuid.NewString(), entry.ID, now)
		item.Tier = tier
		if err := s.ItemRepo().Create(ctx, item); err != nil {
			return fmt.Errorf("create learning item: %w", err)
		}

		fmt.Printf("Added %q.\n", term)
		return nil
	},
}

func init() {
	addCmd.Flags().String("pos", "", "Part of speech (noun, verb, ...)")
	addCmd.Flags().String("tier", "", "CEFR tier (a1..c2)")
	addCmd.Flags().String("topic", "", "Topic label")
}
