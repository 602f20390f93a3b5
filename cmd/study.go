package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/lexio/internal/enrich"
	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/session"
	"github.com/abhisek/lexio/internal/store"
	"github.com/abhisek/lexio/internal/tui"
	"github.com/abhisek/lexio/internal/vocab"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudy(cmd)
	},
}

func init() {
	studyCmd.Flags().StringP("mode", "m", "recalling", "Session mode: introducing, recalling, or practicing")
	studyCmd.Flags().BoolP("quick", "q", false, "Quick session (5 items instead of 20)")
}

// runStudy opens the store, builds a session, and launches the study UI.
func runStudy(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	mode, err := parseMode(flagString(cmd, "mode", "recalling"))
	if err != nil {
		return err
	}
	size := session.SizeComplete
	if quick, _ := cmd.Flags().GetBool("quick"); quick {
		size = session.SizeQuick
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	pool, err := st.ItemRepo().All(ctx)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	now := time.Now().UTC()
	items := session.SelectSession(pool, mode, size, now)
	if len(items) == 0 {
		fmt.Printf("Nothing to study in %s mode. Try `lexio import` or another mode.\n", mode)
		return nil
	}

	// Grading falls back to exact matching when no provider is configured.
	var provider llm.Provider
	if p, err := llm.NewProviderFromEnv(ctx, st.EventRepo()); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Translations will be graded by exact match only.")
	} else {
		provider = p
	}

	entryRepo := st.EntryRepo()
	cache := vocab.NewCache(func(ctx context.Context, id string) (*vocab.Entry, error) {
		return entryRepo.Get(ctx, id)
	})

	state := session.NewState(mode, size, items, now)
	recorder := session.NewRecorder(st.ItemRepo(), st.EventRepo())
	evaluator := enrich.NewEvaluator(provider, enrich.GradingConfig())

	summary, err := tui.Run(state, recorder, evaluator, cache)
	if err != nil {
		return err
	}

	fmt.Printf("Studied %d items: %d/%d correct, %d stage changes.\n",
		summary.ItemsStudied, summary.TotalCorrect, summary.TotalAttempts, summary.StageChanges)
	return nil
}

func parseMode(s string) (session.Mode, error) {
	switch session.Mode(s) {
	case session.ModeIntroducing, session.ModeRecalling, session.ModePracticing:
		return session.Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want introducing, recalling, or practicing)", s)
}

func flagString(cmd *cobra.Command, name, fallback string) string {
	if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
		return v
	}
	return fallback
}
