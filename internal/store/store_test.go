package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestEntryRepo_CreateGetByTerm(t *testing.T) {
	s := openTestStore(t)
	repo := s.EntryRepo()
	ctx := context.Background()

	e := &vocab.Entry{
		ID:          "e1",
		Term:        "haus",
		Translation: "house",
		Tier:        srs.TierA1,
		Topic:       "home",
		CreatedAt:   time.Now().UTC(),
	}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := repo.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got == nil || got.Term != "haus" || got.Tier != srs.TierA1 {
		t.Errorf("Get() = %+v", got)
	}

	byTerm, err := repo.ByTerm(ctx, "haus")
	if err != nil {
		t.Fatalf("ByTerm() error: %v", err)
	}
	if byTerm == nil || byTerm.ID != "e1" {
		t.Errorf("ByTerm() = %+v", byTerm)
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil || missing != nil {
		t.Errorf("Get(nope) = (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestEntryRepo_SaveEnrichment(t *testing.T) {
	s := openTestStore(t)
	repo := s.EntryRepo()
	ctx := context.Background()

	e := &vocab.Entry{ID: "e1", Term: "haus", Translation: "house", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	examples := []string{"Das Haus ist groß.", "Ich gehe nach Hause."}
	if err := repo.SaveEnrichment(ctx, "e1", "a building people live in", examples, "sounds like house"); err != nil {
		t.Fatalf("SaveEnrichment() error: %v", err)
	}

	got, err := repo.Get(ctx, "e1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Definition == "" || len(got.Examples) != 2 || got.Mnemonic == "" {
		t.Errorf("enrichment not persisted: %+v", got)
	}
	if !got.Enriched() {
		t.Error("Enriched() should be true after SaveEnrichment")
	}
}

func TestItemRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ItemRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	it := srs.NewLearningItem("i1", "e1", now)
	if err := repo.Create(ctx, it); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := repo.Get(ctx, "i1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.Stage != srs.StageIntroducing || got.EaseFactor != 2.5 || got.PriorityScore != 80 {
		t.Errorf("Get() = %+v", got)
	}
	if got.NextDueDate != nil || got.LastPracticedAt != nil {
		t.Error("optional timestamps should round-trip as nil")
	}

	due := now.AddDate(0, 0, 3)
	got.Stage = srs.StageRecalling
	got.EaseFactor = 2.3
	got.IntervalDays = 3
	got.Repetitions = 2
	got.NextDueDate = &due
	got.LastPracticedAt = &now
	got.CorrectCount = 2
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	saved, err := repo.Get(ctx, "i1")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if saved.Stage != srs.StageRecalling || saved.IntervalDays != 3 || saved.CorrectCount != 2 {
		t.Errorf("Save() did not persist: %+v", saved)
	}
	if saved.NextDueDate == nil || !saved.NextDueDate.Equal(due) {
		t.Errorf("NextDueDate = %v, want %v", saved.NextDueDate, due)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("All() returned %d items, want 1", len(all))
	}
}

func TestEventRepo_AttemptAccuracyAndCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	outcomes := []bool{true, true, false, true}
	for _, correct := range outcomes {
		err := repo.AppendAttemptEvent(ctx, AttemptEventData{
			SessionID:     "s1",
			ItemID:        "i1",
			EntryID:       "e1",
			Mode:          "recalling",
			Correct:       correct,
			AttemptsTaken: 1,
			Stage:         "recalling",
			PriorityScore: 60,
		})
		if err != nil {
			t.Fatalf("AppendAttemptEvent() error: %v", err)
		}
	}

	acc, n, err := repo.RecentAttemptAccuracy(ctx, "i1", 10)
	if err != nil {
		t.Fatalf("RecentAttemptAccuracy() error: %v", err)
	}
	if n != 4 || acc != 0.75 {
		t.Errorf("accuracy = %f over %d, want 0.75 over 4", acc, n)
	}

	// Limiting to the last 2 sees {false, true}.
	acc, n, err = repo.RecentAttemptAccuracy(ctx, "i1", 2)
	if err != nil {
		t.Fatalf("RecentAttemptAccuracy() error: %v", err)
	}
	if n != 2 || acc != 0.5 {
		t.Errorf("accuracy = %f over %d, want 0.5 over 2", acc, n)
	}

	total, correct, err := repo.AttemptCounts(ctx)
	if err != nil {
		t.Fatalf("AttemptCounts() error: %v", err)
	}
	if total != 4 || correct != 3 {
		t.Errorf("counts = %d/%d, want 4/3", correct, total)
	}

	latest, err := repo.LatestAttemptTime(ctx, "i1")
	if err != nil {
		t.Fatalf("LatestAttemptTime() error: %v", err)
	}
	if latest.IsZero() {
		t.Error("expected a non-zero latest attempt time")
	}

	never, err := repo.LatestAttemptTime(ctx, "unseen")
	if err != nil || !never.IsZero() {
		t.Errorf("LatestAttemptTime(unseen) = (%v, %v), want zero time", never, err)
	}
}

func TestEventRepo_StageAndLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendStageEvent(ctx, StageEventData{
		ItemID:    "i1",
		FromStage: "introducing",
		ToStage:   "recalling",
		Trigger:   "correct_attempt",
		SessionID: "s1",
	})
	if err != nil {
		t.Fatalf("AppendStageEvent() error: %v", err)
	}

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "enrichment",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    42,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("AppendLLMRequest() error: %v", err)
	}

	// Both event types draw from the same counter, so sequences are unique
	// across tables.
	var count int
	err = s.DB().QueryRow(
		`SELECT COUNT(*) FROM (
			SELECT sequence FROM stage_events
			UNION SELECT sequence FROM llm_request_events
		)`).Scan(&count)
	if err != nil {
		t.Fatalf("sequence query: %v", err)
	}
	if count != 2 {
		t.Errorf("distinct sequences = %d, want 2", count)
	}
}
