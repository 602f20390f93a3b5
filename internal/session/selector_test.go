package session

import (
	"testing"
	"time"

	"github.com/abhisek/lexio/internal/srs"
)

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func poolItem(id string, stage srs.Stage) *srs.LearningItem {
	it := srs.NewLearningItem(id, "entry-"+id, testNow.AddDate(0, 0, -30))
	it.Stage = stage
	return it
}

func TestSelectSession_FiltersByMode(t *testing.T) {
	pool := []*srs.LearningItem{
		poolItem("a", srs.StageIntroducing),
		poolItem("b", srs.StageRecalling),
		poolItem("c", srs.StagePracticing),
		poolItem("d", srs.StageMastered),
	}

	tests := []struct {
		mode    Mode
		wantIDs []string
	}{
		{ModeIntroducing, []string{"a"}},
		{ModeRecalling, []string{"b"}},
		{ModePracticing, []string{"c", "d"}},
	}
	for _, tt := range tests {
		got := SelectSession(pool, tt.mode, SizeComplete, testNow)
		if len(got) != len(tt.wantIDs) {
			t.Errorf("mode %s: got %d items, want %d", tt.mode, len(got), len(tt.wantIDs))
			continue
		}
		gotIDs := map[string]bool{}
		for _, it := range got {
			gotIDs[it.ID] = true
		}
		for _, id := range tt.wantIDs {
			if !gotIDs[id] {
				t.Errorf("mode %s: missing item %s", tt.mode, id)
			}
		}
	}
}

func TestSelectSession_RanksByFreshPriority(t *testing.T) {
	overdue := poolItem("overdue", srs.StagePracticing)
	due := testNow.AddDate(0, 0, -5)
	overdue.NextDueDate = &due

	notDue := poolItem("not-due", srs.StagePracticing)
	future := testNow.AddDate(0, 0, 10)
	notDue.NextDueDate = &future
	// A stale stored score must not influence ranking.
	notDue.PriorityScore = 100

	got := SelectSession([]*srs.LearningItem{notDue, overdue}, ModePracticing, SizeQuick, testNow)
	if len(got) != 2 || got[0].ID != "overdue" {
		t.Errorf("expected overdue item first, got %v", ids(got))
	}
}

func TestSelectSession_QuickCapsAtFive(t *testing.T) {
	var pool []*srs.LearningItem
	for i := 0; i < 12; i++ {
		pool = append(pool, poolItem(string(rune('a'+i)), srs.StageRecalling))
	}
	got := SelectSession(pool, ModeRecalling, SizeQuick, testNow)
	if len(got) != 5 {
		t.Errorf("got %d items, want 5", len(got))
	}
}

func TestSelectSession_CompleteCapsAtTwenty(t *testing.T) {
	var pool []*srs.LearningItem
	for i := 0; i < 30; i++ {
		pool = append(pool, poolItem(string(rune('a'+i)), srs.StageRecalling))
	}
	got := SelectSession(pool, ModeRecalling, SizeComplete, testNow)
	if len(got) != 20 {
		t.Errorf("got %d items, want 20", len(got))
	}
}

func TestSelectSession_FewerEligibleThanCap(t *testing.T) {
	pool := []*srs.LearningItem{
		poolItem("a", srs.StageRecalling),
		poolItem("b", srs.StageRecalling),
	}
	got := SelectSession(pool, ModeRecalling, SizeQuick, testNow)
	if len(got) != 2 {
		t.Errorf("got %d items, want 2", len(got))
	}
}

func TestSelectSession_EmptyPool(t *testing.T) {
	got := SelectSession(nil, ModeIntroducing, SizeQuick, testNow)
	if len(got) != 0 {
		t.Errorf("got %d items, want 0", len(got))
	}
}

func TestSelectSession_TiesPreservePoolOrder(t *testing.T) {
	// Identical items score identically; the stable sort keeps pool order.
	pool := []*srs.LearningItem{
		poolItem("first", srs.StageRecalling),
		poolItem("second", srs.StageRecalling),
		poolItem("third", srs.StageRecalling),
	}
	got := SelectSession(pool, ModeRecalling, SizeQuick, testNow)
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
}

func TestSelectSession_DuplicateIDsScoreIndependently(t *testing.T) {
	// Two pool entries sharing an ID must each rank on their own state,
	// not alias a single score.
	overdue := poolItem("dup", srs.StagePracticing)
	due := testNow.AddDate(0, 0, -5)
	overdue.NextDueDate = &due

	notDue := poolItem("dup", srs.StagePracticing)
	future := testNow.AddDate(0, 0, 10)
	notDue.NextDueDate = &future

	got := SelectSession([]*srs.LearningItem{notDue, overdue}, ModePracticing, SizeQuick, testNow)
	if len(got) != 2 || got[0] != overdue {
		t.Errorf("expected the overdue duplicate first, got %v", ids(got))
	}
}

func ids(items []*srs.LearningItem) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
