// Package session builds study sessions and records attempt outcomes
// against the learning item pool.
package session

import (
	"sort"
	"time"

	"github.com/abhisek/lexio/internal/srs"
)

// Mode selects which pipeline stages a session draws from.
type Mode string

const (
	ModeIntroducing Mode = "introducing"
	ModeRecalling   Mode = "recalling"
	ModePracticing  Mode = "practicing"
)

// Size is the requested session length.
type Size string

const (
	SizeQuick    Size = "quick"
	SizeComplete Size = "complete"
)

// ItemCount returns the maximum number of items for a session size.
func (s Size) ItemCount() int {
	if s == SizeComplete {
		return 20
	}
	return 5
}

// eligibleStages maps a session mode to the stages it draws from.
// Practicing sessions re-surface mastered items for maintenance practice.
func eligibleStages(mode Mode) map[srs.Stage]bool {
	switch mode {
	case ModeIntroducing:
		return map[srs.Stage]bool{srs.StageIntroducing: true}
	case ModeRecalling:
		return map[srs.Stage]bool{srs.StageRecalling: true}
	case ModePracticing:
		return map[srs.Stage]bool{srs.StagePracticing: true, srs.StageMastered: true}
	default:
		return map[srs.Stage]bool{}
	}
}

// SelectSession filters the pool to items eligible for the mode, ranks them
// by freshly computed priority, and returns at most the session-size cap.
// An empty result is valid and means nothing is available in this mode.
//
// Ties are broken by preserving pool order (stable sort), so callers that
// pass a deterministically ordered pool get deterministic sessions.
func SelectSession(pool []*srs.LearningItem, mode Mode, size Size, now time.Time) []*srs.LearningItem {
	eligible := eligibleStages(mode)

	// Stored scores may be stale; score the candidates fresh.
	type scoredItem struct {
		item  *srs.LearningItem
		score int
	}
	var ranked []scoredItem
	for _, it := range pool {
		if eligible[it.Stage] {
			ranked = append(ranked, scoredItem{item: it, score: srs.ComputePriority(it, now)})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := size.ItemCount()
	if len(ranked) < n {
		n = len(ranked)
	}
	picked := make([]*srs.LearningItem, 0, n)
	for _, r := range ranked[:n] {
		picked = append(picked, r.item)
	}
	return picked
}
