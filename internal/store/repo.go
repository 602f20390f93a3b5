package store

import (
	"context"
	"time"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/vocab"
)

// EntryRepo manages vocabulary entries.
type EntryRepo interface {
	// Create stores a new entry.
	Create(ctx context.Context, e *vocab.Entry) error

	// Get returns an entry by ID, or nil if it does not exist.
	Get(ctx context.Context, id string) (*vocab.Entry, error)

	// ByTerm returns the entry with the given term, or nil if none exists.
	ByTerm(ctx context.Context, term string) (*vocab.Entry, error)

	// All returns every stored entry.
	All(ctx context.Context) ([]*vocab.Entry, error)

	// SaveEnrichment persists LLM-generated content onto an entry.
	SaveEnrichment(ctx context.Context, id string, definition string, examples []string, mnemonic string) error
}

// ItemRepo manages learning items (per-entry scheduling state).
type ItemRepo interface {
	// Create stores a new learning item.
	Create(ctx context.Context, it *srs.LearningItem) error

	// Get returns an item by ID, or nil if it does not exist.
	Get(ctx context.Context, id string) (*srs.LearningItem, error)

	// All returns the full item pool.
	All(ctx context.Context) ([]*srs.LearningItem, error)

	// Save persists an item's scheduling fields, counters, stage, and
	// priority after an attempt.
	Save(ctx context.Context, it *srs.LearningItem) error
}

// AttemptEventData records a single exercise attempt.
type AttemptEventData struct {
	SessionID     string
	ItemID        string
	EntryID       string
	Mode          string
	Correct       bool
	AttemptsTaken int
	Stage         string
	PriorityScore int
}

// StageEventData records a stage transition for audit and stats.
type StageEventData struct {
	ItemID    string
	FromStage string
	ToStage   string
	Trigger   string
	SessionID string
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendAttemptEvent records an exercise attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendStageEvent records a stage transition.
	AppendStageEvent(ctx context.Context, data StageEventData) error

	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentAttemptAccuracy returns accuracy over the item's last N attempts
	// along with how many attempts were found.
	RecentAttemptAccuracy(ctx context.Context, itemID string, lastN int) (float64, int, error)

	// LatestAttemptTime returns the timestamp of the item's most recent
	// attempt, or the zero time if it has never been attempted.
	LatestAttemptTime(ctx context.Context, itemID string) (time.Time, error)

	// AttemptCounts returns lifetime attempt totals across all items.
	AttemptCounts(ctx context.Context) (total int, correct int, err error)
}
