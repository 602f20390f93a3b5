package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexio/internal/srs"
)

// State tracks the runtime state of an active study session.
type State struct {
	// ID identifies this session in the event log.
	ID string

	// Mode and Size are the parameters the session was built with.
	Mode Mode
	Size Size

	// Items is the ranked selection being studied.
	Items []*srs.LearningItem

	// Index is the position of the current item within Items.
	Index int

	// TotalAttempts and TotalCorrect count attempts across the session.
	TotalAttempts int
	TotalCorrect  int

	// StageChanges counts items whose stage moved during the session.
	StageChanges int

	// StartedAt is when the session began.
	StartedAt time.Time
}

// NewState starts a session over the given selection.
func NewState(mode Mode, size Size, items []*srs.LearningItem, now time.Time) *State {
	return &State{
		ID:        uuid.NewString(),
		Mode:      mode,
		Size:      size,
		Items:     items,
		StartedAt: now,
	}
}

// Current returns the item being studied, or nil once the session is done.
func (s *State) Current() *srs.LearningItem {
	if s.Index >= len(s.Items) {
		return nil
	}
	return s.Items[s.Index]
}

// Advance moves to the next item and reports whether one exists.
func (s *State) Advance() bool {
	s.Index++
	return s.Index < len(s.Items)
}

// Done reports whether every item has been attempted.
func (s *State) Done() bool {
	return s.Index >= len(s.Items)
}

// RecordOutcome folds an attempt result into the session counters.
func (s *State) RecordOutcome(correct bool, stageChanged bool) {
	s.TotalAttempts++
	if correct {
		s.TotalCorrect++
	}
	if stageChanged {
		s.StageChanges++
	}
}
