package session

import "time"

// Summary holds the data displayed when a session ends.
type Summary struct {
	Mode          Mode
	Duration      time.Duration
	ItemsStudied  int
	TotalAttempts int
	TotalCorrect  int
	Accuracy      float64
	StageChanges  int
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(s *State, now time.Time) *Summary {
	var accuracy float64
	if s.TotalAttempts > 0 {
		accuracy = float64(s.TotalCorrect) / float64(s.TotalAttempts)
	}
	return &Summary{
		Mode:          s.Mode,
		Duration:      now.Sub(s.StartedAt),
		ItemsStudied:  s.Index,
		TotalAttempts: s.TotalAttempts,
		TotalCorrect:  s.TotalCorrect,
		Accuracy:      accuracy,
		StageChanges:  s.StageChanges,
	}
}
