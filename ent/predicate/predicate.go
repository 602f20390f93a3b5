// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LearningItem is the predicate function for learningitem builders.
type LearningItem func(*sql.Selector)

// StageEvent is the predicate function for stageevent builders.
type StageEvent func(*sql.Selector)

// VocabEntry is the predicate function for vocabentry builders.
type VocabEntry func(*sql.Selector)
