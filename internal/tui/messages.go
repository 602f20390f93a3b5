package tui

import (
	"github.com/abhisek/lexio/internal/enrich"
	"github.com/abhisek/lexio/internal/session"
	"github.com/abhisek/lexio/internal/vocab"
)

// entryMsg delivers the vocabulary entry for the current item.
type entryMsg struct {
	entry *vocab.Entry
	err   error
}

// gradedMsg delivers the judgement of a submitted answer.
type gradedMsg struct {
	grade *enrich.Grade
	err   error
}

// recordedMsg delivers the persisted outcome of an attempt.
type recordedMsg struct {
	result  *session.AttemptResult
	correct bool
	err     error
}
