// Package vocab defines vocabulary entries and a read-through cache over
// the entry store.
package vocab

import (
	"time"

	"github.com/abhisek/lexio/internal/srs"
)

// Entry is a single vocabulary item: the term being learned plus its
// translation and any LLM-generated enrichment.
type Entry struct {
	ID           string    `json:"id"`
	Term         string    `json:"term"`
	Translation  string    `json:"translation"`
	PartOfSpeech string    `json:"part_of_speech,omitempty"`
	Definition   string    `json:"definition,omitempty"`
	Examples     []string  `json:"examples,omitempty"`
	Mnemonic     string    `json:"mnemonic,omitempty"`
	Tier         srs.Tier  `json:"tier,omitempty"`
	Topic        string    `json:"topic,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Enriched reports whether the entry already carries LLM-generated content.
func (e *Entry) Enriched() bool {
	return e.Definition != "" || len(e.Examples) > 0 || e.Mnemonic != ""
}
