// Package importer loads vocabulary from xlsx and CSV files into the store,
// creating a learning item for every new entry.
package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/store"
	"github.com/abhisek/lexio/internal/vocab"
)

// Record is one parsed vocabulary row, not yet persisted.
type Record struct {
	Term         string
	Translation  string
	PartOfSpeech string
	Tier         string
	Topic        string
}

// Result summarizes an import run.
type Result struct {
	Processed int
	Created   int
	Skipped   int
	Errors    []string
}

// Importer persists parsed records.
type Importer struct {
	entries store.EntryRepo
	items   store.ItemRepo
}

// New creates an Importer over the given repositories.
func New(entries store.EntryRepo, items store.ItemRepo) *Importer {
	return &Importer{entries: entries, items: items}
}

// Import parses the file by extension (.xlsx or .csv) and stores its rows.
// Rows whose term already exists are skipped; malformed rows are reported in
// Result.Errors without aborting the run.
func (im *Importer) Import(ctx context.Context, path string, now time.Time) (*Result, error) {
	var (
		records []Record
		errs    []string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, errs, err = parseCSV(path)
	case ".xlsx":
		records, errs, err = parseXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .xlsx or .csv)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	result := &Result{Errors: errs}
	for _, rec := range records {
		result.Processed++
		created, err := im.store(ctx, rec, now)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", rec.Term, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Skipped++
		}
	}
	return result, nil
}

// store persists one record. Returns false if the term already exists.
func (im *Importer) store(ctx context.Context, rec Record, now time.Time) (bool, error) {
	existing, err := im.entries.ByTerm(ctx, rec.Term)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	entry := &vocab.Entry{
		ID:           uuid.NewString(),
		Term:         rec.Term,
		Translation:  rec.Translation,
		PartOfSpeech: rec.PartOfSpeech,
		Tier:         srs.Tier(rec.Tier),
		Topic:        rec.Topic,
		CreatedAt:    now,
	}
	if err := im.entries.Create(ctx, entry); err != nil {
		return false, err
	}

	item := srs.NewLearningItem(uuid.NewString(), entry.ID, now)
	item.Tier = entry.Tier
	if err := im.items.Create(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}

// normalizeRecord validates and canonicalizes a raw row.
func normalizeRecord(term, translation, partOfSpeech, tier, topic string) (Record, error) {
	rec := Record{
		Term:         strings.TrimSpace(term),
		Translation:  strings.TrimSpace(translation),
		PartOfSpeech: strings.ToLower(strings.TrimSpace(partOfSpeech)),
		Topic:        strings.TrimSpace(topic),
	}
	if rec.Term == "" {
		return Record{}, fmt.Errorf("term is empty")
	}
	if rec.Translation == "" {
		return Record{}, fmt.Errorf("translation is empty")
	}
	t, ok := srs.ParseTier(tier)
	if !ok {
		return Record{}, fmt.Errorf("unknown tier %q", strings.TrimSpace(tier))
	}
	rec.Tier = string(t)
	return rec, nil
}
