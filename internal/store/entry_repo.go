package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lexio/ent"
	"github.com/abhisek/lexio/ent/vocabentry"
	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/vocab"
)

// entryRepo implements EntryRepo backed by ent.
type entryRepo struct {
	client *ent.Client
}

func (r *entryRepo) Create(ctx context.Context, e *vocab.Entry) error {
	builder := r.client.VocabEntry.Create().
		SetID(e.ID).
		SetTerm(e.Term).
		SetTranslation(e.Translation).
		SetPartOfSpeech(e.PartOfSpeech).
		SetDefinition(e.Definition).
		SetMnemonic(e.Mnemonic).
		SetTier(string(e.Tier)).
		SetTopic(e.Topic).
		SetCreatedAt(e.CreatedAt)
	if len(e.Examples) > 0 {
		builder = builder.SetExamples(e.Examples)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create entry %q: %w", e.Term, err)
	}
	return nil
}

func (r *entryRepo) Get(ctx context.Context, id string) (*vocab.Entry, error) {
	row, err := r.client.VocabEntry.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, err)
	}
	return entryFromRow(row), nil
}

func (r *entryRepo) ByTerm(ctx context.Context, term string) (*vocab.Entry, error) {
	row, err := r.client.VocabEntry.Query().
		Where(vocabentry.Term(term)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query entry by term %q: %w", term, err)
	}
	return entryFromRow(row), nil
}

func (r *entryRepo) All(ctx context.Context) ([]*vocab.Entry, error) {
	rows, err := r.client.VocabEntry.Query().
		Order(ent.Asc(vocabentry.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	entries := make([]*vocab.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entryFromRow(row))
	}
	return entries, nil
}

func (r *entryRepo) SaveEnrichment(ctx context.Context, id string, definition string, examples []string, mnemonic string) error {
	err := r.client.VocabEntry.UpdateOneID(id).
		SetDefinition(definition).
		SetExamples(examples).
		SetMnemonic(mnemonic).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save enrichment for entry %s: %w", id, err)
	}
	return nil
}

func entryFromRow(row *ent.VocabEntry) *vocab.Entry {
	return &vocab.Entry{
		ID:           row.ID,
		Term:         row.Term,
		Translation:  row.Translation,
		PartOfSpeech: row.PartOfSpeech,
		Definition:   row.Definition,
		Examples:     row.Examples,
		Mnemonic:     row.Mnemonic,
		Tier:         srs.Tier(row.Tier),
		Topic:        row.Topic,
		CreatedAt:    row.CreatedAt,
	}
}
