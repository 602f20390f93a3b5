// Package enrich generates study material for vocabulary entries and grades
// free-form translations using an LLM provider.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/vocab"
)

// Enrichment is the generated study material for one entry.
type Enrichment struct {
	Definition string
	Examples   []string
	Mnemonic   string
}

// Service generates enrichment content.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an enrichment service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type enrichmentOutput struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
	Mnemonic   string   `json:"mnemonic"`
}

// Enrich generates a definition, example sentences, and a mnemonic for the
// entry. The response is schema-validated by the provider before parsing.
func (s *Service) Enrich(ctx context.Context, e *vocab.Entry) (*Enrichment, error) {
	ctx = llm.WithPurpose(ctx, "enrichment")

	req := llm.Request{
		System: enrichmentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEnrichmentUserMessage(e)},
		},
		Schema:      EnrichmentSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("enrich %q: %w", e.Term, err)
	}

	var out enrichmentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse enrichment response for %q: %w", e.Term, err)
	}

	return &Enrichment{
		Definition: out.Definition,
		Examples:   out.Examples,
		Mnemonic:   out.Mnemonic,
	}, nil
}
