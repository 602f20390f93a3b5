package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/vocab"
)

func testEntry() *vocab.Entry {
	return &vocab.Entry{
		ID:           "e1",
		Term:         "haus",
		Translation:  "house",
		PartOfSpeech: "noun",
		Tier:         srs.TierA1,
		Topic:        "home",
	}
}

func TestEnrich_ParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"definition": "a building where people live",
			"examples": ["Das Haus ist alt.", "Mein Haus ist klein."],
			"mnemonic": "haus sounds like house"
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Enrich(context.Background(), testEntry())
	if err != nil {
		t.Fatalf("Enrich() error: %v", err)
	}
	if got.Definition == "" || len(got.Examples) != 2 || got.Mnemonic == "" {
		t.Errorf("Enrich() = %+v", got)
	}
}

func TestEnrich_RequestCarriesEntryContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"definition": "d", "examples": ["a", "b"], "mnemonic": "m"}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Enrich(context.Background(), testEntry()); err != nil {
		t.Fatalf("Enrich() error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("Generate called %d times, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != EnrichmentSchema {
		t.Error("request should carry the enrichment schema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"haus", "house", "noun", "A1", "home"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestEnrich_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Enrich(context.Background(), testEntry()); err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestEnrich_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Enrich(context.Background(), testEntry()); err == nil {
		t.Fatal("expected parse error")
	}
}
