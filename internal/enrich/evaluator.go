package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/vocab"
)

// Grade is the judgement of a learner's free-form translation.
type Grade struct {
	Acceptable bool
	Feedback   string
}

// Evaluator grades free-form translations. An exact match against the stored
// translation short-circuits without an LLM call.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator creates a translation evaluator.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, cfg: cfg}
}

type gradeOutput struct {
	Acceptable bool   `json:"acceptable"`
	Feedback   string `json:"feedback"`
}

// Evaluate grades the learner's answer against the entry's translation.
// With no provider configured, grading is strict: only an exact match
// (ignoring case and whitespace) passes.
func (ev *Evaluator) Evaluate(ctx context.Context, e *vocab.Entry, learnerAnswer string) (*Grade, error) {
	if equalFold(learnerAnswer, e.Translation) {
		return &Grade{Acceptable: true}, nil
	}
	if ev.provider == nil {
		return &Grade{
			Acceptable: false,
			Feedback:   fmt.Sprintf("Expected: %s", e.Translation),
		}, nil
	}

	ctx = llm.WithPurpose(ctx, "translation-eval")

	req := llm.Request{
		System: gradingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGradingUserMessage(e, learnerAnswer)},
		},
		Schema:      GradeSchema,
		MaxTokens:   ev.cfg.MaxTokens,
		Temperature: ev.cfg.Temperature,
	}

	resp, err := ev.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grade translation of %q: %w", e.Term, err)
	}

	var out gradeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse grade response for %q: %w", e.Term, err)
	}

	return &Grade{Acceptable: out.Acceptable, Feedback: out.Feedback}, nil
}

// equalFold compares answers ignoring case and surrounding whitespace.
func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
