package enrich

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/lexio/internal/llm"
)

func TestEvaluate_ExactMatchSkipsLLM(t *testing.T) {
	mock := llm.NewMockProvider()
	ev := NewEvaluator(mock, GradingConfig())

	tests := []string{"house", "House", "  house  ", "HOUSE"}
	for _, answer := range tests {
		grade, err := ev.Evaluate(context.Background(), testEntry(), answer)
		if err != nil {
			t.Fatalf("Evaluate(%q) error: %v", answer, err)
		}
		if !grade.Acceptable {
			t.Errorf("Evaluate(%q) not acceptable", answer)
		}
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM called %d times for exact matches, want 0", mock.CallCount())
	}
}

func TestEvaluate_NearMissGoesToLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"acceptable": true, "feedback": "A synonym; the stored translation is house."}`),
	})
	ev := NewEvaluator(mock, GradingConfig())

	grade, err := ev.Evaluate(context.Background(), testEntry(), "home")
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if !grade.Acceptable || grade.Feedback == "" {
		t.Errorf("grade = %+v", grade)
	}
	if mock.CallCount() != 1 {
		t.Errorf("LLM called %d times, want 1", mock.CallCount())
	}
	if mock.Calls[0].Schema != GradeSchema {
		t.Error("request should carry the grade schema")
	}
}

func TestEvaluate_Rejection(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"acceptable": false, "feedback": "A mouse is a different word."}`),
	})
	ev := NewEvaluator(mock, GradingConfig())

	grade, err := ev.Evaluate(context.Background(), testEntry(), "mouse")
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if grade.Acceptable {
		t.Error("expected rejection")
	}
}

func TestEvaluate_NilProviderGradesStrictly(t *testing.T) {
	ev := NewEvaluator(nil, GradingConfig())

	grade, err := ev.Evaluate(context.Background(), testEntry(), "house")
	if err != nil || !grade.Acceptable {
		t.Errorf("exact match = (%+v, %v), want acceptable", grade, err)
	}

	grade, err = ev.Evaluate(context.Background(), testEntry(), "home")
	if err != nil {
		t.Fatalf("Evaluate() error: %v", err)
	}
	if grade.Acceptable || grade.Feedback == "" {
		t.Errorf("near miss without provider should be rejected with feedback: %+v", grade)
	}
}

func TestEvaluate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider()
	ev := NewEvaluator(mock, GradingConfig())

	if _, err := ev.Evaluate(context.Background(), testEntry(), "home"); err == nil {
		t.Fatal("expected error from failing provider")
	}
}
