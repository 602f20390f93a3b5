package tui

import (
	"context"
	"fmt"
	"testing"
	"time"

	"charm.land/bubbles/v2/cursor"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexio/internal/enrich"
	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/session"
	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/vocab"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// mockItemRepo implements store.ItemRepo for testing.
type mockItemRepo struct {
	saved int
}

func (m *mockItemRepo) Create(_ context.Context, _ *srs.LearningItem) error { return nil }
func (m *mockItemRepo) Get(_ context.Context, _ string) (*srs.LearningItem, error) {
	return nil, nil
}
func (m *mockItemRepo) All(_ context.Context) ([]*srs.LearningItem, error) { return nil, nil }
func (m *mockItemRepo) Save(_ context.Context, _ *srs.LearningItem) error {
	m.saved++
	return nil
}

func testModel(t *testing.T, items ...*srs.LearningItem) Model {
	t.Helper()
	if len(items) == 0 {
		items = []*srs.LearningItem{srs.NewLearningItem("i1", "e1", testNow)}
	}
	state := session.NewState(session.ModeRecalling, session.SizeQuick, items, testNow)
	recorder := session.NewRecorder(&mockItemRepo{}, nil)
	evaluator := enrich.NewEvaluator(llm.NewMockProvider(), enrich.GradingConfig())
	cache := vocab.NewCache(func(_ context.Context, id string) (*vocab.Entry, error) {
		return &vocab.Entry{ID: id, Term: "haus", Translation: "house"}, nil
	})

	m := NewModel(state, recorder, evaluator, cache)
	m.now = func() time.Time { return testNow }
	return m
}

// drive applies a message and runs any returned commands synchronously so
// async loads resolve in-test.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	if msg == nil {
		return m
	}
	// Cursor blink commands reschedule themselves forever; following them
	// would recurse without terminating.
	if _, ok := msg.(cursor.BlinkMsg); ok {
		return m
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				m = drive(t, m, c())
			}
		}
		return m
	}
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		m = drive(t, m, cmd())
	}
	return m
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestModel_CorrectAnswerFlow(t *testing.T) {
	m := testModel(t)
	m = drive(t, m, m.Init()())

	if m.entry == nil || m.entry.Term != "haus" {
		t.Fatalf("entry not loaded: %+v", m.entry)
	}

	for _, r := range "house" {
		m = drive(t, m, keyPress(r))
	}
	m = drive(t, m, specialKey(tea.KeyEnter))

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", m.phase)
	}
	if !m.correct {
		t.Error("exact match should grade correct without the LLM")
	}
	if m.state.TotalCorrect != 1 {
		t.Errorf("TotalCorrect = %d, want 1", m.state.TotalCorrect)
	}
}

func TestModel_FeedbackAdvancesToNextItem(t *testing.T) {
	m := testModel(t,
		srs.NewLearningItem("i1", "e1", testNow),
		srs.NewLearningItem("i2", "e2", testNow),
	)
	m = drive(t, m, m.Init()())

	for _, r := range "house" {
		m = drive(t, m, keyPress(r))
	}
	m = drive(t, m, specialKey(tea.KeyEnter))
	m = drive(t, m, keyPress(' '))

	if m.phase != phasePrompt {
		t.Fatalf("phase = %d, want prompt", m.phase)
	}
	if m.state.Index != 1 {
		t.Errorf("Index = %d, want 1", m.state.Index)
	}
	if m.input.Value() != "" {
		t.Error("input should be cleared between items")
	}
}

func TestModel_LastItemEndsInSummary(t *testing.T) {
	m := testModel(t)
	m = drive(t, m, m.Init()())

	for _, r := range "house" {
		m = drive(t, m, keyPress(r))
	}
	m = drive(t, m, specialKey(tea.KeyEnter))
	m = drive(t, m, keyPress(' '))

	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", m.phase)
	}
	if m.summary == nil || m.summary.TotalAttempts != 1 {
		t.Errorf("summary = %+v", m.summary)
	}
}

func TestModel_GiveUpRecordsFailure(t *testing.T) {
	m := testModel(t)
	m = drive(t, m, m.Init()())

	m = drive(t, m, tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})

	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", m.phase)
	}
	if m.correct {
		t.Error("giving up should record a failure")
	}
	if m.state.TotalAttempts != 1 || m.state.TotalCorrect != 0 {
		t.Errorf("counters = %d/%d", m.state.TotalCorrect, m.state.TotalAttempts)
	}
}

func TestModel_EscShowsSummaryEarly(t *testing.T) {
	m := testModel(t)
	m = drive(t, m, m.Init()())

	m = drive(t, m, specialKey(tea.KeyEscape))

	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want summary", m.phase)
	}
	if m.summary == nil || m.summary.TotalAttempts != 0 {
		t.Errorf("summary = %+v", m.summary)
	}
}

// viewContent renders the view's content layer to a plain string.
func viewContent(t *testing.T, m Model) string {
	t.Helper()
	v := m.View()
	s, ok := v.Content.(fmt.Stringer)
	if !ok {
		t.Fatalf("view content %T is not a fmt.Stringer", v.Content)
	}
	return s.String()
}

func TestModel_ViewRendersEachPhase(t *testing.T) {
	m := testModel(t)
	m = drive(t, m, m.Init()())
	if viewContent(t, m) == "" {
		t.Error("prompt view is empty")
	}

	for _, r := range "house" {
		m = drive(t, m, keyPress(r))
	}
	m = drive(t, m, specialKey(tea.KeyEnter))
	if viewContent(t, m) == "" {
		t.Error("feedback view is empty")
	}

	m = drive(t, m, keyPress(' '))
	if viewContent(t, m) == "" {
		t.Error("summary view is empty")
	}
}

func TestModel_ViewUsesAltScreen(t *testing.T) {
	m := testModel(t)
	if v := m.View(); !v.AltScreen {
		t.Error("study view should run in the alternate screen buffer")
	}
}
