// Package tui implements the interactive study screen.
package tui

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexio/internal/enrich"
	"github.com/abhisek/lexio/internal/session"
	"github.com/abhisek/lexio/internal/srs"
	"github.com/abhisek/lexio/internal/vocab"
)

type phase int

const (
	phasePrompt phase = iota
	phaseGrading
	phaseFeedback
	phaseSummary
)

// maxTries is how many wrong answers are allowed before the attempt is
// recorded as a failure.
const maxTries = 3

// Model drives one study session: prompt, grade, feedback, summary.
type Model struct {
	state     *session.State
	recorder  *session.Recorder
	evaluator *enrich.Evaluator
	entries   *vocab.Cache
	now       func() time.Time

	phase   phase
	input   textinput.Model
	entry   *vocab.Entry
	tries   int
	hint    string
	gaveUp  bool
	result  *session.AttemptResult
	correct bool
	summary *session.Summary
	errMsg  string

	width  int
	height int
}

// NewModel creates a study model over a prepared session.
func NewModel(state *session.State, recorder *session.Recorder, evaluator *enrich.Evaluator, entries *vocab.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "Type the translation..."
	ti.CharLimit = 80
	ti.Focus()

	return Model{
		state:     state,
		recorder:  recorder,
		evaluator: evaluator,
		entries:   entries,
		now:       time.Now,
		input:     ti,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadEntry(), m.input.Focus())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case entryMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.entry = msg.entry
		return m, nil

	case gradedMsg:
		return m.handleGraded(msg)

	case recordedMsg:
		return m.handleRecorded(msg)
	}

	if m.phase == phasePrompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePrompt:
		switch msg.String() {
		case "enter":
			answer := m.input.Value()
			if answer == "" || m.entry == nil {
				return m, nil
			}
			m.phase = phaseGrading
			return m, m.grade(answer)
		case "ctrl+g":
			// Give up on this item; counts as a failed attempt.
			if m.entry == nil {
				return m, nil
			}
			m.gaveUp = true
			m.phase = phaseGrading
			return m, m.record(false, m.tries+1)
		case "esc":
			m.summary = session.BuildSummary(m.state, m.now())
			m.phase = phaseSummary
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case phaseFeedback:
		return m.advance()

	case phaseSummary:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleGraded(msg gradedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		m.phase = phasePrompt
		return m, nil
	}

	if msg.grade.Acceptable {
		m.hint = msg.grade.Feedback
		return m, m.record(true, m.tries+1)
	}

	m.tries++
	if m.tries >= maxTries {
		m.hint = msg.grade.Feedback
		return m, m.record(false, m.tries)
	}

	m.phase = phasePrompt
	m.hint = msg.grade.Feedback
	if m.hint == "" {
		m.hint = fmt.Sprintf("Not quite — %d tries left", maxTries-m.tries)
	}
	m.input.SetValue("")
	return m, nil
}

func (m Model) handleRecorded(msg recordedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		return m, tea.Quit
	}
	m.result = msg.result
	m.correct = msg.correct
	m.state.RecordOutcome(msg.correct, msg.result.StageChanged)
	m.phase = phaseFeedback
	return m, nil
}

// advance moves to the next item or ends the session.
func (m Model) advance() (tea.Model, tea.Cmd) {
	m.tries = 0
	m.hint = ""
	m.gaveUp = false
	m.result = nil
	m.entry = nil
	m.errMsg = ""
	m.input.SetValue("")

	if !m.state.Advance() {
		m.summary = session.BuildSummary(m.state, m.now())
		m.phase = phaseSummary
		return m, nil
	}
	m.phase = phasePrompt
	return m, m.loadEntry()
}

func (m Model) loadEntry() tea.Cmd {
	item := m.state.Current()
	if item == nil {
		return nil
	}
	entries := m.entries
	return func() tea.Msg {
		e, err := entries.Get(context.Background(), item.EntryID)
		if err == nil && e == nil {
			err = fmt.Errorf("entry %s not found", item.EntryID)
		}
		return entryMsg{entry: e, err: err}
	}
}

func (m Model) grade(answer string) tea.Cmd {
	evaluator := m.evaluator
	entry := m.entry
	return func() tea.Msg {
		grade, err := evaluator.Evaluate(context.Background(), entry, answer)
		return gradedMsg{grade: grade, err: err}
	}
}

func (m Model) record(correct bool, attemptsTaken int) tea.Cmd {
	recorder := m.recorder
	state := m.state
	item := state.Current()
	now := m.now()
	return func() tea.Msg {
		res, err := recorder.RecordAttempt(context.Background(), item,
			srs.AttemptRecord{Correct: correct, AttemptsTaken: attemptsTaken},
			state.ID, state.Mode, now)
		return recordedMsg{result: res, correct: correct, err: err}
	}
}

// Run starts the study session UI.
func Run(state *session.State, recorder *session.Recorder, evaluator *enrich.Evaluator, entries *vocab.Cache) (*session.Summary, error) {
	m := NewModel(state, recorder, evaluator, entries)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run study UI: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.summary != nil {
		return fm.summary, nil
	}
	return session.BuildSummary(state, time.Now()), nil
}
