package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lexio/internal/session"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var body string
	switch m.phase {
	case phaseSummary:
		body = m.viewSummary()
	case phaseFeedback:
		body = m.viewFeedback()
	default:
		body = m.viewPrompt()
	}

	if m.width == 0 || m.height == 0 {
		v.SetContent(body)
		return v
	}
	v.SetContent(lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body))
	return v
}

func (m Model) viewPrompt() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	if m.entry == nil {
		b.WriteString(styleDim.Render("Loading..."))
		return b.String()
	}

	term := m.entry.Term
	if m.entry.PartOfSpeech != "" {
		term += styleDim.Render("  (" + m.entry.PartOfSpeech + ")")
	}
	b.WriteString(styleCard.Render(styleTerm.Render(term)))
	b.WriteString("\n\n")

	// Introducing sessions show the study material up front; later stages
	// test recall without it.
	if m.state.Mode == session.ModeIntroducing && m.entry.Enriched() {
		if m.entry.Definition != "" {
			b.WriteString(styleDim.Render(m.entry.Definition))
			b.WriteString("\n")
		}
		if m.entry.Mnemonic != "" {
			b.WriteString(styleHint.Render(m.entry.Mnemonic))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.phase == phaseGrading {
		b.WriteString(styleDim.Render("Checking..."))
		b.WriteString("\n")
	} else if m.hint != "" {
		b.WriteString(styleWrong.Render(m.hint))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(styleWrong.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHint.Render("enter submit · ctrl+g give up · esc end session"))
	return b.String()
}

func (m Model) viewFeedback() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	if m.correct {
		b.WriteString(styleCorrect.Render("✓ Correct"))
	} else if m.gaveUp {
		b.WriteString(styleWrong.Render("Skipped"))
	} else {
		b.WriteString(styleWrong.Render("✗ Incorrect"))
	}
	b.WriteString("\n\n")

	if m.entry != nil {
		b.WriteString(fmt.Sprintf("%s — %s\n", styleTerm.Render(m.entry.Term), m.entry.Translation))
		if len(m.entry.Examples) > 0 {
			b.WriteString(styleDim.Render(m.entry.Examples[0]))
			b.WriteString("\n")
		}
	}
	if m.hint != "" {
		b.WriteString(styleHint.Render(m.hint))
		b.WriteString("\n")
	}

	if m.result != nil && m.result.StageChanged {
		b.WriteString("\n")
		b.WriteString(styleTitle.Render(fmt.Sprintf("Stage: %s → %s", m.result.PreviousStage, m.result.Item.Stage)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHint.Render("any key to continue"))
	return b.String()
}

func (m Model) viewSummary() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Session complete"))
	b.WriteString("\n\n")

	if m.summary != nil {
		s := m.summary
		b.WriteString(fmt.Sprintf("Items studied    %d\n", s.ItemsStudied))
		b.WriteString(fmt.Sprintf("Attempts         %d\n", s.TotalAttempts))
		b.WriteString(fmt.Sprintf("Correct          %d (%.0f%%)\n", s.TotalCorrect, s.Accuracy*100))
		b.WriteString(fmt.Sprintf("Stage changes    %d\n", s.StageChanges))
		b.WriteString(fmt.Sprintf("Duration         %s\n", s.Duration.Round(time.Second)))
	}

	b.WriteString("\n")
	b.WriteString(styleHint.Render("any key to exit"))
	return b.String()
}

func (m Model) header() string {
	total := len(m.state.Items)
	pos := m.state.Index + 1
	if pos > total {
		pos = total
	}
	line := styleTitle.Render(fmt.Sprintf("%s session", m.state.Mode)) +
		styleDim.Render(fmt.Sprintf("  ·  %d/%d", pos, total))
	if total > 0 {
		line += "\n" + progressBar(float64(m.state.Index)/float64(total), 32)
	}
	return line
}
