package enrich

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexio/internal/vocab"
)

const enrichmentSystemPrompt = `You are a language tutor creating study material for an adult vocabulary learner. Keep definitions plain, example sentences short, and mnemonics concrete.`

func buildEnrichmentUserMessage(e *vocab.Entry) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Term: %s\n", e.Term))
	b.WriteString(fmt.Sprintf("Translation: %s\n", e.Translation))
	if e.PartOfSpeech != "" {
		b.WriteString(fmt.Sprintf("Part of speech: %s\n", e.PartOfSpeech))
	}
	if e.Tier != "" {
		b.WriteString(fmt.Sprintf("Difficulty tier (CEFR): %s\n", strings.ToUpper(string(e.Tier))))
	}
	if e.Topic != "" {
		b.WriteString(fmt.Sprintf("Topic: %s\n", e.Topic))
	}

	b.WriteString(`
Instructions:
Create enrichment for this vocabulary entry:
1. A short definition (1-2 sentences) in the language of the translation above.
2. Two or three example sentences in the term's language. Match the difficulty tier — an A1 learner gets very short sentences.
3. One mnemonic sentence linking the term's sound or shape to its meaning.
Use plain text only. No markdown, no numbered lists inside fields.`)

	return b.String()
}

const gradingSystemPrompt = `You are grading a language learner's translation of a single vocabulary term. Accept any translation that conveys the term's meaning, including synonyms and minor spelling slips. Reject translations that change the meaning.`

func buildGradingUserMessage(e *vocab.Entry, learnerAnswer string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Term: %s\n", e.Term))
	b.WriteString(fmt.Sprintf("Expected translation: %s\n", e.Translation))
	if e.Definition != "" {
		b.WriteString(fmt.Sprintf("Definition: %s\n", e.Definition))
	}
	b.WriteString(fmt.Sprintf("Learner's answer: %s\n", learnerAnswer))

	b.WriteString(`
Instructions:
Decide whether the learner's answer is an acceptable translation of the term. Give one sentence of feedback when it is not, or when it is acceptable but imprecise. Leave feedback empty for a fully correct answer.`)

	return b.String()
}
