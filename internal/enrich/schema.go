package enrich

import "github.com/abhisek/lexio/internal/llm"

// EnrichmentSchema defines the JSON schema for vocabulary enrichment.
var EnrichmentSchema = &llm.Schema{
	Name:        "vocab-enrichment",
	Description: "Learner-oriented enrichment for a vocabulary entry: definition, example sentences, and a mnemonic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"definition": map[string]any{
				"type":        "string",
				"description": "A short learner definition of the term in the learner's native language (1-2 sentences)",
			},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    2,
				"maxItems":    3,
				"description": "Example sentences in the target language, simple enough for the term's difficulty tier",
			},
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A short memory aid linking the term to its meaning (1 sentence)",
			},
		},
		"required":             []any{"definition", "examples", "mnemonic"},
		"additionalProperties": false,
	},
}

// GradeSchema defines the JSON schema for translation grading.
var GradeSchema = &llm.Schema{
	Name:        "translation-grade",
	Description: "Judgement of a learner's free-form translation of a vocabulary term",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"acceptable": map[string]any{
				"type":        "boolean",
				"description": "Whether the learner's translation conveys the term's meaning",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One sentence of feedback; empty when the translation is fully correct",
			},
		},
		"required":             []any{"acceptable", "feedback"},
		"additionalProperties": false,
	},
}
