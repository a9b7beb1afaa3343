package challenge

import "github.com/abhisek/codequest/internal/llm"

// ChallengeSchema defines the JSON reply requested in ModeJSON.
var ChallengeSchema = &llm.Schema{
	Name:        "coding-challenge",
	Description: "A beginner-friendly multiple-choice coding question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question shown to the player",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options, in order a, b, c, d",
			},
			"answer": map[string]any{
				"type":        "string",
				"enum":        []any{"a", "b", "c", "d", "A", "B", "C", "D"},
				"description": "Letter of the correct choice",
			},
		},
		"required":             []any{"question", "choices", "answer"},
		"additionalProperties": false,
	},
}
