package testgen

import "github.com/prepdeck/prepdeck/internal/llm"

// TestSchema defines the JSON schema for generated tests.
var TestSchema = &llm.Schema{
	Name:        "generated-test",
	Description: "A complete practice test with questions, answers, and topic labels",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner, in plain text",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "short_answer", "long_answer"},
							"description": "How the learner answers this question",
						},
						"marks": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "Point value of the question",
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "The specific topic this question tests, used for weak-area analysis",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for multiple_choice. Empty array otherwise.",
						},
						"correct_option": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct choice. 0 for non-multiple-choice.",
						},
						"model_answer": map[string]any{
							"type":        "string",
							"description": "Reference answer for short_answer and long_answer. Empty for multiple_choice.",
						},
					},
					"required":             []any{"text", "type", "marks", "topic", "choices", "correct_option", "model_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
