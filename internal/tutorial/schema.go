package tutorial

import "github.com/inkinquiry/cmdmaster/internal/llm"

// TutorialSchema defines the JSON schema for tutorial generation.
var TutorialSchema = &llm.Schema{
	Name:        "command-tutorial",
	Description: "A tutorial for a Linux command with summary, description, and examples",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"commandName": map[string]any{
				"type":        "string",
				"description": "The name of the command.",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "A single-sentence summary of what the command does.",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "A detailed paragraph explaining the command's purpose and functionality, using markdown for formatting if necessary.",
			},
			"examples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"command": map[string]any{
							"type":        "string",
							"description": "The example command to run.",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A brief explanation of what this specific example does.",
						},
					},
					"required":             []any{"command", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"commandName", "summary", "description", "examples"},
		"additionalProperties": false,
	},
}
