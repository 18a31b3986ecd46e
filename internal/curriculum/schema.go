package curriculum

import "github.com/Maradon197/5MinuteChallenge-sub000/internal/llm"

// containerSchema is the union of all container authoring fields. Only
// "kind" is required here; per-kind field requirements are enforced by the
// content factory, which produces far better error messages than a JSON
// Schema oneOf would.
var containerSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"kind": map[string]any{
			"type": "string",
			"enum": []any{
				"TITLE", "TEXT", "MULTIPLE_CHOICE_QUIZ", "REVERSE_QUIZ",
				"FILL_IN_THE_GAPS", "SORTING_TASK", "ERROR_SPOTTING",
				"WIRE_CONNECTING", "RECAP", "VIDEO",
			},
			"description": "The container variant",
		},
		"title": map[string]any{
			"type":        "string",
			"description": "Heading text for TITLE containers",
		},
		"text": map[string]any{
			"type":        "string",
			"description": "Body text for TEXT containers, 2-4 sentences",
		},
		"url": map[string]any{
			"type":        "string",
			"description": "Video URL for VIDEO containers",
		},
		"question": map[string]any{
			"type":        "string",
			"description": "The question prompt for MULTIPLE_CHOICE_QUIZ",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Answer options for MULTIPLE_CHOICE_QUIZ, 3-4 entries",
		},
		"correctAnswerIndices": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "integer"},
			"description": "Zero-based indices of the correct options",
		},
		"allowMultipleAnswers": map[string]any{
			"type":        "boolean",
			"description": "Whether more than one option may be selected",
		},
		"explanationText": map[string]any{
			"type":        "string",
			"description": "Short explanation shown after answering",
		},
		"answer": map[string]any{
			"type":        "string",
			"description": "The shown answer for REVERSE_QUIZ",
		},
		"questionOptions": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Candidate questions for REVERSE_QUIZ",
		},
		"correctQuestionIndex": map[string]any{
			"type":        "integer",
			"description": "Zero-based index of the question matching the answer",
		},
		"textTemplate": map[string]any{
			"type":        "string",
			"description": "FILL_IN_THE_GAPS template; mark each blank with {} markers",
		},
		"correctWords": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "The correct word for each gap, in order",
		},
		"wordOptions": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "The word bank, correct words plus distractors",
		},
		"instructions": map[string]any{
			"type":        "string",
			"description": "Task instructions for SORTING_TASK, ERROR_SPOTTING, WIRE_CONNECTING",
		},
		"correctOrder": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Items in their correct order for SORTING_TASK",
		},
		"items": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Statements for ERROR_SPOTTING, exactly one containing an error",
		},
		"errorIndex": map[string]any{
			"type":        "integer",
			"description": "Zero-based index of the erroneous item",
		},
		"leftItems": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Left column for WIRE_CONNECTING",
		},
		"rightItems": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Right column for WIRE_CONNECTING",
		},
		"correctMatches": map[string]any{
			"type":        "object",
			"description": "WIRE_CONNECTING mapping: left index (as a string key) to right index",
		},
		"recapTitle": map[string]any{
			"type":        "string",
			"description": "Heading for RECAP containers",
		},
		"wrappedContainer": map[string]any{
			"type":        "object",
			"description": "Optional container document a RECAP re-asks, same shape as any container",
		},
	},
	"required": []any{"kind"},
}

// TopicSchema is the JSON schema for generated topic documents.
var TopicSchema = &llm.Schema{
	Name:        "lesson-topic",
	Description: "A micro-lesson topic: an ordered list of challenges, each an ordered list of content containers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Topic title, short and concrete",
			},
			"challenges": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Challenge title",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One-sentence summary of what this challenge covers",
						},
						"containers": map[string]any{
							"type":        "array",
							"items":       containerSchema,
							"description": "Ordered containers the player walks through",
						},
					},
					"required": []any{"title", "containers"},
				},
				"description": "Ordered challenges, easiest first",
			},
		},
		"required":             []any{"title", "challenges"},
		"additionalProperties": false,
	},
}
