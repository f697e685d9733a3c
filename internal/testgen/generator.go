package testgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/llm"
)

// Generator produces tests using the generation service. Unlike
// explanation requests, test creation is allowed to fail outright: there
// is no degraded form of a test that never existed.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// generatedQuestion mirrors one item of TestSchema.
type generatedQuestion struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Marks         int      `json:"marks"`
	Topic         string   `json:"topic"`
	Choices       []string `json:"choices"`
	CorrectOption int      `json:"correct_option"`
	ModelAnswer   string   `json:"model_answer"`
}

// Generate requests a complete test and validates it structurally.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*exam.Test, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTestGeneration)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      TestSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate test: %w", err)
	}

	var payload struct {
		Questions []generatedQuestion `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("decode test: %w", err)
	}

	test := &exam.Test{
		Subject:   input.Subject,
		Chapter:   input.Chapter,
		Questions: make([]exam.Question, 0, len(payload.Questions)),
	}
	for i, q := range payload.Questions {
		question, err := toQuestion(q)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		test.Questions = append(test.Questions, question)
	}

	if len(test.Questions) == 0 {
		return nil, fmt.Errorf("generated test has no questions")
	}
	return test, nil
}

// toQuestion converts and structurally validates one generated question.
// The schema constrains shape; this enforces the cross-field rules the
// schema cannot express.
func toQuestion(q generatedQuestion) (exam.Question, error) {
	out := exam.Question{
		Text:          q.Text,
		Type:          exam.QuestionType(q.Type),
		Marks:         q.Marks,
		Topic:         q.Topic,
		Choices:       q.Choices,
		CorrectOption: q.CorrectOption,
		ModelAnswer:   q.ModelAnswer,
	}

	if out.Text == "" {
		return out, fmt.Errorf("empty question text")
	}
	if out.Marks <= 0 {
		return out, fmt.Errorf("marks must be positive, got %d", out.Marks)
	}

	switch out.Type {
	case exam.TypeMultipleChoice:
		if len(out.Choices) != exam.MultipleChoiceCount {
			return out, fmt.Errorf("expected %d choices, got %d", exam.MultipleChoiceCount, len(out.Choices))
		}
		for i, c := range out.Choices {
			if c == "" {
				return out, fmt.Errorf("choice %d is empty", i+1)
			}
		}
		if out.CorrectOption < 0 || out.CorrectOption >= len(out.Choices) {
			return out, fmt.Errorf("correct option %d out of range", out.CorrectOption)
		}
		out.ModelAnswer = ""
	case exam.TypeShortAnswer, exam.TypeLongAnswer:
		if out.ModelAnswer == "" {
			return out, fmt.Errorf("missing model answer")
		}
		out.Choices = nil
		out.CorrectOption = 0
	default:
		return out, fmt.Errorf("unknown question type %q", q.Type)
	}

	return out, nil
}
