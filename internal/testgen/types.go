package testgen

import "github.com/prepdeck/prepdeck/internal/exam"

// GenerateInput holds all context needed to generate a test.
type GenerateInput struct {
	// Subject is the subject the test covers, e.g. "Math".
	Subject string

	// Chapter is the chapter or topic within the subject.
	Chapter string

	// NumQuestions is how many questions to request.
	NumQuestions int

	// Types restricts which question types may appear. Empty means
	// multiple-choice only.
	Types []exam.QuestionType

	// WeakAreas lists topics the learner struggled with recently; the
	// prompt asks to favor them.
	WeakAreas []string
}

// Config controls the Generator.
type Config struct {
	// MaxTokens is the token budget for the response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
