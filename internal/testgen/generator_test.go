package testgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/llm"
)

func validPayload() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"text": "What is 1/2 + 1/4?",
				"type": "multiple_choice",
				"marks": 2,
				"topic": "Adding Fractions",
				"choices": ["3/4", "2/6", "1/8", "2/4"],
				"correct_option": 0
			},
			{
				"text": "Explain how to compare two fractions.",
				"type": "short_answer",
				"marks": 3,
				"topic": "Comparing Fractions",
				"model_answer": "Convert to a common denominator and compare numerators."
			}
		]
	}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPayload()})
	g := NewGenerator(mock, DefaultConfig())

	test, err := g.Generate(context.Background(), GenerateInput{
		Subject:      "Math",
		Chapter:      "Fractions",
		NumQuestions: 2,
		WeakAreas:    []string{"Adding Fractions"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if test.Subject != "Math" || test.Chapter != "Fractions" {
		t.Errorf("subject/chapter = %s/%s", test.Subject, test.Chapter)
	}
	if len(test.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(test.Questions))
	}

	mc := test.Questions[0]
	if mc.Type != exam.TypeMultipleChoice || len(mc.Choices) != 4 || mc.CorrectOption != 0 {
		t.Errorf("unexpected multiple-choice question: %+v", mc)
	}
	if mc.ModelAnswer != "" {
		t.Error("multiple-choice questions must not carry a model answer")
	}

	sa := test.Questions[1]
	if sa.Type != exam.TypeShortAnswer || sa.ModelAnswer == "" {
		t.Errorf("unexpected short-answer question: %+v", sa)
	}
	if sa.Choices != nil {
		t.Error("short-answer questions must not carry choices")
	}

	// The request carries the schema and the full prompt context.
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != TestSchema {
		t.Error("expected the generated-test schema on the request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Math", "Fractions", "Number of questions: 2", "Adding Fractions"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerateProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns provider unavailable
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{Subject: "Math"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateRejectsStructurallyInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{
			"empty test",
			`{"questions": []}`,
		},
		{
			"wrong choice count",
			`{"questions": [{"text": "q", "type": "multiple_choice", "marks": 1, "topic": "t",
				"choices": ["a", "b", "c"], "correct_option": 0}]}`,
		},
		{
			"empty choice",
			`{"questions": [{"text": "q", "type": "multiple_choice", "marks": 1, "topic": "t",
				"choices": ["a", "", "c", "d"], "correct_option": 0}]}`,
		},
		{
			"correct option out of range",
			`{"questions": [{"text": "q", "type": "multiple_choice", "marks": 1, "topic": "t",
				"choices": ["a", "b", "c", "d"], "correct_option": 4}]}`,
		},
		{
			"missing model answer",
			`{"questions": [{"text": "q", "type": "short_answer", "marks": 1, "topic": "t"}]}`,
		},
		{
			"zero marks",
			`{"questions": [{"text": "q", "type": "short_answer", "marks": 0, "topic": "t",
				"model_answer": "a"}]}`,
		},
		{
			"empty question text",
			`{"questions": [{"text": "", "type": "short_answer", "marks": 1, "topic": "t",
				"model_answer": "a"}]}`,
		},
		{
			"unknown type",
			`{"questions": [{"text": "q", "type": "essay", "marks": 1, "topic": "t"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.payload)})
			g := NewGenerator(mock, DefaultConfig())

			if _, err := g.Generate(context.Background(), GenerateInput{Subject: "Math"}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
