package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/prepdeck/prepdeck/internal/store"
)

type captureEvents struct {
	events []store.LLMRequestEventData
}

func (c *captureEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func (c *captureEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (c *captureEvents) GetLLMEvent(context.Context, int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func TestLoggingRecordsSuccess(t *testing.T) {
	events := &captureEvents{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, events)

	ctx := WithPurpose(context.Background(), PurposeTestGeneration)
	if _, err := p.Generate(ctx, Request{
		System:   "be helpful",
		Messages: []Message{{Role: RoleUser, Content: "make a test"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	e := events.events[0]
	if !e.Success {
		t.Error("expected success event")
	}
	if e.Purpose != PurposeTestGeneration {
		t.Errorf("Purpose = %q, want %q", e.Purpose, PurposeTestGeneration)
	}
	if e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "be helpful") || !strings.Contains(e.RequestBody, "make a test") {
		t.Errorf("request body missing prompt text: %q", e.RequestBody)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Errorf("ResponseBody = %q", e.ResponseBody)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	events := &captureEvents{}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, events)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(events.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.events))
	}
	e := events.events[0]
	if e.Success {
		t.Error("expected failure event")
	}
	if e.ErrorMessage != "boom" {
		t.Errorf("ErrorMessage = %q, want boom", e.ErrorMessage)
	}
	if e.Purpose != "unknown" {
		t.Errorf("Purpose = %q, want unknown without a label", e.Purpose)
	}
}

func TestSerializeRequestIncludesSchema(t *testing.T) {
	got := serializeRequest(Request{
		Schema: &Schema{
			Name:       "demo",
			Definition: map[string]any{"type": "object"},
		},
	})
	if !strings.Contains(got, "schema: demo") {
		t.Errorf("serialized request missing schema name: %q", got)
	}
}
