package llm

import (
	"context"
	"testing"
)

func TestPurposeRoundTrip(t *testing.T) {
	ctx := WithPurpose(context.Background(), PurposeExplanation)
	if got := PurposeFrom(ctx); got != PurposeExplanation {
		t.Errorf("PurposeFrom = %q, want %q", got, PurposeExplanation)
	}
}

func TestPurposeDefaultsToUnknown(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("PurposeFrom = %q, want unknown", got)
	}
}
