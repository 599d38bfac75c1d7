package trace

import (
	"context"
	"testing"
)

func TestNextSpanIDIncrementsWithinOneRequest(t *testing.T) {
	ctx := WithRequestAndSpan(context.Background(), "req-1", 0)

	if got := CurrentSpanID(ctx); got != "0" {
		t.Fatalf("expected initial span 0, got %q", got)
	}

	for i, want := range []string{"1", "2", "3"} {
		reqID, spanID := NextSpanID(ctx)
		if reqID != "req-1" {
			t.Fatalf("call %d: expected request id req-1, got %q", i, reqID)
		}
		if spanID != want {
			t.Fatalf("call %d: expected span %q, got %q", i, want, spanID)
		}
	}
}

func TestNextSpanIDOutsideMiddlewareGeneratesID(t *testing.T) {
	reqID, spanID := NextSpanID(context.Background())
	if reqID == "" {
		t.Fatalf("expected generated request id")
	}
	if spanID != "1" {
		t.Fatalf("expected span 1 for fallback, got %q", spanID)
	}
}

func TestGenerateIDIsUnique(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
