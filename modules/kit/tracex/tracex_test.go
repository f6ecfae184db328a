package tracex

import (
	"context"
	"testing"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "t-1")
	if got, ok := TraceIDFrom(ctx); !ok || got != "t-1" {
		t.Fatalf("trace id round-trip failed, got=%q ok=%v", got, ok)
	}
}

func TestMatchID_空值视为不存在(t *testing.T) {
	ctx := WithMatchID(context.Background(), "")
	if _, ok := MatchIDFrom(ctx); ok {
		t.Fatalf("期望空 match id 返回 ok=false")
	}
	if _, ok := MatchIDFrom(nil); ok {
		t.Fatalf("期望 nil ctx 返回 ok=false")
	}
}

func TestNewTraceID_长度(t *testing.T) {
	if got := NewTraceID(); len(got) != 32 {
		t.Fatalf("期望 32 位 hex, got=%q", got)
	}
}
