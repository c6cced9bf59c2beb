package services_test

import (
	"context"
	"testing"

	"mediagrab/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithLink(ctx, "https://example.com/v")
	ctx = services.WithOperation(ctx, "audio")
	ctx = services.WithSessionID(ctx, "sess-1")

	if link, ok := services.LinkFromContext(ctx); !ok || link != "https://example.com/v" {
		t.Fatalf("unexpected link: %v %v", link, ok)
	}
	if op, ok := services.OperationFromContext(ctx); !ok || op != "audio" {
		t.Fatalf("unexpected operation: %v %v", op, ok)
	}
	if sid, ok := services.SessionIDFromContext(ctx); !ok || sid != "sess-1" {
		t.Fatalf("unexpected session id: %v %v", sid, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithLink(ctx, "")
	ctx = services.WithOperation(ctx, "")
	if _, ok := services.LinkFromContext(ctx); ok {
		t.Fatal("expected no link value")
	}
	if _, ok := services.OperationFromContext(ctx); ok {
		t.Fatal("expected no operation value")
	}
}
