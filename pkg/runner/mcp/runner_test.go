package mcp

import (
	"context"
	"strings"
	"testing"

	"profeia.dev/profeia/pkg/store"
)

func TestDoRequiresPersistence(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
}

func TestDoRejectsUnknownTransport(t *testing.T) {
	r := Runner{
		Persistence: store.New(store.NewMemKV()),
		Transport:   "websocket",
	}
	err := r.Do(context.Background())
	if err == nil || !strings.Contains(err.Error(), "websocket") {
		t.Fatalf("expected unknown transport error, got %v", err)
	}
}
