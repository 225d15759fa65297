package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestPickStrategyLocal(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "")
	t.Setenv("FUNCTION_TARGET", "")

	r := NewChromedpRenderer("", "/opt/chromium/chrome", slog.Default())
	if got := r.pickStrategy(); got != launchFull {
		t.Fatalf("expected full launch outside serverless, got %v", got)
	}
}

func TestPickStrategyServerlessWithBinary(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "render-fn")

	bin := filepath.Join(t.TempDir(), "chrome")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewChromedpRenderer("", bin, slog.Default())
	if got := r.pickStrategy(); got != launchServerless {
		t.Fatalf("expected serverless launch, got %v", got)
	}
}

func TestPickStrategyServerlessFallsBack(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "render-fn")

	r := NewChromedpRenderer("", filepath.Join(t.TempDir(), "missing"), slog.Default())
	if got := r.pickStrategy(); got != launchFull {
		t.Fatalf("expected fallback to full launch when binary missing, got %v", got)
	}

	r = NewChromedpRenderer("", "", slog.Default())
	if got := r.pickStrategy(); got != launchFull {
		t.Fatalf("expected fallback to full launch when path unset, got %v", got)
	}
}

func TestAllocatorOptionsDiffer(t *testing.T) {
	r := NewChromedpRenderer("/usr/bin/chromium", "/opt/chromium/chrome", slog.Default())
	full := r.allocatorOptions(launchFull)
	serverless := r.allocatorOptions(launchServerless)
	if len(full) == 0 || len(serverless) == 0 {
		t.Fatal("allocator options must not be empty")
	}
	if len(serverless) >= len(full) {
		t.Fatalf("serverless flag set should be reduced: full=%d serverless=%d", len(full), len(serverless))
	}
}
