package cli

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/themizzi/exercise-e2e/internal/logging"
)

func TestWithShutdown_SIGTERM(t *testing.T) {
	// GIVEN
	shutdown := make(chan os.Signal, 1)
	ctx, cancel := WithShutdown(context.Background(), shutdown, logging.Discard())
	defer cancel()

	// WHEN
	shutdown <- syscall.SIGTERM

	// THEN
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled")
	}
}

func TestWithShutdown_SIGINT(t *testing.T) {
	shutdown := make(chan os.Signal, 1)
	ctx, cancel := WithShutdown(context.Background(), shutdown, logging.Discard())
	defer cancel()

	shutdown <- syscall.SIGINT

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled")
	}
}

func TestWithShutdown_CancelWithoutSignal(t *testing.T) {
	ctx, cancel := WithShutdown(context.Background(), nil, logging.Discard())

	if err := ctx.Err(); err != nil {
		t.Fatalf("Expected live context, got: %v", err)
	}

	cancel()

	if err := ctx.Err(); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
}

func TestWithShutdown_ParentCancelled(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := WithShutdown(parent, make(chan os.Signal, 1), logging.Discard())
	defer cancel()

	cancelParent()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context did not follow its parent")
	}
}
