package markdown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCompletionResolvesOnce(t *testing.T) {
	c := newCompletion()
	first := errors.New("first")
	c.resolve(first)
	c.resolve(errors.New("second"))
	c.resolve(nil)

	if err := c.Wait(context.Background()); !errors.Is(err, first) {
		t.Fatalf("expected first resolution to stick, got %v", err)
	}
}

func TestCompletionWaitHonoursContext(t *testing.T) {
	c := newCompletion()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := c.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	c.resolve(nil)
	if err := c.Wait(context.Background()); err != nil {
		t.Fatalf("expected success after resolve, got %v", err)
	}
}

func TestCompletionHasID(t *testing.T) {
	a, b := newCompletion(), newCompletion()
	if a.ID() == uuid.Nil || a.ID() == b.ID() {
		t.Fatalf("expected distinct non-nil ids, got %s and %s", a.ID(), b.ID())
	}
}

func TestResolvedCompletion(t *testing.T) {
	c := resolvedCompletion(nil)
	select {
	case <-c.Done():
	default:
		t.Fatalf("expected resolved completion")
	}
	if c.Err() != nil {
		t.Fatalf("expected nil error, got %v", c.Err())
	}
}
