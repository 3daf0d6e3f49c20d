package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
)

type retryWriteCommand struct {
	Path string
}

func (retryWriteCommand) Type() string { return "mdsections.test.retry_write" }

func (retryWriteCommand) Validate() error { return nil }

type exhaustedWriteCommand struct {
	Path string
}

func (exhaustedWriteCommand) Type() string { return "mdsections.test.exhausted_write" }

func (exhaustedWriteCommand) Validate() error { return nil }

func TestDispatcherRetriesUntilSuccess(t *testing.T) {
	var attempts int
	handler := NewHandler(func(ctx context.Context, _ retryWriteCommand) error {
		attempts++
		if attempts == 1 {
			return errors.New("transient write failure")
		}
		return nil
	}, WithTimeout[retryWriteCommand](time.Second))

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(1))
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), retryWriteCommand{Path: "README.md"}); err != nil {
		t.Fatalf("dispatch: expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts (initial + retry), got %d", attempts)
	}
}

func TestDispatcherRetryExhaustionPropagatesError(t *testing.T) {
	var attempts int
	handler := NewHandler(func(ctx context.Context, _ exhaustedWriteCommand) error {
		attempts++
		return errors.New("permanent write failure")
	}, WithTimeout[exhaustedWriteCommand](time.Second))

	sub := dispatcher.SubscribeCommand(handler, runner.WithMaxRetries(2))
	t.Cleanup(sub.Unsubscribe)

	err := dispatcher.Dispatch(context.Background(), exhaustedWriteCommand{Path: "README.md"})
	if err == nil {
		t.Fatal("expected dispatcher to return error after exhausting retries")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts (initial + 2 retries), got %d", attempts)
	}
}
