package markdown

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Completion tracks one asynchronous document write. It resolves exactly once,
// with a nil error on success or the store error on failure.
type Completion struct {
	id   uuid.UUID
	done chan struct{}
	once sync.Once
	err  error
}

func newCompletion() *Completion {
	return &Completion{
		id:   uuid.New(),
		done: make(chan struct{}),
	}
}

func resolvedCompletion(err error) *Completion {
	c := newCompletion()
	c.resolve(err)
	return c
}

func (c *Completion) resolve(err error) {
	c.once.Do(func() {
		c.err = err
		close(c.done)
	})
}

// ID identifies the write in log entries.
func (c *Completion) ID() uuid.UUID {
	return c.id
}

// Done is closed once the write has finished or failed.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Err returns the write error after Done is closed and nil before.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

// Wait blocks until the write resolves or ctx ends. Giving up on ctx does not
// stop the write itself.
func (c *Completion) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
