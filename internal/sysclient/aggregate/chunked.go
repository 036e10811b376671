// Package aggregate collects results of concurrent, paginated chunk requests.
package aggregate

import (
	"context"
	"sync"
)

// Chunked accumulates the results of an expected number of chunks. It completes exactly once:
// successfully when every chunk has advanced, or with the first error reported.
// Items are kept in arrival order.
type Chunked[T any] struct {
	mu         sync.Mutex
	expected   int
	advanced   int
	items      []T
	err        error
	completed  bool
	done       chan struct{}
	onComplete func([]T, error)
}

// NewChunked creates an aggregate expecting n chunks. onComplete may be nil.
// With n <= 0 it completes immediately with no items.
func NewChunked[T any](n int, onComplete func([]T, error)) *Chunked[T] {
	c := &Chunked[T]{
		expected:   n,
		items:      []T{},
		done:       make(chan struct{}),
		onComplete: onComplete,
	}
	if n <= 0 {
		c.mu.Lock()
		notify := c.complete(nil)
		c.mu.Unlock()
		notify()
	}
	return c
}

// Extend adds a page of items, or fails the aggregate when err is not nil.
func (c *Chunked[T]) Extend(items []T, err error) {
	c.mu.Lock()
	if c.completed {
		c.mu.Unlock()
		return
	}
	if err != nil {
		notify := c.complete(err)
		c.mu.Unlock()
		notify()
		return
	}
	c.items = append(c.items, items...)
	c.mu.Unlock()
}

// Advance marks one chunk as finished.
func (c *Chunked[T]) Advance() {
	c.mu.Lock()
	if c.completed {
		c.mu.Unlock()
		return
	}
	c.advanced++
	notify := func() {}
	if c.advanced >= c.expected {
		notify = c.complete(nil)
	}
	c.mu.Unlock()
	notify()
}

// Completed reports whether the aggregate has reached a final state.
func (c *Chunked[T]) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

// Wait blocks until completion or until ctx is done.
func (c *Chunked[T]) Wait(ctx context.Context) ([]T, error) {
	select {
	case <-c.done:
	case <-ctx.Done():
		select {
		case <-c.done:
		default:
			return nil, ctx.Err()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return c.items, nil
}

// complete must be called with mu held. The returned func runs the completion callback and
// must be called after mu is released.
func (c *Chunked[T]) complete(err error) func() {
	c.completed = true
	c.err = err
	if err != nil {
		c.items = nil
	}
	close(c.done)

	onComplete, items := c.onComplete, c.items
	if onComplete == nil {
		return func() {}
	}
	return func() {
		onComplete(items, err)
	}
}

// Chunk splits items into consecutive groups of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
