package aggregate

import (
	"context"
	"net/url"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/dispatch"
)

// PageFunc fetches and maps one page, returning the link to the next page if any.
type PageFunc[T any] func(ctx context.Context, req dispatch.Request) ([]T, *url.URL, error)

// Drain runs one goroutine per initial request. Each goroutine walks its pages strictly in
// sequence. The first failure cancels the rest and discards every collected item.
func Drain[T any](ctx context.Context, requests []dispatch.Request, fetch PageFunc[T]) ([]T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	agg := NewChunked[T](len(requests), nil)

	for _, req := range requests {
		go func(req dispatch.Request) {
			for {
				items, next, err := fetch(ctx, req)
				agg.Extend(items, err)
				if err != nil || next == nil || agg.Completed() {
					agg.Advance()
					return
				}
				req = dispatch.Follow(next)
			}
		}(req)
	}

	return agg.Wait(ctx)
}
