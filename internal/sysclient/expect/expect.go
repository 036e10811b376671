// Package expect turns extracted items into records under "exactly one" and "all of them" rules.
package expect

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

// Transform maps one object. (zero, false, nil) rejects the object; an error aborts the mapping.
type Transform[T any] func(ctx context.Context, o jsonview.Object) (T, bool, error)

// One requires exactly one item and maps it.
func One[T any](ctx context.Context, id string, items []jsonview.Object, fn Transform[T]) (T, error) {
	var zero T
	switch len(items) {
	case 0:
		return zero, model.NewNotFoundError(id)
	case 1:
		v, ok, err := fn(ctx, items[0])
		if err != nil {
			return zero, err
		}
		if !ok {
			return zero, model.NewMappingError("transform error (one)")
		}
		return v, nil
	default:
		return zero, model.NewAmbiguousError()
	}
}

// Many maps every item; a single rejection fails the whole list.
func Many[T any](ctx context.Context, items []jsonview.Object, fn Transform[T]) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		v, ok, err := fn(ctx, item)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, model.NewMappingError("transform error (many)")
		}
		out = append(out, v)
	}
	return out, nil
}

// ManyFlat maps every item to a list and concatenates the lists.
func ManyFlat[T any](ctx context.Context, items []jsonview.Object, fn Transform[[]T]) ([]T, error) {
	lists, err := Many(ctx, items, fn)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, l := range lists {
		out = append(out, l...)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
