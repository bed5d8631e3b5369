package shpanseq

import (
	"context"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Generate returns an infinite Seq starting at seed, where each subsequent
// value is next applied to the previous one. It never reports exhaustion;
// bound it with Limit or a cancellable context before materializing.
func Generate[T any](seed T, next Mapper[T, T]) Seq[T] {
	first := true
	var current T
	return NewSimpleSeq(func(ctx context.Context) (T, error) {
		if ctx.Err() != nil {
			return util.DefaultValue[T](), ctx.Err()
		}
		if first {
			first = false
			current = seed
			return current, nil
		}
		current = next(current)
		return current, nil
	})
}
