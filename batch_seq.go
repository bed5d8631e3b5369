package shpanseq

import (
	"context"
	"fmt"
	"io"
)

// Batch returns a Seq grouping consecutive items of src into slices of size
// items, preserving source order. The final batch may be shorter when the
// source runs out mid-fill; it is still delivered, and the pull after it
// reports exhaustion. An empty source yields no batches at all.
// size must be positive; otherwise the returned seq fails with an error
// matching ErrInvalidArgument.
func Batch[T any](src Seq[T], size int) Seq[[]T] {
	if size <= 0 {
		return Error[[]T](fmt.Errorf("batch size must be greater than 0, got %d: %w", size, ErrInvalidArgument))
	}

	var buffer []T
	done := false

	return NewDownSeqSimple(
		src,
		func(ctx context.Context, srcProviderFunc ProviderFunc[T]) ([]T, error) {

			// a previous pull already drained the source
			if done {
				return nil, io.EOF
			}

			for len(buffer) < size {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}

				v, err := srcProviderFunc(ctx)
				if err != nil {
					if err != io.EOF {
						return nil, err
					}
					done = true
					if len(buffer) == 0 {
						return nil, io.EOF
					}
					// short final batch, delivered before reporting exhaustion
					batch := buffer
					buffer = nil
					return batch, nil
				}
				buffer = append(buffer, v)
			}

			batch := buffer
			buffer = nil
			return batch, nil
		},
	)
}
