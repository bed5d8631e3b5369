package shpanseq

import (
	"context"
	"fmt"
	"io"
)

// Range returns a Seq counting from start to end inclusive, advancing by step.
// A start beyond end yields an empty seq. step must be positive; otherwise the
// returned seq fails with an error matching ErrInvalidArgument.
// The counter resets on Open, so a Range seq can be materialized more than once.
func Range(start, end, step int) Seq[int] {
	if step <= 0 {
		return Error[int](fmt.Errorf("range step must be greater than 0, got %d: %w", step, ErrInvalidArgument))
	}
	return NewSeq(&rangeSeq{start: start, end: end, step: step})
}

type rangeSeq struct {
	start   int
	end     int
	step    int
	current int
}

func (r *rangeSeq) Open(_ context.Context) error {
	r.current = r.start
	return nil
}

func (r *rangeSeq) Close() {
}

func (r *rangeSeq) Emit(ctx context.Context) (int, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	// Exhaustion is terminal, the counter never moves past this point
	if r.current > r.end {
		return 0, io.EOF
	}
	v := r.current
	r.current += r.step
	return v, nil
}
