package shpanseq

import (
	"context"
	"io"
	"slices"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Just returns a Seq over the given items. The backing slice is re-cloned on
// every Open, so a Just seq can be materialized more than once.
func Just[T any](items ...T) Seq[T] {
	return NewSeq(&justSeq[T]{slcOrig: items})
}

type justSeq[T any] struct {
	slcOrig []T
	slc     []T
}

func (j *justSeq[T]) Open(_ context.Context) error {
	if j.slcOrig != nil {
		j.slc = slices.Clone(j.slcOrig)
	}
	return nil
}

func (j *justSeq[T]) Close() {
	j.slc = nil
}

func (j *justSeq[T]) Emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	if len(j.slc) == 0 {
		return util.DefaultValue[T](), io.EOF
	}
	v := j.slc[0]
	j.slc = j.slc[1:]
	return v, nil
}
