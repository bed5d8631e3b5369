package shpanseq

import (
	"context"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Map maps a Seq of SRC to a Seq of TGT, one element at a time, lazily.
func Map[SRC any, TGT any](src Seq[SRC], mapper Mapper[SRC, TGT]) Seq[TGT] {
	return MapWithErrAndCtx(src, mapper.ToErrCtx())
}

func MapWithErr[SRC any, TGT any](src Seq[SRC], mapper MapperWithErr[SRC, TGT]) Seq[TGT] {
	return MapWithErrAndCtx(src, mapper.ToErrCtx())
}

func MapWithErrAndCtx[SRC any, TGT any](src Seq[SRC], mapper MapperWithErrAndCtx[SRC, TGT]) Seq[TGT] {
	return newSeq[TGT](
		func(ctx context.Context) (TGT, error) {
			v, err := src.provider(ctx)
			if err != nil {
				return util.DefaultValue[TGT](), err
			}
			return mapper(ctx, v)
		}, src.allLifecycleElement,
	)
}

// Peek allows to peek at the elements of the seq without consuming them
// Peek will not materialize the seq, and will be invoked only (and if) the seq is materialized
func (s Seq[T]) Peek(f func(v T)) Seq[T] {
	return Map(
		s,
		func(v T) T {
			f(v)
			return v
		})
}
