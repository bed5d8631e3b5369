package shpanseq

import (
	"context"
	"io"

	"github.com/shpandrak/shpanseq/internal/util"
)

type interleavedSeq[T any] struct {
	a       Seq[T]
	b       Seq[T]
	pending *T
	done    bool
}

// Interleave returns a Seq alternating between items of a and b, starting
// with a. Pairing is strict: the moment either side is exhausted the whole
// seq is exhausted, and an item already pulled from a without a partner from
// b is discarded. Both seqs therefore contribute the same number of items.
func Interleave[T any](a, b Seq[T]) Seq[T] {
	return NewSeq(&interleavedSeq[T]{a: a, b: b})
}

func (is *interleavedSeq[T]) Open(ctx context.Context) error {
	is.pending = nil
	is.done = false
	if err := openSubSeq(ctx, is.a); err != nil {
		return err
	}
	if err := openSubSeq(ctx, is.b); err != nil {
		doCloseSubSeq(is.a)
		return err
	}
	return nil
}

func (is *interleavedSeq[T]) Close() {
	is.pending = nil
	doCloseSubSeq(is.a)
	doCloseSubSeq(is.b)
}

func (is *interleavedSeq[T]) Emit(ctx context.Context) (T, error) {
	if ctx.Err() != nil {
		return util.DefaultValue[T](), ctx.Err()
	}
	if is.done {
		return util.DefaultValue[T](), io.EOF
	}

	// Second half of the current pair
	if is.pending != nil {
		v := *is.pending
		is.pending = nil
		return v, nil
	}

	// A pair is pulled as a unit: a first, then b. Either side reporting EOF
	// ends the whole seq, even when its counterpart still has items.
	aItem, err := is.a.provider(ctx)
	if err != nil {
		if err == io.EOF {
			is.done = true
		}
		return util.DefaultValue[T](), err
	}
	bItem, err := is.b.provider(ctx)
	if err != nil {
		// aItem is dropped here, a half pair is never emitted
		if err == io.EOF {
			is.done = true
		}
		return util.DefaultValue[T](), err
	}
	is.pending = &bItem
	return aItem, nil
}
