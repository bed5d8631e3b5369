package shpanseq

import (
	"context"
	"io"
	"iter"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Iterator adapts the Seq to a range-over-func loop (for v := range s.Iterator).
// It panics on materialization errors, as range loops have no error channel.
func (s Seq[T]) Iterator(yield func(T) bool) {
	s.Filter(func(v T) bool {
		// Yield returns false if we need to stop (e.g. break within the loop)
		return !yield(v)
	}).FindFirst().
		MustGetOptional()
}

// FromIterator adapts a standard iter.Seq to a Seq. The pull iterator is
// created on Open and stopped on Close.
func FromIterator[E any](seq iter.Seq[E]) Seq[E] {
	var next func() (E, bool)
	var stop func()
	return NewSimpleSeq(func(ctx context.Context) (E, error) {
		if ctx.Err() != nil {
			return util.DefaultValue[E](), ctx.Err()
		}
		e, ok := next()
		if !ok {
			return util.DefaultValue[E](), io.EOF
		}
		return e, nil
	}, WithOpenFuncOption(func(_ context.Context) error {
		next, stop = iter.Pull(seq)
		return nil
	}), WithCloseFuncOption(func() {
		if stop != nil {
			stop()
		}
	}))
}
