package shpanseq

import (
	"context"
	"io"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Limit caps the seq at the first limit elements. The source is never pulled
// past the cap.
func (s Seq[T]) Limit(limit int) Seq[T] {
	if limit <= 0 {
		return Empty[T]()
	}
	alreadyConsumed := 0
	return newSeq[T](func(ctx context.Context) (T, error) {
		if alreadyConsumed >= limit {
			return util.DefaultValue[T](), io.EOF
		}
		v, err := s.provider(ctx)
		if err != nil {
			// this covers for both EOF and any other error
			return util.DefaultValue[T](), err
		}
		alreadyConsumed++
		return v, nil
	}, s.allLifecycleElement)
}

// Skip drops the first skip elements of the seq before producing anything.
func (s Seq[T]) Skip(skip int) Seq[T] {
	alreadySkipped := false
	return newSeq[T](func(ctx context.Context) (T, error) {
		if ctx.Err() != nil {
			return util.DefaultValue[T](), ctx.Err()
		}
		if !alreadySkipped {
			alreadySkipped = true
			for i := 0; i < skip; i++ {
				v, err := s.provider(ctx)
				if err != nil {
					return v, err
				}
			}
		}
		return s.provider(ctx)
	}, s.allLifecycleElement)
}
