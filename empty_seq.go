package shpanseq

import (
	"context"
	"io"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Empty returns a Seq that is exhausted from the start.
func Empty[T any]() Seq[T] {
	return newSeq(func(_ context.Context) (T, error) {
		return util.DefaultValue[T](), io.EOF
	}, nil)
}
