package shpanseq

import (
	"context"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Error returns a Seq that fails with err, both when opened and when pulled.
func Error[T any](err error) Seq[T] {
	return newSeq[T](func(_ context.Context) (T, error) {
		return util.DefaultValue[T](), err
	}, []Lifecycle{NewLifecycle(func(_ context.Context) error {
		return err
	}, func() {
		// NOP
	})})
}
