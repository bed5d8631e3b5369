package shpanseq

import (
	"context"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Reduce consumes the entire seq and combines values using the given reduceFunc,
// starting from the provided initialValue. It returns the final accumulated result.
func Reduce[T any, R any](
	ctx context.Context,
	s Seq[T],
	initialValue R,
	reduceFunc func(acc R, v T) R,
) (R, error) {
	return ReduceWithErr(ctx, s, initialValue, func(acc R, v T) (R, error) {
		return reduceFunc(acc, v), nil
	})
}

// ReduceWithErr consumes the entire seq and combines values using the given reduceFunc,
// starting from the provided initialValue. It returns the final accumulated result.
func ReduceWithErr[T any, R any](
	ctx context.Context,
	s Seq[T],
	initialValue R,
	reduceFunc func(acc R, v T) (R, error),
) (R, error) {
	ret := initialValue
	err := s.ConsumeWithErr(ctx, func(v T) error {
		var err error
		ret, err = reduceFunc(ret, v)
		return err
	})
	if err != nil {
		return util.DefaultValue[R](), err
	}
	return ret, nil
}

// ReduceLazy defers the reduction until the returned Lazy is fetched.
func ReduceLazy[T any, R any](
	s Seq[T],
	initialValue R,
	reduceFunc func(acc R, v T) R,
) Lazy[R] {
	return NewLazy(func(ctx context.Context) (R, error) {
		return Reduce(ctx, s, initialValue, reduceFunc)
	})
}

// MustReduce consumes the entire seq and combines values using the given reduceFunc,
// starting from the provided initialValue. It returns the final accumulated result.
// It panics if an error occurs during the reduction process. it should be used only
// for testing or when the seq is static.
func MustReduce[T any, R any](
	s Seq[T],
	initialValue R,
	reduceFunc func(acc R, v T) R,
) R {
	reduce, err := Reduce(context.Background(), s, initialValue, reduceFunc)
	if err != nil {
		panic(err)
	}
	return reduce
}
