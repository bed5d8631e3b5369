package shpanseq

import (
	"context"
	"fmt"
	"io"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Lazy - a generic Lazy type allowing deferred computation of a value
// Lazy supports optional values, caller can decide whether to require a value or use the Optional methods
type Lazy[T any] struct {
	fetcher func(ctx context.Context) (*T, error)
}

// NewLazyOptional creates a new Lazy, allow optional value
func NewLazyOptional[T any](fetcher func(ctx context.Context) (*T, error)) Lazy[T] {
	return Lazy[T]{fetcher: fetcher}
}

// NewLazy creates a new Lazy with a fetcher that does not allow empty values
func NewLazy[T any](fetcher func(ctx context.Context) (T, error)) Lazy[T] {
	return Lazy[T]{fetcher: func(ctx context.Context) (*T, error) {
		v, err := fetcher(ctx)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}}
}

// JustLazy creates a new Lazy with value
func JustLazy[T any](v T) Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return &v, nil
	}}
}

// EmptyLazy gets an empty Lazy
func EmptyLazy[T any]() Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return nil, nil
	}}
}

// ErrorLazy creates a new Lazy with error
func ErrorLazy[T any](err error) Lazy[T] {
	return Lazy[T]{fetcher: func(_ context.Context) (*T, error) {
		return nil, err
	}}
}

// AsSeq converts the Lazy to a Seq of either a single element, an empty seq, or an error seq
func (o Lazy[T]) AsSeq() Seq[T] {
	fetched := false
	return NewSimpleSeq(func(ctx context.Context) (T, error) {
		if fetched {
			return util.DefaultValue[T](), io.EOF
		}
		fetched = true
		if ctx.Err() != nil {
			return util.DefaultValue[T](), ctx.Err()
		}
		v, err := o.fetcher(ctx)
		if err != nil {
			return util.DefaultValue[T](), err
		}
		if v == nil {
			return util.DefaultValue[T](), io.EOF
		}
		return *v, nil
	}, WithOpenFuncOption(func(_ context.Context) error {
		fetched = false
		return nil
	}))
}

// Get returns the value or an error. it will return an error if the value is not present. see GetOptional
// to get an optional value
func (o Lazy[T]) Get(ctx context.Context) (T, error) {
	v, err := o.fetcher(ctx)
	if err != nil {
		return util.DefaultValue[T](), err
	}
	if v == nil {
		return util.DefaultValue[T](), fmt.Errorf("lazy value is empty")
	}
	return *v, nil
}

// MustGet returns the underlying lazy value or panics if the value is not present. can be used for shorter tests
// or when the caller is sure that the value is present
func (o Lazy[T]) MustGet() T {
	v, err := o.Get(context.Background())
	if err != nil {
		panic(err)
	}
	return v
}

// GetOptional returns the value or an error. it will return nil if lazy value is empty
func (o Lazy[T]) GetOptional(ctx context.Context) (*T, error) {
	return o.fetcher(ctx)
}

// MustGetOptional returns the value, nil if the lazy value is empty
// it will panic in case of error, use for testing or when the value is static
func (o Lazy[T]) MustGetOptional() *T {
	optional, err := o.GetOptional(context.Background())
	if err != nil {
		panic(err)
	}
	return optional
}

// OrElse returns the value or a default value if the value is not present.
func (o Lazy[T]) OrElse(ctx context.Context, v T) (T, error) {
	d, err := o.fetcher(ctx)
	if err != nil {
		return util.DefaultValue[T](), err
	}
	if d == nil {
		return v, nil
	}
	return *d, nil
}

// MustOrElse returns the value or a default value if the value is not present.
// it will panic in case of error, use for testing or when the value is static
func (o Lazy[T]) MustOrElse(v T) T {
	d, err := o.fetcher(context.Background())
	if err != nil {
		panic(err)
	}
	if d == nil {
		return v
	}
	return *d
}

func (o Lazy[T]) IsEmpty(ctx context.Context) (bool, error) {
	v, err := o.GetOptional(ctx)
	if err != nil {
		return false, err
	}
	return v == nil, nil
}

// MapLazy maps the value of the Lazy to a new value using the provided mapper function.
// If lazy is empty, it will return an empty Lazy.
func MapLazy[SRC any, TGT any](src Lazy[SRC], mapper Mapper[SRC, TGT]) Lazy[TGT] {
	return NewLazyOptional[TGT](func(ctx context.Context) (*TGT, error) {
		srcValue, err := src.GetOptional(ctx)
		if err != nil {
			return nil, err
		}
		if srcValue == nil {
			return nil, nil
		}
		return util.Pointer(mapper(*srcValue)), nil
	})
}
