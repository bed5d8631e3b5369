package shpanseq

import (
	"context"
	"fmt"
	"io"

	"github.com/shpandrak/shpanseq/internal/util"
)

// Seq is a lazy, pull-based sequence of values of type T.
// Nothing is produced until the Seq is materialized (Consume, Collect, ...),
// and values are produced one at a time, on demand, within the caller's pull.
type Seq[T any] struct {
	provider            ProviderFunc[T]
	allLifecycleElement []Lifecycle
}

// ProviderFunc produces the next value of the sequence, or io.EOF once the
// sequence is exhausted. After reporting io.EOF it keeps reporting io.EOF.
type ProviderFunc[T any] func(ctx context.Context) (T, error)

func NewSeq[T any](provider Provider[T]) Seq[T] {
	return newSeq(provider.Emit, []Lifecycle{provider})
}

func newSeq[T any](providerFunc ProviderFunc[T], allLifecycleElement []Lifecycle) Seq[T] {
	return Seq[T]{provider: providerFunc, allLifecycleElement: allLifecycleElement}
}

type CreateSeqOption struct {
	openFunc  func(ctx context.Context) error
	closeFunc func()
}

func WithOpenFuncOption(openFunc func(ctx context.Context) error) CreateSeqOption {
	return CreateSeqOption{openFunc: openFunc}
}

func WithCloseFuncOption(closeFunc func()) CreateSeqOption {
	return CreateSeqOption{closeFunc: closeFunc}
}

func NewSimpleSeq[T any](providerFunc ProviderFunc[T], options ...CreateSeqOption) Seq[T] {
	var openFunc func(ctx context.Context) error
	var closeFunc func()

	for _, option := range options {
		if option.openFunc != nil {
			openFunc = option.openFunc
		}
		if option.closeFunc != nil {
			closeFunc = option.closeFunc
		}
	}

	var lifecycleElements []Lifecycle
	if openFunc != nil || closeFunc != nil {
		lifecycleElements = []Lifecycle{
			NewLifecycle(openFunc, closeFunc),
		}
	}
	return Seq[T]{provider: providerFunc, allLifecycleElement: lifecycleElements}
}

// Consume consumes the entire sequence and applies the provided function to each element
// It returns an error if the sequence materialization fails in any stage of the pipeline
// For empty sequences, it returns immediately with no error
// For infinite sequences, it will block until either ctx is cancelled or an error occurs
func (s Seq[T]) Consume(ctx context.Context, f func(T)) error {
	return s.ConsumeWithErr(ctx, func(v T) error {
		f(v)
		return nil
	})
}

// MustConsume is a convenience method that panics if the sequence errors
func (s Seq[T]) MustConsume(f func(T)) {
	err := s.Consume(context.Background(), f)
	if err != nil {
		panic(err)
	}
}

// ConsumeWithErr consumes the entire sequence and applies the provided function to each element
// Allows to return an error from the function to stop the pipeline
func (s Seq[T]) ConsumeWithErr(ctx context.Context, f func(T) error) error {
	return s.ConsumeWithErrAndCtx(ctx, func(_ context.Context, v T) error {
		return f(v)
	})
}

// ConsumeWithErrAndCtx consumes the entire sequence and applies the provided function to each element
// Allows to return an error from the function to stop the pipeline,
// passing through the context allowing the function to gracefully cancel
func (s Seq[T]) ConsumeWithErrAndCtx(ctx context.Context, f func(ctx context.Context, value T) error) error {

	cancelFunc, err := doOpenSeq[T](ctx, s)
	if err != nil {
		return err
	}

	// If we reach here, all lifecycle elements have been opened successfully
	// We can defer closing them until the end of the function
	defer func() {
		doCloseSubSeq(s)
		cancelFunc()
	}()

	for {

		// Make sure to check if the context is done before trying to get the next item
		if ctx.Err() != nil {
			return ctx.Err()
		}
		v, err := s.provider(ctx)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		err = f(ctx, v)
		if err != nil {
			return err
		}
	}
}

// FindFirst returns a Lazy holding the first element of the sequence,
// empty if the sequence is empty. Only a single element is ever pulled.
func (s Seq[T]) FindFirst() Lazy[T] {
	return NewLazyOptional[T](func(ctx context.Context) (*T, error) {
		itemArr, err := s.Limit(1).Collect(ctx)
		if err != nil {
			return nil, err
		}
		if len(itemArr) > 0 {
			return &itemArr[0], nil
		}
		return nil, nil
	})
}

// FindLast returns a Lazy holding the last element of the sequence,
// empty if the sequence is empty. The entire sequence is consumed.
func (s Seq[T]) FindLast() Lazy[T] {
	return NewLazyOptional[T](func(ctx context.Context) (*T, error) {
		var result *T
		err := s.Consume(ctx, func(v T) {
			result = &v
		})
		if err != nil {
			return nil, err
		}
		return result, nil
	})
}

// Collect materializes the sequence, and collects all elements into a slice
// It returns an error if the sequence materialization fails in any stage of the pipeline
func (s Seq[T]) Collect(ctx context.Context) ([]T, error) {
	var result []T
	err := s.Consume(ctx, func(v T) {
		result = append(result, v)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MustCollect is a convenience method that panics if the sequence errors
// should be used for testing purpose or when sequences are static (e.g. slice sourced seqs)
func (s Seq[T]) MustCollect() []T {
	result, err := s.Collect(context.Background())
	if err != nil {
		panic(err)
	}
	return result
}

func (s Seq[T]) Filter(predicate Predicate[T]) Seq[T] {
	return s.FilterWithErrAndCtx(predicate.ToErrCtx())
}

func (s Seq[T]) FilterWithErr(predicate PredicateWithErr[T]) Seq[T] {
	return s.FilterWithErrAndCtx(predicate.ToErrCtx())
}

func (s Seq[T]) FilterWithErrAndCtx(predicate PredicateWithErrAndCtx[T]) Seq[T] {
	return newSeq[T](func(ctx context.Context) (T, error) {
		for {
			v, err := s.provider(ctx)
			if err != nil {
				return v, err
			}
			shouldKeep, err := predicate(ctx, v)
			if err != nil {
				// Wrapping errors, e.g. we don't want EOF accidentally returned from here
				return util.DefaultValue[T](), fmt.Errorf("filter failed for Seq: %w", err)
			}
			if shouldKeep {
				return v, nil
			}
		}
	}, s.allLifecycleElement)
}

// Count counts the number of elements in the sequence (materializes the sequence)
func (s Seq[T]) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.Consume(ctx, func(v T) {
		count++
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MustCount is a convenience method that panics if the sequence errors.
// Should be used for testing purpose or when sequences are static (e.g. slice sourced seqs)
func (s Seq[T]) MustCount() int {
	count, err := s.Count(context.Background())
	if err != nil {
		panic(err)
	}
	return count
}

func (s Seq[T]) IsEmpty(ctx context.Context) (bool, error) {
	return s.FindFirst().IsEmpty(ctx)
}

func (s Seq[T]) WithAdditionalLifecycle(lch Lifecycle) Seq[T] {
	return newSeq(s.provider, append(s.allLifecycleElement, lch))
}

func doOpenSeq[T any](ctx context.Context, s Seq[T]) (context.CancelFunc, error) {
	ctxWithCancel, cancelFunc := context.WithCancel(ctx)
	// Running all lifecycle elements
	for lcIdx, l := range s.allLifecycleElement {
		err := l.Open(ctxWithCancel)
		if err != nil {
			// If we fail to open a lifecycle element, we need to close all previously opened elements
			// and return the error
			for i := 0; i < lcIdx; i++ {
				s.allLifecycleElement[i].Close()
			}
			// Cancel the context to stop any ongoing operations
			cancelFunc()

			return nil, fmt.Errorf("failed to open seq lifecycle element %d: %w", lcIdx, err)
		}
	}
	return cancelFunc, nil
}

func openSubSeq[T any](ctx context.Context, s Seq[T]) error {
	for _, l := range s.allLifecycleElement {
		if err := l.Open(ctx); err != nil {
			return err
		}
	}
	return nil
}

func doCloseSubSeq[T any](s Seq[T]) {
	for _, l := range s.allLifecycleElement {
		l.Close()
	}
}
