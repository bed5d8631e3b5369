package shpanseq

import "context"

type downSeqProviderFunc[S any, T any] func(ctx context.Context, srcProviderFunc ProviderFunc[S]) (T, error)

// DownSeqProvider derives a Seq of T from a source Seq of S, pulling from the
// source through the provider func it is handed.
type DownSeqProvider[SRC any, TGT any] interface {
	Open(ctx context.Context, srcProviderFunc ProviderFunc[SRC]) error
	Emit(ctx context.Context, srcProviderFunc ProviderFunc[SRC]) (TGT, error)
	Close()
}

func NewDownSeq[S any, T any](
	src Seq[S],
	downSeqProvider DownSeqProvider[S, T],
) Seq[T] {
	return NewSimpleSeq[T](
		func(ctx context.Context) (T, error) {
			return downSeqProvider.Emit(ctx, src.provider)
		},
		WithOpenFuncOption(func(ctx context.Context) error {
			if err := openSubSeq(ctx, src); err != nil {
				return err
			}
			return downSeqProvider.Open(ctx, src.provider)
		}),
		WithCloseFuncOption(func() {
			downSeqProvider.Close()
			doCloseSubSeq(src)
		}),
	)
}

func NewDownSeqSimple[S any, T any](
	src Seq[S],
	downSeqProviderFunc downSeqProviderFunc[S, T],
) Seq[T] {
	return NewDownSeq[S, T](
		src,
		simpleDownSeqProvider[S, T]{
			downSeqProviderFunc: downSeqProviderFunc,
		})
}

type simpleDownSeqProvider[S any, T any] struct {
	downSeqProviderFunc downSeqProviderFunc[S, T]
}

func (sd simpleDownSeqProvider[S, T]) Open(_ context.Context, _ ProviderFunc[S]) error {
	return nil
}

func (sd simpleDownSeqProvider[S, T]) Emit(ctx context.Context, srcProviderFunc ProviderFunc[S]) (T, error) {
	return sd.downSeqProviderFunc(ctx, srcProviderFunc)
}

func (sd simpleDownSeqProvider[S, T]) Close() {
}
