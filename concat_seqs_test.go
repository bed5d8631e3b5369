package shpanseq

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcatSeqs(t *testing.T) {
	require.Equal(
		t,
		[]int{0, 2, 4, 6, 8, 10},
		ConcatSeqs(
			Range(0, 5, 2),
			Range(6, 11, 2),
		).MustCollect(),
	)
}

func TestConcatSeqsManySources(t *testing.T) {
	require.Equal(
		t,
		[]int{1, 2, 3, 4, 5, 6, 7, 8},
		ConcatSeqs(
			Just(1, 2, 3),
			Just(4, 5),
			Empty[int](),
			Just(6),
			Just(7, 8),
		).MustCollect(),
	)
}

func TestConcatSeqsLengths(t *testing.T) {
	require.Equal(
		t,
		Range(0, 9, 1).MustCount()+Range(20, 24, 1).MustCount(),
		ConcatSeqs(Range(0, 9, 1), Range(20, 24, 1)).MustCount(),
	)
}

func TestEmptyConcatSeqs(t *testing.T) {
	require.Empty(t, ConcatSeqs[int]().MustCollect())
	require.Empty(t, ConcatSeqs(Empty[int](), Empty[int](), Empty[int]()).MustCollect())
	require.Empty(t, Concat(Empty[Seq[int]]()).MustCollect())
}

// trackingProvider records whether anything ever opened or pulled it.
type trackingProvider struct {
	opened  bool
	emitted bool
}

func (p *trackingProvider) Open(_ context.Context) error {
	p.opened = true
	return nil
}

func (p *trackingProvider) Close() {}

func (p *trackingProvider) Emit(_ context.Context) (int, error) {
	p.emitted = true
	return 0, io.EOF
}

func TestConcatSeqsLaterSeqStaysUntouched(t *testing.T) {
	probe := &trackingProvider{}
	require.Equal(
		t,
		[]int{0, 1, 2, 3, 4},
		ConcatSeqs(
			Generate(0, func(v int) int { return v + 1 }),
			NewSeq[int](probe),
		).Limit(5).MustCollect(),
	)
	require.False(t, probe.opened)
	require.False(t, probe.emitted)
}

func TestConcatSeqsSwitchIsOneWay(t *testing.T) {
	ctx := context.Background()
	next := openedProvider(t, ConcatSeqs(Just(1), Just(2)))

	v, err := next(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = next(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, v)

	for i := 0; i < 3; i++ {
		_, err = next(ctx)
		require.ErrorIs(t, err, io.EOF)
	}
}

func TestErrorConcatSeqs(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := ConcatSeqs(Empty[int](), Error[int](boom), Empty[int]()).Collect(ctx)
	require.ErrorIs(t, err, boom)

	_, err = ConcatSeqs(Just(1), Error[int](boom)).Collect(ctx)
	require.ErrorIs(t, err, boom)

	_, err = ConcatSeqs(Error[int](boom), Just(1)).Collect(ctx)
	require.ErrorIs(t, err, boom)
}
