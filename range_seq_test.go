package shpanseq

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	require.Equal(
		t,
		[]int{0, 2, 4, 6, 8, 10},
		Range(0, 10, 2).MustCollect(),
	)
}

func TestRangeStartBeyondEnd(t *testing.T) {
	require.Empty(t, Range(5, 4, 1).MustCollect())
	require.Empty(t, Range(100, 0, 7).MustCollect())
}

func TestRangeSingleElement(t *testing.T) {
	require.Equal(t, []int{3}, Range(3, 3, 1).MustCollect())
	require.Equal(t, []int{0}, Range(0, 1, 2).MustCollect())
}

func TestRangeValueCount(t *testing.T) {
	// floor((end-start)/step)+1 values, strictly increasing by step,
	// last one within the bound
	for _, tc := range []struct {
		start, end, step int
	}{
		{0, 10, 2},
		{0, 11, 2},
		{1, 100, 7},
		{-10, 10, 3},
		{0, 0, 1},
	} {
		collected := Range(tc.start, tc.end, tc.step).MustCollect()
		require.Len(t, collected, (tc.end-tc.start)/tc.step+1)
		for i, v := range collected {
			require.Equal(t, tc.start+i*tc.step, v)
			require.LessOrEqual(t, v, tc.end)
		}
		require.Greater(t, collected[len(collected)-1]+tc.step, tc.end)
	}
}

func TestRangeInvalidStep(t *testing.T) {
	ctx := context.Background()

	_, err := Range(0, 10, 0).Collect(ctx)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Range(0, 10, -2).Collect(ctx)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRangeDoubleCollection(t *testing.T) {
	s := Range(0, 4, 2)
	require.Equal(t, []int{0, 2, 4}, s.MustCollect())
	require.Equal(t, []int{0, 2, 4}, s.MustCollect())
}

func TestRangeExhaustionIsTerminal(t *testing.T) {
	ctx := context.Background()
	next := openedProvider(t, Range(0, 4, 2))

	for _, expected := range []int{0, 2, 4} {
		v, err := next(ctx)
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}
	for i := 0; i < 3; i++ {
		_, err := next(ctx)
		require.ErrorIs(t, err, io.EOF)
	}
}

func TestGenerate(t *testing.T) {
	require.Equal(
		t,
		[]int{1, 2, 4, 8, 16},
		Generate(1, func(v int) int { return v * 2 }).Limit(5).MustCollect(),
	)
}
