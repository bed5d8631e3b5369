package shpanseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimit(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, Just(1, 2, 3, 4, 5).Limit(3).MustCollect())
	require.Equal(t, []int{1, 2}, Just(1, 2).Limit(5).MustCollect())
	require.Empty(t, Just(1, 2).Limit(0).MustCollect())
	require.Empty(t, Just(1, 2).Limit(-1).MustCollect())
}

func TestLimitDoesNotOverPull(t *testing.T) {
	pulled := 0
	require.Equal(
		t,
		[]int{0, 1, 2},
		Generate(0, func(v int) int { return v + 1 }).Peek(func(int) { pulled++ }).Limit(3).MustCollect(),
	)
	require.Equal(t, 3, pulled)
}

func TestSkip(t *testing.T) {
	require.Equal(t, []int{3, 4, 5}, Just(1, 2, 3, 4, 5).Skip(2).MustCollect())
	require.Empty(t, Just(1, 2).Skip(5).MustCollect())
	require.Equal(t, []int{1, 2}, Just(1, 2).Skip(0).MustCollect())
}

func TestSkipAndLimit(t *testing.T) {
	require.Equal(
		t,
		[]int{4, 6, 8},
		Range(0, 20, 2).Skip(2).Limit(3).MustCollect(),
	)
}
