package shpanseq

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	require.Equal(
		t,
		[]string{"1", "2", "3"},
		Map(Just(1, 2, 3), strconv.Itoa).MustCollect(),
	)
}

func TestMapIsLazy(t *testing.T) {
	mapped := 0
	s := Map(Just(1, 2, 3), func(v int) int {
		mapped++
		return v * 10
	})
	require.Zero(t, mapped)
	require.Equal(t, []int{10, 20}, s.Limit(2).MustCollect())
	require.Equal(t, 2, mapped)
}

func TestMapWithErr(t *testing.T) {
	boom := errors.New("boom")
	_, err := MapWithErr(Just(1, 2), func(v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	}).Collect(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestPeek(t *testing.T) {
	var seen []int
	require.Equal(
		t,
		[]int{1, 2, 3},
		Just(1, 2, 3).Peek(func(v int) { seen = append(seen, v) }).MustCollect(),
	)
	require.Equal(t, []int{1, 2, 3}, seen)
}
