package shpanseq

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	sum, err := Reduce(context.Background(), Range(0, 10, 2), 0, func(acc, v int) int {
		return acc + v
	})
	require.NoError(t, err)
	require.Equal(t, 30, sum)
}

func TestMustReduce(t *testing.T) {
	require.Equal(
		t,
		"abc",
		MustReduce(Just("a", "b", "c"), "", func(acc, v string) string {
			return acc + v
		}),
	)
}

func TestReduceWithErr(t *testing.T) {
	boom := errors.New("boom")
	_, err := ReduceWithErr(context.Background(), Just(1, 2, 3), 0, func(acc, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return acc + v, nil
	})
	require.ErrorIs(t, err, boom)
}

func TestReduceLazy(t *testing.T) {
	reduced := 0
	l := ReduceLazy(Just(1, 2, 3).Peek(func(int) { reduced++ }), 0, func(acc, v int) int {
		return acc + v
	})
	// nothing is consumed until the lazy is fetched
	require.Zero(t, reduced)
	require.Equal(t, 6, l.MustGet())
	require.Equal(t, 3, reduced)
}
