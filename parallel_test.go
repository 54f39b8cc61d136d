package genarena_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DangerosoDavo/genarena"
)

func TestParallelRangeVisitsEveryValue(t *testing.T) {
	a := genarena.New[int]()
	var handles []genarena.Handle
	want := 0
	for i := range 1000 {
		handles = append(handles, a.Insert(i))
		want += i
	}
	for i, h := range handles {
		if i%10 == 0 {
			v, _ := a.Remove(h)
			want -= v
		}
	}

	var sum, visits atomic.Int64
	err := genarena.ParallelRange(context.Background(), a, 4, func(_ context.Context, h genarena.Handle, v int) error {
		if !a.Contains(h) {
			return errors.New("visited dead handle")
		}
		sum.Add(int64(v))
		visits.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(want), sum.Load())
	assert.Equal(t, int64(a.Len()), visits.Load())
}

func TestParallelRangeStopsOnError(t *testing.T) {
	a := genarena.New[int]()
	for i := range 500 {
		a.Insert(i)
	}
	boom := errors.New("boom")
	err := genarena.ParallelRange(context.Background(), a, 0, func(_ context.Context, _ genarena.Handle, v int) error {
		if v == 250 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestParallelRangeCancelledContext(t *testing.T) {
	a := genarena.New[int]()
	for i := range 10 {
		a.Insert(i)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := genarena.ParallelRange(ctx, a, 2, func(context.Context, genarena.Handle, int) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParallelRangeEmpty(t *testing.T) {
	called := false
	fn := func(context.Context, genarena.Handle, int) error {
		called = true
		return nil
	}
	require.NoError(t, genarena.ParallelRange(context.Background(), genarena.New[int](), 4, fn))
	require.NoError(t, genarena.ParallelRange[int](context.Background(), nil, 4, fn))
	assert.False(t, called)
}
