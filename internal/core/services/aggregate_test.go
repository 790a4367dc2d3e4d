package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Run("collects every non-empty result", func(t *testing.T) {
		out := Aggregate(context.Background(), 10, 4, func(_ context.Context, i int) (string, error) {
			return fmt.Sprintf("item-%d", i), nil
		}, nil)

		require.Len(t, out, 10)
		want := make([]string, 10)
		for i := range want {
			want[i] = fmt.Sprintf("item-%d", i)
		}
		sort.Strings(out)
		sort.Strings(want)
		assert.Equal(t, want, out)
	})

	t.Run("zero items yields nil without spawning workers", func(t *testing.T) {
		called := false
		out := Aggregate(context.Background(), 0, 4, func(context.Context, int) (string, error) {
			called = true
			return "x", nil
		}, nil)

		assert.Nil(t, out)
		assert.False(t, called)
	})

	t.Run("empty results are dropped", func(t *testing.T) {
		out := Aggregate(context.Background(), 5, 2, func(_ context.Context, i int) (string, error) {
			if i%2 == 0 {
				return "", nil
			}
			return "kept", nil
		}, nil)

		assert.Len(t, out, 2)
	})

	t.Run("one failing worker is isolated from its siblings", func(t *testing.T) {
		out := Aggregate(context.Background(), 6, 3, func(_ context.Context, i int) (string, error) {
			if i == 2 {
				return "", errors.New("decode failed")
			}
			return fmt.Sprintf("ok-%d", i), nil
		}, nil)

		assert.Len(t, out, 5)
	})

	t.Run("never exceeds the worker bound", func(t *testing.T) {
		var active, peak int32
		var mu sync.Mutex

		Aggregate(context.Background(), 32, 4, func(context.Context, int) (string, error) {
			n := atomic.AddInt32(&active, 1)
			mu.Lock()
			if n > peak {
				peak = n
			}
			mu.Unlock()
			defer atomic.AddInt32(&active, -1)
			return "x", nil
		}, nil)

		assert.LessOrEqual(t, peak, int32(4))
	})

	t.Run("progress callback fires once per item including failures", func(t *testing.T) {
		var done int32
		Aggregate(context.Background(), 7, 2, func(_ context.Context, i int) (string, error) {
			if i == 0 {
				return "", errors.New("boom")
			}
			return "x", nil
		}, func() { atomic.AddInt32(&done, 1) })

		assert.Equal(t, int32(7), atomic.LoadInt32(&done))
	})

	t.Run("non-positive worker cap falls back to the default", func(t *testing.T) {
		out := Aggregate(context.Background(), 3, 0, func(_ context.Context, i int) (string, error) {
			return "v", nil
		}, nil)

		assert.Len(t, out, 3)
	})

	t.Run("results arrive in completion order not submission order", func(t *testing.T) {
		// Hold item 0 until item 1's result has been collected: the later
		// submission finishes first.
		release := make(chan struct{})
		var once sync.Once
		out := Aggregate(context.Background(), 2, 2, func(_ context.Context, i int) (string, error) {
			if i == 0 {
				<-release
				return "slow", nil
			}
			return "fast", nil
		}, func() { once.Do(func() { close(release) }) })

		require.Len(t, out, 2)
		assert.Equal(t, []string{"fast", "slow"}, out)
	})
}
