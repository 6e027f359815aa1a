package bg

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubmit_order(t *testing.T) {
	l, stop := Start()
	defer stop()

	var (
		mu      sync.Mutex
		got     []int
		running atomic.Int32
		overlap atomic.Bool
	)
	var jobs []*Job[int]
	for i := range 10 {
		j, err := Submit(context.Background(), l, "order", func(ctx context.Context) (int, error) {
			if running.Add(1) > 1 {
				overlap.Store(true)
			}
			defer running.Add(-1)
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			return i * 2, nil
		})
		require.NoError(t, err)
		jobs = append(jobs, j)
	}
	for i, j := range jobs {
		res, err := j.Wait()
		assert.NoError(t, err)
		assert.Equal(t, i*2, res)
		assert.NotEmpty(t, j.ID)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	assert.False(t, overlap.Load(), "jobs must not run concurrently")
}

func TestJob_Cancel(t *testing.T) {
	t.Run("queued job does not run", func(t *testing.T) {
		l, stop := Start()
		defer stop()

		release := make(chan struct{})
		first, err := Submit(context.Background(), l, "blocker", func(ctx context.Context) (struct{}, error) {
			<-release
			return struct{}{}, nil
		})
		require.NoError(t, err)

		var called atomic.Bool
		second, err := Submit(context.Background(), l, "cancelled", func(ctx context.Context) (struct{}, error) {
			called.Store(true)
			return struct{}{}, nil
		})
		require.NoError(t, err)
		second.Cancel()
		close(release)

		_, err = first.Wait()
		assert.NoError(t, err)
		_, err = second.Wait()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called.Load())
	})
	t.Run("running job sees cancellation", func(t *testing.T) {
		l, stop := Start()
		defer stop()

		started := make(chan struct{})
		j, err := Submit(context.Background(), l, "running", func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})
		require.NoError(t, err)
		<-started
		j.Cancel()
		<-j.Done()
		_, err = j.Wait()
		assert.ErrorIs(t, err, context.Canceled)
	})
	t.Run("submit context cancels the job", func(t *testing.T) {
		l, stop := Start()
		defer stop()

		ctx, cancel := context.WithCancel(context.Background())
		started := make(chan struct{})
		j, err := Submit(ctx, l, "running", func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})
		require.NoError(t, err)
		<-started
		cancel()
		_, err = j.Wait()
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestJob_panic(t *testing.T) {
	l, stop := Start()
	defer stop()

	j, err := Submit(context.Background(), l, "panic", func(ctx context.Context) (int, error) {
		panic("oops")
	})
	require.NoError(t, err)
	_, err = j.Wait()
	assert.ErrorIs(t, err, ErrPanic)

	// loop survives
	j2, err := Submit(context.Background(), l, "after panic", func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	got, err := j2.Wait()
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestStop(t *testing.T) {
	l, stop := Start(WithQueueSize(1))

	started := make(chan struct{})
	j, err := Submit(context.Background(), l, "long", func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})
	require.NoError(t, err)
	<-started

	assert.NoError(t, stop())
	assert.NoError(t, stop(), "second stop must be safe")

	_, err = j.Wait()
	assert.ErrorIs(t, err, context.Canceled)

	_, err = Submit(context.Background(), l, "late", func(ctx context.Context) (int, error) {
		return 0, errors.New("must not run")
	})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l, stop := Start(WithContext(ctx))
	defer stop()

	started := make(chan struct{})
	j, err := Submit(context.Background(), l, "base", func(ctx context.Context) (int, error) {
		close(started)
		<-ctx.Done()
		return 0, ctx.Err()
	})
	require.NoError(t, err)
	<-started
	cancel()
	_, err = j.Wait()
	assert.ErrorIs(t, err, context.Canceled)
}
