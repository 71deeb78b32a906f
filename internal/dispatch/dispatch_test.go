package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitNext(t *testing.T, q *Queue) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.True(t, q.Next(ctx), "no completion was posted")
}

func TestGo_PostsResult(t *testing.T) {
	q := NewQueue(4)
	d := New(context.Background(), q.Post)

	var got int
	var gotErr error
	Go(d, func(context.Context) (int, error) { return 42, nil }, func(v int, err error) {
		got, gotErr = v, err
	})

	waitNext(t, q)
	assert.Equal(t, 42, got)
	assert.NoError(t, gotErr)
}

func TestGo_PostsError(t *testing.T) {
	q := NewQueue(4)
	d := New(context.Background(), q.Post)
	boom := errors.New("connection refused")

	var gotErr error
	Go(d, func(context.Context) (string, error) { return "", boom }, func(_ string, err error) {
		gotErr = err
	})

	waitNext(t, q)
	assert.ErrorIs(t, gotErr, boom)
}

func TestGo_RecoversPanic(t *testing.T) {
	q := NewQueue(4)
	d := New(context.Background(), q.Post)

	var gotErr error
	Go(d, func(context.Context) (int, error) { panic("nil map write") }, func(_ int, err error) {
		gotErr = err
	})

	waitNext(t, q)
	require.Error(t, gotErr)
	assert.Contains(t, gotErr.Error(), "nil map write")
}

func TestGo_CompletionRunsOnConsumer(t *testing.T) {
	q := NewQueue(4)
	d := New(context.Background(), q.Post)

	var ran atomic.Bool
	Go(d, func(context.Context) (struct{}, error) { return struct{}{}, nil }, func(struct{}, error) {
		ran.Store(true)
	})

	d.Wait()
	// The work is done and posted, but nothing runs until the consumer
	// drains the queue.
	assert.False(t, ran.Load())
	assert.Equal(t, 1, q.Len())

	assert.Equal(t, 1, q.Drain())
	assert.True(t, ran.Load())
}

func TestGo_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "app")
	q := NewQueue(1)
	d := New(ctx, q.Post)

	var seen any
	Go(d, func(ctx context.Context) (any, error) { return ctx.Value(key{}), nil }, func(v any, _ error) {
		seen = v
	})

	waitNext(t, q)
	assert.Equal(t, "app", seen)
}

func TestGo_ConcurrentTasks(t *testing.T) {
	const n = 10
	q := NewQueue(n)
	d := New(context.Background(), q.Post)

	release := make(chan struct{})
	var started atomic.Int32
	for i := 0; i < n; i++ {
		Go(d, func(context.Context) (int, error) {
			started.Add(1)
			<-release
			return 0, nil
		}, func(int, error) {})
	}

	// Every task runs at once; none waits for another to finish.
	require.Eventually(t, func() bool { return started.Load() == n }, 5*time.Second, 10*time.Millisecond)
	close(release)
	d.Wait()
	assert.Equal(t, n, q.Drain())
}

func TestQueue_NextHonoursContext(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, q.Next(ctx))
}
