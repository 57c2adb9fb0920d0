package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/async"
)

func TestAsync_Result(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), "fr", func(_ context.Context, locale string) (string, error) {
		return "lang=" + locale, nil
	})
	got, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, "lang=fr", got)
	assert.True(t, f.IsComplete())

	select {
	case <-f.Done():
	default:
		t.Fatal("Done not closed after Await")
	}
}

func TestGo_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := async.Go(context.Background(), func(context.Context) (int, error) { return 0, boom }).Await()
	assert.ErrorIs(t, err, boom)
}

func TestGo_RecoversPanic(t *testing.T) {
	t.Parallel()

	_, err := async.Go(context.Background(), func(context.Context) (int, error) { panic("template exploded") }).Await()
	require.ErrorIs(t, err, async.ErrPanic)
	assert.Contains(t, err.Error(), "template exploded")
}

func TestGo_CancelledContextSkipsFunction(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := async.Go(ctx, func(context.Context) (int, error) {
		called = true
		return 1, nil
	}).Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestFuture_AwaitTimeouts(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 7, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.False(t, f.IsComplete())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	v, err := f.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ok := []*async.Future[int]{
		async.Async(ctx, 1, func(_ context.Context, n int) (int, error) { return n * 10, nil }),
		async.Resolved(20, nil),
	}
	got, err := async.WaitAll(ok...)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, got)

	first, second := errors.New("first"), errors.New("second")
	_, err = async.WaitAll(async.Resolved(0, nil), async.Resolved(0, first), async.Resolved(0, second))
	assert.ErrorIs(t, err, first)
}

func TestWaitAny(t *testing.T) {
	t.Parallel()

	_, _, err := async.WaitAny[int]()
	assert.ErrorIs(t, err, async.ErrNoFutures)

	block := make(chan struct{})
	defer close(block)
	slow := async.Go(context.Background(), func(context.Context) (int, error) {
		<-block
		return 1, nil
	})
	idx, v, err := async.WaitAny(slow, async.Resolved(2, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, v)
}
