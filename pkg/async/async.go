package async

import (
	"context"
	"fmt"
	"time"
)

// Future is the eventual result of a function started with Go or Async.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Done is closed when the function has returned.
func (f *Future[U]) Done() <-chan struct{} { return f.done }

// Await blocks until the function returns.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext is like Await but gives up when ctx is done. The function
// keeps running; only the wait is abandoned.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits at most timeout and returns ErrTimeout after that.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-f.done:
		return f.result, f.err
	case <-t.C:
		var zero U
		return zero, ErrTimeout
	}
}

func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) in a new goroutine. If ctx is already done fn is
// not called and the future resolves to ctx.Err().
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return Go(ctx, func(ctx context.Context) (U, error) { return fn(ctx, param) })
}

// Go runs fn(ctx) in a new goroutine.
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result, f.err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx)
	}()
	return f
}

// Resolved returns a future that is already complete.
func Resolved[U any](v U, err error) *Future[U] {
	f := &Future[U]{result: v, err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// WaitAll waits for every future and returns their results in order.
// It returns the first error by position, after all futures completed.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var first error
	for i, f := range futures {
		res, err := f.Await()
		results[i] = res
		if err != nil && first == nil {
			first = err
		}
	}
	return results, first
}

// WaitAny returns the index, result and error of the first future to finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}
	type outcome struct {
		index  int
		result U
		err    error
	}
	done := make(chan outcome, len(futures))
	for i, f := range futures {
		go func() {
			res, err := f.Await()
			done <- outcome{i, res, err}
		}()
	}
	o := <-done
	return o.index, o.result, o.err
}
