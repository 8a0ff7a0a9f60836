package jsonclient

import "context"

// Future is the pending outcome of a call started with GetAsync or PostAsync.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func goFuture[T any](call func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = call()
	}()
	return f
}

// Done is closed once the call has completed.
func (f *Future[T]) Done() <-chan struct{} { return f.done }

// Wait blocks until the call completes. Every Wait returns the same outcome.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

func GetAsync[T any](ctx context.Context, c *Client, endpoint string, headers map[string]string) *Future[T] {
	return goFuture(func() (T, error) {
		return Get[T](ctx, c, endpoint, headers)
	})
}

func PostAsync[T any](ctx context.Context, c *Client, endpoint string, body any, headers map[string]string) *Future[T] {
	return goFuture(func() (T, error) {
		return Post[T](ctx, c, endpoint, body, headers)
	})
}
