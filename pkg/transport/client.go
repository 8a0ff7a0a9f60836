package transport

import "context"

// Client performs one raw round trip per call. Implementations must be safe
// for concurrent use and must not follow redirects.
type Client interface {
	Get(ctx context.Context, url string) (Response, error)
	Post(ctx context.Context, url string, contentType string, payload []byte) (Response, error)
	Close()
}

// Response is a fully buffered reply. Body is owned by the caller.
type Response interface {
	StatusCode() int
	Body() []byte
}
