// Package jsonclient issues single HTTPS round trips and decodes JSON replies.
//
// The headers argument of every call is accepted and then dropped; nothing the
// caller passes there reaches the wire. POST requests only ever carry
// Content-Type: application/json.
package jsonclient

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"httpjson/pkg/transport"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const contentTypeJSON = "application/json"

// Client holds no per-call state and is safe for concurrent use.
type Client struct {
	tr  transport.Client
	log *zap.Logger
}

type Option func(*Client)

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func New(tr transport.Client, opts ...Option) *Client {
	c := &Client{tr: tr, log: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Close() { c.tr.Close() }

// Get requests endpoint and decodes a 200 reply into T.
func Get[T any](ctx context.Context, c *Client, endpoint string, headers map[string]string) (T, error) {
	var out T
	err := c.GetInto(ctx, endpoint, headers, &out)
	return out, err
}

// Post sends body as JSON to endpoint and decodes a 200 reply into T.
func Post[T any](ctx context.Context, c *Client, endpoint string, body any, headers map[string]string) (T, error) {
	var out T
	err := c.PostInto(ctx, endpoint, body, headers, &out)
	return out, err
}

// GetInto is Get with a caller supplied decode target.
func (c *Client) GetInto(ctx context.Context, endpoint string, headers map[string]string, out any) error {
	url, err := target(endpoint)
	if err != nil {
		return err
	}
	log := c.start(http.MethodGet, url, headers)

	began := time.Now()
	resp, err := c.tr.Get(ctx, url)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return errors.Wrap(err, "sending GET request")
	}
	return c.finish(log, resp, time.Since(began), out)
}

// PostInto is Post with a caller supplied decode target.
func (c *Client) PostInto(ctx context.Context, endpoint string, body any, headers map[string]string, out any) error {
	url, err := target(endpoint)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return &EncodeError{Err: err}
	}
	log := c.start(http.MethodPost, url, headers)

	began := time.Now()
	resp, err := c.tr.Post(ctx, url, contentTypeJSON, payload)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return errors.Wrap(err, "sending POST request")
	}
	return c.finish(log, resp, time.Since(began), out)
}

func (c *Client) start(method, url string, headers map[string]string) *zap.Logger {
	log := c.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("method", method),
		zap.String("url", url),
	)
	if len(headers) > 0 {
		// TODO: decide merge or override semantics against the default headers
		// before attaching these to the request.
		log.Debug("caller headers are not forwarded", zap.Int("count", len(headers)))
	}
	log.Debug("sending request")
	return log
}

func (c *Client) finish(log *zap.Logger, resp transport.Response, elapsed time.Duration, out any) error {
	body := resp.Body()
	log.Debug("response received",
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", elapsed),
	)

	if resp.StatusCode() != http.StatusOK {
		err := &StatusError{StatusCode: resp.StatusCode(), Body: string(body)}
		log.Warn("unexpected status", zap.Int("status", resp.StatusCode()))
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Warn("invalid JSON response", zap.Error(err))
		return &DecodeError{Err: err}
	}
	return nil
}
