package fibertransport

import (
	"context"
	"sync"

	"httpjson/pkg/config"
	"httpjson/pkg/transport"

	fibercli "github.com/gofiber/fiber/v3/client"
)

var _ transport.Client = (*Transport)(nil)

// Transport sends requests through the fiber client. Redirects are not
// followed (max redirects stays 0) and every request asks the server to close
// the connection afterwards.
type Transport struct {
	client    *fibercli.Client
	closeOnce sync.Once
}

func New(cfg config.Config) *Transport {
	return &Transport{client: newFiberClient(cfg)}
}

func (t *Transport) Get(ctx context.Context, url string) (transport.Response, error) {
	req := t.client.R().
		SetContext(ctx).
		SetHeader("Connection", "close")

	res, err := req.Get(url)
	if err != nil {
		fibercli.ReleaseRequest(req)
		return nil, err
	}
	return newFiberResp(res), nil
}

func (t *Transport) Post(ctx context.Context, url string, contentType string, payload []byte) (transport.Response, error) {
	req := t.client.R().
		SetContext(ctx).
		SetHeader("Connection", "close").
		SetHeader("Content-Type", contentType).
		SetRawBody(payload)

	res, err := req.Post(url)
	if err != nil {
		fibercli.ReleaseRequest(req)
		return nil, err
	}
	return newFiberResp(res), nil
}

// Close has nothing to release: no connection outlives its request.
func (t *Transport) Close() {
	t.closeOnce.Do(func() {})
}
