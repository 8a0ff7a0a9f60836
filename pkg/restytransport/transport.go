package restytransport

import (
	"context"
	"sync"

	"httpjson/pkg/config"
	"httpjson/pkg/transport"

	"go.uber.org/zap"
	resty "resty.dev/v3"
)

var _ transport.Client = (*Transport)(nil)

// Transport sends requests through a single resty client with keep-alives
// disabled, so every call dials its own connection.
type Transport struct {
	client    *resty.Client
	closeOnce sync.Once
}

// New returns a resty backed transport. A nil log discards resty's own output.
func New(cfg config.Config, log *zap.Logger) *Transport {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transport{client: newRestyClient(cfg, log)}
}

func (t *Transport) Get(ctx context.Context, url string) (transport.Response, error) {
	resp, err := t.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	return newRestyResp(resp), nil
}

func (t *Transport) Post(ctx context.Context, url string, contentType string, payload []byte) (transport.Response, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(payload).
		Post(url)
	if err != nil {
		return nil, err
	}
	return newRestyResp(resp), nil
}

func (t *Transport) Close() {
	t.closeOnce.Do(func() {
		_ = t.client.Close()
	})
}
