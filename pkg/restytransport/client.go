package restytransport

import (
	"crypto/tls"
	"net"
	"net/http"

	"httpjson/pkg/config"

	"go.uber.org/zap"
	resty "resty.dev/v3"
)

func newHTTPTransport(cfg config.Config) *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: cfg.DialTimeout}).DialContext,
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
		TLSHandshakeTimeout:   cfg.TlsTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		DisableKeepAlives:     true,
		TLSNextProto:          map[string]func(string, *tls.Conn) http.RoundTripper{},
	}
}

// noRedirect hands 3xx responses back to the caller untouched.
var noRedirect = resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
})

func newRestyClient(cfg config.Config, log *zap.Logger) *resty.Client {
	return resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetTransport(newHTTPTransport(cfg)).
		SetRedirectPolicy(noRedirect).
		SetLogger(log.Sugar())
}
