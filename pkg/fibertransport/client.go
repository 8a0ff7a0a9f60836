package fibertransport

import (
	"crypto/tls"
	"net"

	"httpjson/pkg/config"

	fibercli "github.com/gofiber/fiber/v3/client"
	"github.com/valyala/fasthttp"
)

func newFiberBase(cfg config.Config) *fasthttp.Client {
	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			if cfg.DialTimeout <= 0 {
				return fasthttp.Dial(addr)
			}
			return fasthttp.DialTimeout(addr, cfg.DialTimeout)
		},
		TLSConfig:    &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}
}

func newFiberClient(cfg config.Config) *fibercli.Client {
	return fibercli.NewWithClient(newFiberBase(cfg)).SetTimeout(cfg.RequestTimeout)
}
