package jsonclient

import (
	"httpjson/pkg/config"
	"httpjson/pkg/fibertransport"
	"httpjson/pkg/logger"
	"httpjson/pkg/restytransport"
	"httpjson/pkg/transport"
)

// Open validates cfg and builds a Client on the backend it names. Unless
// WithLogger is given, the client logs JSON to stdout at cfg.LogLevel.
func Open(cfg config.Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts = append([]Option{WithLogger(logger.New(cfg.LogLevel))}, opts...)
	c := New(nil, opts...)

	var tr transport.Client
	switch cfg.Backend {
	case config.BackendFiber:
		tr = fibertransport.New(cfg)
	default:
		tr = restytransport.New(cfg, c.log)
	}
	c.tr = tr
	return c, nil
}
