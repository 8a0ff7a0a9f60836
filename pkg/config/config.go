package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendResty = "resty"
	BackendFiber = "fiber"
)

// Config selects and tunes the transport behind a jsonclient.Client.
// A zero RequestTimeout or ResponseHeaderTimeout means no limit.
type Config struct {
	Backend               string        `mapstructure:"backend"`
	LogLevel              string        `mapstructure:"log_level"`
	RequestTimeout        time.Duration `mapstructure:"request_timeout"`
	DialTimeout           time.Duration `mapstructure:"dial_timeout"`
	TlsTimeout            time.Duration `mapstructure:"tls_timeout"`
	ResponseHeaderTimeout time.Duration `mapstructure:"response_header_timeout"`
	InsecureSkipVerify    bool          `mapstructure:"insecure_skip_verify"`
}

func DefaultConfig() Config {
	return Config{
		Backend:               BackendResty,
		LogLevel:              "info",
		RequestTimeout:        0,
		DialTimeout:           30 * time.Second,
		TlsTimeout:            10 * time.Second,
		ResponseHeaderTimeout: 0,
		InsecureSkipVerify:    false,
	}
}

// Load reads HTTPJSON_* environment variables on top of DefaultConfig.
// envFiles are loaded first with godotenv; missing files are ignored and
// variables already present in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	def := DefaultConfig()
	v := viper.New()
	v.SetEnvPrefix("httpjson")

	v.SetDefault("backend", def.Backend)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("request_timeout", def.RequestTimeout)
	v.SetDefault("dial_timeout", def.DialTimeout)
	v.SetDefault("tls_timeout", def.TlsTimeout)
	v.SetDefault("response_header_timeout", def.ResponseHeaderTimeout)
	v.SetDefault("insecure_skip_verify", def.InsecureSkipVerify)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendResty, BackendFiber:
	default:
		return fmt.Errorf("invalid backend %q (want %q or %q)", c.Backend, BackendResty, BackendFiber)
	}
	durations := map[string]time.Duration{
		"request_timeout":         c.RequestTimeout,
		"dial_timeout":            c.DialTimeout,
		"tls_timeout":             c.TlsTimeout,
		"response_header_timeout": c.ResponseHeaderTimeout,
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("invalid %s (must not be negative)", name)
		}
	}
	return nil
}
