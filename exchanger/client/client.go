package client

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "exchanger")

// DefaultTimeout applies when the config carries no timeout of its own.
const DefaultTimeout = 30 * time.Second

// Config carries the userapi credentials and connection settings. The values
// are fixed for the lifetime of a Client.
type Config struct {
	Login   string
	Key     string
	BaseURL string // entry point, e.g. https://example.com/api/userapi/v1/
	Timeout time.Duration
	Lang    string // optional response language, e.g. "ru_RU"
}

// Client talks to one Premium Exchanger userapi v1 endpoint. It holds no
// mutable state beyond its configuration and is safe for concurrent use.
// Every operation is exactly one round trip; retries, backoff and caching
// belong to the caller.
type Client struct {
	http *resty.Client
}

// New builds a Client from credentials. The API-LOGIN/API-KEY headers ride
// on every request; API-LANG only when a language is configured.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/") + "/").
		SetTimeout(timeout).
		SetHeader("API-LOGIN", cfg.Login).
		SetHeader("API-KEY", cfg.Key)
	if cfg.Lang != "" {
		rc.SetHeader("API-LANG", cfg.Lang)
	}

	return &Client{http: rc}
}
