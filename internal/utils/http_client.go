package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the outbound REST client. It embeds *resty.Client so every
// resty method is available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL whose every attempt is
// bounded by timeout (zero disables the bound) and which sends headers on
// every request. Each call returns an independent client with its own
// connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration, headers map[string]string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(headers)

	return &HTTPClient{Client: client}
}
