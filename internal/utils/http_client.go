package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with a default-configured resty.Client.
// Each call returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewAPIClient creates an HTTPClient preconfigured for the hi-time REST API:
// base URL, request timeout and JSON accept header. Resty's own retry loop
// stays disabled; remote failures surface to the sync engine as is.
func NewAPIClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := NewHTTPClient()
	c.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	return c
}
