package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client to expose the
// full client API while leaving room for registry-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own
// configuration, connection pool, and state.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://node.example.org")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
