// Package network provides a pre-configured HTTP client shared across the application.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client used for all portal communication and downloads.
// Timeouts apply to the response headers rather than the whole exchange so
// long-running video transfers are not cut off mid-stream.
var Client = &http.Client{
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with sensible pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
