// Package httpclient builds the HTTP client feed fetching runs on. Several
// station sites refuse requests without a browser User-Agent, so every request
// carries one.
package httpclient

import (
	"net/http"
	"time"
)

const (
	userAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// headerTransport injects the default headers before delegating to the base
// RoundTripper.
type headerTransport struct {
	base http.RoundTripper
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", userAgent)
	}
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", acceptHeader)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// New returns an HTTP client with the given overall timeout and default
// headers applied to every request.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: headerTransport{},
	}
}

// NewWithTransport is New with a custom base transport, used by tests.
func NewWithTransport(timeout time.Duration, base http.RoundTripper) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: headerTransport{base: base},
	}
}
