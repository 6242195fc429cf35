package providers

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClientProvider returns the client shared by the reputation and
// entitlement endpoints. Per-request deadlines come from the caller's context.
func NewHTTPClientProvider() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        16,
			MaxIdleConnsPerHost: 8,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 3 * time.Second,
			DialContext: (&net.Dialer{
				Timeout:   2 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
		},
	}
}
