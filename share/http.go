package share

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns the client used for both the token exchange and the
// GraphQL call. One connection per call; nothing is kept idle between stages.
func NewHTTPClient() *http.Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
		DisableKeepAlives:     true,
		ResponseHeaderTimeout: 30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   1 * time.Minute,
		Transport: tr,
	}
}
