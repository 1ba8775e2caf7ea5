package httpclient

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"runtime"
	"time"
)

// DefaultTimeout bounds a single outbound call when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// UserAgent is sent with every outbound request.
var UserAgent = fmt.Sprintf("weather-facade (%s; %s)", runtime.GOOS, runtime.GOARCH)

type userAgentTransport struct {
	next http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return t.next.RoundTrip(req)
}

// New returns an *http.Client for provider calls. The caller's context still governs cancellation.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: userAgentTransport{next: transport},
	}
}
