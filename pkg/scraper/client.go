// Package scraper configures the HTTP client used for scraping requests.
package scraper

import (
	"net"
	"net/http"
	"time"

	"scrapekit/pkg/proxy"
	"scrapekit/pkg/useragent"
)

// Config controls how outgoing scraping requests are sent.
type Config struct {
	Timeout time.Duration
	// APIKey routes requests through the Crawlera proxy when set.
	APIKey string
	// UserAgent pins the User-Agent header. Empty means a random one per request.
	UserAgent string
}

// NewClient returns an http.Client that stamps a User-Agent on every request
// and, with an API key, sends it through the Crawlera proxy.
func NewClient(config Config) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if config.APIKey != "" {
		transport.Proxy = proxy.Func(config.APIKey)
	}

	return &http.Client{
		Transport: &userAgentTransport{
			base:      transport,
			userAgent: config.UserAgent,
		},
		Timeout: config.Timeout,
	}
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}

	ua := t.userAgent
	if ua == "" {
		ua = useragent.Random()
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", ua)
	return t.base.RoundTrip(req)
}
