// Package proxy builds the proxy settings for the Zyte (Crawlera) smart proxy.
package proxy

import (
	"fmt"
	"net/http"
	"net/url"
)

const (
	Host = "proxy.crawlera.com"
	Port = "8010"
)

// Proxies returns the scheme to proxy URL mapping for apiKey.
// The key is used as the user part of the URL as-is: it is neither
// validated nor escaped.
func Proxies(apiKey string) map[string]string {
	auth := apiKey + ":"
	return map[string]string{
		"https": fmt.Sprintf("https://%s@%s:%s/", auth, Host, Port),
		"http":  fmt.Sprintf("http://%s@%s:%s/", auth, Host, Port),
	}
}

// Func returns a function usable as http.Transport.Proxy that routes
// requests through the proxy matching their scheme. Requests with any other
// scheme are sent directly.
func Func(apiKey string) func(*http.Request) (*url.URL, error) {
	proxies := Proxies(apiKey)

	return func(req *http.Request) (*url.URL, error) {
		raw, ok := proxies[req.URL.Scheme]
		if !ok {
			return nil, nil
		}

		proxyURL, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url for scheme %s: %w", req.URL.Scheme, err)
		}
		return proxyURL, nil
	}
}
