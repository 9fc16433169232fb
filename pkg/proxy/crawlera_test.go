package proxy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxies(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want map[string]string
	}{
		{
			name: "api key",
			key:  "mykey123",
			want: map[string]string{
				"https": "https://mykey123:@proxy.crawlera.com:8010/",
				"http":  "http://mykey123:@proxy.crawlera.com:8010/",
			},
		},
		{
			name: "empty key is not validated",
			key:  "",
			want: map[string]string{
				"https": "https://:@proxy.crawlera.com:8010/",
				"http":  "http://:@proxy.crawlera.com:8010/",
			},
		},
		{
			name: "special characters are not escaped",
			key:  "a b",
			want: map[string]string{
				"https": "https://a b:@proxy.crawlera.com:8010/",
				"http":  "http://a b:@proxy.crawlera.com:8010/",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Proxies(tt.key))
		})
	}
}

func TestProxiesFreshMapping(t *testing.T) {
	first := Proxies("k")
	first["http"] = "changed"

	assert.Equal(t, "http://k:@proxy.crawlera.com:8010/", Proxies("k")["http"])
}

func TestFunc(t *testing.T) {
	resolve := Func("mykey123")

	for _, scheme := range []string{"http", "https"} {
		req, err := http.NewRequest(http.MethodGet, scheme+"://example.com/", nil)
		require.NoError(t, err)

		proxyURL, err := resolve(req)
		require.NoError(t, err)
		require.NotNil(t, proxyURL)
		assert.Equal(t, scheme, proxyURL.Scheme)
		assert.Equal(t, "proxy.crawlera.com:8010", proxyURL.Host)
		assert.Equal(t, "mykey123", proxyURL.User.Username())
		password, set := proxyURL.User.Password()
		assert.True(t, set)
		assert.Empty(t, password)
	}
}

func TestFuncUnknownScheme(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "ftp://example.com/file", nil)
	require.NoError(t, err)

	proxyURL, err := Func("k")(req)
	assert.NoError(t, err)
	assert.Nil(t, proxyURL)
}

func TestFuncInvalidKey(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.com/", nil)
	require.NoError(t, err)

	_, err = Func("bad key")(req)
	assert.Error(t, err)
}
