package datamaxiapi

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamaxiplus/datamaxi-go/pkg/testing/httptesting"
	"github.com/datamaxiplus/datamaxi-go/pkg/version"
)

func newTestRestClient(t *testing.T, cfg Config) (*RestClient, *httptesting.MockTransport) {
	if len(cfg.APIKey) == 0 {
		cfg.APIKey = "test-api-key"
	}

	client, err := NewRestClient(cfg)
	require.NoError(t, err)

	transport := &httptesting.MockTransport{}
	client.HttpClient.Transport = transport
	return client, transport
}

func newTestClient(t *testing.T) (*Client, *httptesting.MockTransport) {
	rest, transport := newTestRestClient(t, Config{})
	return NewClient(rest), transport
}

func jsonReply(body string) httptesting.RoundTripFunc {
	return func(req *http.Request) (*http.Response, error) {
		return httptesting.BuildResponseString(http.StatusOK, body), nil
	}
}

func TestRestClient_Query(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestRestClient(t, Config{})

	transport.GET("/api/v1/forex/symbols", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "test-api-key", req.Header.Get(APIKeyHeader))
		assert.Equal(t, "application/json;charset=utf-8", req.Header.Get("Content-Type"))
		assert.Equal(t, "datamaxi-go/"+version.Version, req.Header.Get("User-Agent"))
		assert.Equal(t, "api.datamaxiplus.com", req.URL.Host)
		return httptesting.BuildResponseString(http.StatusOK, `["USD-KRW"]`), nil
	})

	res, err := client.Query(ctx, "/api/v1/forex/symbols", nil)
	require.NoError(t, err)

	symbols, err := res.Strings()
	require.NoError(t, err)
	assert.Equal(t, []string{"USD-KRW"}, symbols)
	assert.Nil(t, res.LimitUsage)
	assert.Nil(t, res.Header)
}

func TestRestClient_QueryEncoding(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestRestClient(t, Config{})

	transport.GET("/api/v1/telegram/posts", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "channel=news@crypto&page=1", req.URL.RawQuery)
		return httptesting.BuildResponseString(http.StatusOK, `{}`), nil
	})

	_, err := client.Query(ctx, "/api/v1/telegram/posts", url.Values{
		"channel": {"news@crypto"},
		"page":    {"1"},
	})
	require.NoError(t, err)
}

func TestRestClient_BaseURLPrefix(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestRestClient(t, Config{BaseURL: "http://localhost:8080/proxy/"})

	transport.GET("/proxy/api/v1/forex/symbols", jsonReply(`[]`))

	_, err := client.Query(ctx, "/api/v1/forex/symbols", nil)
	require.NoError(t, err)
}

func TestRestClient_NonJSONBody(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestRestClient(t, Config{})
	transport.GET("/v1/google/keywords", jsonReply(`pong`))

	res, err := client.Query(ctx, "/v1/google/keywords", nil)
	require.NoError(t, err)

	var text string
	require.NoError(t, res.Decode(&text))
	assert.Equal(t, "pong", text)
}

func TestRestClient_LimitUsage(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestRestClient(t, Config{ShowLimitUsage: true, ShowHeader: true})

	transport.GET("/api/v1/forex/symbols", func(req *http.Request) (*http.Response, error) {
		resp := httptesting.BuildResponseString(http.StatusOK, `[]`)
		httptesting.SetHeader(resp, "X-RateLimit-Limit-Minute", "100")
		httptesting.SetHeader(resp, "X-RateLimit-Remaining-Minute", "99")
		httptesting.SetHeader(resp, "X-RateLimit-Reset", "30")
		httptesting.SetHeader(resp, "X-Request-Id", "abc")
		return resp, nil
	})

	res, err := client.Query(ctx, "/api/v1/forex/symbols", nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"x-ratelimit-limit-minute":     "100",
		"x-ratelimit-remaining-minute": "99",
		"x-ratelimit-reset":            "30",
	}, res.LimitUsage)
	assert.Equal(t, "abc", res.Header.Get("X-Request-Id"))
}

func TestRestClient_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("client error with json body", func(t *testing.T) {
		client, transport := newTestRestClient(t, Config{})
		transport.GET("/api/v1/ticker", func(req *http.Request) (*http.Response, error) {
			return httptesting.BuildResponseString(http.StatusBadRequest, `{"code":"-1100","msg":"invalid symbol","data":{"symbol":"???"}}`), nil
		})

		_, err := client.Query(ctx, "/api/v1/ticker", nil)

		var clientErr *ClientError
		require.True(t, errors.As(err, &clientErr))
		assert.Equal(t, http.StatusBadRequest, clientErr.StatusCode)
		assert.Equal(t, ErrorCode("-1100"), clientErr.Code)
		assert.Equal(t, "invalid symbol", clientErr.Message)
		assert.JSONEq(t, `{"symbol":"???"}`, string(clientErr.Data))
	})

	t.Run("client error with numeric code", func(t *testing.T) {
		client, transport := newTestRestClient(t, Config{})
		transport.GET("/api/v1/ticker", func(req *http.Request) (*http.Response, error) {
			return httptesting.BuildResponseString(http.StatusUnauthorized, `{"code":401,"msg":"invalid api key"}`), nil
		})

		_, err := client.Query(ctx, "/api/v1/ticker", nil)

		var clientErr *ClientError
		require.True(t, errors.As(err, &clientErr))
		assert.Equal(t, ErrorCode("401"), clientErr.Code)
		assert.Nil(t, clientErr.Data)
	})

	t.Run("client error with text body", func(t *testing.T) {
		client, transport := newTestRestClient(t, Config{})
		transport.GET("/api/v1/ticker", func(req *http.Request) (*http.Response, error) {
			return httptesting.BuildResponseString(http.StatusTooManyRequests, `slow down`), nil
		})

		_, err := client.Query(ctx, "/api/v1/ticker", nil)

		var clientErr *ClientError
		require.True(t, errors.As(err, &clientErr))
		assert.Equal(t, http.StatusTooManyRequests, clientErr.StatusCode)
		assert.Equal(t, ErrorCode(""), clientErr.Code)
		assert.Equal(t, "slow down", clientErr.Message)
	})

	t.Run("server error", func(t *testing.T) {
		client, transport := newTestRestClient(t, Config{})
		transport.GET("/api/v1/ticker", func(req *http.Request) (*http.Response, error) {
			return httptesting.BuildResponseString(http.StatusBadGateway, `bad gateway`), nil
		})

		_, err := client.Query(ctx, "/api/v1/ticker", nil)

		var serverErr *ServerError
		require.True(t, errors.As(err, &serverErr))
		assert.Equal(t, http.StatusBadGateway, serverErr.StatusCode)
		assert.Equal(t, "bad gateway", serverErr.Body)
	})
}

func TestRestClient_RateLimit(t *testing.T) {
	_, err := NewRestClient(Config{RateLimit: "never"})
	assert.Error(t, err)

	client, transport := newTestRestClient(t, Config{RateLimit: "1+1/1h"})
	transport.GET("/api/v1/forex/symbols", jsonReply(`[]`))

	_, err = client.Query(context.Background(), "/api/v1/forex/symbols", nil)
	require.NoError(t, err)

	// the only token is spent, the limiter gives up on the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = client.Query(ctx, "/api/v1/forex/symbols", nil)
	assert.Error(t, err)
	assert.Len(t, transport.Requests(), 1)
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Setenv("DATAMAXI_API_KEY", "env-key")

	cfg := Config{}.withDefaults()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, BaseURL, cfg.BaseURL)
	assert.Equal(t, defaultHTTPTimeout, cfg.Timeout)

	cfg = Config{APIKey: "explicit", Timeout: time.Second}.withDefaults()
	assert.Equal(t, "explicit", cfg.APIKey)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DATAMAXI_API_KEY", "env-key")
	t.Setenv("DATAMAXI_TIMEOUT", "3s")
	t.Setenv("DATAMAXI_SHOW_LIMIT_USAGE", "true")
	t.Setenv("DATAMAXI_PROXIES", "https=http://127.0.0.1:3128")

	cfg := ConfigFromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.True(t, cfg.ShowLimitUsage)
	assert.False(t, cfg.ShowHeader)
	assert.Equal(t, map[string]string{"https": "http://127.0.0.1:3128"}, cfg.Proxies)
}

func TestNewTransport_Proxies(t *testing.T) {
	transport, err := newTransport(map[string]string{"HTTPS": "http://127.0.0.1:3128"})
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "https://api.datamaxiplus.com/api/v1/forex", nil)
	proxyURL, err := transport.Proxy(req)
	require.NoError(t, err)
	require.NotNil(t, proxyURL)
	assert.Equal(t, "127.0.0.1:3128", proxyURL.Host)

	req, _ = http.NewRequest(http.MethodGet, "http://api.datamaxiplus.com/api/v1/forex", nil)
	proxyURL, err = transport.Proxy(req)
	require.NoError(t, err)
	assert.Nil(t, proxyURL)

	_, err = newTransport(map[string]string{"https": "://broken"})
	assert.Error(t, err)
}
