package datamaxiapi

import (
	"time"

	"github.com/datamaxiplus/datamaxi-go/pkg/envvar"
)

const (
	// BaseURL is the production endpoint of the DataMaxi+ API
	BaseURL = "https://api.datamaxiplus.com"

	APIKeyHeader = "X-DTMX-APIKEY"

	defaultHTTPTimeout = time.Second * 15
)

// Config carries everything a RestClient needs. The zero value talks to the
// production endpoint with the default timeout and no API key.
type Config struct {
	APIKey  string
	BaseURL string

	// Timeout is applied to the whole request cycle, the default timeout is used when zero.
	Timeout time.Duration

	// Proxies maps a URL scheme ("http", "https") to a proxy URL.
	// When empty, the proxy settings from the environment are used.
	Proxies map[string]string

	// ShowLimitUsage exposes the x-ratelimit-* response headers on Response.LimitUsage
	ShowLimitUsage bool

	// ShowHeader exposes the full response header on Response.Header
	ShowHeader bool

	// RateLimit throttles the client side request rate, e.g. "10+5/1s".
	// An empty string disables the limiter.
	RateLimit string
}

// ConfigFromEnv loads the config from the DATAMAXI_* environment variables.
func ConfigFromEnv() Config {
	var cfg Config
	cfg.APIKey, _ = envvar.String("DATAMAXI_API_KEY")
	cfg.BaseURL, _ = envvar.String("DATAMAXI_BASE_URL", BaseURL)
	cfg.Timeout, _ = envvar.Duration("DATAMAXI_TIMEOUT", defaultHTTPTimeout)
	cfg.ShowLimitUsage, _ = envvar.Bool("DATAMAXI_SHOW_LIMIT_USAGE")
	cfg.ShowHeader, _ = envvar.Bool("DATAMAXI_SHOW_HEADER")
	cfg.RateLimit, _ = envvar.String("DATAMAXI_RATE_LIMIT")
	cfg.Proxies, _ = envvar.StringMap("DATAMAXI_PROXIES")
	return cfg
}

// withDefaults fills the unset fields. An explicit api key always wins over DATAMAXI_API_KEY.
func (c Config) withDefaults() Config {
	if len(c.APIKey) == 0 {
		c.APIKey, _ = envvar.String("DATAMAXI_API_KEY")
	}

	if len(c.BaseURL) == 0 {
		c.BaseURL = BaseURL
	}

	if c.Timeout <= 0 {
		c.Timeout = defaultHTTPTimeout
	}

	return c
}
