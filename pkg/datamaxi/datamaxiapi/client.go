package datamaxiapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/c9s/requestgen"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/datamaxiplus/datamaxi-go/pkg/util"
	"github.com/datamaxiplus/datamaxi-go/pkg/version"
)

var log = logrus.WithField("api", "datamaxi")

// APIClient is what the request builders send their requests through.
type APIClient interface {
	requestgen.AuthenticatedAPIClient

	Query(ctx context.Context, path string, params url.Values) (*Response, error)
}

type RestClient struct {
	requestgen.BaseAPIClient

	apiKey string

	showLimitUsage bool
	showHeader     bool

	limiter *rate.Limiter
}

func NewRestClient(cfg Config) (*RestClient, error) {
	cfg = cfg.withDefaults()

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", cfg.BaseURL)
	}

	transport, err := newTransport(cfg.Proxies)
	if err != nil {
		return nil, err
	}

	client := &RestClient{
		BaseAPIClient: requestgen.BaseAPIClient{
			BaseURL: u,
			HttpClient: &http.Client{
				Timeout:   cfg.Timeout,
				Transport: transport,
			},
		},
		apiKey:         cfg.APIKey,
		showLimitUsage: cfg.ShowLimitUsage,
		showHeader:     cfg.ShowHeader,
	}

	if len(cfg.RateLimit) > 0 {
		limiter, err := util.ParseRateLimitSyntax(cfg.RateLimit)
		if err != nil {
			return nil, err
		}

		client.limiter = limiter
	}

	return client, nil
}

func newTransport(proxies map[string]string) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if len(proxies) == 0 {
		return transport, nil
	}

	proxyURLs := make(map[string]*url.URL, len(proxies))
	for scheme, p := range proxies {
		u, err := url.Parse(p)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s proxy url %q", scheme, p)
		}

		proxyURLs[strings.ToLower(scheme)] = u
	}

	transport.Proxy = func(req *http.Request) (*url.URL, error) {
		return proxyURLs[req.URL.Scheme], nil
	}

	return transport, nil
}

func (c *RestClient) Auth(apiKey string) {
	// pragma: allowlist nextline secret
	c.apiKey = apiKey
}

func (c *RestClient) APIKey() string {
	return c.apiKey
}

// NewRequest appends refURL to the base url path, so a base url with a path prefix keeps its prefix.
func (c *RestClient) NewRequest(ctx context.Context, method, refURL string, params url.Values, payload interface{}) (*http.Request, error) {
	rel, err := url.Parse(refURL)
	if err != nil {
		return nil, err
	}

	u := *c.BaseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + rel.Path
	u.RawQuery = encodeQuery(params)

	body, err := castPayload(payload)
	if err != nil {
		return nil, err
	}

	log.Debugf("url: %s", u.String())

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json;charset=utf-8")
	req.Header.Set("User-Agent", "datamaxi-go/"+version.Version)
	return req, nil
}

// NewAuthenticatedRequest attaches the api key header. Every endpoint authenticates the same way.
func (c *RestClient) NewAuthenticatedRequest(ctx context.Context, method, refURL string, params url.Values, payload interface{}) (*http.Request, error) {
	req, err := c.NewRequest(ctx, method, refURL, params, payload)
	if err != nil {
		return nil, err
	}

	req.Header.Set(APIKeyHeader, c.apiKey)
	return req, nil
}

// SendRequest sends the request once and converts 4xx and 5xx replies into *ClientError and *ServerError.
func (c *RestClient) SendRequest(req *http.Request) (*requestgen.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, errors.Wrap(err, "rate limiter wait error")
		}
	}

	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		observeRequestError(req.URL.Path)
		return nil, err
	}
	defer resp.Body.Close()

	response, err := requestgen.NewResponse(resp)
	if err != nil {
		return response, err
	}

	observeRequest(req.URL.Path, response.StatusCode, time.Since(start))
	log.Debugf("raw response from server: %s", response.Body)

	if err := toAPIError(response); err != nil {
		return response, err
	}

	return response, nil
}

func (c *RestClient) Query(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Send(ctx, http.MethodGet, path, params)
}

func (c *RestClient) Send(ctx context.Context, method, path string, params url.Values) (*Response, error) {
	req, err := c.NewAuthenticatedRequest(ctx, method, path, params, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.SendRequest(req)
	if err != nil {
		return nil, err
	}

	return c.newResponse(response), nil
}

func (c *RestClient) newResponse(response *requestgen.Response) *Response {
	res := &Response{Data: rawData(response.Body)}

	if c.showLimitUsage {
		res.LimitUsage = limitUsage(response.Header)
	}

	if c.showHeader {
		res.Header = response.Header.Clone()
	}

	return res
}

// rawData keeps a json body as is and turns anything else into a json string.
func rawData(body []byte) json.RawMessage {
	if json.Valid(body) {
		return json.RawMessage(body)
	}

	out, _ := json.Marshal(string(body))
	return out
}

var limitUsagePrefixes = []string{
	"x-ratelimit-limit",
	"x-ratelimit-remaining",
	"x-ratelimit-reset",
}

func limitUsage(header http.Header) map[string]string {
	usage := map[string]string{}
	for key := range header {
		lower := strings.ToLower(key)
		for _, prefix := range limitUsagePrefixes {
			if strings.HasPrefix(lower, prefix) {
				usage[lower] = header.Get(key)
				break
			}
		}
	}

	return usage
}

// encodeQuery keeps '@' readable like the upstream API examples.
func encodeQuery(params url.Values) string {
	if len(params) == 0 {
		return ""
	}

	return strings.ReplaceAll(params.Encode(), "%40", "@")
}

func castPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	switch v := payload.(type) {
	case string:
		return []byte(v), nil

	case []byte:
		return v, nil

	}
	return json.Marshal(payload)
}
