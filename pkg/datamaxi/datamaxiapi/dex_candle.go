package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// DexCandleService serves candles built from decentralized exchange pools.
type DexCandleService struct {
	client APIClient
}

func (s *DexCandleService) NewGetCandleRequest() *GetDexCandleRequest {
	return &GetDexCandleRequest{
		client:   s.client,
		interval: defaultInterval,
		window:   newTimeRange("from", "to"),
		page:     newPagination(),
	}
}

func (s *DexCandleService) Chains(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/dex/candle/chains", nil)
}

func (s *DexCandleService) Exchanges(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/dex/candle/exchanges", nil)
}

// Pools lists the pools, exchange and chain are optional filters.
func (s *DexCandleService) Pools(ctx context.Context, exchange, chain string) (*Response, error) {
	return s.client.Query(ctx, "/api/v1/dex/candle/pools", poolFilter(exchange, chain))
}

func (s *DexCandleService) Intervals(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/dex/candle/intervals", nil)
}

func poolFilter(exchange, chain string) url.Values {
	params := url.Values{}
	if len(exchange) > 0 {
		params.Set("exchange", exchange)
	}

	if len(chain) > 0 {
		params.Set("chain", chain)
	}
	return params
}

type GetDexCandleRequest struct {
	client APIClient

	chain    string
	exchange string
	pool     string
	interval string

	window timeRange
	page   pagination
}

func (r *GetDexCandleRequest) Chain(chain string) *GetDexCandleRequest {
	r.chain = chain
	return r
}

func (r *GetDexCandleRequest) Exchange(exchange string) *GetDexCandleRequest {
	r.exchange = exchange
	return r
}

func (r *GetDexCandleRequest) Pool(pool string) *GetDexCandleRequest {
	r.pool = pool
	return r
}

func (r *GetDexCandleRequest) Interval(interval string) *GetDexCandleRequest {
	r.interval = interval
	return r
}

func (r *GetDexCandleRequest) From(from string) *GetDexCandleRequest {
	r.window.from = &from
	return r
}

func (r *GetDexCandleRequest) To(to string) *GetDexCandleRequest {
	r.window.to = &to
	return r
}

func (r *GetDexCandleRequest) Page(page int) *GetDexCandleRequest {
	r.page.page = page
	return r
}

func (r *GetDexCandleRequest) Limit(limit int) *GetDexCandleRequest {
	r.page.limit = limit
	return r
}

func (r *GetDexCandleRequest) Sort(sort string) *GetDexCandleRequest {
	r.page.sort = sort
	return r
}

func (r *GetDexCandleRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"chain", r.chain},
		param{"exchange", r.exchange},
		param{"pool", r.pool},
		param{"interval", r.interval},
	); err != nil {
		return nil, err
	}

	if err := r.page.validate(); err != nil {
		return nil, err
	}

	if err := r.window.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("chain", r.chain)
	params.Set("exchange", r.exchange)
	params.Set("pool", r.pool)
	params.Set("interval", r.interval)
	r.page.encode(params)
	r.window.encode(params)
	return params, nil
}

func (r *GetDexCandleRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetDexCandleRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

func (r *GetDexCandleRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/api/v1/dex/candle", params, r.page, table.Records("d"), r)
}
