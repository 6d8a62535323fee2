package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

type DexTradeService struct {
	client APIClient
}

func (s *DexTradeService) NewGetTradeRequest() *GetDexTradeRequest {
	return &GetDexTradeRequest{
		client: s.client,
		window: newTimeRange("from", "to"),
		page:   newPagination(),
	}
}

func (s *DexTradeService) Chains(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/dex/trade/chains", nil)
}

func (s *DexTradeService) Exchanges(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/dex/trade/exchanges", nil)
}

func (s *DexTradeService) Pools(ctx context.Context, exchange, chain string) (*Response, error) {
	return s.client.Query(ctx, "/api/v1/dex/trade/pools", poolFilter(exchange, chain))
}

type GetDexTradeRequest struct {
	client APIClient

	chain    string
	exchange string
	pool     string

	window timeRange
	page   pagination
}

func (r *GetDexTradeRequest) Chain(chain string) *GetDexTradeRequest {
	r.chain = chain
	return r
}

func (r *GetDexTradeRequest) Exchange(exchange string) *GetDexTradeRequest {
	r.exchange = exchange
	return r
}

func (r *GetDexTradeRequest) Pool(pool string) *GetDexTradeRequest {
	r.pool = pool
	return r
}

func (r *GetDexTradeRequest) From(from string) *GetDexTradeRequest {
	r.window.from = &from
	return r
}

func (r *GetDexTradeRequest) To(to string) *GetDexTradeRequest {
	r.window.to = &to
	return r
}

func (r *GetDexTradeRequest) Page(page int) *GetDexTradeRequest {
	r.page.page = page
	return r
}

func (r *GetDexTradeRequest) Limit(limit int) *GetDexTradeRequest {
	r.page.limit = limit
	return r
}

func (r *GetDexTradeRequest) Sort(sort string) *GetDexTradeRequest {
	r.page.sort = sort
	return r
}

func (r *GetDexTradeRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"chain", r.chain},
		param{"exchange", r.exchange},
		param{"pool", r.pool},
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
	r.page.encode(params)
	r.window.encode(params)
	return params, nil
}

func (r *GetDexTradeRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetDexTradeRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

// Do returns trades with the base amount, base quantity, quote quantity and price as numbers.
func (r *GetDexTradeRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/api/v1/dex/trade", params, r.page, table.Records("d", "b", "bq", "qq", "p"), r)
}
