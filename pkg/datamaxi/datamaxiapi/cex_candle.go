package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// CexCandleService serves the centralized exchange candle dataset.
type CexCandleService struct {
	client APIClient
}

func (s *CexCandleService) NewGetCandleRequest() *GetCexCandleRequest {
	return &GetCexCandleRequest{
		client:   s.client,
		interval: defaultInterval,
		market:   MarketSpot,
		window:   newTimeRange("from", "to"),
		page:     newPagination(),
	}
}

// Exchanges lists the exchanges carrying candles for the market.
func (s *CexCandleService) Exchanges(ctx context.Context, market string) ([]string, error) {
	if err := checkRequired("market", market); err != nil {
		return nil, err
	}

	if err := checkMarket(market); err != nil {
		return nil, err
	}

	return queryStrings(ctx, s.client, "/api/v1/cex/candle/exchanges", url.Values{"market": {market}})
}

// Symbols lists the supported symbols, both filters are optional.
func (s *CexCandleService) Symbols(ctx context.Context, exchange, market string) (*Response, error) {
	params := url.Values{}
	if len(exchange) > 0 {
		params.Set("exchange", exchange)
	}

	if len(market) > 0 {
		if err := checkMarket(market); err != nil {
			return nil, err
		}
		params.Set("market", market)
	}

	return s.client.Query(ctx, "/api/v1/cex/candle/symbols", params)
}

func (s *CexCandleService) Intervals(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/cex/candle/intervals", nil)
}

type GetCexCandleRequest struct {
	client APIClient

	exchange string
	symbol   string
	interval string
	market   string

	window timeRange
	page   pagination
}

func (r *GetCexCandleRequest) Exchange(exchange string) *GetCexCandleRequest {
	r.exchange = exchange
	return r
}

func (r *GetCexCandleRequest) Symbol(symbol string) *GetCexCandleRequest {
	r.symbol = symbol
	return r
}

func (r *GetCexCandleRequest) Interval(interval string) *GetCexCandleRequest {
	r.interval = interval
	return r
}

func (r *GetCexCandleRequest) Market(market string) *GetCexCandleRequest {
	r.market = market
	return r
}

// From accepts "2006-01-02 15:04:05" or "2006-01-02".
func (r *GetCexCandleRequest) From(from string) *GetCexCandleRequest {
	r.window.from = &from
	return r
}

func (r *GetCexCandleRequest) To(to string) *GetCexCandleRequest {
	r.window.to = &to
	return r
}

func (r *GetCexCandleRequest) Page(page int) *GetCexCandleRequest {
	r.page.page = page
	return r
}

func (r *GetCexCandleRequest) Limit(limit int) *GetCexCandleRequest {
	r.page.limit = limit
	return r
}

func (r *GetCexCandleRequest) Sort(sort string) *GetCexCandleRequest {
	r.page.sort = sort
	return r
}

func (r *GetCexCandleRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"exchange", r.exchange},
		param{"symbol", r.symbol},
		param{"interval", r.interval},
		param{"market", r.market},
	); err != nil {
		return nil, err
	}

	if err := checkMarket(r.market); err != nil {
		return nil, err
	}

	if err := r.page.validate(); err != nil {
		return nil, err
	}

	if err := r.window.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("exchange", r.exchange)
	params.Set("symbol", r.symbol)
	params.Set("interval", r.interval)
	params.Set("market", r.market)
	r.page.encode(params)
	r.window.encode(params)
	return params, nil
}

func (r *GetCexCandleRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetCexCandleRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

func (r *GetCexCandleRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/api/v1/cex/candle", params, r.page, table.Records("d"), r)
}
