package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// BinanceService adds the binance only raw endpoints.
type BinanceService struct {
	*RawExchangeService
}

func (s *BinanceService) NewGetKlineRequest() *GetBinanceKlineRequest {
	return &GetBinanceKlineRequest{
		client:   s.client,
		interval: defaultInterval,
	}
}

func (s *BinanceService) NewGetFundingRateRequest() *GetBinanceFundingRateRequest {
	return &GetBinanceFundingRateRequest{
		client: s.client,
		window: newTimeRange("fromDateTime", "toDateTime"),
		page:   newPagination(),
	}
}

type GetBinanceKlineRequest struct {
	client APIClient

	symbol   string
	interval string
}

func (r *GetBinanceKlineRequest) Symbol(symbol string) *GetBinanceKlineRequest {
	r.symbol = symbol
	return r
}

func (r *GetBinanceKlineRequest) Interval(interval string) *GetBinanceKlineRequest {
	r.interval = interval
	return r
}

func (r *GetBinanceKlineRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"symbol", r.symbol},
		param{"interval", r.interval},
	); err != nil {
		return nil, err
	}

	return url.Values{
		"symbol":   {r.symbol},
		"interval": {r.interval},
	}, nil
}

func (r *GetBinanceKlineRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/v1/raw/binance/kline", params, table.HeaderRows(1))
}

type GetBinanceFundingRateRequest struct {
	client APIClient

	symbol string

	window timeRange
	page   pagination
}

func (r *GetBinanceFundingRateRequest) Symbol(symbol string) *GetBinanceFundingRateRequest {
	r.symbol = symbol
	return r
}

func (r *GetBinanceFundingRateRequest) From(from string) *GetBinanceFundingRateRequest {
	r.window.from = &from
	return r
}

func (r *GetBinanceFundingRateRequest) To(to string) *GetBinanceFundingRateRequest {
	r.window.to = &to
	return r
}

func (r *GetBinanceFundingRateRequest) Page(page int) *GetBinanceFundingRateRequest {
	r.page.page = page
	return r
}

func (r *GetBinanceFundingRateRequest) Limit(limit int) *GetBinanceFundingRateRequest {
	r.page.limit = limit
	return r
}

func (r *GetBinanceFundingRateRequest) Sort(sort string) *GetBinanceFundingRateRequest {
	r.page.sort = sort
	return r
}

func (r *GetBinanceFundingRateRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequired("symbol", r.symbol); err != nil {
		return nil, err
	}

	if err := r.page.validate(); err != nil {
		return nil, err
	}

	if err := r.window.validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("symbol", r.symbol)
	r.page.encode(params)
	r.window.encode(params)
	return params, nil
}

func (r *GetBinanceFundingRateRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetBinanceFundingRateRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

func (r *GetBinanceFundingRateRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/v1/raw/binance/funding-rate", params, r.page, table.Records("d"), r)
}
