package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// FundingRateService serves the perpetual futures funding rate dataset.
type FundingRateService struct {
	client APIClient
}

func (s *FundingRateService) NewGetFundingRateHistoryRequest() *GetFundingRateHistoryRequest {
	return &GetFundingRateHistoryRequest{
		client: s.client,
		window: newTimeRange("fromDateTime", "toDateTime"),
		page:   newPagination(),
	}
}

func (s *FundingRateService) NewGetLatestFundingRateRequest() *GetLatestFundingRateRequest {
	return &GetLatestFundingRateRequest{client: s.client}
}

func (s *FundingRateService) Exchanges(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/funding-rate/exchanges", nil)
}

func (s *FundingRateService) Symbols(ctx context.Context, exchange string) ([]string, error) {
	if err := checkRequired("exchange", exchange); err != nil {
		return nil, err
	}

	return queryStrings(ctx, s.client, "/api/v1/funding-rate/symbols", url.Values{"exchange": {exchange}})
}

// GetFundingRateHistoryRequest still sends the time window as fromDateTime and toDateTime.
type GetFundingRateHistoryRequest struct {
	client APIClient

	exchange string
	symbol   string

	window timeRange
	page   pagination
}

func (r *GetFundingRateHistoryRequest) Exchange(exchange string) *GetFundingRateHistoryRequest {
	r.exchange = exchange
	return r
}

func (r *GetFundingRateHistoryRequest) Symbol(symbol string) *GetFundingRateHistoryRequest {
	r.symbol = symbol
	return r
}

func (r *GetFundingRateHistoryRequest) From(from string) *GetFundingRateHistoryRequest {
	r.window.from = &from
	return r
}

func (r *GetFundingRateHistoryRequest) To(to string) *GetFundingRateHistoryRequest {
	r.window.to = &to
	return r
}

func (r *GetFundingRateHistoryRequest) Page(page int) *GetFundingRateHistoryRequest {
	r.page.page = page
	return r
}

func (r *GetFundingRateHistoryRequest) Limit(limit int) *GetFundingRateHistoryRequest {
	r.page.limit = limit
	return r
}

func (r *GetFundingRateHistoryRequest) Sort(sort string) *GetFundingRateHistoryRequest {
	r.page.sort = sort
	return r
}

func (r *GetFundingRateHistoryRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"exchange", r.exchange},
		param{"symbol", r.symbol},
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
	params.Set("exchange", r.exchange)
	params.Set("symbol", r.symbol)
	r.page.encode(params)
	r.window.encode(params)
	return params, nil
}

func (r *GetFundingRateHistoryRequest) WithPage(page int) PagedRequest {
	c := *r
	c.page.page = page
	return &c
}

func (r *GetFundingRateHistoryRequest) DoPage(ctx context.Context) (*Page, error) {
	return r.Do(ctx)
}

func (r *GetFundingRateHistoryRequest) Do(ctx context.Context) (*Page, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryPage(ctx, r.client, "/api/v1/funding-rate", params, r.page, table.Records("d"), r)
}

// GetLatestFundingRateRequest returns the latest rate of every symbol matching the filters.
type GetLatestFundingRateRequest struct {
	client APIClient

	exchange *string
	symbol   *string
}

func (r *GetLatestFundingRateRequest) Exchange(exchange string) *GetLatestFundingRateRequest {
	r.exchange = &exchange
	return r
}

func (r *GetLatestFundingRateRequest) Symbol(symbol string) *GetLatestFundingRateRequest {
	r.symbol = &symbol
	return r
}

func (r *GetLatestFundingRateRequest) GetQueryParameters() (url.Values, error) {
	params := url.Values{}
	setOptionalNonEmpty(params, "exchange", r.exchange)
	setOptionalNonEmpty(params, "symbol", r.symbol)
	return params, nil
}

func (r *GetLatestFundingRateRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/api/v1/funding-rate/latest", params, table.RecordsAsIs(""))
}
