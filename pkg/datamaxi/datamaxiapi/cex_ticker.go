package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

type CexTickerService struct {
	client APIClient
}

func (s *CexTickerService) NewGetTickerRequest() *GetTickerRequest {
	return &GetTickerRequest{client: s.client}
}

func (s *CexTickerService) Exchanges(ctx context.Context, market string) ([]string, error) {
	if err := checkRequired("market", market); err != nil {
		return nil, err
	}

	if err := checkMarket(market); err != nil {
		return nil, err
	}

	return queryStrings(ctx, s.client, "/api/v1/ticker/exchanges", url.Values{"market": {market}})
}

func (s *CexTickerService) Symbols(ctx context.Context, exchange, market string) ([]string, error) {
	if err := checkRequiredParameters(param{"exchange", exchange}, param{"market", market}); err != nil {
		return nil, err
	}

	if err := checkMarket(market); err != nil {
		return nil, err
	}

	return queryStrings(ctx, s.client, "/api/v1/ticker/symbols", url.Values{
		"exchange": {exchange},
		"market":   {market},
	})
}

type GetTickerRequest struct {
	client APIClient

	exchange string
	symbol   string
	market   string
}

func (r *GetTickerRequest) Exchange(exchange string) *GetTickerRequest {
	r.exchange = exchange
	return r
}

func (r *GetTickerRequest) Symbol(symbol string) *GetTickerRequest {
	r.symbol = symbol
	return r
}

func (r *GetTickerRequest) Market(market string) *GetTickerRequest {
	r.market = market
	return r
}

func (r *GetTickerRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"exchange", r.exchange},
		param{"symbol", r.symbol},
		param{"market", r.market},
	); err != nil {
		return nil, err
	}

	if err := checkMarket(r.market); err != nil {
		return nil, err
	}

	return url.Values{
		"exchange": {r.exchange},
		"symbol":   {r.symbol},
		"market":   {r.market},
	}, nil
}

func (r *GetTickerRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/api/v1/ticker", params, table.RecordsAsIs("d"))
}
