package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

type CexOrderbookService struct {
	client APIClient
}

func (s *CexOrderbookService) NewGetOrderbookRequest() *GetOrderbookRequest {
	return &GetOrderbookRequest{client: s.client}
}

func (s *CexOrderbookService) Exchanges(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/orderbook/exchanges", nil)
}

func (s *CexOrderbookService) Symbols(ctx context.Context, exchange string) ([]string, error) {
	if err := checkRequired("exchange", exchange); err != nil {
		return nil, err
	}

	return queryStrings(ctx, s.client, "/api/v1/orderbook/symbols", url.Values{"exchange": {exchange}})
}

type GetOrderbookRequest struct {
	client APIClient

	exchange string
	symbol   string
}

func (r *GetOrderbookRequest) Exchange(exchange string) *GetOrderbookRequest {
	r.exchange = exchange
	return r
}

func (r *GetOrderbookRequest) Symbol(symbol string) *GetOrderbookRequest {
	r.symbol = symbol
	return r
}

func (r *GetOrderbookRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"exchange", r.exchange},
		param{"symbol", r.symbol},
	); err != nil {
		return nil, err
	}

	return url.Values{
		"exchange": {r.exchange},
		"symbol":   {r.symbol},
	}, nil
}

func (r *GetOrderbookRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/api/v1/orderbook", params, table.RecordsAsIs("d"))
}
