package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

type ForexService struct {
	client APIClient
}

func (s *ForexService) NewGetForexRequest() *GetForexRequest {
	return &GetForexRequest{client: s.client}
}

func (s *ForexService) Symbols(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/forex/symbols", nil)
}

type GetForexRequest struct {
	client APIClient

	symbol string
}

func (r *GetForexRequest) Symbol(symbol string) *GetForexRequest {
	r.symbol = symbol
	return r
}

func (r *GetForexRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequired("symbol", r.symbol); err != nil {
		return nil, err
	}

	return url.Values{"symbol": {r.symbol}}, nil
}

// Do returns a single rate object, its table has one row.
func (r *GetForexRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/api/v1/forex", params, table.SingleRecord())
}
