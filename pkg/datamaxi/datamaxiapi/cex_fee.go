package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// CexFeeService serves the trading fee dataset.
type CexFeeService struct {
	client APIClient
}

func (s *CexFeeService) NewGetFeeRequest() *GetFeeRequest {
	return &GetFeeRequest{client: s.client}
}

func (s *CexFeeService) Exchanges(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/cex/fees/exchanges", nil)
}

func (s *CexFeeService) Symbols(ctx context.Context, exchange string) ([]string, error) {
	if err := checkRequired("exchange", exchange); err != nil {
		return nil, err
	}

	return queryStrings(ctx, s.client, "/api/v1/cex/fees/symbols", url.Values{"exchange": {exchange}})
}

// GetFeeRequest returns the fees of every exchange and symbol when no filter is set.
type GetFeeRequest struct {
	client APIClient

	exchange *string
	symbol   *string
}

func (r *GetFeeRequest) Exchange(exchange string) *GetFeeRequest {
	r.exchange = &exchange
	return r
}

func (r *GetFeeRequest) Symbol(symbol string) *GetFeeRequest {
	r.symbol = &symbol
	return r
}

func (r *GetFeeRequest) GetQueryParameters() (url.Values, error) {
	params := url.Values{}
	setOptionalNonEmpty(params, "exchange", r.exchange)
	setOptionalNonEmpty(params, "symbol", r.symbol)
	return params, nil
}

func (r *GetFeeRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/api/v1/cex/fees", params, table.RecordsAsIs(""))
}
