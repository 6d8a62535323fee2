package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// PremiumService serves the price premium between two exchanges.
type PremiumService struct {
	client APIClient
}

func (s *PremiumService) NewGetPremiumRequest() *GetPremiumRequest {
	return &GetPremiumRequest{client: s.client}
}

func (s *PremiumService) Exchanges(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/premium/exchanges", nil)
}

func (s *PremiumService) Symbols(ctx context.Context, sourceExchange, targetExchange string) ([]string, error) {
	if err := checkRequiredParameters(
		param{"sourceExchange", sourceExchange},
		param{"targetExchange", targetExchange},
	); err != nil {
		return nil, err
	}

	return queryStrings(ctx, s.client, "/api/v1/premium/symbols", url.Values{
		"sourceExchange": {sourceExchange},
		"targetExchange": {targetExchange},
	})
}

type GetPremiumRequest struct {
	client APIClient

	sourceExchange string
	targetExchange string
	symbol         string
}

func (r *GetPremiumRequest) SourceExchange(exchange string) *GetPremiumRequest {
	r.sourceExchange = exchange
	return r
}

func (r *GetPremiumRequest) TargetExchange(exchange string) *GetPremiumRequest {
	r.targetExchange = exchange
	return r
}

func (r *GetPremiumRequest) Symbol(symbol string) *GetPremiumRequest {
	r.symbol = symbol
	return r
}

func (r *GetPremiumRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"sourceExchange", r.sourceExchange},
		param{"targetExchange", r.targetExchange},
		param{"symbol", r.symbol},
	); err != nil {
		return nil, err
	}

	return url.Values{
		"sourceExchange": {r.sourceExchange},
		"targetExchange": {r.targetExchange},
		"symbol":         {r.symbol},
	}, nil
}

func (r *GetPremiumRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/api/v1/premium", params, table.RecordsAsIs("d"))
}
