package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

func (s *DefillamaService) NewGetStablecoinMcapRequest() *GetStablecoinMcapRequest {
	return &GetStablecoinMcapRequest{client: s.client}
}

func (s *DefillamaService) NewGetStablecoinPriceRequest() *GetStablecoinPriceRequest {
	return &GetStablecoinPriceRequest{client: s.client}
}

type GetStablecoinMcapRequest struct {
	client APIClient

	stablecoin string
	chain      *string
}

func (r *GetStablecoinMcapRequest) Stablecoin(stablecoin string) *GetStablecoinMcapRequest {
	r.stablecoin = stablecoin
	return r
}

func (r *GetStablecoinMcapRequest) Chain(chain string) *GetStablecoinMcapRequest {
	r.chain = &chain
	return r
}

func (r *GetStablecoinMcapRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequired("stablecoin", r.stablecoin); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("stablecoin", r.stablecoin)
	setOptional(params, "chain", r.chain)
	return params, nil
}

func (r *GetStablecoinMcapRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/v1/defillama/stablecoin/mcap", params, table.HeaderRows(1))
}

type GetStablecoinPriceRequest struct {
	client APIClient

	stablecoin string
}

func (r *GetStablecoinPriceRequest) Stablecoin(stablecoin string) *GetStablecoinPriceRequest {
	r.stablecoin = stablecoin
	return r
}

func (r *GetStablecoinPriceRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequired("stablecoin", r.stablecoin); err != nil {
		return nil, err
	}

	return url.Values{"stablecoin": {r.stablecoin}}, nil
}

func (r *GetStablecoinPriceRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/v1/defillama/stablecoin/price", params, table.HeaderRows(1))
}
