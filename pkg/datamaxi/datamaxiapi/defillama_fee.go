package datamaxiapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

func (s *DefillamaService) NewGetFeeRequest() *GetFeeRevenueRequest {
	return &GetFeeRevenueRequest{client: s.client, path: "/v1/defillama/fee", daily: true}
}

func (s *DefillamaService) NewGetRevenueRequest() *GetFeeRevenueRequest {
	return &GetFeeRevenueRequest{client: s.client, path: "/v1/defillama/revenue", daily: true}
}

func (s *DefillamaService) NewGetFeeDetailRequest() *GetFeeRevenueDetailRequest {
	return &GetFeeRevenueDetailRequest{client: s.client, path: "/v1/defillama/fee/detail", daily: true}
}

func (s *DefillamaService) NewGetRevenueDetailRequest() *GetFeeRevenueDetailRequest {
	return &GetFeeRevenueDetailRequest{client: s.client, path: "/v1/defillama/revenue/detail", daily: true}
}

// GetFeeRevenueRequest takes either a protocol or a chain, never both.
type GetFeeRevenueRequest struct {
	client APIClient
	path   string

	protocol *string
	chain    *string

	// daily returns daily values instead of the cumulative total
	daily bool
}

func (r *GetFeeRevenueRequest) Protocol(protocol string) *GetFeeRevenueRequest {
	r.protocol = &protocol
	return r
}

func (r *GetFeeRevenueRequest) Chain(chain string) *GetFeeRevenueRequest {
	r.chain = &chain
	return r
}

func (r *GetFeeRevenueRequest) Daily(daily bool) *GetFeeRevenueRequest {
	r.daily = daily
	return r
}

func (r *GetFeeRevenueRequest) GetQueryParameters() (url.Values, error) {
	if err := checkExactlyOne(param{"protocol", r.protocol}, param{"chain", r.chain}); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("daily", strconv.FormatBool(r.daily))
	setOptionalNonEmpty(params, "protocol", r.protocol)
	setOptionalNonEmpty(params, "chain", r.chain)
	return params, nil
}

func (r *GetFeeRevenueRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, r.path, params, table.HeaderRows(1))
}

// GetFeeRevenueDetailRequest takes a protocol, a chain or both. Every column but the value
// forms the index.
type GetFeeRevenueDetailRequest struct {
	client APIClient
	path   string

	protocol *string
	chain    *string
	daily    bool
}

func (r *GetFeeRevenueDetailRequest) Protocol(protocol string) *GetFeeRevenueDetailRequest {
	r.protocol = &protocol
	return r
}

func (r *GetFeeRevenueDetailRequest) Chain(chain string) *GetFeeRevenueDetailRequest {
	r.chain = &chain
	return r
}

func (r *GetFeeRevenueDetailRequest) Daily(daily bool) *GetFeeRevenueDetailRequest {
	r.daily = daily
	return r
}

func (r *GetFeeRevenueDetailRequest) GetQueryParameters() (url.Values, error) {
	if err := checkAtLeastOne(param{"protocol", r.protocol}, param{"chain", r.chain}); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("daily", strconv.FormatBool(r.daily))
	setOptionalNonEmpty(params, "protocol", r.protocol)
	setOptionalNonEmpty(params, "chain", r.chain)
	return params, nil
}

func (r *GetFeeRevenueDetailRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, r.path, params, table.HeaderRows(-1))
}
