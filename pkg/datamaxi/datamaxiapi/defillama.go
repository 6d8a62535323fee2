package datamaxiapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// DefillamaService serves the DeFi protocol metrics mirrored from DefiLlama. Every time series
// is a header row payload.
type DefillamaService struct {
	client APIClient
}

func (s *DefillamaService) Protocols(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/v1/defillama/protocol", nil)
}

func (s *DefillamaService) Chains(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/v1/defillama/chain", nil)
}

func (s *DefillamaService) Pools(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/v1/defillama/pool", nil)
}

func (s *DefillamaService) Stablecoins(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/v1/defillama/stablecoin", nil)
}

func (s *DefillamaService) Tokens(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/v1/defillama/token", nil)
}

func (s *DefillamaService) NewGetTvlRequest() *GetTvlRequest {
	return &GetTvlRequest{client: s.client}
}

func (s *DefillamaService) NewGetProtocolTvlRequest() *GetProtocolTvlRequest {
	return &GetProtocolTvlRequest{client: s.client}
}

func (s *DefillamaService) NewGetTvlDetailRequest() *GetTvlDetailRequest {
	return &GetTvlDetailRequest{client: s.client}
}

func (s *DefillamaService) NewGetMcapRequest() *GetMcapRequest {
	return &GetMcapRequest{client: s.client}
}

func (s *DefillamaService) NewGetPoolYieldRequest() *GetPoolYieldRequest {
	return &GetPoolYieldRequest{client: s.client}
}

// GetTvlRequest returns the total TVL, narrowed down by protocol or chain when set.
type GetTvlRequest struct {
	client APIClient

	protocol *string
	chain    *string
}

func (r *GetTvlRequest) Protocol(protocol string) *GetTvlRequest {
	r.protocol = &protocol
	return r
}

func (r *GetTvlRequest) Chain(chain string) *GetTvlRequest {
	r.chain = &chain
	return r
}

func (r *GetTvlRequest) GetQueryParameters() (url.Values, error) {
	params := url.Values{}
	setOptional(params, "protocol", r.protocol)
	setOptional(params, "chain", r.chain)
	return params, nil
}

func (r *GetTvlRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/v1/defillama/tvl", params, table.HeaderRows(1))
}

// GetProtocolTvlRequest returns one TVL column per protocol.
type GetProtocolTvlRequest struct {
	client APIClient

	protocols []string
}

func (r *GetProtocolTvlRequest) Protocols(protocols ...string) *GetProtocolTvlRequest {
	r.protocols = protocols
	return r
}

func (r *GetProtocolTvlRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredList("protocols", r.protocols); err != nil {
		return nil, err
	}

	return url.Values{"protocols": {EncodeStringList(r.protocols)}}, nil
}

func (r *GetProtocolTvlRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/v1/defillama/tvl", params, table.HeaderRows(1))
}

// GetTvlDetailRequest is indexed by date and token.
type GetTvlDetailRequest struct {
	client APIClient

	protocol string
	chain    *string

	// token switches the amounts from USD to token units
	token bool
}

func (r *GetTvlDetailRequest) Protocol(protocol string) *GetTvlDetailRequest {
	r.protocol = protocol
	return r
}

func (r *GetTvlDetailRequest) Chain(chain string) *GetTvlDetailRequest {
	r.chain = &chain
	return r
}

func (r *GetTvlDetailRequest) Token(token bool) *GetTvlDetailRequest {
	r.token = token
	return r
}

func (r *GetTvlDetailRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequired("protocol", r.protocol); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("protocol", r.protocol)
	setOptional(params, "chain", r.chain)
	if r.token {
		params.Set("token", strconv.FormatBool(r.token))
	}
	return params, nil
}

func (r *GetTvlDetailRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/v1/defillama/tvl/detail", params, table.HeaderRows(2))
}

type GetMcapRequest struct {
	client APIClient

	protocol string
}

func (r *GetMcapRequest) Protocol(protocol string) *GetMcapRequest {
	r.protocol = protocol
	return r
}

func (r *GetMcapRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequired("protocol", r.protocol); err != nil {
		return nil, err
	}

	return url.Values{"protocol": {r.protocol}}, nil
}

func (r *GetMcapRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/v1/defillama/mcap", params, table.HeaderRows(1))
}

type GetPoolYieldRequest struct {
	client APIClient

	poolID string
}

func (r *GetPoolYieldRequest) PoolID(poolID string) *GetPoolYieldRequest {
	r.poolID = poolID
	return r
}

func (r *GetPoolYieldRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequired("poolId", r.poolID); err != nil {
		return nil, err
	}

	return url.Values{"poolId": {r.poolID}}, nil
}

func (r *GetPoolYieldRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/v1/defillama/pool/yield", params, table.HeaderRows(1))
}
