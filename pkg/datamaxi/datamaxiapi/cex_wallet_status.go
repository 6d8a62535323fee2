package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// CexWalletStatusService serves the deposit and withdrawal status of exchange wallets.
type CexWalletStatusService struct {
	client APIClient
}

func (s *CexWalletStatusService) NewGetWalletStatusRequest() *GetWalletStatusRequest {
	return &GetWalletStatusRequest{client: s.client}
}

func (s *CexWalletStatusService) Exchanges(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, "/api/v1/wallet-status/exchanges", nil)
}

func (s *CexWalletStatusService) Assets(ctx context.Context, exchange string) ([]string, error) {
	if err := checkRequired("exchange", exchange); err != nil {
		return nil, err
	}

	return queryStrings(ctx, s.client, "/api/v1/wallet-status/assets", url.Values{"exchange": {exchange}})
}

type GetWalletStatusRequest struct {
	client APIClient

	exchange string
	asset    string
}

func (r *GetWalletStatusRequest) Exchange(exchange string) *GetWalletStatusRequest {
	r.exchange = exchange
	return r
}

func (r *GetWalletStatusRequest) Asset(asset string) *GetWalletStatusRequest {
	r.asset = asset
	return r
}

func (r *GetWalletStatusRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"exchange", r.exchange},
		param{"asset", r.asset},
	); err != nil {
		return nil, err
	}

	return url.Values{
		"exchange": {r.exchange},
		"asset":    {r.asset},
	}, nil
}

// Do returns one record per network, the table is indexed by network.
func (r *GetWalletStatusRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, "/api/v1/wallet-status", params, table.RecordsAsIs("network"))
}
