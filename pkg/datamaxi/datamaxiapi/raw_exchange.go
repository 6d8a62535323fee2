package datamaxiapi

import (
	"context"
	"net/url"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
)

// Exchanges served under /v1/raw/<exchange>
const (
	RawBinance = "binance"
	RawBithumb = "bithumb"
	RawBybit   = "bybit"
	RawCoinone = "coinone"
	RawGateio  = "gateio"
	RawGopax   = "gopax"
	RawHuobi   = "huobi"
	RawOkx     = "okx"
	RawUpbit   = "upbit"
)

// RawExchangeService serves the exchange native candle data. The payload keeps the exchange
// column layout as a header row followed by value rows.
type RawExchangeService struct {
	client   APIClient
	exchange string
}

func newRawExchangeService(client APIClient, exchange string) *RawExchangeService {
	return &RawExchangeService{client: client, exchange: exchange}
}

func (s *RawExchangeService) Exchange() string {
	return s.exchange
}

func (s *RawExchangeService) path(endpoint string) string {
	return "/v1/raw/" + s.exchange + "/" + endpoint
}

func (s *RawExchangeService) Symbols(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, s.path("symbols"), nil)
}

func (s *RawExchangeService) Intervals(ctx context.Context) ([]string, error) {
	return queryStrings(ctx, s.client, s.path("intervals"), nil)
}

func (s *RawExchangeService) NewGetCandleRequest() *GetRawCandleRequest {
	return &GetRawCandleRequest{
		client:   s.client,
		path:     s.path("candle"),
		interval: defaultInterval,
	}
}

type GetRawCandleRequest struct {
	client APIClient
	path   string

	symbol   string
	interval string
	market   *string
}

func (r *GetRawCandleRequest) Symbol(symbol string) *GetRawCandleRequest {
	r.symbol = symbol
	return r
}

func (r *GetRawCandleRequest) Interval(interval string) *GetRawCandleRequest {
	r.interval = interval
	return r
}

// Market is only understood by the exchanges listing both spot and futures.
func (r *GetRawCandleRequest) Market(market string) *GetRawCandleRequest {
	r.market = &market
	return r
}

func (r *GetRawCandleRequest) GetQueryParameters() (url.Values, error) {
	if err := checkRequiredParameters(
		param{"symbol", r.symbol},
		param{"interval", r.interval},
	); err != nil {
		return nil, err
	}

	if r.market != nil {
		if err := checkMarket(*r.market); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("symbol", r.symbol)
	params.Set("interval", r.interval)
	setOptional(params, "market", r.market)
	return params, nil
}

// Do returns the header row payload untouched, Response.Table indexes it by the first column.
func (r *GetRawCandleRequest) Do(ctx context.Context) (*Response, error) {
	params, err := r.GetQueryParameters()
	if err != nil {
		return nil, err
	}

	return queryTable(ctx, r.client, r.path, params, table.HeaderRows(1))
}
