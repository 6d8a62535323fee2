package datamaxiapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamaxiplus/datamaxi-go/pkg/testing/httptesting"
)

const binanceCandlePayload = `[["OpenTime","OpenPrice","HighPrice","LowPrice","ClosePrice","BaseVolume","CloseTime","QuoteVolume","NumTrades","TakerBuyVolume","TakerBuyQuoteVolume"],[1609459200000,"28923.63000000","29600.00000000","28624.57000000","29331.69000000","54182.92501100",1609545599999,"1582526989.16187265",1314910,"27455.80172500","802247744.54510409"]]`

func TestRawCandle(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/v1/raw/binance/candle", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "interval=1d&market=spot&symbol=BTC-USDT", req.URL.RawQuery)
		return httptesting.BuildResponseString(http.StatusOK, binanceCandlePayload), nil
	})

	res, err := client.Binance.NewGetCandleRequest().
		Symbol("BTC-USDT").
		Market(MarketSpot).
		Do(ctx)
	require.NoError(t, err)
	assert.Equal(t, binanceCandlePayload, string(res.Data))

	tbl, err := res.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"OpenTime"}, tbl.IndexNames())

	row, ok := tbl.Row("1609459200000")
	require.True(t, ok)

	v, ok := tbl.Float(row, "ClosePrice")
	assert.True(t, ok)
	assert.Equal(t, 29331.69, v)

	v, ok = tbl.Float(row, "NumTrades")
	assert.True(t, ok)
	assert.Equal(t, 1314910.0, v)
}

func TestRawExchanges(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	for _, exchange := range []string{RawBinance, RawBithumb, RawBybit, RawCoinone, RawGateio, RawGopax, RawHuobi, RawOkx, RawUpbit} {
		transport.GET("/v1/raw/"+exchange+"/symbols", jsonReply(`["a","b","c"]`))

		svc, ok := client.RawExchange(exchange)
		require.True(t, ok, exchange)
		assert.Equal(t, exchange, svc.Exchange())

		symbols, err := svc.Symbols(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, symbols)
	}

	_, ok := client.RawExchange("mtgox")
	assert.False(t, ok)

	_, err := client.Upbit.NewGetCandleRequest().Interval("").Symbol("KRW-BTC").Do(ctx)
	var requiredErr *ParameterRequiredError
	require.True(t, errors.As(err, &requiredErr))
	assert.Equal(t, []string{"interval"}, requiredErr.Params)
}

func TestBinanceFundingRate(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/v1/raw/binance/funding-rate", func(req *http.Request) (*http.Response, error) {
		query := req.URL.Query()
		assert.Equal(t, "2024-01-01", query.Get("toDateTime"))
		assert.False(t, query.Has("to"))
		return httptesting.BuildResponseString(http.StatusOK, `{"data":[{"d":"2023-12-31 16:00:00","r":"0.0001"}]}`), nil
	})

	page, err := client.Binance.NewGetFundingRateRequest().Symbol("BTCUSDT").To("2024-01-01").Do(ctx)
	require.NoError(t, err)

	tbl, err := page.Table()
	require.NoError(t, err)
	v, ok := tbl.Float(0, "r")
	assert.True(t, ok)
	assert.Equal(t, 0.0001, v)
}

func TestDefillama_ProtocolTvl(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/v1/defillama/tvl", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, `["aave","lido"]`, req.URL.Query().Get("protocols"))
		return httptesting.BuildResponseString(http.StatusOK, `[["Timestamp","aave","lido"],["03/30/2024 00:00:00","11349748481.861477","NaN"]]`), nil
	})

	res, err := client.Defillama.NewGetProtocolTvlRequest().Protocols("aave", "lido").Do(ctx)
	require.NoError(t, err)

	tbl, err := res.Table()
	require.NoError(t, err)
	_, ok := tbl.Float(0, "lido")
	assert.False(t, ok)

	_, err = client.Defillama.NewGetProtocolTvlRequest().Do(ctx)
	assert.EqualError(t, err, "protocols is mandatory, but received empty")
}

func TestDefillama_FeeRevenue(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/v1/defillama/fee", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "chain=ethereum&daily=false", req.URL.RawQuery)
		return httptesting.BuildResponseString(http.StatusOK, `[["Date","ethereum"],["2024-01-01","1000"]]`), nil
	})

	transport.GET("/v1/defillama/revenue/detail", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "daily=true&protocol=aave", req.URL.RawQuery)
		return httptesting.BuildResponseString(http.StatusOK, `[["Date","Protocol","Chain","Revenue"],["2024-01-01","aave","ethereum","12.5"]]`), nil
	})

	_, err := client.Defillama.NewGetFeeRequest().Chain("ethereum").Daily(false).Do(ctx)
	require.NoError(t, err)

	_, err = client.Defillama.NewGetRevenueRequest().Chain("ethereum").Protocol("aave").Do(ctx)
	var valueErr *ValueError
	assert.True(t, errors.As(err, &valueErr))

	_, err = client.Defillama.NewGetFeeRequest().Do(ctx)
	assert.True(t, errors.As(err, &valueErr))

	_, err = client.Defillama.NewGetFeeRequest().Protocol("").Do(ctx)
	var requiredErr *ParameterRequiredError
	require.True(t, errors.As(err, &requiredErr))
	assert.Equal(t, []string{"protocol"}, requiredErr.Params)

	_, err = client.Defillama.NewGetFeeDetailRequest().Do(ctx)
	var atLeastOneErr *AtLeastOneParameterRequiredError
	assert.True(t, errors.As(err, &atLeastOneErr))

	res, err := client.Defillama.NewGetRevenueDetailRequest().Protocol("aave").Do(ctx)
	require.NoError(t, err)

	tbl, err := res.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Protocol", "Chain"}, tbl.IndexNames())

	row, ok := tbl.Row("2024-01-01", "aave", "ethereum")
	require.True(t, ok)
	v, ok := tbl.Float(row, "Revenue")
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)
}

func TestDefillama_TvlDetail(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/v1/defillama/tvl/detail", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "protocol=aave&token=true", req.URL.RawQuery)
		return httptesting.BuildResponseString(http.StatusOK, `[["Date","Token","Amount"],["2024-01-01","USDT","100"],["2024-01-01","USDC","50"]]`), nil
	})

	res, err := client.Defillama.NewGetTvlDetailRequest().Protocol("aave").Token(true).Do(ctx)
	require.NoError(t, err)

	tbl, err := res.Table()
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"2024-01-01", "USDC"}, tbl.Key(1))
}

func TestTrend(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/v1/naver/trend", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "bitcoin", req.URL.Query().Get("keyword"))
		return httptesting.BuildResponseString(http.StatusOK, `[["Date","bitcoin"],["2024-01-01","88"]]`), nil
	})
	transport.GET("/v1/google/keywords", jsonReply(`["bitcoin"]`))

	res, err := client.Naver.NewGetTrendRequest().Keyword("bitcoin").Do(ctx)
	require.NoError(t, err)

	tbl, err := res.Table()
	require.NoError(t, err)
	v, ok := tbl.Float(0, "bitcoin")
	assert.True(t, ok)
	assert.Equal(t, 88.0, v)

	keywords, err := client.Google.Keywords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin"}, keywords)

	_, err = client.Google.NewGetTrendRequest().Do(ctx)
	assert.EqualError(t, err, "keyword is mandatory, but received empty")
}

func TestCexEndpoints(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/api/v1/wallet-status", jsonReply(`[{"network":"BTC","deposit":true,"withdraw":false,"fee":0.0005}]`))
	transport.GET("/api/v1/ticker", jsonReply(`[{"d":"2024-01-01 00:00:00","p":42000.5,"v":"12.3"}]`))
	transport.GET("/api/v1/forex", jsonReply(`{"s":"USD-KRW","r":1375.5}`))
	transport.GET("/api/v1/cex/fees", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "exchange=binance", req.URL.RawQuery)
		return httptesting.BuildResponseString(http.StatusOK, `[{"e":"binance","s":"BTC-USDT","t":0.001,"m":0.001}]`), nil
	})
	transport.GET("/api/v1/cex/candle/exchanges", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "futures", req.URL.Query().Get("market"))
		return httptesting.BuildResponseString(http.StatusOK, `["binance","bybit"]`), nil
	})

	res, err := client.Cex.WalletStatus.NewGetWalletStatusRequest().Exchange("binance").Asset("BTC").Do(ctx)
	require.NoError(t, err)
	tbl, err := res.Table()
	require.NoError(t, err)
	row, ok := tbl.Row("BTC")
	require.True(t, ok)
	assert.Equal(t, "false", tbl.String(row, "withdraw"))

	res, err = client.Cex.Ticker.NewGetTickerRequest().Exchange("binance").Symbol("BTC-USDT").Market(MarketSpot).Do(ctx)
	require.NoError(t, err)
	tbl, err = res.Table()
	require.NoError(t, err)
	v, ok := tbl.Float(0, "p")
	assert.True(t, ok)
	assert.Equal(t, 42000.5, v)

	res, err = client.Forex.NewGetForexRequest().Symbol("USD-KRW").Do(ctx)
	require.NoError(t, err)
	tbl, err = res.Table()
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	res, err = client.Cex.Fee.NewGetFeeRequest().Exchange("binance").Do(ctx)
	require.NoError(t, err)
	tbl, err = res.Table()
	require.NoError(t, err)
	assert.Equal(t, "BTC-USDT", tbl.String(0, "s"))

	exchanges, err := client.Cex.Candle.Exchanges(ctx, MarketFutures)
	require.NoError(t, err)
	assert.Equal(t, []string{"binance", "bybit"}, exchanges)

	_, err = client.Cex.Candle.Exchanges(ctx, "options")
	assert.EqualError(t, err, "market must be either spot or futures")

	_, err = client.Cex.Ticker.NewGetTickerRequest().Exchange("binance").Symbol("BTC-USDT").Do(ctx)
	assert.EqualError(t, err, "market is mandatory, but received empty")

	_, err = client.Premium.NewGetPremiumRequest().SourceExchange("upbit").Symbol("BTC-KRW").Do(ctx)
	assert.EqualError(t, err, "targetExchange is mandatory, but received empty")
}

func TestTelegramPosts_ChannelAlias(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/api/v1/telegram/posts", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "whale_alert", req.URL.Query().Get("channel"))
		return httptesting.BuildResponseString(http.StatusOK, `{"data":[{"id":1,"text":"hello"}],"page":1}`), nil
	})

	page, err := client.Telegram.NewGetPostsRequest().ChannelUsername("whale_alert").Do(ctx)
	require.NoError(t, err)

	var posts []struct {
		ID   int    `json:"id"`
		Text string `json:"text"`
	}
	require.NoError(t, page.Decode(&posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Text)
}

func TestDeprecatedAliases(t *testing.T) {
	client, _ := newTestClient(t)

	assert.Same(t, client.Cex.Candle, client.Candle)
	assert.Same(t, client.Cex.Ticker, client.Ticker)
	assert.Same(t, client.Cex.WalletStatus, client.WalletStatus)
	assert.Same(t, client.Cex.Announcement, client.Announcement)
	assert.Same(t, client.Cex.Token, client.Token)
	assert.Same(t, client.Cex.Orderbook, client.Orderbook)
}
