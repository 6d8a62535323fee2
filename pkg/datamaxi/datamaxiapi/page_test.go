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

func TestCexCandle_NextPage(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/api/v1/cex/candle", func(req *http.Request) (*http.Response, error) {
		query := req.URL.Query()
		assert.Equal(t, "binance", query.Get("exchange"))
		assert.Equal(t, "BTC-USDT", query.Get("symbol"))
		assert.Equal(t, "1h", query.Get("interval"))
		assert.Equal(t, "futures", query.Get("market"))
		assert.Equal(t, "asc", query.Get("sort"))
		assert.Equal(t, "2", query.Get("limit"))
		assert.Equal(t, "2024-01-01", query.Get("from"))
		assert.False(t, query.Has("to"))

		switch query.Get("page") {
		case "3":
			return httptesting.BuildResponseString(http.StatusOK,
				`{"data":[{"d":"2024-01-01 04:00:00","o":"1","h":"2","l":"0.5","c":"1.5","v":"NaN"}],"page":3,"limit":2}`), nil
		case "4":
			return httptesting.BuildResponseString(http.StatusOK,
				`{"data":[{"d":"2024-01-01 06:00:00","o":"2","h":"3","l":"1.5","c":"2.5","v":"10"}],"page":4,"limit":2}`), nil
		}

		return httptesting.BuildResponseString(http.StatusOK, `{"data":[],"page":5,"limit":2}`), nil
	})

	page, err := client.Cex.Candle.NewGetCandleRequest().
		Exchange("binance").
		Symbol("BTC-USDT").
		Interval("1h").
		Market(MarketFutures).
		From("2024-01-01").
		Sort(SortAsc).
		Page(3).
		Limit(2).
		Do(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, page.PageNumber)
	assert.Equal(t, 2, page.Limit)
	assert.Contains(t, string(page.Body), `"page":3`)

	tbl, err := page.Table()
	require.NoError(t, err)
	_, ok := tbl.Float(0, "v")
	assert.False(t, ok)

	next, err := page.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, next.PageNumber)

	tbl, err = next.Table()
	require.NoError(t, err)
	v, ok := tbl.Float(0, "c")
	assert.True(t, ok)
	assert.Equal(t, 2.5, v)

	_, err = next.Next(ctx)
	assert.True(t, errors.Is(err, ErrNoDataFound))

	requests := transport.Requests()
	require.Len(t, requests, 3)
	assert.Equal(t, "5", requests[2].URL.Query().Get("page"))
}

func TestPagedEndpoints_NoData(t *testing.T) {
	ctx := context.Background()

	for _, body := range []string{`{"data":null}`, `{"data":[]}`, `{}`} {
		t.Run(body, func(t *testing.T) {
			client, transport := newTestClient(t)
			transport.GET("/api/v1/cex/announcements", jsonReply(body))
			transport.GET("/api/v1/funding-rate", jsonReply(body))
			transport.GET("/api/v1/telegram/channels", jsonReply(body))

			_, err := client.Cex.Announcement.NewGetAnnouncementRequest().Do(ctx)
			assert.ErrorIs(t, err, ErrNoDataFound)

			_, err = client.FundingRate.NewGetFundingRateHistoryRequest().
				Exchange("binance").
				Symbol("BTC-USDT").
				Do(ctx)
			assert.ErrorIs(t, err, ErrNoDataFound)

			_, err = client.Telegram.NewGetChannelsRequest().Do(ctx)
			assert.ErrorIs(t, err, ErrNoDataFound)
		})
	}
}

func TestPagedEndpoints_Validation(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	_, err := client.Cex.Candle.NewGetCandleRequest().
		Exchange("binance").
		Symbol("BTC-USDT").
		From("2024-01-01").
		To("2024-02-01").
		Do(ctx)
	assert.EqualError(t, err, "from and to cannot be set at the same time")

	_, err = client.FundingRate.NewGetFundingRateHistoryRequest().
		Exchange("binance").
		Symbol("BTC-USDT").
		From("2024-01-01").
		To("2024-02-01").
		Do(ctx)
	assert.EqualError(t, err, "fromDateTime and toDateTime cannot be set at the same time")

	_, err = client.Dex.Trade.NewGetTradeRequest().
		Chain("bsc_mainnet").
		Exchange("pancakeswap").
		Pool("0xb24cd29e32FaCDDf9e73831d5cD1FFcd1e535423").
		Page(0).
		Do(ctx)
	assert.EqualError(t, err, "page must be greater than 0")

	_, err = client.Cex.Token.NewGetTokenUpdatesRequest().Type("rumored").Do(ctx)
	assert.EqualError(t, err, "type must be either listed or delisted when set")

	_, err = client.Telegram.NewGetPostsRequest().Limit(0).Do(ctx)
	assert.EqualError(t, err, "limit must be greater than 0")

	_, err = client.Cex.Announcement.NewGetAnnouncementRequest().Sort("latest").Do(ctx)
	assert.EqualError(t, err, "sort must be either asc or desc")

	assert.Empty(t, transport.Requests(), "validation happens before any request")
}

func TestWithPage_KeepsOriginal(t *testing.T) {
	client, _ := newTestClient(t)

	req := client.Dex.Candle.NewGetCandleRequest().
		Chain("kaia_mainnet").
		Exchange("klayswap").
		Pool("0xabc").
		Page(2)

	copied := req.WithPage(7).(*GetDexCandleRequest)

	params, err := copied.GetQueryParameters()
	require.NoError(t, err)
	assert.Equal(t, "7", params.Get("page"))
	assert.Equal(t, "klayswap", params.Get("exchange"))

	params, err = req.GetQueryParameters()
	require.NoError(t, err)
	assert.Equal(t, "2", params.Get("page"))
}

func TestPage_NextRepeatsOriginalArguments(t *testing.T) {
	ctx := context.Background()
	client, transport := newTestClient(t)

	transport.GET("/api/v1/cex/candle", jsonReply(`{"data":[{"d":"2024-01-01 00:00:00","c":"1"}],"page":1,"limit":1000}`))

	req := client.Cex.Candle.NewGetCandleRequest().
		Exchange("binance").
		Symbol("BTC-USDT")

	page, err := req.Do(ctx)
	require.NoError(t, err)

	// the builder is reused for another query after the first page was fetched
	req.Symbol("ETH-USDT").Exchange("upbit").Page(9)

	_, err = page.Next(ctx)
	require.NoError(t, err)

	params, err := page.Request().(*GetCexCandleRequest).GetQueryParameters()
	require.NoError(t, err)
	assert.Equal(t, "BTC-USDT", params.Get("symbol"))
	assert.Equal(t, "1", params.Get("page"))

	requests := transport.Requests()
	require.Len(t, requests, 2)

	query := requests[1].URL.Query()
	assert.Equal(t, "BTC-USDT", query.Get("symbol"))
	assert.Equal(t, "binance", query.Get("exchange"))
	assert.Equal(t, "2", query.Get("page"))
}

func TestPagedEndpoints_UnexpectedBody(t *testing.T) {
	ctx := context.Background()

	for _, body := range []string{`[{"d":"2024-01-01"}]`, `maintenance`} {
		t.Run(body, func(t *testing.T) {
			client, transport := newTestClient(t)
			transport.GET("/api/v1/cex/announcements", jsonReply(body))

			_, err := client.Cex.Announcement.NewGetAnnouncementRequest().Do(ctx)
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrNoDataFound))
			assert.Contains(t, err.Error(), "expecting an object")
		})
	}
}
