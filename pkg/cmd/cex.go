package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/datamaxiplus/datamaxi-go/pkg/cmd/cmdutil"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

// datamaxi candle --exchange=binance --symbol=BTC-USDT --interval=1h --pages=3
var candleCmd = &cobra.Command{
	Use:   "candle",
	Short: "query the candles of a centralized exchange",
	RunE: func(cmd *cobra.Command, args []string) error {
		exchange, _ := cmd.Flags().GetString("exchange")
		symbol, _ := cmd.Flags().GetString("symbol")
		interval, _ := cmd.Flags().GetString("interval")
		market, _ := cmd.Flags().GetString("market")

		window, err := cmdutil.GetTimeRange(cmd.Flags())
		if err != nil {
			return err
		}

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.Cex.Candle.NewGetCandleRequest().
				Exchange(exchange).
				Symbol(symbol).
				Interval(interval).
				Market(market).
				Page(opts.Page).
				Limit(opts.Limit).
				Sort(opts.Sort)

			if len(window.From) > 0 {
				req.From(window.From)
			}

			if len(window.To) > 0 {
				req.To(window.To)
			}

			return req.Do(ctx)
		})
	},
}

var tickerCmd = &cobra.Command{
	Use:   "ticker",
	Short: "query the latest ticker of a symbol",
	RunE: func(cmd *cobra.Command, args []string) error {
		exchange, _ := cmd.Flags().GetString("exchange")
		symbol, _ := cmd.Flags().GetString("symbol")
		market, _ := cmd.Flags().GetString("market")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Cex.Ticker.NewGetTickerRequest().
				Exchange(exchange).
				Symbol(symbol).
				Market(market).
				Do(ctx)
		})
	},
}

var orderbookCmd = &cobra.Command{
	Use:   "orderbook",
	Short: "query the orderbook snapshot of a symbol",
	RunE: func(cmd *cobra.Command, args []string) error {
		exchange, _ := cmd.Flags().GetString("exchange")
		symbol, _ := cmd.Flags().GetString("symbol")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Cex.Orderbook.NewGetOrderbookRequest().
				Exchange(exchange).
				Symbol(symbol).
				Do(ctx)
		})
	},
}

var feeCmd = &cobra.Command{
	Use:   "fee",
	Short: "query the trading fees, the filters are optional",
	RunE: func(cmd *cobra.Command, args []string) error {
		exchange, _ := cmd.Flags().GetString("exchange")
		symbol, _ := cmd.Flags().GetString("symbol")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			req := client.Cex.Fee.NewGetFeeRequest()
			if len(exchange) > 0 {
				req.Exchange(exchange)
			}

			if len(symbol) > 0 {
				req.Symbol(symbol)
			}

			return req.Do(ctx)
		})
	},
}

var walletStatusCmd = &cobra.Command{
	Use:   "wallet-status",
	Short: "query the deposit and withdrawal status of an asset",
	RunE: func(cmd *cobra.Command, args []string) error {
		exchange, _ := cmd.Flags().GetString("exchange")
		asset, _ := cmd.Flags().GetString("asset")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Cex.WalletStatus.NewGetWalletStatusRequest().
				Exchange(exchange).
				Asset(asset).
				Do(ctx)
		})
	},
}

var announcementsCmd = &cobra.Command{
	Use:   "announcements",
	Short: "query the exchange announcements",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.Cex.Announcement.NewGetAnnouncementRequest().
				Page(opts.Page).
				Limit(opts.Limit).
				Sort(opts.Sort)

			if len(category) > 0 {
				req.Category(category)
			}

			return req.Do(ctx)
		})
	},
}

var tokenUpdatesCmd = &cobra.Command{
	Use:   "token-updates",
	Short: "query the token listings and delistings",
	RunE: func(cmd *cobra.Command, args []string) error {
		updateType, _ := cmd.Flags().GetString("type")

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.Cex.Token.NewGetTokenUpdatesRequest().
				Page(opts.Page).
				Limit(opts.Limit).
				Sort(opts.Sort)

			if len(updateType) > 0 {
				req.Type(updateType)
			}

			return req.Do(ctx)
		})
	},
}

func init() {
	candleCmd.Flags().String("exchange", "", "the exchange name, e.g, binance")
	candleCmd.Flags().String("symbol", "", "the trading pair, e.g, BTC-USDT")
	candleCmd.Flags().String("interval", "1d", "candle interval, e.g, 1m, 1h, 1d")
	candleCmd.Flags().String("market", datamaxiapi.MarketSpot, "spot or futures")
	cmdutil.TimeRangeFlags(candleCmd.Flags())
	cmdutil.PageFlags(candleCmd.Flags())

	tickerCmd.Flags().String("exchange", "", "the exchange name")
	tickerCmd.Flags().String("symbol", "", "the trading pair")
	tickerCmd.Flags().String("market", datamaxiapi.MarketSpot, "spot or futures")

	orderbookCmd.Flags().String("exchange", "", "the exchange name")
	orderbookCmd.Flags().String("symbol", "", "the trading pair")

	feeCmd.Flags().String("exchange", "", "the exchange name")
	feeCmd.Flags().String("symbol", "", "the trading pair")

	walletStatusCmd.Flags().String("exchange", "", "the exchange name")
	walletStatusCmd.Flags().String("asset", "", "the asset, e.g, BTC")

	announcementsCmd.Flags().String("category", "", "announcement category, e.g, listing")
	cmdutil.PageFlags(announcementsCmd.Flags())

	tokenUpdatesCmd.Flags().String("type", "", "listed or delisted")
	cmdutil.PageFlags(tokenUpdatesCmd.Flags())

	RootCmd.AddCommand(candleCmd, tickerCmd, orderbookCmd, feeCmd, walletStatusCmd, announcementsCmd, tokenUpdatesCmd)
}
