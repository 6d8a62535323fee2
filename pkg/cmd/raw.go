package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datamaxiplus/datamaxi-go/pkg/cmd/cmdutil"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "datasets in the native format of a single exchange",
}

func rawExchange(client *datamaxi.Client, exchange string) (*datamaxiapi.RawExchangeService, error) {
	svc, ok := client.RawExchange(exchange)
	if !ok {
		return nil, fmt.Errorf("exchange %q has no raw dataset", exchange)
	}

	return svc, nil
}

// datamaxi raw candle --exchange=upbit --symbol=BTC-KRW --interval=1h
var rawCandleCmd = &cobra.Command{
	Use:   "candle",
	Short: "query the candles of an exchange in its native format",
	RunE: func(cmd *cobra.Command, args []string) error {
		exchange, _ := cmd.Flags().GetString("exchange")
		symbol, _ := cmd.Flags().GetString("symbol")
		interval, _ := cmd.Flags().GetString("interval")
		market, _ := cmd.Flags().GetString("market")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			svc, err := rawExchange(client, exchange)
			if err != nil {
				return nil, err
			}

			req := svc.NewGetCandleRequest().
				Symbol(symbol).
				Interval(interval)

			if len(market) > 0 {
				req.Market(market)
			}

			return req.Do(ctx)
		})
	},
}

var binanceKlineCmd = &cobra.Command{
	Use:   "binance-kline",
	Short: "query the binance klines",
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, _ := cmd.Flags().GetString("symbol")
		interval, _ := cmd.Flags().GetString("interval")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Binance.NewGetKlineRequest().
				Symbol(symbol).
				Interval(interval).
				Do(ctx)
		})
	},
}

var binanceFundingRateCmd = &cobra.Command{
	Use:   "binance-funding-rate",
	Short: "query the binance funding rate history",
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, _ := cmd.Flags().GetString("symbol")

		window, err := cmdutil.GetTimeRange(cmd.Flags())
		if err != nil {
			return err
		}

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.Binance.NewGetFundingRateRequest().
				Symbol(symbol).
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

func init() {
	rawCandleCmd.Flags().String("exchange", "", "binance, bithumb, bybit, coinone, gateio, gopax, huobi, okx or upbit")
	rawCandleCmd.Flags().String("symbol", "", "the symbol in the format of the exchange")
	rawCandleCmd.Flags().String("interval", "1d", "candle interval")
	rawCandleCmd.Flags().String("market", "", "spot or futures, for the exchanges listing both")

	binanceKlineCmd.Flags().String("symbol", "", "the binance symbol, e.g, BTCUSDT")
	binanceKlineCmd.Flags().String("interval", "1d", "kline interval")

	binanceFundingRateCmd.Flags().String("symbol", "", "the binance futures symbol")
	cmdutil.TimeRangeFlags(binanceFundingRateCmd.Flags())
	cmdutil.PageFlags(binanceFundingRateCmd.Flags())

	rawCmd.AddCommand(rawCandleCmd, binanceKlineCmd, binanceFundingRateCmd)
	RootCmd.AddCommand(rawCmd)
}
