package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/datamaxiplus/datamaxi-go/pkg/cmd/cmdutil"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

// datamaxi funding-rate --exchange=binance --symbol=BTC-USDT
// datamaxi funding-rate --latest
var fundingRateCmd = &cobra.Command{
	Use:   "funding-rate",
	Short: "query the funding rate history, or the latest funding rates with --latest",
	RunE: func(cmd *cobra.Command, args []string) error {
		exchange, _ := cmd.Flags().GetString("exchange")
		symbol, _ := cmd.Flags().GetString("symbol")
		latest, _ := cmd.Flags().GetBool("latest")

		if latest {
			return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
				req := client.FundingRate.NewGetLatestFundingRateRequest()
				if len(exchange) > 0 {
					req.Exchange(exchange)
				}

				if len(symbol) > 0 {
					req.Symbol(symbol)
				}

				return req.Do(ctx)
			})
		}

		window, err := cmdutil.GetTimeRange(cmd.Flags())
		if err != nil {
			return err
		}

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.FundingRate.NewGetFundingRateHistoryRequest().
				Exchange(exchange).
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

var premiumCmd = &cobra.Command{
	Use:   "premium",
	Short: "query the price premium between two exchanges",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, _ := cmd.Flags().GetString("source-exchange")
		target, _ := cmd.Flags().GetString("target-exchange")
		symbol, _ := cmd.Flags().GetString("symbol")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Premium.NewGetPremiumRequest().
				SourceExchange(source).
				TargetExchange(target).
				Symbol(symbol).
				Do(ctx)
		})
	},
}

var forexCmd = &cobra.Command{
	Use:   "forex SYMBOL",
	Short: "query the exchange rate of a currency pair, e.g, USD-KRW",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Forex.NewGetForexRequest().Symbol(args[0]).Do(ctx)
		})
	},
}

func init() {
	fundingRateCmd.Flags().String("exchange", "", "the exchange name")
	fundingRateCmd.Flags().String("symbol", "", "the futures symbol, e.g, BTC-USDT")
	fundingRateCmd.Flags().Bool("latest", false, "query the latest funding rates instead of the history")
	cmdutil.TimeRangeFlags(fundingRateCmd.Flags())
	cmdutil.PageFlags(fundingRateCmd.Flags())

	premiumCmd.Flags().String("source-exchange", "", "the source exchange")
	premiumCmd.Flags().String("target-exchange", "", "the target exchange")
	premiumCmd.Flags().String("symbol", "", "the trading pair")

	RootCmd.AddCommand(fundingRateCmd, premiumCmd, forexCmd)
}
