package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/datamaxiplus/datamaxi-go/pkg/cmd/cmdutil"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

var dexCmd = &cobra.Command{
	Use:   "dex",
	Short: "decentralized exchange datasets",
}

// datamaxi dex candle --chain=bsc_mainnet --exchange=pancakeswap --pool=0x...
var dexCandleCmd = &cobra.Command{
	Use:   "candle",
	Short: "query the candles of a dex pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, _ := cmd.Flags().GetString("chain")
		exchange, _ := cmd.Flags().GetString("exchange")
		pool, _ := cmd.Flags().GetString("pool")
		interval, _ := cmd.Flags().GetString("interval")

		window, err := cmdutil.GetTimeRange(cmd.Flags())
		if err != nil {
			return err
		}

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.Dex.Candle.NewGetCandleRequest().
				Chain(chain).
				Exchange(exchange).
				Pool(pool).
				Interval(interval).
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

var dexTradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "query the trades of a dex pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, _ := cmd.Flags().GetString("chain")
		exchange, _ := cmd.Flags().GetString("exchange")
		pool, _ := cmd.Flags().GetString("pool")

		window, err := cmdutil.GetTimeRange(cmd.Flags())
		if err != nil {
			return err
		}

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.Dex.Trade.NewGetTradeRequest().
				Chain(chain).
				Exchange(exchange).
				Pool(pool).
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
	for _, c := range []*cobra.Command{dexCandleCmd, dexTradeCmd} {
		c.Flags().String("chain", "", "the chain name, e.g, bsc_mainnet")
		c.Flags().String("exchange", "", "the dex name, e.g, pancakeswap")
		c.Flags().String("pool", "", "the pool address")
		cmdutil.TimeRangeFlags(c.Flags())
		cmdutil.PageFlags(c.Flags())
	}

	dexCandleCmd.Flags().String("interval", "1d", "candle interval")

	dexCmd.AddCommand(dexCandleCmd, dexTradeCmd)
	RootCmd.AddCommand(dexCmd)
}
