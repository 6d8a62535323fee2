package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

var defillamaCmd = &cobra.Command{
	Use:   "defillama",
	Short: "defillama datasets: tvl, market cap, yields, fees and stablecoins",
}

// datamaxi defillama tvl --chain=ethereum
var tvlCmd = &cobra.Command{
	Use:   "tvl",
	Short: "query the total value locked of a protocol or a chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		protocol, _ := cmd.Flags().GetString("protocol")
		chain, _ := cmd.Flags().GetString("chain")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			req := client.Defillama.NewGetTvlRequest()
			if len(protocol) > 0 {
				req.Protocol(protocol)
			}

			if len(chain) > 0 {
				req.Chain(chain)
			}

			return req.Do(ctx)
		})
	},
}

// datamaxi defillama protocol-tvl aave lido
var protocolTvlCmd = &cobra.Command{
	Use:   "protocol-tvl PROTOCOL...",
	Short: "query the total value locked of the protocols",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Defillama.NewGetProtocolTvlRequest().Protocols(args...).Do(ctx)
		})
	},
}

var tvlDetailCmd = &cobra.Command{
	Use:   "tvl-detail",
	Short: "query the total value locked of a protocol by chain or by token",
	RunE: func(cmd *cobra.Command, args []string) error {
		protocol, _ := cmd.Flags().GetString("protocol")
		chain, _ := cmd.Flags().GetString("chain")
		token, _ := cmd.Flags().GetBool("token")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			req := client.Defillama.NewGetTvlDetailRequest().
				Protocol(protocol).
				Token(token)

			if len(chain) > 0 {
				req.Chain(chain)
			}

			return req.Do(ctx)
		})
	},
}

var mcapCmd = &cobra.Command{
	Use:   "mcap PROTOCOL",
	Short: "query the market cap of a protocol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Defillama.NewGetMcapRequest().Protocol(args[0]).Do(ctx)
		})
	},
}

var poolYieldCmd = &cobra.Command{
	Use:   "pool-yield POOL_ID",
	Short: "query the yield history of a pool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Defillama.NewGetPoolYieldRequest().PoolID(args[0]).Do(ctx)
		})
	},
}

// newFeeRevenueCmd builds the fee and the revenue commands, which only differ by path.
func newFeeRevenueCmd(use, short string, revenue bool) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			protocol, _ := cmd.Flags().GetString("protocol")
			chain, _ := cmd.Flags().GetString("chain")
			daily, _ := cmd.Flags().GetBool("daily")
			detail, _ := cmd.Flags().GetBool("detail")

			return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
				if detail {
					req := client.Defillama.NewGetFeeDetailRequest()
					if revenue {
						req = client.Defillama.NewGetRevenueDetailRequest()
					}

					req.Daily(daily)
					if len(protocol) > 0 {
						req.Protocol(protocol)
					}

					if len(chain) > 0 {
						req.Chain(chain)
					}

					return req.Do(ctx)
				}

				req := client.Defillama.NewGetFeeRequest()
				if revenue {
					req = client.Defillama.NewGetRevenueRequest()
				}

				req.Daily(daily)
				if len(protocol) > 0 {
					req.Protocol(protocol)
				}

				if len(chain) > 0 {
					req.Chain(chain)
				}

				return req.Do(ctx)
			})
		},
	}

	c.Flags().String("protocol", "", "the protocol name")
	c.Flags().String("chain", "", "the chain name")
	c.Flags().Bool("daily", true, "daily values instead of the cumulative total")
	c.Flags().Bool("detail", false, "break the values down by chain and protocol")
	return c
}

var stablecoinMcapCmd = &cobra.Command{
	Use:   "stablecoin-mcap STABLECOIN",
	Short: "query the market cap of a stablecoin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chain, _ := cmd.Flags().GetString("chain")

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			req := client.Defillama.NewGetStablecoinMcapRequest().Stablecoin(args[0])
			if len(chain) > 0 {
				req.Chain(chain)
			}

			return req.Do(ctx)
		})
	},
}

var stablecoinPriceCmd = &cobra.Command{
	Use:   "stablecoin-price STABLECOIN",
	Short: "query the price of a stablecoin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			return client.Defillama.NewGetStablecoinPriceRequest().Stablecoin(args[0]).Do(ctx)
		})
	},
}

func init() {
	tvlCmd.Flags().String("protocol", "", "the protocol name")
	tvlCmd.Flags().String("chain", "", "the chain name")

	tvlDetailCmd.Flags().String("protocol", "", "the protocol name")
	tvlDetailCmd.Flags().String("chain", "", "the chain name")
	tvlDetailCmd.Flags().Bool("token", false, "break the tvl down by token")

	stablecoinMcapCmd.Flags().String("chain", "", "the chain name")

	defillamaCmd.AddCommand(
		tvlCmd,
		protocolTvlCmd,
		tvlDetailCmd,
		mcapCmd,
		poolYieldCmd,
		newFeeRevenueCmd("fee", "query the fees of a protocol or a chain", false),
		newFeeRevenueCmd("revenue", "query the revenue of a protocol or a chain", true),
		stablecoinMcapCmd,
		stablecoinPriceCmd,
	)
	RootCmd.AddCommand(defillamaCmd)
}
