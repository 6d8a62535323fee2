package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

type catalogFilter struct {
	exchange       string
	market         string
	chain          string
	sourceExchange string
	targetExchange string
}

// catalogEntry lists the supported values of a dataset, objects is set for the catalogs returning objects.
type catalogEntry struct {
	strings func(ctx context.Context, client *datamaxi.Client, f catalogFilter) ([]string, error)
	objects func(ctx context.Context, client *datamaxi.Client, f catalogFilter) (*datamaxiapi.Response, error)
}

func stringCatalog(f func(ctx context.Context, client *datamaxi.Client, f catalogFilter) ([]string, error)) catalogEntry {
	return catalogEntry{strings: f}
}

func objectCatalog(f func(ctx context.Context, client *datamaxi.Client, f catalogFilter) (*datamaxiapi.Response, error)) catalogEntry {
	return catalogEntry{objects: f}
}

var catalogs = map[string]catalogEntry{
	"candle-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.Candle.Exchanges(ctx, f.market)
	}),
	"candle-symbols": objectCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) (*datamaxiapi.Response, error) {
		return c.Cex.Candle.Symbols(ctx, f.exchange, f.market)
	}),
	"candle-intervals": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.Candle.Intervals(ctx)
	}),
	"ticker-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.Ticker.Exchanges(ctx, f.market)
	}),
	"ticker-symbols": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.Ticker.Symbols(ctx, f.exchange, f.market)
	}),
	"fee-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.Fee.Exchanges(ctx)
	}),
	"fee-symbols": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.Fee.Symbols(ctx, f.exchange)
	}),
	"wallet-status-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.WalletStatus.Exchanges(ctx)
	}),
	"wallet-status-assets": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.WalletStatus.Assets(ctx, f.exchange)
	}),
	"orderbook-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.Orderbook.Exchanges(ctx)
	}),
	"orderbook-symbols": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Cex.Orderbook.Symbols(ctx, f.exchange)
	}),
	"funding-rate-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.FundingRate.Exchanges(ctx)
	}),
	"funding-rate-symbols": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.FundingRate.Symbols(ctx, f.exchange)
	}),
	"premium-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Premium.Exchanges(ctx)
	}),
	"premium-symbols": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Premium.Symbols(ctx, f.sourceExchange, f.targetExchange)
	}),
	"forex-symbols": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Forex.Symbols(ctx)
	}),
	"dex-candle-chains": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Dex.Candle.Chains(ctx)
	}),
	"dex-candle-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Dex.Candle.Exchanges(ctx)
	}),
	"dex-candle-pools": objectCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) (*datamaxiapi.Response, error) {
		return c.Dex.Candle.Pools(ctx, f.exchange, f.chain)
	}),
	"dex-candle-intervals": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Dex.Candle.Intervals(ctx)
	}),
	"dex-trade-chains": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Dex.Trade.Chains(ctx)
	}),
	"dex-trade-exchanges": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Dex.Trade.Exchanges(ctx)
	}),
	"dex-trade-pools": objectCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) (*datamaxiapi.Response, error) {
		return c.Dex.Trade.Pools(ctx, f.exchange, f.chain)
	}),
	"defillama-protocols": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Defillama.Protocols(ctx)
	}),
	"defillama-chains": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Defillama.Chains(ctx)
	}),
	"defillama-pools": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Defillama.Pools(ctx)
	}),
	"defillama-stablecoins": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Defillama.Stablecoins(ctx)
	}),
	"defillama-tokens": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Defillama.Tokens(ctx)
	}),
	"google-keywords": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Google.Keywords(ctx)
	}),
	"naver-keywords": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		return c.Naver.Keywords(ctx)
	}),
	"raw-symbols": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		svc, err := rawExchange(c, f.exchange)
		if err != nil {
			return nil, err
		}
		return svc.Symbols(ctx)
	}),
	"raw-intervals": stringCatalog(func(ctx context.Context, c *datamaxi.Client, f catalogFilter) ([]string, error) {
		svc, err := rawExchange(c, f.exchange)
		if err != nil {
			return nil, err
		}
		return svc.Intervals(ctx)
	}),
}

func catalogNames() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// datamaxi catalog candle-exchanges --market=futures
var catalogCmd = &cobra.Command{
	Use:   "catalog NAME",
	Short: "list the exchanges, symbols, chains or intervals supported by a dataset",
	Long:  "list the values supported by a dataset, NAME is one of:\n  " + strings.Join(catalogNames(), "\n  "),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, ok := catalogs[args[0]]
		if !ok {
			return fmt.Errorf("unknown catalog %q, see datamaxi catalog --help", args[0])
		}

		var f catalogFilter
		f.exchange, _ = cmd.Flags().GetString("exchange")
		f.market, _ = cmd.Flags().GetString("market")
		f.chain, _ = cmd.Flags().GetString("chain")
		f.sourceExchange, _ = cmd.Flags().GetString("source-exchange")
		f.targetExchange, _ = cmd.Flags().GetString("target-exchange")

		if entry.objects != nil {
			return runJSON(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
				return entry.objects(ctx, client, f)
			})
		}

		return runStrings(cmd, args[0], func(ctx context.Context, client *datamaxi.Client) ([]string, error) {
			return entry.strings(ctx, client, f)
		})
	},
}

func init() {
	catalogCmd.ValidArgs = catalogNames()
	catalogCmd.Flags().String("exchange", "", "filter by exchange")
	catalogCmd.Flags().String("market", "", "spot or futures")
	catalogCmd.Flags().String("chain", "", "filter by chain")
	catalogCmd.Flags().String("source-exchange", "", "source exchange of the premium catalogs")
	catalogCmd.Flags().String("target-exchange", "", "target exchange of the premium catalogs")
	RootCmd.AddCommand(catalogCmd)
}
