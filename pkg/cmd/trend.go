package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

// datamaxi trend google bitcoin
var trendCmd = &cobra.Command{
	Use:       "trend SOURCE KEYWORD",
	Short:     "query the search trend of a keyword on google or naver",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{datamaxiapi.TrendGoogle, datamaxiapi.TrendNaver},
	RunE: func(cmd *cobra.Command, args []string) error {
		source, keyword := args[0], args[1]

		return runResponse(cmd, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Response, error) {
			svc, err := trendService(client, source)
			if err != nil {
				return nil, err
			}

			return svc.NewGetTrendRequest().Keyword(keyword).Do(ctx)
		})
	},
}

func trendService(client *datamaxi.Client, source string) (*datamaxiapi.TrendService, error) {
	switch source {
	case datamaxiapi.TrendGoogle:
		return client.Google, nil
	case datamaxiapi.TrendNaver:
		return client.Naver, nil
	}

	return nil, fmt.Errorf("trend source must be either %s or %s", datamaxiapi.TrendGoogle, datamaxiapi.TrendNaver)
}

func init() {
	RootCmd.AddCommand(trendCmd)
}
