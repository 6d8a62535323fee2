package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/datamaxiplus/datamaxi-go/pkg/cmd/cmdutil"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "telegram channels and posts",
}

var telegramChannelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "query the tracked telegram channels",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.Telegram.NewGetChannelsRequest().
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

// datamaxi telegram posts --channel=binance_announcements --pages=0
var telegramPostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "query the posts of the telegram channels",
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, _ := cmd.Flags().GetString("channel")

		opts, err := cmdutil.GetPageOptions(cmd.Flags())
		if err != nil {
			return err
		}

		return runPages(cmd, opts, func(ctx context.Context, client *datamaxi.Client) (*datamaxiapi.Page, error) {
			req := client.Telegram.NewGetPostsRequest().
				Page(opts.Page).
				Limit(opts.Limit).
				Sort(opts.Sort)

			if len(channel) > 0 {
				req.ChannelName(channel)
			}

			return req.Do(ctx)
		})
	},
}

func init() {
	telegramChannelsCmd.Flags().String("category", "", "channel category")
	cmdutil.PageFlags(telegramChannelsCmd.Flags())

	telegramPostsCmd.Flags().String("channel", "", "the channel name")
	cmdutil.PageFlags(telegramPostsCmd.Flags())

	telegramCmd.AddCommand(telegramChannelsCmd, telegramPostsCmd)
	RootCmd.AddCommand(telegramCmd)
}
