package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
	"github.com/datamaxiplus/datamaxi-go/pkg/envvar"
	"github.com/datamaxiplus/datamaxi-go/pkg/util"
)

var RootCmd = &cobra.Command{
	Use:   "datamaxi",
	Short: "DataMaxi+ market data client",
	Long:  "query the centralized exchange, dex, defillama, trend and telegram datasets of DataMaxi+",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("debug") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// httpTransport replaces the transport of the client when set.
var httpTransport http.RoundTripper

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")

	RootCmd.PersistentFlags().String("api-key", "", "datamaxi api key, DATAMAXI_API_KEY is used when empty")
	RootCmd.PersistentFlags().String("base-url", datamaxiapi.BaseURL, "api base url")
	RootCmd.PersistentFlags().Duration("timeout", 0, "http request timeout, e.g, 10s")
	RootCmd.PersistentFlags().StringToString("proxy", nil, "proxy url by scheme, e.g, https=http://127.0.0.1:3128")
	RootCmd.PersistentFlags().Bool("show-limit-usage", false, "print the rate limit usage reported by the server")
	RootCmd.PersistentFlags().Bool("show-header", false, "print the response header")
	RootCmd.PersistentFlags().String("rate-limit", "", "client side rate limit, e.g, 5+1/1s")
	RootCmd.PersistentFlags().Int("retries", 0, "retry 5xx replies and network errors with exponential backoff")

	RootCmd.PersistentFlags().StringP("output", "o", string(outputTable), "output format: table, json, yaml or tsv")
	RootCmd.PersistentFlags().String("output-file", "", "write the output to the file instead of stdout")
	RootCmd.PersistentFlags().Bool("raw", false, "print the response body as it is")

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}
}

func newClient() (*datamaxi.Client, error) {
	proxies, err := RootCmd.PersistentFlags().GetStringToString("proxy")
	if err != nil {
		return nil, err
	}

	if len(proxies) == 0 {
		proxies, _ = envvar.StringMap("DATAMAXI_PROXIES")
	}

	cfg := datamaxiapi.Config{
		APIKey:         viper.GetString("api-key"),
		BaseURL:        viper.GetString("base-url"),
		Timeout:        viper.GetDuration("timeout"),
		Proxies:        proxies,
		ShowLimitUsage: viper.GetBool("show-limit-usage"),
		ShowHeader:     viper.GetBool("show-header"),
		RateLimit:      viper.GetString("rate-limit"),
	}

	client, err := datamaxi.New(cfg)
	if err != nil {
		return nil, err
	}

	if len(client.RestClient.APIKey()) == 0 {
		return nil, errors.New("api key is not set, use --api-key or DATAMAXI_API_KEY")
	}

	log.Debugf("using api key %s", util.MaskKey(client.RestClient.APIKey()))

	if httpTransport != nil {
		client.RestClient.HttpClient.Transport = httpTransport
	}

	return client, nil
}

func Execute() {
	viper.SetEnvPrefix("DATAMAXI")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	log.SetFormatter(&prefixed.TextFormatter{})

	environment := os.Getenv("DATAMAXI_ENV")
	switch environment {
	case "production", "prod":
		log.SetFormatter(&log.JSONFormatter{})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
