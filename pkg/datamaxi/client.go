// Package datamaxi is the entry point of the DataMaxi+ SDK.
//
//	client, err := datamaxi.New(datamaxiapi.Config{APIKey: "..."})
//	page, err := client.Cex.Candle.NewGetCandleRequest().
//		Exchange("binance").
//		Symbol("BTC-USDT").
//		Do(ctx)
//	tbl, err := page.Table()
package datamaxi

import (
	"github.com/sirupsen/logrus"

	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/datamaxiapi"
)

var log = logrus.WithField("component", "datamaxi")

// Client exposes every dataset service over one RestClient.
type Client struct {
	*datamaxiapi.Client

	RestClient *datamaxiapi.RestClient
}

func New(cfg datamaxiapi.Config) (*Client, error) {
	restClient, err := datamaxiapi.NewRestClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		Client:     datamaxiapi.NewClient(restClient),
		RestClient: restClient,
	}, nil
}

// NewFromEnv builds the client from the DATAMAXI_* environment variables.
func NewFromEnv() (*Client, error) {
	cfg := datamaxiapi.ConfigFromEnv()
	if len(cfg.APIKey) == 0 {
		log.Warn("DATAMAXI_API_KEY is not set, requests will be rejected by the server")
	}

	return New(cfg)
}
