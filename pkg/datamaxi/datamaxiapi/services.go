package datamaxiapi

type CexService struct {
	Candle       *CexCandleService
	Ticker       *CexTickerService
	Fee          *CexFeeService
	WalletStatus *CexWalletStatusService
	Announcement *CexAnnouncementService
	Token        *CexTokenService
	Orderbook    *CexOrderbookService
}

type DexService struct {
	Candle *DexCandleService
	Trade  *DexTradeService
}

// Client groups the dataset services over one transport.
type Client struct {
	Cex         *CexService
	Dex         *DexService
	FundingRate *FundingRateService
	Premium     *PremiumService
	Forex       *ForexService
	Defillama   *DefillamaService
	Google      *TrendService
	Naver       *TrendService
	Telegram    *TelegramService

	Binance *BinanceService
	Bithumb *RawExchangeService
	Bybit   *RawExchangeService
	Coinone *RawExchangeService
	Gateio  *RawExchangeService
	Gopax   *RawExchangeService
	Huobi   *RawExchangeService
	Okx     *RawExchangeService
	Upbit   *RawExchangeService

	// Deprecated: use Cex.Candle.
	Candle *CexCandleService

	// Deprecated: use Cex.Ticker.
	Ticker *CexTickerService

	// Deprecated: use Cex.WalletStatus.
	WalletStatus *CexWalletStatusService

	// Deprecated: use Cex.Announcement.
	Announcement *CexAnnouncementService

	// Deprecated: use Cex.Token.
	Token *CexTokenService

	// Deprecated: use Cex.Orderbook.
	Orderbook *CexOrderbookService
}

func NewClient(client APIClient) *Client {
	cex := &CexService{
		Candle:       &CexCandleService{client: client},
		Ticker:       &CexTickerService{client: client},
		Fee:          &CexFeeService{client: client},
		WalletStatus: &CexWalletStatusService{client: client},
		Announcement: &CexAnnouncementService{client: client},
		Token:        &CexTokenService{client: client},
		Orderbook:    &CexOrderbookService{client: client},
	}

	return &Client{
		Cex: cex,
		Dex: &DexService{
			Candle: &DexCandleService{client: client},
			Trade:  &DexTradeService{client: client},
		},
		FundingRate: &FundingRateService{client: client},
		Premium:     &PremiumService{client: client},
		Forex:       &ForexService{client: client},
		Defillama:   &DefillamaService{client: client},
		Google:      &TrendService{client: client, source: TrendGoogle},
		Naver:       &TrendService{client: client, source: TrendNaver},
		Telegram:    &TelegramService{client: client},

		Binance: &BinanceService{RawExchangeService: newRawExchangeService(client, RawBinance)},
		Bithumb: newRawExchangeService(client, RawBithumb),
		Bybit:   newRawExchangeService(client, RawBybit),
		Coinone: newRawExchangeService(client, RawCoinone),
		Gateio:  newRawExchangeService(client, RawGateio),
		Gopax:   newRawExchangeService(client, RawGopax),
		Huobi:   newRawExchangeService(client, RawHuobi),
		Okx:     newRawExchangeService(client, RawOkx),
		Upbit:   newRawExchangeService(client, RawUpbit),

		Candle:       cex.Candle,
		Ticker:       cex.Ticker,
		WalletStatus: cex.WalletStatus,
		Announcement: cex.Announcement,
		Token:        cex.Token,
		Orderbook:    cex.Orderbook,
	}
}

// RawExchange looks up the raw data service by exchange name.
func (c *Client) RawExchange(exchange string) (*RawExchangeService, bool) {
	switch exchange {
	case RawBinance:
		return c.Binance.RawExchangeService, true
	case RawBithumb:
		return c.Bithumb, true
	case RawBybit:
		return c.Bybit, true
	case RawCoinone:
		return c.Coinone, true
	case RawGateio:
		return c.Gateio, true
	case RawGopax:
		return c.Gopax, true
	case RawHuobi:
		return c.Huobi, true
	case RawOkx:
		return c.Okx, true
	case RawUpbit:
		return c.Upbit, true
	}

	return nil, false
}
