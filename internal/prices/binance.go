package prices

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	gbinance "github.com/adshao/go-binance/v2"
)

// pairs maps basket symbols to Binance USDT spot pairs.
var pairs = map[string]string{
	"BTC": "BTCUSDT",
	"ETH": "ETHUSDT",
	"SOL": "SOLUSDT",
	"BNB": "BNBUSDT",
	"XRP": "XRPUSDT",
}

type binanceQuoter struct {
	client *gbinance.Client
}

// Binance returns a cached source backed by the public Binance spot ticker
// (no credentials needed for market data).
func Binance() *Source {
	client := gbinance.NewClient("", "")
	client.HTTPClient = &http.Client{Timeout: 7 * time.Second}
	return newSource(&binanceQuoter{client: client}, DefaultTTL)
}

func (b *binanceQuoter) Name() string { return "binance" }

func (b *binanceQuoter) Quotes() (map[string]float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	listed, err := b.client.NewListPricesService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance: list prices: %w", err)
	}

	byPair := make(map[string]string, len(listed))
	for _, p := range listed {
		byPair[p.Symbol] = p.Price
	}

	quotes := make(map[string]float64, len(pairs))
	for sym, pair := range pairs {
		raw, ok := byPair[pair]
		if !ok {
			quotes[sym] = Fallback[sym]
			continue
		}
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("binance: bad price %q for %s: %w", raw, pair, err)
		}
		quotes[sym] = price
	}
	return quotes, nil
}
