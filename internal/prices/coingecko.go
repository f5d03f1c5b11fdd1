package prices

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// coinIDs maps basket symbols to CoinGecko coin IDs.
var coinIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
	"SOL": "solana",
	"BNB": "binancecoin",
	"XRP": "ripple",
}

type coinGecko struct {
	client *resty.Client
}

// CoinGecko returns a cached source backed by the free CoinGecko simple
// price API (no key needed).
func CoinGecko() *Source {
	client := resty.New().
		SetBaseURL("https://api.coingecko.com/api/v3").
		SetTimeout(5 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return newSource(&coinGecko{client: client}, DefaultTTL)
}

func (c *coinGecko) Name() string { return "coingecko" }

func (c *coinGecko) Quotes() (map[string]float64, error) {
	ids := make([]string, 0, len(coinIDs))
	for _, id := range coinIDs {
		ids = append(ids, id)
	}

	var body map[string]map[string]float64
	resp, err := c.client.R().
		SetQueryParams(map[string]string{
			"ids":           strings.Join(ids, ","),
			"vs_currencies": "usd",
		}).
		SetResult(&body).
		Get("/simple/price")
	if err != nil {
		return nil, fmt.Errorf("coingecko: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("coingecko: unexpected status %s", resp.Status())
	}

	quotes := make(map[string]float64, len(coinIDs))
	for sym, id := range coinIDs {
		if usd, ok := body[id]["usd"]; ok {
			quotes[sym] = usd
		} else {
			quotes[sym] = Fallback[sym]
		}
	}
	return quotes, nil
}
