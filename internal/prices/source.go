// Package prices supplies live USD quotes for the asset basket. A Source
// wraps one upstream quoter with a short-lived cache and static fallback
// values, so FetchPrices never fails the engine: on any upstream problem it
// serves the last good quotes, or the fallbacks if none exist yet.
package prices

import (
	"log"
	"sync"
	"time"
)

// DefaultTTL is how long a fetched quote set stays fresh.
const DefaultTTL = 5 * time.Second

// Fallback prices used before the first successful fetch.
var Fallback = map[string]float64{
	"BTC": 97_000.00,
	"ETH": 2_700.00,
	"SOL": 175.00,
	"BNB": 650.00,
	"XRP": 2.50,
}

// quoter fetches one fresh quote set and may fail.
type quoter interface {
	Name() string
	Quotes() (map[string]float64, error)
}

// Source implements engine.PriceSource over a quoter.
type Source struct {
	q   quoter
	ttl time.Duration

	mu        sync.Mutex
	cache     map[string]float64
	fetchedAt time.Time
}

func newSource(q quoter, ttl time.Duration) *Source {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Source{q: q, ttl: ttl}
}

// Static returns a source that always serves the fallback values. Used for
// offline play and deterministic tests.
func Static() *Source {
	return newSource(nil, DefaultTTL)
}

// FetchPrices returns symbol -> USD price for all tracked symbols. It
// never fails: stale cache beats an upstream error, and the static
// fallbacks beat an empty cache.
func (s *Source) FetchPrices() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil && time.Since(s.fetchedAt) < s.ttl {
		return copyQuotes(s.cache)
	}

	if s.q != nil {
		quotes, err := s.q.Quotes()
		if err == nil {
			s.cache = quotes
			s.fetchedAt = time.Now()
			return copyQuotes(quotes)
		}
		log.Printf("prices: %s fetch failed, serving %s: %v", s.q.Name(), s.fallbackKind(), err)
	}

	if s.cache != nil {
		return copyQuotes(s.cache)
	}
	return copyQuotes(Fallback)
}

func (s *Source) fallbackKind() string {
	if s.cache != nil {
		return "cached quotes"
	}
	return "static fallback"
}

func copyQuotes(src map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(src))
	for sym, p := range src {
		out[sym] = p
	}
	return out
}
