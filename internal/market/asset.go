package market

import "math/rand"

const priceFloor = 0.50

// Asset is one tradeable instrument in the simulated market.
// Volatility is fixed at construction; trend drifts every tick via a
// bounded random walk.
type Asset struct {
	Symbol     string
	Name       string
	Price      float64
	Volatility float64
	Trend      float64
	History    []float64 // append-only, oldest first
}

// NewAsset creates an asset from a template with an empty price history.
func NewAsset(tmpl AssetTemplate, price float64) *Asset {
	return &Asset{
		Symbol:     tmpl.Symbol,
		Name:       tmpl.Name,
		Price:      price,
		Volatility: tmpl.Volatility,
		Trend:      tmpl.Trend,
	}
}

// AssetTemplate is the static definition an Asset is constructed from.
// Price is the fallback starting price when no live quote is available.
type AssetTemplate struct {
	Symbol     string
	Name       string
	Price      float64
	Volatility float64
	Trend      float64
}

// Tick advances the price exactly once. The delta is the sum of a random
// shock, trend pull, market mood, active event impacts, and mean reversion
// over the last five history points; the result is floored at 0.50.
// The trend itself then drifts, clamped to [-1, 1].
func (a *Asset) Tick(mood float64, events []Event, rng *rand.Rand) {
	a.History = append(a.History, a.Price)

	shock := rng.NormFloat64() * a.Volatility * a.Price * 0.05
	trendPull := a.Trend * a.Price * 0.002
	moodEffect := mood * a.Price * 0.01

	eventEffect := 0.0
	for _, ev := range events {
		if ev.Target == a.Symbol || ev.Target == TargetAll {
			eventEffect += ev.Impact * a.Price
		}
	}

	reversion := 0.0
	if len(a.History) > 5 {
		sum := 0.0
		for _, p := range a.History[len(a.History)-5:] {
			sum += p
		}
		reversion = (sum/5 - a.Price) * 0.01
	}

	a.Price += shock + trendPull + moodEffect + eventEffect + reversion
	if a.Price < priceFloor {
		a.Price = priceFloor
	}

	a.Trend += rng.NormFloat64() * 0.05
	a.Trend = clamp(a.Trend, -1, 1)
}

// ChangePct is the percentage move of the current price against the most
// recent history entry, or 0 when no history exists yet.
func (a *Asset) ChangePct() float64 {
	if len(a.History) == 0 {
		return 0
	}
	last := a.History[len(a.History)-1]
	return (a.Price - last) / last * 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
