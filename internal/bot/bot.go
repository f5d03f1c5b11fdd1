package bot

import (
	"botwars/internal/market"
)

// Bot is one trading agent: cash, holdings, the running cost-basis ledger
// and lifetime performance counters. All mutation goes through ExecuteBuy
// and ExecuteSell so the ledger invariants hold: cash never goes negative,
// and a holdings entry exists iff its cost-basis entry exists.
type Bot struct {
	Personality Personality
	Cash        float64
	Holdings    map[string]int     // symbol -> share count, entry removed at zero
	CostBasis   map[string]float64 // symbol -> weighted average unit cost

	TradesMade      int
	TauntsGiven     int
	BestTradePnL    float64
	WorstTradePnL   float64 // starts at 0; stays 0 until a realized loss
	NetWorthHistory []float64
}

// New creates a bot for a personality with its starting bankroll.
func New(p Personality, cash float64) *Bot {
	return &Bot{
		Personality: p,
		Cash:        cash,
		Holdings:    make(map[string]int),
		CostBasis:   make(map[string]float64),
	}
}

// Profile returns the bot's display profile.
func (b *Bot) Profile() Profile { return ProfileFor(b.Personality) }

// Name returns the bot's display name.
func (b *Bot) Name() string { return b.Profile().Name }

// NetWorth is cash plus the mark-to-market value of all holdings.
func (b *Bot) NetWorth(assets map[string]*market.Asset) float64 {
	total := b.Cash
	for sym, qty := range b.Holdings {
		if a, ok := assets[sym]; ok {
			total += float64(qty) * a.Price
		}
	}
	return total
}

// ExecuteBuy buys qty shares at the asset's current price. It fails softly
// (no mutation) when qty is non-positive or the cost exceeds cash. The cost
// basis becomes the weighted average of the old position and the new lot.
func (b *Bot) ExecuteBuy(a *market.Asset, qty int) bool {
	cost := float64(qty) * a.Price
	if qty <= 0 || cost > b.Cash {
		return false
	}
	prevQty := b.Holdings[a.Symbol]
	prevBasis := b.CostBasis[a.Symbol]

	b.Cash -= cost
	b.Holdings[a.Symbol] = prevQty + qty
	b.CostBasis[a.Symbol] = (prevBasis*float64(prevQty) + cost) / float64(prevQty+qty)
	b.TradesMade++
	return true
}

// ExecuteSell sells up to qty shares at the asset's current price, clamping
// to the held amount, and fails softly when nothing is held. Realized P&L
// feeds the best/worst single-trade counters; the worst counter keeps its
// zero start until the first losing trade. Holdings and cost basis entries
// are removed together when the position closes.
func (b *Bot) ExecuteSell(a *market.Asset, qty int) bool {
	held := b.Holdings[a.Symbol]
	if qty > held {
		qty = held
	}
	if qty <= 0 {
		return false
	}

	basis, ok := b.CostBasis[a.Symbol]
	if !ok {
		basis = a.Price
	}
	pnl := (a.Price - basis) * float64(qty)
	if pnl > b.BestTradePnL {
		b.BestTradePnL = pnl
	}
	if pnl < b.WorstTradePnL {
		b.WorstTradePnL = pnl
	}

	b.Cash += float64(qty) * a.Price
	b.Holdings[a.Symbol] = held - qty
	if b.Holdings[a.Symbol] == 0 {
		delete(b.Holdings, a.Symbol)
		delete(b.CostBasis, a.Symbol)
	}
	b.TradesMade++
	return true
}
