package engine

import "botwars/internal/market"

// Config holds the tunable parameters of one game.
type Config struct {
	// TotalRounds is the number of rounds before the game ends.
	TotalRounds int
	// TicksPerRound is the number of sub-ticks inside each round.
	TicksPerRound int
	// StartingCash is each bot's opening bankroll.
	StartingCash float64
	// WinTarget is the net worth that ends the game early.
	WinTarget float64
	// Seed seeds the engine RNG; 0 means seed from the clock.
	Seed int64
	// Assets is the tradeable basket, in display/iteration order.
	Assets []market.AssetTemplate
	// Events is the pool of market event templates.
	Events []market.Event
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TotalRounds <= 0 {
		c.TotalRounds = d.TotalRounds
	}
	if c.TicksPerRound <= 0 {
		c.TicksPerRound = d.TicksPerRound
	}
	if c.StartingCash <= 0 {
		c.StartingCash = d.StartingCash
	}
	if c.WinTarget <= 0 {
		c.WinTarget = d.WinTarget
	}
	if len(c.Assets) == 0 {
		c.Assets = d.Assets
	}
	if len(c.Events) == 0 {
		c.Events = d.Events
	}
	return c
}

// DefaultConfig returns the standard game setup: a five-coin basket, the
// full event pool, 100 rounds of 15 sub-ticks, 1000 starting cash and a
// 10000 win target.
func DefaultConfig() Config {
	return Config{
		TotalRounds:   100,
		TicksPerRound: 15,
		StartingCash:  1_000,
		WinTarget:     10_000,
		Assets: []market.AssetTemplate{
			{Symbol: "BTC", Name: "Bitcoin", Price: 97_000, Volatility: 0.40, Trend: 0.20},
			{Symbol: "ETH", Name: "Ethereum", Price: 2_700, Volatility: 0.50, Trend: 0.15},
			{Symbol: "SOL", Name: "Solana", Price: 175, Volatility: 0.90, Trend: 0.10},
			{Symbol: "BNB", Name: "BNB Chain", Price: 650, Volatility: 0.15, Trend: -0.05},
			{Symbol: "XRP", Name: "Ripple", Price: 2.50, Volatility: 0.60, Trend: 0.00},
		},
		Events: []market.Event{
			{Name: "REGULATORY CRACKDOWN", Description: "Govt bans fun. Markets panic.", Target: market.TargetAll, Impact: -0.04, Duration: 2},
			{Name: "SOL SUMMER", Description: "Solana goes viral on social media!", Target: "SOL", Impact: 0.12, Duration: 1},
			{Name: "ETH UPGRADE", Description: "Ethereum ships the next big fork!", Target: "ETH", Impact: 0.08, Duration: 2},
			{Name: "EXCHANGE OUTAGE", Description: "A major venue goes dark mid-session!", Target: "BTC", Impact: -0.10, Duration: 2},
			{Name: "LEDGER LEAK", Description: "Ripple's escrow moves hit the tape!", Target: "XRP", Impact: -0.07, Duration: 1},
			{Name: "BULL STAMPEDE", Description: "Investors go full FOMO!", Target: market.TargetAll, Impact: 0.05, Duration: 1},
			{Name: "FLASH CRASH", Description: "Algorithms trigger cascade selling!", Target: market.TargetAll, Impact: -0.08, Duration: 1},
			{Name: "SAFE HAVEN RUSH", Description: "Everyone flees to safety!", Target: "BNB", Impact: 0.06, Duration: 2},
			{Name: "WHALE ALERT", Description: "Mysterious whale enters the market!", Target: "SOL", Impact: 0.15, Duration: 1},
			{Name: "ETF INFLOWS", Description: "Institutions smash the buy button!", Target: "BTC", Impact: 0.06, Duration: 1},
			{Name: "SHORT SQUEEZE", Description: "Shorts get obliterated on XRP!", Target: "XRP", Impact: 0.12, Duration: 1},
			{Name: "FED RATE HIKE", Description: "Interest rates go brrrr UP!", Target: market.TargetAll, Impact: -0.03, Duration: 3},
			{Name: "STIMULUS CHECK", Description: "Money printer goes brrrr!", Target: market.TargetAll, Impact: 0.04, Duration: 2},
			{Name: "RUG PULL SCARE", Description: "A Solana dev wallet moves tokens!", Target: "SOL", Impact: -0.15, Duration: 1},
			{Name: "BURN EVENT", Description: "BNB supply shock incoming!", Target: "BNB", Impact: 0.10, Duration: 1},
		},
	}
}
