// Package strategy holds one decision function per bot personality.
// Each function is pure policy over (bot, market context); ledger mutation
// happens at decision time, so later decisions in the same call see the
// bot's updated cash and holdings.
package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// Designated assets some personalities key on.
const (
	safeAsset = "BNB"
	hypeAsset = "SOL"
)

const tauntChance = 0.15

// Context is the market state a strategy sees when deciding.
type Context struct {
	Assets  map[string]*market.Asset
	Symbols []string // asset iteration order, stable across ticks
	Round   int
	Bots    []*bot.Bot
	Events  []market.Event
	Rng     *rand.Rand
}

// Func decides and applies a bot's actions for one sub-tick.
type Func func(b *bot.Bot, ctx *Context) []market.TradeAction

var byPersonality = map[bot.Personality]Func{
	bot.Aggressive:   aggressive,
	bot.Cautious:     cautious,
	bot.Momentum:     momentum,
	bot.Contrarian:   contrarian,
	bot.Degen:        degen,
	bot.Sniper:       sniper,
	bot.Whale:        whale,
	bot.Scalper:      scalper,
	bot.DiamondHands: diamondHands,
	bot.Saboteur:     saboteur,
}

// Decide dispatches to the bot's personality function, then maybe appends
// a taunt aimed at a random rival.
func Decide(b *bot.Bot, ctx *Context) []market.TradeAction {
	actions := byPersonality[b.Personality](b, ctx)
	if ctx.Rng.Float64() < tauntChance {
		actions = append(actions, taunt(b, ctx))
	}
	return actions
}

var tauntLines = []string{
	"Hey %[2]s, is that a portfolio or a dumpster fire?",
	"%[2]s trades like a goldfish with a credit card.",
	"My algorithm is so advanced, %[2]s's bot just filed for bankruptcy.",
	"While %[2]s was sleeping, I was TRADING.",
	"Imagine losing money in THIS market. Couldn't be me. *looks at %[2]s*",
	"%[2]s, your strategy is basically 'buy high sell low' right?",
	"*%[1]s flexes on %[2]s*",
	"GG EZ, %[2]s. GG EZ.",
	"I've seen better trades from a random number generator. Looking at you, %[2]s.",
	"Just checked the leaderboard. %[2]s is speed-running poverty.",
}

func taunt(b *bot.Bot, ctx *Context) market.TradeAction {
	target := b
	others := make([]*bot.Bot, 0, len(ctx.Bots))
	for _, other := range ctx.Bots {
		if other != b {
			others = append(others, other)
		}
	}
	if len(others) > 0 {
		target = others[ctx.Rng.Intn(len(others))]
	}
	b.TauntsGiven++
	line := tauntLines[ctx.Rng.Intn(len(tauntLines))]
	return market.TradeAction{
		BotName:    b.Name(),
		Action:     market.ActionTaunt,
		Commentary: fmt.Sprintf(line, b.Name(), target.Name()),
	}
}

// pick returns a random line from a commentary set.
func pick(rng *rand.Rand, lines ...string) string {
	return lines[rng.Intn(len(lines))]
}

// heldSymbols returns the bot's held symbols in sorted order, so that
// liquidation scans are deterministic under a seeded RNG.
func heldSymbols(b *bot.Bot) []string {
	syms := make([]string, 0, len(b.Holdings))
	for sym := range b.Holdings {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}

func buyAction(b *bot.Bot, a *market.Asset, qty int, commentary string) market.TradeAction {
	return market.TradeAction{
		BotName:    b.Name(),
		Action:     market.ActionBuy,
		Asset:      a.Symbol,
		Amount:     qty,
		Price:      a.Price,
		Commentary: commentary,
	}
}

func sellAction(b *bot.Bot, a *market.Asset, qty int, commentary string) market.TradeAction {
	return market.TradeAction{
		BotName:    b.Name(),
		Action:     market.ActionSell,
		Asset:      a.Symbol,
		Amount:     qty,
		Price:      a.Price,
		Commentary: commentary,
	}
}

func holdAction(b *bot.Bot, commentary string) market.TradeAction {
	return market.TradeAction{
		BotName:    b.Name(),
		Action:     market.ActionHold,
		Commentary: commentary,
	}
}
