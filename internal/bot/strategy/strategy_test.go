package strategy

import (
	"math/rand"
	"strings"
	"testing"

	"botwars/internal/bot"
	"botwars/internal/market"
)

var testSymbols = []string{"BTC", "ETH", "SOL", "BNB", "XRP"}

func testCtx(seed int64, round int, bots ...*bot.Bot) *Context {
	templates := []market.AssetTemplate{
		{Symbol: "BTC", Name: "Bitcoin", Volatility: 0.40},
		{Symbol: "ETH", Name: "Ethereum", Volatility: 0.50},
		{Symbol: "SOL", Name: "Solana", Volatility: 0.90},
		{Symbol: "BNB", Name: "BNB Chain", Volatility: 0.15},
		{Symbol: "XRP", Name: "Ripple", Volatility: 0.60},
	}
	prices := map[string]float64{"BTC": 100, "ETH": 50, "SOL": 20, "BNB": 10, "XRP": 2}

	assets := make(map[string]*market.Asset, len(templates))
	for _, tmpl := range templates {
		assets[tmpl.Symbol] = market.NewAsset(tmpl, prices[tmpl.Symbol])
	}
	return &Context{
		Assets:  assets,
		Symbols: testSymbols,
		Round:   round,
		Bots:    bots,
		Rng:     rand.New(rand.NewSource(seed)),
	}
}

// setChange gives an asset a one-entry history producing the given move.
func setChange(a *market.Asset, pct float64) {
	a.History = []float64{a.Price / (1 + pct/100)}
}

func checkLedger(t *testing.T, b *bot.Bot) {
	t.Helper()
	if b.Cash < 0 {
		t.Fatalf("cash went negative: %v", b.Cash)
	}
	for sym, qty := range b.Holdings {
		if qty <= 0 {
			t.Fatalf("holdings[%s] = %d, want positive", sym, qty)
		}
		if _, ok := b.CostBasis[sym]; !ok {
			t.Fatalf("holdings[%s] has no cost basis entry", sym)
		}
	}
	for sym := range b.CostBasis {
		if _, ok := b.Holdings[sym]; !ok {
			t.Fatalf("cost basis[%s] has no holdings entry", sym)
		}
	}
}

func TestDecide_LedgerInvariantsUnderAllPersonalities(t *testing.T) {
	for _, p := range bot.Personalities {
		for seed := int64(0); seed < 25; seed++ {
			b := bot.New(p, 1_000)
			rival := bot.New(bot.Whale, 1_000)
			ctx := testCtx(seed, 1, b, rival)

			for round := 1; round <= 20; round++ {
				ctx.Round = round
				for _, sym := range ctx.Symbols {
					a := ctx.Assets[sym]
					a.History = append(a.History, a.Price)
					a.Price *= 1 + (ctx.Rng.Float64()-0.5)*0.2
				}
				for _, action := range Decide(b, ctx) {
					if action.Action == market.ActionBuy && action.Amount <= 0 {
						t.Fatalf("%s emitted zero-quantity buy", p)
					}
				}
				checkLedger(t, b)
			}
		}
	}
}

func TestAggressive_CutsLosers(t *testing.T) {
	b := bot.New(bot.Aggressive, 0)
	ctx := testCtx(1, 1, b)
	// Calm down the other high-vol asset so sale proceeds can't re-enter.
	ctx.Assets["XRP"].Volatility = 0.3
	sol := ctx.Assets["SOL"]
	b.Holdings["SOL"] = 10
	b.CostBasis["SOL"] = 25
	setChange(sol, -6)

	actions := aggressive(b, ctx)

	if len(actions) != 1 || actions[0].Action != market.ActionSell || actions[0].Amount != 10 {
		t.Fatalf("actions = %+v, want full exit of SOL", actions)
	}
	if len(b.Holdings) != 0 {
		t.Fatalf("holdings = %v, want empty", b.Holdings)
	}
}

func TestMomentum_RequiresThreeRisingPoints(t *testing.T) {
	b := bot.New(bot.Momentum, 1_000)
	ctx := testCtx(1, 1, b)
	btc := ctx.Assets["BTC"]

	// Two points are not enough.
	btc.History = []float64{90, 95}
	if actions := momentum(b, ctx); len(actions) != 0 {
		t.Fatalf("acted on two history points: %+v", actions)
	}

	btc.History = []float64{90, 95, 99}
	actions := momentum(b, ctx)
	if len(actions) != 1 || actions[0].Action != market.ActionBuy || actions[0].Asset != "BTC" {
		t.Fatalf("actions = %+v, want BTC buy on uptrend", actions)
	}
	// 30% of 1000 at price 100 = 3 shares.
	if actions[0].Amount != 3 {
		t.Fatalf("amount = %d, want 3", actions[0].Amount)
	}
}

func TestMomentum_ExitsDowntrend(t *testing.T) {
	b := bot.New(bot.Momentum, 0)
	ctx := testCtx(1, 1, b)
	eth := ctx.Assets["ETH"]
	eth.History = []float64{60, 55, 52}
	b.Holdings["ETH"] = 7
	b.CostBasis["ETH"] = 60

	actions := momentum(b, ctx)
	if len(actions) != 1 || actions[0].Action != market.ActionSell || actions[0].Amount != 7 {
		t.Fatalf("actions = %+v, want full ETH exit", actions)
	}
}

func TestContrarian_BuysTheDip(t *testing.T) {
	b := bot.New(bot.Contrarian, 1_000)
	ctx := testCtx(1, 1, b)
	setChange(ctx.Assets["BTC"], -4)

	actions := contrarian(b, ctx)
	if len(actions) != 1 || actions[0].Action != market.ActionBuy || actions[0].Asset != "BTC" {
		t.Fatalf("actions = %+v, want BTC dip buy", actions)
	}
	// 25% of 1000 at price 100 = 2 shares.
	if actions[0].Amount != 2 {
		t.Fatalf("amount = %d, want 2", actions[0].Amount)
	}
}

func TestSniper_OnlyActsOnEventAssets(t *testing.T) {
	b := bot.New(bot.Sniper, 1_000)
	ctx := testCtx(1, 1, b)
	ctx.Events = []market.Event{
		{Name: "SOL SUMMER", Target: "SOL", Impact: 0.12, Duration: 1},
	}

	actions := sniper(b, ctx)
	if len(actions) != 1 || actions[0].Action != market.ActionBuy || actions[0].Asset != "SOL" {
		t.Fatalf("actions = %+v, want SOL snipe", actions)
	}
}

func TestSniper_HoldsOnIdleThirdRound(t *testing.T) {
	b := bot.New(bot.Sniper, 1_000)
	ctx := testCtx(1, 3, b)

	actions := sniper(b, ctx)
	if len(actions) != 1 || actions[0].Action != market.ActionHold {
		t.Fatalf("actions = %+v, want a single HOLD", actions)
	}

	ctx.Round = 4
	if actions := sniper(b, ctx); len(actions) != 0 {
		t.Fatalf("actions = %+v, want none on round 4", actions)
	}
}

func TestWhale_TargetsMostUndervaluedAsset(t *testing.T) {
	sawBuy := false
	for seed := int64(0); seed < 30; seed++ {
		b := bot.New(bot.Whale, 1_000)
		ctx := testCtx(seed, 1, b)
		// ETH started at 100 and halved: lowest price/first ratio.
		ctx.Assets["ETH"].History = []float64{100}
		ctx.Assets["BTC"].History = []float64{100}
		ctx.Assets["SOL"].History = []float64{19}

		for _, action := range whale(b, ctx) {
			if action.Action == market.ActionBuy {
				if action.Asset != "ETH" {
					t.Fatalf("seed %d: bought %s, want ETH", seed, action.Asset)
				}
				sawBuy = true
			}
		}
	}
	if !sawBuy {
		t.Fatal("no buy observed across seeds")
	}
}

func TestScalper_FlipsHalfOnMicroGain(t *testing.T) {
	b := bot.New(bot.Scalper, 0)
	ctx := testCtx(1, 1, b)
	xrp := ctx.Assets["XRP"]
	b.Holdings["XRP"] = 9
	b.CostBasis["XRP"] = 2
	setChange(xrp, 0.8)

	actions := scalper(b, ctx)
	if len(actions) != 1 || actions[0].Action != market.ActionSell || actions[0].Amount != 4 {
		t.Fatalf("actions = %+v, want sale of 4 XRP", actions)
	}
}

func TestDiamondHands_TrimsQuarterOnDrawdown(t *testing.T) {
	b := bot.New(bot.DiamondHands, 0)
	ctx := testCtx(1, 1, b)
	sol := ctx.Assets["SOL"]
	b.Holdings["SOL"] = 8
	b.CostBasis["SOL"] = 30
	setChange(sol, -12)

	actions := diamondHands(b, ctx)
	if len(actions) != 1 || actions[0].Action != market.ActionSell || actions[0].Amount != 2 {
		t.Fatalf("actions = %+v, want sale of 2 SOL", actions)
	}
}

func TestSaboteur_MirrorsAndDumpsAgainstLeader(t *testing.T) {
	sawMirror := false
	sawDump := false
	for seed := int64(0); seed < 40; seed++ {
		b := bot.New(bot.Saboteur, 1_000)
		leader := bot.New(bot.Whale, 5_000)
		leader.Holdings["BTC"] = 10
		leader.CostBasis["BTC"] = 90
		b.Holdings["XRP"] = 50 // abandoned by the leader
		b.CostBasis["XRP"] = 2

		ctx := testCtx(seed, 1, b, leader)
		for _, action := range saboteur(b, ctx) {
			switch action.Action {
			case market.ActionBuy:
				if action.Asset != "BTC" {
					t.Fatalf("seed %d: mirrored %s, want BTC", seed, action.Asset)
				}
				if !strings.Contains(action.Commentary, leader.Name()) {
					t.Fatalf("seed %d: commentary %q does not name the leader", seed, action.Commentary)
				}
				sawMirror = true
			case market.ActionSell:
				if action.Asset != "XRP" {
					t.Fatalf("seed %d: dumped %s, want XRP", seed, action.Asset)
				}
				sawDump = true
			}
		}
	}
	if !sawMirror || !sawDump {
		t.Fatalf("mirror=%v dump=%v, want both across seeds", sawMirror, sawDump)
	}
}

func TestTaunt_IncrementsCounterAndNamesARival(t *testing.T) {
	b := bot.New(bot.Degen, 1_000)
	rival := bot.New(bot.Cautious, 1_000)
	ctx := testCtx(1, 1, b, rival)

	action := taunt(b, ctx)
	if action.Action != market.ActionTaunt {
		t.Fatalf("action = %+v, want TAUNT", action)
	}
	if b.TauntsGiven != 1 {
		t.Fatalf("taunts given = %d, want 1", b.TauntsGiven)
	}
	if !strings.Contains(action.Commentary, rival.Name()) {
		t.Fatalf("commentary %q does not name the rival", action.Commentary)
	}
}

func TestSizingTruncationSuppressesZeroQuantity(t *testing.T) {
	// 30% of 120 cash at price 100 truncates to 0 shares: no action.
	b := bot.New(bot.Momentum, 250)
	ctx := testCtx(1, 1, b)
	btc := ctx.Assets["BTC"]
	btc.History = []float64{90, 95, 99}

	if actions := momentum(b, ctx); len(actions) != 0 {
		t.Fatalf("actions = %+v, want none when sizing truncates to zero", actions)
	}
	if b.Cash != 250 {
		t.Fatalf("cash = %v, want untouched 250", b.Cash)
	}
}
