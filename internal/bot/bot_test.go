package bot

import (
	"math"
	"testing"

	"botwars/internal/market"
)

func testAsset(sym string, price float64) *market.Asset {
	return market.NewAsset(market.AssetTemplate{Symbol: sym, Name: sym}, price)
}

func mustBuy(t *testing.T, b *Bot, a *market.Asset, qty int) {
	t.Helper()
	if !b.ExecuteBuy(a, qty) {
		t.Fatalf("ExecuteBuy(%s, %d) failed with cash %v", a.Symbol, qty, b.Cash)
	}
}

func mustSell(t *testing.T, b *Bot, a *market.Asset, qty int) {
	t.Helper()
	if !b.ExecuteSell(a, qty) {
		t.Fatalf("ExecuteSell(%s, %d) failed with holdings %v", a.Symbol, qty, b.Holdings)
	}
}

func TestExecuteBuy_RejectsBadOrders(t *testing.T) {
	b := New(Aggressive, 100)
	a := testAsset("BTC", 60)

	if b.ExecuteBuy(a, 0) {
		t.Fatal("bought zero quantity")
	}
	if b.ExecuteBuy(a, -3) {
		t.Fatal("bought negative quantity")
	}
	if b.ExecuteBuy(a, 2) {
		t.Fatal("bought beyond cash")
	}
	if b.Cash != 100 || len(b.Holdings) != 0 || b.TradesMade != 0 {
		t.Fatalf("failed buys mutated the ledger: %+v", b)
	}
}

func TestExecuteBuy_WeightedAverageCostBasis(t *testing.T) {
	b := New(Aggressive, 1000)
	a := testAsset("BTC", 100)

	mustBuy(t, b, a, 4) // 4 @ 100
	a.Price = 50
	mustBuy(t, b, a, 4) // 4 @ 50 -> basis (400+200)/8 = 75

	if got := b.CostBasis["BTC"]; math.Abs(got-75) > 1e-9 {
		t.Fatalf("cost basis = %v, want 75", got)
	}
	if b.Holdings["BTC"] != 8 {
		t.Fatalf("holdings = %d, want 8", b.Holdings["BTC"])
	}
}

func TestExecuteSell_ClampsToHeld(t *testing.T) {
	b := New(Whale, 1000)
	a := testAsset("SOL", 100)
	mustBuy(t, b, a, 3)

	mustSell(t, b, a, 10) // clamps to 3

	if len(b.Holdings) != 0 {
		t.Fatalf("holdings = %v, want empty", b.Holdings)
	}
	if b.Cash != 1000 {
		t.Fatalf("cash = %v, want 1000", b.Cash)
	}
	if b.ExecuteSell(a, 1) {
		t.Fatal("sold with nothing held")
	}
}

func TestExecuteSell_RemovesBasisWithPosition(t *testing.T) {
	b := New(Cautious, 1000)
	a := testAsset("ETH", 100)
	mustBuy(t, b, a, 5)
	mustSell(t, b, a, 2)

	if _, ok := b.CostBasis["ETH"]; !ok {
		t.Fatal("basis entry missing while position open")
	}
	mustSell(t, b, a, 3)
	if _, ok := b.Holdings["ETH"]; ok {
		t.Fatal("holdings entry left at zero quantity")
	}
	if _, ok := b.CostBasis["ETH"]; ok {
		t.Fatal("basis entry left after position closed")
	}
}

func TestBuySellRoundTripRestoresCash(t *testing.T) {
	b := New(Scalper, 750)
	a := testAsset("XRP", 2.5)
	before := b.Cash

	mustBuy(t, b, a, 100)
	mustSell(t, b, a, 100)

	if math.Abs(b.Cash-before) > 1e-9 {
		t.Fatalf("cash = %v, want %v after round trip", b.Cash, before)
	}
	if b.TradesMade != 2 {
		t.Fatalf("trades = %d, want 2", b.TradesMade)
	}
}

func TestNetWorthConservedAtConstantPrice(t *testing.T) {
	b := New(Momentum, 1000)
	a := testAsset("BTC", 120)
	assets := map[string]*market.Asset{"BTC": a}
	before := b.NetWorth(assets)

	mustBuy(t, b, a, 5)
	if math.Abs(b.NetWorth(assets)-before) > 1e-9 {
		t.Fatalf("net worth %v changed by buy at constant price", b.NetWorth(assets))
	}
	mustSell(t, b, a, 5)
	if math.Abs(b.NetWorth(assets)-before) > 1e-9 {
		t.Fatalf("net worth %v changed by round trip at constant price", b.NetWorth(assets))
	}
}

func TestRealizedPnLScenario(t *testing.T) {
	// Starting cash 1000, price 100: buy 5 (cash 500, basis 100), price
	// moves to 120, sell 5: revenue 600, cash 1100, realized pnl 100.
	b := New(Degen, 1000)
	a := testAsset("SOL", 100)

	mustBuy(t, b, a, 5)
	if b.Cash != 500 {
		t.Fatalf("cash after buy = %v, want 500", b.Cash)
	}
	if got := b.CostBasis["SOL"]; got != 100 {
		t.Fatalf("basis = %v, want 100", got)
	}

	a.Price = 120
	mustSell(t, b, a, 5)
	if b.Cash != 1100 {
		t.Fatalf("cash after sell = %v, want 1100", b.Cash)
	}
	if b.BestTradePnL < 100 {
		t.Fatalf("best trade pnl = %v, want >= 100", b.BestTradePnL)
	}
}

func TestWorstTradePnLStartsAtZero(t *testing.T) {
	// A bot with only winning trades reports worst trade 0. Documented
	// quirk: "no losing trade yet" is indistinguishable from break-even.
	b := New(Sniper, 1000)
	a := testAsset("BNB", 100)

	mustBuy(t, b, a, 5)
	a.Price = 150
	mustSell(t, b, a, 5)

	if b.WorstTradePnL != 0 {
		t.Fatalf("worst trade pnl = %v, want 0 with no losing trades", b.WorstTradePnL)
	}

	mustBuy(t, b, a, 2)
	a.Price = 100
	mustSell(t, b, a, 2)
	if b.WorstTradePnL != -100 {
		t.Fatalf("worst trade pnl = %v, want -100", b.WorstTradePnL)
	}
}

func TestProfilesCoverAllPersonalities(t *testing.T) {
	for _, p := range Personalities {
		prof := ProfileFor(p)
		if prof.Name == "" || prof.Icon == "" || prof.Color == "" || prof.Motto == "" {
			t.Errorf("personality %q has incomplete profile %+v", p, prof)
		}
	}
}
