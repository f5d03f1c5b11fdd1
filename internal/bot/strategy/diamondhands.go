package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// diamondHands accumulates broadly and almost never sells; only a drawdown
// past -10% shakes loose a quarter of a position. Idle even rounds get a
// flavor HOLD.
func diamondHands(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction
	for _, sym := range ctx.Symbols {
		a := ctx.Assets[sym]
		held := b.Holdings[sym]

		if b.Cash > a.Price*2 && ctx.Rng.Float64() < 0.4 {
			qty := int(b.Cash * 0.2 / a.Price)
			if qty > 0 && b.ExecuteBuy(a, qty) {
				actions = append(actions, buyAction(b, a, qty, pick(ctx.Rng,
					fmt.Sprintf("Adding %s to the vault. Never selling.", sym),
					fmt.Sprintf("Accumulating %s. Diamond hands don't waver.", sym),
					fmt.Sprintf("HODL %s. Time in market > timing the market.", sym),
				)))
			}
		}

		if held > 0 && a.ChangePct() < -10 {
			qty := max(1, held/4)
			if b.ExecuteSell(a, qty) {
				actions = append(actions, sellAction(b, a, qty,
					fmt.Sprintf("Even diamond hands crack sometimes... trimming %s.", sym)))
			}
		}
	}

	if ctx.Round%2 == 0 && len(actions) == 0 {
		actions = append(actions, holdAction(b, pick(ctx.Rng,
			"HODL. It's not just a strategy, it's a lifestyle.",
			"Still holding. Still winning.",
			"Paper hands get paper gains. I want diamonds.",
		)))
	}
	return actions
}
