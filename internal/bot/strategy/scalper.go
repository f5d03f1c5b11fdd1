package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// scalper flips micro-moves: buys dips below -0.5% with 15% of cash and
// sells half of anything up more than +0.5%.
func scalper(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction
	for _, sym := range ctx.Symbols {
		a := ctx.Assets[sym]
		held := b.Holdings[sym]

		if a.ChangePct() < -0.5 && b.Cash > a.Price {
			qty := max(1, int(b.Cash*0.15/a.Price))
			if ctx.Rng.Float64() < 0.7 && b.ExecuteBuy(a, qty) {
				actions = append(actions, buyAction(b, a, qty, pick(ctx.Rng,
					fmt.Sprintf("Scalping %s. In and out, quick profit.", sym),
					fmt.Sprintf("Tiny dip on %s. Free money.", sym),
					fmt.Sprintf("Tick by tick. Buying %s.", sym),
				)))
			}
		}

		if held > 0 && a.ChangePct() > 0.5 {
			qty := max(1, held/2)
			if b.ExecuteSell(a, qty) {
				actions = append(actions, sellAction(b, a, qty, pick(ctx.Rng,
					fmt.Sprintf("Booking the tick on %s. Every cent counts.", sym),
					fmt.Sprintf("Quick flip on %s. Next.", sym),
					fmt.Sprintf("Scalped %s. Rinse and repeat.", sym),
				)))
			}
		}
	}
	return actions
}
