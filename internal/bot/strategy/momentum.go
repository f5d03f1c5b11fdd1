package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// momentum needs three consecutive strictly-moving price points: buys 30%
// of cash into an uptrend, fully exits a downtrend.
func momentum(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction
	for _, sym := range ctx.Symbols {
		a := ctx.Assets[sym]
		held := b.Holdings[sym]
		if len(a.History) < 3 {
			continue
		}

		recent := a.History[len(a.History)-3:]
		up := recent[0] < recent[1] && recent[1] < recent[2]
		down := recent[0] > recent[1] && recent[1] > recent[2]

		if up && b.Cash > a.Price*2 {
			qty := int(b.Cash * 0.3 / a.Price)
			if qty > 0 && b.ExecuteBuy(a, qty) {
				actions = append(actions, buyAction(b, a, qty, pick(ctx.Rng,
					fmt.Sprintf("%s is LAUNCHING! Hopping on the rocket!", sym),
					fmt.Sprintf("Momentum confirmed on %s. LFG!", sym),
					fmt.Sprintf("%s to the MOON! Trend is my friend!", sym),
				)))
			}
		} else if down && held > 0 {
			if b.ExecuteSell(a, held) {
				actions = append(actions, sellAction(b, a, held,
					fmt.Sprintf("Trend broken on %s. Ejecting!", sym)))
			}
		}
	}
	return actions
}
