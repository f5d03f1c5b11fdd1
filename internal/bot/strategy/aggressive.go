package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// aggressive chases high-volatility assets with 40% of cash, takes profits
// at +2% and cuts losses hard at -5%.
func aggressive(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction
	for _, sym := range ctx.Symbols {
		a := ctx.Assets[sym]
		held := b.Holdings[sym]

		if a.Volatility > 0.5 && b.Cash > a.Price*2 {
			qty := int(b.Cash * 0.4 / a.Price)
			if qty > 0 && ctx.Rng.Float64() < 0.6 && b.ExecuteBuy(a, qty) {
				actions = append(actions, buyAction(b, a, qty, pick(ctx.Rng,
					fmt.Sprintf("Going HARD on %s! Blood in the water!", sym),
					fmt.Sprintf("Smells like money. Loading %s.", sym),
					fmt.Sprintf("Weakness is opportunity. Buying %s NOW.", sym),
				)))
			}
		}

		if held > 0 && a.ChangePct() > 2 {
			qty := max(1, held/2)
			if b.ExecuteSell(a, qty) {
				actions = append(actions, sellAction(b, a, qty,
					fmt.Sprintf("Taking profits on %s. The weak hold, the strong sell.", sym)))
			}
		} else if held > 0 && a.ChangePct() < -5 {
			if b.ExecuteSell(a, held) {
				actions = append(actions, sellAction(b, a, held,
					fmt.Sprintf("Cutting losses on %s. No sentiment. Only survival.", sym)))
			}
		}
	}
	return actions
}
