package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// contrarian buys dips below -3% with a quarter of cash and dumps the whole
// position into rallies above +4%.
func contrarian(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction
	for _, sym := range ctx.Symbols {
		a := ctx.Assets[sym]
		held := b.Holdings[sym]

		if a.ChangePct() < -3 && b.Cash > a.Price*2 {
			qty := int(b.Cash * 0.25 / a.Price)
			if qty > 0 && b.ExecuteBuy(a, qty) {
				actions = append(actions, buyAction(b, a, qty, pick(ctx.Rng,
					fmt.Sprintf("Everyone's selling %s? I'm BUYING.", sym),
					fmt.Sprintf("Blood in the streets on %s. Time to feast.", sym),
					fmt.Sprintf("The herd is wrong about %s. Classic.", sym),
				)))
			}
		} else if a.ChangePct() > 4 && held > 0 {
			if b.ExecuteSell(a, held) {
				actions = append(actions, sellAction(b, a, held,
					fmt.Sprintf("Too much euphoria on %s. Selling into strength.", sym)))
			}
		}
	}
	return actions
}
