package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// whale accumulates whichever asset has fallen furthest relative to its
// first recorded price, and redistributes winners in size.
func whale(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction

	var cheapest *market.Asset
	bestRatio := 0.0
	for _, sym := range ctx.Symbols {
		a := ctx.Assets[sym]
		first := a.Price
		if len(a.History) > 0 {
			first = a.History[0]
		}
		ratio := a.Price / first
		if cheapest == nil || ratio < bestRatio {
			cheapest = a
			bestRatio = ratio
		}
	}

	if cheapest != nil && b.Cash > cheapest.Price*5 {
		qty := int(b.Cash * 0.35 / cheapest.Price)
		if qty > 0 && ctx.Rng.Float64() < 0.5 && b.ExecuteBuy(cheapest, qty) {
			actions = append(actions, buyAction(b, cheapest, qty, pick(ctx.Rng,
				fmt.Sprintf("Accumulating %s. They don't see me coming.", cheapest.Symbol),
				fmt.Sprintf("Adding to my %s position. I own this market.", cheapest.Symbol),
				fmt.Sprintf("*splashes into %s* The ocean is mine.", cheapest.Symbol),
			)))
		}
	}

	for _, sym := range heldSymbols(b) {
		a := ctx.Assets[sym]
		held := b.Holdings[sym]
		if a.ChangePct() > 3 && held > 5 {
			qty := held / 2
			if b.ExecuteSell(a, qty) {
				actions = append(actions, sellAction(b, a, qty,
					fmt.Sprintf("Redistributing %s. The market bends to my will.", sym)))
			}
		}
	}
	return actions
}
