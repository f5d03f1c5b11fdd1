package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// cautious takes small positions in low-volatility assets, trims winners a
// third at a time, and keeps a preferential bid on the safe asset.
func cautious(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction
	for _, sym := range ctx.Symbols {
		a := ctx.Assets[sym]
		held := b.Holdings[sym]

		if a.Volatility < 0.5 && b.Cash > a.Price*3 {
			qty := int(b.Cash * 0.1 / a.Price)
			if qty > 0 && ctx.Rng.Float64() < 0.5 && b.ExecuteBuy(a, qty) {
				actions = append(actions, buyAction(b, a, qty, pick(ctx.Rng,
					fmt.Sprintf("Carefully adding %s to portfolio.", sym),
					fmt.Sprintf("Diversifying into %s. Patience pays.", sym),
					fmt.Sprintf("Small position in %s. Risk managed.", sym),
				)))
			}
		}

		if held > 0 && a.ChangePct() > 3 {
			qty := max(1, held/3)
			if b.ExecuteSell(a, qty) {
				actions = append(actions, sellAction(b, a, qty,
					fmt.Sprintf("Trimming %s. Locking in gains responsibly.", sym)))
			}
		}
	}

	if safe, ok := ctx.Assets[safeAsset]; ok && b.Cash > safe.Price*5 {
		qty := int(b.Cash * 0.15 / safe.Price)
		if qty > 0 && ctx.Rng.Float64() < 0.4 && b.ExecuteBuy(safe, qty) {
			actions = append(actions, buyAction(b, safe, qty,
				fmt.Sprintf("%s is the safe play. Always.", safeAsset)))
		}
	}
	return actions
}
