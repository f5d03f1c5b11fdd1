package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// degen goes 70% of cash into the hype asset most of the time, and randomly
// paper-hands any held position regardless of P&L.
func degen(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction

	if hype, ok := ctx.Assets[hypeAsset]; ok && b.Cash > hype.Price*3 && ctx.Rng.Float64() < 0.7 {
		qty := int(b.Cash * 0.7 / hype.Price)
		if qty > 0 && b.ExecuteBuy(hype, qty) {
			actions = append(actions, buyAction(b, hype, qty, pick(ctx.Rng,
				fmt.Sprintf("YOLO!!! %s TO THE MOON!!!", hypeAsset),
				"APE IN APE IN APE IN!!!",
				fmt.Sprintf("Sir, this is a casino. ALL IN on %s!", hypeAsset),
				fmt.Sprintf("DIAMOND HANDS BABY! BUYING MORE %s!", hypeAsset),
				fmt.Sprintf("%s ecosystem is cooking. I'm in.", hypeAsset),
			)))
		}
	}

	for _, sym := range heldSymbols(b) {
		if ctx.Rng.Float64() < 0.3 {
			a := ctx.Assets[sym]
			held := b.Holdings[sym]
			if b.ExecuteSell(a, held) {
				actions = append(actions, sellAction(b, a, held, pick(ctx.Rng,
					fmt.Sprintf("Paper handing %s for more %s money!", sym, hypeAsset),
					fmt.Sprintf("Selling %s because I got bored.", sym),
					fmt.Sprintf("Need cash for the next YOLO. Dumping %s.", sym),
				)))
			}
		}
	}
	return actions
}
