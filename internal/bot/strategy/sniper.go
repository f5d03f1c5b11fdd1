package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// sniper only acts on symbols under an active event: buys half the bankroll
// on positive shocks, exits fully on negative ones. Idle rounds divisible
// by three get a flavor HOLD.
func sniper(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction

	targeted := make(map[string]bool)
	for _, ev := range ctx.Events {
		if ev.Target != market.TargetAll {
			targeted[ev.Target] = true
		}
	}

	for _, sym := range ctx.Symbols {
		if !targeted[sym] {
			continue
		}
		a := ctx.Assets[sym]
		held := b.Holdings[sym]

		for _, ev := range ctx.Events {
			if ev.Target != sym {
				continue
			}
			if ev.Impact > 0 && b.Cash > a.Price {
				qty := int(b.Cash * 0.5 / a.Price)
				if qty > 0 && b.ExecuteBuy(a, qty) {
					actions = append(actions, buyAction(b, a, qty,
						fmt.Sprintf("Event detected: %s. Sniping %s.", ev.Name, sym)))
				}
			} else if ev.Impact < 0 && held > 0 {
				if b.ExecuteSell(a, held) {
					actions = append(actions, sellAction(b, a, held,
						fmt.Sprintf("Negative event on %s. Precision exit.", sym)))
				}
			}
		}
	}

	if len(actions) == 0 && ctx.Round%3 == 0 {
		actions = append(actions, holdAction(b, pick(ctx.Rng,
			"Waiting... Patience is a weapon.",
			"No signal. No trade. Discipline.",
			"*scans the market through the scope*",
		)))
	}
	return actions
}
