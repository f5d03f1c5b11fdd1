package strategy

import (
	"fmt"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// saboteur shadows the current net-worth leader: mirrors long positions the
// leader holds that it doesn't, dumps what the leader has abandoned, and
// occasionally just spreads FUD.
func saboteur(b *bot.Bot, ctx *Context) []market.TradeAction {
	var actions []market.TradeAction

	var leader *bot.Bot
	bestWorth := 0.0
	for _, other := range ctx.Bots {
		if other == b {
			continue
		}
		if worth := other.NetWorth(ctx.Assets); leader == nil || worth > bestWorth {
			leader = other
			bestWorth = worth
		}
	}
	if leader == nil {
		return actions
	}

	for _, sym := range ctx.Symbols {
		a := ctx.Assets[sym]
		held := b.Holdings[sym]
		leaderHas := leader.Holdings[sym]

		if leaderHas > 0 && held == 0 && b.Cash > a.Price*2 {
			qty := int(b.Cash * 0.3 / a.Price)
			if qty > 0 && ctx.Rng.Float64() < 0.4 && b.ExecuteBuy(a, qty) {
				actions = append(actions, buyAction(b, a, qty,
					fmt.Sprintf("Mirroring %s's %s position... for now.", leader.Name(), sym)))
			}
		} else if leaderHas == 0 && held > 0 && ctx.Rng.Float64() < 0.3 {
			if b.ExecuteSell(a, held) {
				actions = append(actions, sellAction(b, a, held,
					fmt.Sprintf("%s dumped %s? I'll dump harder!", leader.Name(), sym)))
			}
		}
	}

	if ctx.Rng.Float64() < 0.2 {
		actions = append(actions, market.TradeAction{
			BotName: b.Name(),
			Action:  market.ActionSabotage,
			Commentary: pick(ctx.Rng,
				fmt.Sprintf("*whispers FUD about %s's positions*", leader.Name()),
				"Spreading rumors in the dark pools...",
				"If I'm going down, I'm taking everyone with me!",
				fmt.Sprintf("Nice portfolio, %s. Would be a shame if someone... disrupted it.", leader.Name()),
			),
		})
	}
	return actions
}
