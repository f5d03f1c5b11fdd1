package engine

import (
	"math"

	"botwars/internal/bot"
	"botwars/internal/market"
)

// Snapshot is the full queryable game state produced by Tick. It is
// transport-agnostic: the HTTP API and the TUI both consume it as-is.
type Snapshot struct {
	Round           int                   `json:"round"`
	SubTick         int                   `json:"sub_tick"`
	TotalRounds     int                   `json:"total_rounds"`
	GameOver        bool                  `json:"game_over"`
	WinReason       string                `json:"win_reason,omitempty"`
	MarketMood      float64               `json:"market_mood"`
	MarketMoodLabel string                `json:"market_mood_label"`
	Assets          map[string]AssetState `json:"assets"`
	Symbols         []string              `json:"symbols"`
	Bots            []BotState            `json:"bots"`
	ActiveEvents    []EventState          `json:"active_events"`
	NewEvent        *EventState           `json:"new_event,omitempty"`
	Actions         []ActionState         `json:"round_actions"`
	Awards          *Awards               `json:"awards,omitempty"`
}

// AssetState is one asset's view in the snapshot. History includes the
// current price as its final entry.
type AssetState struct {
	Symbol     string    `json:"symbol"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	ChangePct  float64   `json:"change_pct"`
	Volatility float64   `json:"volatility"`
	History    []float64 `json:"history"`
}

// BotState is one bot's view in the snapshot. Bots appear ranked by net
// worth, highest first.
type BotState struct {
	Name            string         `json:"name"`
	Icon            string         `json:"icon"`
	Color           string         `json:"color"`
	Personality     string         `json:"personality"`
	Motto           string         `json:"motto"`
	Cash            float64        `json:"cash"`
	NetWorth        float64        `json:"net_worth"`
	PnL             float64        `json:"pnl"`
	Holdings        map[string]int `json:"holdings"`
	TradesMade      int            `json:"trades_made"`
	TauntsGiven     int            `json:"taunts_given"`
	BestTradePnL    float64        `json:"best_trade_pnl"`
	WorstTradePnL   float64        `json:"worst_trade_pnl"`
	NetWorthHistory []float64      `json:"net_worth_history"`
}

// EventState is an event in the snapshot; Remaining is 0 for the
// newly-spawned event entry.
type EventState struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Target      string  `json:"target_asset"`
	Impact      float64 `json:"price_impact"`
	Remaining   int     `json:"remaining,omitempty"`
}

// ActionState is one bot action with its actor's display identity.
type ActionState struct {
	BotName    string  `json:"bot_name"`
	BotIcon    string  `json:"bot_icon"`
	BotColor   string  `json:"bot_color"`
	Action     string  `json:"action"`
	Asset      string  `json:"asset"`
	Amount     int     `json:"amount"`
	Price      float64 `json:"price"`
	Commentary string  `json:"commentary"`
}

// AwardEntry names one bot in the end-of-game awards block.
type AwardEntry struct {
	Name     string  `json:"name"`
	Icon     string  `json:"icon"`
	Color    string  `json:"color,omitempty"`
	NetWorth float64 `json:"net_worth,omitempty"`
	PnL      float64 `json:"pnl,omitempty"`
	Trades   int     `json:"trades,omitempty"`
	Taunts   int     `json:"taunts,omitempty"`
}

// Awards is the game-over summary block.
type Awards struct {
	Champion     AwardEntry `json:"champion"`
	MostActive   AwardEntry `json:"most_active"`
	TrashTalker  AwardEntry `json:"trash_talker"`
	BestTrade    AwardEntry `json:"best_trade"`
	WorstTrade   AwardEntry `json:"worst_trade"`
	BiggestLoser AwardEntry `json:"biggest_loser"`
}

// Snapshot aggregates the current state without mutating it.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Round:           e.round,
		SubTick:         e.subTick,
		TotalRounds:     e.cfg.TotalRounds,
		GameOver:        e.phase == PhaseGameOver,
		WinReason:       e.winReason,
		MarketMood:      round3(e.mood),
		MarketMoodLabel: e.moodLabel(),
		Assets:          make(map[string]AssetState, len(e.assets)),
		Symbols:         e.symbols,
		Actions:         e.actionStates(),
		ActiveEvents:    e.eventStates(),
	}

	for _, sym := range e.symbols {
		a := e.assets[sym]
		history := make([]float64, 0, len(a.History)+1)
		for _, p := range a.History {
			history = append(history, round2(p))
		}
		history = append(history, round2(a.Price))
		s.Assets[sym] = AssetState{
			Symbol:     a.Symbol,
			Name:       a.Name,
			Price:      round2(a.Price),
			ChangePct:  round2(a.ChangePct()),
			Volatility: a.Volatility,
			History:    history,
		}
	}

	for _, b := range e.rankedBots() {
		s.Bots = append(s.Bots, e.botState(b))
	}

	if e.newEvent != nil {
		ev := *e.newEvent
		s.NewEvent = &EventState{
			Name:        ev.Name,
			Description: ev.Description,
			Target:      ev.Target,
			Impact:      ev.Impact,
		}
	}

	if s.GameOver {
		s.Awards = e.awards()
	}
	return s
}

func (e *Engine) botState(b *bot.Bot) BotState {
	p := b.Profile()
	nw := b.NetWorth(e.assets)

	holdings := make(map[string]int, len(b.Holdings))
	for sym, qty := range b.Holdings {
		holdings[sym] = qty
	}
	history := make([]float64, 0, len(b.NetWorthHistory))
	for _, v := range b.NetWorthHistory {
		history = append(history, round2(v))
	}

	return BotState{
		Name:            p.Name,
		Icon:            p.Icon,
		Color:           p.Color,
		Personality:     string(b.Personality),
		Motto:           p.Motto,
		Cash:            round2(b.Cash),
		NetWorth:        round2(nw),
		PnL:             round2(nw - e.cfg.StartingCash),
		Holdings:        holdings,
		TradesMade:      b.TradesMade,
		TauntsGiven:     b.TauntsGiven,
		BestTradePnL:    round2(b.BestTradePnL),
		WorstTradePnL:   round2(b.WorstTradePnL),
		NetWorthHistory: history,
	}
}

func (e *Engine) eventStates() []EventState {
	states := make([]EventState, 0, len(e.activeEvents))
	for _, ev := range e.activeEvents {
		states = append(states, EventState{
			Name:        ev.Name,
			Description: ev.Description,
			Target:      ev.Target,
			Impact:      ev.Impact,
			Remaining:   e.eventTimers[ev.Name],
		})
	}
	return states
}

func (e *Engine) actionStates() []ActionState {
	states := make([]ActionState, 0, len(e.tickActions))
	for _, a := range e.tickActions {
		icon, color := "", "#ffffff"
		for _, b := range e.bots {
			if b.Name() == a.BotName {
				icon, color = b.Profile().Icon, b.Profile().Color
				break
			}
		}
		states = append(states, ActionState{
			BotName:    a.BotName,
			BotIcon:    icon,
			BotColor:   color,
			Action:     string(a.Action),
			Asset:      a.Asset,
			Amount:     a.Amount,
			Price:      round2(a.Price),
			Commentary: a.Commentary,
		})
	}
	return states
}

func (e *Engine) awards() *Awards {
	ranked := e.rankedBots()
	champion := ranked[0]
	loser := ranked[len(ranked)-1]

	mostActive, trashTalker, bestTrade, worstTrade := e.bots[0], e.bots[0], e.bots[0], e.bots[0]
	for _, b := range e.bots[1:] {
		if b.TradesMade > mostActive.TradesMade {
			mostActive = b
		}
		if b.TauntsGiven > trashTalker.TauntsGiven {
			trashTalker = b
		}
		if b.BestTradePnL > bestTrade.BestTradePnL {
			bestTrade = b
		}
		if b.WorstTradePnL < worstTrade.WorstTradePnL {
			worstTrade = b
		}
	}

	entry := func(b *bot.Bot) AwardEntry {
		p := b.Profile()
		return AwardEntry{Name: p.Name, Icon: p.Icon}
	}

	a := &Awards{
		Champion:     entry(champion),
		MostActive:   entry(mostActive),
		TrashTalker:  entry(trashTalker),
		BestTrade:    entry(bestTrade),
		WorstTrade:   entry(worstTrade),
		BiggestLoser: entry(loser),
	}
	a.Champion.Color = champion.Profile().Color
	a.Champion.NetWorth = round2(champion.NetWorth(e.assets))
	a.Champion.PnL = round2(champion.NetWorth(e.assets) - e.cfg.StartingCash)
	a.MostActive.Trades = mostActive.TradesMade
	a.TrashTalker.Taunts = trashTalker.TauntsGiven
	a.BestTrade.PnL = round2(bestTrade.BestTradePnL)
	a.WorstTrade.PnL = round2(worstTrade.WorstTradePnL)
	a.BiggestLoser.Color = loser.Profile().Color
	a.BiggestLoser.PnL = round2(loser.NetWorth(e.assets) - e.cfg.StartingCash)
	return a
}

func (e *Engine) moodLabel() string { return market.MoodLabel(e.mood) }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
