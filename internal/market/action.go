package market

// ActionKind classifies what a bot did during one sub-tick.
type ActionKind string

const (
	ActionBuy      ActionKind = "BUY"
	ActionSell     ActionKind = "SELL"
	ActionHold     ActionKind = "HOLD"
	ActionTaunt    ActionKind = "TAUNT"
	ActionSabotage ActionKind = "SABOTAGE"
)

// TradeAction records one decided-and-applied bot action. Actions live for
// a single tick; the engine overwrites the batch every tick.
type TradeAction struct {
	BotName    string
	Action     ActionKind
	Asset      string // empty for HOLD/TAUNT/SABOTAGE
	Amount     int
	Price      float64
	Commentary string
}
