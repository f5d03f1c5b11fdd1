package bot

// Personality selects the strategy a bot runs. One bot exists per
// personality; it is the bot's stable identity key.
type Personality string

const (
	Aggressive   Personality = "aggressive"
	Cautious     Personality = "cautious"
	Momentum     Personality = "momentum"
	Contrarian   Personality = "contrarian"
	Degen        Personality = "degen"
	Sniper       Personality = "sniper"
	Whale        Personality = "whale"
	Scalper      Personality = "scalper"
	DiamondHands Personality = "diamond_hands"
	Saboteur     Personality = "saboteur"
)

// Personalities is the full roster in construction order.
var Personalities = []Personality{
	Aggressive,
	Cautious,
	Momentum,
	Contrarian,
	Degen,
	Sniper,
	Whale,
	Scalper,
	DiamondHands,
	Saboteur,
}

// Profile holds the display identity and tuning knobs of a personality.
type Profile struct {
	Name          string
	Icon          string
	Color         string // hex, shared by web UI and TUI
	Motto         string
	RiskTolerance float64
	TradeSize     float64 // fraction of cash per trade
}

var profiles = map[Personality]Profile{
	Aggressive: {
		Name:          "ALPHA WOLF",
		Icon:          "🐺",
		Color:         "#ff5555",
		Motto:         "Strike hard. Strike fast. No mercy.",
		RiskTolerance: 0.8,
		TradeSize:     0.4,
	},
	Cautious: {
		Name:          "IRON TURTLE",
		Icon:          "🐢",
		Color:         "#55ff55",
		Motto:         "Slow and steady wins the war.",
		RiskTolerance: 0.2,
		TradeSize:     0.1,
	},
	Momentum: {
		Name:          "ROCKET RIDER",
		Icon:          "🚀",
		Color:         "#55ffff",
		Motto:         "Ride the wave or drown trying.",
		RiskTolerance: 0.6,
		TradeSize:     0.3,
	},
	Contrarian: {
		Name:          "CHAOS BARON",
		Icon:          "🎭",
		Color:         "#ff55ff",
		Motto:         "When they zig, I zag.",
		RiskTolerance: 0.5,
		TradeSize:     0.25,
	},
	Degen: {
		Name:          "YOLO KING",
		Icon:          "👑",
		Color:         "#ffff55",
		Motto:         "ALL IN OR NOTHING. THIS IS THE WAY.",
		RiskTolerance: 1.0,
		TradeSize:     0.7,
	},
	Sniper: {
		Name:          "GHOST SNIPER",
		Icon:          "🎯",
		Color:         "#ffffff",
		Motto:         "One shot. One kill. One profit.",
		RiskTolerance: 0.4,
		TradeSize:     0.5,
	},
	Whale: {
		Name:          "DEEP BLUE",
		Icon:          "🐋",
		Color:         "#5588ff",
		Motto:         "I AM the market.",
		RiskTolerance: 0.55,
		TradeSize:     0.35,
	},
	Scalper: {
		Name:          "TICK TOCK",
		Icon:          "🕰",
		Color:         "#06b6d4",
		Motto:         "A penny here, a penny there. Real money.",
		RiskTolerance: 0.3,
		TradeSize:     0.15,
	},
	DiamondHands: {
		Name:          "HODL MONK",
		Icon:          "💎",
		Color:         "#8b5cf6",
		Motto:         "These hands don't fold.",
		RiskTolerance: 0.5,
		TradeSize:     0.2,
	},
	Saboteur: {
		Name:          "THE JESTER",
		Icon:          "🃏",
		Color:         "#f97316",
		Motto:         "If I can't win, nobody can.",
		RiskTolerance: 0.7,
		TradeSize:     0.3,
	},
}

// ProfileFor returns the display profile of a personality.
func ProfileFor(p Personality) Profile {
	return profiles[p]
}
