package market

// TargetAll marks an event that hits every asset in the basket.
const TargetAll = "ALL"

// Event is an immutable market shock template. An active instance is a
// template plus a remaining-duration counter kept by the engine.
type Event struct {
	Name        string
	Description string
	Target      string  // asset symbol or TargetAll
	Impact      float64 // signed fractional price multiplier per tick
	Duration    int     // rounds the event stays active
}

// Mood labels by fixed thresholds on the market mood scalar.
const (
	MoodEuphoric = "EUPHORIC"
	MoodBullish  = "BULLISH"
	MoodNeutral  = "NEUTRAL"
	MoodBearish  = "BEARISH"
	MoodPanic    = "PANIC"
)

// MoodLabel maps the mood scalar (-1..1) to its categorical label.
func MoodLabel(mood float64) string {
	switch {
	case mood > 0.6:
		return MoodEuphoric
	case mood > 0.3:
		return MoodBullish
	case mood < -0.6:
		return MoodPanic
	case mood < -0.3:
		return MoodBearish
	default:
		return MoodNeutral
	}
}
