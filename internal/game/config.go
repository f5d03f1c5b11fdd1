package game

import "botwars/internal/engine"

// Price source names accepted in configuration.
const (
	SourceCoinGecko = "coingecko"
	SourceBinance   = "binance"
	SourceStatic    = "static"
)

// Config holds configuration for a game session.
type Config struct {
	// Engine is the configuration for each game constructed by the session.
	Engine engine.Config
	// PriceSource selects the live quote backend: coingecko, binance or
	// static (offline fallback prices only).
	PriceSource string
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Engine:      engine.DefaultConfig(),
		PriceSource: SourceCoinGecko,
	}
}
