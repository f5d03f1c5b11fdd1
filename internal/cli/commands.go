// Package cli wires the botwars binary: `serve` runs the web API, `play`
// runs the terminal game. Configuration comes from flags with env-var
// defaults (a .env file is honored when present).
package cli

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"botwars/internal/game"
	"botwars/internal/server"
	"botwars/tui"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "botwars",
		Short: "Bot Wars - trading bots battle over a simulated market",
		Long: `Bot Wars pits a roster of scripted trading bots against each other on a
small crypto basket. Prices are seeded from live quotes, random market
events shake the board, and the first bot to the win target takes it all.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Missing .env is fine; env vars may come from the shell.
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPlayCmd())

	rootCmd.PersistentFlags().Int("rounds", 0, "total rounds (default 100, env BOTWARS_ROUNDS)")
	rootCmd.PersistentFlags().Int("ticks", 0, "sub-ticks per round (default 15, env BOTWARS_TICKS)")
	rootCmd.PersistentFlags().Float64("cash", 0, "starting cash per bot (default 1000, env BOTWARS_CASH)")
	rootCmd.PersistentFlags().Float64("target", 0, "net worth win target (default 10000, env BOTWARS_TARGET)")
	rootCmd.PersistentFlags().Int64("seed", 0, "RNG seed, 0 seeds from the clock (env BOTWARS_SEED)")
	rootCmd.PersistentFlags().String("prices", "", "price source: coingecko, binance or static (env PRICE_SOURCE)")

	return rootCmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and WebSocket stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = getEnv("LISTEN_ADDR", ":8080")
			}
			session := game.NewSession(sessionConfig(cmd))
			return server.New(addr, session).ListenAndServe()
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080, env LISTEN_ADDR)")
	return cmd
}

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := game.NewSession(sessionConfig(cmd))
			p := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

// sessionConfig merges defaults, env vars and flags (flags win).
func sessionConfig(cmd *cobra.Command) game.Config {
	cfg := game.DefaultConfig()

	cfg.Engine.TotalRounds = intSetting(cmd, "rounds", "BOTWARS_ROUNDS", cfg.Engine.TotalRounds)
	cfg.Engine.TicksPerRound = intSetting(cmd, "ticks", "BOTWARS_TICKS", cfg.Engine.TicksPerRound)
	cfg.Engine.StartingCash = floatSetting(cmd, "cash", "BOTWARS_CASH", cfg.Engine.StartingCash)
	cfg.Engine.WinTarget = floatSetting(cmd, "target", "BOTWARS_TARGET", cfg.Engine.WinTarget)
	if v, _ := cmd.Flags().GetInt64("seed"); v != 0 {
		cfg.Engine.Seed = v
	} else if raw := os.Getenv("BOTWARS_SEED"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Engine.Seed = v
		}
	}

	if v, _ := cmd.Flags().GetString("prices"); v != "" {
		cfg.PriceSource = v
	} else if v := os.Getenv("PRICE_SOURCE"); v != "" {
		cfg.PriceSource = v
	}
	return cfg
}

func intSetting(cmd *cobra.Command, flag, env string, def int) int {
	if v, _ := cmd.Flags().GetInt(flag); v != 0 {
		return v
	}
	if raw := os.Getenv(env); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}

func floatSetting(cmd *cobra.Command, flag, env string, def float64) float64 {
	if v, _ := cmd.Flags().GetFloat64(flag); v != 0 {
		return v
	}
	if raw := os.Getenv(env); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
