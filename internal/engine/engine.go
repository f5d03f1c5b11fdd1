// Package engine runs the per-tick state machine of one game: asset price
// advancement, event lifecycle, market mood, strategy dispatch and snapshot
// aggregation. An Engine is single-threaded; callers that share one across
// goroutines must serialize access themselves (see internal/game).
package engine

import (
	"math/rand"
	"sort"
	"time"

	"botwars/internal/bot"
	"botwars/internal/bot/strategy"
	"botwars/internal/market"
)

// Phase is the engine's lifecycle state.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseGameOver
)

// Win reasons reported in the snapshot once the game ends.
const (
	WinRoundsComplete = "rounds_complete"
	WinTargetReached  = "target_reached"
)

const (
	eventSpawnChance = 0.30
	minActiveBots    = 2
	maxActiveBots    = 4
)

// PriceSource supplies live quotes for asset symbols. Implementations must
// never fail: on any upstream problem they return cached or fallback
// values. Symbols absent from the map keep their simulated price.
type PriceSource interface {
	FetchPrices() map[string]float64
}

// Engine holds the full state of one game.
type Engine struct {
	cfg    Config
	rng    *rand.Rand
	prices PriceSource

	assets  map[string]*market.Asset
	symbols []string
	bots    []*bot.Bot

	round     int
	subTick   int
	phase     Phase
	winReason string
	mood      float64

	activeEvents []market.Event
	eventTimers  map[string]int
	newEvent     *market.Event
	tickActions  []market.TradeAction
}

// New builds a fresh game from cfg. Asset prices are seeded from src where
// a live quote exists, falling back to the template price. A nil src
// disables live refresh entirely.
func New(cfg Config, src PriceSource) *Engine {
	cfg = cfg.withDefaults()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(seed)),
		prices:      src,
		assets:      make(map[string]*market.Asset, len(cfg.Assets)),
		symbols:     make([]string, 0, len(cfg.Assets)),
		eventTimers: make(map[string]int),
	}

	live := e.fetchPrices()
	for _, tmpl := range cfg.Assets {
		price := tmpl.Price
		if p, ok := live[tmpl.Symbol]; ok {
			price = p
		}
		e.assets[tmpl.Symbol] = market.NewAsset(tmpl, price)
		e.symbols = append(e.symbols, tmpl.Symbol)
	}

	for _, p := range bot.Personalities {
		e.bots = append(e.bots, bot.New(p, cfg.StartingCash))
	}
	return e
}

// Phase returns the engine's lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Tick advances the game by exactly one sub-tick and returns the resulting
// snapshot. Once the game is over, Tick is idempotent: it returns the same
// terminal snapshot without mutating state.
func (e *Engine) Tick() Snapshot {
	if e.phase == PhaseGameOver {
		return e.Snapshot()
	}
	e.phase = PhaseRunning

	// Round boundary: advance the counter, roll events, shift the mood.
	// Mood and the active event set stay frozen for the rest of the round.
	if e.subTick == 0 {
		e.round++
		if e.round > e.cfg.TotalRounds {
			e.phase = PhaseGameOver
			if e.winReason == "" {
				e.winReason = WinRoundsComplete
			}
			return e.Snapshot()
		}
		e.newEvent = e.stepEvents()
		e.updateMood()
	} else {
		e.newEvent = nil
	}

	live := e.fetchPrices()
	for _, sym := range e.symbols {
		a := e.assets[sym]
		if p, ok := live[sym]; ok {
			a.Price = p
		}
		a.Tick(e.mood, e.activeEvents, e.rng)
	}

	e.tickActions = nil
	n := minActiveBots + e.rng.Intn(maxActiveBots-minActiveBots+1)
	if n > len(e.bots) {
		n = len(e.bots)
	}
	ctx := &strategy.Context{
		Assets:  e.assets,
		Symbols: e.symbols,
		Round:   e.round,
		Bots:    e.bots,
		Events:  e.activeEvents,
		Rng:     e.rng,
	}
	for _, idx := range e.rng.Perm(len(e.bots))[:n] {
		e.tickActions = append(e.tickActions, strategy.Decide(e.bots[idx], ctx)...)
	}

	e.subTick++
	if e.subTick >= e.cfg.TicksPerRound {
		e.subTick = 0
		e.endOfRound()
	}
	return e.Snapshot()
}

// endOfRound records net worth history and checks the win conditions. The
// target check runs first so it wins a same-round tie with round
// completion.
func (e *Engine) endOfRound() {
	for _, b := range e.bots {
		b.NetWorthHistory = append(b.NetWorthHistory, b.NetWorth(e.assets))
	}

	for _, b := range e.rankedBots() {
		if b.NetWorth(e.assets) >= e.cfg.WinTarget {
			e.phase = PhaseGameOver
			e.winReason = WinTargetReached
			break
		}
	}

	if e.round >= e.cfg.TotalRounds {
		e.phase = PhaseGameOver
		if e.winReason == "" {
			e.winReason = WinRoundsComplete
		}
	}
}

// stepEvents runs one event lifecycle pass: tick down active timers, expire
// the ones that hit zero, then maybe spawn one new event. A template whose
// name already has a live timer is skipped without retry, so at most one
// instance per name is ever active.
func (e *Engine) stepEvents() *market.Event {
	for name := range e.eventTimers {
		e.eventTimers[name]--
	}
	for name, timer := range e.eventTimers {
		if timer <= 0 {
			delete(e.eventTimers, name)
			kept := e.activeEvents[:0]
			for _, ev := range e.activeEvents {
				if ev.Name != name {
					kept = append(kept, ev)
				}
			}
			e.activeEvents = kept
		}
	}

	if e.rng.Float64() < eventSpawnChance {
		tmpl := e.cfg.Events[e.rng.Intn(len(e.cfg.Events))]
		if _, active := e.eventTimers[tmpl.Name]; !active {
			e.activeEvents = append(e.activeEvents, tmpl)
			e.eventTimers[tmpl.Name] = tmpl.Duration
			return &tmpl
		}
	}
	return nil
}

func (e *Engine) updateMood() {
	e.mood = nextMood(e.mood, e.rng.NormFloat64()*0.15)
}

// nextMood applies one mood step: shift by the shock, clamp to [-1, 1],
// then decay toward neutral.
func nextMood(mood, shock float64) float64 {
	mood += shock
	if mood > 1 {
		mood = 1
	} else if mood < -1 {
		mood = -1
	}
	return mood * 0.9
}

func (e *Engine) fetchPrices() map[string]float64 {
	if e.prices == nil {
		return nil
	}
	return e.prices.FetchPrices()
}

// rankedBots returns the roster sorted by net worth, highest first. Equal
// worths keep roster order.
func (e *Engine) rankedBots() []*bot.Bot {
	ranked := make([]*bot.Bot, len(e.bots))
	copy(ranked, e.bots)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetWorth(e.assets) > ranked[j].NetWorth(e.assets)
	})
	return ranked
}
