// Package backtest simulates single-position trade execution against a
// momentum signal series and derives equity and performance statistics.
package backtest

import (
	"fmt"

	"github.com/rustyeddy/tsmom/signal"
)

// Config holds the execution parameters.
type Config struct {
	InitialCapital float64 `json:"initial_capital" yaml:"initial_capital"`
}

// DefaultConfig returns the standard starting capital.
func DefaultConfig() Config {
	return Config{InitialCapital: 10_000}
}

// Validate checks the execution parameters.
func (c Config) Validate() error {
	if c.InitialCapital <= 0 {
		return fmt.Errorf("initial_capital must be positive, got %g", c.InitialCapital)
	}
	return nil
}

// Engine replays a signal series through the single-position state machine.
//
// Rules, applied at each point in order:
//   - same state as before: hold (or stay flat)
//   - state changed: close the open trade at this bar if one exists,
//     then open a new trade at this bar unless the new state is Flat
//
// Any trade still open after the last point is force-closed at the last
// bar's price with ReasonEndOfData. At most one trade is ever open.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns an Engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("backtest config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

func (e *Engine) Config() Config { return e.cfg }

// Run executes the backtest. Empty input yields an empty result, not an
// error. The replay is deterministic: identical input, identical output.
func (e *Engine) Run(points []signal.Point) Result {
	trades := replay(points)

	return Result{
		InitialCapital: e.cfg.InitialCapital,
		Trades:         trades,
		EquityCurve:    BuildEquityCurve(points, trades, e.cfg.InitialCapital),
	}
}

// replay is the single forward pass producing closed trades in entry order.
func replay(points []signal.Point) []Trade {
	var (
		trades  []Trade
		open    *Trade
		current = signal.Flat
	)

	for _, p := range points {
		if p.State == current {
			continue
		}

		if open != nil {
			open.close(p.Time, p.Close, ReasonSignal)
			trades = append(trades, *open)
			open = nil
		}
		if p.State != signal.Flat {
			open = newTrade(p.Time, p.Close, p.State)
		}
		current = p.State
	}

	// Mark-to-market close at data end; not a real filled exit.
	if open != nil {
		last := points[len(points)-1]
		open.close(last.Time, last.Close, ReasonEndOfData)
		trades = append(trades, *open)
	}

	return trades
}
