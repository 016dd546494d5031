// Package signal computes the dual-horizon time-series momentum signal.
//
// For each bar the generator derives a short- and a long-horizon momentum
// (percent change over a fixed lookback), blends them into a composite score
// and classifies the score into a directional state. Bars inside the warm-up
// window carry undefined momentum and are always Flat.
package signal

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tsmom/market"
)

// State is the directional stance derived from the composite score.
type State int8

const (
	Flat  State = 0
	Long  State = +1
	Short State = -1
)

func (s State) String() string {
	switch s {
	case Long:
		return "LONG"
	case Short:
		return "SHORT"
	default:
		return "FLAT"
	}
}

// Momentum is a momentum or score value that may be undefined during the
// warm-up window. Callers must check Valid before using Value; an invalid
// Momentum has Value 0, never NaN.
type Momentum struct {
	Value float64
	Valid bool
}

func defined(v float64) Momentum { return Momentum{Value: v, Valid: true} }

// Point is the per-bar output of the generator. Close is carried from the
// input bar so downstream stages need no bar re-lookup.
type Point struct {
	Time          time.Time
	Close         float64
	MomentumShort Momentum
	MomentumLong  Momentum
	Score         Momentum
	State         State
}

// Composite score weights: short horizon 0.4, long horizon 0.6.
const (
	weightShort = 0.4
	weightLong  = 0.6
)

// Config holds the generator parameters.
type Config struct {
	PeriodShort int     `json:"period_short" yaml:"period_short"`
	PeriodLong  int     `json:"period_long" yaml:"period_long"`
	Threshold   float64 `json:"threshold" yaml:"threshold"`
}

// DefaultConfig returns the standard 5/20 dual-horizon parameters with a
// zero threshold (any strictly positive/negative score takes a stance).
func DefaultConfig() Config {
	return Config{PeriodShort: 5, PeriodLong: 20, Threshold: 0}
}

// Validate checks the generator parameters.
func (c Config) Validate() error {
	if c.PeriodShort <= 0 {
		return fmt.Errorf("period_short must be positive, got %d", c.PeriodShort)
	}
	if c.PeriodLong <= 0 {
		return fmt.Errorf("period_long must be positive, got %d", c.PeriodLong)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %g", c.Threshold)
	}
	return nil
}

// Generator computes momentum signals for a bar series. It is stateless
// between calls; Generate is deterministic and safe to reuse.
type Generator struct {
	cfg Config
}

// New validates cfg and returns a Generator.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("signal config: %w", err)
	}
	return &Generator{cfg: cfg}, nil
}

func (g *Generator) Config() Config { return g.cfg }

// Generate produces one Point per input bar, in input order.
//
// momentum(period) at index i is (close[i]-close[i-period])/close[i-period]
// when i >= period, undefined otherwise. No lookahead: only bars <= i are
// used. The composite score is defined only when both momenta are.
func (g *Generator) Generate(bars []market.Bar) []Point {
	points := make([]Point, 0, len(bars))

	for i, b := range bars {
		p := Point{Time: b.Time, Close: b.Close, State: Flat}

		if m, ok := momentumAt(bars, i, g.cfg.PeriodShort); ok {
			p.MomentumShort = defined(m)
		}
		if m, ok := momentumAt(bars, i, g.cfg.PeriodLong); ok {
			p.MomentumLong = defined(m)
		}

		if p.MomentumShort.Valid && p.MomentumLong.Valid {
			score := weightShort*p.MomentumShort.Value + weightLong*p.MomentumLong.Value
			p.Score = defined(score)
			p.State = classify(score, g.cfg.Threshold)
		}

		points = append(points, p)
	}
	return points
}

func momentumAt(bars []market.Bar, i, period int) (float64, bool) {
	if i < period {
		return 0, false
	}
	base := bars[i-period].Close
	if base == 0 {
		return 0, false
	}
	return (bars[i].Close - base) / base, true
}

// classify maps a defined score to a state. Ties at the threshold
// (including score exactly 0 with a zero threshold) stay Flat.
func classify(score, threshold float64) State {
	switch {
	case score > threshold:
		return Long
	case score < -threshold:
		return Short
	default:
		return Flat
	}
}
