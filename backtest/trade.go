package backtest

import (
	"time"

	"github.com/rustyeddy/tsmom/internal/id"
	"github.com/rustyeddy/tsmom/signal"
)

// Close reasons. ReasonEndOfData marks the mark-to-market close forced at
// the last bar; it is not a signal-driven exit.
const (
	ReasonSignal    = "SignalChange"
	ReasonEndOfData = "EndOfData"
)

// Trade is one round trip through a position. It is created open by the
// engine and closed exactly once; the pnl fields are filled on close and
// never change afterwards.
type Trade struct {
	ID         string
	Side       signal.State
	EntryTime  time.Time
	EntryPrice float64
	ExitTime   time.Time
	ExitPrice  float64
	PnL        float64
	PnLPct     float64
	BarsHeld   int
	Reason     string

	closed bool
}

func newTrade(entryTime time.Time, entryPrice float64, side signal.State) *Trade {
	return &Trade{
		ID:         id.New(),
		Side:       side,
		EntryTime:  entryTime,
		EntryPrice: entryPrice,
	}
}

// close fills the exit fields and computes pnl. Long profits when the price
// rises, short when it falls; pnl_pct is pnl over the entry price.
func (t *Trade) close(exitTime time.Time, exitPrice float64, reason string) {
	t.ExitTime = exitTime
	t.ExitPrice = exitPrice
	t.Reason = reason
	t.PnL = pnl(t.Side, t.EntryPrice, exitPrice)
	t.PnLPct = t.PnL / t.EntryPrice
	t.BarsHeld = daysBetween(t.EntryTime, exitTime)
	t.closed = true
}

// Closed reports whether the trade has been closed.
func (t Trade) Closed() bool { return t.closed }

// Forced reports whether the close was the end-of-data mark-to-market close
// rather than a signal-driven exit.
func (t Trade) Forced() bool { return t.Reason == ReasonEndOfData }

// pnl marks a position against price: exit-entry for long, entry-exit for
// short. The same function prices both realized exits and the unrealized
// value of an open trade at the live close.
func pnl(side signal.State, entry, mark float64) float64 {
	switch side {
	case signal.Long:
		return mark - entry
	case signal.Short:
		return entry - mark
	default:
		return 0
	}
}

// daysBetween counts whole calendar days from a to b. Holding time is
// measured in elapsed days, not bar count, whatever the bar frequency.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
