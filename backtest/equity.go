package backtest

import (
	"time"

	"github.com/rustyeddy/tsmom/signal"
)

// EquityPoint is one mark-to-market account value sample.
type EquityPoint struct {
	Time    time.Time
	Capital float64
}

// BuildEquityCurve reconstructs the per-bar account value: initial capital
// plus realized pnl of closed trades plus the unrealized pnl of the trade
// open at that bar.
//
// Trades and points are both chronological and at most one trade is active
// per bar, so a single two-pointer merge suffices; no per-bar trade search.
// On the bar a trade closes, its pnl moves from unrealized to realized after
// that bar's capital is computed, so the value is never double counted.
func BuildEquityCurve(points []signal.Point, trades []Trade, initialCapital float64) []EquityPoint {
	curve := make([]EquityPoint, 0, len(points))

	realized := 0.0
	next := 0 // index of the next trade to activate

	var active *Trade
	for _, p := range points {
		if active == nil && next < len(trades) && !trades[next].EntryTime.After(p.Time) {
			active = &trades[next]
			next++
		}

		capital := initialCapital + realized
		if active != nil {
			capital += pnl(active.Side, active.EntryPrice, p.Close)
		}
		curve = append(curve, EquityPoint{Time: p.Time, Capital: capital})

		if active != nil && active.ExitTime.Equal(p.Time) {
			realized += active.PnL
			active = nil
			// A reversal closes one trade and opens the next on the same
			// bar; the new trade starts contributing from the next bar.
			if next < len(trades) && trades[next].EntryTime.Equal(p.Time) {
				active = &trades[next]
				next++
			}
		}
	}

	return curve
}
