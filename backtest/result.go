package backtest

// Result bundles the outputs of one backtest run: the closed trades in entry
// order and the per-bar equity curve.
type Result struct {
	InitialCapital float64
	Trades         []Trade
	EquityCurve    []EquityPoint
}

// Closed returns the closed trades. With the end-of-data forced close every
// emitted trade is closed, but derived statistics only ever look at closed
// ones, so the filter stays explicit.
func (r Result) Closed() []Trade {
	out := make([]Trade, 0, len(r.Trades))
	for _, t := range r.Trades {
		if t.Closed() {
			out = append(out, t)
		}
	}
	return out
}

// TotalTrades is the number of closed trades.
func (r Result) TotalTrades() int { return len(r.Closed()) }

// WinningTrades is the number of closed trades with positive pnl.
func (r Result) WinningTrades() int {
	n := 0
	for _, t := range r.Closed() {
		if t.PnL > 0 {
			n++
		}
	}
	return n
}

// LosingTrades is the number of closed trades with negative pnl.
func (r Result) LosingTrades() int {
	n := 0
	for _, t := range r.Closed() {
		if t.PnL < 0 {
			n++
		}
	}
	return n
}

// WinRate is winners over closed trades, 0 when there are none.
func (r Result) WinRate() float64 {
	total := r.TotalTrades()
	if total == 0 {
		return 0
	}
	return float64(r.WinningTrades()) / float64(total)
}

// TotalPnL sums the pnl of all closed trades.
func (r Result) TotalPnL() float64 {
	sum := 0.0
	for _, t := range r.Closed() {
		sum += t.PnL
	}
	return sum
}

// AvgPnLPct is the mean percent pnl over closed trades, 0 when empty.
func (r Result) AvgPnLPct() float64 {
	closed := r.Closed()
	if len(closed) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range closed {
		sum += t.PnLPct
	}
	return sum / float64(len(closed))
}

// FinalEquity is the last equity sample, or the initial capital when the
// curve is empty.
func (r Result) FinalEquity() float64 {
	if len(r.EquityCurve) == 0 {
		return r.InitialCapital
	}
	return r.EquityCurve[len(r.EquityCurve)-1].Capital
}
