package backtest

import "github.com/rustyeddy/tsmom/signal"

// Summary holds the headline statistics of a run, computed over closed
// trades only. Every field is zero when there are no closed trades.
type Summary struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64

	TotalPnL    float64
	AvgPnL      float64
	AvgPnLPct   float64
	LargestWin  float64
	LargestLoss float64

	AvgBarsHeld float64
	MinBarsHeld int
	MaxBarsHeld int
}

// Summarize reduces a result to its Summary. Stateless; the result is not
// modified.
func Summarize(r Result) Summary {
	closed := r.Closed()
	if len(closed) == 0 {
		return Summary{}
	}

	s := Summary{
		TotalTrades:   len(closed),
		WinningTrades: r.WinningTrades(),
		LosingTrades:  r.LosingTrades(),
		WinRate:       r.WinRate(),
		TotalPnL:      r.TotalPnL(),
		AvgPnLPct:     r.AvgPnLPct(),
		LargestWin:    closed[0].PnL,
		LargestLoss:   closed[0].PnL,
		MinBarsHeld:   closed[0].BarsHeld,
		MaxBarsHeld:   closed[0].BarsHeld,
	}

	sumPnL := 0.0
	sumHeld := 0
	for _, t := range closed {
		sumPnL += t.PnL
		sumHeld += t.BarsHeld

		if t.PnL > s.LargestWin {
			s.LargestWin = t.PnL
		}
		if t.PnL < s.LargestLoss {
			s.LargestLoss = t.PnL
		}
		if t.BarsHeld > s.MaxBarsHeld {
			s.MaxBarsHeld = t.BarsHeld
		}
		if t.BarsHeld < s.MinBarsHeld {
			s.MinBarsHeld = t.BarsHeld
		}
	}
	s.AvgPnL = sumPnL / float64(len(closed))
	s.AvgBarsHeld = float64(sumHeld) / float64(len(closed))

	return s
}

// Breakdown restricts the headline metrics to each trade direction.
type Breakdown struct {
	LongTrades  int
	ShortTrades int

	LongWinRate  float64
	ShortWinRate float64

	LongAvgPnLPct  float64
	ShortAvgPnLPct float64
}

// BreakdownBySide splits closed-trade statistics by entry direction. All
// fields are zero for a direction with no trades.
func BreakdownBySide(r Result) Breakdown {
	var b Breakdown
	var longWins, shortWins int
	var longPct, shortPct float64

	for _, t := range r.Closed() {
		switch t.Side {
		case signal.Long:
			b.LongTrades++
			longPct += t.PnLPct
			if t.PnL > 0 {
				longWins++
			}
		case signal.Short:
			b.ShortTrades++
			shortPct += t.PnLPct
			if t.PnL > 0 {
				shortWins++
			}
		}
	}

	if b.LongTrades > 0 {
		b.LongWinRate = float64(longWins) / float64(b.LongTrades)
		b.LongAvgPnLPct = longPct / float64(b.LongTrades)
	}
	if b.ShortTrades > 0 {
		b.ShortWinRate = float64(shortWins) / float64(b.ShortTrades)
		b.ShortAvgPnLPct = shortPct / float64(b.ShortTrades)
	}
	return b
}

// PnLDistribution returns the percent pnl of every closed trade in
// chronological order, expressed in percent (0.5 == 0.5%).
func PnLDistribution(r Result) []float64 {
	closed := r.Closed()
	out := make([]float64, 0, len(closed))
	for _, t := range closed {
		out = append(out, t.PnLPct*100)
	}
	return out
}
