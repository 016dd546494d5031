package backtest

import (
	"strings"
	"testing"

	"github.com/rustyeddy/tsmom/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedTrade(side signal.State, entry, exit float64, daysHeld int) Trade {
	t := Trade{
		Side:       side,
		EntryTime:  day0,
		EntryPrice: entry,
	}
	t.close(day0.AddDate(0, 0, daysHeld), exit, ReasonSignal)
	return t
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(Result{InitialCapital: 10_000})
	assert.Equal(t, Summary{}, s)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	r := Result{
		InitialCapital: 10_000,
		Trades: []Trade{
			closedTrade(signal.Long, 100, 110, 5),  // +10
			closedTrade(signal.Short, 200, 210, 2), // -10
			closedTrade(signal.Long, 100, 104, 8),  // +4
		},
	}

	s := Summarize(r)

	assert.Equal(t, 3, s.TotalTrades)
	assert.Equal(t, 2, s.WinningTrades)
	assert.Equal(t, 1, s.LosingTrades)
	assert.InDelta(t, 2.0/3.0, s.WinRate, 1e-12)

	assert.InDelta(t, 4.0, s.TotalPnL, 1e-12)
	assert.InDelta(t, 4.0/3.0, s.AvgPnL, 1e-12)
	assert.InDelta(t, (0.10-0.05+0.04)/3, s.AvgPnLPct, 1e-12)
	assert.InDelta(t, 10.0, s.LargestWin, 1e-12)
	assert.InDelta(t, -10.0, s.LargestLoss, 1e-12)

	assert.InDelta(t, 5.0, s.AvgBarsHeld, 1e-12)
	assert.Equal(t, 2, s.MinBarsHeld)
	assert.Equal(t, 8, s.MaxBarsHeld)
}

func TestBreakdownBySide(t *testing.T) {
	t.Parallel()

	r := Result{
		Trades: []Trade{
			closedTrade(signal.Long, 100, 110, 5),  // long win, +10%
			closedTrade(signal.Long, 100, 95, 3),   // long loss, -5%
			closedTrade(signal.Short, 200, 190, 2), // short win, +5%
		},
	}

	b := BreakdownBySide(r)

	assert.Equal(t, 2, b.LongTrades)
	assert.Equal(t, 1, b.ShortTrades)
	assert.InDelta(t, 0.5, b.LongWinRate, 1e-12)
	assert.InDelta(t, 1.0, b.ShortWinRate, 1e-12)
	assert.InDelta(t, (0.10-0.05)/2, b.LongAvgPnLPct, 1e-12)
	assert.InDelta(t, 0.05, b.ShortAvgPnLPct, 1e-12)
}

func TestBreakdownEmptySides(t *testing.T) {
	t.Parallel()

	b := BreakdownBySide(Result{})
	assert.Equal(t, Breakdown{}, b)

	// One-sided results leave the other side zero, not NaN.
	b = BreakdownBySide(Result{Trades: []Trade{closedTrade(signal.Long, 100, 110, 1)}})
	assert.Equal(t, 1, b.LongTrades)
	assert.Zero(t, b.ShortTrades)
	assert.Zero(t, b.ShortWinRate)
	assert.Zero(t, b.ShortAvgPnLPct)
}

func TestPnLDistribution(t *testing.T) {
	t.Parallel()

	r := Result{
		Trades: []Trade{
			closedTrade(signal.Long, 100, 110, 1),
			closedTrade(signal.Short, 100, 102, 1),
		},
	}

	dist := PnLDistribution(r)
	require.Len(t, dist, 2)
	assert.InDelta(t, 10.0, dist[0], 1e-12)
	assert.InDelta(t, -2.0, dist[1], 1e-12)

	assert.Empty(t, PnLDistribution(Result{}))
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	r := Result{
		InitialCapital: 10_000,
		Trades: []Trade{
			closedTrade(signal.Long, 100, 110, 5),
			closedTrade(signal.Short, 200, 210, 2),
		},
	}

	var sb strings.Builder
	WriteReport(&sb, r)
	out := sb.String()

	assert.Contains(t, out, "Backtest Report")
	assert.Contains(t, out, "Total:         2")
	assert.Contains(t, out, "Win Rate:      50.00%")
	assert.Contains(t, out, "Largest Win:")
	assert.Contains(t, out, "Holding Duration (days)")
}
