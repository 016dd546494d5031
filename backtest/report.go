package backtest

import (
	"fmt"
	"io"
	"time"
)

// WriteReport prints a plain-text run report: headline summary plus the
// long/short breakdown.
func WriteReport(w io.Writer, r Result) {
	s := Summarize(r)
	b := BreakdownBySide(r)

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Backtest Report - TSMOM")
	fmt.Fprintln(w, "==================================================")

	if n := len(r.EquityCurve); n > 0 {
		fmt.Fprintf(w, "Start:         %s\n", r.EquityCurve[0].Time.Format(time.RFC3339))
		fmt.Fprintf(w, "End:           %s\n", r.EquityCurve[n-1].Time.Format(time.RFC3339))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total:         %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Long:          %4d | Win Rate: %6.2f%%\n", b.LongTrades, b.LongWinRate*100)
	fmt.Fprintf(w, "Short:         %4d | Win Rate: %6.2f%%\n", b.ShortTrades, b.ShortWinRate*100)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Initial:       %10.2f\n", r.InitialCapital)
	fmt.Fprintf(w, "Final Equity:  %10.2f\n", r.FinalEquity())
	fmt.Fprintf(w, "Total P&L:     %10.2f\n", s.TotalPnL)
	fmt.Fprintf(w, "Avg P&L:       %10.2f (%6.2f%%)\n", s.AvgPnL, s.AvgPnLPct*100)
	fmt.Fprintf(w, "Largest Win:   %10.2f\n", s.LargestWin)
	fmt.Fprintf(w, "Largest Loss:  %10.2f\n", s.LargestLoss)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Holding Duration (days)")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Avg:           %10.1f\n", s.AvgBarsHeld)
	fmt.Fprintf(w, "Max:           %10d\n", s.MaxBarsHeld)
	fmt.Fprintf(w, "Min:           %10d\n", s.MinBarsHeld)

	fmt.Fprintln(w)
}
