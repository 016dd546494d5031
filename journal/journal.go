// Package journal persists backtest runs: the closed trades, the equity
// curve, and a per-run summary row. Backends: SQLite and CSV.
package journal

import "time"

// TradeRecord is the persisted form of one closed trade.
type TradeRecord struct {
	TradeID    string
	RunID      string
	Side       string
	EntryTime  time.Time
	EntryPrice float64
	ExitTime   time.Time
	ExitPrice  float64
	PnL        float64
	PnLPct     float64
	BarsHeld   int
	Reason     string
}

// EquityRow is one persisted equity curve sample.
type EquityRow struct {
	RunID   string
	Time    time.Time
	Capital float64
}

// Run is the per-run summary row.
type Run struct {
	RunID   string
	Created time.Time

	// Strategy parameters
	PeriodShort int
	PeriodLong  int
	Threshold   float64

	// Dataset time range
	Start time.Time
	End   time.Time

	// Results
	Trades int
	Wins   int
	Losses int

	InitialCapital float64
	FinalEquity    float64
	NetPnL         float64
	ReturnPct      float64
	WinRate        float64
}

type Journal interface {
	RecordRun(Run) error
	RecordTrade(TradeRecord) error
	RecordEquity(EquityRow) error
	Close() error
}
