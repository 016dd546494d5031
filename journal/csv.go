package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVJournal writes trades and equity rows to two CSV files. Run summaries
// have no natural place in flat files and are dropped; use the SQLite
// backend when run history matters.
type CSVJournal struct {
	trades *csv.Writer
	equity *csv.Writer
	tf, ef *os.File
}

func NewCSV(tradesPath, equityPath string) (*CSVJournal, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	ew := csv.NewWriter(ef)

	fail := func(err error) (*CSVJournal, error) {
		tf.Close()
		ef.Close()
		return nil, err
	}

	if err := tw.Write([]string{"trade_id", "run_id", "side", "entry_time", "entry_price", "exit_time", "exit_price", "pnl", "pnl_pct", "bars_held", "reason"}); err != nil {
		return fail(err)
	}
	if err := ew.Write([]string{"run_id", "time", "capital"}); err != nil {
		return fail(err)
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return fail(err)
	}
	ew.Flush()
	if err := ew.Error(); err != nil {
		return fail(err)
	}

	return &CSVJournal{tw, ew, tf, ef}, nil
}

func (j *CSVJournal) RecordRun(Run) error { return nil }

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	err := j.trades.Write([]string{
		t.TradeID,
		t.RunID,
		t.Side,
		t.EntryTime.Format(time.RFC3339),
		f(t.EntryPrice),
		t.ExitTime.Format(time.RFC3339),
		f(t.ExitPrice),
		f(t.PnL),
		f(t.PnLPct),
		strconv.Itoa(t.BarsHeld),
		t.Reason,
	})
	if err != nil {
		return err
	}
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordEquity(e EquityRow) error {
	err := j.equity.Write([]string{
		e.RunID,
		e.Time.Format(time.RFC3339),
		f(e.Capital),
	})
	if err != nil {
		return err
	}
	j.equity.Flush()
	return j.equity.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	if err := j.trades.Error(); err != nil {
		return err
	}
	j.equity.Flush()
	if err := j.equity.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.ef.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
