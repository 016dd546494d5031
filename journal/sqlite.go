package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r Run) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, period_short, period_long, threshold, start_time, end_time,
		 trades, wins, losses, initial_capital, final_equity, net_pnl, return_pct, win_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.PeriodShort, r.PeriodLong, r.Threshold,
		r.Start, r.End, r.Trades, r.Wins, r.Losses,
		r.InitialCapital, r.FinalEquity, r.NetPnL, r.ReturnPct, r.WinRate,
	)
	return err
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, run_id, side, entry_time, entry_price, exit_time, exit_price, pnl, pnl_pct, bars_held, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.RunID, t.Side, t.EntryTime, t.EntryPrice,
		t.ExitTime, t.ExitPrice, t.PnL, t.PnLPct, t.BarsHeld, t.Reason,
	)
	return err
}

func (j *SQLite) RecordEquity(e EquityRow) error {
	_, err := j.db.Exec(`
		INSERT INTO equity (run_id, time, capital) VALUES (?, ?, ?)`,
		e.RunID, e.Time, e.Capital,
	)
	return err
}

// ListTradesByRun returns the trades of a run in entry order.
func (j *SQLite) ListTradesByRun(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, run_id, side, entry_time, entry_price, exit_time, exit_price, pnl, pnl_pct, bars_held, reason
		FROM trades WHERE run_id = ? ORDER BY entry_time`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(&t.TradeID, &t.RunID, &t.Side, &t.EntryTime, &t.EntryPrice,
			&t.ExitTime, &t.ExitPrice, &t.PnL, &t.PnLPct, &t.BarsHeld, &t.Reason); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetRun loads one run summary row.
func (j *SQLite) GetRun(runID string) (Run, error) {
	var r Run
	var created, start, end time.Time
	err := j.db.QueryRow(`
		SELECT run_id, created, period_short, period_long, threshold, start_time, end_time,
		       trades, wins, losses, initial_capital, final_equity, net_pnl, return_pct, win_rate
		FROM runs WHERE run_id = ?`, runID).Scan(
		&r.RunID, &created, &r.PeriodShort, &r.PeriodLong, &r.Threshold,
		&start, &end, &r.Trades, &r.Wins, &r.Losses,
		&r.InitialCapital, &r.FinalEquity, &r.NetPnL, &r.ReturnPct, &r.WinRate,
	)
	if err != nil {
		return Run{}, err
	}
	r.Created, r.Start, r.End = created, start, end
	return r, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
