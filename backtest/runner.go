package backtest

import (
	"fmt"
	"time"

	"github.com/rustyeddy/tsmom/internal/id"
	"github.com/rustyeddy/tsmom/journal"
	"github.com/rustyeddy/tsmom/market"
	"github.com/rustyeddy/tsmom/signal"
)

// Runner composes the full pipeline: generate signals, replay the state
// machine, build the equity curve, and optionally persist everything under a
// fresh run ID.
type Runner struct {
	Generator *signal.Generator
	Engine    *Engine
	Journal   journal.Journal // optional
}

// NewRunner validates both configs and returns a ready Runner with no
// journal attached.
func NewRunner(sigCfg signal.Config, btCfg Config) (*Runner, error) {
	gen, err := signal.New(sigCfg)
	if err != nil {
		return nil, err
	}
	eng, err := NewEngine(btCfg)
	if err != nil {
		return nil, err
	}
	return &Runner{Generator: gen, Engine: eng}, nil
}

// Run executes one backtest over bars. An empty series yields an empty
// result. The run ID is returned so callers can reference journal records.
func (r *Runner) Run(bars []market.Bar) (Result, string, error) {
	if r.Generator == nil || r.Engine == nil {
		return Result{}, "", fmt.Errorf("runner: Generator and Engine are required")
	}
	if err := market.Validate(bars); err != nil {
		return Result{}, "", fmt.Errorf("runner: %w", err)
	}

	points := r.Generator.Generate(bars)
	result := r.Engine.Run(points)

	runID := id.New()
	if r.Journal != nil {
		if err := r.record(runID, bars, result); err != nil {
			return Result{}, "", fmt.Errorf("runner: record: %w", err)
		}
	}
	return result, runID, nil
}

func (r *Runner) record(runID string, bars []market.Bar, result Result) error {
	var start, end time.Time
	if len(bars) > 0 {
		start, end = bars[0].Time, bars[len(bars)-1].Time
	}

	cfg := r.Generator.Config()
	run := journal.Run{
		RunID:          runID,
		Created:        time.Now().UTC(),
		PeriodShort:    cfg.PeriodShort,
		PeriodLong:     cfg.PeriodLong,
		Threshold:      cfg.Threshold,
		Start:          start,
		End:            end,
		Trades:         result.TotalTrades(),
		Wins:           result.WinningTrades(),
		Losses:         result.LosingTrades(),
		InitialCapital: result.InitialCapital,
		FinalEquity:    result.FinalEquity(),
		NetPnL:         result.TotalPnL(),
		WinRate:        result.WinRate(),
	}
	if result.InitialCapital != 0 {
		run.ReturnPct = (run.FinalEquity - run.InitialCapital) / run.InitialCapital * 100
	}
	if err := r.Journal.RecordRun(run); err != nil {
		return err
	}

	for _, t := range result.Trades {
		rec := journal.TradeRecord{
			TradeID:    t.ID,
			RunID:      runID,
			Side:       t.Side.String(),
			EntryTime:  t.EntryTime,
			EntryPrice: t.EntryPrice,
			ExitTime:   t.ExitTime,
			ExitPrice:  t.ExitPrice,
			PnL:        t.PnL,
			PnLPct:     t.PnLPct,
			BarsHeld:   t.BarsHeld,
			Reason:     t.Reason,
		}
		if err := r.Journal.RecordTrade(rec); err != nil {
			return err
		}
	}

	for _, e := range result.EquityCurve {
		if err := r.Journal.RecordEquity(journal.EquityRow{
			RunID:   runID,
			Time:    e.Time,
			Capital: e.Capital,
		}); err != nil {
			return err
		}
	}
	return nil
}
