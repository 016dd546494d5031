package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rustyeddy/tsmom/backtest"
	"github.com/rustyeddy/tsmom/config"
	"github.com/rustyeddy/tsmom/journal"
	"github.com/rustyeddy/tsmom/market"
	"github.com/rustyeddy/tsmom/signal"
	"github.com/spf13/cobra"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run a TSMOM backtest over a bar series",
	Long: `Backtest replays the dual-horizon momentum signal through the
single-position state machine and prints a performance report.

Bars come from a CSV file (time,open,high,low,close[,volume] or time,close)
or, with --synthetic, from a seeded random walk.

Example:
  tsmom backtest --csv data/gold.csv --short 5 --long 20
  tsmom backtest --synthetic 300 --db runs.sqlite`,
	RunE: runBacktest,
}

var (
	btConfigPath string
	btCSVPath    string
	btSynthetic  int
	btSeed       int64
	btShort      int
	btLong       int
	btThreshold  float64
	btCapital    float64
	btDBPath     string
	btOrgPath    string
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btConfigPath, "config", "c", "", "path to config file (flags override)")
	backtestCmd.Flags().StringVar(&btCSVPath, "csv", "", "path to bar CSV")
	backtestCmd.Flags().IntVar(&btSynthetic, "synthetic", 0, "generate N synthetic daily bars instead of reading a CSV")
	backtestCmd.Flags().Int64Var(&btSeed, "seed", 42, "seed for the synthetic series")
	backtestCmd.Flags().IntVar(&btShort, "short", 5, "short momentum period (bars)")
	backtestCmd.Flags().IntVar(&btLong, "long", 20, "long momentum period (bars)")
	backtestCmd.Flags().Float64Var(&btThreshold, "threshold", 0, "minimum |score| to take a stance")
	backtestCmd.Flags().Float64Var(&btCapital, "capital", 10_000, "initial capital")
	backtestCmd.Flags().StringVarP(&btDBPath, "db", "d", "", "path to SQLite journal DB (empty disables journaling)")
	backtestCmd.Flags().StringVar(&btOrgPath, "org", "", "write an org-mode run report to this path")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if btConfigPath != "" {
		loaded, err := config.LoadFromFile(btConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override file settings.
	if cmd.Flags().Changed("short") || btConfigPath == "" {
		cfg.Strategy.PeriodShort = btShort
	}
	if cmd.Flags().Changed("long") || btConfigPath == "" {
		cfg.Strategy.PeriodLong = btLong
	}
	if cmd.Flags().Changed("threshold") || btConfigPath == "" {
		cfg.Strategy.Threshold = btThreshold
	}
	if cmd.Flags().Changed("capital") || btConfigPath == "" {
		cfg.Account.InitialCapital = btCapital
	}
	if cmd.Flags().Changed("csv") {
		cfg.Data.CSVPath = btCSVPath
	}

	bars, err := loadBars(cfg)
	if err != nil {
		return err
	}

	runner, err := backtest.NewRunner(cfg.Strategy, cfg.Account)
	if err != nil {
		return err
	}

	j, err := openJournal(cfg)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
		runner.Journal = j
	}

	result, runID, err := runner.Run(bars)
	if err != nil {
		return err
	}

	fmt.Printf("Run: %s (%d bars, short=%d long=%d threshold=%g)\n\n",
		runID, len(bars), cfg.Strategy.PeriodShort, cfg.Strategy.PeriodLong, cfg.Strategy.Threshold)
	backtest.WriteReport(os.Stdout, result)

	if btOrgPath != "" {
		run := runRecord(runID, cfg.Strategy, bars, result)
		if err := run.WriteOrg(btOrgPath); err != nil {
			return fmt.Errorf("write org report: %w", err)
		}
		fmt.Printf("Org report: %s\n", btOrgPath)
	}
	return nil
}

func loadBars(cfg *config.Config) ([]market.Bar, error) {
	if btSynthetic > 0 {
		from := time.Now().UTC().AddDate(0, 0, -btSynthetic)
		return market.SyntheticWalk(from, btSynthetic, 100, 0.0005, 0.01, btSeed), nil
	}
	if cfg.Data.CSVPath == "" {
		return nil, fmt.Errorf("no bar source: pass --csv or --synthetic N")
	}
	bars, err := market.LoadCSV(cfg.Data.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("load bars: %w", err)
	}
	return bars, nil
}

func openJournal(cfg *config.Config) (journal.Journal, error) {
	if btDBPath != "" {
		return journal.NewSQLite(btDBPath)
	}
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.TradesFile, cfg.Journal.EquityFile)
	default:
		return nil, nil
	}
}

func runRecord(runID string, sc signal.Config, bars []market.Bar, result backtest.Result) journal.Run {
	var start, end time.Time
	if len(bars) > 0 {
		start, end = bars[0].Time, bars[len(bars)-1].Time
	}
	run := journal.Run{
		RunID:          runID,
		Created:        time.Now().UTC(),
		PeriodShort:    sc.PeriodShort,
		PeriodLong:     sc.PeriodLong,
		Threshold:      sc.Threshold,
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
	return run
}
