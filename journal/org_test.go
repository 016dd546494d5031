package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() Run {
	return Run{
		RunID:          "01J0TESTRUNID",
		Created:        time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		PeriodShort:    5,
		PeriodLong:     20,
		Threshold:      0.01,
		Start:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
		Trades:         14,
		Wins:           8,
		Losses:         6,
		InitialCapital: 10_000,
		FinalEquity:    10_450,
		NetPnL:         450,
		ReturnPct:      4.5,
		WinRate:        0.5714,
	}
}

func TestOrgReport(t *testing.T) {
	t.Parallel()

	run := sampleRun()
	out, err := run.OrgReport()
	require.NoError(t, err)

	assert.Contains(t, out, "* BACKTEST: TSMOM 5/20")
	assert.Contains(t, out, ":RUN_ID:       01J0TESTRUNID")
	assert.Contains(t, out, ":PERIOD_SHORT: 5")
	assert.Contains(t, out, ":PERIOD_LONG:  20")
	assert.Contains(t, out, ":THRESHOLD:    0.0100")
	assert.Contains(t, out, ":START_DATE:   2024-01-01")
	assert.Contains(t, out, ":END_DATE:     2024-05-31")
	assert.Contains(t, out, ":NET_PNL:      450.00")
	assert.Contains(t, out, ":TRADES:       14")
	assert.Contains(t, out, ":WIN_RATE:     57.14")
	assert.Contains(t, out, "| Wins    | 8 |")
	assert.Contains(t, out, "| Losses  | 6 |")
}

func TestOrgReportZeroCreated(t *testing.T) {
	t.Parallel()

	run := sampleRun()
	run.Created = time.Time{}

	out, err := run.OrgReport()
	require.NoError(t, err)
	// Zero Created falls back to now rather than year 1.
	assert.NotContains(t, out, "0001-01-01")
}

func TestWriteOrg(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.org")
	run := sampleRun()
	require.NoError(t, run.WriteOrg(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "* BACKTEST: TSMOM 5/20")
}
