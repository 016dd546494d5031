package journal

import (
	"bytes"
	"os"
	"text/template"
	"time"
)

var orgFuncs = template.FuncMap{
	"mul100": func(x float64) float64 { return x * 100.0 },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

// OrgReport renders the run as an org-mode entry.
func (r *Run) OrgReport() (string, error) {
	t, err := template.New("run").Funcs(orgFuncs).Parse(runOrgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteOrg writes the org-mode report to path.
func (r *Run) WriteOrg(path string) error {
	s, err := r.OrgReport()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0644)
}

const runOrgTemplate = `
* BACKTEST: TSMOM {{.PeriodShort}}/{{.PeriodLong}}
:PROPERTIES:
:RUN_ID:       {{.RunID}}
:STRATEGY:     tsmom
:PERIOD_SHORT: {{.PeriodShort}}
:PERIOD_LONG:  {{.PeriodLong}}
:THRESHOLD:    {{printf "%.4f" .Threshold}}
:START_DATE:   {{.Start.Format "2006-01-02"}}
:END_DATE:     {{.End.Format "2006-01-02"}}
:INIT_CAP:     {{printf "%.2f" .InitialCapital}}
:FINAL_EQ:     {{printf "%.2f" .FinalEquity}}
:NET_PNL:      {{printf "%.2f" .NetPnL}}
:RETURN_PCT:   {{printf "%.2f" .ReturnPct}}
:TRADES:       {{.Trades}}
:WINS:         {{.Wins}}
:LOSSES:       {{.Losses}}
:WIN_RATE:     {{printf "%.2f" (mul100 .WinRate)}}
:CREATED:      [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Net P/L:   *{{printf "%.2f" .NetPnL}}*
- Return:    *{{printf "%.2f" .ReturnPct}}%*
- Win Rate:  *{{printf "%.2f" (mul100 .WinRate)}}%*

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Wins}} |
| Losses  | {{.Losses}} |
| Total   | {{.Trades}} |
`
