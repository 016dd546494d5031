package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadCSV reads a bar series from a CSV file with rows:
//
//	time,open,high,low,close[,volume]
//
// where time is RFC3339 or a plain date (2006-01-02). A shorter form
// time,close is also accepted. Header row ("time,...") is allowed.
// Empty/short rows are skipped.
func LoadCSV(path string) ([]Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses bar rows from r. See LoadCSV for the accepted formats.
func ReadCSV(r io.Reader) ([]Bar, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var bars []Bar
	sawFirst := false

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		// Allow a single header row
		if !sawFirst {
			sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "time") ||
				strings.EqualFold(strings.TrimSpace(row[0]), "date") {
				continue
			}
		}

		b, ok, err := parseBarRow(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		bars = append(bars, b)
	}

	if err := Validate(bars); err != nil {
		return nil, err
	}
	return bars, nil
}

func parseBarRow(row []string) (Bar, bool, error) {
	// Need at least: time,close
	if len(row) < 2 {
		return Bar{}, false, nil
	}

	ts := strings.TrimSpace(row[0])
	if ts == "" {
		return Bar{}, false, nil
	}
	t, err := parseTime(ts)
	if err != nil {
		return Bar{}, false, fmt.Errorf("bad time %q: %w", ts, err)
	}

	vals := make([]float64, 0, 5)
	for _, cell := range row[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			break
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return Bar{}, false, fmt.Errorf("bad value %q: %w", cell, err)
		}
		vals = append(vals, v)
	}

	b := Bar{Time: t}
	switch {
	case len(vals) >= 4:
		b.Open, b.High, b.Low, b.Close = vals[0], vals[1], vals[2], vals[3]
		if len(vals) >= 5 {
			b.Volume = vals[4]
		}
	case len(vals) >= 1:
		b.Close = vals[0]
	default:
		return Bar{}, false, nil
	}
	return b, true, nil
}

func parseTime(s string) (time.Time, error) {
	// Accept RFC3339, RFC3339Nano, or a bare date.
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
