// Package market holds the price series types consumed by the signal and
// backtest packages. The core never fetches data itself; bars arrive from a
// CSV file, a synthetic generator, or any caller-built slice.
package market

import (
	"fmt"
	"time"
)

// Bar represents one OHLC bar of a price series. Only Close is required by
// the signal and backtest packages; the remaining fields are carried for
// callers that have them.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Closes extracts the close column from a bar series.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Validate checks that the series is usable as backtest input: timestamps
// strictly increasing (and therefore unique) and closes positive.
func Validate(bars []Bar) error {
	for i, b := range bars {
		if b.Close <= 0 {
			return errBar(i, "close must be positive")
		}
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			return errBar(i, "timestamps must be strictly increasing")
		}
	}
	return nil
}

func errBar(i int, msg string) error {
	return fmt.Errorf("bar %d: %s", i, msg)
}
