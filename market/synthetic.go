package market

import (
	"math"
	"math/rand"
	"time"
)

// SyntheticTrend builds a daily bar series that drifts by pct per bar,
// starting at start price. Useful for demos and warm-up/transition tests.
func SyntheticTrend(from time.Time, n int, start, pct float64) []Bar {
	bars := make([]Bar, 0, n)
	price := start
	for i := 0; i < n; i++ {
		bars = append(bars, dailyBar(from, i, price))
		price *= 1 + pct
	}
	return bars
}

// SyntheticWalk builds a daily bar series following a geometric random walk
// with the given per-bar drift and volatility. The walk is seeded, so runs
// are reproducible.
func SyntheticWalk(from time.Time, n int, start, drift, vol float64, seed int64) []Bar {
	rng := rand.New(rand.NewSource(seed))

	bars := make([]Bar, 0, n)
	price := start
	for i := 0; i < n; i++ {
		bars = append(bars, dailyBar(from, i, price))
		price *= math.Exp(drift + vol*rng.NormFloat64())
	}
	return bars
}

// FromCloses wraps a plain close series into daily bars starting at from.
func FromCloses(from time.Time, closes []float64) []Bar {
	bars := make([]Bar, 0, len(closes))
	for i, c := range closes {
		bars = append(bars, dailyBar(from, i, c))
	}
	return bars
}

func dailyBar(from time.Time, i int, close float64) Bar {
	return Bar{
		Time:  from.AddDate(0, 0, i),
		Open:  close,
		High:  close,
		Low:   close,
		Close: close,
	}
}
