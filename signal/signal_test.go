package signal

import (
	"testing"
	"time"

	"github.com/rustyeddy/tsmom/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func bars(closes ...float64) []market.Bar {
	return market.FromCloses(day0, closes)
}

func mustGenerator(t *testing.T, short, long int, threshold float64) *Generator {
	t.Helper()

	g, err := New(Config{PeriodShort: short, PeriodLong: long, Threshold: threshold})
	require.NoError(t, err)
	return g
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "defaults",
			config: DefaultConfig(),
		},
		{
			name:   "zero threshold allowed",
			config: Config{PeriodShort: 3, PeriodLong: 5, Threshold: 0},
		},
		{
			name:    "zero short period",
			config:  Config{PeriodShort: 0, PeriodLong: 20},
			wantErr: true,
		},
		{
			name:    "negative long period",
			config:  Config{PeriodShort: 5, PeriodLong: -1},
			wantErr: true,
		},
		{
			name:    "negative threshold",
			config:  Config{PeriodShort: 5, PeriodLong: 20, Threshold: -0.1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateWarmup(t *testing.T) {
	t.Parallel()

	g := mustGenerator(t, 3, 5, 0)
	points := g.Generate(bars(100, 101, 102, 103, 104, 103, 102, 101, 100, 99))

	require.Len(t, points, 10)

	// momentum_short defined from index 3, momentum_long from index 5.
	for i, p := range points {
		assert.Equal(t, i >= 3, p.MomentumShort.Valid, "short at %d", i)
		assert.Equal(t, i >= 5, p.MomentumLong.Valid, "long at %d", i)
		assert.Equal(t, i >= 5, p.Score.Valid, "score at %d", i)
		if i < 5 {
			assert.Equal(t, Flat, p.State, "warm-up must be flat at %d", i)
		}
	}
}

func TestGenerateSpecSeries(t *testing.T) {
	t.Parallel()

	g := mustGenerator(t, 3, 5, 0)
	points := g.Generate(bars(100, 101, 102, 103, 104, 103, 102, 101, 100, 99))

	// index 5: mom_short = (103-102)/102, mom_long = (103-100)/100
	p := points[5]
	require.True(t, p.Score.Valid)
	assert.InDelta(t, (103.0-102.0)/102.0, p.MomentumShort.Value, 1e-12)
	assert.InDelta(t, (103.0-100.0)/100.0, p.MomentumLong.Value, 1e-12)
	assert.InDelta(t, 0.4*p.MomentumShort.Value+0.6*p.MomentumLong.Value, p.Score.Value, 1e-12)
	assert.Equal(t, Long, p.State)

	// At least one transition away from Flat over the series.
	saw := false
	for _, p := range points {
		if p.State != Flat {
			saw = true
		}
	}
	assert.True(t, saw)

	// Tail of the series is falling hard enough to flip short.
	assert.Equal(t, Short, points[9].State)
}

func TestGenerateConstantSeries(t *testing.T) {
	t.Parallel()

	g := mustGenerator(t, 3, 5, 0)
	points := g.Generate(bars(50, 50, 50, 50, 50, 50, 50, 50))

	for i, p := range points {
		assert.Equal(t, Flat, p.State, "constant series must stay flat at %d", i)
		if p.Score.Valid {
			assert.Zero(t, p.Score.Value)
		}
	}
}

func TestGenerateThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		score     float64
		threshold float64
		want      State
	}{
		{name: "above threshold", score: 0.02, threshold: 0.01, want: Long},
		{name: "below negative threshold", score: -0.02, threshold: 0.01, want: Short},
		{name: "inside band", score: 0.005, threshold: 0.01, want: Flat},
		{name: "exactly threshold", score: 0.01, threshold: 0.01, want: Flat},
		{name: "exactly zero with zero threshold", score: 0, threshold: 0, want: Flat},
		{name: "tiny positive with zero threshold", score: 1e-9, threshold: 0, want: Long},
		{name: "tiny negative with zero threshold", score: -1e-9, threshold: 0, want: Short},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.score, tt.threshold))
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	g := mustGenerator(t, 5, 20, 0.01)
	in := market.SyntheticWalk(day0, 120, 100, 0.0003, 0.012, 7)

	a := g.Generate(in)
	b := g.Generate(in)
	assert.Equal(t, a, b)
}

func TestGenerateLengthPreserving(t *testing.T) {
	t.Parallel()

	g := mustGenerator(t, 5, 20, 0)

	assert.Empty(t, g.Generate(nil))
	assert.Len(t, g.Generate(bars(1, 2, 3)), 3)
	assert.Len(t, g.Generate(market.SyntheticTrend(day0, 50, 100, 0.01)), 50)
}

func TestGenerateNoLookahead(t *testing.T) {
	t.Parallel()

	g := mustGenerator(t, 3, 5, 0)
	series := bars(100, 101, 102, 103, 104, 103, 102, 101, 100, 99)

	full := g.Generate(series)
	prefix := g.Generate(series[:7])

	// Points only depend on bars at or before their index.
	assert.Equal(t, full[:7], prefix)
}
