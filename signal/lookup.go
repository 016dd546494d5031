package signal

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrNotFound is returned by At when the requested timestamp is not part of
// the generated series. It is a recoverable condition, not a crash.
var ErrNotFound = errors.New("signal not found")

// At returns the point for an exact timestamp. Points must be in generation
// order (timestamps strictly increasing), which allows a binary search.
func At(points []Point, t time.Time) (Point, error) {
	i := sort.Search(len(points), func(i int) bool {
		return !points[i].Time.Before(t)
	})
	if i < len(points) && points[i].Time.Equal(t) {
		return points[i], nil
	}
	return Point{}, fmt.Errorf("at %s: %w", t.Format(time.RFC3339), ErrNotFound)
}
