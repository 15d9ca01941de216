package world

import (
	"math/rand"

	"github.com/san-kum/bouncelab/internal/body"
	"github.com/san-kum/bouncelab/internal/vecmath"
)

// DefaultRetryLimit bounds the random placement search per body.
const DefaultRetryLimit = 50

// SpawnParams describe the initial body population.
type SpawnParams struct {
	Count      int
	MinRadius  float64
	MaxRadius  float64
	Velocity   float64 // per-axis uniform band [-Velocity, +Velocity]
	RetryLimit int
}

// spawnAll creates Count bodies with radii uniform in the size range and
// retry-bounded non-overlapping placement. When the retry budget runs out
// the last candidate is kept even if it overlaps; overlapped counts those
// best-effort placements. IDs follow creation order.
func spawnAll(rng *rand.Rand, sp SpawnParams, width, height float64) ([]*body.Body, int) {
	bodies := make([]*body.Body, 0, sp.Count)
	overlapped := 0

	for i := 0; i < sp.Count; i++ {
		r := sp.MinRadius + rng.Float64()*(sp.MaxRadius-sp.MinRadius)

		var x, y float64
		placed := false
		for attempt := 0; attempt < sp.RetryLimit; attempt++ {
			x = r + rng.Float64()*(width-2*r)
			y = r + rng.Float64()*(height-2*r)
			if !overlapsAny(bodies, x, y, r) {
				placed = true
				break
			}
		}
		if !placed {
			overlapped++
		}

		b := body.New(i, x, y, r)
		b.VX = (rng.Float64()*2 - 1) * sp.Velocity
		b.VY = (rng.Float64()*2 - 1) * sp.Velocity
		bodies = append(bodies, b)
	}

	return bodies, overlapped
}

func overlapsAny(bodies []*body.Body, x, y, r float64) bool {
	for _, b := range bodies {
		if vecmath.Dist(x, y, b.X, b.Y) < r+b.R {
			return true
		}
	}
	return false
}
