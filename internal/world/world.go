package world

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/san-kum/bouncelab/internal/body"
)

// Tunables are the per-step physics constants shared by every body.
type Tunables struct {
	Friction     float64 // per-frame velocity multiplier
	BounceEnergy float64 // reflected-velocity multiplier on wall contact
	RepelRadius  float64 // pointer influence radius
	RepelForce   float64 // pointer force at zero distance
}

// World owns the body set, the viewport bounds, and the latest pointer
// position. All mutation happens through Step, Resize, SetPointer and
// ClearPointer; nothing is read from ambient state.
//
// World is not safe for concurrent use. Step must never run concurrently
// with itself or with the input setters; callers driving it from multiple
// goroutines wrap it in a mutex (see engine.Engine).
type World struct {
	bodies []*body.Body
	width  float64
	height float64

	pointerX   float64
	pointerY   float64
	hasPointer bool

	tun   Tunables
	spawn SpawnParams
	rng   *rand.Rand

	frame      int
	collisions int
	wallHits   int
	overlapped int
}

// New validates the configuration, spawns the initial body set and returns
// a ready world. Invalid configuration is a programming or config-file
// mistake, so it fails fast instead of being patched up.
func New(width, height float64, tun Tunables, sp SpawnParams, seed int64) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("viewport must be positive, got %gx%g", width, height)
	}
	if sp.Count <= 0 {
		return nil, fmt.Errorf("body count must be positive, got %d", sp.Count)
	}
	if sp.MinRadius <= 0 {
		return nil, fmt.Errorf("min radius must be positive, got %g", sp.MinRadius)
	}
	if sp.MinRadius > sp.MaxRadius {
		return nil, fmt.Errorf("size range inverted: min %g > max %g", sp.MinRadius, sp.MaxRadius)
	}
	if 2*sp.MaxRadius >= math.Min(width, height) {
		return nil, fmt.Errorf("max radius %g does not fit a %gx%g viewport", sp.MaxRadius, width, height)
	}
	if sp.RetryLimit < 1 {
		return nil, fmt.Errorf("retry limit must be at least 1, got %d", sp.RetryLimit)
	}
	if sp.Velocity < 0 {
		return nil, fmt.Errorf("velocity band must be non-negative, got %g", sp.Velocity)
	}
	if tun.Friction <= 0 {
		return nil, fmt.Errorf("friction must be positive, got %g", tun.Friction)
	}
	if tun.BounceEnergy <= 0 {
		return nil, fmt.Errorf("bounce energy must be positive, got %g", tun.BounceEnergy)
	}
	if tun.RepelRadius < 0 || tun.RepelForce < 0 {
		return nil, fmt.Errorf("repulsion parameters must be non-negative, got radius %g force %g",
			tun.RepelRadius, tun.RepelForce)
	}

	w := &World{
		width:  width,
		height: height,
		tun:    tun,
		spawn:  sp,
		rng:    rand.New(rand.NewSource(seed)),
	}
	w.bodies, w.overlapped = spawnAll(w.rng, sp, width, height)
	return w, nil
}

// Step advances the simulation one frame: pointer repulsion first, then
// pairwise collisions, then integration and wall containment. Each
// unordered pair is resolved exactly once per frame.
func (w *World) Step() {
	if w.hasPointer {
		for _, b := range w.bodies {
			b.RepelFrom(w.pointerX, w.pointerY, w.tun.RepelRadius, w.tun.RepelForce)
		}
	}

	w.collisions = 0
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			if w.bodies[i].Collide(w.bodies[j]) {
				w.collisions++
			}
		}
	}

	w.wallHits = 0
	for _, b := range w.bodies {
		b.Integrate(w.tun.Friction)
		if b.ResolveWallCollisions(w.width, w.height, w.tun.BounceEnergy) {
			w.wallHits++
		}
	}

	w.frame++
}

// Resize updates the viewport and snaps every body to the nearest valid
// position inside the new bounds. Positions are not rescaled and
// velocities are left untouched.
func (w *World) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width = width
	w.height = height
	for _, b := range w.bodies {
		b.ClampTo(width, height)
	}
}

// SetPointer records the latest pointer position in viewport coordinates.
func (w *World) SetPointer(x, y float64) {
	w.pointerX = x
	w.pointerY = y
	w.hasPointer = true
}

// ClearPointer marks the pointer absent; repulsion stops applying.
func (w *World) ClearPointer() {
	w.hasPointer = false
}

// Reset discards every body and respawns the world wholesale with the
// original spawn parameters, drawing fresh randomness from the same seeded
// stream. Never triggered implicitly.
func (w *World) Reset() {
	w.bodies, w.overlapped = spawnAll(w.rng, w.spawn, w.width, w.height)
	w.frame = 0
	w.collisions = 0
	w.wallHits = 0
}

// Size returns the current viewport dimensions.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Overlapped reports how many spawn placements were accepted with overlap
// after the retry budget ran out. A soft condition, never an error.
func (w *World) Overlapped() int {
	return w.overlapped
}
