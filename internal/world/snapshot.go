package world

import "math"

// View is the per-body render contract: a stable identity plus position,
// velocity and radius. A renderer places at most one visual element per
// view, anchored at (X-R, Y-R) with width and height 2*R.
type View struct {
	ID     int
	X, Y   float64
	VX, VY float64
	R      float64
	Mass   float64
}

// Snapshot is a copied, fully-formed picture of the world after a step.
// Mutating it never touches live bodies.
type Snapshot struct {
	Frame      int
	Width      float64
	Height     float64
	Bodies     []View
	Collisions int // pairs resolved in the last step
	WallHits   int // bodies that touched a wall in the last step
	PointerX   float64
	PointerY   float64
	HasPointer bool
}

// Snapshot copies the current world state for rendering, metrics and
// storage.
func (w *World) Snapshot() Snapshot {
	views := make([]View, len(w.bodies))
	for i, b := range w.bodies {
		views[i] = View{
			ID:   b.ID,
			X:    b.X,
			Y:    b.Y,
			VX:   b.VX,
			VY:   b.VY,
			R:    b.R,
			Mass: b.Mass,
		}
	}
	return Snapshot{
		Frame:      w.frame,
		Width:      w.width,
		Height:     w.height,
		Bodies:     views,
		Collisions: w.collisions,
		WallHits:   w.wallHits,
		PointerX:   w.pointerX,
		PointerY:   w.pointerY,
		HasPointer: w.hasPointer,
	}
}

// KineticEnergy sums 1/2 m v^2 over all bodies in the snapshot.
func (s Snapshot) KineticEnergy() float64 {
	ke := 0.0
	for _, v := range s.Bodies {
		ke += 0.5 * v.Mass * (v.VX*v.VX + v.VY*v.VY)
	}
	return ke
}

// PeakSpeed returns the largest body speed in the snapshot.
func (s Snapshot) PeakSpeed() float64 {
	peak := 0.0
	for _, v := range s.Bodies {
		if sp := math.Hypot(v.VX, v.VY); sp > peak {
			peak = sp
		}
	}
	return peak
}
