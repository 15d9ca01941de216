package body

import (
	"math"

	"github.com/san-kum/bouncelab/internal/vecmath"
)

// MassFactor derives a body's mass from its radius. Linear in the radius so
// larger bodies dominate collisions.
const MassFactor = 2.0

// Body is one simulated disc. Rendering may draw it as any flat shape, but
// all physics treats it as a circle of radius R centered at (X, Y).
type Body struct {
	ID     int
	X, Y   float64
	VX, VY float64
	R      float64
	Mass   float64
}

// New creates a body with mass derived from radius. The caller assigns ids
// in creation order so iteration stays deterministic.
func New(id int, x, y, r float64) *Body {
	return &Body{
		ID:   id,
		X:    x,
		Y:    y,
		R:    r,
		Mass: MassFactor * r,
	}
}

// ApplyForce adds an instantaneous velocity delta. Forces in this model are
// not scaled by mass or timestep.
func (b *Body) ApplyForce(fx, fy float64) {
	b.VX += fx
	b.VY += fy
}

// Integrate applies one frame of exponential velocity decay and advances the
// position. friction is a per-frame multiplier, not per unit time.
func (b *Body) Integrate(friction float64) {
	b.VX *= friction
	b.VY *= friction
	b.X += b.VX
	b.Y += b.VY
}

// ResolveWallCollisions reflects the body off the viewport edges and clamps
// its position so the full disc stays inside [R, dim-R] on each axis. The
// reflected component takes the absolute value first so it always points
// back inward, then scales by bounce (> 1.0 gains energy on every hit).
// Reports whether any wall was hit this frame.
func (b *Body) ResolveWallCollisions(width, height, bounce float64) bool {
	hit := false

	if b.X-b.R < 0 {
		b.VX = math.Abs(b.VX) * bounce
		b.X = b.R
		hit = true
	} else if b.X+b.R > width {
		b.VX = -math.Abs(b.VX) * bounce
		b.X = width - b.R
		hit = true
	}

	if b.Y-b.R < 0 {
		b.VY = math.Abs(b.VY) * bounce
		b.Y = b.R
		hit = true
	} else if b.Y+b.R > height {
		b.VY = -math.Abs(b.VY) * bounce
		b.Y = height - b.R
		hit = true
	}

	return hit
}

// RepelFrom pushes the body away from the pointer at (px, py). The force
// falls off linearly from maxForce at the pointer to zero at the influence
// radius. A body exactly on the pointer has no defined direction and is
// left alone.
func (b *Body) RepelFrom(px, py, influence, maxForce float64) {
	d := vecmath.Dist(b.X, b.Y, px, py)
	if d <= 0 || d >= influence {
		return
	}
	mag := (influence - d) / influence * maxForce
	angle := math.Atan2(b.Y-py, b.X-px)
	b.ApplyForce(math.Cos(angle)*mag, math.Sin(angle)*mag)
}

// Collide resolves an elastic collision between two overlapping discs.
// Both velocities are rotated into the frame of the line connecting the
// centers, where the collision is one dimensional: the normal components
// exchange via the standard elastic formula weighted by mass, tangential
// components pass through untouched, and everything rotates back.
// Coincident centers are skipped to avoid an undefined collision angle.
// Reports whether a collision was resolved.
func (b *Body) Collide(o *Body) bool {
	d := vecmath.Dist(b.X, b.Y, o.X, o.Y)
	if d <= 0 || d >= b.R+o.R {
		return false
	}

	angle := math.Atan2(o.Y-b.Y, o.X-b.X)

	v1x, v1y := vecmath.Rotate(b.VX, b.VY, -angle)
	v2x, v2y := vecmath.Rotate(o.VX, o.VY, -angle)

	m1, m2 := b.Mass, o.Mass
	u1 := (v1x*(m1-m2) + 2*m2*v2x) / (m1 + m2)
	u2 := (v2x*(m2-m1) + 2*m1*v1x) / (m1 + m2)

	b.VX, b.VY = vecmath.Rotate(u1, v1y, angle)
	o.VX, o.VY = vecmath.Rotate(u2, v2y, angle)
	return true
}

// ClampTo snaps the body position into the viewport without touching the
// velocity. Used after viewport resizes.
func (b *Body) ClampTo(width, height float64) {
	b.X = vecmath.Clamp(b.X, b.R, width-b.R)
	b.Y = vecmath.Clamp(b.Y, b.R, height-b.R)
}

// Speed returns the velocity magnitude.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}
