package body

import (
	"math"
	"testing"
)

func TestNewMass(t *testing.T) {
	b := New(0, 10, 10, 7)
	if b.Mass != 14 {
		t.Errorf("expected mass 14 for radius 7, got %f", b.Mass)
	}
}

func TestApplyForce(t *testing.T) {
	b := New(0, 0, 0, 5)
	b.VX, b.VY = 1, -1
	b.ApplyForce(0.5, 2)
	if b.VX != 1.5 || b.VY != 1 {
		t.Errorf("expected velocity (1.5,1), got (%f,%f)", b.VX, b.VY)
	}
}

func TestIntegrateFriction(t *testing.T) {
	b := New(0, 100, 100, 5)
	b.VX, b.VY = 4, -2
	friction := 0.97

	b.Integrate(friction)

	if math.Abs(b.VX-4*friction) > 1e-12 || math.Abs(b.VY+2*friction) > 1e-12 {
		t.Errorf("velocity not scaled by friction: (%f,%f)", b.VX, b.VY)
	}
	if math.Abs(b.X-(100+4*friction)) > 1e-12 {
		t.Errorf("position should advance by post-friction velocity, got x=%f", b.X)
	}
}

func TestWallBounceLeft(t *testing.T) {
	b := New(0, 7, 150, 20)
	b.VX = -3
	bounce := 1.05

	hit := b.ResolveWallCollisions(400, 300, bounce)

	if !hit {
		t.Fatal("expected wall hit")
	}
	if b.X != 20 {
		t.Errorf("expected x clamped to radius 20, got %f", b.X)
	}
	if math.Abs(b.VX-3*bounce) > 1e-12 {
		t.Errorf("expected vx = 3*bounce pointing inward, got %f", b.VX)
	}
}

func TestWallBounceAllEdges(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		vx, vy     float64
		wantVXSign float64
		wantVYSign float64
	}{
		{"left", 5, 150, -2, 0, 1, 0},
		{"right", 395, 150, 2, 0, -1, 0},
		{"top", 200, 5, 0, -2, 0, 1},
		{"bottom", 200, 295, 0, 2, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(0, tt.x, tt.y, 10)
			b.VX, b.VY = tt.vx, tt.vy
			if !b.ResolveWallCollisions(400, 300, 1.1) {
				t.Fatal("expected wall hit")
			}
			if tt.wantVXSign != 0 && b.VX*tt.wantVXSign <= 0 {
				t.Errorf("vx should point inward, got %f", b.VX)
			}
			if tt.wantVYSign != 0 && b.VY*tt.wantVYSign <= 0 {
				t.Errorf("vy should point inward, got %f", b.VY)
			}
			if b.X < 10 || b.X > 390 || b.Y < 10 || b.Y > 290 {
				t.Errorf("position not clamped: (%f,%f)", b.X, b.Y)
			}
		})
	}
}

func TestWallNoHitInside(t *testing.T) {
	b := New(0, 200, 150, 10)
	b.VX, b.VY = 1, 1
	if b.ResolveWallCollisions(400, 300, 1.1) {
		t.Error("body well inside the viewport should not hit a wall")
	}
}

func TestRepelFrom(t *testing.T) {
	b := New(0, 110, 100, 10)

	b.RepelFrom(100, 100, 50, 5)

	// Pointer is directly left, so the push is purely +x with magnitude
	// (50-10)/50 * 5 = 4.
	if math.Abs(b.VX-4) > 1e-12 {
		t.Errorf("expected vx 4, got %f", b.VX)
	}
	if math.Abs(b.VY) > 1e-12 {
		t.Errorf("expected no y push, got %f", b.VY)
	}
}

func TestRepelOutOfRange(t *testing.T) {
	b := New(0, 300, 100, 10)
	b.RepelFrom(100, 100, 50, 5)
	if b.VX != 0 || b.VY != 0 {
		t.Error("pointer beyond influence radius should not apply force")
	}
}

func TestRepelCoincident(t *testing.T) {
	b := New(0, 100, 100, 10)
	b.RepelFrom(100, 100, 50, 5)
	if b.VX != 0 || b.VY != 0 {
		t.Error("body on the pointer has no defined direction, expect no-op")
	}
}

func TestCollideHeadOnEqualMass(t *testing.T) {
	a := New(0, 100, 100, 10)
	b := New(1, 115, 100, 10)
	a.VX, b.VX = 2, -2

	if !a.Collide(b) {
		t.Fatal("overlapping bodies should collide")
	}

	// Equal masses in a head-on elastic collision swap velocities.
	if math.Abs(a.VX+2) > 1e-9 || math.Abs(b.VX-2) > 1e-9 {
		t.Errorf("expected swapped velocities, got a.VX=%f b.VX=%f", a.VX, b.VX)
	}
}

func TestCollideMomentumConserved(t *testing.T) {
	a := New(0, 100, 100, 8)
	b := New(1, 110, 105, 12)
	a.VX, a.VY = 3, 1
	b.VX, b.VY = -1, 0.5

	pxBefore := a.Mass*a.VX + b.Mass*b.VX
	pyBefore := a.Mass*a.VY + b.Mass*b.VY
	keBefore := 0.5*a.Mass*(a.VX*a.VX+a.VY*a.VY) + 0.5*b.Mass*(b.VX*b.VX+b.VY*b.VY)

	if !a.Collide(b) {
		t.Fatal("overlapping bodies should collide")
	}

	pxAfter := a.Mass*a.VX + b.Mass*b.VX
	pyAfter := a.Mass*a.VY + b.Mass*b.VY
	keAfter := 0.5*a.Mass*(a.VX*a.VX+a.VY*a.VY) + 0.5*b.Mass*(b.VX*b.VX+b.VY*b.VY)

	if math.Abs(pxBefore-pxAfter) > 1e-9 || math.Abs(pyBefore-pyAfter) > 1e-9 {
		t.Errorf("momentum not conserved: (%f,%f) -> (%f,%f)", pxBefore, pyBefore, pxAfter, pyAfter)
	}
	if math.Abs(keBefore-keAfter) > 1e-9 {
		t.Errorf("kinetic energy not conserved: %f -> %f", keBefore, keAfter)
	}
}

func TestCollideSkipsDegenerate(t *testing.T) {
	a := New(0, 100, 100, 10)
	b := New(1, 100, 100, 10)
	a.VX = 5

	if a.Collide(b) {
		t.Error("coincident centers must be skipped")
	}
	if a.VX != 5 {
		t.Error("skipped collision must not mutate velocities")
	}

	c := New(2, 200, 100, 10)
	d := New(3, 220, 100, 10)
	if c.Collide(d) {
		t.Error("exactly touching circles do not collide")
	}
}

func TestClampTo(t *testing.T) {
	b := New(0, 500, -20, 15)
	b.VX, b.VY = 3, -4

	b.ClampTo(400, 300)

	if b.X != 385 || b.Y != 15 {
		t.Errorf("expected clamp to (385,15), got (%f,%f)", b.X, b.Y)
	}
	if b.VX != 3 || b.VY != -4 {
		t.Error("clamping must not rescale velocity")
	}
}
