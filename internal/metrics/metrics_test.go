package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/bouncelab/internal/world"
)

func snapWith(bodies []world.View, collisions, wallHits int) world.Snapshot {
	return world.Snapshot{Bodies: bodies, Collisions: collisions, WallHits: wallHits}
}

func TestKineticEnergy(t *testing.T) {
	m := NewKineticEnergy()

	// One body, mass 4, speed 2: KE = 0.5*4*4 = 8.
	m.Observe(snapWith([]world.View{{Mass: 4, VX: 2}}, 0, 0), 0)
	// Same body at rest: KE = 0. Mean over two frames is 4.
	m.Observe(snapWith([]world.View{{Mass: 4}}, 0, 0), 1)

	if math.Abs(m.Value()-4) > 1e-12 {
		t.Errorf("expected mean KE 4, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should zero the metric")
	}
}

func TestPeakSpeed(t *testing.T) {
	m := NewPeakSpeed()
	m.Observe(snapWith([]world.View{{VX: 3, VY: 4}, {VX: 1}}, 0, 0), 0)
	m.Observe(snapWith([]world.View{{VX: 2}}, 0, 0), 1)

	if m.Value() != 5 {
		t.Errorf("expected peak 5, got %f", m.Value())
	}
}

func TestCollisionRate(t *testing.T) {
	m := NewCollisionRate()
	m.Observe(snapWith(nil, 3, 0), 0)
	m.Observe(snapWith(nil, 1, 0), 1)

	if m.Value() != 2 {
		t.Errorf("expected rate 2, got %f", m.Value())
	}
}

func TestWallContacts(t *testing.T) {
	m := NewWallContacts()
	m.Observe(snapWith(nil, 0, 2), 0)
	m.Observe(snapWith(nil, 0, 1), 1)

	if m.Value() != 3 {
		t.Errorf("expected 3 contacts, got %f", m.Value())
	}
}

func TestEmptyMetrics(t *testing.T) {
	for _, m := range Defaults() {
		if m.Value() != 0 {
			t.Errorf("%s: expected zero before any observation", m.Name())
		}
	}
}
