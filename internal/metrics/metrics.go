package metrics

import (
	"github.com/san-kum/bouncelab/internal/world"
)

// Metric accumulates one scalar over a run by observing per-frame
// snapshots.
type Metric interface {
	Name() string
	Observe(snap world.Snapshot, t float64)
	Value() float64
	Reset()
}

// KineticEnergy tracks the mean total kinetic energy per frame.
type KineticEnergy struct {
	samples int
	total   float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(snap world.Snapshot, t float64) {
	k.total += snap.KineticEnergy()
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// PeakSpeed tracks the fastest body speed seen over the run.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(snap world.Snapshot, t float64) {
	if sp := snap.PeakSpeed(); sp > p.peak {
		p.peak = sp
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }

// CollisionRate tracks the mean number of pair collisions per frame.
type CollisionRate struct {
	samples int
	total   int
}

func NewCollisionRate() *CollisionRate { return &CollisionRate{} }

func (c *CollisionRate) Name() string { return "collision_rate" }

func (c *CollisionRate) Observe(snap world.Snapshot, t float64) {
	c.total += snap.Collisions
	c.samples++
}

func (c *CollisionRate) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples)
}

func (c *CollisionRate) Reset() {
	c.total = 0
	c.samples = 0
}

// WallContacts counts bodies touching a wall, summed over the run.
type WallContacts struct {
	total int
}

func NewWallContacts() *WallContacts { return &WallContacts{} }

func (w *WallContacts) Name() string { return "wall_contacts" }

func (w *WallContacts) Observe(snap world.Snapshot, t float64) {
	w.total += snap.WallHits
}

func (w *WallContacts) Value() float64 { return float64(w.total) }

func (w *WallContacts) Reset() { w.total = 0 }

// Defaults returns the metric set attached to every run.
func Defaults() []Metric {
	return []Metric{
		NewKineticEnergy(),
		NewPeakSpeed(),
		NewCollisionRate(),
		NewWallContacts(),
	}
}
