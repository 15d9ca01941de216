package world

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bouncelab/internal/body"
)

func testWorld(friction, bounce float64) *World {
	w, err := New(400, 300,
		Tunables{Friction: friction, BounceEnergy: bounce, RepelRadius: 100, RepelForce: 5},
		SpawnParams{Count: 1, MinRadius: 5, MaxRadius: 10, Velocity: 0, RetryLimit: DefaultRetryLimit},
		42)
	Expect(err).NotTo(HaveOccurred())
	return w
}

var _ = Describe("World", func() {
	Describe("configuration validation", func() {
		It("rejects a non-positive body count", func() {
			_, err := New(400, 300, Tunables{Friction: 1, BounceEnergy: 1},
				SpawnParams{Count: 0, MinRadius: 5, MaxRadius: 10, RetryLimit: 1}, 1)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an inverted size range", func() {
			_, err := New(400, 300, Tunables{Friction: 1, BounceEnergy: 1},
				SpawnParams{Count: 3, MinRadius: 10, MaxRadius: 5, RetryLimit: 1}, 1)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a body that cannot fit the viewport", func() {
			_, err := New(100, 100, Tunables{Friction: 1, BounceEnergy: 1},
				SpawnParams{Count: 1, MinRadius: 10, MaxRadius: 60, RetryLimit: 1}, 1)
			Expect(err).To(HaveOccurred())
		})

		It("rejects non-positive friction and bounce", func() {
			_, err := New(400, 300, Tunables{Friction: 0, BounceEnergy: 1},
				SpawnParams{Count: 1, MinRadius: 5, MaxRadius: 10, RetryLimit: 1}, 1)
			Expect(err).To(HaveOccurred())

			_, err = New(400, 300, Tunables{Friction: 1, BounceEnergy: 0},
				SpawnParams{Count: 1, MinRadius: 5, MaxRadius: 10, RetryLimit: 1}, 1)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Step", func() {
		It("reflects a body off the left wall with the bounce factor", func() {
			// One body, radius 20 at (10,150) moving left at 3: after a
			// single frictionless step it sits at x=20 moving right at
			// 3 * bounce.
			w := testWorld(1.0, 1.1)
			b := body.New(0, 10, 150, 20)
			b.VX = -3
			w.bodies = []*body.Body{b}

			w.Step()

			Expect(b.X).To(Equal(20.0))
			Expect(b.VX).To(BeNumerically("~", 3*1.1, 1e-12))
			Expect(b.VY).To(BeZero())
		})

		It("decays speed by exactly the friction factor when nothing else acts", func() {
			w := testWorld(0.95, 1.1)
			b := body.New(0, 200, 150, 10)
			b.VX, b.VY = 2, -1
			w.bodies = []*body.Body{b}
			before := b.Speed()

			w.Step()

			Expect(b.Speed()).To(BeNumerically("~", 0.95*before, 1e-12))
		})

		It("resolves each unordered pair exactly once per frame", func() {
			// Equal-mass head-on overlap swaps velocities. Resolving the
			// pair a second time would swap them straight back.
			w := testWorld(1.0, 1.1)
			a := body.New(0, 190, 150, 10)
			b := body.New(1, 205, 150, 10)
			a.VX, b.VX = 2, -2
			w.bodies = []*body.Body{a, b}

			w.Step()

			Expect(a.VX).To(BeNumerically("~", -2, 1e-9))
			Expect(b.VX).To(BeNumerically("~", 2, 1e-9))
			Expect(w.collisions).To(Equal(1))
		})

		It("keeps every body inside the viewport", func() {
			w, err := New(400, 300,
				Tunables{Friction: 0.999, BounceEnergy: 1.1, RepelRadius: 100, RepelForce: 5},
				SpawnParams{Count: 12, MinRadius: 5, MaxRadius: 15, Velocity: 4, RetryLimit: DefaultRetryLimit},
				7)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 500; i++ {
				w.Step()
			}

			snap := w.Snapshot()
			for _, v := range snap.Bodies {
				Expect(v.X).To(BeNumerically(">=", v.R-1e-9))
				Expect(v.X).To(BeNumerically("<=", 400-v.R+1e-9))
				Expect(v.Y).To(BeNumerically(">=", v.R-1e-9))
				Expect(v.Y).To(BeNumerically("<=", 300-v.R+1e-9))
			}
		})
	})

	Describe("pointer", func() {
		It("pushes bodies away while set and stops when cleared", func() {
			w := testWorld(1.0, 1.1)
			b := body.New(0, 220, 150, 10)
			w.bodies = []*body.Body{b}

			w.SetPointer(200, 150)
			w.Step()
			Expect(b.VX).To(BeNumerically(">", 0))

			vx := b.VX
			w.ClearPointer()
			w.Step()
			Expect(b.VX).To(BeNumerically("~", vx, 1e-12))
		})

		It("applies no repulsion before any pointer signal arrives", func() {
			w := testWorld(1.0, 1.1)
			b := body.New(0, 220, 150, 10)
			w.bodies = []*body.Body{b}

			w.Step()

			Expect(b.VX).To(BeZero())
			Expect(b.VY).To(BeZero())
		})
	})

	Describe("Resize", func() {
		It("clamps stranded bodies and leaves velocity alone", func() {
			w := testWorld(1.0, 1.1)
			b := body.New(0, 380, 280, 15)
			b.VX, b.VY = 2, 3
			w.bodies = []*body.Body{b}

			w.Resize(200, 150)

			Expect(b.X).To(Equal(185.0))
			Expect(b.Y).To(Equal(135.0))
			Expect(b.VX).To(Equal(2.0))
			Expect(b.VY).To(Equal(3.0))
		})

		It("ignores degenerate dimensions", func() {
			w := testWorld(1.0, 1.1)
			w.Resize(0, -5)
			width, height := w.Size()
			Expect(width).To(Equal(400.0))
			Expect(height).To(Equal(300.0))
		})
	})

	Describe("Reset", func() {
		It("respawns the configured population wholesale", func() {
			w, err := New(400, 300,
				Tunables{Friction: 0.99, BounceEnergy: 1.05},
				SpawnParams{Count: 8, MinRadius: 5, MaxRadius: 12, Velocity: 3, RetryLimit: DefaultRetryLimit},
				3)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 50; i++ {
				w.Step()
			}
			w.Reset()

			snap := w.Snapshot()
			Expect(snap.Frame).To(BeZero())
			Expect(snap.Bodies).To(HaveLen(8))
		})
	})

	Describe("Snapshot", func() {
		It("carries stable ids in creation order", func() {
			w, err := New(400, 300,
				Tunables{Friction: 0.99, BounceEnergy: 1.05},
				SpawnParams{Count: 5, MinRadius: 5, MaxRadius: 12, Velocity: 3, RetryLimit: DefaultRetryLimit},
				3)
			Expect(err).NotTo(HaveOccurred())

			snap := w.Snapshot()
			for i, v := range snap.Bodies {
				Expect(v.ID).To(Equal(i))
			}
		})

		It("is detached from live bodies", func() {
			w := testWorld(1.0, 1.1)
			snap := w.Snapshot()
			snap.Bodies[0].X = math.Inf(1)
			Expect(w.bodies[0].X).NotTo(Equal(math.Inf(1)))
		})
	})
})
