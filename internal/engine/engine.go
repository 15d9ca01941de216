package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/san-kum/bouncelab/internal/metrics"
	"github.com/san-kum/bouncelab/internal/world"
)

// Observer receives the snapshot of every completed frame.
type Observer interface {
	OnStep(snap world.Snapshot, t float64)
}

// Engine drives World.Step once per frame, decoupled from any renderer.
// Step never runs concurrently with itself; pointer and viewport updates
// arriving from other goroutines are serialized through the same mutex, so
// each step reads a fully-formed input snapshot.
type Engine struct {
	mu        sync.Mutex
	w         *world.World
	fps       int
	frame     int
	metrics   []metrics.Metric
	observers []Observer
}

func New(w *world.World, fps int) (*Engine, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	return &Engine{w: w, fps: fps}, nil
}

func (e *Engine) AddMetric(m metrics.Metric) { e.metrics = append(e.metrics, m) }
func (e *Engine) AddObserver(o Observer)     { e.observers = append(e.observers, o) }

// SetPointer forwards a pointer position in viewport coordinates.
func (e *Engine) SetPointer(x, y float64) {
	e.mu.Lock()
	e.w.SetPointer(x, y)
	e.mu.Unlock()
}

// ClearPointer marks the pointer absent.
func (e *Engine) ClearPointer() {
	e.mu.Lock()
	e.w.ClearPointer()
	e.mu.Unlock()
}

// Resize forwards a viewport size change.
func (e *Engine) Resize(width, height float64) {
	e.mu.Lock()
	e.w.Resize(width, height)
	e.mu.Unlock()
}

// Reset respawns the world and rewinds the frame clock. Explicit trigger
// only.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.w.Reset()
	e.frame = 0
	e.mu.Unlock()
}

// Snapshot returns the current world state without stepping.
func (e *Engine) Snapshot() world.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.w.Snapshot()
}

func (e *Engine) step(t float64) world.Snapshot {
	e.mu.Lock()
	e.w.Step()
	snap := e.w.Snapshot()
	e.mu.Unlock()

	for _, m := range e.metrics {
		m.Observe(snap, t)
	}
	for _, o := range e.observers {
		o.OnStep(snap, t)
	}
	return snap
}

// Advance steps a single frame using the engine's own frame counter, for
// callers that drive timing themselves, such as a TUI tick loop.
func (e *Engine) Advance() world.Snapshot {
	t := float64(e.frame) / float64(e.fps)
	snap := e.step(t)
	e.frame++
	return snap
}

// Run steps the world at the configured frame rate until the context is
// canceled. There is no other termination condition; the loop lives as
// long as its host.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(e.fps))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.Advance()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Result holds the frames and accumulated metrics of a bounded run.
type Result struct {
	Snapshots []world.Snapshot
	Times     []float64
	Metrics   map[string]float64
	FPS       int
}

// RunFrames steps the world a fixed number of frames as fast as possible,
// recording every snapshot. Frame timestamps assume the configured rate.
func (e *Engine) RunFrames(ctx context.Context, frames int) (*Result, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("frame count must be positive, got %d", frames)
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	result := &Result{
		Snapshots: make([]world.Snapshot, 0, frames),
		Times:     make([]float64, 0, frames),
		Metrics:   make(map[string]float64),
		FPS:       e.fps,
	}

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := float64(i) / float64(e.fps)
		snap := e.step(t)
		result.Snapshots = append(result.Snapshots, snap)
		result.Times = append(result.Times, t)
	}

	for _, m := range e.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
