// Package demoworld is the minimal fixed-step host behind the demos: a
// handful of bodies bouncing in a box, integrated at a fixed physics
// step so the renderer's sub-step interpolation has something real to
// interpolate. It is demo glue, not a physics core.
package demoworld

import (
	"math"
	"math/rand"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/simview"
)

// DefaultStep is the fixed physics step duration.
const DefaultStep = time.Second / 60

// maxStepsPerTick caps catch-up integration after a stall so a long
// pause does not spiral into thousands of steps.
const maxStepsPerTick = 8

// Body pairs a geometry with its current state, in the shape the
// renderer's frame driver consumes.
type Body struct {
	Geometry simview.Geometry
	State    simview.State
}

// World steps bodies under gravity inside a width x height box, walls
// inclusive. All methods belong to a single goroutine.
type World struct {
	width, height float64
	gravity       float64
	step          time.Duration
	restitution   float64

	bodies []Body

	last        time.Time
	accumulator time.Duration

	fpsEMA   float64
	fpsLast  time.Time
	fpsReady bool
}

// New creates a world spanning width x height world units.
func New(width, height float64) *World {
	return &World{
		width:       width,
		height:      height,
		gravity:     380,
		step:        DefaultStep,
		restitution: 0.82,
	}
}

// SetStep overrides the fixed physics step. Non-positive values are
// ignored.
func (w *World) SetStep(d time.Duration) {
	if d > 0 {
		w.step = d
	}
}

// Step returns the fixed physics step duration.
func (w *World) Step() time.Duration { return w.step }

// Add appends a body.
func (w *World) Add(b Body) { w.bodies = append(w.bodies, b) }

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.bodies) }

// Bodies returns a copy of the body list; states are snapshots of the
// last completed step.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Seed populates n deterministic bodies, alternating circles and boxes,
// from a fixed random seed. Existing bodies are replaced.
func (w *World) Seed(n int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	w.bodies = w.bodies[:0]
	for i := 0; i < n; i++ {
		var g simview.Geometry
		if i%2 == 0 {
			c, err := simview.NewCircle(8 + rng.Float64()*14)
			if err != nil {
				continue
			}
			g = c
		} else {
			hw := 8 + rng.Float64()*12
			hh := 8 + rng.Float64()*12
			p, err := simview.NewConvexPolygon([]gg.Vec2{
				gg.V2(-hw, -hh), gg.V2(hw, -hh), gg.V2(hw, hh), gg.V2(-hw, hh),
			})
			if err != nil {
				continue
			}
			g = p
		}
		w.Add(Body{
			Geometry: g,
			State: simview.State{
				Pos:        gg.V2(w.width*(0.15+0.7*rng.Float64()), w.height*(0.1+0.4*rng.Float64())),
				Vel:        gg.V2(-90+180*rng.Float64(), -40+80*rng.Float64()),
				Angle:      rng.Float64() * 2 * math.Pi,
				AngularVel: -2 + 4*rng.Float64(),
			},
		})
	}
}

// Tick advances the accumulator to now and runs as many fixed steps as
// fit, up to the catch-up cap. It returns the number of steps run (the
// iterations-per-frame metric) and the leftover accumulator as a
// fraction of a step in [0, 1) — the interpolation fraction for this
// frame. The first call only arms the clock and runs nothing.
func (w *World) Tick(now time.Time) (steps int, fraction float64) {
	if w.last.IsZero() {
		w.last = now
		return 0, 0
	}
	w.accumulator += now.Sub(w.last)
	w.last = now

	for w.accumulator >= w.step && steps < maxStepsPerTick {
		w.integrate(w.step.Seconds())
		w.accumulator -= w.step
		steps++
	}
	if steps == maxStepsPerTick && w.accumulator >= w.step {
		// Drop the backlog instead of replaying a stall.
		w.accumulator = w.accumulator % w.step
	}
	return steps, float64(w.accumulator) / float64(w.step)
}

// integrate runs one explicit Euler step with wall bounces.
func (w *World) integrate(dt float64) {
	for i := range w.bodies {
		s := &w.bodies[i].State
		s.Vel.Y += w.gravity * dt
		s.Pos = s.Pos.Add(s.Vel.Mul(dt))
		s.Angle += s.AngularVel * dt

		b := w.bodies[i].Geometry.Bounds()
		r := math.Max(b.HalfW, b.HalfH)
		if s.Pos.X < r {
			s.Pos.X = r
			s.Vel.X = math.Abs(s.Vel.X) * w.restitution
		} else if s.Pos.X > w.width-r {
			s.Pos.X = w.width - r
			s.Vel.X = -math.Abs(s.Vel.X) * w.restitution
		}
		if s.Pos.Y < r {
			s.Pos.Y = r
			s.Vel.Y = math.Abs(s.Vel.Y) * w.restitution
		} else if s.Pos.Y > w.height-r {
			s.Pos.Y = w.height - r
			s.Vel.Y = -math.Abs(s.Vel.Y) * w.restitution
			s.AngularVel *= w.restitution
		}
	}
}

// FPS folds the interval since the previous call into an exponential
// moving average and returns the smoothed frames per second. The first
// call arms the clock and returns 0.
func (w *World) FPS(now time.Time) float64 {
	if !w.fpsReady {
		w.fpsLast = now
		w.fpsReady = true
		return 0
	}
	dt := now.Sub(w.fpsLast).Seconds()
	w.fpsLast = now
	if dt <= 0 {
		return w.fpsEMA
	}
	inst := 1 / dt
	if w.fpsEMA == 0 {
		w.fpsEMA = inst
	} else {
		w.fpsEMA += 0.1 * (inst - w.fpsEMA)
	}
	return w.fpsEMA
}
