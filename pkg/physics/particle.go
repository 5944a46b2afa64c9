package physics

import (
	"image"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Jitter perturbs the launch direction of new particles.
type Jitter struct {
	Error  float64
	Offset float64
	Rand   *rand.Rand
}

// DefaultJitter launches roughly tangentially with ±0.2 half-turns of spread.
func DefaultJitter(rnd *rand.Rand) Jitter {
	return Jitter{Error: 0.2, Offset: 0.5, Rand: rnd}
}

// --- Particle ---
type Particle struct {
	Pos r2.Vec
	Vel r2.Vec
	Acc r2.Vec

	// Direction and Distance point at the attractor as of the last update.
	Direction r2.Vec
	Distance  float64

	Scale float64
	Alive bool

	Anchor image.Point
}

// NewParticle launches a particle with the speed of a circular orbit at its
// distance, sqrt(|a|·d). Under repulsion the magnitude is taken as 1.
func NewParticle(pos r2.Vec, scale float64, a *Attractor, j Jitter) *Particle {
	p := &Particle{
		Pos:    pos,
		Scale:  scale,
		Alive:  true,
		Anchor: anchorOf(pos),
	}
	p.Acc, p.Direction, p.Distance = Acceleration(pos, a)
	if p.Distance == 0 {
		p.Alive = false
		return p
	}

	mag := accelMagnitude(a.Gravity, p.Distance)
	if a.Gravity < 0 {
		mag = 1
	}
	speed := math.Sqrt(mag * p.Distance)
	dir := JitteredDirection(pos, a.Pos, j.Error, j.Offset, j.Rand)
	p.Vel = r2.Scale(speed, dir)
	return p
}

// Update advances the particle by dt under the given attractor and reports
// whether it is still alive. A particle sitting exactly on the attractor dies
// without moving.
func (p *Particle) Update(dt float64, a *Attractor) bool {
	if !p.Alive {
		return false
	}
	acc, dir, dist := Acceleration(p.Pos, a)
	p.Direction, p.Distance = dir, dist
	if dist == 0 {
		p.Alive = false
		return false
	}
	p.Acc = acc
	p.Pos, p.Vel = IntegrateHalfStep(p.Pos, p.Vel, p.Acc, dt)
	p.Anchor = anchorOf(p.Pos)
	return true
}

// Rescale changes only how the particle is drawn.
func (p *Particle) Rescale(scale float64) {
	p.Scale = scale
}
