package simulation

import (
	"math/rand"

	"github.com/dotEntropy/merry-particles/pkg/physics"
	"gonum.org/v1/gonum/spatial/r2"
)

// Population owns every live particle. Order is not significant and the size
// is not capped.
type Population struct {
	particles []*physics.Particle
	jitter    physics.Jitter
}

func NewPopulation(rnd *rand.Rand) *Population {
	return &Population{jitter: physics.DefaultJitter(rnd)}
}

// SetJitter replaces the launch jitter used by later spawns.
func (p *Population) SetJitter(j physics.Jitter) {
	p.jitter = j
}

func (p *Population) Spawn(pos r2.Vec, scale float64, a *physics.Attractor) *physics.Particle {
	pt := physics.NewParticle(pos, scale, a, p.jitter)
	p.particles = append(p.particles, pt)
	return pt
}

// UpdateAll advances every particle, then drops the ones that died during the
// pass. It returns how many were dropped.
func (p *Population) UpdateAll(dt float64, a *physics.Attractor) int {
	for _, pt := range p.particles {
		pt.Update(dt, a)
	}
	return p.compact(func(pt *physics.Particle) bool { return pt.Alive })
}

// ConsumptionPass removes every particle inside the attractor radius and
// credits the attractor once per removal.
func (p *Population) ConsumptionPass(a *physics.Attractor) int {
	n := p.compact(func(pt *physics.Particle) bool {
		return pt.Distance-a.Radius > 0
	})
	a.Devoured += n
	return n
}

func (p *Population) ClearAll() {
	clear(p.particles)
	p.particles = p.particles[:0]
}

func (p *Population) RescaleAll(scale float64) {
	for _, pt := range p.particles {
		pt.Rescale(scale)
	}
}

func (p *Population) Len() int {
	return len(p.particles)
}

// Particles is a view for drawing; callers must not keep it across ticks.
func (p *Population) Particles() []*physics.Particle {
	return p.particles
}

// compact keeps the particles for which keep reports true and returns how
// many were removed.
func (p *Population) compact(keep func(*physics.Particle) bool) int {
	kept := p.particles[:0]
	for _, pt := range p.particles {
		if keep(pt) {
			kept = append(kept, pt)
		}
	}
	removed := len(p.particles) - len(kept)
	clear(p.particles[len(kept):])
	p.particles = kept
	return removed
}
