package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/dotEntropy/merry-particles/pkg/physics"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrQuit is returned by Tick once the player asks to leave.
var ErrQuit = errors.New("simulation: quit requested")

// --- Simulator ---
type Simulator struct {
	Name       string
	Attractor  *physics.Attractor
	Population *Population

	// SpawnScale applies to new particles and, when changed, to live ones.
	SpawnScale float64
	// Trickle spawns every tick while the primary button is held; otherwise
	// one particle per press.
	Trickle bool

	// OnDevour is called after a tick that consumed n > 0 particles.
	OnDevour func(n int)
}

// Stats is a snapshot for the HUD.
type Stats struct {
	Devoured   int
	Gravity    int64
	Particles  int
	SpawnScale float64
	Trickle    bool
}

// NewSimulator places the attractor at center.
func NewSimulator(cfg Config, center r2.Vec) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rnd := rand.New(rand.NewSource(seed))

	pop := NewPopulation(rnd)
	pop.SetJitter(physics.Jitter{
		Error:  cfg.Particles.JitterError,
		Offset: cfg.Particles.JitterOffset,
		Rand:   rnd,
	})

	return &Simulator{
		Name: cfg.Name,
		Attractor: physics.NewAttractor(
			center,
			cfg.Attractor.Speed,
			cfg.Attractor.Radius,
			cfg.Attractor.Gravity,
			cfg.Attractor.MaxGravity,
		),
		Population: pop,
		SpawnScale: ClampScale(cfg.Particles.Scale),
		Trickle:    cfg.Particles.Trickle,
	}
}

// Tick runs one frame: input, physics over dt, consumption.
func (s *Simulator) Tick(dt float64, in Input) error {
	if in.Quit {
		return ErrQuit
	}
	dt = sanitizeDt(dt)

	s.Attractor.UpdateDirection(in.Move)
	s.handleSpawn(in)
	s.handleCommands(in)

	s.Population.UpdateAll(dt, s.Attractor)
	s.Attractor.Advance(dt)
	if n := s.Population.ConsumptionPass(s.Attractor); n > 0 && s.OnDevour != nil {
		s.OnDevour(n)
	}
	return nil
}

func (s *Simulator) handleSpawn(in Input) {
	if (s.Trickle && in.PrimaryHeld) || (!s.Trickle && in.PrimaryPressed) {
		s.Spawn(in.Pointer)
	}
}

func (s *Simulator) handleCommands(in Input) {
	if in.ToggleTrickle {
		s.Trickle = !s.Trickle
	}
	if in.Clear {
		s.Population.ClearAll()
	}
	if in.GravityUp {
		s.Attractor.StepGravityUp()
	}
	if in.GravityDown {
		s.Attractor.StepGravityDown()
	}
	if in.InvertGravity {
		s.Attractor.InvertGravity()
	}
	for i := 0; i < in.ScrollUp; i++ {
		s.SetSpawnScale(s.SpawnScale + SpawnScaleStep)
	}
	for i := 0; i < in.ScrollDown; i++ {
		s.SetSpawnScale(s.SpawnScale - SpawnScaleStep)
	}
}

func (s *Simulator) Spawn(pos r2.Vec) *physics.Particle {
	return s.Population.Spawn(pos, s.SpawnScale, s.Attractor)
}

// SetSpawnScale clamps scale and rescales every live particle to it.
func (s *Simulator) SetSpawnScale(scale float64) {
	s.SpawnScale = ClampScale(scale)
	s.Population.RescaleAll(s.SpawnScale)
}

func (s *Simulator) Stats() Stats {
	return Stats{
		Devoured:   s.Attractor.Devoured,
		Gravity:    s.Attractor.Gravity,
		Particles:  s.Population.Len(),
		SpawnScale: s.SpawnScale,
		Trickle:    s.Trickle,
	}
}

var controlHints = []string{
	"[WASD] Move Black Hole",
	"[UP/DOWN] Gravity Up/Down",
	"[N] Invert Gravity",
	"[T] Toggle Spray",
	"[SCRL UP] Scale Up Particles",
	"[SCRL DOWN] Scale Down Particles",
	"[SPACE] Clear Particles",
	"[ESC] Quit",
}

func (s *Simulator) HUDLines() []string {
	st := s.Stats()
	spray := "off"
	if st.Trickle {
		spray = "on"
	}
	lines := []string{
		fmt.Sprintf("Particles Devoured: %d", st.Devoured),
		fmt.Sprintf("Gravity: %d", st.Gravity),
		fmt.Sprintf("Number of Particles: %d", st.Particles),
		"Particle Scale: " + strconv.FormatFloat(st.SpawnScale, 'f', -1, 64) + "x",
		"Spray: " + spray,
		"",
	}
	return append(lines, controlHints...)
}

// ClampScale rounds to two decimals and clamps to the spawn scale range.
func ClampScale(scale float64) float64 {
	if math.IsNaN(scale) {
		return MinSpawnScale
	}
	scale = math.Round(scale*100) / 100
	return math.Min(math.Max(scale, MinSpawnScale), MaxSpawnScale)
}

// sanitizeDt maps unusable frame times to 0; large ones pass through.
func sanitizeDt(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}
