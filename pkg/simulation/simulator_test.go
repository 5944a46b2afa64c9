package simulation

import (
	"errors"
	"math"
	"testing"

	"github.com/dotEntropy/merry-particles/pkg/physics"
	"gonum.org/v1/gonum/spatial/r2"
)

func newTestSimulator() *Simulator {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return NewSimulator(cfg, r2.Vec{X: 640, Y: 360})
}

var farPointer = r2.Vec{X: 1000, Y: 100}

func TestTrickleSpawnsEveryTickWhileHeld(t *testing.T) {
	s := newTestSimulator()
	if err := s.Tick(0.016, Input{ToggleTrickle: true}); err != nil {
		t.Fatal(err)
	}
	if !s.Trickle {
		t.Fatal("trickle not enabled")
	}

	for i := 0; i < 5; i++ {
		in := Input{Pointer: farPointer, PrimaryHeld: true, PrimaryPressed: i == 0}
		if err := s.Tick(0.016, in); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Population.Len(); got != 5 {
		t.Fatalf("trickle on: spawned %d, want 5", got)
	}
}

func TestSingleSpawnPerPressWithoutTrickle(t *testing.T) {
	s := newTestSimulator()
	for i := 0; i < 5; i++ {
		in := Input{Pointer: farPointer, PrimaryHeld: true, PrimaryPressed: i == 0}
		if err := s.Tick(0.016, in); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Population.Len(); got != 1 {
		t.Fatalf("trickle off: spawned %d, want 1", got)
	}
}

func TestSpawnUsesCurrentScale(t *testing.T) {
	s := newTestSimulator()
	s.Tick(0.016, Input{ScrollUp: 3})
	s.Tick(0.016, Input{Pointer: farPointer, PrimaryPressed: true})
	pts := s.Population.Particles()
	if len(pts) != 1 || pts[0].Scale != 0.2 {
		t.Fatalf("spawned %d particles, scale %v; want one at 0.2", len(pts), pts)
	}
}

func TestSpawnScaleClamped(t *testing.T) {
	s := newTestSimulator()
	s.Tick(0.016, Input{ScrollDown: 4})
	if s.SpawnScale != MinSpawnScale {
		t.Fatalf("scale = %f, want %f", s.SpawnScale, MinSpawnScale)
	}
	for i := 0; i < 25; i++ {
		s.Tick(0.016, Input{ScrollUp: 1})
	}
	if s.SpawnScale != MaxSpawnScale {
		t.Fatalf("scale = %f, want %f", s.SpawnScale, MaxSpawnScale)
	}
	s.Tick(0.016, Input{ScrollUp: 1})
	if s.SpawnScale != MaxSpawnScale {
		t.Fatalf("scroll up at max gave %f", s.SpawnScale)
	}
	s.Tick(0.016, Input{ScrollDown: 1})
	if s.SpawnScale != 0.95 {
		t.Fatalf("scale = %f, want 0.95", s.SpawnScale)
	}
}

func TestScrollRescalesLiveParticles(t *testing.T) {
	s := newTestSimulator()
	s.Spawn(farPointer)
	s.Spawn(r2.Vec{X: 100, Y: 600})
	s.Tick(0.016, Input{ScrollUp: 2})
	for _, p := range s.Population.Particles() {
		if p.Scale != 0.15 {
			t.Fatalf("live particle scale = %f, want 0.15", p.Scale)
		}
	}
}

func TestClampScale(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, MinSpawnScale},
		{-3, MinSpawnScale},
		{0.05 + 0.05 + 0.05, 0.15},
		{0.333, 0.33},
		{1.0000001, 1},
		{7, MaxSpawnScale},
		{math.NaN(), MinSpawnScale},
	}
	for _, tt := range tests {
		if got := ClampScale(tt.in); got != tt.want {
			t.Errorf("ClampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGravityCommands(t *testing.T) {
	s := newTestSimulator()
	s.Attractor.Gravity = 10

	s.Tick(0, Input{GravityDown: true})
	if s.Attractor.Gravity != 0 {
		t.Fatalf("gravity = %d, want 0", s.Attractor.Gravity)
	}
	s.Tick(0, Input{GravityDown: true})
	s.Tick(0, Input{GravityDown: true})
	if s.Attractor.Gravity != -100 {
		t.Fatalf("gravity = %d, want -100", s.Attractor.Gravity)
	}
	s.Tick(0, Input{InvertGravity: true})
	if s.Attractor.Gravity != 100 {
		t.Fatalf("gravity = %d, want 100", s.Attractor.Gravity)
	}
	s.Tick(0, Input{GravityUp: true})
	if s.Attractor.Gravity != 1000 {
		t.Fatalf("gravity = %d, want 1000", s.Attractor.Gravity)
	}
}

func TestClearCommand(t *testing.T) {
	s := newTestSimulator()
	for i := 0; i < 20; i++ {
		s.Spawn(r2.Vec{X: float64(10 + i), Y: 10})
	}
	s.Tick(0.016, Input{Clear: true})
	if s.Population.Len() != 0 {
		t.Fatalf("population = %d after clear, want 0", s.Population.Len())
	}
}

func TestQuitIsImmediate(t *testing.T) {
	s := newTestSimulator()
	s.Spawn(farPointer)
	before := s.Population.Particles()[0].Pos

	err := s.Tick(0.016, Input{Quit: true, Clear: true})
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
	if s.Population.Len() != 1 || s.Population.Particles()[0].Pos != before {
		t.Fatal("quit tick still ran the frame")
	}
}

func TestTickMovesAttractor(t *testing.T) {
	s := newTestSimulator()
	start := s.Attractor.Pos
	s.Tick(0.1, Input{Move: physics.MoveKeys{Left: true}})
	want := start.X - physics.DefaultAttractorSpeed*0.1
	if math.Abs(s.Attractor.Pos.X-want) > 1e-9 || s.Attractor.Pos.Y != start.Y {
		t.Fatalf("attractor at %v, want {%f %f}", s.Attractor.Pos, want, start.Y)
	}
	s.Tick(0.1, Input{})
	if math.Abs(s.Attractor.Pos.X-want) > 1e-9 {
		t.Fatal("attractor kept moving after keys were released")
	}
}

func TestTickDegenerateDt(t *testing.T) {
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1), 5} {
		s := newTestSimulator()
		p := s.Spawn(farPointer)
		if err := s.Tick(dt, Input{}); err != nil {
			t.Fatalf("dt=%v: %v", dt, err)
		}
		if math.IsNaN(p.Pos.X) || math.IsNaN(p.Pos.Y) {
			t.Fatalf("dt=%v produced NaN position", dt)
		}
	}
}

func TestDevourListener(t *testing.T) {
	s := newTestSimulator()
	var heard []int
	s.OnDevour = func(n int) { heard = append(heard, n) }

	c := s.Attractor.Pos
	s.Spawn(r2.Add(c, r2.Vec{X: 5}))
	s.Spawn(r2.Add(c, r2.Vec{Y: 10}))
	s.Spawn(r2.Add(c, r2.Vec{X: 300}))

	s.Tick(0, Input{})
	if len(heard) != 1 || heard[0] != 2 {
		t.Fatalf("devour notifications = %v, want [2]", heard)
	}
	if st := s.Stats(); st.Devoured != 2 || st.Particles != 1 {
		t.Fatalf("stats = %+v, want 2 devoured, 1 live", st)
	}

	s.Tick(0, Input{})
	if len(heard) != 1 {
		t.Fatalf("listener called without devouring: %v", heard)
	}
}

func TestHUDLines(t *testing.T) {
	s := newTestSimulator()
	s.Spawn(farPointer)
	lines := s.HUDLines()
	want := []string{
		"Particles Devoured: 0",
		"Gravity: 1000000",
		"Number of Particles: 1",
		"Particle Scale: 0.05x",
		"Spray: off",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if len(lines) != len(want)+1+len(controlHints) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want)+1+len(controlHints))
	}
}
