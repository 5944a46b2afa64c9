package physics

import (
	"image"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultAttractorSpeed  = 250.0
	DefaultAttractorRadius = 32.0
	DefaultGravity         = int64(1_000_000)
	DefaultMaxGravity      = int64(1_000_000_000)
)

// MoveKeys is the held state of the four steering inputs.
type MoveKeys struct {
	Up, Down, Left, Right bool
}

// --- Attractor ---
type Attractor struct {
	Pos       r2.Vec
	Vel       r2.Vec
	Direction r2.Vec
	Speed     float64

	// Gravity is signed: positive attracts, negative repels, zero is inert.
	Gravity    int64
	MaxGravity int64

	// Radius is the consumption boundary.
	Radius   float64
	Devoured int

	Anchor image.Point
}

func NewAttractor(pos r2.Vec, speed, radius float64, gravity, maxGravity int64) *Attractor {
	return &Attractor{
		Pos:        pos,
		Speed:      speed,
		Radius:     radius,
		Gravity:    gravity,
		MaxGravity: maxGravity,
		Anchor:     anchorOf(pos),
	}
}

// UpdateDirection derives velocity from the current key state only.
// Diagonals are normalized so they are not faster than straight moves.
func (a *Attractor) UpdateDirection(keys MoveKeys) {
	var d r2.Vec
	if keys.Up {
		d.Y--
	}
	if keys.Down {
		d.Y++
	}
	if keys.Left {
		d.X--
	}
	if keys.Right {
		d.X++
	}
	if d.X != 0 || d.Y != 0 {
		d = r2.Unit(d)
	}
	a.Direction = d
	a.Vel = r2.Scale(a.Speed, d)
}

func (a *Attractor) Advance(dt float64) {
	a.Pos = r2.Add(a.Pos, r2.Scale(dt, a.Vel))
	a.Anchor = anchorOf(a.Pos)
}

func (a *Attractor) StepGravityUp() {
	a.Gravity = StepGravityUp(a.Gravity, a.MaxGravity)
}

func (a *Attractor) StepGravityDown() {
	a.Gravity = StepGravityDown(a.Gravity, a.MaxGravity)
}

func (a *Attractor) InvertGravity() {
	a.Gravity = -a.Gravity
}
