package simulation

import (
	"github.com/dotEntropy/merry-particles/pkg/physics"
	"gonum.org/v1/gonum/spatial/r2"
)

// Input is everything the simulation reads from the player in one tick.
// Held states are levels; the remaining flags and counts are edges seen since
// the previous tick.
type Input struct {
	Move physics.MoveKeys

	Pointer        r2.Vec
	PrimaryHeld    bool
	PrimaryPressed bool
	ScrollUp       int
	ScrollDown     int

	ToggleTrickle bool
	Clear         bool
	GravityUp     bool
	GravityDown   bool
	InvertGravity bool
	Quit          bool
}
