package physics

import (
	"image"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Direction returns the unit vector pointing from `from` toward `to`.
// Coincident points give the zero vector.
func Direction(from, to r2.Vec) r2.Vec {
	d := r2.Sub(to, from)
	if d.X == 0 && d.Y == 0 {
		return r2.Vec{}
	}
	return r2.Unit(d)
}

// JitteredDirection rotates Direction(from, to) by π·(offset + u·errorMargin),
// u uniform in [-1, 1). An offset of 0.5 is a quarter turn.
func JitteredDirection(from, to r2.Vec, errorMargin, offset float64, rnd *rand.Rand) r2.Vec {
	dir := Direction(from, to)
	if dir.X == 0 && dir.Y == 0 {
		return dir
	}
	turn := offset
	if errorMargin != 0 && rnd != nil {
		turn += (rnd.Float64()*2 - 1) * errorMargin
	}
	if turn == 0 {
		return dir
	}
	return r2.Rotate(dir, math.Pi*turn, r2.Vec{})
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

func anchorOf(v r2.Vec) image.Point {
	return image.Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
