package physics

import "gonum.org/v1/gonum/spatial/r2"

// Acceleration returns the inverse-square pull of the attractor on a point at
// pos, together with the unit direction and distance toward the attractor.
// A point sitting on the attractor gets zero vectors and distance 0.
func Acceleration(pos r2.Vec, a *Attractor) (acc, dir r2.Vec, dist float64) {
	dir = Direction(pos, a.Pos)
	dist = Distance(pos, a.Pos)
	if dist == 0 {
		return r2.Vec{}, dir, 0
	}
	return r2.Scale(accelMagnitude(a.Gravity, dist), dir), dir, dist
}

// accelMagnitude is signed: positive pulls toward the attractor.
func accelMagnitude(gravity int64, dist float64) float64 {
	return float64(gravity) / (dist * dist)
}

// --- gravity stepping ---

// StepGravityUp moves gravity one decade toward +cap. Crossing from negative
// to positive always stops at 0.
func StepGravityUp(g, maxGravity int64) int64 {
	switch {
	case g == 0:
		return gravityStep
	case g == -gravityStep:
		return 0
	case g < 0:
		return g / 10
	default:
		return scaleUp(g, maxGravity)
	}
}

// StepGravityDown mirrors StepGravityUp.
func StepGravityDown(g, maxGravity int64) int64 {
	switch {
	case g == 0:
		return -gravityStep
	case g == gravityStep:
		return 0
	case g > 0:
		return g / 10
	default:
		return -scaleUp(-g, maxGravity)
	}
}

const gravityStep = 10

// scaleUp multiplies a positive gravity by ten, saturating at maxGravity.
func scaleUp(g, maxGravity int64) int64 {
	if maxGravity <= 0 {
		maxGravity = DefaultMaxGravity
	}
	if g >= maxGravity/10 {
		return maxGravity
	}
	return g * 10
}
