package physics

import "gonum.org/v1/gonum/spatial/r2"

// IntegrateHalfStep advances a point by dt: half a velocity kick, a drift on
// the kicked velocity, then the second half kick with the same acceleration.
func IntegrateHalfStep(pos, vel, acc r2.Vec, dt float64) (r2.Vec, r2.Vec) {
	kick := r2.Scale(0.5*dt, acc)
	vel = r2.Add(vel, kick)
	pos = r2.Add(pos, r2.Scale(dt, vel))
	vel = r2.Add(vel, kick)
	return pos, vel
}
