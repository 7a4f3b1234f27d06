package gamemath

import "math"

// ExplosionVelocityChange returns the velocity delta a body at (bodyX, bodyY)
// receives from an explosion at (originX, originY).
//
// Screen coordinates are used, so "up" is -Y. The push direction is measured
// from the origin shifted down by upwardsModifier, which lifts bodies that sit
// level with the blast. The magnitude falls off linearly with the distance to
// the unshifted origin and is zero outside radius. A non-positive radius
// applies the full force everywhere. Mass is not involved.
func ExplosionVelocityChange(force, originX, originY, radius, upwardsModifier, bodyX, bodyY float64) (dvX, dvY float64) {
	dist := math.Hypot(bodyX-originX, bodyY-originY)

	magnitude := force
	if radius > 0 {
		if dist > radius {
			return 0, 0
		}
		magnitude = force * (1 - dist/radius)
	}

	// Shift the explosion point down (+Y) so the push gains an upward component.
	dirX := bodyX - originX
	dirY := bodyY - (originY + upwardsModifier)
	length := math.Hypot(dirX, dirY)
	if length <= 1e-9 {
		return 0, -magnitude
	}

	return dirX / length * magnitude, dirY / length * magnitude
}
