package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Direction returns the unit vector from the origin to (dx, dy) and its length.
// A zero vector has no direction and returns (0, 0, 0).
func Direction(dx, dy float64) (nx, ny, dist float64) {
	dist = math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0, 0
	}
	return dx / dist, dy / dist, dist
}

// WrapOutside moves v to the opposite side once it passes margin beyond [0, size].
func WrapOutside(v, size, margin float64) float64 {
	if v < -margin {
		return size + margin
	}
	if v > size+margin {
		return -margin
	}
	return v
}

// SpringParams converts stiffness/damping constants (unit mass) into the
// angular frequency and damping ratio used by harmonica.
func SpringParams(stiffness, damping float64) (angularFrequency, dampingRatio float64) {
	if stiffness <= 0 {
		return 0, 0
	}
	angularFrequency = math.Sqrt(stiffness)
	dampingRatio = damping / (2 * angularFrequency)
	return angularFrequency, dampingRatio
}
