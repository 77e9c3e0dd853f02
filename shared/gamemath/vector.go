package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the world-space vector used across the simulation.
type Vec2 = dmath.Vec2

// V is shorthand for building a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// ClampMagnitude shortens v to maxLength when it is longer, keeping its
// direction. Vectors already within range are returned unchanged.
func ClampMagnitude(v Vec2, maxLength float64) Vec2 {
	if maxLength <= 0 {
		return Vec2{}
	}
	l := v.Magnitude()
	if l <= maxLength {
		return v
	}
	return v.MulScalar(maxLength / l)
}

// Lerp interpolates from a to b. t is not clamped so overshooting easing
// curves carry through.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Angle returns the rotation in radians of a facing vector, 0 pointing right.
func Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}
