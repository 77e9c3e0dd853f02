package gamemath

// Rect is an axis aligned box with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// IntegrateVelocity advances a velocity by a constant acceleration over dt
// seconds and returns the displacement for the same step (semi-implicit Euler).
func IntegrateVelocity(vel, accel Vec2, dt float64) (newVel, delta Vec2) {
	newVel = vel.Add(accel.MulScalar(dt))
	return newVel, newVel.MulScalar(dt)
}

// ClampSpeed limits the magnitude of a velocity to max. max <= 0 disables the
// limit.
func ClampSpeed(vel Vec2, max float64) Vec2 {
	if max <= 0 {
		return vel
	}
	return ClampMagnitude(vel, max)
}
