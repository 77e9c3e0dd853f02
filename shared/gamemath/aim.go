package gamemath

// ClampDrag returns the pulled-back point for a cursor position: the cursor
// itself when it is within maxDistance of the anchor, otherwise the point on
// the circle of radius maxDistance in the cursor's direction.
func ClampDrag(anchor, cursor Vec2, maxDistance float64) Vec2 {
	return anchor.Add(ClampMagnitude(cursor.Sub(anchor), maxDistance))
}

// LaunchDirection points from the pulled-back point toward the anchor.
func LaunchDirection(anchor, dragPoint Vec2) Vec2 {
	return anchor.Sub(dragPoint).Normalized()
}

// SeatPosition returns where a projectile rests in the pouch: offset along
// the launch direction from the drag point.
func SeatPosition(dragPoint, direction Vec2, offset float64) Vec2 {
	return dragPoint.Add(direction.MulScalar(offset))
}

// RetractSeconds is how long the elastic takes to snap back from a release
// point, proportional to the pull distance.
func RetractSeconds(distance, divider float64) float64 {
	if divider <= 0 {
		return 0
	}
	return distance / divider
}
