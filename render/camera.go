package render

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// view maps world coordinates to the screen around the camera.
type view struct {
	offset gamemath.Vec2
	minX   float64
	maxX   float64
	minY   float64
	maxY   float64
}

func newView(w donburi.World, width, height int) view {
	var cam gamemath.Vec2
	if entry, ok := components.Camera.First(w); ok {
		cam = components.Camera.Get(entry).Position
	}
	halfW, halfH := float64(width)/2, float64(height)/2
	return view{
		offset: gamemath.V(halfW-cam.X, halfH-cam.Y),
		minX:   cam.X - halfW,
		maxX:   cam.X + halfW,
		minY:   cam.Y - halfH,
		maxY:   cam.Y + halfH,
	}
}

func (v view) point(p gamemath.Vec2) (float32, float32) {
	return float32(p.X + v.offset.X), float32(p.Y + v.offset.Y)
}

// visible reports whether a world rect intersects the viewport.
func (v view) visible(r gamemath.Rect) bool {
	const padding = 32.0
	return r.X+r.W >= v.minX-padding && r.X <= v.maxX+padding &&
		r.Y+r.H >= v.minY-padding && r.Y <= v.maxY+padding
}

// ScreenToWorld converts a cursor position to world coordinates for a screen
// of the given size.
func ScreenToWorld(w donburi.World, x, y, width, height int) gamemath.Vec2 {
	v := newView(w, width, height)
	return gamemath.V(float64(x)-v.offset.X, float64(y)-v.offset.Y)
}
