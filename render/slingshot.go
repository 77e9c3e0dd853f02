package render

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSlingshot draws the frame and, when visible, the two bands from the
// tether pivot to their start anchors.
func DrawSlingshot(e *ecs.ECS, screen *ebiten.Image) {
	v := newView(e.World, screen.Bounds().Dx(), screen.Bounds().Dy())
	components.Slingshot.Each(e.World, func(entry *donburi.Entry) {
		s := components.Slingshot.Get(entry)
		tether := components.Tether.Get(entry)

		ax, ay := v.point(s.Anchor)
		lx, ly := v.point(s.LeftStart)
		rx, ry := v.point(s.RightStart)
		frame := cfg.Brown
		vector.StrokeLine(screen, ax, ay+40, ax, ay+8, 5, frame, true)
		vector.StrokeLine(screen, ax, ay+8, lx, ly, 4, frame, true)
		vector.StrokeLine(screen, ax, ay+8, rx, ry, 4, frame, true)

		if !tether.Visible {
			return
		}
		px, py := v.point(tether.Pivot)
		width := cfg.UI.TetherWidth
		vector.StrokeLine(screen, px, py, lx, ly, width, cfg.UI.TetherColor, true)
		vector.StrokeLine(screen, px, py, rx, ry, width, cfg.UI.TetherColor, true)
	})
}
