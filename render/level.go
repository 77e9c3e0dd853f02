package render

import (
	"image/color"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills the sky and draws the ground solids.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)

	v := newView(e.World, screen.Bounds().Dx(), screen.Bounds().Dy())
	tags.Ground.Each(e.World, func(entry *donburi.Entry) {
		drawRect(screen, v, rectOf(entry), cfg.UI.GroundColor)
	})
}

func rectOf(entry *donburi.Entry) gamemath.Rect {
	o := components.Object.Get(entry).Object
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func drawRect(screen *ebiten.Image, v view, r gamemath.Rect, clr color.Color) {
	if !v.visible(r) {
		return
	}
	x, y := v.point(gamemath.V(r.X, r.Y))
	vector.DrawFilledRect(screen, x, y, float32(r.W), float32(r.H), clr, false)
}
