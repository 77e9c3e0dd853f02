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

// DrawTargets shades each target from full health to its hurt colour.
func DrawTargets(e *ecs.ECS, screen *ebiten.Image) {
	v := newView(e.World, screen.Bounds().Dx(), screen.Bounds().Dy())
	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		target := components.Target.Get(entry)
		ratio := 1.0
		if target.MaxHealth > 0 {
			ratio = target.Health / target.MaxHealth
		}
		drawRect(screen, v, rectOf(entry), mix(cfg.UI.HurtColor, cfg.UI.TargetColor, ratio))
	})
}

// DrawProjectiles draws each projectile as a disc with a beak along its
// facing direction.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	v := newView(e.World, screen.Bounds().Dx(), screen.Bounds().Dy())
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		r := rectOf(entry)
		if !v.visible(r) {
			return
		}
		proj := components.Projectile.Get(entry)
		center := r.Center()
		radius := (r.W + r.H) / 4

		body := cfg.UI.BirdColor
		if proj.State == components.ProjectileDestroyed {
			body = cfg.Gray
		}
		cx, cy := v.point(center)
		vector.DrawFilledCircle(screen, cx, cy, float32(radius), body, true)

		tip := center.Add(proj.Facing.MulScalar(radius*1.5))
		tx, ty := v.point(tip)
		vector.StrokeLine(screen, cx, cy, tx, ty, 3, cfg.Orange, true)
	})
}

// DrawBursts draws expanding rings for destroyed targets.
func DrawBursts(e *ecs.ECS, screen *ebiten.Image) {
	v := newView(e.World, screen.Bounds().Dx(), screen.Bounds().Dy())
	tags.Effect.Each(e.World, func(entry *donburi.Entry) {
		burst := components.Burst.Get(entry)
		remaining := components.AutoDestroy.Get(entry).FramesRemaining
		progress := 1.0
		if burst.Total > 0 {
			progress = 1 - float64(remaining)/float64(burst.Total)
		}
		center := rectOf(entry).Center()
		cx, cy := v.point(center)

		clr := cfg.UI.BurstColor
		clr.A = uint8(255 * (1 - progress))
		vector.StrokeCircle(screen, cx, cy, float32(burst.Radius*(1+progress)), 2, clr, true)
	})
}

// DrawHitboxes outlines every collision object when hitboxes are enabled.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.UI.ShowHitboxes {
		return
	}
	v := newView(e.World, screen.Bounds().Dx(), screen.Bounds().Dy())
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		r := rectOf(entry)
		if !v.visible(r) {
			return
		}
		x, y := v.point(gamemath.V(r.X, r.Y))
		vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 1, color.RGBA{255, 0, 255, 160}, false)
	})
}

// mix blends from a (t=0) to b (t=1).
func mix(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
