package render

import (
	"fmt"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD draws one icon per shot, greyed once used, and the level name.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	margin := float32(cfg.UI.IconMargin)
	size := float32(cfg.UI.IconSize)
	gap := float32(cfg.UI.IconGap)

	if entry, ok := components.ShotIcons.First(e.World); ok {
		icons := components.ShotIcons.Get(entry)
		for i, used := range icons.Used {
			clr := cfg.UI.IconColor
			if used {
				clr = cfg.UI.UsedIconColor
			}
			x := margin + float32(i)*(size+gap) + size/2
			vector.DrawFilledCircle(screen, x, margin+size/2, size/2, clr, true)
		}
	}

	if entry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(entry)
		label := fmt.Sprintf("%d. %s", level.Index+1, level.Name)
		face := fonts.HUD.Get()
		bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
		x := screen.Bounds().Dx() - bounds.Dx() - int(margin)
		text.Draw(screen, label, face, x, int(margin)+bounds.Dy(), cfg.UI.TextColor) //nolint:staticcheck
	}
}
