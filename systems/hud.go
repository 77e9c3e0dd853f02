package systems

import (
	"github.com/automoto/slingshot/components"
	"github.com/yohamta/donburi"
)

// RoundUI receives shot and round-end feedback.
type RoundUI interface {
	ReportShotUsed(shotIndex int)
	ShowEndScreen(hasNextRound bool)
}

// HUD records round feedback on the world's HUD entity for the renderers.
type HUD struct {
	world donburi.World
}

func NewHUD(w donburi.World) *HUD {
	return &HUD{world: w}
}

// ReportShotUsed greys out the icon for the 1-based shot index.
func (h *HUD) ReportShotUsed(shotIndex int) {
	entry, ok := components.ShotIcons.First(h.world)
	if !ok {
		return
	}
	icons := components.ShotIcons.Get(entry)
	if shotIndex < 1 || shotIndex > len(icons.Used) {
		return
	}
	icons.Used[shotIndex-1] = true
}

func (h *HUD) ShowEndScreen(hasNextRound bool) {
	entry, ok := components.EndScreen.First(h.world)
	if !ok {
		return
	}
	screen := components.EndScreen.Get(entry)
	screen.Visible = true
	screen.HasNext = hasNextRound
}
