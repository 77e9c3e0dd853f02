package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
)

func CreateSlingshot(w donburi.World, points leveldata.SlingshotPoints, zoneRadius float64) *donburi.Entry {
	sling := archetypes.Slingshot.Spawn(w)
	if points.ZoneRadius > 0 {
		zoneRadius = points.ZoneRadius
	}
	components.Slingshot.SetValue(sling, components.SlingshotData{
		Anchor:     points.Anchor,
		Idle:       points.Idle,
		LeftStart:  points.Left,
		RightStart: points.Right,
		ZoneRadius: zoneRadius,
		Aim:        components.AimIdle,
		Cooldown:   components.AwaitingRespawn,
		Enabled:    true,
	})
	components.Tether.SetValue(sling, components.TetherData{Pivot: points.Idle})
	return sling
}
