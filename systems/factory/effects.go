package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpawnBurst leaves a short-lived ring where something was destroyed. The
// object is never added to the space.
func SpawnBurst(w donburi.World, at gamemath.Vec2, radius float64, frames int) *donburi.Entry {
	burst := archetypes.Burst.Spawn(w)
	components.Object.SetValue(burst, components.ObjectData{
		Object: resolv.NewObject(at.X-radius, at.Y-radius, radius*2, radius*2),
	})
	components.Burst.SetValue(burst, components.BurstData{Radius: radius, Total: frames})
	components.AutoDestroy.SetValue(burst, components.AutoDestroyData{FramesRemaining: frames})
	return burst
}
