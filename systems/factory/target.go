package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateTarget places a static destructible at full health.
func CreateTarget(w donburi.World, r gamemath.Rect, maxHealth, damageThreshold float64) *donburi.Entry {
	target := archetypes.Target.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvTarget)
	obj.Data = target
	components.Object.SetValue(target, components.ObjectData{Object: obj})

	components.Target.SetValue(target, components.TargetData{
		Health:          maxHealth,
		MaxHealth:       maxHealth,
		DamageThreshold: damageThreshold,
	})

	addToSpace(w, obj)
	return target
}
