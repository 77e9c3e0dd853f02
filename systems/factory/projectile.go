package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateProjectile spawns a resting, kinematic body centred on pos. Its object
// stays out of the collision space until launch.
func CreateProjectile(w donburi.World, pos, facing gamemath.Vec2, width, height float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(w)

	obj := resolv.NewObject(pos.X-width/2, pos.Y-height/2, width, height, tags.ResolvProjectile)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	components.Body.SetValue(p, components.BodyData{Kinematic: true})
	components.Projectile.SetValue(p, components.ProjectileData{
		State:  components.ProjectileResting,
		Facing: facing,
	})
	return p
}
