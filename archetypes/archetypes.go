package archetypes

import (
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/tags"
	"github.com/yohamta/donburi"
)

var (
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Body,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Object,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Slingshot = newArchetype(
		tags.Slingshot,
		components.Slingshot,
		components.Tether,
	)
	Burst = newArchetype(
		tags.Effect,
		components.Burst,
		components.Object,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Pointer = newArchetype(
		components.Pointer,
	)
	HUD = newArchetype(
		components.ShotIcons,
		components.EndScreen,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
