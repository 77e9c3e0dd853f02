package components

import (
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileState int

const (
	ProjectileResting ProjectileState = iota
	ProjectileInFlight
	ProjectileDestroyed
)

func (s ProjectileState) String() string {
	switch s {
	case ProjectileResting:
		return "Resting"
	case ProjectileInFlight:
		return "InFlight"
	case ProjectileDestroyed:
		return "Destroyed"
	}
	return "Unknown"
}

type ProjectileData struct {
	State ProjectileState
	// Facing is a unit vector; it tracks velocity while FaceVelocity is set.
	Facing       gamemath.Vec2
	FaceVelocity bool
	// unsubscribe removes the per-step orientation hook.
	Unsubscribe func()
}

var Projectile = donburi.NewComponentType[ProjectileData]()
