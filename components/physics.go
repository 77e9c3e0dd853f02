package components

import (
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// BodyData is the rigid-body state integrated by the physics system.
// Kinematic bodies are moved by game code only; dynamic bodies fall under
// gravity and report collisions.
type BodyData struct {
	Velocity  gamemath.Vec2
	Kinematic bool
	// Stopped is set once a dynamic body has come to rest against something.
	Stopped bool
}

var Body = donburi.NewComponentType[BodyData]()
