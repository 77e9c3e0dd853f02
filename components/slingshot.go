package components

import (
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

type AimState int

const (
	AimIdle AimState = iota
	AimAiming
)

type CooldownState int

const (
	BirdReady CooldownState = iota
	AwaitingRespawn
)

// SlingshotData holds the fixed slingshot geometry and the aim state machine.
type SlingshotData struct {
	Anchor     gamemath.Vec2 // launch centre
	Idle       gamemath.Vec2 // pouch rest position
	LeftStart  gamemath.Vec2 // left band attachment
	RightStart gamemath.Vec2 // right band attachment
	ZoneRadius float64

	Aim      AimState
	Cooldown CooldownState
	Enabled  bool

	DragPoint gamemath.Vec2
	Direction gamemath.Vec2

	// Projectile is the body sitting in the pouch, nil while awaiting respawn.
	Projectile *donburi.Entry
}

// TetherData is the pair of elastic bands, both drawn from Pivot to the
// slingshot's start anchors.
type TetherData struct {
	Pivot   gamemath.Vec2
	Visible bool
}

var Slingshot = donburi.NewComponentType[SlingshotData]()
var Tether = donburi.NewComponentType[TetherData]()
