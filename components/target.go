package components

import "github.com/yohamta/donburi"

// TargetData is a destructible with float health. Dead is set by the first
// damage call that brings Health to zero or below.
type TargetData struct {
	Health          float64
	MaxHealth       float64
	DamageThreshold float64
	Dead            bool
}

var Target = donburi.NewComponentType[TargetData]()
