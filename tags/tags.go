package tags

import "github.com/yohamta/donburi"

var (
	Projectile = donburi.NewTag().SetName("Projectile")
	Target     = donburi.NewTag().SetName("Target")
	Ground     = donburi.NewTag().SetName("Ground")
	Slingshot  = donburi.NewTag().SetName("Slingshot")
	Effect     = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvTarget     = "target"
	ResolvProjectile = "projectile"
)
