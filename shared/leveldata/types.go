// Package leveldata provides TMX level and campaign parsing.
// It has no dependencies on ebitengine or resolv.
package leveldata

import "github.com/automoto/slingshot/shared/gamemath"

// Level holds everything a round needs from a TMX file.
type Level struct {
	Name      string
	Width     float64
	Height    float64
	MaxShots  int // 0 means use the configured default
	Slingshot SlingshotPoints
	Targets   []TargetSpawn
	Ground    []gamemath.Rect
}

// SlingshotPoints are the fixed points of the slingshot.
type SlingshotPoints struct {
	Anchor     gamemath.Vec2
	Idle       gamemath.Vec2
	Left       gamemath.Vec2
	Right      gamemath.Vec2
	ZoneRadius float64 // 0 means use the configured default
}

// TargetSpawn places one destructible. Zero health or threshold means use the
// configured default.
type TargetSpawn struct {
	Rect            gamemath.Rect
	MaxHealth       float64
	DamageThreshold float64
}
