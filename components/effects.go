package components

import "github.com/yohamta/donburi"

// AutoDestroyData marks entities that should be removed after a number of frames
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// BurstData is the expanding ring left where a target died.
type BurstData struct {
	Radius float64
	Total  int // frames
}

var Burst = donburi.NewComponentType[BurstData]()
