package components

import "github.com/yohamta/donburi"

// ShotIconsData mirrors the shot budget: one entry per shot, true once used.
type ShotIconsData struct {
	Used []bool
}

var ShotIcons = donburi.NewComponentType[ShotIconsData]()

// EndScreenData drives the round-end overlay.
type EndScreenData struct {
	Visible bool
	HasNext bool
}

var EndScreen = donburi.NewComponentType[EndScreenData]()
