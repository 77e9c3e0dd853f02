package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/yohamta/donburi"
)

func CreateAudio(w donburi.World) *donburi.Entry {
	return archetypes.Audio.Spawn(w)
}

func CreatePointer(w donburi.World) *donburi.Entry {
	return archetypes.Pointer.Spawn(w)
}

// CreateHUD makes one unused shot icon per shot.
func CreateHUD(w donburi.World, maxShots int) *donburi.Entry {
	hud := archetypes.HUD.Spawn(w)
	components.ShotIcons.SetValue(hud, components.ShotIconsData{Used: make([]bool, maxShots)})
	return hud
}
