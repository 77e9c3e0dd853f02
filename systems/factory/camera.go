package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CreateCamera starts the camera on its idle focus.
func CreateCamera(w donburi.World, idleFocus gamemath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Position:  idleFocus,
		IdleFocus: idleFocus,
		Mode:      components.FramingIdle,
	})
	return camera
}
