package systems

import (
	"math"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Framing switches what the camera looks at.
type Framing interface {
	SetIdleFraming()
	SetFollowFraming(target *donburi.Entry)
}

// CameraFraming drives the world's camera entity.
type CameraFraming struct {
	world donburi.World
}

func NewCameraFraming(w donburi.World) *CameraFraming {
	return &CameraFraming{world: w}
}

func (f *CameraFraming) SetIdleFraming() {
	if camera, ok := f.camera(); ok {
		camera.Mode = components.FramingIdle
		camera.Follow = nil
	}
}

func (f *CameraFraming) SetFollowFraming(target *donburi.Entry) {
	if camera, ok := f.camera(); ok {
		camera.Mode = components.FramingFollow
		camera.Follow = target
	}
}

func (f *CameraFraming) camera() (*components.CameraData, bool) {
	entry, ok := components.Camera.First(f.world)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// UpdateCamera eases the camera toward its focus and keeps the view inside
// the level.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	target := camera.IdleFocus
	smoothing := config.Camera.IdleSmoothing
	if camera.Mode == components.FramingFollow {
		// A followed body that is gone leaves the camera where it is.
		if camera.Follow == nil || !camera.Follow.Valid() || !camera.Follow.HasComponent(components.Object) {
			return
		}
		target = ObjectCenter(camera.Follow)
		smoothing = config.Camera.FollowSmoothing
	}

	if levelEntry, ok := components.Level.First(w); ok {
		level := components.Level.Get(levelEntry)
		target = clampToLevel(target, level)
	}

	camera.Position = gamemath.Lerp(camera.Position, target, smoothing)
}

func clampToLevel(p gamemath.Vec2, level *components.LevelData) gamemath.Vec2 {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2

	minX, maxX := halfW, level.Width-halfW
	minY, maxY := halfH, level.Height-halfH
	if maxX < minX {
		minX, maxX = level.Width/2, level.Width/2
	}
	if maxY < minY {
		minY, maxY = level.Height/2, level.Height/2
	}
	return gamemath.V(math.Max(minX, math.Min(maxX, p.X)), math.Max(minY, math.Min(maxY, p.Y)))
}
