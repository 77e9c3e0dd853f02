package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type FramingMode int

const (
	FramingIdle FramingMode = iota
	FramingFollow
)

type CameraData struct {
	Position  math.Vec2
	IdleFocus math.Vec2
	Mode      FramingMode
	Follow    *donburi.Entry
}

var Camera = donburi.NewComponentType[CameraData]()
