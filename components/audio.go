package components

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued sound effects (singleton component). The playback
// side drains PendingSFX once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
