package scenes

import (
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/sound"
	"github.com/automoto/slingshot/systems"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const layerDefault ecs.LayerID = 0

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is what outlives a single round: the campaign, the audio device,
// the damage model and the logger.
type Session struct {
	Campaign *leveldata.Campaign
	Damage   systems.DamageModel
	Sound    *sound.Player
	Log      *zap.Logger
}
