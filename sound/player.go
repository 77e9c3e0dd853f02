// Package sound plays queued cues through ebiten's audio context.
package sound

import (
	"github.com/automoto/slingshot/assets"
	cfg "github.com/automoto/slingshot/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// Player owns the audio context. Only one context may exist per process, so
// a single Player is shared by every round.
type Player struct {
	loader *assets.AudioLoader
	volume float64
	log    *zap.Logger
}

func NewPlayer(log *zap.Logger) *Player {
	ctx := audio.NewContext(cfg.Audio.SampleRate)
	return &Player{
		loader: assets.NewAudioLoader(ctx),
		volume: cfg.Audio.DefaultSFXVol,
		log:    log,
	}
}

// Preload decodes every configured cue. Missing files are logged and skipped.
func (p *Player) Preload() {
	for id, path := range cfg.Sound.SFXPaths {
		if err := p.loader.PreloadSFX(path); err != nil {
			p.log.Warn("sound unavailable", zap.Int("sound", int(id)), zap.Error(err))
		}
	}
}

// Play starts each cue once.
func (p *Player) Play(ids []cfg.SoundID) {
	if p.volume <= 0 {
		return
	}
	for _, id := range ids {
		path, ok := cfg.Sound.SFXPaths[id]
		if !ok {
			continue
		}
		player, err := p.loader.LoadSFX(path)
		if err != nil {
			continue
		}

		volume := p.volume
		if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
			volume *= mult
		}
		if volume > 1 {
			volume = 1
		}
		player.SetVolume(volume)
		player.Play()
	}
}
