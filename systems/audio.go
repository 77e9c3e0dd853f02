package systems

import (
	"math/rand/v2"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/yohamta/donburi"
)

// Audio plays fire-and-forget cues. source is the entity the cue belongs to
// and may be nil.
type Audio interface {
	PlayClip(id cfg.SoundID, source *donburi.Entry)
	PlayRandomClip(ids []cfg.SoundID, source *donburi.Entry)
}

// AudioQueue queues cues on the world's audio entity for the playback side
// to drain.
type AudioQueue struct {
	world donburi.World
	rng   *rand.Rand
}

func NewAudioQueue(w donburi.World, rng *rand.Rand) *AudioQueue {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AudioQueue{world: w, rng: rng}
}

func (a *AudioQueue) PlayClip(id cfg.SoundID, _ *donburi.Entry) {
	if id == cfg.SoundNone {
		return
	}
	entry, ok := components.Audio.First(a.world)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, id)
}

func (a *AudioQueue) PlayRandomClip(ids []cfg.SoundID, source *donburi.Entry) {
	if len(ids) == 0 {
		return
	}
	a.PlayClip(ids[a.rng.IntN(len(ids))], source)
}

// DrainSFX empties the queue and returns what was in it.
func DrainSFX(w donburi.World) []cfg.SoundID {
	entry, ok := components.Audio.First(w)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	pending := audio.PendingSFX
	audio.PendingSFX = nil
	return pending
}
