package systems

import (
	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// TargetObserver is told about a target before it is torn down.
type TargetObserver interface {
	OnTargetRemoved(e *donburi.Entry)
}

// DamageModel turns an impact above a target's threshold into damage.
type DamageModel interface {
	Damage(impact, threshold float64) float64
}

// ImpactDamage deals damage equal to the impact.
type ImpactDamage struct{}

func (ImpactDamage) Damage(impact, _ float64) float64 {
	return impact
}

// TargetOptions configures the Targets system.
type TargetOptions struct {
	// ImpactScale converts relative speed in px/s into impact units.
	ImpactScale float64
	BurstFrames int
	Damage      DamageModel
}

// Targets applies damage to destructibles and tears them down on death.
type Targets struct {
	world    donburi.World
	physics  Physics
	observer TargetObserver
	audio    Audio
	log      *zap.Logger
	opts     TargetOptions
}

func NewTargets(w donburi.World, physics Physics, observer TargetObserver, audio Audio, log *zap.Logger, opts TargetOptions) *Targets {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Damage == nil {
		opts.Damage = ImpactDamage{}
	}
	if opts.ImpactScale <= 0 {
		opts.ImpactScale = 1
	}
	return &Targets{
		world:    w,
		physics:  physics,
		observer: observer,
		audio:    audio,
		log:      log,
		opts:     opts,
	}
}

// Register subscribes the target to collision events.
func (t *Targets) Register(e *donburi.Entry) {
	t.physics.OnCollisionEnter(e, func(c Collision) { t.OnCollision(e, c) })
}

// OnCollision damages the target when the impact exceeds its threshold.
// Softer hits are absorbed.
func (t *Targets) OnCollision(e *donburi.Entry, c Collision) {
	if !e.Valid() {
		return
	}
	target := components.Target.Get(e)
	impact := c.Impact() * t.opts.ImpactScale
	if impact <= target.DamageThreshold {
		return
	}
	t.ApplyDamage(e, t.opts.Damage.Damage(impact, target.DamageThreshold))
}

// ApplyDamage lowers health and kills the target the first time it reaches
// zero. It reports whether this call killed it.
func (t *Targets) ApplyDamage(e *donburi.Entry, amount float64) bool {
	if e == nil || !e.Valid() {
		return false
	}
	target := components.Target.Get(e)
	if target.Dead {
		return false
	}
	if amount > 0 {
		target.Health -= amount
	}
	if target.Health > 0 {
		return false
	}
	target.Dead = true
	t.die(e)
	return true
}

func (t *Targets) die(e *donburi.Entry) {
	t.observer.OnTargetRemoved(e)

	center := ObjectCenter(e)
	obj := components.Object.Get(e)
	factory.SpawnBurst(t.world, center, (obj.W+obj.H)/4, t.opts.BurstFrames)
	t.audio.PlayClip(cfg.SoundTargetDeath, nil)

	t.log.Debug("target destroyed", zap.Float64("x", center.X), zap.Float64("y", center.Y))
	t.physics.Remove(e)
}
