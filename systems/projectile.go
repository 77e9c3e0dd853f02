package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ErrInvalidLaunch is returned when launching a body that is not resting.
var ErrInvalidLaunch = errors.New("invalid launch")

// Projectiles owns the lifecycle of launched bodies: the single launch
// impulse, facing the velocity while in flight and destruction on the first
// impact.
type Projectiles struct {
	physics      Physics
	audio        Audio
	log          *zap.Logger
	lingerFrames int
}

func NewProjectiles(physics Physics, audio Audio, log *zap.Logger, lingerFrames int) *Projectiles {
	if log == nil {
		log = zap.NewNop()
	}
	return &Projectiles{physics: physics, audio: audio, log: log, lingerFrames: lingerFrames}
}

// Launch fires a resting body with an impulse of force along direction.
func (p *Projectiles) Launch(e *donburi.Entry, direction gamemath.Vec2, force float64) error {
	if e == nil || !e.Valid() || !e.HasComponent(components.Projectile) {
		return fmt.Errorf("%w: no projectile", ErrInvalidLaunch)
	}
	proj := components.Projectile.Get(e)
	if proj.State != components.ProjectileResting {
		return fmt.Errorf("%w: projectile is %s", ErrInvalidLaunch, proj.State)
	}

	dir := direction.Normalized()
	p.physics.SetKinematic(e, false)
	p.physics.EnableCollision(e)
	p.physics.ApplyImpulse(e, dir.MulScalar(force))

	proj.State = components.ProjectileInFlight
	proj.FaceVelocity = true
	proj.Unsubscribe = p.physics.OnStep(e, func() { p.faceVelocity(e) })
	p.physics.OnCollisionEnter(e, func(c Collision) { p.onCollision(e, c) })

	p.log.Debug("projectile launched",
		zap.Float64("dir_x", dir.X),
		zap.Float64("dir_y", dir.Y),
		zap.Float64("force", force),
	)
	return nil
}

func (p *Projectiles) faceVelocity(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	proj := components.Projectile.Get(e)
	if proj.State != components.ProjectileInFlight || !proj.FaceVelocity {
		return
	}
	vel := p.physics.Velocity(e)
	if vel.IsZero() {
		return
	}
	proj.Facing = vel.Normalized()
}

func (p *Projectiles) onCollision(e *donburi.Entry, c Collision) {
	proj := components.Projectile.Get(e)
	if proj.State != components.ProjectileInFlight {
		return
	}
	proj.FaceVelocity = false
	if proj.Unsubscribe != nil {
		proj.Unsubscribe()
		proj.Unsubscribe = nil
	}
	p.audio.PlayClip(cfg.SoundProjectileHit, e)
	proj.State = components.ProjectileDestroyed

	donburi.Add(e, components.AutoDestroy, &components.AutoDestroyData{
		FramesRemaining: p.lingerFrames,
	})
	p.log.Debug("projectile destroyed",
		zap.Float64("impact", c.Impact()),
		zap.Bool("out_of_bounds", c.OutOfBounds),
	)
}
