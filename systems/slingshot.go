package systems

import (
	"math"
	"time"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Launcher fires a resting projectile.
type Launcher interface {
	Launch(e *donburi.Entry, direction gamemath.Vec2, force float64) error
}

// SlingshotOptions are the construction-time slingshot settings.
type SlingshotOptions struct {
	MaxDragDistance  float64
	LaunchForce      float64
	SpawnOffset      float64
	RespawnDelay     time.Duration
	ElasticDivider   float64
	ElasticEase      string
	MaxAnimationTime time.Duration
	ProjectileWidth  float64
	ProjectileHeight float64
	ReleaseClips     []cfg.SoundID
}

// SlingshotOptionsFromConfig reads the current package config.
func SlingshotOptionsFromConfig() SlingshotOptions {
	return SlingshotOptions{
		MaxDragDistance:  cfg.Slingshot.MaxDragDistance,
		LaunchForce:      cfg.Slingshot.LaunchForce,
		SpawnOffset:      cfg.Slingshot.SpawnOffset,
		RespawnDelay:     cfg.Slingshot.RespawnDelay,
		ElasticDivider:   cfg.Slingshot.ElasticDivider,
		ElasticEase:      cfg.Slingshot.ElasticEase,
		MaxAnimationTime: cfg.Slingshot.MaxAnimationTime,
		ProjectileWidth:  cfg.Projectile.Width,
		ProjectileHeight: cfg.Projectile.Height,
		ReleaseClips:     cfg.Sound.ElasticReleased,
	}
}

// SlingshotController turns pointer gestures into launches and keeps a
// projectile in the pouch between shots.
//
// A press only starts aiming while a projectile is ready, the press lands in
// the slingshot zone and the round still has a shot to spend. The budget is
// checked again on release; a release with no budget abandons the drag and
// puts the projectile back on its seat.
type SlingshotController struct {
	world     donburi.World
	sling     *donburi.Entry
	opts      SlingshotOptions
	ease      ease.TweenFunc
	budget    ShotBudget
	launcher  Launcher
	audio     Audio
	framing   Framing
	scheduler *Scheduler
	log       *zap.Logger

	respawnTask TaskID
	retractTask TaskID
}

func NewSlingshotController(
	w donburi.World,
	sling *donburi.Entry,
	opts SlingshotOptions,
	budget ShotBudget,
	launcher Launcher,
	audio Audio,
	framing Framing,
	scheduler *Scheduler,
	log *zap.Logger,
) *SlingshotController {
	if log == nil {
		log = zap.NewNop()
	}
	fn, ok := Easing(opts.ElasticEase)
	if !ok && opts.ElasticEase != "" {
		log.Warn("unknown elastic ease, using linear", zap.String("ease", opts.ElasticEase))
	}
	return &SlingshotController{
		world:     w,
		sling:     sling,
		opts:      opts,
		ease:      fn,
		budget:    budget,
		launcher:  launcher,
		audio:     audio,
		framing:   framing,
		scheduler: scheduler,
		log:       log,
	}
}

// Update consumes this frame's pointer sample.
func (c *SlingshotController) Update() {
	pointerEntry, ok := components.Pointer.First(c.world)
	if !ok || !c.sling.Valid() {
		return
	}
	pointer := components.Pointer.Get(pointerEntry)
	s := components.Slingshot.Get(c.sling)

	if pointer.JustPressed() {
		c.press(s, pointer.Cursor)
	}
	if s.Aim != components.AimAiming {
		return
	}
	switch {
	case pointer.Held():
		c.drag(s, pointer.Cursor)
	case pointer.JustReleased():
		c.release(s)
	}
}

func (c *SlingshotController) press(s *components.SlingshotData, cursor gamemath.Vec2) {
	if !s.Enabled || s.Aim == components.AimAiming {
		return
	}
	if s.Cooldown != components.BirdReady || s.Projectile == nil || !s.Projectile.Valid() {
		return
	}
	if cursor.Distance(s.Anchor) > s.ZoneRadius {
		return
	}
	if !c.budget.HasShotBudget() {
		c.log.Debug("press ignored, no shots left")
		return
	}

	// The drag owns the tether from here on.
	c.scheduler.Cancel(c.retractTask)
	c.retractTask = 0

	s.Aim = components.AimAiming
	c.audio.PlayClip(cfg.SoundElasticPulled, s.Projectile)
	c.framing.SetFollowFraming(s.Projectile)
}

func (c *SlingshotController) drag(s *components.SlingshotData, cursor gamemath.Vec2) {
	s.DragPoint = gamemath.ClampDrag(s.Anchor, cursor, c.opts.MaxDragDistance)
	s.Direction = gamemath.LaunchDirection(s.Anchor, s.DragPoint)

	tether := components.Tether.Get(c.sling)
	tether.Pivot = s.DragPoint
	tether.Visible = true

	c.seat(s.Projectile, s.DragPoint, s.Direction)
}

func (c *SlingshotController) release(s *components.SlingshotData) {
	s.Aim = components.AimIdle

	if !c.budget.HasShotBudget() {
		c.abandon(s)
		return
	}

	proj := s.Projectile
	dir := s.Direction
	from := s.DragPoint
	s.Cooldown = components.AwaitingRespawn
	s.Projectile = nil

	if err := c.launcher.Launch(proj, dir, c.opts.LaunchForce); err != nil {
		c.log.Error("launch rejected", zap.Error(err))
		c.respawnTask = c.scheduler.After(c.opts.RespawnDelay, c.SpawnProjectile)
		return
	}
	c.audio.PlayRandomClip(c.opts.ReleaseClips, proj)
	c.budget.OnShotUsed()
	c.retract(s, from)

	if c.budget.HasShotBudget() {
		c.respawnTask = c.scheduler.After(c.opts.RespawnDelay, c.SpawnProjectile)
	}
}

// abandon drops a drag without launching.
func (c *SlingshotController) abandon(s *components.SlingshotData) {
	dir := gamemath.LaunchDirection(s.Anchor, s.Idle)
	tether := components.Tether.Get(c.sling)
	tether.Pivot = s.Idle
	if s.Projectile != nil && s.Projectile.Valid() {
		c.seat(s.Projectile, s.Idle, dir)
	}
	c.framing.SetIdleFraming()
	c.log.Debug("release ignored, no shots left")
}

// retract snaps the tether pivot from the release point back to the anchor.
// It keeps running across a respawn; once it ends with a projectile resting
// in the pouch the pivot moves back to the seat.
func (c *SlingshotController) retract(s *components.SlingshotData, from gamemath.Vec2) {
	c.scheduler.Cancel(c.retractTask)

	seconds := gamemath.RetractSeconds(from.Distance(s.Anchor), c.opts.ElasticDivider)
	seconds = math.Min(seconds, c.opts.MaxAnimationTime.Seconds())
	anchor := s.Anchor
	sling := c.sling

	c.retractTask = Tween(c.scheduler, seconds, c.ease, func(t float64) {
		if !sling.Valid() {
			return
		}
		components.Tether.Get(sling).Pivot = gamemath.Lerp(from, anchor, t)
	}, func() {
		c.retractTask = 0
		if !sling.Valid() {
			return
		}
		state := components.Slingshot.Get(sling)
		if state.Cooldown == components.BirdReady && state.Aim == components.AimIdle {
			components.Tether.Get(sling).Pivot = state.Idle
		}
	})
}

// SpawnProjectile puts a new projectile on the pouch seat facing the anchor.
func (c *SlingshotController) SpawnProjectile() {
	c.respawnTask = 0
	if !c.sling.Valid() {
		return
	}

	s := components.Slingshot.Get(c.sling)
	dir := gamemath.LaunchDirection(s.Anchor, s.Idle)
	pos := gamemath.SeatPosition(s.Idle, dir, c.opts.SpawnOffset)

	tether := components.Tether.Get(c.sling)
	if !c.Retracting() {
		tether.Pivot = s.Idle
	}
	tether.Visible = true

	s.Projectile = factory.CreateProjectile(c.world, pos, dir, c.opts.ProjectileWidth, c.opts.ProjectileHeight)
	s.Cooldown = components.BirdReady
	s.Aim = components.AimIdle
	s.Direction = dir
	s.DragPoint = s.Idle

	c.framing.SetIdleFraming()
	c.log.Debug("projectile spawned", zap.Float64("x", pos.X), zap.Float64("y", pos.Y))
}

// SetInputEnabled turns pointer handling on or off. Disabling mid-drag drops
// the drag.
func (c *SlingshotController) SetInputEnabled(enabled bool) {
	if !c.sling.Valid() {
		return
	}
	s := components.Slingshot.Get(c.sling)
	s.Enabled = enabled
	if !enabled && s.Aim == components.AimAiming {
		s.Aim = components.AimIdle
		c.abandon(s)
	}
}

// RespawnPending reports whether a respawn timer is waiting.
func (c *SlingshotController) RespawnPending() bool {
	return c.scheduler.Active(c.respawnTask)
}

// Retracting reports whether the elastic is still animating.
func (c *SlingshotController) Retracting() bool {
	return c.scheduler.Active(c.retractTask)
}

func (c *SlingshotController) seat(proj *donburi.Entry, dragPoint, dir gamemath.Vec2) {
	MoveObjectCenter(proj, gamemath.SeatPosition(dragPoint, dir, c.opts.SpawnOffset))
	components.Projectile.Get(proj).Facing = dir
}
