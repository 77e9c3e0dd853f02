package systems

import (
	"math/rand/v2"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// SimulationOptions are the per-round inputs that do not come from config.
type SimulationOptions struct {
	Index        int
	HasNextRound bool
	Progression  RoundProgression
	Damage       DamageModel
	Rand         *rand.Rand
	Log          *zap.Logger
}

// Simulation is one round's world with every collaborator wired together.
// It has no rendering or device input; a scene feeds it pointer samples and
// draws its world.
type Simulation struct {
	World donburi.World
	Built factory.Built

	Scheduler   *Scheduler
	Physics     *PhysicsSystem
	Round       *RoundCoordinator
	Slingshot   *SlingshotController
	Projectiles *Projectiles
	Targets     *Targets
	Audio       *AudioQueue
	Framing     *CameraFraming
	HUD         *HUD
}

func NewSimulation(level *leveldata.Level, opts SimulationOptions) *Simulation {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	maxShots := level.MaxShots
	if maxShots <= 0 {
		maxShots = cfg.Round.MaxShots
	}

	w := donburi.NewWorld()
	built := factory.BuildLevel(w, level, opts.Index, maxShots)

	sim := &Simulation{
		World:     w,
		Built:     built,
		Scheduler: NewScheduler(cfg.C.TPS),
		Audio:     NewAudioQueue(w, opts.Rand),
		Framing:   NewCameraFraming(w),
		HUD:       NewHUD(w),
	}

	space := components.Space.Get(built.Space).Space
	bounds := gamemath.Rect{W: level.Width, H: level.Height}
	sim.Physics = NewPhysicsSystem(w, space, bounds, cfg.Physics, cfg.C.TPS)

	sim.Round = NewRoundCoordinator(RoundOptions{
		MaxShots:     maxShots,
		SettleDelay:  cfg.Round.DeathCheckDelay,
		HasNextRound: opts.HasNextRound,
	}, sim.Scheduler, sim.HUD, opts.Progression, log)

	roundLog := log.With(zap.String("round", sim.Round.ID().String()))

	sim.Projectiles = NewProjectiles(sim.Physics, sim.Audio, roundLog,
		int(sim.Scheduler.Frames(cfg.Projectile.Linger)))

	sim.Targets = NewTargets(w, sim.Physics, sim.Round, sim.Audio, roundLog, TargetOptions{
		ImpactScale: cfg.Target.ImpactScale,
		BurstFrames: int(sim.Scheduler.Frames(cfg.Target.DeathBurstTime)),
		Damage:      opts.Damage,
	})
	for _, t := range built.Targets {
		sim.Round.AddTarget(t)
		sim.Targets.Register(t)
	}

	sim.Slingshot = NewSlingshotController(w, built.Slingshot, SlingshotOptionsFromConfig(),
		sim.Round, sim.Projectiles, sim.Audio, sim.Framing, sim.Scheduler, roundLog)
	sim.Round.AttachInput(sim.Slingshot)
	sim.Slingshot.SpawnProjectile()

	log.Info("round started",
		zap.String("round", sim.Round.ID().String()),
		zap.String("level", level.Name),
		zap.Int("index", opts.Index),
		zap.Int("max_shots", maxShots),
		zap.Int("targets", len(built.Targets)),
	)
	return sim
}

// Update advances the round by one frame. Physics runs before the scheduler,
// so a target removed this frame is seen before a settle timer due this frame.
func (s *Simulation) Update() {
	s.Slingshot.Update()
	s.Physics.Update()
	UpdateAutoDestroy(s.World, s.Physics.Remove)
	s.Scheduler.Update()
	UpdateCamera(s.World)
}

// SamplePointer records this frame's pointer state in world coordinates.
func (s *Simulation) SamplePointer(pressed bool, cursor gamemath.Vec2) {
	entry, ok := components.Pointer.First(s.World)
	if !ok {
		return
	}
	components.Pointer.Get(entry).Sample(pressed, cursor)
}
