package systems

import (
	"time"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

type Outcome int

const (
	OutcomeLive Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLive:
		return "Live"
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	}
	return "Unknown"
}

// ShotBudget is the gate the slingshot consults at release time.
type ShotBudget interface {
	HasShotBudget() bool
	OnShotUsed()
}

// RoundProgression reloads or advances the round.
type RoundProgression interface {
	RestartRound()
	LoadNextRound()
}

// InputToggle turns player input on or off.
type InputToggle interface {
	SetInputEnabled(enabled bool)
}

// RoundOptions configures a RoundCoordinator.
type RoundOptions struct {
	MaxShots     int
	SettleDelay  time.Duration
	HasNextRound bool
}

// RoundCoordinator owns the shot budget and the set of live targets and
// decides the outcome. The outcome only ever moves away from Live once, so
// the round-end side effects run exactly once.
type RoundCoordinator struct {
	id   uuid.UUID
	opts RoundOptions

	shotsUsed   int
	liveTargets map[donburi.Entity]struct{}
	outcome     Outcome
	settleTask  TaskID

	scheduler   *Scheduler
	ui          RoundUI
	progression RoundProgression
	input       InputToggle
	log         *zap.Logger
}

func NewRoundCoordinator(opts RoundOptions, scheduler *Scheduler, ui RoundUI, progression RoundProgression, log *zap.Logger) *RoundCoordinator {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxShots < 0 {
		opts.MaxShots = 0
	}
	id := uuid.New()
	return &RoundCoordinator{
		id:          id,
		opts:        opts,
		liveTargets: make(map[donburi.Entity]struct{}),
		scheduler:   scheduler,
		ui:          ui,
		progression: progression,
		log:         log.With(zap.String("round", id.String())),
	}
}

// AttachInput sets the input that is switched off when the round is won.
func (r *RoundCoordinator) AttachInput(input InputToggle) {
	r.input = input
}

// AddTarget registers a live target. Only used while the round is set up.
func (r *RoundCoordinator) AddTarget(e *donburi.Entry) {
	r.liveTargets[e.Entity()] = struct{}{}
}

func (r *RoundCoordinator) ID() uuid.UUID      { return r.id }
func (r *RoundCoordinator) Outcome() Outcome   { return r.outcome }
func (r *RoundCoordinator) ShotsUsed() int     { return r.shotsUsed }
func (r *RoundCoordinator) MaxShots() int      { return r.opts.MaxShots }
func (r *RoundCoordinator) LiveTargets() int   { return len(r.liveTargets) }
func (r *RoundCoordinator) HasNextRound() bool { return r.opts.HasNextRound }

func (r *RoundCoordinator) HasShotBudget() bool {
	return r.shotsUsed < r.opts.MaxShots
}

// OnShotUsed counts a launch. The last shot starts the settle timer.
func (r *RoundCoordinator) OnShotUsed() {
	if r.outcome != OutcomeLive {
		return
	}
	if r.shotsUsed >= r.opts.MaxShots {
		r.log.Warn("shot used with no budget left", zap.Int("max_shots", r.opts.MaxShots))
		return
	}
	r.shotsUsed++
	r.ui.ReportShotUsed(r.shotsUsed)
	r.log.Info("shot used",
		zap.Int("shots_used", r.shotsUsed),
		zap.Int("max_shots", r.opts.MaxShots),
		zap.Int("live_targets", len(r.liveTargets)),
	)

	if r.shotsUsed == r.opts.MaxShots {
		r.settleTask = r.scheduler.After(r.opts.SettleDelay, r.settle)
	}
}

// OnTargetRemoved drops a dead target and wins the round when none remain.
func (r *RoundCoordinator) OnTargetRemoved(e *donburi.Entry) {
	entity := e.Entity()
	if _, ok := r.liveTargets[entity]; !ok {
		return
	}
	delete(r.liveTargets, entity)
	r.log.Info("target removed", zap.Int("live_targets", len(r.liveTargets)))

	if len(r.liveTargets) == 0 && r.outcome == OutcomeLive {
		r.win()
	}
}

// settle runs once the last shot has had time to land.
func (r *RoundCoordinator) settle() {
	r.settleTask = 0
	if r.outcome != OutcomeLive {
		return
	}
	if len(r.liveTargets) == 0 {
		r.win()
		return
	}
	r.lose()
}

func (r *RoundCoordinator) win() {
	r.outcome = OutcomeWon
	r.scheduler.Cancel(r.settleTask)
	r.settleTask = 0
	if r.input != nil {
		r.input.SetInputEnabled(false)
	}
	r.ui.ShowEndScreen(r.opts.HasNextRound)
	r.log.Info("round won",
		zap.Int("shots_used", r.shotsUsed),
		zap.Bool("has_next", r.opts.HasNextRound),
	)
}

func (r *RoundCoordinator) lose() {
	r.outcome = OutcomeLost
	r.log.Info("round lost",
		zap.Int("live_targets", len(r.liveTargets)),
		zap.Uint64("generation", r.scheduler.Generation()),
	)
	r.scheduler.Reset()
	r.progression.RestartRound()
}

// Restart abandons the round on request. Pending timers and animations are
// cancelled before the round is reloaded.
func (r *RoundCoordinator) Restart() {
	r.scheduler.Reset()
	r.progression.RestartRound()
}

// NextRound advances to the following level. It only acts after a win with a
// level to go to.
func (r *RoundCoordinator) NextRound() bool {
	if r.outcome != OutcomeWon || !r.opts.HasNextRound {
		return false
	}
	r.scheduler.Reset()
	r.progression.LoadNextRound()
	return true
}
