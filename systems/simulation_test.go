package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/shared/leveldata"
	"go.uber.org/zap/zaptest"
)

func testLevel(maxShots int, targets ...gamemath.Rect) *leveldata.Level {
	level := &leveldata.Level{
		Name:     "Test",
		Width:    1280,
		Height:   480,
		MaxShots: maxShots,
		Slingshot: leveldata.SlingshotPoints{
			Anchor: testAnchor,
			Idle:   testIdle,
			Left:   gamemath.V(128, 352),
			Right:  gamemath.V(152, 352),
		},
		Ground: []gamemath.Rect{{X: 0, Y: 440, W: 1280, H: 40}},
	}
	for _, r := range targets {
		level.Targets = append(level.Targets, leveldata.TargetSpawn{Rect: r})
	}
	return level
}

func newTestSimulation(t *testing.T, level *leveldata.Level, progression RoundProgression) *Simulation {
	t.Helper()
	return NewSimulation(level, SimulationOptions{
		HasNextRound: true,
		Progression:  progression,
		Rand:         rand.New(rand.NewPCG(1, 2)),
		Log:          zaptest.NewLogger(t),
	})
}

// shoot pulls straight back to the drag limit and lets go.
func shoot(sim *Simulation) {
	sim.SamplePointer(true, testAnchor)
	sim.Update()
	sim.SamplePointer(true, gamemath.V(40, 360))
	sim.Update()
	sim.SamplePointer(false, gamemath.V(40, 360))
	sim.Update()
}

func runFrames(sim *Simulation, frames int) {
	for i := 0; i < frames; i++ {
		sim.SamplePointer(false, gamemath.Vec2{})
		sim.Update()
	}
}

func TestSimulationSingleShotWin(t *testing.T) {
	progression := &fakeProgression{}
	sim := newTestSimulation(t, testLevel(1, gamemath.Rect{X: 300, Y: 350, W: 24, H: 60}), progression)

	if sim.Round.MaxShots() != 1 || sim.Round.LiveTargets() != 1 {
		t.Fatalf("MaxShots = %d LiveTargets = %d, want 1 and 1", sim.Round.MaxShots(), sim.Round.LiveTargets())
	}

	shoot(sim)
	runFrames(sim, 60)

	if sim.Round.Outcome() != OutcomeWon {
		t.Fatalf("Outcome = %v, want Won", sim.Round.Outcome())
	}
	if sim.Round.ShotsUsed() != 1 {
		t.Errorf("ShotsUsed = %d, want 1", sim.Round.ShotsUsed())
	}
	screen, _ := components.EndScreen.First(sim.World)
	if data := components.EndScreen.Get(screen); !data.Visible || !data.HasNext {
		t.Errorf("end screen = %+v, want visible with a next level", *data)
	}
	if components.Slingshot.Get(sim.Built.Slingshot).Enabled {
		t.Error("slingshot still accepts input after the win")
	}
	icons, _ := components.ShotIcons.First(sim.World)
	if used := components.ShotIcons.Get(icons).Used; !used[0] {
		t.Errorf("shot icons = %v, want the first used", used)
	}

	// The settle timer that was due later must not turn the win into a loss.
	runFrames(sim, 300)
	if sim.Round.Outcome() != OutcomeWon || progression.restarts != 0 {
		t.Errorf("Outcome = %v restarts = %d, want Won and 0", sim.Round.Outcome(), progression.restarts)
	}
}

func TestSimulationMissLosesAfterSettle(t *testing.T) {
	progression := &fakeProgression{}
	sim := newTestSimulation(t, testLevel(1, gamemath.Rect{X: 1000, Y: 100, W: 24, H: 24}), progression)

	shoot(sim)
	settle := int(sim.Scheduler.Frames(3 * time.Second))
	runFrames(sim, settle-2)
	if sim.Round.Outcome() != OutcomeLive {
		t.Fatalf("Outcome = %v before the settle delay, want Live", sim.Round.Outcome())
	}
	runFrames(sim, 10)

	if sim.Round.Outcome() != OutcomeLost {
		t.Fatalf("Outcome = %v, want Lost", sim.Round.Outcome())
	}
	if progression.restarts != 1 {
		t.Errorf("restarts = %d, want 1", progression.restarts)
	}
	runFrames(sim, 300)
	if progression.restarts != 1 {
		t.Errorf("restarts = %d after more frames, want 1", progression.restarts)
	}
}

func TestSimulationRespawnsBetweenShots(t *testing.T) {
	sim := newTestSimulation(t, testLevel(3, gamemath.Rect{X: 1000, Y: 100, W: 24, H: 24}), &fakeProgression{})

	shoot(sim)
	if !sim.Slingshot.RespawnPending() {
		t.Fatal("no respawn after the first of three shots")
	}
	runFrames(sim, int(sim.Scheduler.Frames(2*time.Second)))

	s := components.Slingshot.Get(sim.Built.Slingshot)
	if s.Cooldown != components.BirdReady || s.Projectile == nil {
		t.Errorf("Cooldown = %v Projectile = %v, want a ready projectile", s.Cooldown, s.Projectile)
	}
	if sim.Round.ShotsUsed() != 1 || !sim.Round.HasShotBudget() {
		t.Errorf("ShotsUsed = %d HasShotBudget = %v, want 1 and true", sim.Round.ShotsUsed(), sim.Round.HasShotBudget())
	}
}

func TestSimulationQueuesSounds(t *testing.T) {
	sim := newTestSimulation(t, testLevel(1, gamemath.Rect{X: 300, Y: 350, W: 24, H: 60}), &fakeProgression{})

	shoot(sim)
	runFrames(sim, 60)

	sounds := DrainSFX(sim.World)
	if len(sounds) < 3 {
		t.Fatalf("queued sounds = %v, want pull, release, impact and death cues", sounds)
	}
	if again := DrainSFX(sim.World); len(again) != 0 {
		t.Errorf("second drain returned %v, want nothing", again)
	}
}
