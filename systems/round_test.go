package systems

import (
	"testing"
	"time"

	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap/zaptest"
)

type roundFixture struct {
	scheduler   *Scheduler
	ui          *fakeUI
	progression *fakeProgression
	input       *fakeInput
	round       *RoundCoordinator
	targets     []*donburi.Entry
}

func newRoundFixture(t *testing.T, maxShots, targets int, hasNext bool) *roundFixture {
	t.Helper()
	w := donburi.NewWorld()
	f := &roundFixture{
		scheduler:   NewScheduler(60),
		ui:          &fakeUI{},
		progression: &fakeProgression{},
		input:       &fakeInput{},
	}
	f.round = NewRoundCoordinator(RoundOptions{
		MaxShots:     maxShots,
		SettleDelay:  time.Second,
		HasNextRound: hasNext,
	}, f.scheduler, f.ui, f.progression, zaptest.NewLogger(t))
	f.round.AttachInput(f.input)
	for i := 0; i < targets; i++ {
		e := factory.CreateTarget(w, gamemath.Rect{X: float64(i) * 30, W: 20, H: 20}, 3, 0.2)
		f.targets = append(f.targets, e)
		f.round.AddTarget(e)
	}
	return f
}

func (f *roundFixture) advance(frames int) {
	for i := 0; i < frames; i++ {
		f.scheduler.Update()
	}
}

func TestShotBudget(t *testing.T) {
	f := newRoundFixture(t, 2, 1, false)

	if !f.round.HasShotBudget() {
		t.Fatal("fresh round has no budget")
	}
	f.round.OnShotUsed()
	f.round.OnShotUsed()
	if f.round.HasShotBudget() {
		t.Error("budget left after every shot was used")
	}

	f.round.OnShotUsed()
	if got := f.round.ShotsUsed(); got != 2 {
		t.Errorf("ShotsUsed = %d, want 2", got)
	}
	want := []int{1, 2}
	if len(f.ui.reports) != len(want) {
		t.Fatalf("reports = %v, want %v", f.ui.reports, want)
	}
	for i := range want {
		if f.ui.reports[i] != want[i] {
			t.Errorf("reports[%d] = %d, want %d", i, f.ui.reports[i], want[i])
		}
	}
}

func TestSettleStartsOnLastShot(t *testing.T) {
	f := newRoundFixture(t, 2, 1, false)

	f.round.OnShotUsed()
	if f.scheduler.Pending() != 0 {
		t.Fatal("settle timer started before the last shot")
	}
	f.round.OnShotUsed()
	if f.scheduler.Pending() != 1 {
		t.Fatalf("Pending = %d after last shot, want 1", f.scheduler.Pending())
	}
}

func TestRemovingLastTargetWins(t *testing.T) {
	f := newRoundFixture(t, 3, 2, true)

	f.round.OnShotUsed()
	f.round.OnTargetRemoved(f.targets[0])
	if f.round.Outcome() != OutcomeLive {
		t.Fatalf("Outcome = %v with a target left, want Live", f.round.Outcome())
	}
	f.round.OnTargetRemoved(f.targets[1])

	if f.round.Outcome() != OutcomeWon {
		t.Fatalf("Outcome = %v, want Won", f.round.Outcome())
	}
	if len(f.ui.endScreens) != 1 || !f.ui.endScreens[0] {
		t.Errorf("endScreens = %v, want [true]", f.ui.endScreens)
	}
	if len(f.input.calls) != 1 || f.input.calls[0] {
		t.Errorf("input calls = %v, want [false]", f.input.calls)
	}

	// Removing the same target again or another unknown entry changes nothing.
	f.round.OnTargetRemoved(f.targets[1])
	if len(f.ui.endScreens) != 1 {
		t.Errorf("end screen shown %d times, want 1", len(f.ui.endScreens))
	}
}

func TestWinBeatsPendingSettle(t *testing.T) {
	f := newRoundFixture(t, 1, 1, false)

	f.round.OnShotUsed()
	f.advance(30)
	f.round.OnTargetRemoved(f.targets[0])
	f.advance(120)

	if f.round.Outcome() != OutcomeWon {
		t.Errorf("Outcome = %v, want Won", f.round.Outcome())
	}
	if f.progression.restarts != 0 {
		t.Errorf("restarts = %d, want 0", f.progression.restarts)
	}
	if len(f.ui.endScreens) != 1 || f.ui.endScreens[0] {
		t.Errorf("endScreens = %v, want [false]", f.ui.endScreens)
	}
}

func TestThirdShotClearsBothTargetsBeforeSettle(t *testing.T) {
	f := newRoundFixture(t, 3, 2, true)

	// The first two shots miss.
	f.round.OnShotUsed()
	f.advance(120)
	f.round.OnShotUsed()
	f.advance(120)
	if f.round.Outcome() != OutcomeLive || f.scheduler.Pending() != 0 {
		t.Fatalf("Outcome = %v Pending = %d after two misses, want Live and 0", f.round.Outcome(), f.scheduler.Pending())
	}

	// The third takes out both targets while the settle timer is running.
	f.round.OnShotUsed()
	if f.round.HasShotBudget() {
		t.Fatal("budget left after the third shot")
	}
	f.advance(20)
	f.round.OnTargetRemoved(f.targets[0])
	if f.round.Outcome() != OutcomeLive {
		t.Fatalf("Outcome = %v with one target left, want Live", f.round.Outcome())
	}
	f.advance(10)
	f.round.OnTargetRemoved(f.targets[1])

	if f.round.Outcome() != OutcomeWon {
		t.Fatalf("Outcome = %v, want Won", f.round.Outcome())
	}
	f.advance(300)
	if f.round.Outcome() != OutcomeWon {
		t.Errorf("Outcome = %v after the settle delay, want Won", f.round.Outcome())
	}
	if f.progression.restarts != 0 {
		t.Errorf("restarts = %d, want 0", f.progression.restarts)
	}
	if len(f.ui.endScreens) != 1 || !f.ui.endScreens[0] {
		t.Errorf("endScreens = %v, want [true]", f.ui.endScreens)
	}
	if len(f.ui.reports) != 3 {
		t.Errorf("reports = %v, want three shots", f.ui.reports)
	}
}

func TestSettleLosesAndRestartsOnce(t *testing.T) {
	f := newRoundFixture(t, 3, 2, false)
	f.round.OnTargetRemoved(f.targets[0])
	for i := 0; i < 3; i++ {
		f.round.OnShotUsed()
	}
	gen := f.scheduler.Generation()

	f.advance(59)
	if f.round.Outcome() != OutcomeLive {
		t.Fatalf("Outcome = %v before the settle delay, want Live", f.round.Outcome())
	}
	f.advance(1)
	if f.round.Outcome() != OutcomeLost {
		t.Fatalf("Outcome = %v, want Lost", f.round.Outcome())
	}
	if f.progression.restarts != 1 {
		t.Errorf("restarts = %d, want 1", f.progression.restarts)
	}
	if f.scheduler.Generation() != gen+1 {
		t.Errorf("Generation = %d, want %d", f.scheduler.Generation(), gen+1)
	}
	if len(f.ui.endScreens) != 0 {
		t.Errorf("end screen shown on a loss: %v", f.ui.endScreens)
	}

	// A late removal cannot turn a lost round into a win.
	f.round.OnTargetRemoved(f.targets[1])
	f.advance(300)
	if f.round.Outcome() != OutcomeLost || f.progression.restarts != 1 {
		t.Errorf("Outcome = %v restarts = %d, want Lost and 1", f.round.Outcome(), f.progression.restarts)
	}
}

func TestShotsIgnoredAfterOutcome(t *testing.T) {
	f := newRoundFixture(t, 3, 1, false)
	f.round.OnTargetRemoved(f.targets[0])

	f.round.OnShotUsed()
	if f.round.ShotsUsed() != 0 {
		t.Errorf("ShotsUsed = %d after a win, want 0", f.round.ShotsUsed())
	}
}

func TestNextRound(t *testing.T) {
	tests := []struct {
		name    string
		hasNext bool
		win     bool
		want    bool
	}{
		{"won with next level", true, true, true},
		{"won on last level", false, true, false},
		{"still live", true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRoundFixture(t, 3, 1, tt.hasNext)
			if tt.win {
				f.round.OnTargetRemoved(f.targets[0])
			}
			if got := f.round.NextRound(); got != tt.want {
				t.Errorf("NextRound() = %v, want %v", got, tt.want)
			}
			wantNexts := 0
			if tt.want {
				wantNexts = 1
			}
			if f.progression.nexts != wantNexts {
				t.Errorf("nexts = %d, want %d", f.progression.nexts, wantNexts)
			}
		})
	}
}

func TestRestartCancelsPendingWork(t *testing.T) {
	f := newRoundFixture(t, 1, 1, false)
	f.round.OnShotUsed()
	fired := false
	f.scheduler.After(time.Second, func() { fired = true })

	f.round.Restart()
	f.advance(300)

	if fired {
		t.Error("task scheduled before Restart still ran")
	}
	if f.progression.restarts != 1 {
		t.Errorf("restarts = %d, want 1", f.progression.restarts)
	}
	if f.round.Outcome() != OutcomeLive {
		t.Errorf("Outcome = %v, want Live (settle timer cancelled)", f.round.Outcome())
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeLive: "Live",
		OutcomeWon:  "Won",
		OutcomeLost: "Lost",
		Outcome(9):  "Unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), got, want)
		}
	}
}
