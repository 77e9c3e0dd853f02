package systems

import (
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/systems/factory"
	"github.com/yohamta/donburi"
)

type recordedClip struct {
	id     cfg.SoundID
	random bool
	source *donburi.Entry
}

type fakeAudio struct {
	clips []recordedClip
}

func (a *fakeAudio) PlayClip(id cfg.SoundID, source *donburi.Entry) {
	a.clips = append(a.clips, recordedClip{id: id, source: source})
}

func (a *fakeAudio) PlayRandomClip(ids []cfg.SoundID, source *donburi.Entry) {
	id := cfg.SoundNone
	if len(ids) > 0 {
		id = ids[0]
	}
	a.clips = append(a.clips, recordedClip{id: id, random: true, source: source})
}

func (a *fakeAudio) count(id cfg.SoundID) int {
	n := 0
	for _, c := range a.clips {
		if c.id == id {
			n++
		}
	}
	return n
}

type fakeFraming struct {
	idle   int
	follow []*donburi.Entry
}

func (f *fakeFraming) SetIdleFraming() { f.idle++ }

func (f *fakeFraming) SetFollowFraming(target *donburi.Entry) {
	f.follow = append(f.follow, target)
}

type fakeUI struct {
	reports    []int
	endScreens []bool
}

func (u *fakeUI) ReportShotUsed(shotIndex int) { u.reports = append(u.reports, shotIndex) }

func (u *fakeUI) ShowEndScreen(hasNextRound bool) {
	u.endScreens = append(u.endScreens, hasNextRound)
}

type fakeProgression struct {
	restarts int
	nexts    int
}

func (p *fakeProgression) RestartRound()  { p.restarts++ }
func (p *fakeProgression) LoadNextRound() { p.nexts++ }

type fakeInput struct {
	calls []bool
}

func (i *fakeInput) SetInputEnabled(enabled bool) { i.calls = append(i.calls, enabled) }

type fakeBudget struct {
	available bool
	used      int
}

func (b *fakeBudget) HasShotBudget() bool { return b.available }
func (b *fakeBudget) OnShotUsed()         { b.used++ }

type fakeObserver struct {
	removed []*donburi.Entry
	// alive records whether the target was still in the world when reported.
	alive []bool
}

func (o *fakeObserver) OnTargetRemoved(e *donburi.Entry) {
	o.removed = append(o.removed, e)
	o.alive = append(o.alive, e.Valid())
}

// fakePhysics records calls instead of simulating.
type fakePhysics struct {
	world      donburi.World
	kinematic  map[donburi.Entity]bool
	velocity   map[donburi.Entity]gamemath.Vec2
	impulses   int
	collidable map[donburi.Entity]bool
	enter      map[donburi.Entity][]func(Collision)
	steps      map[donburi.Entity][]func()
	removed    []donburi.Entity
}

func newFakePhysics(w donburi.World) *fakePhysics {
	return &fakePhysics{
		world:      w,
		kinematic:  map[donburi.Entity]bool{},
		velocity:   map[donburi.Entity]gamemath.Vec2{},
		collidable: map[donburi.Entity]bool{},
		enter:      map[donburi.Entity][]func(Collision){},
		steps:      map[donburi.Entity][]func(){},
	}
}

func (p *fakePhysics) SetKinematic(e *donburi.Entry, kinematic bool) {
	p.kinematic[e.Entity()] = kinematic
}

func (p *fakePhysics) ApplyImpulse(e *donburi.Entry, impulse gamemath.Vec2) {
	p.impulses++
	p.velocity[e.Entity()] = p.velocity[e.Entity()].Add(impulse)
}

func (p *fakePhysics) Velocity(e *donburi.Entry) gamemath.Vec2 { return p.velocity[e.Entity()] }

func (p *fakePhysics) EnableCollision(e *donburi.Entry) { p.collidable[e.Entity()] = true }

func (p *fakePhysics) OnCollisionEnter(e *donburi.Entry, fn func(Collision)) {
	p.enter[e.Entity()] = append(p.enter[e.Entity()], fn)
}

func (p *fakePhysics) OnStep(e *donburi.Entry, fn func()) func() {
	entity := e.Entity()
	p.steps[entity] = append(p.steps[entity], fn)
	idx := len(p.steps[entity]) - 1
	return func() { p.steps[entity][idx] = nil }
}

func (p *fakePhysics) Remove(e *donburi.Entry) {
	p.removed = append(p.removed, e.Entity())
	delete(p.enter, e.Entity())
	delete(p.steps, e.Entity())
	if e.Valid() {
		p.world.Remove(e.Entity())
	}
}

// step runs every live step hook once.
func (p *fakePhysics) step() {
	for _, hooks := range p.steps {
		for _, fn := range hooks {
			if fn != nil {
				fn()
			}
		}
	}
}

func (p *fakePhysics) collide(e *donburi.Entry, c Collision) {
	for _, fn := range p.enter[e.Entity()] {
		fn(c)
	}
}

func (p *fakePhysics) liveSteps() int {
	n := 0
	for _, hooks := range p.steps {
		for _, fn := range hooks {
			if fn != nil {
				n++
			}
		}
	}
	return n
}

// newSpaceWorld returns a world holding a resolv space of the given size.
func newSpaceWorld(width, height int) donburi.World {
	w := donburi.NewWorld()
	factory.CreateSpace(w, width, height, 8, 8)
	return w
}
