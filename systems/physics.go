package systems

import (
	"slices"
	"sort"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Collision describes a body touching something for the first time. Other is
// nil when the body left the level bounds.
type Collision struct {
	Self             *donburi.Entry
	Other            *donburi.Entry
	RelativeVelocity gamemath.Vec2
	OutOfBounds      bool
}

// Impact is the relative speed of the two bodies.
func (c Collision) Impact() float64 {
	return c.RelativeVelocity.Magnitude()
}

func (c Collision) mirrored() Collision {
	return Collision{
		Self:             c.Other,
		Other:            c.Self,
		RelativeVelocity: c.RelativeVelocity.MulScalar(-1),
	}
}

// Physics is the rigid-body collaborator used by projectiles and targets.
type Physics interface {
	SetKinematic(e *donburi.Entry, kinematic bool)
	ApplyImpulse(e *donburi.Entry, impulse gamemath.Vec2)
	Velocity(e *donburi.Entry) gamemath.Vec2
	EnableCollision(e *donburi.Entry)
	OnCollisionEnter(e *donburi.Entry, fn func(Collision))
	OnStep(e *donburi.Entry, fn func()) (unsubscribe func())
	Remove(e *donburi.Entry)
}

type stepHook struct {
	id uint64
	fn func()
}

// PhysicsSystem integrates dynamic bodies under gravity and detects contacts
// through the round's resolv space. Bodies have unit mass, so an impulse adds
// directly to velocity. A dynamic body stops at its first contact.
type PhysicsSystem struct {
	world    donburi.World
	space    *resolv.Space
	bounds   gamemath.Rect
	gravity  float64
	maxSpeed float64
	substeps int
	dt       float64

	enter    map[donburi.Entity][]func(Collision)
	hooks    map[donburi.Entity][]stepHook
	nextHook uint64
}

func NewPhysicsSystem(w donburi.World, space *resolv.Space, bounds gamemath.Rect, conf cfg.PhysicsConfig, tps int) *PhysicsSystem {
	substeps := conf.Substeps
	if substeps < 1 {
		substeps = 1
	}
	if tps <= 0 {
		tps = 60
	}
	return &PhysicsSystem{
		world:    w,
		space:    space,
		bounds:   bounds,
		gravity:  conf.Gravity,
		maxSpeed: conf.MaxSpeed,
		substeps: substeps,
		dt:       1 / float64(tps),
		enter:    make(map[donburi.Entity][]func(Collision)),
		hooks:    make(map[donburi.Entity][]stepHook),
	}
}

func (p *PhysicsSystem) SetKinematic(e *donburi.Entry, kinematic bool) {
	if !e.Valid() || !e.HasComponent(components.Body) {
		return
	}
	components.Body.Get(e).Kinematic = kinematic
}

func (p *PhysicsSystem) ApplyImpulse(e *donburi.Entry, impulse gamemath.Vec2) {
	if !e.Valid() || !e.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(e)
	body.Velocity = body.Velocity.Add(impulse)
}

func (p *PhysicsSystem) Velocity(e *donburi.Entry) gamemath.Vec2 {
	if !e.Valid() || !e.HasComponent(components.Body) {
		return gamemath.Vec2{}
	}
	return components.Body.Get(e).Velocity
}

// EnableCollision puts the body's object into the space.
func (p *PhysicsSystem) EnableCollision(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	obj := components.Object.Get(e).Object
	if obj.Space == nil {
		p.space.Add(obj)
	}
}

func (p *PhysicsSystem) OnCollisionEnter(e *donburi.Entry, fn func(Collision)) {
	p.enter[e.Entity()] = append(p.enter[e.Entity()], fn)
}

// OnStep calls fn once per simulation tick until the returned func is called
// or the entity is removed.
func (p *PhysicsSystem) OnStep(e *donburi.Entry, fn func()) func() {
	p.nextHook++
	id := p.nextHook
	entity := e.Entity()
	p.hooks[entity] = append(p.hooks[entity], stepHook{id: id, fn: fn})
	return func() {
		hooks := p.hooks[entity]
		for i, h := range hooks {
			if h.id == id {
				p.hooks[entity] = append(hooks[:i], hooks[i+1:]...)
				break
			}
		}
		if len(p.hooks[entity]) == 0 {
			delete(p.hooks, entity)
		}
	}
}

// StepHooks is the number of live per-step subscriptions.
func (p *PhysicsSystem) StepHooks() int {
	n := 0
	for _, hooks := range p.hooks {
		n += len(hooks)
	}
	return n
}

// Remove takes the entity out of the space and the world and drops its
// callbacks.
func (p *PhysicsSystem) Remove(e *donburi.Entry) {
	entity := e.Entity()
	delete(p.enter, entity)
	delete(p.hooks, entity)
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	p.world.Remove(entity)
}

// Update advances every dynamic body by one tick, runs the per-step hooks and
// then delivers the contacts found during the tick.
func (p *PhysicsSystem) Update() {
	var moving []*donburi.Entry
	components.Body.Each(p.world, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Kinematic || body.Stopped {
			return
		}
		moving = append(moving, e)
	})

	var contacts []Collision
	for _, e := range moving {
		if c, hit := p.step(e); hit {
			contacts = append(contacts, c)
		}
	}

	p.runHooks()

	for _, c := range contacts {
		p.dispatch(c.Self, c)
		if c.Other != nil {
			p.dispatch(c.Other, c.mirrored())
		}
	}
}

func (p *PhysicsSystem) step(e *donburi.Entry) (Collision, bool) {
	body := components.Body.Get(e)
	obj := components.Object.Get(e).Object
	gravity := gamemath.V(0, p.gravity)
	h := p.dt / float64(p.substeps)

	for i := 0; i < p.substeps; i++ {
		vel, delta := gamemath.IntegrateVelocity(body.Velocity, gravity, h)
		body.Velocity = gamemath.ClampSpeed(vel, p.maxSpeed)
		obj.X += delta.X
		obj.Y += delta.Y
		if obj.Space != nil {
			obj.Update()
		}

		if other, ok := p.touching(obj); ok {
			c := Collision{
				Self:             e,
				Other:            other,
				RelativeVelocity: body.Velocity.Sub(p.Velocity(other)),
			}
			p.stop(body)
			return c, true
		}
		if !p.inBounds(obj) {
			c := Collision{Self: e, RelativeVelocity: body.Velocity, OutOfBounds: true}
			p.stop(body)
			return c, true
		}
	}
	return Collision{}, false
}

func (p *PhysicsSystem) stop(body *components.BodyData) {
	body.Velocity = gamemath.Vec2{}
	body.Stopped = true
}

// touching finds the first solid or target overlapping obj. The space check
// is cell based so candidates are confirmed against their boxes.
func (p *PhysicsSystem) touching(obj *resolv.Object) (*donburi.Entry, bool) {
	if obj.Space == nil {
		return nil, false
	}
	check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvTarget)
	if check == nil {
		return nil, false
	}
	self := rectOf(obj)
	for _, o := range check.Objects {
		if o == obj || !self.Overlaps(rectOf(o)) {
			continue
		}
		if entry, ok := o.Data.(*donburi.Entry); ok && entry != nil && entry.Valid() {
			return entry, true
		}
	}
	return nil, false
}

func (p *PhysicsSystem) inBounds(obj *resolv.Object) bool {
	r := rectOf(obj)
	// The top stays open so steep shots may leave the screen and come back.
	return r.X+r.W > p.bounds.X && r.X < p.bounds.X+p.bounds.W && r.Y < p.bounds.Y+p.bounds.H
}

func (p *PhysicsSystem) runHooks() {
	var all []stepHook
	for _, hooks := range p.hooks {
		all = append(all, hooks...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].id < all[j].id })
	for _, h := range all {
		h.fn()
	}
}

func (p *PhysicsSystem) dispatch(e *donburi.Entry, c Collision) {
	if e == nil || !e.Valid() {
		return
	}
	for _, fn := range slices.Clone(p.enter[e.Entity()]) {
		if !e.Valid() {
			return
		}
		fn(c)
	}
}

func rectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// ObjectCenter returns the centre of an entity's collision box.
func ObjectCenter(e *donburi.Entry) gamemath.Vec2 {
	return rectOf(components.Object.Get(e).Object).Center()
}

// MoveObjectCenter places an entity's collision box around p.
func MoveObjectCenter(e *donburi.Entry, p gamemath.Vec2) {
	obj := components.Object.Get(e).Object
	obj.X = p.X - obj.W/2
	obj.Y = p.Y - obj.H/2
	if obj.Space != nil {
		obj.Update()
	}
}
