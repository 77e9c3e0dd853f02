package components

import (
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PointerData stores the current and previous frame's button state and the
// cursor in world coordinates. Edges are computed on demand.
type PointerData struct {
	Current  bool
	Previous bool
	Cursor   gamemath.Vec2
}

func (p *PointerData) JustPressed() bool  { return p.Current && !p.Previous }
func (p *PointerData) JustReleased() bool { return !p.Current && p.Previous }
func (p *PointerData) Held() bool         { return p.Current }

// Sample rolls the frame forward with a new button state and cursor.
func (p *PointerData) Sample(pressed bool, cursor gamemath.Vec2) {
	p.Previous = p.Current
	p.Current = pressed
	p.Cursor = cursor
}

var Pointer = donburi.NewComponentType[PointerData]()
