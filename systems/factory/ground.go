package factory

import (
	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/shared/gamemath"
	"github.com/automoto/slingshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateGround(w donburi.World, r gamemath.Rect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.Data = ground // Link for O(1) lookup
	components.Object.SetValue(ground, components.ObjectData{Object: obj})

	addToSpace(w, obj)
	return ground
}
