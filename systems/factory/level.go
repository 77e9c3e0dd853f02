package factory

import (
	"math"

	"github.com/automoto/slingshot/archetypes"
	"github.com/automoto/slingshot/components"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/yohamta/donburi"
)

// Built lists the entities created for a level.
type Built struct {
	Level     *donburi.Entry
	Space     *donburi.Entry
	Slingshot *donburi.Entry
	Camera    *donburi.Entry
	Targets   []*donburi.Entry
}

// BuildLevel populates w with the level's static entities and the round
// singletons. Projectiles are spawned by the slingshot.
func BuildLevel(w donburi.World, level *leveldata.Level, index, maxShots int) Built {
	var b Built

	b.Level = archetypes.Level.Spawn(w)
	components.Level.SetValue(b.Level, components.LevelData{
		Name:   level.Name,
		Index:  index,
		Width:  level.Width,
		Height: level.Height,
	})

	cell := config.Physics.CellSize
	if cell <= 0 {
		cell = 8
	}
	// Space dimensions are in pixels, rounded up to whole cells.
	b.Space = CreateSpace(w,
		int(math.Ceil(level.Width/float64(cell)))*cell,
		int(math.Ceil(level.Height/float64(cell)))*cell,
		cell, cell,
	)

	for _, g := range level.Ground {
		CreateGround(w, g)
	}

	for _, t := range level.Targets {
		health := t.MaxHealth
		if health <= 0 {
			health = config.Target.MaxHealth
		}
		threshold := t.DamageThreshold
		if threshold <= 0 {
			threshold = config.Target.DamageThreshold
		}
		b.Targets = append(b.Targets, CreateTarget(w, t.Rect, health, threshold))
	}

	b.Slingshot = CreateSlingshot(w, level.Slingshot, config.Slingshot.ZoneRadius)
	b.Camera = CreateCamera(w, level.Slingshot.Anchor)

	CreateAudio(w)
	CreatePointer(w)
	CreateHUD(w, maxShots)
	return b
}
