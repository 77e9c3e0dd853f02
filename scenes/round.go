package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/slingshot/components"
	cfg "github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/render"
	"github.com/automoto/slingshot/systems"
	"github.com/automoto/slingshot/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// RoundScene plays one campaign level. It is also the round-progression
// collaborator: restarting or advancing swaps in a fresh scene at the end of
// the current frame.
type RoundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *Session
	index        int
	sim          *systems.Simulation
	endScreen    *ui.EndScreenUI
	next         interface{}
	loadErr      error
	once         sync.Once
}

func NewRoundScene(sc SceneChanger, session *Session, index int) *RoundScene {
	return &RoundScene{sceneChanger: sc, session: session, index: index}
}

func (rs *RoundScene) Update() {
	rs.once.Do(rs.configure)
	if rs.loadErr != nil {
		return
	}
	rs.ecs.Update()
	rs.updateEndScreen()

	if rs.next != nil {
		rs.sceneChanger.ChangeScene(rs.next)
	}
}

func (rs *RoundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.loadErr != nil {
		msg := fmt.Sprintf("level %d failed to load", rs.index+1)
		text.Draw(screen, msg, fonts.HUD.Get(), 16, 32, cfg.Red) //nolint:staticcheck
		return
	}
	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
	if rs.endScreen != nil {
		rs.endScreen.Draw(screen)
	}
}

// RestartRound reloads the current level.
func (rs *RoundScene) RestartRound() {
	rs.next = NewRoundScene(rs.sceneChanger, rs.session, rs.index)
}

// LoadNextRound moves on to the following campaign level.
func (rs *RoundScene) LoadNextRound() {
	rs.next = NewRoundScene(rs.sceneChanger, rs.session, rs.index+1)
}

func (rs *RoundScene) configure() {
	log := rs.session.Log
	level, err := rs.session.Campaign.Load(rs.index)
	if err != nil {
		log.Error("load level", zap.Int("index", rs.index), zap.Error(err))
		rs.loadErr = err
		return
	}

	rs.sim = systems.NewSimulation(level, systems.SimulationOptions{
		Index:        rs.index,
		HasNextRound: rs.session.Campaign.HasNext(rs.index),
		Progression:  rs,
		Damage:       rs.session.Damage,
		Log:          log,
	})

	e := ecs.NewECS(rs.sim.World)

	// Input is sampled before the simulation so this frame's gesture is seen.
	e.AddSystem(rs.updatePointer)
	e.AddSystem(rs.updateKeys)
	e.AddSystem(func(*ecs.ECS) { rs.sim.Update() })
	e.AddSystem(rs.updateSound)

	e.AddRenderer(layerDefault, render.DrawLevel)
	e.AddRenderer(layerDefault, render.DrawTargets)
	e.AddRenderer(layerDefault, render.DrawSlingshot)
	e.AddRenderer(layerDefault, render.DrawProjectiles)
	e.AddRenderer(layerDefault, render.DrawBursts)
	e.AddRenderer(layerDefault, render.DrawHitboxes)
	e.AddRenderer(layerDefault, render.DrawHUD)

	rs.ecs = e
}

func (rs *RoundScene) updatePointer(e *ecs.ECS) {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		pressed = true
		x, y = ebiten.TouchPosition(touches[0])
	}
	cursor := render.ScreenToWorld(e.World, x, y, cfg.C.Width, cfg.C.Height)
	rs.sim.SamplePointer(pressed, cursor)
}

func (rs *RoundScene) updateKeys(_ *ecs.ECS) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		rs.sim.Round.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		rs.sim.Round.NextRound()
	}
}

func (rs *RoundScene) updateSound(e *ecs.ECS) {
	pending := systems.DrainSFX(e.World)
	if rs.session.Sound != nil {
		rs.session.Sound.Play(pending)
	}
}

func (rs *RoundScene) updateEndScreen() {
	entry, ok := components.EndScreen.First(rs.sim.World)
	if !ok || !components.EndScreen.Get(entry).Visible {
		return
	}
	if rs.endScreen == nil {
		screen := components.EndScreen.Get(entry)
		name := ""
		if levelEntry, ok := components.Level.First(rs.sim.World); ok {
			name = components.Level.Get(levelEntry).Name
		}
		endScreen, err := ui.NewEndScreenUI(name, screen.HasNext,
			func() { rs.sim.Round.Restart() },
			func() { rs.sim.Round.NextRound() },
		)
		if err != nil {
			rs.session.Log.Error("build end screen", zap.Error(err))
			return
		}
		rs.endScreen = endScreen
	}
	rs.endScreen.Update()
}
