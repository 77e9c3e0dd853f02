package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/slingshot/assets"
	"github.com/automoto/slingshot/config"
	"github.com/automoto/slingshot/fonts"
	"github.com/automoto/slingshot/logging"
	"github.com/automoto/slingshot/scenes"
	"github.com/automoto/slingshot/scripting"
	"github.com/automoto/slingshot/shared/leveldata"
	"github.com/automoto/slingshot/sound"
	"github.com/automoto/slingshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewRoundScene(g, session, config.Debug.StartLevel)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "TOML file overriding the default settings")
	flag.IntVar(&config.Debug.StartLevel, "level", 0, "campaign level to start on (0-based)")
	flag.Parse()

	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config.Apply(f)
	}

	log, err := logging.New(config.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Fatal("slingshot exited", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	campaign, err := leveldata.LoadCampaign(assets.Levels(), assets.CampaignManifest)
	if err != nil {
		return err
	}
	if config.Debug.StartLevel < 0 || config.Debug.StartLevel >= campaign.Len() {
		return fmt.Errorf("start level %d out of range [0, %d)", config.Debug.StartLevel, campaign.Len())
	}

	session := &scenes.Session{
		Campaign: campaign,
		Sound:    sound.NewPlayer(log),
		Log:      log,
	}
	session.Sound.Preload()

	if path := config.Target.DamageScript; path != "" {
		model, err := scripting.LoadDamageModel(assets.Scripts(), path, log)
		if err != nil {
			log.Warn("damage script unavailable, using impact damage", zap.Error(err))
		} else {
			defer model.Close()
			session.Damage = model
		}
	}
	if session.Damage == nil {
		session.Damage = systems.ImpactDamage{}
	}

	log.Info("starting",
		zap.Int("levels", campaign.Len()),
		zap.Int("start_level", config.Debug.StartLevel),
	)

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(NewGame(session))
}
