package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/slingshot/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// EndScreenUI is the overlay shown when a round is won.
type EndScreenUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRestart   func()
	OnNextLevel func()

	hasNext    bool
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewEndScreenUI builds the overlay. The Next Level button is only added
// when there is a level to go to.
func NewEndScreenUI(levelName string, hasNext bool, onRestart, onNextLevel func()) (*EndScreenUI, error) {
	es := &EndScreenUI{
		OnRestart:   onRestart,
		OnNextLevel: onNextLevel,
		hasNext:     hasNext,
	}
	if err := es.loadFonts(); err != nil {
		return nil, err
	}
	es.buildUI(levelName)
	return es, nil
}

func (es *EndScreenUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	es.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	es.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	es.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (es *EndScreenUI) buildUI(levelName string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("LEVEL CLEARED", &es.titleFace, &widget.LabelColor{
			Idle: cfg.Yellow,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(levelName, &es.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)
	buttons.AddChild(es.button("Restart (R)", es.buttonImage(), func() {
		if es.OnRestart != nil {
			es.OnRestart()
		}
	}))
	if es.hasNext {
		buttons.AddChild(es.button("Next Level (N)", es.nextButtonImage(), func() {
			if es.OnNextLevel != nil {
				es.OnNextLevel()
			}
		}))
	}
	contentContainer.AddChild(buttons)

	hint := "Campaign complete"
	if es.hasNext {
		hint = "Press N or click Next Level to continue"
	}
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(hint, &es.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)
	es.UI = &ebitenui.UI{Container: rootContainer}
}

func (es *EndScreenUI) button(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 24),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &es.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (es *EndScreenUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (es *EndScreenUI) nextButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

func (es *EndScreenUI) Update() {
	es.UI.Update()
}

func (es *EndScreenUI) Draw(screen *ebiten.Image) {
	es.UI.Draw(screen)
}
