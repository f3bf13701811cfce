package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/cbodonnell/spinwheel/client/fonts"
	"github.com/cbodonnell/spinwheel/client/objects"
	"github.com/cbodonnell/spinwheel/pkg/log"
	"github.com/cbodonnell/spinwheel/pkg/random"
	"github.com/cbodonnell/spinwheel/pkg/spin"
	"github.com/cbodonnell/spinwheel/pkg/wheel"
	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	WheelCenterX = ScreenWidth / 2
	WheelCenterY = 280
	WheelRadius  = 200

	WinnerOverlayTTLMs = 5000
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// engine owns the spin timeline.
	engine *spin.Engine
	// handle is the handle for the spin in flight, nil when idle.
	handle *spin.Handle
	// rand is the random source for spin rotations.
	rand random.Source
	// labels is the current sector label set.
	labels []string
	// spinDuration is the duration of one spin.
	spinDuration time.Duration
	// winnerShown tracks whether the current spin's winner was displayed.
	winnerShown bool
	// statusText is a transient error/status line shown to the user.
	statusText string
	// pendingLabel is the label text input's current contents.
	pendingLabel string

	wheelObject *objects.Wheel
	overlay     *objects.WinnerOverlay
	ui          *ebitenui.UI
}

type NewGameOptions struct {
	// Labels is the initial sector label set.
	Labels []string
	// SpinDuration is the duration of one spin.
	SpinDuration time.Duration
	// Rand is the random source for spin rotations.
	Rand random.Source
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	sectors, err := wheel.Partition(opts.Labels)
	if err != nil {
		return nil, fmt.Errorf("failed to partition labels: %w", err)
	}

	g := &Game{
		engine:       spin.NewEngine(),
		rand:         opts.Rand,
		labels:       append([]string(nil), opts.Labels...),
		spinDuration: opts.SpinDuration,
		wheelObject: objects.NewWheel(objects.NewWheelOptions{
			CenterX: WheelCenterX,
			CenterY: WheelCenterY,
			Radius:  WheelRadius,
			Sectors: sectors,
		}),
		overlay: objects.NewWinnerOverlay(objects.NewWinnerOverlayOptions{}),
	}
	g.renderUI()

	return g, nil
}

func (g *Game) spinWheel() {
	handle, err := g.engine.Start(time.Now(), g.labels, g.spinDuration, g.rand)
	if err != nil {
		if spin.IsAlreadySpinning(err) {
			g.statusText = "Already spinning"
			return
		}
		g.statusText = err.Error()
		return
	}

	g.handle = handle
	g.winnerShown = false
	g.statusText = ""
	g.overlay.Clear()
	log.Debug("Spin started over %d labels", len(g.labels))
}

func (g *Game) addLabel(label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}
	if g.engine.Status() == spin.StatusSpinning {
		g.statusText = "Cannot edit labels while spinning"
		return
	}

	labels := append(append([]string(nil), g.labels...), label)
	sectors, err := wheel.Partition(labels)
	if err != nil {
		g.statusText = err.Error()
		return
	}

	g.labels = labels
	g.wheelObject.SetSectors(sectors)
	g.statusText = ""
}

func (g *Game) Update() error {
	g.ui.Update()

	if err := g.overlay.Update(); err != nil {
		return fmt.Errorf("failed to update winner overlay: %v", err)
	}

	if g.handle == nil {
		return nil
	}

	result := g.handle.Poll(time.Now())
	g.wheelObject.SetRotation(result.Rotation)
	if result.Done && !g.winnerShown {
		g.winnerShown = true
		g.overlay.Show(result.Winner, WinnerOverlayTTLMs)
		log.Info("Spin resolved: %s", result.Winner)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 24, G: 24, B: 32, A: 255})

	g.wheelObject.Draw(screen)
	g.overlay.Draw(screen)
	g.ui.Draw(screen)

	if g.statusText != "" {
		f := fonts.TTFSmallFont
		bounds, _ := font.BoundString(f, g.statusText)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ScreenWidth/2-float64(bounds.Max.X>>6)/2, ScreenHeight-80)
		op.ColorScale.ScaleWithColor(color.NRGBA{R: 235, G: 120, B: 120, A: 255})
		text.DrawWithOptions(screen, g.statusText, f, op)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) renderUI() {
	buttonImage := &widget.ButtonImage{
		Idle:    eimage.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   eimage.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: eimage.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	fontFace := fonts.MPlusNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:  ScreenHeight - 60,
				Left: 120,
			}))),
	)

	labelTextInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(240, 0),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     eimage.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: eimage.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.NRGBA{254, 255, 255, 255},
			Disabled:      color.NRGBA{R: 200, G: 200, B: 200, A: 255},
			Caret:         color.NRGBA{254, 255, 255, 255},
			DisabledCaret: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fontFace, 2),
		),
		widget.TextInputOpts.Placeholder("New label"),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			g.pendingLabel = args.InputText
		}),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			g.addLabel(args.InputText)
		}),
	)
	rootContainer.AddChild(labelTextInput)

	addButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Add", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:  15,
			Right: 15,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.addLabel(g.pendingLabel)
		}),
	)
	rootContainer.AddChild(addButton)

	spinButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text("Spin", fontFace, &widget.ButtonTextColor{
			Idle:     color.NRGBA{254, 255, 255, 255},
			Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:  30,
			Right: 30,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.spinWheel()
		}),
	)
	rootContainer.AddChild(spinButton)

	g.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}
