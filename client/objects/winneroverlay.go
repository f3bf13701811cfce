package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/spinwheel/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WinnerOverlay displays the winning label for a while after a spin
// resolves.
type WinnerOverlay struct {
	text string
	ttl  int
}

type NewWinnerOverlayOptions struct {
	// TTL is the time to live in milliseconds.
	TTL int
}

func NewWinnerOverlay(opts NewWinnerOverlayOptions) *WinnerOverlay {
	return &WinnerOverlay{
		ttl: opts.TTL,
	}
}

// Show displays the given text for the overlay's TTL.
func (o *WinnerOverlay) Show(text string, ttl int) {
	o.text = text
	o.ttl = ttl
}

// Clear hides the overlay.
func (o *WinnerOverlay) Clear() {
	o.text = ""
	o.ttl = 0
}

func (o *WinnerOverlay) Update() error {
	if o.ttl > 0 {
		o.ttl -= 1000 / ebiten.TPS()
		if o.ttl <= 0 {
			o.Clear()
		}
	}
	return nil
}

func (o *WinnerOverlay) Draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	t := strings.ToUpper(o.text)
	f := fonts.TTFLargeFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())/8)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
