package objects

import (
	"image"
	"image/color"
	"math"

	"github.com/cbodonnell/spinwheel/client/fonts"
	"github.com/cbodonnell/spinwheel/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var whiteImage = ebiten.NewImage(3, 3)

// whiteSubImage is an inner pixel of whiteImage, used as the source for
// DrawTriangles so that bilinear filtering never samples a transparent edge.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// Palette is the sector fill color cycle. Sector colors are assigned with
// wheel.ColorOf, so they repeat when there are more sectors than entries.
var Palette = []color.NRGBA{
	{R: 235, G: 83, B: 83, A: 255},
	{R: 249, G: 155, B: 69, A: 255},
	{R: 250, G: 208, B: 68, A: 255},
	{R: 119, G: 192, B: 84, A: 255},
	{R: 72, G: 176, B: 190, A: 255},
	{R: 77, G: 121, B: 219, A: 255},
	{R: 141, G: 89, B: 199, A: 255},
	{R: 212, G: 95, B: 168, A: 255},
}

// Wheel draws a partitioned selection wheel rotated by the rotation it is
// given. It holds no spin state of its own; the spin engine owns that.
type Wheel struct {
	centerX  float64
	centerY  float64
	radius   float64
	sectors  []wheel.Sector
	rotation float64
}

type NewWheelOptions struct {
	// CenterX is the x-coordinate of the wheel's center.
	CenterX float64
	// CenterY is the y-coordinate of the wheel's center.
	CenterY float64
	// Radius is the wheel's radius.
	Radius float64
	// Sectors is the sector layout from wheel.Partition.
	Sectors []wheel.Sector
}

func NewWheel(opts NewWheelOptions) *Wheel {
	return &Wheel{
		centerX: opts.CenterX,
		centerY: opts.CenterY,
		radius:  opts.Radius,
		sectors: opts.Sectors,
	}
}

// SetSectors replaces the sector layout. Must not be called mid-spin.
func (o *Wheel) SetSectors(sectors []wheel.Sector) {
	o.sectors = sectors
}

// SetRotation sets the rotation to draw the wheel at, in radians,
// clockwise-positive.
func (o *Wheel) SetRotation(rotation float64) {
	o.rotation = rotation
}

func (o *Wheel) Update() error {
	return nil
}

func (o *Wheel) Draw(screen *ebiten.Image) {
	for _, s := range o.sectors {
		clr := Palette[wheel.ColorOf(s.Index, len(Palette))]
		o.drawWedge(screen, s.StartAngle+o.rotation, s.EndAngle+o.rotation, clr)
	}
	for _, s := range o.sectors {
		o.drawLabel(screen, s)
	}
	o.drawHub(screen)
	o.drawPointer(screen)
}

func (o *Wheel) drawWedge(screen *ebiten.Image, startAngle, endAngle float64, clr color.NRGBA) {
	cx, cy := float32(o.centerX), float32(o.centerY)

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, float32(o.radius), float32(startAngle), float32(endAngle), vector.Clockwise)
	path.Close()

	fillPath(screen, &path, clr)
}

func (o *Wheel) drawLabel(screen *ebiten.Image, s wheel.Sector) {
	midAngle := (s.StartAngle+s.EndAngle)/2 + o.rotation
	x := o.centerX + math.Cos(midAngle)*o.radius*0.65
	y := o.centerY + math.Sin(midAngle)*o.radius*0.65

	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, s.Label)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(bounds.Max.X>>6)/2, y+float64(-bounds.Min.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, s.Label, f, op)
}

func (o *Wheel) drawHub(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(o.centerX), float32(o.centerY), float32(o.radius)*0.08, color.NRGBA{R: 40, G: 40, B: 48, A: 255}, true)
}

// drawPointer draws the fixed pointer marker at wheel.PointerAngle, just
// outside the wheel's radius, pointing into the circle. Its position must
// match the pointer angle used by wheel.Resolve.
func (o *Wheel) drawPointer(screen *ebiten.Image) {
	tipX := o.centerX + math.Cos(wheel.PointerAngle)*(o.radius*0.92)
	tipY := o.centerY + math.Sin(wheel.PointerAngle)*(o.radius*0.92)
	baseX := o.centerX + math.Cos(wheel.PointerAngle)*(o.radius+18)
	baseY := o.centerY + math.Sin(wheel.PointerAngle)*(o.radius+18)

	var path vector.Path
	path.MoveTo(float32(tipX), float32(tipY))
	path.LineTo(float32(baseX-10), float32(baseY))
	path.LineTo(float32(baseX+10), float32(baseY))
	path.Close()

	fillPath(screen, &path, color.NRGBA{R: 230, G: 230, B: 235, A: 255})
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.NRGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
