package wheel

// This package includes the geometric partition model for the selection
// wheel: sector layout, palette color assignment, and angle-to-winner
// resolution. All angles are radians, clockwise-positive.

import (
	"math"
)

const (
	// MinSectors is the minimum number of sectors on a wheel.
	MinSectors = 2
	// MaxSectors is the maximum number of sectors on a wheel.
	MaxSectors = 100
	// PointerAngle is the angular position of the fixed pointer marker.
	// 3*pi/2 is the top of the circle in screen coordinates, matching a
	// pointer drawn above the wheel pointing down into it. The renderer
	// must draw the pointer at this same angle.
	PointerAngle = 3 * math.Pi / 2
)

// Sector is one angular slice of the wheel. Sectors partition [0, 2*pi)
// in label order with no gaps or overlaps: the start angle of sector i+1
// equals the end angle of sector i.
type Sector struct {
	Index      int     `json:"index"`
	Label      string  `json:"label"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// ValidateLabelCount checks that n is a drawable sector count.
func ValidateLabelCount(n int) error {
	if n < MinSectors || n > MaxSectors {
		return &ErrInvalidLabelCount{Count: n}
	}
	return nil
}

// Partition returns one sector per label, in label order, each spanning
// 2*pi/n radians starting at angle 0. Duplicate labels are treated as
// distinct sectors. The same input order always produces the same sectors.
func Partition(labels []string) ([]Sector, error) {
	if err := ValidateLabelCount(len(labels)); err != nil {
		return nil, err
	}

	n := len(labels)
	slice := 2 * math.Pi / float64(n)
	sectors := make([]Sector, n)
	for i, label := range labels {
		end := slice * float64(i+1)
		if i == n-1 {
			end = 2 * math.Pi
		}
		sectors[i] = Sector{
			Index:      i,
			Label:      label,
			StartAngle: slice * float64(i),
			EndAngle:   end,
		}
	}

	return sectors, nil
}

// ColorOf returns the palette index for a sector. Colors cycle when there
// are more sectors than palette entries. paletteSize must be positive.
func ColorOf(index, paletteSize int) int {
	return index % paletteSize
}

// NormalizeAngle reduces a rotation angle into [0, 2*pi). Negative input
// is handled.
func NormalizeAngle(r float64) float64 {
	return math.Mod(math.Mod(r, 2*math.Pi)+2*math.Pi, 2*math.Pi)
}

// ResolveIndex returns the index of the sector sitting under the pointer
// after the wheel has been rotated by rotation radians. Rotating the wheel
// by r is equivalent to rotating the pointer by -r relative to the wheel,
// so the wheel's rotation is inverted to find which un-rotated sector
// index is now at the pointer. The index convention matches Partition.
// n must be a valid sector count.
func ResolveIndex(rotation float64, n int) int {
	norm := NormalizeAngle(rotation)
	slice := 2 * math.Pi / float64(n)
	return int(math.Floor(math.Mod(PointerAngle-norm+2*math.Pi, 2*math.Pi)/slice)) % n
}

// Resolve returns the label of the sector under the pointer for the given
// final rotation.
func Resolve(finalRotation float64, labels []string) (string, error) {
	if err := ValidateLabelCount(len(labels)); err != nil {
		return "", err
	}
	return labels[ResolveIndex(finalRotation, len(labels))], nil
}
