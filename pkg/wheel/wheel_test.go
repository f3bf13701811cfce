package wheel

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("label-%d", i)
	}
	return labels
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		wantErr bool
	}{
		{
			name:    "no labels",
			labels:  nil,
			wantErr: true,
		},
		{
			name:    "one label",
			labels:  []string{"A"},
			wantErr: true,
		},
		{
			name:   "two labels",
			labels: []string{"A", "B"},
		},
		{
			name:   "four labels",
			labels: []string{"A", "B", "C", "D"},
		},
		{
			name:   "duplicate labels are distinct sectors",
			labels: []string{"A", "A", "A"},
		},
		{
			name:   "one hundred labels",
			labels: testLabels(100),
		},
		{
			name:    "one hundred and one labels",
			labels:  testLabels(101),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectors, err := Partition(tt.labels)
			if tt.wantErr {
				assert.True(t, IsInvalidLabelCount(err), "expected ErrInvalidLabelCount, got %v", err)
				assert.Nil(t, sectors)
				return
			}
			require.NoError(t, err)
			require.Len(t, sectors, len(tt.labels))

			n := len(tt.labels)
			slice := 2 * math.Pi / float64(n)
			assert.Equal(t, 0.0, sectors[0].StartAngle)
			assert.Equal(t, 2*math.Pi, sectors[n-1].EndAngle)
			for i, s := range sectors {
				assert.Equal(t, i, s.Index)
				assert.Equal(t, tt.labels[i], s.Label)
				assert.InDelta(t, slice, s.EndAngle-s.StartAngle, 1e-9, "span of sector %d", i)
				if i < n-1 {
					assert.Equal(t, s.EndAngle, sectors[i+1].StartAngle, "boundary between sectors %d and %d", i, i+1)
				}
			}
		})
	}
}

func TestColorOf(t *testing.T) {
	tests := []struct {
		index       int
		paletteSize int
		want        int
	}{
		{0, 8, 0},
		{7, 8, 7},
		{8, 8, 0},
		{13, 8, 5},
		{5, 3, 2},
		{99, 8, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d mod %d", tt.index, tt.paletteSize), func(t *testing.T) {
			assert.Equal(t, tt.want, ColorOf(tt.index, tt.paletteSize))
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		r    float64
		want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{-2 * math.Pi, 0},
		{5 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%f", tt.r), func(t *testing.T) {
			got := NormalizeAngle(tt.r)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Less(t, got, 2*math.Pi)
		})
	}
}

func TestResolve(t *testing.T) {
	labels := []string{"A", "B", "C", "D"}
	tests := []struct {
		name     string
		rotation float64
		want     string
	}{
		// Zero rotation leaves sector 3 at the pointer (the pointer sits at
		// 3*pi/2, inside the un-rotated span of the last quarter).
		{
			name:     "zero rotation",
			rotation: 0,
			want:     "D",
		},
		{
			name:     "full turn",
			rotation: 2 * math.Pi,
			want:     "D",
		},
		{
			name:     "negative full turn",
			rotation: -2 * math.Pi,
			want:     "D",
		},
		{
			name:     "many turns",
			rotation: 10*2*math.Pi + math.Pi/4,
			want:     "C",
		},
		{
			name:     "quarter turn clockwise",
			rotation: math.Pi / 4,
			want:     "C",
		},
		{
			name:     "three quarter pi",
			rotation: 3 * math.Pi / 4,
			want:     "B",
		},
		{
			name:     "pointer angle rotation brings first sector under pointer",
			rotation: 3 * math.Pi / 2,
			want:     "A",
		},
		{
			name:     "seven quarter pi",
			rotation: 7 * math.Pi / 4,
			want:     "D",
		},
		{
			name:     "negative quarter pi",
			rotation: -math.Pi / 4,
			want:     "D",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.rotation, labels)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_InvalidLabelCount(t *testing.T) {
	for _, labels := range [][]string{nil, {"A"}, testLabels(101)} {
		_, err := Resolve(0, labels)
		assert.True(t, IsInvalidLabelCount(err), "expected ErrInvalidLabelCount for %d labels, got %v", len(labels), err)
	}
}

func TestResolve_Periodic(t *testing.T) {
	labels := testLabels(7)
	for _, r := range []float64{0, 0.1, 1.3, math.Pi, 5.9, -2.7, 123.456} {
		want, err := Resolve(r, labels)
		require.NoError(t, err)

		plus, err := Resolve(r+2*math.Pi, labels)
		require.NoError(t, err)
		assert.Equal(t, want, plus, "rotation %f", r)

		minus, err := Resolve(r-2*math.Pi, labels)
		require.NoError(t, err)
		assert.Equal(t, want, minus, "rotation %f", r)
	}
}

func TestResolveIndex_InRange(t *testing.T) {
	rotations := []float64{0, 0.001, 1.0, math.Pi, 2*math.Pi - 0.001, -1.0, 100.0, -100.0}
	for n := MinSectors; n <= MaxSectors; n++ {
		for _, r := range rotations {
			k := ResolveIndex(r, n)
			assert.GreaterOrEqual(t, k, 0, "n=%d r=%f", n, r)
			assert.Less(t, k, n, "n=%d r=%f", n, r)
		}
	}
}

// Rotating the wheel by PointerAngle-a brings the point at angle a under
// the pointer, so resolving that rotation must name the sector containing
// a. This pins the resolver to the same index convention Partition draws
// with.
func TestResolve_ConsistentWithPartition(t *testing.T) {
	for _, n := range []int{2, 3, 4, 7, 12, 100} {
		labels := testLabels(n)
		sectors, err := Partition(labels)
		require.NoError(t, err)

		for _, s := range sectors {
			mid := (s.StartAngle + s.EndAngle) / 2
			got, err := Resolve(PointerAngle-mid, labels)
			require.NoError(t, err)
			assert.Equal(t, labels[s.Index], got, "n=%d sector=%d", n, s.Index)
		}
	}
}
