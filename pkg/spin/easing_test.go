package spin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-9)

	// Non-decreasing over the full progress range.
	steps := 1000
	prev := EaseOutCubic(0)
	for i := 1; i <= steps; i++ {
		progress := float64(i) / float64(steps)
		eased := EaseOutCubic(progress)
		assert.GreaterOrEqual(t, eased, prev, "progress %f", progress)
		assert.GreaterOrEqual(t, eased, 0.0)
		assert.LessOrEqual(t, eased, 1.0)
		prev = eased
	}
}
