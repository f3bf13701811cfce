package spin

import (
	"math"
	"testing"
	"time"

	"github.com/cbodonnell/spinwheel/pkg/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource always returns the same fraction, making spins deterministic.
type stubSource struct {
	value float64
}

func (s *stubSource) Float64() float64 {
	return s.value
}

func TestEngine_Start_InvalidLabelCount(t *testing.T) {
	engine := NewEngine()
	start := time.Unix(0, 0)

	for _, labels := range [][]string{nil, {"A"}} {
		_, err := engine.Start(start, labels, time.Second, &stubSource{})
		assert.True(t, wheel.IsInvalidLabelCount(err), "expected ErrInvalidLabelCount for %d labels, got %v", len(labels), err)
		assert.Equal(t, StatusIdle, engine.Status())
	}
}

func TestEngine_Start_AlreadySpinning(t *testing.T) {
	engine := NewEngine()
	labels := []string{"A", "B", "C"}
	start := time.Unix(0, 0)

	handle, err := engine.Start(start, labels, time.Second, &stubSource{})
	require.NoError(t, err)
	assert.Equal(t, StatusSpinning, engine.Status())

	_, err = engine.Start(start.Add(100*time.Millisecond), labels, time.Second, &stubSource{})
	assert.True(t, IsAlreadySpinning(err), "expected ErrAlreadySpinning, got %v", err)

	// Once the spin resolves, a new spin is allowed.
	result := handle.Poll(start.Add(time.Second))
	require.True(t, result.Done)
	assert.Equal(t, StatusResolved, engine.Status())

	_, err = engine.Start(start.Add(2*time.Second), labels, time.Second, &stubSource{})
	assert.NoError(t, err)
	assert.Equal(t, StatusSpinning, engine.Status())
}

func TestHandle_Poll(t *testing.T) {
	engine := NewEngine()
	labels := []string{"A", "B", "C", "D"}
	start := time.Unix(0, 0)
	duration := 4 * time.Second

	// 10.375 total turns stop the wheel three eighths of a turn past a
	// whole number, well inside a sector.
	handle, err := engine.Start(start, labels, duration, &stubSource{value: 0.375})
	require.NoError(t, err)

	totalRotation := 10.375 * 2 * math.Pi

	result := handle.Poll(start)
	assert.False(t, result.Done)
	assert.Equal(t, 0.0, result.Rotation)
	assert.Empty(t, result.Winner)

	// Rotation is non-decreasing while spinning and never exceeds the
	// total rotation.
	prev := 0.0
	for ms := 0; ms <= 4000; ms += 100 {
		result = handle.Poll(start.Add(time.Duration(ms) * time.Millisecond))
		assert.GreaterOrEqual(t, result.Rotation, prev, "t=%dms", ms)
		assert.LessOrEqual(t, result.Rotation, totalRotation, "t=%dms", ms)
		prev = result.Rotation
	}

	require.True(t, result.Done)
	assert.InDelta(t, totalRotation, result.Rotation, 1e-9)
	assert.Equal(t, "B", result.Winner)
	assert.Equal(t, StatusResolved, engine.Status())

	// The reported winner matches what the partition model resolves for
	// the final rotation.
	want, err := wheel.Resolve(result.Rotation, labels)
	require.NoError(t, err)
	assert.Equal(t, want, result.Winner)
}

func TestHandle_Poll_BeforeStartTime(t *testing.T) {
	engine := NewEngine()
	start := time.Unix(100, 0)

	handle, err := engine.Start(start, []string{"A", "B"}, time.Second, &stubSource{})
	require.NoError(t, err)

	// Progress clamps at zero for timestamps before the start time.
	result := handle.Poll(start.Add(-time.Second))
	assert.False(t, result.Done)
	assert.Equal(t, 0.0, result.Rotation)
}

func TestHandle_Poll_IdempotentAfterResolution(t *testing.T) {
	engine := NewEngine()
	labels := []string{"A", "B", "C", "D", "E"}
	start := time.Unix(0, 0)
	duration := time.Second

	handle, err := engine.Start(start, labels, duration, &stubSource{value: 0.375})
	require.NoError(t, err)

	first := handle.Poll(start.Add(duration))
	require.True(t, first.Done)
	require.NotEmpty(t, first.Winner)

	// Polls after resolution return the identical cached result, even for
	// timestamps far past the deadline.
	for _, extra := range []time.Duration{0, time.Millisecond, time.Minute, time.Hour} {
		again := handle.Poll(start.Add(duration + extra))
		assert.Equal(t, first, again)
	}
	assert.Equal(t, StatusResolved, engine.Status())
}

func TestEngine_State(t *testing.T) {
	engine := NewEngine()
	assert.Equal(t, StatusIdle, engine.Status())
	assert.Equal(t, "Idle", engine.Status().String())

	start := time.Unix(0, 0)
	handle, err := engine.Start(start, []string{"A", "B"}, time.Second, &stubSource{value: 0.5})
	require.NoError(t, err)

	state := engine.State()
	assert.Equal(t, StatusSpinning, state.Status)
	assert.Equal(t, start, state.StartTime)
	assert.InDelta(t, 10.5*2*math.Pi, state.TotalRotation, 1e-9)
	assert.Empty(t, state.Winner)

	result := handle.Poll(start.Add(time.Second))
	require.True(t, result.Done)

	state = engine.State()
	assert.Equal(t, StatusResolved, state.Status)
	assert.Equal(t, result.Winner, state.Winner)
	assert.Equal(t, result.Rotation, state.CurrentRotation)
}
