package spin

import (
	"math"
	"time"

	"github.com/cbodonnell/spinwheel/pkg/random"
	"github.com/cbodonnell/spinwheel/pkg/wheel"
)

const (
	// BaseTurns is the minimum number of full turns per spin. The random
	// fractional turn is added on top, so every spin looks convincing
	// regardless of where it stops.
	BaseTurns = 10
)

// Status represents the state of the engine's current spin.
type Status int

const (
	StatusIdle Status = iota
	StatusSpinning
	StatusResolved
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusSpinning:
		return "Spinning"
	case StatusResolved:
		return "Resolved"
	}
	return "Unknown"
}

// State is the state of one spin. It is created by Start, mutated only by
// Poll, and becomes Resolved exactly once per spin. A new Start overwrites
// the previous spin's state.
type State struct {
	Status          Status
	StartTime       time.Time
	TotalRotation   float64
	CurrentRotation float64
	Winner          string
}

// Engine owns the animation timeline for a selection wheel. It is driven
// cooperatively: the caller invokes Poll on the returned handle once per
// tick with the current time. The engine has no internal goroutines or
// locks; concurrent callers must serialize access externally.
type Engine struct {
	state    State
	labels   []string
	duration time.Duration
}

func NewEngine() *Engine {
	return &Engine{}
}

// Status returns the status of the engine's current spin.
func (e *Engine) Status() Status {
	return e.state.Status
}

// State returns a copy of the current spin state.
func (e *Engine) State() State {
	return e.state
}

// Start begins a new spin over the given labels, rejecting re-entrant
// calls while a spin is in flight. The label sequence must not be mutated
// while the spin is running. The total rotation is BaseTurns full turns
// plus a random fraction of a turn drawn from rand. duration must be
// positive; a non-positive duration completes on the first Poll.
func (e *Engine) Start(now time.Time, labels []string, duration time.Duration, rand random.Source) (*Handle, error) {
	if e.state.Status == StatusSpinning {
		return nil, &ErrAlreadySpinning{}
	}
	if err := wheel.ValidateLabelCount(len(labels)); err != nil {
		return nil, err
	}

	turns := BaseTurns + rand.Float64()
	e.labels = append([]string(nil), labels...)
	e.duration = duration
	e.state = State{
		Status:        StatusSpinning,
		StartTime:     now,
		TotalRotation: turns * 2 * math.Pi,
	}

	return &Handle{engine: e}, nil
}

// Result is the outcome of one Poll. Winner is empty until Done is true.
type Result struct {
	Rotation float64
	Done     bool
	Winner   string
}

// Handle polls the spin it was created for.
type Handle struct {
	engine *Engine
}

// Poll advances the spin to the given time and returns the eased rotation
// to draw. When the spin first reaches its full duration the winning
// sector is resolved, cached, and the engine becomes Resolved; polls after
// that return the identical cached winner without re-resolving.
func (h *Handle) Poll(now time.Time) Result {
	e := h.engine
	if e.state.Status == StatusResolved {
		return Result{
			Rotation: e.state.CurrentRotation,
			Done:     true,
			Winner:   e.state.Winner,
		}
	}

	elapsed := now.Sub(e.state.StartTime)
	done := elapsed >= e.duration
	progress := 1.0
	if !done {
		progress = math.Max(float64(elapsed)/float64(e.duration), 0)
	}

	rotation := e.state.TotalRotation * EaseOutCubic(progress)
	e.state.CurrentRotation = rotation

	if !done {
		return Result{Rotation: rotation}
	}

	k := wheel.ResolveIndex(rotation, len(e.labels))
	e.state.Winner = e.labels[k]
	e.state.Status = StatusResolved

	return Result{
		Rotation: rotation,
		Done:     true,
		Winner:   e.state.Winner,
	}
}
