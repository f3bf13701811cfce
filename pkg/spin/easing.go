package spin

import "math"

// EaseOutCubic maps linear time progress in [0, 1] to eased progress:
// fast start, smooth deceleration. It is monotonically non-decreasing
// with EaseOutCubic(0) == 0 and EaseOutCubic(1) == 1, so the wheel never
// snaps backwards while stopping.
func EaseOutCubic(progress float64) float64 {
	return 1 - math.Pow(1-progress, 3)
}
