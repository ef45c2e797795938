package geometries

import "math"

// MaxPixelRatio caps how many render pixels are used per window pixel on high density displays.
const MaxPixelRatio = 2.0

// PixelRatio returns the render pixel ratio for a display's device scale factor, capped at MaxPixelRatio.
// Scale factors at or below 0 are treated as 1.
func PixelRatio(deviceScale float64) float64 {
	if deviceScale <= 0 {
		return 1
	}
	return math.Min(deviceScale, MaxPixelRatio)
}

// ViewportSize returns the render size for a window of the given logical size on a display with the given device scale factor.
func ViewportSize(width, height int, deviceScale float64) (int, int) {
	ratio := PixelRatio(deviceScale)
	return max(int(math.Ceil(float64(width)*ratio)), 1), max(int(math.Ceil(float64(height)*ratio)), 1)
}
