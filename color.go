package geometries

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex returns an opaque Color from a 0xRRGGBB value.
func NewColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// ToNRGBA64 converts a color to a color.NRGBA64 instance.
func (c Color) ToNRGBA64() color.NRGBA64 {
	return color.NRGBA64{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: clampChannel(c.A),
	}
}

func clampChannel(v float32) uint16 {
	return uint16(math.Max(0, math.Min(1, float64(v))) * math.MaxUint16)
}
