package colors

// package colors contains functions to quickly generate geometries.Color instances by name (i.e. "White()", "Red()", etc).

import "github.com/solarlune/geometries"

// White returns an opaque white geometries.Color.
func White() geometries.Color {
	return geometries.NewColor(1, 1, 1, 1)
}

// Black returns an opaque black geometries.Color.
func Black() geometries.Color {
	return geometries.NewColor(0, 0, 0, 1)
}

// LightGray returns an opaque light gray geometries.Color.
func LightGray() geometries.Color {
	return geometries.NewColor(0.8, 0.8, 0.8, 1)
}

// DarkestGray returns an opaque, nearly black geometries.Color; the default scene clear color.
func DarkestGray() geometries.Color {
	return geometries.NewColor(0.05, 0.05, 0.05, 1)
}

// Red returns an opaque red geometries.Color.
func Red() geometries.Color {
	return geometries.NewColorFromHex(0xff0000)
}

// Yellow returns an opaque yellow geometries.Color.
func Yellow() geometries.Color {
	return geometries.NewColorFromHex(0xffff00)
}
