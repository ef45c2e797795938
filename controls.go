package geometries

import (
	"math"
)

// PointerInput is one frame's worth of pointer state fed to OrbitControls.Update.
type PointerInput struct {
	DeltaX, DeltaY float64 // Pointer movement in pixels while the rotate button is held; zero otherwise
	Wheel          float64 // Vertical scroll; positive moves the camera closer
	ViewportHeight int     // Height of the view in pixels, which scales rotation so a full-height drag is one turn
}

// OrbitControls rotate a Camera around its Target with the pointer and move it closer or further with the wheel.
type OrbitControls struct {
	Camera *Camera

	EnableRotate bool
	EnableZoom   bool

	// With damping on, pointer movement keeps acting over the following frames, fading by DampingFactor each Update.
	EnableDamping bool
	DampingFactor float64

	RotateSpeed float64
	ZoomSpeed   float64

	MinDistance, MaxDistance float64

	deltaTheta, deltaPhi float64
	scale                float64
}

// NewOrbitControls creates OrbitControls for the Camera given, with damping off.
func NewOrbitControls(camera *Camera) *OrbitControls {
	return &OrbitControls{
		Camera:        camera,
		EnableRotate:  true,
		EnableZoom:    true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0.1,
		MaxDistance:   math.Inf(1),
		scale:         1,
	}
}

// Distance returns the distance between the Camera and its Target.
func (oc *OrbitControls) Distance() float64 {
	return oc.Camera.Position.Distance(oc.Camera.Target)
}

// SetDistance moves the Camera along its current viewing direction so that it's the given distance from its Target.
func (oc *OrbitControls) SetDistance(distance float64) {
	distance = math.Max(oc.MinDistance, math.Min(oc.MaxDistance, distance))
	offset := oc.Camera.Position.Sub(oc.Camera.Target)
	if offset.Magnitude() < 1e-12 {
		offset = Vector{0, 0, 1}
	}
	oc.Camera.Position = oc.Camera.Target.Add(offset.Unit().Scale(distance))
}

// Stop discards any rotation or zoom still pending from damping.
func (oc *OrbitControls) Stop() {
	oc.deltaTheta = 0
	oc.deltaPhi = 0
	oc.scale = 1
}

// Moving returns true while damping still has rotation left to apply.
func (oc *OrbitControls) Moving() bool {
	const eps = 1e-6
	return math.Abs(oc.deltaTheta) > eps || math.Abs(oc.deltaPhi) > eps
}

// Update applies the pointer input to the Camera. It should be called once per tick, with or without input,
// so that damping can play out. It returns true if the Camera moved.
func (oc *OrbitControls) Update(input PointerInput) bool {

	height := float64(max(input.ViewportHeight, 1))

	if oc.EnableRotate {
		oc.deltaTheta -= 2 * math.Pi * input.DeltaX / height * oc.RotateSpeed
		oc.deltaPhi -= 2 * math.Pi * input.DeltaY / height * oc.RotateSpeed
	}

	if oc.EnableZoom && input.Wheel != 0 {
		zoomScale := math.Pow(0.95, oc.ZoomSpeed*math.Abs(input.Wheel))
		if input.Wheel > 0 {
			oc.scale *= zoomScale
		} else {
			oc.scale /= zoomScale
		}
	}

	cam := oc.Camera
	before := cam.Position

	offset := cam.Position.Sub(cam.Target)
	radius := offset.Magnitude()

	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))
	}

	if oc.EnableDamping {
		theta += oc.deltaTheta * oc.DampingFactor
		phi += oc.deltaPhi * oc.DampingFactor
	} else {
		theta += oc.deltaTheta
		phi += oc.deltaPhi
	}

	// Keep away from the poles, where the up vector would flip.
	const eps = 1e-6
	phi = math.Max(eps, math.Min(math.Pi-eps, phi))

	radius = math.Max(oc.MinDistance, math.Min(oc.MaxDistance, radius*oc.scale))

	sinPhi := math.Sin(phi)
	cam.Position = cam.Target.Add(Vector{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	})

	if oc.EnableDamping {
		oc.deltaTheta *= 1 - oc.DampingFactor
		oc.deltaPhi *= 1 - oc.DampingFactor
	} else {
		oc.deltaTheta = 0
		oc.deltaPhi = 0
	}

	oc.scale = 1

	return !cam.Position.Equals(before)

}
