package geometries

import (
	"math"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugInfo holds counters for a Camera's last render pass. They're reset at the start of every Render call.
type DebugInfo struct {
	FrameTime   time.Duration // CPU time spent transforming vertices and queueing draw calls.
	DrawnMeshes int           // Number of visible meshes drawn
	DrawnTris   int           // Number of filled triangles drawn, excluding those culled
	TotalTris   int           // Total number of triangles of every visible mesh
	DrawnLines  int           // Number of wireframe edges drawn, excluding those fully behind the camera
}

// Camera is a perspective camera looking from Position towards Target.
type Camera struct {
	Position Vector
	Target   Vector
	Up       Vector

	DebugInfo DebugInfo

	width, height int
	fieldOfView   float64 // Vertical field of view in degrees
	near, far     float64

	triBuffer    []sortingTriangle
	vertexBuffer []ebiten.Vertex
	indexBuffer  []uint16
}

// NewCamera creates a new Camera with the specified render width and height, a vertical field of view of 75 degrees,
// and clipping planes at 0.1 and 100. It sits at (0, 0, 3) looking at the origin.
func NewCamera(w, h int) *Camera {
	cam := &Camera{
		Position:    Vector{0, 0, 3},
		Up:          WorldUp,
		fieldOfView: 75,
		near:        0.1,
		far:         100,
	}
	cam.Resize(w, h)
	return cam
}

// Resize sets the Camera's render size, which also sets its aspect ratio. Sizes below 1 are treated as 1.
func (camera *Camera) Resize(w, h int) {
	camera.width = max(w, 1)
	camera.height = max(h, 1)
}

// Size returns the Camera's render width and height.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// AspectRatio returns the Camera's render width divided by its height.
func (camera *Camera) AspectRatio() float64 {
	return float64(camera.width) / float64(camera.height)
}

// SetFieldOfView sets the vertical field of view in degrees.
func (camera *Camera) SetFieldOfView(fovY float64) {
	camera.fieldOfView = fovY
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// SetNear sets the near clipping plane.
func (camera *Camera) SetNear(near float64) {
	camera.near = near
}

// Near returns the near clipping plane.
func (camera *Camera) Near() float64 {
	return camera.near
}

// SetFar sets the far clipping plane.
func (camera *Camera) SetFar(far float64) {
	camera.far = far
}

// Far returns the far clipping plane.
func (camera *Camera) Far() float64 {
	return camera.far
}

// ViewMatrix returns the Camera's view matrix.
func (camera *Camera) ViewMatrix() Matrix4 {
	return NewLookAtMatrix(camera.Position, camera.Target, camera.Up)
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() Matrix4 {
	return NewProjectionPerspective(camera.fieldOfView, camera.AspectRatio(), camera.near, camera.far)
}

// ViewProjection returns the projection matrix multiplied by the view matrix.
func (camera *Camera) ViewProjection() Matrix4 {
	return camera.Projection().Mult(camera.ViewMatrix())
}

// clipVertex is a vertex in clip space.
type clipVertex struct {
	Vector
	W float64
}

func (camera *Camera) clipToScreen(v clipVertex) (float32, float32, float64) {
	x := v.X / v.W
	y := v.Y / v.W
	return float32((x + 1) / 2 * float64(camera.width)),
		float32((1 - y) / 2 * float64(camera.height)),
		v.Z / v.W
}

// WorldToScreen returns the pixel position of a point in the world, and false if the point is behind the camera.
func (camera *Camera) WorldToScreen(point Vector) (float64, float64, bool) {
	p, w := camera.ViewProjection().MultVecW(point)
	if w <= 0 {
		return 0, 0, false
	}
	x, y, _ := camera.clipToScreen(clipVertex{p, w})
	return float64(x), float64(y), true
}

type sortingTriangle struct {
	x, y  [3]float32
	depth float64
	color Color
}

// Render clears the screen to the Scene's clear color and draws every visible Mesh in it.
func (camera *Camera) Render(screen *ebiten.Image, scene *Scene) {

	start := time.Now()
	camera.DebugInfo = DebugInfo{}

	screen.Fill(scene.ClearColor.ToNRGBA64())

	vp := camera.ViewProjection()

	camera.triBuffer = camera.triBuffer[:0]

	for _, mesh := range scene.Meshes() {

		if !mesh.Visible || mesh.Geometry == nil || mesh.Geometry.VertexCount() == 0 {
			continue
		}

		camera.DebugInfo.DrawnMeshes++
		camera.DebugInfo.TotalTris += mesh.Geometry.TriangleCount()

		mvp := vp.Mult(mesh.Transform())

		transformed := make([]clipVertex, mesh.Geometry.VertexCount())
		for i := range transformed {
			p, w := mvp.MultVecW(mesh.Geometry.Vertex(i))
			transformed[i] = clipVertex{p, w}
		}

		if mesh.Material.Wireframe {
			camera.drawWireframe(screen, mesh, transformed)
		} else {
			camera.collectTriangles(mesh, transformed)
		}

	}

	camera.drawTriangles(screen)

	camera.DebugInfo.FrameTime = time.Since(start)

}

func (camera *Camera) drawWireframe(screen *ebiten.Image, mesh *Mesh, transformed []clipVertex) {

	c := mesh.Material.Color.ToNRGBA64()
	lineWidth := mesh.Material.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}

	for _, edge := range mesh.Geometry.Edges() {

		a, b, visible := clipLineNear(transformed[edge.A], transformed[edge.B], camera.near)
		if !visible {
			continue
		}

		x0, y0, _ := camera.clipToScreen(a)
		x1, y1, _ := camera.clipToScreen(b)

		vector.StrokeLine(screen, x0, y0, x1, y1, lineWidth, c, true)

		camera.DebugInfo.DrawnLines++

	}

}

// clipLineNear trims a clip-space line so that both ends lie in front of the near plane.
func clipLineNear(a, b clipVertex, near float64) (clipVertex, clipVertex, bool) {

	limit := near * 0.5

	if a.W < limit && b.W < limit {
		return a, b, false
	}

	lerp := func(from, to clipVertex) clipVertex {
		t := (limit - from.W) / (to.W - from.W)
		return clipVertex{
			Vector: from.Vector.Add(to.Vector.Sub(from.Vector).Scale(t)),
			W:      limit,
		}
	}

	if a.W < limit {
		a = lerp(a, b)
	} else if b.W < limit {
		b = lerp(b, a)
	}

	return a, b, true

}

func (camera *Camera) collectTriangles(mesh *Mesh, transformed []clipVertex) {

	geo := mesh.Geometry

	for t := 0; t < geo.TriangleCount(); t++ {

		i0, i1, i2 := geo.TriangleIndices(t)
		verts := [3]clipVertex{transformed[i0], transformed[i1], transformed[i2]}

		// Triangles crossing the near plane are dropped rather than split.
		if verts[0].W <= camera.near || verts[1].W <= camera.near || verts[2].W <= camera.near {
			continue
		}

		tri := sortingTriangle{color: mesh.Material.Color}

		for i, v := range verts {
			var z float64
			tri.x[i], tri.y[i], z = camera.clipToScreen(v)
			tri.depth += z
		}

		if mesh.Material.BackfaceCulling {
			// Screen space has Y pointing down, so a counter-clockwise face has a negative signed area here.
			area := (tri.x[1]-tri.x[0])*(tri.y[2]-tri.y[0]) - (tri.x[2]-tri.x[0])*(tri.y[1]-tri.y[0])
			if area >= 0 {
				continue
			}
		}

		camera.triBuffer = append(camera.triBuffer, tri)

	}

}

func (camera *Camera) drawTriangles(screen *ebiten.Image) {

	if len(camera.triBuffer) == 0 {
		return
	}

	// Back to front; there's no depth buffer.
	sort.SliceStable(camera.triBuffer, func(i, j int) bool {
		return camera.triBuffer[i].depth > camera.triBuffer[j].depth
	})

	src := whiteImage()

	flush := func() {
		if len(camera.indexBuffer) == 0 {
			return
		}
		screen.DrawTriangles(camera.vertexBuffer, camera.indexBuffer, src, &ebiten.DrawTrianglesOptions{AntiAlias: true})
		camera.vertexBuffer = camera.vertexBuffer[:0]
		camera.indexBuffer = camera.indexBuffer[:0]
	}

	for _, tri := range camera.triBuffer {

		if len(camera.vertexBuffer)+3 > math.MaxUint16 {
			flush()
		}

		base := uint16(len(camera.vertexBuffer))

		for i := 0; i < 3; i++ {
			camera.vertexBuffer = append(camera.vertexBuffer, ebiten.Vertex{
				DstX:   tri.x[i],
				DstY:   tri.y[i],
				SrcX:   1,
				SrcY:   1,
				ColorR: tri.color.R,
				ColorG: tri.color.G,
				ColorB: tri.color.B,
				ColorA: tri.color.A,
			})
		}

		camera.indexBuffer = append(camera.indexBuffer, base, base+1, base+2)
		camera.DebugInfo.DrawnTris++

	}

	flush()

}

var defaultImg *ebiten.Image

func whiteImage() *ebiten.Image {
	if defaultImg == nil {
		defaultImg = ebiten.NewImage(3, 3)
		defaultImg.Fill(NewColor(1, 1, 1, 1).ToNRGBA64())
	}
	return defaultImg
}
