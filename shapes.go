package geometries

import (
	"math"
	"math/rand"
)

// NewBoxGeometry creates a box centered on the origin. Each face is split into a grid of segments along its two axes;
// segment counts below 1 are treated as 1.
func NewBoxGeometry(width, height, depth float64, widthSegments, heightSegments, depthSegments int) *Geometry {

	widthSegments = max(widthSegments, 1)
	heightSegments = max(heightSegments, 1)
	depthSegments = max(depthSegments, 1)

	geo := &Geometry{Name: "BoxGeometry"}

	const x, y, z = 0, 1, 2

	// Each face plane is described by the axes its grid runs along (u, v), the axis it faces (w),
	// and the direction of u and v, so that every face winds outwards.
	geo.buildBoxFace(z, y, x, -1, -1, depth, height, width, depthSegments, heightSegments)  // +X
	geo.buildBoxFace(z, y, x, 1, -1, depth, height, -width, depthSegments, heightSegments)  // -X
	geo.buildBoxFace(x, z, y, 1, 1, width, depth, height, widthSegments, depthSegments)     // +Y
	geo.buildBoxFace(x, z, y, 1, -1, width, depth, -height, widthSegments, depthSegments)   // -Y
	geo.buildBoxFace(x, y, z, 1, -1, width, height, depth, widthSegments, heightSegments)   // +Z
	geo.buildBoxFace(x, y, z, -1, -1, width, height, -depth, widthSegments, heightSegments) // -Z

	return geo

}

func (geo *Geometry) buildBoxFace(u, v, w int, udir, vdir, width, height, depth float64, gridX, gridY int) {

	start := geo.VertexCount()

	segmentWidth := width / float64(gridX)
	segmentHeight := height / float64(gridY)

	for iy := 0; iy <= gridY; iy++ {

		py := float64(iy)*segmentHeight - height/2

		for ix := 0; ix <= gridX; ix++ {

			px := float64(ix)*segmentWidth - width/2

			var pos [3]float64
			pos[u] = px * udir
			pos[v] = py * vdir
			pos[w] = depth / 2

			geo.Positions = append(geo.Positions, pos[0], pos[1], pos[2])

		}

	}

	row := gridX + 1

	for iy := 0; iy < gridY; iy++ {
		for ix := 0; ix < gridX; ix++ {
			a := start + ix + row*iy
			b := start + ix + row*(iy+1)
			c := start + (ix + 1) + row*(iy+1)
			d := start + (ix + 1) + row*iy
			geo.Indices = append(geo.Indices, a, b, d, b, c, d)
		}
	}

}

// NewSphereGeometry creates a UV sphere centered on the origin. widthSegments is the number of segments around the
// equator (at least 3), heightSegments the number of rings from pole to pole (at least 2).
func NewSphereGeometry(radius float64, widthSegments, heightSegments int) *Geometry {

	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	geo := &Geometry{Name: "SphereGeometry"}

	row := widthSegments + 1

	for iy := 0; iy <= heightSegments; iy++ {

		theta := float64(iy) / float64(heightSegments) * math.Pi

		for ix := 0; ix <= widthSegments; ix++ {

			phi := float64(ix) / float64(widthSegments) * math.Pi * 2

			geo.Positions = append(geo.Positions,
				-radius*math.Cos(phi)*math.Sin(theta),
				radius*math.Cos(theta),
				radius*math.Sin(phi)*math.Sin(theta),
			)

		}

	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {

			a := iy*row + ix + 1
			b := iy*row + ix
			c := (iy+1)*row + ix
			d := (iy+1)*row + ix + 1

			// The top and bottom rings collapse to a point, so they only get one triangle per segment.
			if iy != 0 {
				geo.Indices = append(geo.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				geo.Indices = append(geo.Indices, b, c, d)
			}

		}
	}

	return geo

}

// NewTriangleGeometry creates a single triangle from a hand-written position buffer: (0, 0, 0), (0, 1, 0), (1, 0, 0).
func NewTriangleGeometry() *Geometry {

	positions := make([]float64, 9)

	// First vertex
	positions[0] = 0
	positions[1] = 0
	positions[2] = 0

	// Second vertex
	positions[3] = 0
	positions[4] = 1
	positions[5] = 0

	// Third vertex
	positions[6] = 1
	positions[7] = 0
	positions[8] = 0

	return &Geometry{Name: "Own buffer geometry", Positions: positions}

}

// NewRandomTrianglesGeometry creates count unconnected triangles with every coordinate picked uniformly from
// [-spread/2, spread/2). A count below 1 is treated as 1.
func NewRandomTrianglesGeometry(count int, spread float64, rng *rand.Rand) *Geometry {

	count = max(count, 1)

	positions := make([]float64, count*3*3)

	for i := range positions {
		positions[i] = (rng.Float64() - 0.5) * spread
	}

	return &Geometry{Name: "Random triangles", Positions: positions}

}
