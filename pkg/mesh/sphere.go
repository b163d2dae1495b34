package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// MaxSphereSegments is the largest segment count whose (segments+1)^2
// vertices are still addressable with 16-bit indices.
const MaxSphereSegments = 255

// ErrSegmentsOutOfRange is returned when a sphere cannot be indexed.
var ErrSegmentsOutOfRange = errors.New("sphere segments out of range")

// SphereCounts returns the vertex and index counts of a sphere with the
// given number of segments.
func SphereCounts(segments int) (vertices, indices int) {
	return (segments + 1) * (segments + 1), 2 * segments * (segments + 1)
}

// BuildSphere creates a unit UV sphere drawn as a single triangle strip.
//
// Vertices are laid out column by column: the vertex for longitude step x and
// latitude step y lives at x*(segments+1)+y, with y=0 at the north pole.
// Position and normal are identical. Texture coordinates are (x, y) / segments.
//
// The strip walks the grid band by band, reversing direction on every other
// band so the whole sphere renders without restarting the strip. The
// direction changes leave zero-area triangles behind, which rasterize to
// nothing.
func BuildSphere(segments int) (*Mesh, error) {
	if segments < 1 || segments > MaxSphereSegments {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrSegmentsOutOfRange, segments, MaxSphereSegments)
	}

	nVerts, nIdx := SphereCounts(segments)
	verts := make([]Vertex, 0, nVerts)
	seg := float32(segments)

	for x := 0; x <= segments; x++ {
		for y := 0; y <= segments; y++ {
			xSeg := float32(x) / seg
			ySeg := float32(y) / seg
			sinLat := math32.Sin(ySeg * math32.Pi)
			p := [3]float32{
				math32.Cos(xSeg*2*math32.Pi) * sinLat,
				math32.Cos(ySeg * math32.Pi),
				math32.Sin(xSeg*2*math32.Pi) * sinLat,
			}
			verts = append(verts, Vertex{Position: p, Normal: p, TexCoord: [2]float32{xSeg, ySeg}})
		}
	}

	// Each band joins longitude columns col and col+1 from pole to pole.
	row := segments + 1
	indices := make([]uint16, 0, nIdx)
	oddRow := false
	for col := 0; col < segments; col++ {
		if !oddRow {
			for lat := 0; lat <= segments; lat++ {
				indices = append(indices, uint16(col*row+lat), uint16((col+1)*row+lat))
			}
		} else {
			for lat := segments; lat >= 0; lat-- {
				indices = append(indices, uint16((col+1)*row+lat), uint16(col*row+lat))
			}
		}
		oddRow = !oddRow
	}

	return &Mesh{Vertices: verts, Indices: indices, Mode: TriangleStrip}, nil
}
