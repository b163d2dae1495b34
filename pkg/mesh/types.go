// Package mesh builds vertex and index buffers for primitive solids.
//
// All builders are pure functions: each call allocates and returns its own
// buffers, and identical arguments produce bit-identical output. Triangles
// are wound counter-clockwise when viewed from the side their normal faces.
package mesh

import gmath "github.com/Faultbox/deskscene/pkg/math"

// Vertex layout shared by every builder: [px py pz nx ny nz tu tv].
const (
	FloatsPerVertex = 8
	Stride          = FloatsPerVertex * 4 // bytes

	PositionOffset = 0     // bytes
	NormalOffset   = 3 * 4 // bytes
	TexCoordOffset = 6 * 4 // bytes
)

// Vertex is a single interleaved mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Primitive is the topology the renderer should draw a mesh with.
type Primitive uint8

const (
	// Triangles is a flat list where every 3 vertices form one triangle.
	Triangles Primitive = iota
	// TriangleStrip is an indexed strip; each index after the first two
	// forms a triangle with the previous two.
	TriangleStrip
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	default:
		return "unknown"
	}
}

// Mesh holds generated geometry ready for GPU upload.
// Indices is nil for non-indexed meshes.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
	Mode     Primitive
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Interleave flattens the vertices into the renderer buffer layout.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}

// Bounds returns the bounding box of all vertex positions.
// An empty mesh returns the zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	lo := gmath.Vec3From(m.Vertices[0].Position)
	hi := lo
	for _, v := range m.Vertices[1:] {
		p := gmath.Vec3From(v.Position)
		lo, hi = lo.Min(p), hi.Max(p)
	}
	return Bounds{Min: lo.Array(), Max: hi.Array()}
}

// Triangles returns every triangle of the mesh as vertex index triples,
// wound the way the renderer would rasterize them.
//
// For strips, odd triangles are swapped to keep the winding consistent and
// joins that repeat an index are dropped. Zero-area triangles with distinct
// indices (poles, band reversals) are kept.
func (m *Mesh) Triangles() [][3]uint32 {
	switch m.Mode {
	case TriangleStrip:
		if len(m.Indices) < 3 {
			return nil
		}
		tris := make([][3]uint32, 0, len(m.Indices)-2)
		for k := 0; k+2 < len(m.Indices); k++ {
			a, b, c := uint32(m.Indices[k]), uint32(m.Indices[k+1]), uint32(m.Indices[k+2])
			if a == b || b == c || a == c {
				continue
			}
			if k%2 == 1 {
				a, b = b, a
			}
			tris = append(tris, [3]uint32{a, b, c})
		}
		return tris
	default:
		n := len(m.Vertices) / 3
		tris := make([][3]uint32, n)
		for i := range tris {
			base := uint32(i * 3)
			tris[i] = [3]uint32{base, base + 1, base + 2}
		}
		return tris
	}
}

// TriangleCount returns the number of triangles Triangles would return.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles())
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{Mode: m.Mode}
	c.Vertices = append([]Vertex(nil), m.Vertices...)
	if m.Indices != nil {
		c.Indices = append([]uint16(nil), m.Indices...)
	}
	return c
}

// quad appends the two triangles of a planar quad given its corners in
// counter-clockwise order as seen from outside: bottom-left, bottom-right,
// top-right, top-left. The quad is split along the br-tl diagonal.
func quad(dst []Vertex, bl, br, tr, tl Vertex) []Vertex {
	return append(dst,
		bl, br, tl,
		br, tr, tl,
	)
}
