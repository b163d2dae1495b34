package mesh

import gmath "github.com/Faultbox/deskscene/pkg/math"

// Below these ratios a triangle has no reliable facing: its longest edge is
// lost against the mesh extent, or its corners are nearly collinear. Sphere
// pole vertices differ only by the float32 rounding of sin(pi).
const (
	minEdgeRatio  = 1e-5 // longest edge / bounds diagonal
	minShapeRatio = 1e-5 // |cross| / longest edge squared
)

// InwardTriangles returns the positions in Triangles of every triangle whose
// geometric normal points away from the summed normals of its corners.
// Slivers are skipped.
func (m *Mesh) InwardTriangles() []int {
	box := m.Bounds()
	minEdge := minEdgeRatio * gmath.Vec3From(box.Min).Distance(gmath.Vec3From(box.Max))

	var bad []int
	for i, tri := range m.Triangles() {
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		pa, pb, pc := gmath.Vec3From(a.Position), gmath.Vec3From(b.Position), gmath.Vec3From(c.Position)

		longest := max(pa.Distance(pb), pb.Distance(pc), pc.Distance(pa))
		if longest == 0 || longest < minEdge {
			continue
		}
		face := gmath.TriangleNormal(pa, pb, pc)
		if face.Length() < minShapeRatio*longest*longest {
			continue
		}

		n := gmath.Vec3From(a.Normal).Add(gmath.Vec3From(b.Normal)).Add(gmath.Vec3From(c.Normal))
		if face.Dot(n) <= 0 {
			bad = append(bad, i)
		}
	}
	return bad
}
