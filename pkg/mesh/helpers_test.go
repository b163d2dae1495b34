package mesh

import (
	"math"
	"testing"

	gmath "github.com/Faultbox/deskscene/pkg/math"
)

func vec(a [3]float32) gmath.Vec3 { return gmath.Vec3From(a) }

// checkOutwardWinding fails the test if any triangle is wound against its
// vertex normals.
func checkOutwardWinding(t *testing.T, m *Mesh) {
	t.Helper()
	if bad := m.InwardTriangles(); len(bad) > 0 {
		tris := m.Triangles()
		t.Fatalf("%d triangles wound clockwise, first %d %v", len(bad), bad[0], tris[bad[0]])
	}
}

func sameBits(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}
