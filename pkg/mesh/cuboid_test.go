package mesh

import "testing"

func TestBuildCuboid_VertexCount(t *testing.T) {
	m := BuildCuboid(0.28, 0.19, 0.52)
	if len(m.Vertices) != CuboidVertexCount {
		t.Fatalf("vertex count = %d, want %d", len(m.Vertices), CuboidVertexCount)
	}
	if m.Indices != nil || m.Mode != Triangles {
		t.Errorf("cuboid should be a non-indexed triangle list, got mode %s", m.Mode)
	}
	if n := m.TriangleCount(); n != 12 {
		t.Errorf("triangle count = %d, want 12", n)
	}
}

func TestBuildCuboid_PositionsWithinBox(t *testing.T) {
	w, h, l := float32(0.33), float32(0.08), float32(0.66)
	m := BuildCuboid(w, h, l)

	for i, v := range m.Vertices {
		p := v.Position
		if p[0] < 0 || p[0] > w || p[1] < 0 || p[1] > h || p[2] < -l || p[2] > 0 {
			t.Errorf("vertex %d position %v outside [0,%g]x[0,%g]x[-%g,0]", i, p, w, h, l)
		}
	}

	b := m.Bounds()
	if b.Min != [3]float32{0, 0, -l} || b.Max != [3]float32{w, h, 0} {
		t.Errorf("bounds = %+v", b)
	}
}

func TestBuildCuboid_FaceNormals(t *testing.T) {
	w, h, l := float32(0.3), float32(0.2), float32(0.5)
	m := BuildCuboid(w, h, l)

	// Each axis-aligned normal appears on exactly one face, and that face
	// lies on the matching box plane.
	tests := []struct {
		normal [3]float32
		axis   int
		value  float32
	}{
		{[3]float32{1, 0, 0}, 0, w},
		{[3]float32{-1, 0, 0}, 0, 0},
		{[3]float32{0, 1, 0}, 1, h},
		{[3]float32{0, -1, 0}, 1, 0},
		{[3]float32{0, 0, 1}, 2, 0},
		{[3]float32{0, 0, -1}, 2, -l},
	}

	counts := make(map[[3]float32]int)
	for _, v := range m.Vertices {
		counts[v.Normal]++
	}
	if len(counts) != 6 {
		t.Fatalf("distinct normals = %d, want 6: %v", len(counts), counts)
	}

	for _, tt := range tests {
		if counts[tt.normal] != 6 {
			t.Errorf("normal %v on %d vertices, want 6", tt.normal, counts[tt.normal])
		}
		for _, v := range m.Vertices {
			if v.Normal == tt.normal && v.Position[tt.axis] != tt.value {
				t.Errorf("vertex %v with normal %v should have axis %d = %g", v.Position, tt.normal, tt.axis, tt.value)
			}
		}
	}
}

func TestBuildCuboid_Winding(t *testing.T) {
	checkOutwardWinding(t, BuildCuboid(1, 2, 3))
}

func TestBuildCuboid_TexCoordsFitAtlas(t *testing.T) {
	// Satisfies length+width <= 1 and 2*width+2*height <= 1.
	w, h, l := float32(0.28), float32(0.19), float32(0.52)
	m := BuildCuboid(w, h, l)

	var maxU, maxV float32
	for i, v := range m.Vertices {
		u, tv := v.TexCoord[0], v.TexCoord[1]
		if u < 0 || u > 1 || tv < 0 || tv > 1 {
			t.Errorf("vertex %d texcoord %v outside unit tile", i, v.TexCoord)
		}
		maxU = max(maxU, u)
		maxV = max(maxV, tv)
	}

	if maxU != l+w {
		t.Errorf("max u = %g, want length+width = %g", maxU, l+w)
	}
	if maxV != 2*h+2*w {
		t.Errorf("max v = %g, want 2*height+2*width = %g", maxV, 2*h+2*w)
	}
}

func TestBuildCuboid_FrontFaceAtlas(t *testing.T) {
	w, h, l := float32(0.2), float32(0.1), float32(0.4)
	m := BuildCuboid(w, h, l)

	// Front face corners sit in the length-offset column.
	want := map[[3]float32][2]float32{
		{0, 0, 0}: {l, 0},
		{w, 0, 0}: {l + w, 0},
		{w, h, 0}: {l + w, h},
		{0, h, 0}: {l, h},
	}
	for _, v := range m.Vertices[:6] {
		if v.Normal != [3]float32{0, 0, 1} {
			t.Fatalf("first face should be the front face, got normal %v", v.Normal)
		}
		if uv, ok := want[v.Position]; !ok || uv != v.TexCoord {
			t.Errorf("front vertex %v texcoord = %v, want %v", v.Position, v.TexCoord, uv)
		}
	}
}

func TestBuildCuboid_Degenerate(t *testing.T) {
	m := BuildCuboid(0, 0, 0)
	if len(m.Vertices) != CuboidVertexCount {
		t.Fatalf("zero-size cuboid vertex count = %d, want %d", len(m.Vertices), CuboidVertexCount)
	}
	for _, v := range m.Vertices {
		if v.Position != [3]float32{} {
			t.Fatalf("zero-size cuboid should collapse to the origin, got %v", v.Position)
		}
	}
}
