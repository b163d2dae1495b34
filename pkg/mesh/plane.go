package mesh

// PlaneVertexCount is the number of vertices BuildPlane emits.
const PlaneVertexCount = 6

// BuildPlane creates a quad on the XZ plane centred at the origin, facing +Y.
// The corners map onto the unit UV square with v increasing towards -Z.
func BuildPlane(length, width float32) *Mesh {
	hw, hl := width/2, length/2
	up := [3]float32{0, 1, 0}

	verts := quad(make([]Vertex, 0, PlaneVertexCount),
		Vertex{Position: [3]float32{-hw, 0, hl}, Normal: up, TexCoord: [2]float32{0, 0}},
		Vertex{Position: [3]float32{hw, 0, hl}, Normal: up, TexCoord: [2]float32{1, 0}},
		Vertex{Position: [3]float32{hw, 0, -hl}, Normal: up, TexCoord: [2]float32{1, 1}},
		Vertex{Position: [3]float32{-hw, 0, -hl}, Normal: up, TexCoord: [2]float32{0, 1}},
	)

	return &Mesh{Vertices: verts, Mode: Triangles}
}
