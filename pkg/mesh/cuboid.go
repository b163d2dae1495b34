package mesh

// CuboidVertexCount is the number of vertices BuildCuboid emits.
const CuboidVertexCount = 36

// BuildCuboid creates a box spanning x in [0,width], y in [0,height] and
// z in [-length,0], with the origin at the front bottom-left corner.
//
// The six faces are unwrapped into a single texture strip. The layout only
// fits one UV tile when length+width <= 1 and 2*width+2*height <= 1; larger
// boxes bleed into neighbouring faces.
func BuildCuboid(width, height, length float32) *Mesh {
	w, h, l := width, height, length

	v := func(x, y, z float32, n [3]float32, u, t float32) Vertex {
		return Vertex{Position: [3]float32{x, y, z}, Normal: n, TexCoord: [2]float32{u, t}}
	}

	var (
		posX = [3]float32{1, 0, 0}
		negX = [3]float32{-1, 0, 0}
		posY = [3]float32{0, 1, 0}
		negY = [3]float32{0, -1, 0}
		posZ = [3]float32{0, 0, 1}
		negZ = [3]float32{0, 0, -1}
	)

	verts := make([]Vertex, 0, CuboidVertexCount)

	// Front (+Z)
	verts = quad(verts,
		v(0, 0, 0, posZ, l, 0),
		v(w, 0, 0, posZ, l+w, 0),
		v(w, h, 0, posZ, l+w, h),
		v(0, h, 0, posZ, l, h),
	)

	// Back (-Z), seen from behind so +X runs right to left
	verts = quad(verts,
		v(w, 0, -l, negZ, l, h),
		v(0, 0, -l, negZ, l+w, h),
		v(0, h, -l, negZ, l+w, 2*h),
		v(w, h, -l, negZ, l, 2*h),
	)

	// Left (-X)
	verts = quad(verts,
		v(0, 0, -l, negX, 0, 0),
		v(0, 0, 0, negX, l, 0),
		v(0, h, 0, negX, l, h),
		v(0, h, -l, negX, 0, h),
	)

	// Right (+X)
	verts = quad(verts,
		v(w, 0, 0, posX, 0, h),
		v(w, 0, -l, posX, l, h),
		v(w, h, -l, posX, l, 2*h),
		v(w, h, 0, posX, 0, 2*h),
	)

	// Top (+Y)
	verts = quad(verts,
		v(0, h, 0, posY, l, 2*h),
		v(w, h, 0, posY, l, 2*h+w),
		v(w, h, -l, posY, 0, 2*h+w),
		v(0, h, -l, posY, 0, 2*h),
	)

	// Bottom (-Y), seen from below so +X runs right to left
	verts = quad(verts,
		v(w, 0, 0, negY, l, 2*h+w),
		v(0, 0, 0, negY, l, 2*h+2*w),
		v(0, 0, -l, negY, 0, 2*h+2*w),
		v(w, 0, -l, negY, 0, 2*h+w),
	)

	return &Mesh{Vertices: verts, Mode: Triangles}
}
