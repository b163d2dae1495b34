package mesh

import (
	"github.com/chewxy/math32"

	gmath "github.com/Faultbox/deskscene/pkg/math"
)

// sliceAngle returns the rim angle of slice i. Slice indices wrap, so the
// seam reuses the exact angle of slice 0 instead of slices*theta.
func sliceAngle(i, slices int) float32 {
	theta := 2 * math32.Pi / float32(slices)
	return float32(i%slices) * theta
}

// BuildPrismSide creates the lateral surface of a right prism with the given
// number of slices: 4 slices is a square prism, 60 is visually a cylinder.
// The prism stands on the XZ plane from y=0 to y=height.
//
// Normals are radial so the sides shade smoothly. Texture u runs from 0 to 1
// around the rim and v from 0 (bottom) to 1 (top). The seam column shares its
// position with slice 0 but keeps u=1 so the texture does not wrap backwards.
func BuildPrismSide(slices int, radius, height float32) *Mesh {
	if slices <= 0 {
		return &Mesh{Mode: Triangles}
	}

	section := 1 / float32(slices)
	verts := make([]Vertex, 0, 6*slices)

	for i := 0; i < slices; i++ {
		a0 := sliceAngle(i, slices)
		a1 := sliceAngle(i+1, slices)
		c0, s0 := math32.Cos(a0), math32.Sin(a0)
		c1, s1 := math32.Cos(a1), math32.Sin(a1)
		u0 := float32(i) * section
		u1 := float32(i+1) * section

		bottom0 := Vertex{Position: [3]float32{radius * c0, 0, radius * s0}, Normal: [3]float32{c0, 0, s0}, TexCoord: [2]float32{u0, 0}}
		top0 := Vertex{Position: [3]float32{radius * c0, height, radius * s0}, Normal: [3]float32{c0, 0, s0}, TexCoord: [2]float32{u0, 1}}
		bottom1 := Vertex{Position: [3]float32{radius * c1, 0, radius * s1}, Normal: [3]float32{c1, 0, s1}, TexCoord: [2]float32{u1, 0}}
		top1 := Vertex{Position: [3]float32{radius * c1, height, radius * s1}, Normal: [3]float32{c1, 0, s1}, TexCoord: [2]float32{u1, 1}}

		verts = append(verts,
			top0, top1, bottom0,
			bottom0, top1, bottom1,
		)
	}

	return &Mesh{Vertices: verts, Mode: Triangles}
}

// BuildPrismFace creates a flat n-gon cap of the given radius on the XZ plane,
// as one triangle per slice joined at the origin. Top faces point +Y and
// bottom faces -Y. The rim maps onto the circle inscribed in the UV square.
func BuildPrismFace(top bool, slices int, radius float32) *Mesh {
	if slices <= 0 {
		return &Mesh{Mode: Triangles}
	}

	normal := gmath.Vec3{Y: -1}
	if top {
		normal = gmath.UnitY
	}

	const texRadius = 0.5
	texCenter := gmath.Vec2{X: 0.5, Y: 0.5}

	rim := func(i int) Vertex {
		a := sliceAngle(i, slices)
		dir := gmath.Vec2{X: math32.Cos(a), Y: math32.Sin(a)}
		return Vertex{
			Position: [3]float32{radius * dir.X, 0, radius * dir.Y},
			Normal:   normal.Array(),
			TexCoord: dir.Scale(texRadius).Add(texCenter).Array(),
		}
	}
	center := Vertex{Normal: normal.Array(), TexCoord: texCenter.Array()}

	verts := make([]Vertex, 0, 3*slices)
	for i := 0; i < slices; i++ {
		cur, next := rim(i), rim(i+1)
		if top {
			verts = append(verts, next, cur, center)
		} else {
			verts = append(verts, cur, next, center)
		}
	}

	return &Mesh{Vertices: verts, Mode: Triangles}
}
