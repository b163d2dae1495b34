package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/deskscene/internal/scene"
	"github.com/Faultbox/deskscene/pkg/mesh"
)

// OBJOptions controls Wavefront OBJ output.
type OBJOptions struct {
	// World writes positions and normals in world space.
	World bool
	// Header is written as a leading comment when set.
	Header string
}

// WriteOBJ writes the instances as one OBJ object each. Indices are global
// across the file, as the format requires.
func WriteOBJ(w io.Writer, instances []scene.Instance, opts OBJOptions) error {
	bw := bufio.NewWriter(w)

	if opts.Header != "" {
		fmt.Fprintf(bw, "# %s\n", opts.Header)
	}

	base := 1
	for _, in := range instances {
		m := in.Mesh
		if opts.World {
			m = in.World()
		}
		writeOBJObject(bw, in.Name, m, base)
		base += len(m.Vertices)
	}

	return bw.Flush()
}

func writeOBJObject(w *bufio.Writer, name string, m *mesh.Mesh, base int) {
	fmt.Fprintf(w, "o %s\n", name)
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "vt %g %g\n", v.TexCoord[0], v.TexCoord[1])
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(w, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for _, tri := range m.Triangles() {
		a, b, c := int(tri[0])+base, int(tri[1])+base, int(tri[2])+base
		fmt.Fprintf(w, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
}
