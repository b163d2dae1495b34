package scene

import (
	"context"
	"errors"
	"testing"

	gmath "github.com/Faultbox/deskscene/pkg/math"
	"github.com/Faultbox/deskscene/pkg/mesh"
)

func TestBakeDesk(t *testing.T) {
	s := Desk()
	instances, err := Bake(context.Background(), s, 4)
	if err != nil {
		t.Fatalf("bake: %v", err)
	}

	if len(instances) != len(s.Objects)+len(s.Lights) {
		t.Fatalf("instances = %d", len(instances))
	}
	for i, o := range s.Objects {
		if instances[i].Name != o.Name || instances[i].Kind != o.Shape.Type {
			t.Errorf("instance %d = %s/%s, want %s/%s", i, instances[i].Name, instances[i].Kind, o.Name, o.Shape.Type)
		}
		if instances[i].Emissive {
			t.Errorf("object %s marked emissive", o.Name)
		}
	}
	for _, in := range instances[len(s.Objects):] {
		if !in.Emissive || in.Kind != mesh.KindPlane {
			t.Errorf("light instance %s = %+v", in.Name, in)
		}
	}

	st := Summarize(instances)
	// Windows share the table's unit plane.
	if st.Meshes != 13 {
		t.Errorf("distinct meshes = %d, want 13", st.Meshes)
	}
	if st.Instances != 24 {
		t.Errorf("instances = %d, want 24", st.Instances)
	}
}

func TestBakeSharesEqualShapes(t *testing.T) {
	instances, err := Bake(context.Background(), Desk(), 0)
	if err != nil {
		t.Fatal(err)
	}
	byName := make(map[string]Instance)
	for _, in := range instances {
		byName[in.Name] = in
	}

	if byName["battery_1_case_side"].Mesh != byName["battery_2_case_side"].Mesh {
		t.Error("identical battery cases should share a mesh")
	}
	if byName["table"].Mesh != byName["window_back"].Mesh {
		t.Error("table and window planes should share a mesh")
	}
	if byName["amp_side_left"].Mesh == byName["volume_knob_side"].Mesh {
		t.Error("different prism heights must not share a mesh")
	}
}

func TestBakeMatchesSequential(t *testing.T) {
	s := Desk()
	a, err := Bake(context.Background(), s, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Bake(context.Background(), s, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		va, vb := a[i].Mesh.Interleave(), b[i].Mesh.Interleave()
		if len(va) != len(vb) {
			t.Fatalf("%s: vertex data length differs", a[i].Name)
		}
		for k := range va {
			if va[k] != vb[k] {
				t.Fatalf("%s: vertex data differs at %d", a[i].Name, k)
			}
		}
	}
}

func TestBakeErrors(t *testing.T) {
	bad := &Scene{Name: "bad", Objects: []Object{
		{Name: "ball", Shape: ShapeSpec{Type: mesh.KindSphere, Segments: 1000}},
	}}
	if _, err := Bake(context.Background(), bad, 2); !errors.Is(err, mesh.ErrSegmentsOutOfRange) {
		t.Errorf("err = %v, want ErrSegmentsOutOfRange", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Bake(ctx, Desk(), 2); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestInstanceWorld(t *testing.T) {
	m := mesh.BuildPlane(1, 1)
	in := Instance{
		Name:  "wall",
		Mesh:  m,
		Model: Uniform([3]float32{0, 15, -50}, 20).Rotated(90, axisX).Model(),
	}

	w := in.World()
	if &w.Vertices[0] == &m.Vertices[0] {
		t.Fatal("World must not modify the shared mesh")
	}
	if m.Vertices[0].Normal != [3]float32{0, 1, 0} {
		t.Fatal("shared mesh normal changed")
	}

	// +Y rotated 90 degrees about X faces +Z.
	for i, v := range w.Vertices {
		n := v.Normal
		if n[2] < 0.9999 || abs(n[0]) > 1e-5 || abs(n[1]) > 1e-5 {
			t.Fatalf("vertex %d normal = %v, want (0,0,1)", i, n)
		}
		if abs(v.Position[2]-(-50)) > 1e-4 {
			t.Fatalf("vertex %d z = %g, want -50", i, v.Position[2])
		}
	}
}

func TestInstanceWorldNonUniformScale(t *testing.T) {
	m := mesh.BuildPrismSide(4, 1, 1)
	in := Instance{Mesh: m, Model: gmath.Scale(2, 1, 1)}

	for i, v := range in.World().Vertices {
		if l := gmath.Vec3From(v.Normal).Length(); abs(l-1) > 1e-5 {
			t.Fatalf("vertex %d normal length = %g", i, l)
		}
	}
}

func TestInstanceWorldMirrorKeepsWinding(t *testing.T) {
	sphere, err := mesh.BuildSphere(8)
	if err != nil {
		t.Fatal(err)
	}
	meshes := []*mesh.Mesh{mesh.BuildCuboid(1, 1, 1), sphere}

	for _, m := range meshes {
		w := Instance{Mesh: m, Model: gmath.Scale(-1, 1, 1)}.World()
		if bad := w.InwardTriangles(); len(bad) > 0 {
			t.Fatalf("%s: %d triangles wound inward after mirroring, first %d", m.Mode, len(bad), bad[0])
		}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
