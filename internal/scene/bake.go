package scene

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/deskscene/internal/logger"
	gmath "github.com/Faultbox/deskscene/pkg/math"
	"github.com/Faultbox/deskscene/pkg/mesh"
)

// Instance is a built mesh placed in the world.
//
// Instances whose shapes are equal share the same Mesh; treat it as
// read-only and call World for a private copy.
type Instance struct {
	Name     string
	Kind     mesh.Kind
	Mesh     *mesh.Mesh
	Model    gmath.Mat4
	Specular float32
	Emissive bool
	Color    [3]float32
}

// Bake builds every distinct shape in the scene once, using up to workers
// goroutines (no limit when workers <= 0), and returns one instance per
// object followed by one per light.
func Bake(ctx context.Context, s *Scene, workers int) ([]Instance, error) {
	return BakeWithCache(ctx, s, workers, NewCache())
}

// BakeWithCache is Bake reusing and filling cache, so shapes built by an
// earlier bake are not built again.
func BakeWithCache(ctx context.Context, s *Scene, workers int, cache *Cache) ([]Instance, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("baking scene %q: %w", s.Name, err)
	}

	instances := make([]Instance, 0, len(s.Objects)+len(s.Lights))
	specs := make([]ShapeSpec, 0, len(s.Objects)+len(s.Lights))
	slot := make(map[ShapeSpec]int)
	slots := make([]int, 0, cap(instances))

	add := func(in Instance, spec ShapeSpec) {
		i, ok := slot[spec]
		if !ok {
			i = len(specs)
			slot[spec] = i
			specs = append(specs, spec)
		}
		in.Kind = spec.Type
		instances = append(instances, in)
		slots = append(slots, i)
	}

	for _, o := range s.Objects {
		add(Instance{Name: o.Name, Model: o.Transform.Model(), Specular: o.Specular}, o.Shape)
	}
	for _, l := range s.Lights {
		add(Instance{
			Name:     l.Name,
			Model:    l.Transform.Model(),
			Emissive: true,
			Color:    scaled(l.Color, l.Intensity),
		}, l.Spec())
	}

	meshes := make([]*mesh.Mesh, len(specs))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	built := 0
	for i, spec := range specs {
		if m, ok := cache.Get(spec); ok {
			meshes[i] = m
			continue
		}
		built++
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			shape, err := spec.Shape()
			if err != nil {
				return err
			}
			m, err := mesh.BuildChecked(shape)
			if err != nil {
				return err
			}
			meshes[i] = m
			cache.Set(spec, m)
			logger.Debug("mesh built",
				zap.String("kind", string(spec.Type)),
				zap.Int("vertices", len(m.Vertices)),
				zap.Int("indices", len(m.Indices)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("baking scene %q: %w", s.Name, err)
	}

	for i := range instances {
		instances[i].Mesh = meshes[slots[i]]
	}

	logger.Info("scene baked",
		zap.String("scene", s.Name),
		zap.Int("instances", len(instances)),
		zap.Int("meshes", len(meshes)),
		zap.Int("built", built),
		zap.Duration("took", time.Since(start)),
	)
	return instances, nil
}

func scaled(c [3]float32, k float32) [3]float32 {
	return [3]float32{c[0] * k, c[1] * k, c[2] * k}
}

// World returns a copy of the instance mesh in world space. Normals are
// transformed by the inverse-transpose of the model matrix and
// renormalized. Mirroring transforms keep the outward winding.
func (in Instance) World() *mesh.Mesh {
	out := in.Mesh.Clone()
	normal := in.Model.NormalMatrix()

	for i := range out.Vertices {
		v := &out.Vertices[i]
		v.Position = in.Model.TransformPoint(v.Position)
		v.Normal = gmath.Vec3From(normal.TransformDirection(v.Normal)).Normalize().Array()
	}

	if in.Model.Determinant() < 0 {
		flipWinding(out)
	}
	return out
}

func flipWinding(m *mesh.Mesh) {
	switch m.Mode {
	case mesh.TriangleStrip:
		// Repeating the first index shifts every triangle's parity.
		if len(m.Indices) > 0 {
			m.Indices = append([]uint16{m.Indices[0]}, m.Indices...)
		}
	default:
		for i := 0; i+2 < len(m.Vertices); i += 3 {
			m.Vertices[i+1], m.Vertices[i+2] = m.Vertices[i+2], m.Vertices[i+1]
		}
	}
}

// Stats counts the geometry of a baked scene.
type Stats struct {
	Instances int
	Meshes    int // distinct meshes
	Vertices  int
	Indices   int
	Triangles int
}

// Summarize totals instance geometry. Shared meshes count once per
// instance in Vertices, Indices and Triangles.
func Summarize(instances []Instance) Stats {
	st := Stats{Instances: len(instances)}
	seen := make(map[*mesh.Mesh]bool)
	for _, in := range instances {
		if !seen[in.Mesh] {
			seen[in.Mesh] = true
			st.Meshes++
		}
		st.Vertices += len(in.Mesh.Vertices)
		st.Indices += len(in.Mesh.Indices)
		st.Triangles += in.Mesh.TriangleCount()
	}
	return st
}
