// Package scene describes a static arrangement of primitive meshes and
// bakes it into renderable instances.
package scene

import (
	"errors"
	"fmt"

	gmath "github.com/Faultbox/deskscene/pkg/math"
	"github.com/Faultbox/deskscene/pkg/mesh"
)

// Scene validation errors.
var (
	ErrEmptyScene    = errors.New("scene has no objects")
	ErrEmptyName     = errors.New("empty name")
	ErrDuplicateName = errors.New("duplicate name")
)

// Scene is a set of textured objects lit by emissive window planes.
type Scene struct {
	Name    string   `yaml:"name" toml:"name"`
	Objects []Object `yaml:"objects" toml:"objects"`
	Lights  []Light  `yaml:"lights,omitempty" toml:"lights,omitempty"`
}

// Object places one primitive in the scene.
type Object struct {
	Name      string    `yaml:"name" toml:"name"`
	Shape     ShapeSpec `yaml:"shape" toml:"shape"`
	Transform Transform `yaml:"transform" toml:"transform"`
	Specular  float32   `yaml:"specular,omitempty" toml:"specular,omitempty"`
}

// Light is a window: a plane drawn emissive in the light's color.
type Light struct {
	Name      string     `yaml:"name" toml:"name"`
	Color     [3]float32 `yaml:"color" toml:"color"`
	Intensity float32    `yaml:"intensity" toml:"intensity"`
	Length    float32    `yaml:"length" toml:"length"`
	Width     float32    `yaml:"width" toml:"width"`
	Transform Transform  `yaml:"transform" toml:"transform"`
}

// ShapeSpec is the file form of a mesh.Shape. Only the fields used by
// Type are read.
type ShapeSpec struct {
	Type     mesh.Kind `yaml:"type" toml:"type"`
	Width    float32   `yaml:"width,omitempty" toml:"width,omitempty"`
	Height   float32   `yaml:"height,omitempty" toml:"height,omitempty"`
	Length   float32   `yaml:"length,omitempty" toml:"length,omitempty"`
	Radius   float32   `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Slices   int       `yaml:"slices,omitempty" toml:"slices,omitempty"`
	Top      bool      `yaml:"top,omitempty" toml:"top,omitempty"`
	Segments int       `yaml:"segments,omitempty" toml:"segments,omitempty"`
}

// Shape converts the spec into its mesh.Shape variant.
func (s ShapeSpec) Shape() (mesh.Shape, error) {
	switch s.Type {
	case mesh.KindCuboid:
		return mesh.Cuboid{Width: s.Width, Height: s.Height, Length: s.Length}, nil
	case mesh.KindPrismSide:
		return mesh.PrismSide{Slices: s.Slices, Radius: s.Radius, Height: s.Height}, nil
	case mesh.KindPrismFace:
		return mesh.PrismFace{Top: s.Top, Slices: s.Slices, Radius: s.Radius}, nil
	case mesh.KindSphere:
		return mesh.Sphere{Segments: s.Segments}, nil
	case mesh.KindPlane:
		return mesh.Plane{Length: s.Length, Width: s.Width}, nil
	default:
		return nil, fmt.Errorf("%w: %q", mesh.ErrUnknownKind, s.Type)
	}
}

// SpecOf returns the file form of a shape.
func SpecOf(s mesh.Shape) ShapeSpec {
	switch v := s.(type) {
	case mesh.Cuboid:
		return ShapeSpec{Type: mesh.KindCuboid, Width: v.Width, Height: v.Height, Length: v.Length}
	case mesh.PrismSide:
		return ShapeSpec{Type: mesh.KindPrismSide, Slices: v.Slices, Radius: v.Radius, Height: v.Height}
	case mesh.PrismFace:
		return ShapeSpec{Type: mesh.KindPrismFace, Top: v.Top, Slices: v.Slices, Radius: v.Radius}
	case mesh.Sphere:
		return ShapeSpec{Type: mesh.KindSphere, Segments: v.Segments}
	case mesh.Plane:
		return ShapeSpec{Type: mesh.KindPlane, Length: v.Length, Width: v.Width}
	default:
		return ShapeSpec{Type: s.Kind()}
	}
}

// Transform positions an object. The model matrix is
// Translate * Rotate(Axis, RotationDeg) * Scale.
type Transform struct {
	Position    [3]float32 `yaml:"position" toml:"position"`
	RotationDeg float32    `yaml:"rotation_deg,omitempty" toml:"rotation_deg,omitempty"`
	Axis        [3]float32 `yaml:"axis,omitempty" toml:"axis,omitempty"`
	Scale       [3]float32 `yaml:"scale,omitempty" toml:"scale,omitempty"`
}

// Uniform returns a transform with the same scale on every axis.
func Uniform(pos [3]float32, scale float32) Transform {
	return Transform{Position: pos, Scale: [3]float32{scale, scale, scale}}
}

// Rotated returns a copy of t rotated by deg degrees about axis.
func (t Transform) Rotated(deg float32, axis [3]float32) Transform {
	t.RotationDeg = deg
	t.Axis = axis
	return t
}

// Model returns the model matrix. A zero Scale means unit scale.
func (t Transform) Model() gmath.Mat4 {
	scale := t.Scale
	if scale == ([3]float32{}) {
		scale = [3]float32{1, 1, 1}
	}

	m := gmath.Translate(t.Position[0], t.Position[1], t.Position[2])
	if t.RotationDeg != 0 {
		m = m.Mul(gmath.RotateAxis(gmath.Vec3From(t.Axis), gmath.Radians(t.RotationDeg)))
	}
	return m.Mul(gmath.Scale(scale[0], scale[1], scale[2]))
}

// Spec returns the plane the light is drawn with.
func (l Light) Spec() ShapeSpec {
	return ShapeSpec{Type: mesh.KindPlane, Length: l.Length, Width: l.Width}
}

// Validate checks names and shape parameters, reporting every problem.
func (s *Scene) Validate() error {
	if len(s.Objects) == 0 {
		return ErrEmptyScene
	}

	var errs []error
	seen := make(map[string]bool)
	checkName := func(kind, name string) {
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("%s: %w", kind, ErrEmptyName))
		case seen[name]:
			errs = append(errs, fmt.Errorf("%s %q: %w", kind, name, ErrDuplicateName))
		}
		seen[name] = true
	}

	for _, o := range s.Objects {
		checkName("object", o.Name)
		shape, err := o.Shape.Shape()
		if err == nil {
			err = shape.Validate()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("object %q: %w", o.Name, err))
		}
	}

	for _, l := range s.Lights {
		checkName("light", l.Name)
		if err := (mesh.Plane{Length: l.Length, Width: l.Width}).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("light %q: %w", l.Name, err))
		}
	}

	return errors.Join(errs...)
}
