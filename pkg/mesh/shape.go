package mesh

import (
	"errors"
	"fmt"
)

// Shape validation errors.
var (
	ErrInvalidDimension = errors.New("invalid shape dimension")
	ErrTooFewSlices     = errors.New("prism needs at least 3 slices")
	ErrUnknownKind      = errors.New("unknown shape kind")
)

// MinSlices is the smallest slice count that encloses an area.
const MinSlices = 3

// Kind identifies a primitive shape.
type Kind string

// Shape kinds.
const (
	KindCuboid    Kind = "cuboid"
	KindPrismSide Kind = "prism_side"
	KindPrismFace Kind = "prism_face"
	KindSphere    Kind = "sphere"
	KindPlane     Kind = "plane"
)

// Kinds lists every supported shape kind.
func Kinds() []Kind {
	return []Kind{KindCuboid, KindPrismSide, KindPrismFace, KindSphere, KindPlane}
}

// Shape is a parametric primitive that can build its own mesh.
//
// Unlike the Build* functions, shapes can check their parameters before
// building, which is what callers loading shapes from files want.
type Shape interface {
	Kind() Kind
	Validate() error
	Build() (*Mesh, error)
}

// Cuboid is a box; see BuildCuboid.
type Cuboid struct {
	Width, Height, Length float32
}

// PrismSide is the lateral surface of a prism; see BuildPrismSide.
type PrismSide struct {
	Slices         int
	Radius, Height float32
}

// PrismFace is a prism cap; see BuildPrismFace.
type PrismFace struct {
	Top    bool
	Slices int
	Radius float32
}

// Sphere is a unit UV sphere; see BuildSphere.
type Sphere struct {
	Segments int
}

// Plane is a ground quad; see BuildPlane.
type Plane struct {
	Length, Width float32
}

func (Cuboid) Kind() Kind    { return KindCuboid }
func (PrismSide) Kind() Kind { return KindPrismSide }
func (PrismFace) Kind() Kind { return KindPrismFace }
func (Sphere) Kind() Kind    { return KindSphere }
func (Plane) Kind() Kind     { return KindPlane }

func positive(name string, v float32) error {
	if !(v > 0) {
		return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidDimension, name, v)
	}
	return nil
}

func enoughSlices(slices int) error {
	if slices < MinSlices {
		return fmt.Errorf("%w: got %d", ErrTooFewSlices, slices)
	}
	return nil
}

func (c Cuboid) Validate() error {
	return errors.Join(
		positive("width", c.Width),
		positive("height", c.Height),
		positive("length", c.Length),
	)
}

func (p PrismSide) Validate() error {
	return errors.Join(
		enoughSlices(p.Slices),
		positive("radius", p.Radius),
		positive("height", p.Height),
	)
}

func (p PrismFace) Validate() error {
	return errors.Join(
		enoughSlices(p.Slices),
		positive("radius", p.Radius),
	)
}

func (s Sphere) Validate() error {
	if s.Segments < 1 || s.Segments > MaxSphereSegments {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrSegmentsOutOfRange, s.Segments, MaxSphereSegments)
	}
	return nil
}

func (p Plane) Validate() error {
	return errors.Join(
		positive("length", p.Length),
		positive("width", p.Width),
	)
}

func (c Cuboid) Build() (*Mesh, error) {
	return BuildCuboid(c.Width, c.Height, c.Length), nil
}

func (p PrismSide) Build() (*Mesh, error) {
	return BuildPrismSide(p.Slices, p.Radius, p.Height), nil
}

func (p PrismFace) Build() (*Mesh, error) {
	return BuildPrismFace(p.Top, p.Slices, p.Radius), nil
}

func (s Sphere) Build() (*Mesh, error) {
	return BuildSphere(s.Segments)
}

func (p Plane) Build() (*Mesh, error) {
	return BuildPlane(p.Length, p.Width), nil
}

// BuildChecked validates a shape and builds it.
func BuildChecked(s Shape) (*Mesh, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Kind(), err)
	}
	return s.Build()
}
