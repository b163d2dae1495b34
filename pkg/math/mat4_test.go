package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	result := m.TransformPoint([3]float32{1, 2, 3})

	expected := [3]float32{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestTranslateRotateScaleOrder(t *testing.T) {
	// Scale first, then rotate, then translate.
	m := Translate(1, 0, 0).Mul(RotateAxis(UnitY, float32(math.Pi/2))).Mul(Scale(2, 2, 2))
	got := m.TransformPoint([3]float32{1, 0, 0})

	// (1,0,0) -> scale (2,0,0) -> rotY 90 (0,0,-2) -> translate (1,0,-2)
	want := [3]float32{1, 0, -2}
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Fatalf("TRS: got %v, want %v", got, want)
		}
	}
}

func TestRotateAxisAboutY(t *testing.T) {
	angle := float32(math.Pi / 3)
	c, s := float32(math.Cos(math.Pi/3)), float32(math.Sin(math.Pi/3))
	a := RotateAxis(Vec3{0, 2, 0}, angle)
	want := Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
	for i := range a {
		if abs(a[i]-want[i]) > 1e-6 {
			t.Fatalf("element %d: got %f, want %f", i, a[i], want[i])
		}
	}
}

func TestRotateAxisZero(t *testing.T) {
	if RotateAxis(Vec3{}, 1) != Identity() {
		t.Error("zero axis should give identity")
	}
}

func TestRotateAxisX90(t *testing.T) {
	m := RotateAxis(UnitX, float32(math.Pi/2))
	result := m.TransformPoint([3]float32{0, 1, 0})

	// (0,1,0) rotated 90 degrees about X becomes (0,0,1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]-1) > 0.001 {
		t.Errorf("RotateAxis X 90: got %v, want (0, 0, 1)", result)
	}
}

func TestInverse(t *testing.T) {
	m := Translate(3, -2, 7).Mul(RotateAxis(Vec3{1, 1, 0}, 0.7)).Mul(Scale(2, 3, 4))
	p := m.Mul(m.inverse())
	id := Identity()
	for i := range p {
		if abs(p[i]-id[i]) > 1e-4 {
			t.Fatalf("M * M^-1 element %d = %f, want %f", i, p[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if Scale(0, 1, 1).inverse() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
	if d := Scale(0, 1, 1).Determinant(); d != 0 {
		t.Errorf("Determinant = %f, want 0", d)
	}
}

func TestNormalMatrix(t *testing.T) {
	// Non-uniform scale: a normal on a 45 degree slope must tilt the other way.
	m := Translate(5, 5, 5).Mul(Scale(2, 1, 1))
	n := m.NormalMatrix().TransformDirection([3]float32{1, 1, 0})
	got := Vec3From(n).Normalize()
	want := Vec3{0.5, 1, 0}.Normalize()
	if got.Distance(want) > 1e-5 {
		t.Errorf("NormalMatrix: got %v, want %v", got, want)
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(1, 2, 3)
	tr := m.Transpose()
	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose: got %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("double transpose should be identity operation")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
