package scene

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoad(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scenes", "desk"+ext)
			want := Desk()

			if err := Save(want, path); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip through %s changed the scene", ext)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelf.yaml")
	content := `
name: shelf
objects:
  - name: book
    shape:
      type: cuboid
      width: 0.2
      height: 0.3
      length: 0.05
    transform:
      position: [1, 0, -2]
      rotation_deg: 45
      axis: [0, 1, 0]
      scale: [2, 2, 2]
  - name: globe
    shape:
      type: sphere
      segments: 32
    transform:
      position: [0, 1, 0]
lights:
  - name: lamp
    color: [1, 1, 1]
    intensity: 0.5
    length: 1
    width: 2
    transform:
      position: [0, 10, 0]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name != "shelf" || len(s.Objects) != 2 || len(s.Lights) != 1 {
		t.Fatalf("unexpected scene %+v", s)
	}
	book := s.Objects[0]
	if book.Shape.Type != "cuboid" || book.Shape.Width != 0.2 || book.Transform.RotationDeg != 45 {
		t.Errorf("book = %+v", book)
	}
	if s.Objects[1].Shape.Segments != 32 {
		t.Errorf("globe segments = %d", s.Objects[1].Shape.Segments)
	}
	if s.Lights[0].Width != 2 {
		t.Errorf("lamp width = %g", s.Lights[0].Width)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pen.toml")
	content := `
name = "pen"

[[objects]]
name = "barrel"
[objects.shape]
type = "prism_side"
slices = 6
radius = 0.01
height = 0.14
[objects.transform]
position = [0.0, 0.0, 0.0]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := s.Objects[0].Shape; got.Slices != 6 || got.Height != 0.14 {
		t.Errorf("barrel shape = %+v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "bad.yaml")
	os.WriteFile(invalid, []byte("objects:\n  - name: x\n    shape:\n      type: prism_side\n      slices: 2\n      radius: 1\n      height: 1\n"), 0644)

	malformed := filepath.Join(dir, "broken.toml")
	os.WriteFile(malformed, []byte("name = [unterminated"), 0644)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"unsupported extension", filepath.Join(dir, "scene.json"), ErrUnsupportedFormat},
		{"missing file", filepath.Join(dir, "missing.yaml"), os.ErrNotExist},
		{"invalid shape", invalid, nil},
		{"malformed", malformed, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
