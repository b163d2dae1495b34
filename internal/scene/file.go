package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for scene files that are neither YAML
// nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported scene format")

// Format is a scene file encoding.
type Format string

// Scene file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Marshal encodes the scene.
func Marshal(s *Scene, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatTOML:
		return toml.Marshal(s)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Unmarshal decodes and validates a scene.
func Unmarshal(data []byte, format Format) (*Scene, error) {
	s := &Scene{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, s)
	case FormatTOML:
		err = toml.Unmarshal(data, s)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads a scene file, choosing the decoder by extension.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("loading scene %s: %w", path, err)
	}
	return s, nil
}

// Save writes the scene to path, creating parent directories.
func Save(s *Scene, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := Marshal(s, format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
