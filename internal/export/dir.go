package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/internal/scene"
)

// ErrUnknownFormat is returned for export formats other than obj and dmsh.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output file format.
type Format string

// Export formats.
const (
	FormatOBJ  Format = "obj"
	FormatDMSH Format = "dmsh"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatOBJ, FormatDMSH:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// CombinedOBJ is the file name used when all instances share one OBJ.
const CombinedOBJ = "scene.obj"

// Options controls WriteDir.
type Options struct {
	Format Format
	// World bakes model matrices into the written geometry.
	World bool
	// Combined writes every instance into a single OBJ file.
	Combined bool
	// OnFile is called after each file is written.
	OnFile func(path string)
}

// WriteDir writes the instances under dir and returns the written paths.
func WriteDir(dir string, instances []scene.Instance, opts Options) ([]string, error) {
	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}
	if opts.Combined && opts.Format != FormatOBJ {
		return nil, fmt.Errorf("%w: combined output needs obj, got %s", ErrUnknownFormat, opts.Format)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	start := time.Now()
	var paths []string
	write := func(path string, fn func(*os.File) error) error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		paths = append(paths, path)
		if opts.OnFile != nil {
			opts.OnFile(path)
		}
		return nil
	}

	if opts.Combined {
		path := filepath.Join(dir, CombinedOBJ)
		err := write(path, func(f *os.File) error {
			return WriteOBJ(f, instances, OBJOptions{World: opts.World, Header: "deskscene"})
		})
		if err != nil {
			return paths, err
		}
	} else {
		used := make(map[string]bool, len(instances))
		for _, in := range instances {
			path := filepath.Join(dir, uniqueFileName(used, in.Name, opts.Format))
			err := write(path, func(f *os.File) error {
				if opts.Format == FormatOBJ {
					return WriteOBJ(f, []scene.Instance{in}, OBJOptions{World: opts.World})
				}
				m := in.Mesh
				if opts.World {
					m = in.World()
				}
				return WriteBinary(f, m)
			})
			if err != nil {
				return paths, err
			}
		}
	}

	logger.Info("meshes exported",
		zap.String("dir", dir),
		zap.String("format", string(opts.Format)),
		zap.Int("files", len(paths)),
		zap.Duration("took", time.Since(start)),
	)
	return paths, nil
}

// FileName returns a file system safe name for an instance.
// Distinct names may map to the same file name.
func FileName(name string, format Format) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	if safe == "" || strings.Trim(safe, ".") == "" {
		safe = "mesh"
	}
	return safe + "." + string(format)
}

// uniqueFileName returns FileName, suffixed with _2, _3 and so on when an
// earlier instance already took it. Names are compared case-insensitively
// so the result is also unique on case-folding file systems.
func uniqueFileName(used map[string]bool, name string, format Format) string {
	file := FileName(name, format)
	stem := strings.TrimSuffix(file, "."+string(format))
	for n := 2; used[strings.ToLower(file)]; n++ {
		file = fmt.Sprintf("%s_%d.%s", stem, n, format)
	}
	used[strings.ToLower(file)] = true
	return file
}
