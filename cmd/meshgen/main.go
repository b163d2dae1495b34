// meshgen builds primitive meshes and bakes scenes of them to disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/deskscene/internal/config"
	"github.com/Faultbox/deskscene/internal/export"
	"github.com/Faultbox/deskscene/internal/logger"
	"github.com/Faultbox/deskscene/internal/scene"
	"github.com/Faultbox/deskscene/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "build":
		err = cmdBuild(args)
	case "info":
		err = cmdInfo(args)
	case "mesh":
		err = cmdMesh(args)
	case "scene":
		err = cmdScene(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshgen - parametric mesh and scene builder

Usage:
  meshgen <command> [options]

Commands:
  build [-scene file] [-out dir] [-format obj|dmsh] [-world] [-combined]
                                     Bake a scene and write its meshes
  info [-scene file]                 Show per-object mesh statistics
  mesh <kind> [params] [-o file]     Build one primitive (cuboid, prism_side,
                                     prism_face, sphere, plane)
  scene [-o file]                    Write the built-in desk scene
  config [-o file]                   Save the effective config (default:
                                     user config dir)

Build, info and config also accept -config, -workers, -debug and -log.

Examples:
  meshgen build -format dmsh -out meshes
  meshgen info -scene desk.toml
  meshgen mesh prism_side -slices 4 -radius 1 -height 2
  meshgen mesh sphere -segments 64 -o marble.obj
  meshgen scene -o desk.yaml
  meshgen config -workers 4 -format dmsh`)
}

// setup parses the shared flags, loads config and starts logging.
func setup(name string, args []string) (*config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, os.Stderr); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Desk(), nil
	}
	return scene.Load(path)
}

func bake(cfg *config.Config) ([]scene.Instance, error) {
	s, err := loadScene(cfg.Scene.Path)
	if err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return scene.Bake(ctx, s, cfg.Scene.Workers)
}

func cmdBuild(args []string) error {
	cfg, err := setup("build", args)
	if err != nil {
		return err
	}

	instances, err := bake(cfg)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}

	total := len(instances)
	if cfg.Export.Combined {
		total = 1
	}
	bar := progressbar.Default(int64(total), "writing "+string(format))

	paths, err := export.WriteDir(cfg.Export.Dir, instances, export.Options{
		Format:   format,
		World:    cfg.Export.World,
		Combined: cfg.Export.Combined,
		OnFile:   func(string) { bar.Add(1) },
	})
	bar.Finish()
	if err != nil {
		return err
	}

	st := scene.Summarize(instances)
	fmt.Printf("Wrote %d files to %s (%d objects, %d meshes, %d triangles)\n",
		len(paths), cfg.Export.Dir, st.Instances, st.Meshes, st.Triangles)
	return nil
}

func cmdInfo(args []string) error {
	cfg, err := setup("info", args)
	if err != nil {
		return err
	}

	instances, err := bake(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tMODE\tVERTICES\tINDICES\tTRIANGLES\tINWARD\tBOUNDS")
	for _, in := range instances {
		w := in.World()
		b := w.Bounds()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%.3g..%.3g\n",
			in.Name, in.Kind, in.Mesh.Mode,
			len(in.Mesh.Vertices), len(in.Mesh.Indices), in.Mesh.TriangleCount(),
			len(w.InwardTriangles()), b.Min, b.Max)
	}
	tw.Flush()

	st := scene.Summarize(instances)
	fmt.Println()
	fmt.Printf("Objects:   %d\n", st.Instances)
	fmt.Printf("Meshes:    %d\n", st.Meshes)
	fmt.Printf("Vertices:  %d\n", st.Vertices)
	fmt.Printf("Indices:   %d\n", st.Indices)
	fmt.Printf("Triangles: %d\n", st.Triangles)
	return nil
}

func cmdMesh(args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: meshgen mesh <kind> [params] [-o file]")
	}
	kind := mesh.Kind(args[0])

	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	width := fs.Float64("width", 1, "Cuboid/plane width")
	height := fs.Float64("height", 1, "Cuboid/prism height")
	length := fs.Float64("length", 1, "Cuboid/plane length")
	radius := fs.Float64("radius", 1, "Prism radius")
	slices := fs.Int("slices", scene.CylinderSlices, "Prism slices")
	top := fs.Bool("top", true, "Build the top prism cap (false for bottom)")
	segments := fs.Int("segments", scene.SphereSegments, "Sphere segments")
	out := fs.String("o", "", "Write to file (.obj or .dmsh) instead of stdout")
	fs.Parse(args[1:])

	spec := scene.ShapeSpec{
		Type:     kind,
		Width:    float32(*width),
		Height:   float32(*height),
		Length:   float32(*length),
		Radius:   float32(*radius),
		Slices:   *slices,
		Top:      *top,
		Segments: *segments,
	}
	shape, err := spec.Shape()
	if err != nil {
		return err
	}
	m, err := mesh.BuildChecked(shape)
	if err != nil {
		return err
	}

	if *out == "" {
		return dumpMesh(m)
	}
	return writeMesh(*out, string(kind), m)
}

// dumpMesh prints the interleaved buffer, one vertex per line.
func dumpMesh(m *mesh.Mesh) error {
	fmt.Printf("# %s, %d vertices, stride %d bytes\n", m.Mode, len(m.Vertices), mesh.Stride)
	data := m.Interleave()
	for i := 0; i < len(data); i += mesh.FloatsPerVertex {
		v := data[i : i+mesh.FloatsPerVertex]
		fmt.Printf("%g %g %g  %g %g %g  %g %g\n", v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7])
	}
	if len(m.Indices) > 0 {
		fmt.Printf("# %d indices\n", len(m.Indices))
		for i, idx := range m.Indices {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Print(idx)
		}
		fmt.Println()
	}
	return nil
}

func writeMesh(path, name string, m *mesh.Mesh) error {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		in := scene.Instance{Name: name, Kind: mesh.Kind(name), Mesh: m}
		write = func(w io.Writer) error {
			return export.WriteOBJ(w, []scene.Instance{in}, export.OBJOptions{})
		}
	case ".dmsh":
		write = func(w io.Writer) error { return export.WriteBinary(w, m) }
	default:
		return fmt.Errorf("%w: %s", export.ErrUnknownFormat, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("mesh written", zap.String("path", path), zap.Int("vertices", len(m.Vertices)))
	fmt.Printf("Wrote %s (%d vertices)\n", path, len(m.Vertices))
	return nil
}

func cmdScene(args []string) error {
	fs := flag.NewFlagSet("scene", flag.ExitOnError)
	out := fs.String("o", "", "Write to file (.yaml, .yml or .toml) instead of stdout")
	format := fs.String("format", "yaml", "Stdout format: yaml or toml")
	fs.Parse(args)

	desk := scene.Desk()
	if *out != "" {
		if err := scene.Save(desk, *out); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d objects, %d lights)\n", *out, len(desk.Objects), len(desk.Lights))
		return nil
	}

	data, err := scene.Marshal(desk, scene.Format(*format))
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func cmdConfig(args []string) error {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	out := fs.String("o", "", "Write to file instead of the user config dir")
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	return saveConfig(cfg, *out)
}

// saveConfig writes cfg to path, or to the user config dir when path is
// empty, and prints where it went.
func saveConfig(cfg *config.Config, path string) error {
	if path == "" {
		if err := cfg.Save(); err != nil {
			return err
		}
		path = filepath.Join(config.ConfigDir(), config.FileName)
	} else if err := cfg.SaveTo(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
