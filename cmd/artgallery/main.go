// Command artgallery places guards in a simple polygon and optionally renders
// each phase of the computation.
//
// Input is a polygon as newline separated "x y" points (or YAML or SVG, see
// --format), read from the file argument or stdin. With --random a polygon is
// generated instead.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/artgallery"
	"github.com/osuushi/artgallery/internal"
	"github.com/osuushi/artgallery/polyio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Width in pixels of renders when no scale is given
const defaultRenderSize = 800

func main() {
	app := kingpin.New("artgallery", "Place guards in a simple polygon.")
	var set struct {
		format, random, seed, png, scale, imgcat, frames, out, dump, verbose bool
	}
	input := app.Arg("input", "Polygon file. Reads stdin when omitted.").String()
	configPath := app.Flag("config", "YAML config file. Flags override it.").PlaceHolder("PATH").String()
	format := app.Flag("format", "Input format.").Default(polyio.FormatAuto).IsSetByUser(&set.format).Enum(polyio.Formats...)
	random := app.Flag("random", "Generate a random polygon with this many vertices.").PlaceHolder("N").IsSetByUser(&set.random).Int()
	seed := app.Flag("seed", "Seed for --random.").Default("1").IsSetByUser(&set.seed).Int64()
	png := app.Flag("png", "Render the final mesh to this PNG.").PlaceHolder("PATH").IsSetByUser(&set.png).String()
	scale := app.Flag("scale", "Pixels per unit in renders. Fits the polygon to 800px when omitted.").IsSetByUser(&set.scale).Float64()
	imgcat := app.Flag("imgcat", "Print the rendered PNG in the terminal.").IsSetByUser(&set.imgcat).Bool()
	frames := app.Flag("frames", "Render every phase into this directory.").PlaceHolder("DIR").IsSetByUser(&set.frames).String()
	out := app.Flag("out", "Write the result as YAML to this path.").PlaceHolder("PATH").IsSetByUser(&set.out).String()
	dump := app.Flag("dump", "Print the vertex, half-edge and face tables.").IsSetByUser(&set.dump).Bool()
	verbose := app.Flag("verbose", "Debug logging.").Short('v').IsSetByUser(&set.verbose).Bool()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	config := DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = LoadConfig(*configPath)
		app.FatalIfError(err, "")
	}
	if *input != "" {
		config.Input = *input
	}
	if set.format {
		config.Format = *format
	}
	if set.random {
		config.Random = *random
	}
	if set.seed {
		config.Seed = *seed
	}
	if set.png {
		config.PNG = *png
	}
	if set.scale {
		config.Scale = *scale
	}
	if set.imgcat {
		config.Imgcat = *imgcat
	}
	if set.frames {
		config.Frames = *frames
	}
	if set.out {
		config.Out = *out
	}
	if set.dump {
		config.Dump = *dump
	}
	if set.verbose {
		config.Verbose = *verbose
	}
	app.FatalIfError(config.Validate(), "")

	logger, err := newLogger(config.Verbose)
	app.FatalIfError(err, "creating logger")
	defer logger.Sync()

	err = run(config, os.Stdin, os.Stdout, isTerminal(os.Stdout), logger)
	if err != nil {
		logger.Sync()
	}
	app.FatalIfError(err, "")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func run(config Config, stdin io.Reader, stdout io.Writer, colors bool, logger *zap.Logger) error {
	points, err := loadPoints(config, stdin)
	if err != nil {
		return err
	}
	logger.Debug("loaded polygon", zap.Int("vertices", len(points)))

	var frameErr error
	opts := artgallery.Options{Logger: logger}
	if config.Frames != "" {
		opts.OnPhase = func(phase internal.Phase, m *internal.Mesh, g *internal.DualGraph) {
			if frameErr != nil {
				return
			}
			path := filepath.Join(config.Frames, fmt.Sprintf("%02d-%s.png", int(phase)+1, phase))
			frameErr = internal.SavePNG(m, drawOptions(config, m, g, phase == internal.PhaseColored), path)
			logger.Debug("rendered frame", zap.Stringer("phase", phase), zap.String("path", path))
		}
	}

	gallery, err := artgallery.GuardWithOptions(points, opts)
	if err != nil {
		return err
	}
	if frameErr != nil {
		return frameErr
	}

	if err := writeSummary(stdout, gallery, colors); err != nil {
		return err
	}

	if config.Dump {
		if err := gallery.Mesh.Dump(stdout, colors); err != nil {
			return errors.Wrap(err, "dumping mesh")
		}
		fmt.Fprintln(stdout)
		if err := internal.DumpTypes(stdout, gallery.Mesh, gallery.Types, colors); err != nil {
			return errors.Wrap(err, "dumping vertex types")
		}
	}

	if config.PNG != "" {
		if err := internal.SavePNG(gallery.Mesh, drawOptions(config, gallery.Mesh, gallery.Dual, true), config.PNG); err != nil {
			return err
		}
		if config.Imgcat {
			if err := internal.CatPNG(config.PNG, stdout); err != nil {
				return err
			}
		}
	}

	if config.Out != "" {
		if err := writeResult(config.Out, gallery); err != nil {
			return err
		}
	}
	return nil
}

func loadPoints(config Config, stdin io.Reader) ([]*internal.Point, error) {
	if config.Random > 0 {
		r := rand.New(rand.NewSource(config.Seed))
		return polyio.RandomPolygon(config.Random, r)
	}
	if config.Input != "" {
		return polyio.ReadFile(config.Input, config.Format)
	}
	points, err := polyio.Read(stdin, config.Format)
	return points, errors.Wrap(err, "reading stdin")
}

func drawOptions(config Config, m *internal.Mesh, g *internal.DualGraph, showGuards bool) internal.DrawOptions {
	scale := config.Scale
	if scale == 0 {
		scale = internal.FitScale(m, defaultRenderSize)
	}
	opts := internal.DrawOptions{Scale: scale, Dual: g, GuardColor: internal.NoColor}
	if showGuards && g != nil {
		opts.GuardColor, _ = g.Guards()
	}
	return opts
}

func writeSummary(w io.Writer, g *artgallery.Gallery, colors bool) error {
	au := aurora.NewAurora(colors)
	_, err := fmt.Fprintf(w, "%s %d vertices, %d triangles, area error %g\n%s %d on %s: %v\n",
		au.Bold("polygon:"),
		len(g.Mesh.Vertices),
		len(g.Mesh.Faces)-1,
		g.AreaError(),
		au.Bold("guards:"),
		len(g.Guards),
		g.GuardColor.Colorize(au),
		g.Guards,
	)
	return errors.Wrap(err, "writing summary")
}

func writeResult(path string, g *artgallery.Gallery) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating result file")
	}
	if err := polyio.WriteResult(f, g); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
