package main

import (
	"bytes"
	"io"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/render"
	"github.com/osuushi/voronoi/sites"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Builds a Voronoi diagram by inserting sites one at a time and renders it.
//
// Input on stdin (or the input file) should be newline separated points in the
// form "x y". A file ending in .svg is read as a drawing whose circles are the
// sites. With --random, the input is ignored and random sites are generated
// instead.

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

var (
	app = kingpin.New("voronoi", "Build a Voronoi diagram incrementally and render it.")

	input    = app.Arg("input", "Sites file, \"x y\" per line or an .svg of circles.").Default(pipeName).String()
	output   = app.Flag("out", "Output file.").Short('o').Default(pipeName).String()
	format   = app.Flag("format", "Output format.").Short('f').Default("svg").Enum("svg", "png")
	size     = app.Flag("size", "Half-width of the bounding square.").Default("1000").Float64()
	centered = app.Flag("centered", "Center the bounding square on the first site instead of the origin.").Bool()
	random   = app.Flag("random", "Insert this many random sites instead of reading input.").Int()
	seed     = app.Flag("seed", "Seed for random sites and cell colours.").Default("1").Int64()
	scale    = app.Flag("scale", "Output pixels per diagram unit.").Default("0.5").Float64()
	width    = app.Flag("width", "Resize png output to this width, keeping the aspect ratio.").Int()
	stroke   = app.Flag("stroke", "Cell outline width in pixels.").Default("1").Float64()
	markers  = app.Flag("markers", "Mark each site with a dot.").Default("true").Bool()
	labels   = app.Flag("labels", "Label each site with a readable name.").Bool()
	preview  = app.Flag("preview", "Show the rendered png in the terminal (iTerm only).").Bool()
	verbose  = app.Flag("verbose", "Log every insertion step.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	app.FatalIfError(err, "creating logger")
	defer logger.Sync()

	points, err := loadSites()
	app.FatalIfError(err, "loading sites")
	logger.Info("loaded sites", zap.Int("count", len(points)))

	opts := []voronoi.Option{voronoi.WithLogger(logger.Named("diagram"))}
	if *centered {
		opts = append(opts, voronoi.CenteredOnFirstSite())
	}
	diagram := build(voronoi.New(*size, opts...), points, rand.New(rand.NewSource(*seed)), logger)

	app.FatalIfError(write(diagram, logger), "writing output")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func loadSites() ([]voronoi.Point, error) {
	if *random > 0 {
		return sites.Random(rand.New(rand.NewSource(*seed)), *random, *size), nil
	}

	var in io.Reader = os.Stdin
	if *input != pipeName {
		f, err := os.Open(*input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	if strings.EqualFold(filepath.Ext(*input), ".svg") {
		return sites.ReadSVG(in)
	}
	return sites.Read(in)
}

// Insert every site with a random colour. Sites that can't go in are logged
// and skipped.
func build(d *voronoi.Diagram, points []voronoi.Point, rng *rand.Rand, logger *zap.Logger) *voronoi.Diagram {
	var skipped int
	for _, p := range points {
		colour := voronoi.HSLA{H: rng.Float64() * 360, S: 0.4 + rng.Float64()*0.4, L: 0.55 + rng.Float64()*0.25, A: 1}
		next, insertion, err := d.TryInsert(voronoi.Cell{Site: p, Colour: colour})
		if err != nil {
			logger.Warn("skipped site", zap.Stringer("site", p), zap.Error(err))
			skipped++
			continue
		}
		logger.Debug("inserted site",
			zap.Stringer("site", p),
			zap.Stringer("split", insertion.Split),
			zap.Int("reclipped", len(insertion.Reclipped)),
		)
		d = next
	}
	logger.Info("built diagram", zap.Int("cells", d.Len()), zap.Int("skipped", skipped))
	return d
}

func write(d *voronoi.Diagram, logger *zap.Logger) error {
	opts := render.Options{
		Scale:       *scale,
		StrokeWidth: *stroke,
		Markers:     *markers,
		Labels:      *labels,
	}

	var buf bytes.Buffer
	switch *format {
	case "svg":
		if err := render.SVG(&buf, d, opts); err != nil {
			return err
		}
	case "png":
		if err := render.EncodePNG(&buf, render.Raster(d, opts), *width); err != nil {
			return err
		}
	}

	if *preview {
		if err := showPreview(d, opts); err != nil {
			// A missing preview shouldn't lose the output
			logger.Warn("preview failed", zap.Error(err))
		}
		if *output == pipeName {
			return nil
		}
	}

	if *output == pipeName {
		if *format == "png" && term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write png to a terminal; use --out or --preview")
		}
		_, err := os.Stdout.Write(buf.Bytes())
		return errors.Wrap(err, "writing to stdout")
	}

	if err := ioutil.WriteFile(*output, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(err, "writing output file")
	}
	logger.Info("wrote output", zap.String("file", *output), zap.String("format", *format), zap.Int("bytes", buf.Len()))
	return nil
}

func showPreview(d *voronoi.Diagram, opts render.Options) error {
	f, err := ioutil.TempFile("", "voronoi-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	defer os.Remove(f.Name())

	err = render.EncodePNG(f, render.Raster(d, opts), *width)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	return imgcat.CatFile(f.Name(), os.Stdout)
}
