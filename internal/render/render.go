// SPDX-License-Identifier: MIT

// Package render draws matrices as heat maps with gonum/plot.
//
// Row 0 is drawn at the top and column 0 on the left, matching the order in
// which matrices are printed. The output format follows the file extension
// accepted by plot.Save (png, svg, pdf, eps, jpg, tif).
package render

import (
	"errors"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/linmath/matrix"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var log = logging.Logger("render")

// Defaults used when no Option overrides them.
const (
	DefaultWidthCM     = 12.0
	DefaultHeightCM    = 12.0
	DefaultPaletteSize = 32
)

// ErrEmpty is returned for matrices with no cells to draw.
var ErrEmpty = errors.New("render: matrix has no cells")

// Option configures HeatMap.
type Option func(*Options)

// Options holds the resolved rendering parameters.
type Options struct {
	width, height vg.Length
	paletteSize   int
	title         string
}

// WithSize sets the canvas size in centimetres. Panics on non-positive values.
func WithSize(widthCM, heightCM float64) Option {
	if widthCM <= 0 || heightCM <= 0 {
		panic(fmt.Sprintf("render: WithSize(%g, %g): size must be > 0", widthCM, heightCM))
	}

	return func(o *Options) {
		o.width = vg.Length(widthCM) * vg.Centimeter
		o.height = vg.Length(heightCM) * vg.Centimeter
	}
}

// WithPaletteSize sets the number of colours. Panics when n < 2.
func WithPaletteSize(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("render: WithPaletteSize(%d): need at least 2 colours", n))
	}

	return func(o *Options) { o.paletteSize = n }
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.title = title }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		width:       vg.Length(DefaultWidthCM) * vg.Centimeter,
		height:      vg.Length(DefaultHeightCM) * vg.Centimeter,
		paletteSize: DefaultPaletteSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// grid adapts a Matrix to plotter.GridXYZ. Grid row r maps to matrix row
// rows-1-r so that Y grows upwards.
type grid struct {
	m *matrix.Matrix[float64]
}

var _ plotter.GridXYZ = grid{}

func (g grid) Dims() (c, r int) { return g.m.Cols(), g.m.Rows() }

func (g grid) Z(c, r int) float64 {
	v, err := g.m.At(g.m.Rows()-1-r, c)
	if err != nil {
		panic(err) // plotter only asks for indices inside Dims
	}

	return v
}

func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }

// NewPlot builds the heat-map plot for m without writing it anywhere.
func NewPlot(m *matrix.Matrix[float64], opts ...Option) (*plot.Plot, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrEmpty)
	}
	o := gatherOptions(opts...)

	hm := plotter.NewHeatMap(grid{m: m}, palette.Heat(o.paletteSize, 1))
	if hm.Min == hm.Max {
		// constant matrix: give the palette a non-empty range
		hm.Max = hm.Min + 1
	}

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row (reversed)"
	p.Add(hm)

	return p, nil
}

// HeatMap renders m to path. The canvas size, palette and title come from opts.
func HeatMap(m *matrix.Matrix[float64], path string, opts ...Option) error {
	p, err := NewPlot(m, opts...)
	if err != nil {
		return err
	}
	o := gatherOptions(opts...)
	if err := p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	log.Debugw("heat map written", "path", path, "rows", m.Rows(), "cols", m.Cols())

	return nil
}
