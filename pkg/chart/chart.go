// Package chart plots functions of one variable onto a braille canvas.
//
// A Chart samples a function once per pixel column across a fixed domain,
// discovers the vertical range from the samples and rasterizes the result as
// connected line segments. Charts never fail: non-finite samples are skipped
// and degenerate dimensions produce an empty plot.
//
// A Chart is not safe for concurrent use.
package chart

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/apelloni/textplots/internal/canvas"
)

const (
	DefaultWidth  = 120
	DefaultHeight = 60
	DefaultXMin   = -10.0
	DefaultXMax   = 10.0

	// referenceSpacing is the dot spacing of the dotted x=0 and y=0 guides.
	referenceSpacing = 3

	// rangeMargin is the fraction of the y range added above and below the
	// curve when rendering.
	rangeMargin = 0.10
)

// Func evaluates the plotted function at x.
type Func func(x float64) float64

// Canvas is a grid of dots addressed by (column, row), row 0 at the top.
type Canvas interface {
	Set(col, row int)
	Line(col1, row1, col2, row2 int)
	Frame() []string
}

// Range is a closed interval of values.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// union returns the smallest range covering both r and o.
func (r Range) union(o Range) Range {
	return Range{Min: min(r.Min, o.Min), Max: max(r.Max, o.Max)}
}

// Chart is a line chart over a fixed domain.
type Chart struct {
	width  int
	height int
	xmin   float64
	xmax   float64

	// yrange only ever widens; it is the union of the ranges of every
	// function plotted so far, starting from [0, 0].
	yrange Range

	canvas Canvas
	logger *log.Logger
}

// Option configures a Chart.
type Option func(*Chart)

// WithCanvas draws onto c instead of a new braille canvas. The chart takes
// exclusive ownership of c.
func WithCanvas(c Canvas) Option {
	return func(ch *Chart) { ch.canvas = c }
}

// WithLogger logs range discovery at debug level to logger.
func WithLogger(logger *log.Logger) Option {
	return func(ch *Chart) { ch.logger = logger }
}

// New returns a width by height chart over the domain [xmin, xmax].
// Negative dimensions are treated as zero.
func New(width, height int, xmin, xmax float64, opts ...Option) *Chart {
	c := &Chart{
		width:  max(width, 0),
		height: max(height, 0),
		xmin:   xmin,
		xmax:   xmax,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.canvas == nil {
		c.canvas = canvas.New(c.width, c.height)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// Default returns a 120x60 chart over [-10, 10].
func Default(opts ...Option) *Chart {
	return New(DefaultWidth, DefaultHeight, DefaultXMin, DefaultXMax, opts...)
}

func (c *Chart) Width() int { return c.width }
func (c *Chart) Height() int { return c.height }

// Domain returns the sampled x interval.
func (c *Chart) Domain() Range { return Range{Min: c.xmin, Max: c.xmax} }

// Range returns the accumulated y interval, without render margin.
func (c *Chart) Range() Range { return c.yrange }

// Borders draws the four edges of the plotting surface.
func (c *Chart) Borders() {
	w, h := c.width, c.height

	c.canvas.Line(0, 0, 0, h)
	c.canvas.Line(0, 0, w, 0)
	c.canvas.Line(0, h, w, h)
	c.canvas.Line(w, 0, w, h)
}

// IReference draws a dotted vertical guide at column i.
// Nothing is drawn unless 0 < i < width.
func (c *Chart) IReference(i int) {
	if i <= 0 || i >= c.width {
		return
	}
	for j := 0; j < c.height; j++ {
		if j%referenceSpacing == 0 {
			c.canvas.Set(i, j)
		}
	}
}

// JReference draws a dotted horizontal guide j rows above the bottom edge.
// Nothing is drawn unless 0 < j < height.
func (c *Chart) JReference(j int) {
	if j <= 0 || j >= c.height {
		return
	}
	for i := 0; i < c.width; i++ {
		if i%referenceSpacing == 0 {
			c.canvas.Set(i, c.height-j)
		}
	}
}
