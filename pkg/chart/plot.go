package chart

import (
	"math"
)

// point is a dot on the canvas.
type point struct {
	col, row int
}

// LinePlot draws borders, the x=0 and y=0 guides, and the graph of f.
//
// The chart's y range is widened to cover every finite value of f sampled on
// the domain, so repeated calls share one vertical scale. LinePlot returns the
// chart for chaining.
func (c *Chart) LinePlot(f Func) *Chart {
	c.Borders()

	ys := c.sample(f)
	local := discoverRange(ys)
	c.yrange = c.yrange.union(local)
	render := c.renderRange()

	c.references(render)

	runs := c.curve(ys, render)
	for _, run := range runs {
		for k, p := range run {
			c.canvas.Set(p.col, p.row)
			if k > 0 {
				prev := run[k-1]
				c.canvas.Line(prev.col, prev.row, p.col, p.row)
			}
		}
	}

	c.logger.Debug("plotted function",
		"local_min", local.Min, "local_max", local.Max,
		"ymin", c.yrange.Min, "ymax", c.yrange.Max,
		"samples", len(ys), "runs", len(runs))
	return c
}

// xspan returns the width of the domain.
func (c *Chart) xspan() float64 {
	return math.Abs(c.xmax - c.xmin)
}

// sample evaluates f once per pixel column.
func (c *Chart) sample(f Func) []float64 {
	if c.width == 0 {
		return nil
	}
	xstep := c.xspan() / float64(c.width)

	ys := make([]float64, c.width)
	for i := range ys {
		ys[i] = f(c.xmin + float64(i)*xstep)
	}
	return ys
}

// discoverRange returns the extremes of the finite values in ys,
// or [0, 0] if there are none.
func discoverRange(ys []float64) Range {
	var r Range
	seen := false
	for _, y := range ys {
		if !isFinite(y) {
			continue
		}
		if !seen {
			r = Range{Min: y, Max: y}
			seen = true
			continue
		}
		r.Min = min(r.Min, y)
		r.Max = max(r.Max, y)
	}
	return r
}

// renderRange returns the accumulated range padded by rangeMargin on each side.
func (c *Chart) renderRange() Range {
	margin := c.yrange.Span() * rangeMargin
	return Range{Min: c.yrange.Min - margin, Max: c.yrange.Max + margin}
}

// references draws the dotted guides where x=0 and y=0 fall on the grid.
func (c *Chart) references(render Range) {
	if xspan := c.xspan(); xspan > 0 && isFinite(xspan) {
		c.IReference(int((xspan - c.xmax) / xspan * float64(c.width)))
	}
	if yspan := render.Span(); yspan > 0 && isFinite(yspan) {
		c.JReference(int((yspan - render.Max) / yspan * float64(c.height)))
	}
}

// row maps y to a canvas row, row 0 being the top of the chart.
func (c *Chart) row(y float64, render Range) int {
	j := int(math.Round((y - render.Min) / render.Span() * float64(c.height)))
	j = min(max(j, 0), c.height)
	return c.height - j
}

// curve maps samples to canvas points, grouped into runs of points that are
// joined by line segments.
//
// Samples that are not normal floats produce no point. NaN and infinite
// samples also end the current run; zero and subnormal samples do not, so a
// curve crossing y=0 stays connected.
func (c *Chart) curve(ys []float64, render Range) [][]point {
	if span := render.Span(); !(span > 0) || !isFinite(span) {
		return nil
	}

	var (
		runs [][]point
		run  []point
	)
	for i, y := range ys {
		switch {
		case !isFinite(y):
			if len(run) > 0 {
				runs = append(runs, run)
				run = nil
			}
		case isNormal(y):
			run = append(run, point{col: i, row: c.row(y, render)})
		}
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// isNormal reports whether f is finite, non-zero and not subnormal.
func isNormal(f float64) bool {
	return isFinite(f) && math.Abs(f) >= 0x1p-1022
}
