package chart

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Display renders the canvas with the y extremes after the first and last
// rows, followed by a line labelling the x extremes.
func (c *Chart) Display() string {
	frame := c.canvas.Frame()

	var b strings.Builder
	for i, row := range frame {
		b.WriteString(row)
		switch i {
		case 0:
			b.WriteString(" " + formatLabel(c.yrange.Max))
		case len(frame) - 1:
			b.WriteString(" " + formatLabel(c.yrange.Min))
		}
		b.WriteByte('\n')
	}
	b.WriteString(c.xLabels())
	b.WriteByte('\n')
	return b.String()
}

// WriteTo writes Display to w.
func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.Display())
	return int64(n), err
}

// xLabels returns xmin left-justified in roughly half the chart width,
// followed by xmax.
func (c *Chart) xLabels() string {
	left := formatLabel(c.xmin)
	if field := c.width/2 - 3; runewidth.StringWidth(left) < field {
		left = lipgloss.NewStyle().Width(field).Render(left)
	}
	return left + formatLabel(c.xmax)
}

func formatLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
