package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNormal(t *testing.T) {
	testCases := []struct {
		name string
		v    float64
		want bool
	}{
		{"one", 1, true},
		{"negative", -3.5, true},
		{"tiny normal", -0x1p-1022, true},
		{"zero", 0, false},
		{"negative zero", math.Copysign(0, -1), false},
		{"subnormal", 5e-324, false},
		{"nan", math.NaN(), false},
		{"+inf", math.Inf(1), false},
		{"-inf", math.Inf(-1), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isNormal(tc.v))
		})
	}
}

func TestDiscoverRange(t *testing.T) {
	assert.Equal(t, Range{}, discoverRange(nil))
	assert.Equal(t, Range{}, discoverRange([]float64{math.NaN(), math.Inf(1)}))
	assert.Equal(t, Range{Min: -1, Max: 3},
		discoverRange([]float64{math.NaN(), 3, math.Inf(-1), -1, 0.5}))
	assert.Equal(t, Range{Min: 2, Max: 2}, discoverRange([]float64{2}))
}

func TestSample(t *testing.T) {
	c := New(4, 4, -2, 2, WithCanvas(&nopCanvas{}))

	var xs []float64
	c.sample(func(x float64) float64 {
		xs = append(xs, x)
		return x
	})

	assert.Equal(t, []float64{-2, -1, 0, 1}, xs)
}

// The row clamp is bounded by the chart height, so charts taller than they
// are wide reach their top edge.
func TestRow_ClampsToHeight(t *testing.T) {
	c := New(10, 40, 0, 1, WithCanvas(&nopCanvas{}))
	render := Range{Min: -1, Max: 1}

	assert.Equal(t, 0, c.row(1, render))
	assert.Equal(t, 0, c.row(5, render))
	assert.Equal(t, 20, c.row(0, render))
	assert.Equal(t, 40, c.row(-1, render))
	assert.Equal(t, 40, c.row(-5, render))
}

func TestCurve_ZeroDoesNotBreakRun(t *testing.T) {
	c := New(5, 10, -2, 2, WithCanvas(&nopCanvas{}))
	runs := c.curve([]float64{-2, -1, 0, 1, 2}, Range{Min: -2, Max: 2})

	require.Len(t, runs, 1)
	assert.Equal(t, []point{{0, 10}, {1, 7}, {3, 2}, {4, 0}}, runs[0])
}

func TestCurve_NonFiniteBreaksRun(t *testing.T) {
	c := New(6, 10, 0, 1, WithCanvas(&nopCanvas{}))
	runs := c.curve(
		[]float64{1, 1, math.Inf(1), 1, math.NaN(), 1},
		Range{Min: 0, Max: 2},
	)

	require.Len(t, runs, 3)
	assert.Equal(t, []point{{0, 5}, {1, 5}}, runs[0])
	assert.Equal(t, []point{{3, 5}}, runs[1])
	assert.Equal(t, []point{{5, 5}}, runs[2])
}

func TestCurve_DegenerateRange(t *testing.T) {
	c := New(3, 3, 0, 1, WithCanvas(&nopCanvas{}))

	assert.Nil(t, c.curve([]float64{1, 2, 3}, Range{}))
}

func TestCurve_IdentityCoversEveryColumn(t *testing.T) {
	c := Default(WithCanvas(&nopCanvas{}))
	ys := c.sample(func(x float64) float64 { return x })
	c.yrange = c.yrange.union(discoverRange(ys))

	runs := c.curve(ys, c.renderRange())
	require.Len(t, runs, 1)
	assert.Equal(t, 0, runs[0][0].col)
	assert.Equal(t, c.Width()-1, runs[0][len(runs[0])-1].col)
	assert.GreaterOrEqual(t, len(runs[0]), c.Width()-1)

	// Rows rise from left to right.
	for k := 1; k < len(runs[0]); k++ {
		assert.LessOrEqual(t, runs[0][k].row, runs[0][k-1].row)
	}
}

type nopCanvas struct{}

func (*nopCanvas) Set(int, int) {}
func (*nopCanvas) Line(int, int, int, int) {}
func (*nopCanvas) Frame() []string { return nil }
