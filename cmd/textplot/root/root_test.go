package root_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apelloni/textplots/cmd/textplot/root"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := root.NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestPlot(t *testing.T) {
	out, err := execute(t, "plot", "sin(x)", "--width", "20", "--height", "8")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	// 9 dot rows fit in 3 braille rows, then the x labels.
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], " 1.0"), lines[0])
	assert.Equal(t, []string{"-10.0", "10.0"}, strings.Fields(lines[3]))
}

func TestPlot_SeveralExpressionsShareRange(t *testing.T) {
	out, err := execute(t, "plot", "x", "2 * x", "--width", "10", "--height", "4", "--xmin", "0", "--xmax", "10")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], " 18.0"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " 0.0"), lines[1])
}

func TestPlot_InvalidExpression(t *testing.T) {
	_, err := execute(t, "plot", "sin(")
	assert.Error(t, err)
}

func TestPlot_RequiresExpression(t *testing.T) {
	_, err := execute(t, "plot")
	assert.Error(t, err)
}

func TestRange(t *testing.T) {
	out, err := execute(t, "range", "x", "--width", "10", "--xmin", "0", "--xmax", "10")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0.0, got["xmin"])
	assert.Equal(t, 10.0, got["xmax"])
	assert.Equal(t, 0.0, got["ymin"])
	assert.Equal(t, 9.0, got["ymax"])
	assert.Equal(t, []any{"x"}, got["expressions"])
}

func TestRange_Template(t *testing.T) {
	out, err := execute(t, "range", "x - 20", "--width", "10", "--xmin", "0", "--xmax", "10", "--template", "{{.ymin}}")
	require.NoError(t, err)

	assert.Equal(t, "-20\n", out)
}

func TestRange_ConflictingOutputFlags(t *testing.T) {
	_, err := execute(t, "range", "x", "--template", "{{.ymin}}", "--format", "yaml")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.JSONEq(t, `{"version": "dev", "gitCommit": "unknown", "buildDate": "unknown"}`, out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "version", "--log-level", "loud")
	assert.Error(t, err)
}
