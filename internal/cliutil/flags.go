package cliutil

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apelloni/textplots/pkg/chart"
)

// Chart dimension and domain configuration keys.
const (
	KeyWidth  = "width"
	KeyHeight = "height"
	KeyXMin   = "xmin"
	KeyXMax   = "xmax"
)

// ChartKeys lists every chart configuration key.
var ChartKeys = []string{KeyWidth, KeyHeight, KeyXMin, KeyXMax}

// SetChartDefaults registers the default chart dimensions and domain.
func SetChartDefaults(v *viper.Viper) {
	v.SetDefault(KeyWidth, chart.DefaultWidth)
	v.SetDefault(KeyHeight, chart.DefaultHeight)
	v.SetDefault(KeyXMin, chart.DefaultXMin)
	v.SetDefault(KeyXMax, chart.DefaultXMax)
}

// AddChartFlags registers --width, --height, --xmin and --xmax on cmd.
func AddChartFlags(cmd *cobra.Command) {
	cmd.Flags().Int(KeyWidth, chart.DefaultWidth, "Chart width in dots")
	cmd.Flags().Int(KeyHeight, chart.DefaultHeight, "Chart height in dots")
	cmd.Flags().Float64(KeyXMin, chart.DefaultXMin, "Lower bound of the plotted domain")
	cmd.Flags().Float64(KeyXMax, chart.DefaultXMax, "Upper bound of the plotted domain")
}

// ChartSettings are the configured chart dimensions and domain.
type ChartSettings struct {
	Width  int     `json:"width" yaml:"width"`
	Height int     `json:"height" yaml:"height"`
	XMin   float64 `json:"xmin" yaml:"xmin"`
	XMax   float64 `json:"xmax" yaml:"xmax"`
}

// NewChart returns an empty chart with these settings.
func (s ChartSettings) NewChart(opts ...chart.Option) *chart.Chart {
	return chart.New(s.Width, s.Height, s.XMin, s.XMax, opts...)
}

// GetChartSettings binds the chart flags of the running command to v and
// reads the chart keys, so flags take precedence over the config file.
// Commands share keys, so binding happens at run time rather than when the
// flags are registered.
func GetChartSettings(cmd *cobra.Command, v *viper.Viper) (ChartSettings, error) {
	for _, key := range ChartKeys {
		if flag := cmd.Flags().Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return ChartSettings{}, fmt.Errorf("failed to bind flag %s: %w", key, err)
			}
		}
	}

	s := ChartSettings{
		Width:  v.GetInt(KeyWidth),
		Height: v.GetInt(KeyHeight),
		XMin:   v.GetFloat64(KeyXMin),
		XMax:   v.GetFloat64(KeyXMax),
	}
	if s.Width <= 0 || s.Height <= 0 {
		return s, fmt.Errorf("chart dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	return s, nil
}
