package plot

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apelloni/textplots/internal/cliutil"
	"github.com/apelloni/textplots/internal/function"
	"github.com/apelloni/textplots/pkg/chart"
)

// NewPlotCmd creates a command that draws one or more expressions onto a
// single chart.
func NewPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot <expression>...",
		Short: "Plot functions of x",
		Long: heredoc.Docf(`
			Plot one or more functions of x onto a single braille chart.

			Every expression shares the chart's vertical scale. Available
			names: %v.
		`, function.Names()),
		Example: heredoc.Doc(`
			# Plot a sine wave over the default domain [-10, 10]
			$ textplot plot "sin(x)"

			# Plot two curves on a taller chart
			$ textplot plot "x ** 3.0" "-x ** 3.0" --height 80 --xmin -2 --xmax 2
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args)
		},
	}

	cliutil.AddChartFlags(cmd)

	return cmd
}

func runPlot(cmd *cobra.Command, exprs []string) error {
	settings, err := cliutil.GetChartSettings(cmd, viper.GetViper())
	if err != nil {
		return err
	}

	funcs, err := compileAll(exprs)
	if err != nil {
		return err
	}

	c := settings.NewChart(chart.WithLogger(log.Default()))
	for i, f := range funcs {
		log.Debug("Plotting function", "expression", exprs[i])
		c.LinePlot(f)
	}

	r := c.Range()
	log.Info("Plotted functions", "count", len(funcs), "ymin", r.Min, "ymax", r.Max)

	if _, err := c.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

func compileAll(exprs []string) ([]chart.Func, error) {
	funcs := make([]chart.Func, 0, len(exprs))
	for _, src := range exprs {
		f, err := function.Compile(src)
		if err != nil {
			log.Error("Failed to compile expression", "expression", src, "error", err)
			return nil, err
		}
		funcs = append(funcs, f)
	}
	return funcs, nil
}
