package yrange

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apelloni/textplots/internal/cliutil"
	"github.com/apelloni/textplots/internal/function"
	"github.com/apelloni/textplots/pkg/chart"
)

// Result is the discovered range of one or more expressions.
type Result struct {
	Expressions []string `json:"expressions"`
	XMin        float64  `json:"xmin"`
	XMax        float64  `json:"xmax"`
	YMin        float64  `json:"ymin"`
	YMax        float64  `json:"ymax"`
}

// NewRangeCmd creates a command that reports the y range a chart would use,
// without drawing it.
func NewRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range <expression>...",
		Short: "Print the y range of functions of x",
		Long:  `Sample one or more functions of x and print the vertical range a chart of them would use.`,
		Example: heredoc.Doc(`
			$ textplot range "sin(x)"
			$ textplot range "exp(x)" --xmax 2 --format yaml
			$ textplot range "x ** 2.0" --template "{{.ymax}}"
		`),
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.ValidateOutputFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cliutil.GetChartSettings(cmd, viper.GetViper())
			if err != nil {
				return err
			}

			c := settings.NewChart(chart.WithLogger(log.Default()))
			for _, src := range args {
				f, err := function.Compile(src)
				if err != nil {
					return err
				}
				c.LinePlot(f)
			}

			r := c.Range()
			return cliutil.HandleOutput(cmd, Result{
				Expressions: args,
				XMin:        settings.XMin,
				XMax:        settings.XMax,
				YMin:        r.Min,
				YMax:        r.Max,
			})
		},
	}

	cliutil.AddChartFlags(cmd)
	cliutil.AddOutputFlags(cmd)

	return cmd
}
