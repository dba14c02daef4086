package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/apelloni/textplots/cmd/textplot/root/config"
	"github.com/apelloni/textplots/cmd/textplot/root/plot"
	"github.com/apelloni/textplots/cmd/textplot/root/version"
	"github.com/apelloni/textplots/cmd/textplot/root/yrange"
)

// NewRootCmd returns the textplot command tree.
func NewRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "textplot <command> [flags]",
		Short: "Plot functions in the terminal",
		Long:  `Plot mathematical functions of x as braille line charts in the terminal.`,
		Example: heredoc.Doc(`
			$ textplot plot "sin(x)"
			$ textplot plot "x ** 2.0" "10 * cos(x)" --xmin -5 --xmax 5
			$ textplot range "exp(x)" --format yaml
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			log.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(plot.NewPlotCmd())
	cmd.AddCommand(yrange.NewRangeCmd())
	cmd.AddCommand(config.NewConfigCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
