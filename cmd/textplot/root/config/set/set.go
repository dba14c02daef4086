package set

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apelloni/textplots/internal/cliutil"
)

func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set a chart default that will be persisted in the config file.`,
		Example: heredoc.Doc(`
			# Draw wider charts by default
			$ textplot config set width 200

			# Plot over [0, 6.28] by default
			$ textplot config set xmin 0
			$ textplot config set xmax 6.28
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value, err := parse(args[0], args[1])
			if err != nil {
				return err
			}

			viper.Set(key, value)

			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully set %s = %v\n", key, value)
			return nil
		},
	}

	return cmd
}

// parse validates a configuration key and converts its value to the key's
// type.
func parse(key, raw string) (string, any, error) {
	if !slices.Contains(cliutil.ChartKeys, key) {
		return "", nil, fmt.Errorf("invalid config key: %s. Valid keys are: %v", key, cliutil.ChartKeys)
	}

	switch key {
	case cliutil.KeyWidth, cliutil.KeyHeight:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		if n <= 0 {
			return "", nil, fmt.Errorf("invalid value for %s: must be positive, got %d", key, n)
		}
		return key, n, nil
	default:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		return key, f, nil
	}
}
