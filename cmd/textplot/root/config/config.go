package config

import (
	"github.com/spf13/cobra"

	"github.com/apelloni/textplots/cmd/textplot/root/config/set"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Configuration commands",
		Long:  `Commands for managing the textplot configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(set.NewSetCmd())

	return cmd
}
