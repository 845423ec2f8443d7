package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/network"
)

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the loaded network, as accepted by the store, in YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return network.Export(a.store).Encode(cmd.OutOrStdout())
		},
	}
}
