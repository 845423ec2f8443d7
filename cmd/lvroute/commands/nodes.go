package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newNodesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the nodes with their index and number of neighbors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limits := a.store.Limits()
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("INDEX", "ID", "NEIGHBORS")
			for _, n := range a.store.Nodes() {
				t.Row(strconv.Itoa(n.Index), n.ID, fmt.Sprintf("%d/%d", n.Degree(), limits.MaxNeighbors))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())

			return err
		},
	}
}
