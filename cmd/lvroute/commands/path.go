package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
)

func newPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the shortest distance and one shortest route between two nodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.queryOptions()
			if err != nil {
				return err
			}
			route, dist, err := dijkstra.Route(a.store, args[0], args[1], opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s->%s:\t%d\t%s\n",
				args[0], args[1], dist, strings.Join(route, " -> "))

			return err
		},
	}
}
