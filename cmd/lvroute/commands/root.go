// Package commands holds the cobra command tree of lvroute.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/network"
	"github.com/katalvlaran/lvroute/store"
)

// app is the state shared by every subcommand once the root pre-run has
// resolved the configuration and built the network.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg    config.Config
	logger *slog.Logger
	store  *store.Store
	sum    network.Summary
}

// Execute runs the command tree against the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds a fresh command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}
	limits := store.DefaultLimits()

	root := &cobra.Command{
		Use:   "lvroute",
		Short: "Shortest distances over a bounded network of named locations",
		Long: `lvroute loads a network of named locations joined by weighted,
undirected connections and answers shortest-distance queries over it.

Without --graph the built-in Canary Islands network is used.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./.lvroute.yaml or ~/.lvroute.yaml)")
	pf.String("graph", "", "network definition file (YAML)")
	pf.String("strategy", dijkstra.StrategyLinear.String(), "frontier strategy: linear, heap or ordered")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Int("id-length", limits.IDLength, "exact identifier length")
	pf.Int("max-nodes", limits.MaxNodes, "node capacity")
	pf.Int("max-neighbors", limits.MaxNeighbors, "neighbors per node")
	pf.Int64("max-weight", limits.MaxWeight, "largest connection weight")

	root.AddCommand(
		newReportCommand(a),
		newPathCommand(a),
		newNodesCommand(a),
		newExportCommand(a),
	)

	return root
}

// setup resolves the configuration, builds the logger and loads the network.
// Rejected nodes and connections are logged and do not abort the command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	def := network.Sample()
	source := "sample"
	if cfg.Graph != "" {
		if def, err = network.Load(cfg.Graph); err != nil {
			return err
		}
		source = cfg.Graph
	}

	// Explicit configuration wins over the definition's own limits.
	limits := def.ApplyLimits(cfg.Limits).Merge(config.Overrides(a.v, cmd.Flags()))
	s, err := store.New(store.WithLimits(limits))
	if err != nil {
		return err
	}
	sum, _ := network.Build(def, s, logger)
	a.store, a.sum = s, sum
	logger.Info("network loaded", "source", source,
		"nodes", s.Len(), "half_links", s.HalfLinks(),
		"rejected_nodes", sum.NodesRejected, "rejected_edges", sum.EdgesRejected)

	return nil
}

// queryOptions returns the engine options from the configuration.
func (a *app) queryOptions() ([]dijkstra.Option, error) {
	strategy, err := a.cfg.StrategyValue()
	if err != nil {
		return nil, err
	}

	return []dijkstra.Option{dijkstra.WithStrategy(strategy)}, nil
}
