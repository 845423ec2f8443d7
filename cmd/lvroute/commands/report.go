package commands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/dijkstra"
	"github.com/katalvlaran/lvroute/metrics"
	"github.com/katalvlaran/lvroute/report"
)

func newReportCommand(a *app) *cobra.Command {
	var withMetrics bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the shortest distance between every pair of nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.cfg.FormatValue()
			if err != nil {
				return err
			}
			opts, err := a.queryOptions()
			if err != nil {
				return err
			}

			var (
				reg       *prometheus.Registry
				collector *metrics.Collector
			)
			if withMetrics {
				reg = prometheus.NewRegistry()
				if collector, err = metrics.New(reg); err != nil {
					return err
				}
				collector.RecordStore(a.store)
				opts = append(opts, dijkstra.WithObserver(collector))
			}

			entries, err := report.AllPairs(a.store, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("report computed", "pairs", len(entries), "format", format)

			out := cmd.OutOrStdout()
			if err := report.Write(out, format, entries); err != nil {
				return err
			}
			if reg == nil {
				return nil
			}

			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().String("format", string(report.FormatText), "output format: text, table or yaml")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "append query metrics in Prometheus text format")

	return cmd
}
