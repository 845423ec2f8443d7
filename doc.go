// Package lvroute answers shortest-distance questions over a small, bounded
// network of named locations joined by weighted, undirected connections.
//
// 🚀 What is inside?
//
//	• Graph store: fixed-length identifiers, node and neighbor capacities,
//	  symmetric half-links, typed sentinel errors
//	• Shortest paths: label-based Dijkstra with three interchangeable
//	  frontier strategies (linear scan, binary heap, ordered B-tree)
//	• Networks as YAML: load, build, export, plus an embedded sample
//	• Reports: all-pairs distances as text, a terminal table or YAML
//	• Metrics: Prometheus collectors fed by a per-query observer hook
//
// Packages:
//
//	store/    – nodes, half-links, limits, snapshots
//	dijkstra/ – label state, strategies, options, routes
//	network/  – YAML definitions and the sample network
//	report/   – all-pairs computation and writers
//	metrics/  – Prometheus collectors
//	config/   – viper configuration and slog logger
//	cmd/lvroute – the command-line front end
//
// Quick example (the embedded sample network):
//
//	VLV─SPC 95   SPC─TFN 147   TFN─GOM 98    TFN─LPA 95
//	TFN─FUE 253  GOM─LPA 198   LPA─FUE 155   FUE─ACE 65
//
//	lvroute path VLV ACE
//	VLV->ACE:	557	VLV -> SPC -> TFN -> LPA -> FUE -> ACE
package lvroute
