// Package dijkstra computes single-source shortest distances over a
// store.Reader using Dijkstra's algorithm with explicit permanent/temporary
// labels.
//
// Overview:
//
//   - Every query allocates fresh label state sized to the node count; nothing
//     is cached across queries and the graph is never mutated.
//   - Weights are positive by store invariant, which is all Dijkstra needs.
//   - Unreachable nodes keep the Infinity sentinel. Query functions turn that
//     into ErrNoPath so callers never mistake it for a finite distance.
//
// API:
//
//	ShortestDistance(g, start, end, opts...) (int64, error)
//	Route(g, start, end, opts...) ([]string, int64, error)
//	Labels(g, start, opts...) (*Result, error)
//
// Selection strategies:
//
//   - StrategyLinear (default): scan labels left to right for the smallest
//     TEMPORARY distance. O(V) per step, O(V²) total; ideal for the small,
//     bounded graphs the store is built for.
//   - StrategyHeap: container/heap min-heap with lazy decrease-key.
//   - StrategyOrdered: tidwall/btree ordered set with exact decrease-key.
//
// All strategies break ties by lowest index and therefore settle nodes in the
// same order and produce the same predecessors.
//
// Options:
//
//   - WithStrategy(s)      select the frontier.
//   - WithMaxDistance(d)   leave nodes farther than d unsettled (d ≥ 0, else panic).
//   - WithObserver(obs)    receive Stats after each query (see package metrics).
//
// Thread safety:
//
//   - Queries never share state and may run concurrently.
//   - Each query copies the topology once through Reader.Nodes(). Pass a
//     store.Snapshot when construction and queries interleave.
package dijkstra
