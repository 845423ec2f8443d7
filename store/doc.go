// Package store provides the bounded, in-memory Graph Store consumed by the
// shortest-path engine.
//
// A Store owns every node and every half-link of a small undirected,
// positively weighted graph:
//
//   - Nodes carry a fixed-length identifier and a stable index equal to their
//     zero-based insertion order. Nodes are never removed.
//   - Each undirected connection A–B is stored as two half-links, A→B in A's
//     neighbor list and B→A in B's neighbor list, with equal weights.
//   - Half-links reference their target by index, never by pointer, so node
//     storage may grow without dangling references.
//
// Capacity (Limits):
//
//	– IDLength      exact identifier length in runes (default 3)
//	– MaxNodes      node ceiling (default 30)
//	– MaxNeighbors  per-node half-link ceiling (default 5)
//	– MaxWeight     largest admissible weight (default math.MaxInt32)
//
// Limits are fixed at construction. Exceeding them is reported with a
// sentinel error, never clamped or truncated.
//
// Core Methods:
//
//	InsertNode(id string) (Node, error)           // O(1) amortized
//	NodeByID(id string) (Node, error)             // O(1) + O(deg) copy
//	NodeByIndex(index int) (Node, error)          // O(1) + O(deg) copy
//	SetEdge(a, b string, weight int64) error      // O(deg(a) + deg(b))
//	Weight(a, b string) (int64, error)            // O(deg(a))
//	Neighbors(index int) []Edge                   // O(deg) copy
//	Nodes() []Node                                // O(V + E) copy, index order
//	Snapshot() *Snapshot                          // O(V + E) immutable copy
//
// Errors:
//
//	ErrInvalidIdentifier   – identifier length differs from Limits.IDLength
//	ErrDuplicateIdentifier – identifier already present
//	ErrNodeCapacity        – MaxNodes reached
//	ErrNodeNotFound        – identifier or index does not resolve
//	ErrSelfLoop            – SetEdge(a, a, ...)
//	ErrNonPositiveWeight   – weight <= 0
//	ErrWeightTooLarge      – weight > Limits.MaxWeight
//	ErrNeighborCapacity    – a new connection would exceed MaxNeighbors
//	ErrEdgeNotFound        – Weight(a, b) on an unconnected pair
//	ErrBadLimits           – inconsistent Limits at construction
//
// Concurrency:
//
// Every method is safe for concurrent use; mutations take the write lock and
// queries the read lock. A multi-step read such as a shortest-path query is
// not isolated from concurrent mutation; take a Snapshot first when queries
// and construction interleave.
package store
