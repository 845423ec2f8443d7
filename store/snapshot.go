// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Immutable, lock-free copies of a Store for isolated queries.
// Concurrency:
//   - Snapshot() holds the read lock on the source only while copying.
//   - A *Snapshot is never mutated afterwards and may be shared freely.

package store

import "fmt"

// Snapshot is a frozen copy of a Store's nodes and half-links.
type Snapshot struct {
	limits Limits
	nodes  []node
	byID   map[string]int
}

// Snapshot returns a deep copy of the current graph. Later mutations of s
// are not visible through the snapshot.
//
// Complexity: O(V + E).
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := &Snapshot{
		limits: s.limits,
		nodes:  make([]node, len(s.nodes)),
		byID:   make(map[string]int, len(s.byID)),
	}
	for i, n := range s.nodes {
		neighbors := make([]Edge, len(n.neighbors))
		copy(neighbors, n.neighbors)
		out.nodes[i] = node{id: n.id, neighbors: neighbors}
		out.byID[n.id] = i
	}

	return out
}

// Limits returns the limits of the source store.
func (sn *Snapshot) Limits() Limits { return sn.limits }

// Len returns the number of nodes.
func (sn *Snapshot) Len() int { return len(sn.nodes) }

// NodeByID resolves an identifier; see Store.NodeByID.
func (sn *Snapshot) NodeByID(id string) (Node, error) {
	index, ok := sn.byID[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return sn.NodeByIndex(index)
}

// NodeByIndex resolves an index; see Store.NodeByIndex.
func (sn *Snapshot) NodeByIndex(index int) (Node, error) {
	if index < 0 || index >= len(sn.nodes) {
		return Node{}, fmt.Errorf("%w: index %d", ErrNodeNotFound, index)
	}
	n := sn.nodes[index]

	return Node{ID: n.id, Index: index, Neighbors: sn.Neighbors(index)}, nil
}

// Neighbors returns a copy of the half-links leaving index.
func (sn *Snapshot) Neighbors(index int) []Edge {
	if index < 0 || index >= len(sn.nodes) {
		return nil
	}
	out := make([]Edge, len(sn.nodes[index].neighbors))
	copy(out, sn.nodes[index].neighbors)

	return out
}

// Nodes returns copies of all nodes in index order.
func (sn *Snapshot) Nodes() []Node {
	out := make([]Node, len(sn.nodes))
	for i := range sn.nodes {
		out[i], _ = sn.NodeByIndex(i)
	}

	return out
}
