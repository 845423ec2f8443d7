// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in index (insertion) order.
//
// Concurrency:
//   - InsertNode under the write lock, queries under the read lock.

package store

import (
	"fmt"
	"unicode/utf8"
)

// validID reports whether id has exactly Limits.IDLength runes.
func (s *Store) validID(id string) bool {
	return utf8.RuneCountInString(id) == s.limits.IDLength
}

// InsertNode appends a new node with the next sequential index.
//
// Implementation:
//   - Stage 1: Reject when the store already holds MaxNodes nodes.
//   - Stage 2: Reject identifiers of the wrong length.
//   - Stage 3: Reject identifiers already present.
//   - Stage 4: Append the node; its index is the previous node count.
//
// Errors:
//   - ErrNodeCapacity, ErrInvalidIdentifier, ErrDuplicateIdentifier.
//     On any error the store is unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (s *Store) InsertNode(id string) (Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.nodes) >= s.limits.MaxNodes {
		return Node{}, fmt.Errorf("%w: %q (limit %d)", ErrNodeCapacity, id, s.limits.MaxNodes)
	}
	if !s.validID(id) {
		return Node{}, fmt.Errorf("%w: %q (want %d)", ErrInvalidIdentifier, id, s.limits.IDLength)
	}
	if _, exists := s.byID[id]; exists {
		return Node{}, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, id)
	}

	index := len(s.nodes)
	s.nodes = append(s.nodes, node{id: id, neighbors: make([]Edge, 0, min(s.limits.MaxNeighbors, presize))})
	s.byID[id] = index

	return Node{ID: id, Index: index, Neighbors: []Edge{}}, nil
}

// NodeByID resolves an identifier. Identifiers of the wrong length never
// resolve. The returned Node is a copy.
//
// Complexity: O(1) lookup + O(deg) copy.
func (s *Store) NodeByID(id string) (Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index, ok := s.lookup(id)
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return s.copyNode(index), nil
}

// NodeByIndex resolves an index in [0, Len()).
//
// Complexity: O(1) lookup + O(deg) copy.
func (s *Store) NodeByIndex(index int) (Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.nodes) {
		return Node{}, fmt.Errorf("%w: index %d", ErrNodeNotFound, index)
	}

	return s.copyNode(index), nil
}

// Has reports whether id resolves to a node.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.lookup(id)

	return ok
}

// Len returns the number of stored nodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.nodes)
}

// Limits returns the construction-time limits.
func (s *Store) Limits() Limits {
	// limits never change after New; no lock needed.
	return s.limits
}

// Nodes returns copies of all nodes in index order.
//
// Complexity: O(V + E).
func (s *Store) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Node, len(s.nodes))
	for i := range s.nodes {
		out[i] = s.copyNode(i)
	}

	return out
}

// Degree returns the number of neighbors of id.
func (s *Store) Degree(id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index, ok := s.lookup(id)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return len(s.nodes[index].neighbors), nil
}

// lookup resolves id to an index. Caller holds a lock.
func (s *Store) lookup(id string) (int, bool) {
	if !s.validID(id) {
		return 0, false
	}
	index, ok := s.byID[id]

	return index, ok
}

// copyNode builds the exported copy of nodes[index]. Caller holds a lock.
func (s *Store) copyNode(index int) Node {
	n := s.nodes[index]
	neighbors := make([]Edge, len(n.neighbors))
	copy(neighbors, n.neighbors)

	return Node{ID: n.id, Index: index, Neighbors: neighbors}
}
