// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Connection lifecycle (SetEdge) and half-link queries.
//
// Invariants:
//   - For every connection A–B exactly one half-link A→B and one B→A exist.
//   - Both half-links of a connection carry the same weight.
//   - A node never holds more than MaxNeighbors half-links.
//
// Concurrency:
//   - SetEdge under the write lock; validation and mutation happen inside
//     the same critical section so a failed call never leaves a partial link.

package store

import "fmt"

// SetEdge connects a and b with the given weight, or updates the weight of
// an existing connection.
//
// Implementation:
//   - Stage 1: Validate both identifier lengths, a != b, 0 < weight <= MaxWeight.
//   - Stage 2: Resolve both nodes.
//   - Stage 3: If a→b exists, rewrite a→b and b→a in place (no capacity used).
//   - Stage 4: Otherwise check that both endpoints have a free slot, then
//     append a→b and b→a.
//
// Errors:
//   - ErrInvalidIdentifier, ErrSelfLoop, ErrNonPositiveWeight, ErrWeightTooLarge,
//     ErrNodeNotFound, ErrNeighborCapacity. On any error the store is unchanged.
//
// Complexity:
//   - Time O(deg(a) + deg(b)), Space O(1) amortized.
func (s *Store) SetEdge(a, b string, weight int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1) Validate arguments before touching storage.
	if !s.validID(a) {
		return fmt.Errorf("%w: %q (want %d)", ErrInvalidIdentifier, a, s.limits.IDLength)
	}
	if !s.validID(b) {
		return fmt.Errorf("%w: %q (want %d)", ErrInvalidIdentifier, b, s.limits.IDLength)
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrSelfLoop, a)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrNonPositiveWeight, a, b, weight)
	}
	if weight > s.limits.MaxWeight {
		return fmt.Errorf("%w: %s-%s weight=%d (limit %d)", ErrWeightTooLarge, a, b, weight, s.limits.MaxWeight)
	}

	// 2) Resolve endpoints.
	ia, ok := s.byID[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	ib, ok := s.byID[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}

	// 3) Existing connection: update both halves.
	pa := s.halfLink(ia, ib)
	pb := s.halfLink(ib, ia)
	if pa >= 0 && pb >= 0 {
		s.nodes[ia].neighbors[pa].Weight = weight
		s.nodes[ib].neighbors[pb].Weight = weight

		return nil
	}

	// 4) New connection: both sides need a free slot before either is touched.
	if n := len(s.nodes[ia].neighbors); n >= s.limits.MaxNeighbors {
		return fmt.Errorf("%w: %q has %d neighbors", ErrNeighborCapacity, a, n)
	}
	if n := len(s.nodes[ib].neighbors); n >= s.limits.MaxNeighbors {
		return fmt.Errorf("%w: %q has %d neighbors", ErrNeighborCapacity, b, n)
	}
	s.nodes[ia].neighbors = append(s.nodes[ia].neighbors, Edge{To: ib, Weight: weight})
	s.nodes[ib].neighbors = append(s.nodes[ib].neighbors, Edge{To: ia, Weight: weight})
	s.halfLinks += 2

	return nil
}

// Weight returns the weight of the half-link a→b.
//
// Errors: ErrNodeNotFound if either identifier does not resolve,
// ErrEdgeNotFound if the nodes are not connected.
func (s *Store) Weight(a, b string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ia, ok := s.lookup(a)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, a)
	}
	ib, ok := s.lookup(b)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, b)
	}
	p := s.halfLink(ia, ib)
	if p < 0 {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, a, b)
	}

	return s.nodes[ia].neighbors[p].Weight, nil
}

// Neighbors returns a copy of the half-links leaving the node at index,
// in insertion order. Out-of-range indices yield nil.
func (s *Store) Neighbors(index int) []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.nodes) {
		return nil
	}
	out := make([]Edge, len(s.nodes[index].neighbors))
	copy(out, s.nodes[index].neighbors)

	return out
}

// HalfLinks returns the number of stored half-links (twice the number of connections).
func (s *Store) HalfLinks() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.halfLinks
}

// halfLink returns the position of from→to inside from's neighbor list, or -1.
// Caller holds a lock.
func (s *Store) halfLink(from, to int) int {
	for i, e := range s.nodes[from].neighbors {
		if e.To == to {
			return i
		}
	}

	return -1
}
