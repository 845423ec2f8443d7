// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Limits, Store, Option, sentinel errors and the New constructor.

package store

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for store operations. Callers branch with errors.Is;
// returned errors usually wrap one of these with the offending identifiers.
var (
	// ErrInvalidIdentifier indicates an identifier whose length differs from Limits.IDLength.
	ErrInvalidIdentifier = errors.New("store: invalid identifier length")

	// ErrDuplicateIdentifier indicates InsertNode was called with an identifier already present.
	ErrDuplicateIdentifier = errors.New("store: duplicate identifier")

	// ErrNodeCapacity indicates the store already holds Limits.MaxNodes nodes.
	ErrNodeCapacity = errors.New("store: node capacity exceeded")

	// ErrNodeNotFound indicates an identifier or index that does not resolve to a node.
	ErrNodeNotFound = errors.New("store: node not found")

	// ErrSelfLoop indicates SetEdge was asked to connect a node to itself.
	ErrSelfLoop = errors.New("store: self-loop rejected")

	// ErrNonPositiveWeight indicates a weight <= 0.
	ErrNonPositiveWeight = errors.New("store: weight must be positive")

	// ErrWeightTooLarge indicates a weight above Limits.MaxWeight.
	ErrWeightTooLarge = errors.New("store: weight exceeds limit")

	// ErrNeighborCapacity indicates a new connection would exceed Limits.MaxNeighbors on either endpoint.
	ErrNeighborCapacity = errors.New("store: neighbor capacity exceeded")

	// ErrEdgeNotFound indicates no half-link exists between the two nodes.
	ErrEdgeNotFound = errors.New("store: edge not found")

	// ErrBadLimits indicates a Limits value that cannot be honored.
	ErrBadLimits = errors.New("store: bad limits")
)

// Default capacity values, matching the reference island network.
const (
	DefaultIDLength     = 3
	DefaultMaxNodes     = 30
	DefaultMaxNeighbors = 5
	DefaultMaxWeight    = math.MaxInt32
)

// presize caps the storage reserved up front; larger limits grow on demand.
const presize = 64

// Limits holds the construction-time capacity configuration of a Store.
type Limits struct {
	IDLength     int   `mapstructure:"id_length" yaml:"id_length"`
	MaxNodes     int   `mapstructure:"max_nodes" yaml:"max_nodes"`
	MaxNeighbors int   `mapstructure:"max_neighbors" yaml:"max_neighbors"`
	MaxWeight    int64 `mapstructure:"max_weight" yaml:"max_weight"`
}

// DefaultLimits returns the reference limits: 3-character identifiers,
// 30 nodes, 5 neighbors per node, weights up to math.MaxInt32.
func DefaultLimits() Limits {
	return Limits{
		IDLength:     DefaultIDLength,
		MaxNodes:     DefaultMaxNodes,
		MaxNeighbors: DefaultMaxNeighbors,
		MaxWeight:    DefaultMaxWeight,
	}
}

// MaxHalfLinks is the derived ceiling on stored half-links, saturating at
// math.MaxInt.
func (l Limits) MaxHalfLinks() int {
	if l.MaxNodes > 0 && l.MaxNeighbors > math.MaxInt/l.MaxNodes {
		return math.MaxInt
	}

	return l.MaxNodes * l.MaxNeighbors
}

// Validate reports ErrBadLimits when any limit is non-positive or when the
// longest simple path, (MaxNodes-1) * MaxWeight, could reach math.MaxInt64.
// The latter keeps every achievable distance strictly below the engine's
// "unreachable" sentinel.
func (l Limits) Validate() error {
	if l.IDLength <= 0 {
		return fmt.Errorf("%w: id length %d", ErrBadLimits, l.IDLength)
	}
	if l.MaxNodes <= 0 {
		return fmt.Errorf("%w: max nodes %d", ErrBadLimits, l.MaxNodes)
	}
	if l.MaxNeighbors <= 0 {
		return fmt.Errorf("%w: max neighbors %d", ErrBadLimits, l.MaxNeighbors)
	}
	if l.MaxWeight <= 0 {
		return fmt.Errorf("%w: max weight %d", ErrBadLimits, l.MaxWeight)
	}
	if hops := int64(l.MaxNodes - 1); hops > 0 && l.MaxWeight >= math.MaxInt64/hops {
		return fmt.Errorf("%w: %d nodes × weight %d overflows distance range", ErrBadLimits, l.MaxNodes, l.MaxWeight)
	}

	return nil
}

// Merge returns l with every positive field of o applied on top.
func (l Limits) Merge(o Limits) Limits {
	if o.IDLength > 0 {
		l.IDLength = o.IDLength
	}
	if o.MaxNodes > 0 {
		l.MaxNodes = o.MaxNodes
	}
	if o.MaxNeighbors > 0 {
		l.MaxNeighbors = o.MaxNeighbors
	}
	if o.MaxWeight > 0 {
		l.MaxWeight = o.MaxWeight
	}

	return l
}

// Edge is one directed half-link of an undirected connection.
// To is the index of the neighboring node inside the owning store.
type Edge struct {
	To     int
	Weight int64
}

// Node is a read-only copy of a stored node.
// Neighbors is in insertion (discovery) order.
type Node struct {
	ID        string
	Index     int
	Neighbors []Edge
}

// Degree returns the number of half-links leaving the node.
func (n Node) Degree() int { return len(n.Neighbors) }

// node is the owned storage record.
type node struct {
	id        string
	neighbors []Edge
}

// Option configures a Store before creation.
type Option func(*Limits)

// WithLimits replaces all limits at once. Validation happens in New.
func WithLimits(l Limits) Option {
	return func(dst *Limits) { *dst = l }
}

// WithIDLength sets the exact identifier length. Panics if n <= 0.
func WithIDLength(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("store: WithIDLength(%d): must be positive", n))
	}
	return func(l *Limits) { l.IDLength = n }
}

// WithMaxNodes sets the node capacity. Panics if n <= 0.
func WithMaxNodes(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("store: WithMaxNodes(%d): must be positive", n))
	}
	return func(l *Limits) { l.MaxNodes = n }
}

// WithMaxNeighbors sets the per-node neighbor capacity. Panics if n <= 0.
func WithMaxNeighbors(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("store: WithMaxNeighbors(%d): must be positive", n))
	}
	return func(l *Limits) { l.MaxNeighbors = n }
}

// WithMaxWeight sets the largest admissible weight. Panics if w <= 0.
func WithMaxWeight(w int64) Option {
	if w <= 0 {
		panic(fmt.Sprintf("store: WithMaxWeight(%d): must be positive", w))
	}
	return func(l *Limits) { l.MaxWeight = w }
}

// Store is the bounded graph container.
//
// nodes is indexed by Node.Index; byID mirrors it for identifier lookups.
// halfLinks counts stored half-links (always even).
type Store struct {
	mu sync.RWMutex

	limits    Limits
	nodes     []node
	byID      map[string]int
	halfLinks int
}

// New creates an empty Store. Options are applied left to right on top of
// DefaultLimits; the result must pass Limits.Validate.
//
// Complexity: O(1); storage grows as nodes are inserted.
func New(opts ...Option) (*Store, error) {
	limits := DefaultLimits()
	for _, opt := range opts {
		opt(&limits)
	}
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	return &Store{
		limits: limits,
		nodes:  make([]node, 0, min(limits.MaxNodes, presize)),
		byID:   make(map[string]int, min(limits.MaxNodes, presize)),
	}, nil
}

// MustNew is like New but panics on invalid limits. Intended for tests and
// package-level fixtures.
func MustNew(opts ...Option) *Store {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// Reader is the read-only surface consumed by path engines and reports.
// Both *Store and *Snapshot implement it.
type Reader interface {
	Limits() Limits
	Len() int
	NodeByID(id string) (Node, error)
	NodeByIndex(index int) (Node, error)
	Neighbors(index int) []Edge
	Nodes() []Node
}

var (
	_ Reader = (*Store)(nil)
	_ Reader = (*Snapshot)(nil)
)
