// Package dijkstra defines the label types, frontier strategies and
// configuration options of the shortest-path engine.
//
// Options:
//
//	– Strategy:     how the next TEMPORARY node is selected (linear scan by default).
//	– MaxDistance:  optional cap; nodes farther than this stay TEMPORARY.
//	– Observer:     optional per-query callback (metrics, tracing).
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph reader is nil.
//	– ErrStartNotFound   if the start identifier does not resolve.
//	– ErrEndNotFound     if the end identifier does not resolve.
//	– ErrNoPath          if the end node is unreachable from the start node.
//	– ErrUnknownStrategy if ParseStrategy receives an unknown name.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Infinity is the distance sentinel for nodes not (yet) reached. The store
// limits guarantee that every finite path sum stays strictly below it.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates a nil store.Reader was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates the start identifier does not resolve.
	// Returned errors also match store.ErrNodeNotFound.
	ErrStartNotFound = errors.New("dijkstra: start node not found")

	// ErrEndNotFound indicates the end identifier does not resolve.
	// Returned errors also match store.ErrNodeNotFound.
	ErrEndNotFound = errors.New("dijkstra: end node not found")

	// ErrNoPath indicates the end node is not reachable from the start node.
	ErrNoPath = errors.New("dijkstra: no path exists")

	// ErrUnknownStrategy indicates an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")

	// ErrBadMaxDistance indicates WithMaxDistance received a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Mark is the label state of a node during a query.
type Mark uint8

const (
	// Temporary marks a node whose distance may still improve.
	Temporary Mark = iota

	// Permanent marks a node whose shortest distance is final.
	Permanent
)

// String implements fmt.Stringer.
func (m Mark) String() string {
	if m == Permanent {
		return "permanent"
	}

	return "temporary"
}

// Label is the per-node state of one query.
type Label struct {
	Distance int64
	Mark     Mark
}

// Strategy selects how the next TEMPORARY node is chosen. Every strategy
// picks the smallest finite distance with ties broken by the lowest index,
// so all of them produce identical results.
type Strategy int

const (
	// StrategyLinear scans all labels left to right: O(V) per step, O(V²) overall.
	StrategyLinear Strategy = iota

	// StrategyHeap keeps a binary min-heap with lazy decrease-key: O((V+E) log V).
	StrategyHeap

	// StrategyOrdered keeps an ordered B-tree of (distance, index) pairs with
	// exact decrease-key: O((V+E) log V).
	StrategyOrdered
)

var strategyNames = [...]string{
	StrategyLinear:  "linear",
	StrategyHeap:    "heap",
	StrategyOrdered: "ordered",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps "linear", "heap" or "ordered" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}

	return StrategyLinear, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Outcome classifies a finished query for observers.
type Outcome string

const (
	// OutcomeOK marks a query that produced a distance or a labeling.
	OutcomeOK Outcome = "ok"

	// OutcomeNoPath marks a query whose end node was unreachable.
	OutcomeNoPath Outcome = "no_path"

	// OutcomeNotFound marks a query whose start or end identifier did not resolve.
	OutcomeNotFound Outcome = "not_found"

	// OutcomeError marks a query rejected for any other reason
	// (nil graph, unknown strategy).
	OutcomeError Outcome = "error"
)

// failure classifies an error returned before labeling finished.
func failure(err error) Outcome {
	if errors.Is(err, ErrStartNotFound) || errors.Is(err, ErrEndNotFound) {
		return OutcomeNotFound
	}

	return OutcomeError
}

// Stats describes one finished query.
type Stats struct {
	Strategy    Strategy
	Outcome     Outcome
	Settled     int
	Relaxations int
	Duration    time.Duration
}

// Observer receives Stats after every query. Implementations must be safe
// for concurrent use when queries run concurrently.
type Observer interface {
	ObserveQuery(Stats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Stats)

// ObserveQuery calls f(st).
func (f ObserverFunc) ObserveQuery(st Stats) { f(st) }

// Options configures a query.
type Options struct {
	Strategy    Strategy
	MaxDistance int64
	Observer    Observer
}

// Option is a functional option for queries.
type Option func(*Options)

// DefaultOptions returns linear selection, no distance cap and no observer.
func DefaultOptions() Options {
	return Options{
		Strategy:    StrategyLinear,
		MaxDistance: Infinity,
	}
}

// WithStrategy selects the frontier strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithMaxDistance stops settling nodes whose distance exceeds max.
// Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithObserver attaches an observer; nil removes it.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}
