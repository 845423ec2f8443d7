// Package dijkstra implements the label-based shortest-path engine.
//
// Each query builds fresh label state: every node starts TEMPORARY at
// Infinity, the start node is PERMANENT at 0. The engine then alternates
// two steps until no TEMPORARY node carries a finite distance:
//
//  1. relax every TEMPORARY neighbor of the most recently settled node;
//  2. settle (mark PERMANENT) the TEMPORARY node with the smallest finite
//     distance, ties broken by the lowest index.
//
// Running until no finite TEMPORARY label remains labels the whole reachable
// component; nodes outside it keep Infinity.
package dijkstra

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvroute/store"
)

// ShortestDistance returns the shortest distance between start and end.
//
// Returns:
//   - (d, nil) for a reachable end node; d == 0 when start == end.
//   - (Infinity, ErrNoPath) when end is unreachable (or beyond MaxDistance).
//
// Errors (in order of checking):
//  1. ErrNilGraph.
//  2. ErrStartNotFound (also matches store.ErrNodeNotFound).
//  3. ErrEndNotFound (also matches store.ErrNodeNotFound).
//  4. ErrUnknownStrategy.
//
// Complexity: O(V²) with StrategyLinear, O((V+E) log V) otherwise.
func ShortestDistance(g store.Reader, start, end string, opts ...Option) (int64, error) {
	cfg := resolve(opts)
	begin := time.Now()

	res, endIndex, err := query(g, start, end, cfg)
	if err != nil {
		cfg.observe(begin, nil, failure(err))
		return Infinity, err
	}
	if !res.Reachable(endIndex) {
		cfg.observe(begin, res, OutcomeNoPath)
		return Infinity, fmt.Errorf("%w: %s→%s", ErrNoPath, start, end)
	}
	cfg.observe(begin, res, OutcomeOK)

	return res.Distance(endIndex), nil
}

// Route returns the identifiers along one shortest path from start to end
// (both included) and its length. Errors match ShortestDistance.
func Route(g store.Reader, start, end string, opts ...Option) ([]string, int64, error) {
	cfg := resolve(opts)
	begin := time.Now()

	res, endIndex, err := query(g, start, end, cfg)
	if err != nil {
		cfg.observe(begin, nil, failure(err))
		return nil, Infinity, err
	}
	if !res.Reachable(endIndex) {
		cfg.observe(begin, res, OutcomeNoPath)
		return nil, Infinity, fmt.Errorf("%w: %s→%s", ErrNoPath, start, end)
	}
	cfg.observe(begin, res, OutcomeOK)

	return res.Route(endIndex), res.Distance(endIndex), nil
}

// Labels runs a full single-source labeling from start and returns every
// node's final label. Errors: ErrNilGraph, ErrStartNotFound, ErrUnknownStrategy.
func Labels(g store.Reader, start string, opts ...Option) (*Result, error) {
	cfg := resolve(opts)
	begin := time.Now()

	if g == nil {
		cfg.observe(begin, nil, OutcomeError)
		return nil, ErrNilGraph
	}
	src, err := g.NodeByID(start)
	if err != nil {
		cfg.observe(begin, nil, OutcomeNotFound)
		return nil, fmt.Errorf("%w: %w", ErrStartNotFound, err)
	}
	res, err := run(g, src.Index, cfg)
	if err != nil {
		cfg.observe(begin, nil, OutcomeError)
		return nil, err
	}
	cfg.observe(begin, res, OutcomeOK)

	return res, nil
}

// query resolves both endpoints and runs the labeling. On a resolution
// error the returned Result is nil.
func query(g store.Reader, start, end string, cfg Options) (*Result, int, error) {
	if g == nil {
		return nil, -1, ErrNilGraph
	}
	src, err := g.NodeByID(start)
	if err != nil {
		return nil, -1, fmt.Errorf("%w: %w", ErrStartNotFound, err)
	}
	dst, err := g.NodeByID(end)
	if err != nil {
		return nil, -1, fmt.Errorf("%w: %w", ErrEndNotFound, err)
	}
	res, err := run(g, src.Index, cfg)
	if err != nil {
		return nil, -1, err
	}

	return res, dst.Index, nil
}

// resolve applies opts on top of DefaultOptions.
func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// observe reports a finished query to the configured observer, if any.
func (o Options) observe(begin time.Time, res *Result, outcome Outcome) {
	if o.Observer == nil {
		return
	}
	st := Stats{Strategy: o.Strategy, Outcome: outcome, Duration: time.Since(begin)}
	if res != nil {
		st.Settled = res.Settled
		st.Relaxations = res.Relaxations
	}
	o.Observer.ObserveQuery(st)
}

// runner holds the mutable state of one labeling.
type runner struct {
	nodes    []store.Node // consistent copy taken once per query
	labels   []Label
	prev     []int
	frontier frontier
	maxDist  int64

	settled     int
	relaxations int
}

// run labels every node reachable from start.
func run(g store.Reader, start int, cfg Options) (*Result, error) {
	// 1) One consistent copy of the topology for the whole query.
	nodes := g.Nodes()
	n := len(nodes)

	// 2) Fresh label state: all TEMPORARY at Infinity, no predecessors.
	labels := make([]Label, n)
	prev := make([]int, n)
	for i := range labels {
		labels[i] = Label{Distance: Infinity, Mark: Temporary}
		prev[i] = -1
	}

	f, err := newFrontier(cfg.Strategy, labels)
	if err != nil {
		return nil, err
	}
	r := &runner{
		nodes:    nodes,
		labels:   labels,
		prev:     prev,
		frontier: f,
		maxDist:  cfg.MaxDistance,
	}

	// 3) Settle the start node and run the main loop.
	r.labels[start] = Label{Distance: 0, Mark: Permanent}
	r.settled = 1
	r.process(start)
	r.clearUnsettled()

	ids := make([]string, n)
	for i, nd := range nodes {
		ids[i] = nd.ID
	}

	return &Result{
		Start:       start,
		Strategy:    cfg.Strategy,
		Labels:      r.labels,
		Prev:        r.prev,
		Settled:     r.settled,
		Relaxations: r.relaxations,
		ids:         ids,
	}, nil
}

// process alternates relaxation and selection until no TEMPORARY node with
// a finite distance remains, or the next one lies beyond maxDist.
func (r *runner) process(current int) {
	for {
		r.relax(current)

		next, ok := r.frontier.next()
		if !ok {
			return
		}
		if r.labels[next].Distance > r.maxDist {
			return
		}
		r.labels[next].Mark = Permanent
		r.settled++
		current = next
	}
}

// relax improves the tentative distance of every TEMPORARY neighbor of u.
func (r *runner) relax(u int) {
	du := r.labels[u].Distance
	for _, e := range r.nodes[u].Neighbors {
		v := e.To
		if r.labels[v].Mark == Permanent {
			continue
		}
		// Store limits keep sums below Infinity; guard anyway.
		if e.Weight > Infinity-du {
			continue
		}
		nd := du + e.Weight
		if nd >= r.labels[v].Distance {
			continue
		}
		old := r.labels[v].Distance
		r.labels[v].Distance = nd
		r.prev[v] = u
		r.relaxations++
		r.frontier.update(v, old, nd)
	}
}

// clearUnsettled resets tentative labels left behind by a MaxDistance stop,
// so that a finite Distance always means a final one.
func (r *runner) clearUnsettled() {
	for i := range r.labels {
		if r.labels[i].Mark == Temporary {
			r.labels[i].Distance = Infinity
			r.prev[i] = -1
		}
	}
}
