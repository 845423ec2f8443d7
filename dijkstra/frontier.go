// File: frontier.go
// Role: Selection strategies for the next TEMPORARY node.
//
// Every frontier yields the TEMPORARY node with the smallest finite distance,
// ties broken by the lowest index. The runner owns the labels; a frontier only
// reads them and is told about every distance decrease through update.

package dijkstra

import (
	"container/heap"
	"fmt"
)

// frontier is the pluggable selection step of the label-based algorithm.
type frontier interface {
	// update is called after labels[index].Distance dropped from old to dist.
	update(index int, old, dist int64)

	// next returns the TEMPORARY node with the smallest finite distance
	// (lowest index on ties), or false if no such node exists.
	next() (int, bool)
}

// newFrontier builds the frontier for strategy s over labels.
func newFrontier(s Strategy, labels []Label) (frontier, error) {
	switch s {
	case StrategyLinear:
		return &linearFrontier{labels: labels}, nil
	case StrategyHeap:
		return &heapFrontier{labels: labels, pq: make(labelPQ, 0, len(labels))}, nil
	case StrategyOrdered:
		return newOrderedFrontier(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}

// linearFrontier rescans all labels on every step. Strict "<" during the
// left-to-right scan keeps the lowest index among equal distances.
type linearFrontier struct {
	labels []Label
}

func (f *linearFrontier) update(int, int64, int64) {}

func (f *linearFrontier) next() (int, bool) {
	best := -1
	bestDist := Infinity
	for i, l := range f.labels {
		if l.Mark == Temporary && l.Distance < bestDist {
			best, bestDist = i, l.Distance
		}
	}

	return best, best >= 0
}

// heapFrontier is a binary min-heap with the lazy decrease-key strategy:
// every improvement pushes a fresh entry and stale entries are skipped on pop.
type heapFrontier struct {
	labels []Label
	pq     labelPQ
}

func (f *heapFrontier) update(index int, _, dist int64) {
	heap.Push(&f.pq, labelItem{index: index, dist: dist})
}

func (f *heapFrontier) next() (int, bool) {
	for f.pq.Len() > 0 {
		item := heap.Pop(&f.pq).(labelItem)
		l := f.labels[item.index]
		// Skip entries superseded by a later improvement or already settled.
		if l.Mark == Permanent || l.Distance != item.dist {
			continue
		}

		return item.index, true
	}

	return -1, false
}

// labelItem is one (distance, index) pair queued by heap or ordered frontiers.
type labelItem struct {
	index int
	dist  int64
}

// lessItem orders by distance, then by index.
func lessItem(a, b labelItem) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.index < b.index
}

// labelPQ implements heap.Interface over labelItem.
type labelPQ []labelItem

func (pq labelPQ) Len() int            { return len(pq) }
func (pq labelPQ) Less(i, j int) bool  { return lessItem(pq[i], pq[j]) }
func (pq labelPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *labelPQ) Push(x interface{}) { *pq = append(*pq, x.(labelItem)) }

func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
