package dijkstra

// Result is the final label state of one single-source query.
//
// Labels and Prev are indexed by store node index. Prev[i] is the
// predecessor of i on one shortest path, or -1 for the start node and for
// unreached nodes.
type Result struct {
	Start    int
	Strategy Strategy
	Labels   []Label
	Prev     []int

	// Settled counts nodes marked PERMANENT, including the start node.
	Settled int
	// Relaxations counts successful distance improvements.
	Relaxations int

	ids []string
}

// Len returns the number of labeled nodes.
func (r *Result) Len() int { return len(r.Labels) }

// Distance returns the shortest distance to index, or Infinity when the node
// is unreachable or the index is out of range.
func (r *Result) Distance(index int) int64 {
	if index < 0 || index >= len(r.Labels) {
		return Infinity
	}

	return r.Labels[index].Distance
}

// Reachable reports whether index was settled with a finite distance.
func (r *Result) Reachable(index int) bool {
	if index < 0 || index >= len(r.Labels) {
		return false
	}

	return r.Labels[index].Mark == Permanent && r.Labels[index].Distance != Infinity
}

// PathTo returns the node indices from Start to index, or nil if index is unreachable.
func (r *Result) PathTo(index int) []int {
	if !r.Reachable(index) {
		return nil
	}
	var rev []int
	for v := index; v != -1; v = r.Prev[v] {
		rev = append(rev, v)
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

// Route is PathTo with node identifiers.
func (r *Result) Route(index int) []string {
	path := r.PathTo(index)
	if path == nil {
		return nil
	}
	out := make([]string, len(path))
	for i, v := range path {
		out[i] = r.ids[v]
	}

	return out
}

// ID returns the identifier of index, or "" if out of range.
func (r *Result) ID(index int) string {
	if index < 0 || index >= len(r.ids) {
		return ""
	}

	return r.ids[index]
}
