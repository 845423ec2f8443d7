package dijkstra

import "github.com/tidwall/btree"

// orderedFrontier keeps exactly one (distance, index) entry per reached
// TEMPORARY node in a B-tree, so decrease-key is a delete plus a set and
// PopMin always yields a live entry.
type orderedFrontier struct {
	tree *btree.BTreeG[labelItem]
}

func newOrderedFrontier() *orderedFrontier {
	return &orderedFrontier{
		tree: btree.NewBTreeGOptions(lessItem, btree.Options{NoLocks: true, Degree: 8}),
	}
}

func (f *orderedFrontier) update(index int, old, dist int64) {
	if old != Infinity {
		f.tree.Delete(labelItem{index: index, dist: old})
	}
	f.tree.Set(labelItem{index: index, dist: dist})
}

func (f *orderedFrontier) next() (int, bool) {
	item, ok := f.tree.PopMin()
	if !ok {
		return -1, false
	}

	return item.index, true
}
