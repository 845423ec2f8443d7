package store_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/store"
)

// ExampleStore_SetEdge shows that a connection is stored as two half-links
// with equal weights, and that a second SetEdge updates both of them.
func ExampleStore_SetEdge() {
	s := store.MustNew()
	_, _ = s.InsertNode("LPA")
	_, _ = s.InsertNode("FUE")

	_ = s.SetEdge("LPA", "FUE", 155)
	_ = s.SetEdge("FUE", "LPA", 160)

	ab, _ := s.Weight("LPA", "FUE")
	ba, _ := s.Weight("FUE", "LPA")
	fmt.Println(ab, ba, s.HalfLinks())
	// Output: 160 160 2
}

// ExampleStore_InsertNode shows how callers tell rejection reasons apart.
func ExampleStore_InsertNode() {
	s := store.MustNew(store.WithMaxNodes(1))

	for _, id := range []string{"ACE", "ACE", "GOMERA"} {
		_, err := s.InsertNode(id)
		switch {
		case err == nil:
			fmt.Println(id, "inserted")
		case errors.Is(err, store.ErrDuplicateIdentifier):
			fmt.Println(id, "duplicate")
		case errors.Is(err, store.ErrNodeCapacity):
			fmt.Println(id, "store full")
		}
	}
	// Output:
	// ACE inserted
	// ACE store full
	// GOMERA store full
}
