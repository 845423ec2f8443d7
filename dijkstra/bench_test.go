package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvroute/dijkstra"
)

func benchmarkStrategy(b *testing.B, strategy dijkstra.Strategy) {
	snap := randomStore(b, rand.New(rand.NewSource(7))).Snapshot()
	start, _ := snap.NodeByIndex(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Labels(snap, start.ID, dijkstra.WithStrategy(strategy))
	}
}

func BenchmarkLabels_Linear(b *testing.B)  { benchmarkStrategy(b, dijkstra.StrategyLinear) }
func BenchmarkLabels_Heap(b *testing.B)    { benchmarkStrategy(b, dijkstra.StrategyHeap) }
func BenchmarkLabels_Ordered(b *testing.B) { benchmarkStrategy(b, dijkstra.StrategyOrdered) }

// BenchmarkShortestDistance_Canaries measures one query on the reference network.
func BenchmarkShortestDistance_Canaries(b *testing.B) {
	s := canaries(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestDistance(s, "VLV", "ACE")
	}
}
