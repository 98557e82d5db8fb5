package dag_test

import (
	"testing"

	"github.com/katalvlaran/lvbio/dag"
)

// layered builds `layers` layers of `width` nodes, each node linked to
// every node of the next layer.
func layered(layers, width int) dag.Graph[int] {
	g := dag.Graph[int]{}
	for l := 0; l+1 < layers; l++ {
		for a := 0; a < width; a++ {
			for b := 0; b < width; b++ {
				g.AddEdge(l*width+a, (l+1)*width+b, int64((a*7+b*3)%11))
			}
		}
	}
	// one source feeding layer 0, one sink fed by the last layer
	src, sink := -1, layers*width
	for a := 0; a < width; a++ {
		g.AddEdge(src, a, 0)
		g.AddEdge((layers-1)*width+a, sink, 0)
	}

	return g
}

// BenchmarkLongestPath_Layered measures 100 layers of 20 fully linked nodes.
func BenchmarkLongestPath_Layered(b *testing.B) {
	g := layered(100, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dag.LongestPath(g, -1, 100*20); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTopologicalSort_Chain measures a 10,000 node chain.
func BenchmarkTopologicalSort_Chain(b *testing.B) {
	g := dag.Unweighted[int]{}
	for i := 0; i < 10000; i++ {
		g.AddEdge(i, i+1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dag.TopologicalSort(g); err != nil {
			b.Fatal(err)
		}
	}
}
