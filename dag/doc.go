// Package dag finds longest paths and topological orders in directed
// acyclic graphs whose nodes are any comparable type.
//
// What:
//
//   - LongestPath returns the maximum-weight path from a source to a sink
//     together with its score.
//   - TopologicalSort orders every node of an unweighted graph so that each
//     edge u→v has u before v.
//
// How (LongestPath):
//
//  1. Restrict the graph to its scope: nodes reachable from the source that
//     can also reach the sink. Anything outside the scope, including cycles
//     elsewhere in the graph, is ignored.
//  2. Order the scope with Kahn's algorithm over a private in-degree table.
//     The order in which ready nodes are picked is unspecified (map order);
//     the resulting score is not.
//  3. Relax the out-edges of each node in that order, keeping the best
//     predecessor of every node.
//  4. Walk the predecessors back from the sink.
//
// Parallel edges are allowed; the heavier one wins. Weights may be negative.
//
// Errors:
//
//   - ErrUnreachableSink if the sink cannot be reached from the source.
//   - ErrNotADag if the scope contains a cycle. The error is a *CycleError
//     whose Cycle field holds one concrete cycle as evidence.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (reverse adjacency, scope sets, distance table)
//
// Example:
//
//	g := dag.Graph[int]{}
//	g.AddEdge(0, 1, 7)
//	g.AddEdge(0, 2, 4)
//	g.AddEdge(2, 3, 2)
//	g.AddEdge(1, 4, 1)
//	g.AddEdge(3, 4, 3)
//	p, _ := dag.LongestPath(g, 0, 4)
//	fmt.Println(p.Score, p) // 9 0->2->3->4
package dag
