package dag

import "context"

// set is a membership table over nodes.
type set[N comparable] map[N]struct{}

func (s set[N]) has(n N) bool {
	_, ok := s[n]

	return ok
}

// successors calls visit for every successor of n.
type successors[N comparable] func(n N, visit func(N))

// TopologicalSort orders all nodes of g so that every edge u→v has u
// before v. Nodes that only appear as targets are included.
//
// Ready nodes are picked in unspecified order, so different valid orders
// may be returned for the same graph. A cycle yields a *CycleError
// matching ErrNotADag.
//
// Complexity: O(V + E) time and O(V) extra memory.
func TopologicalSort[N comparable](g Unweighted[N], opts ...Option[N]) ([]N, error) {
	// 1. Apply options
	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Every node, keyed or target-only, takes part
	nodes := make(set[N], len(g))
	for _, n := range g.Nodes() {
		nodes[n] = struct{}{}
	}

	return kahn(o.ctx, nodes, func(n N, visit func(N)) {
		for _, to := range g[n] {
			visit(to)
		}
	})
}

// kahn orders nodes by repeatedly removing one with no remaining
// predecessors. Edges leaving nodes are ignored. When nodes are left over
// they all sit on or behind a cycle, one of which is returned.
func kahn[N comparable](ctx context.Context, nodes set[N], succ successors[N]) ([]N, error) {
	// 1. Count in-scope predecessors into a table owned by this call
	indeg := make(map[N]int, len(nodes))
	for n := range nodes {
		succ(n, func(to N) {
			if nodes.has(to) {
				indeg[to]++
			}
		})
	}

	// 2. Seed with every node that has none
	ready := make([]N, 0, len(nodes))
	for n := range nodes {
		if indeg[n] == 0 {
			ready = append(ready, n)
		}
	}

	// 3. Pop a ready node, release its successors
	order := make([]N, 0, len(nodes))
	for len(ready) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		order = append(order, n)
		succ(n, func(to N) {
			if !nodes.has(to) {
				return
			}
			indeg[to]--
			if indeg[to] == 0 {
				ready = append(ready, to)
			}
		})
	}

	// 4. Leftovers mean a cycle
	if len(order) < len(nodes) {
		left := make(set[N], len(nodes)-len(order))
		for n := range nodes {
			if indeg[n] > 0 {
				left[n] = struct{}{}
			}
		}

		return nil, &CycleError[N]{Cycle: findCycle(left, succ)}
	}

	return order, nil
}

// findCycle extracts one closed cycle from left, a set in which every node
// has at least one predecessor that is also in left. Walking predecessors
// from any node must therefore revisit a node.
func findCycle[N comparable](left set[N], succ successors[N]) []N {
	// 1. One in-set predecessor per node is enough
	pred := make(map[N]N, len(left))
	for n := range left {
		succ(n, func(to N) {
			if left.has(to) {
				pred[to] = n
			}
		})
	}

	// 2. Walk back until a node repeats
	var start N
	for n := range left {
		start = n

		break
	}
	at := make(map[N]int, len(left))
	walk := make([]N, 0, len(left))
	n := start
	for {
		if i, ok := at[n]; ok {
			walk = walk[i:]

			break
		}
		at[n] = len(walk)
		walk = append(walk, n)
		n = pred[n]
	}

	// 3. The walk runs against the edges; reverse it and close the loop
	cycle := make([]N, 0, len(walk)+1)
	for i := len(walk) - 1; i >= 0; i-- {
		cycle = append(cycle, walk[i])
	}

	return append(cycle, cycle[0])
}
