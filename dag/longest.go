package dag

import "fmt"

// LongestPath returns the maximum-weight path from source to sink in g.
//
// Only the part of g lying on some source→sink route is examined, so
// cycles elsewhere in the graph are not an error. When several paths share
// the best score any one of them may be returned; the score is always the
// same. source == sink yields score 0 and the one-node path.
//
// Errors: ErrUnreachableSink (wrapped with both endpoints), a *CycleError
// matching ErrNotADag, or ctx.Err() when WithCancelContext was given.
func LongestPath[N comparable](g Graph[N], source, sink N, opts ...Option[N]) (Path[N], error) {
	// 1. Apply options
	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Forward reachability from source
	forward := func(n N, visit func(N)) {
		for _, e := range g[n] {
			visit(e.To)
		}
	}
	fromSource := reach(source, forward)
	if !fromSource.has(sink) {
		return Path[N]{}, fmt.Errorf("%w: %v -> %v", ErrUnreachableSink, source, sink)
	}

	// 3. Backward reachability from sink over a reverse adjacency
	rev := make(Unweighted[N], len(fromSource))
	for n := range fromSource {
		for _, e := range g[n] {
			rev[e.To] = append(rev[e.To], n)
		}
	}
	toSink := reach(sink, func(n N, visit func(N)) {
		for _, from := range rev[n] {
			visit(from)
		}
	})

	// 4. Scope is the intersection
	scope := make(set[N], len(toSink))
	for n := range toSink {
		if fromSource.has(n) {
			scope[n] = struct{}{}
		}
	}

	// 5. Order the scope; a cycle inside it is fatal
	order, err := kahn(o.ctx, scope, forward)
	if err != nil {
		return Path[N]{}, err
	}

	// 6. Relax in order. Every in-scope node besides source has an in-scope
	// predecessor ahead of it, so its distance is set before it is read.
	dist := make(map[N]int64, len(scope))
	pred := make(map[N]N, len(scope))
	dist[source] = 0
	for _, u := range order {
		du, ok := dist[u]
		if !ok {
			continue
		}
		for _, e := range g[u] {
			if !scope.has(e.To) {
				continue
			}
			cand := du + e.Weight
			if cur, seen := dist[e.To]; seen && cand <= cur {
				continue
			}
			dist[e.To] = cand
			pred[e.To] = u
			if o.onRelax != nil {
				o.onRelax(u, e.To, cand)
			}
		}
	}

	// 7. Rebuild the path back from sink
	nodes := []N{sink}
	for n := sink; n != source; {
		n = pred[n]
		nodes = append(nodes, n)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return Path[N]{Score: dist[sink], Nodes: nodes}, nil
}

// reach returns start plus every node reachable from it through next.
func reach[N comparable](start N, next successors[N]) set[N] {
	seen := set[N]{start: {}}
	stack := []N{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		next(n, func(to N) {
			if !seen.has(to) {
				seen[to] = struct{}{}
				stack = append(stack, to)
			}
		})
	}

	return seen
}
