package dag

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotADag indicates a cycle among the nodes an operation had to order.
	ErrNotADag = errors.New("dag: graph contains a cycle")

	// ErrUnreachableSink indicates that no path leads from source to sink.
	ErrUnreachableSink = errors.New("dag: sink is not reachable from source")
)

// Edge is a weighted arc to To. The source node is the map key holding it.
type Edge[N comparable] struct {
	To     N
	Weight int64
}

// Graph is a weighted directed graph stored as successor lists.
// Nodes that only appear as edge targets need no key of their own.
type Graph[N comparable] map[N][]Edge[N]

// AddEdge appends the edge from→to. g must be non-nil.
func (g Graph[N]) AddEdge(from, to N, weight int64) {
	g[from] = append(g[from], Edge[N]{To: to, Weight: weight})
}

// Nodes returns every node that appears as a key or as an edge target,
// each once, in unspecified order.
func (g Graph[N]) Nodes() []N {
	seen := make(map[N]struct{}, len(g))
	out := make([]N, 0, len(g))
	add := func(n N) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	for from, edges := range g {
		add(from)
		for _, e := range edges {
			add(e.To)
		}
	}

	return out
}

// Weight returns the heaviest weight among the edges from→to.
// ok is false when there is no such edge.
func (g Graph[N]) Weight(from, to N) (w int64, ok bool) {
	for _, e := range g[from] {
		if e.To == to && (!ok || e.Weight > w) {
			w, ok = e.Weight, true
		}
	}

	return w, ok
}

// Unweighted drops the weights, keeping one successor entry per edge.
func (g Graph[N]) Unweighted() Unweighted[N] {
	u := make(Unweighted[N], len(g))
	for from, edges := range g {
		succ := make([]N, len(edges))
		for i, e := range edges {
			succ[i] = e.To
		}
		u[from] = succ
	}

	return u
}

// Unweighted is a directed graph stored as successor lists.
type Unweighted[N comparable] map[N][]N

// AddEdge appends the edge from→to. g must be non-nil.
func (g Unweighted[N]) AddEdge(from, to N) {
	g[from] = append(g[from], to)
}

// Nodes returns every node that appears as a key or as an edge target,
// each once, in unspecified order.
func (g Unweighted[N]) Nodes() []N {
	seen := make(map[N]struct{}, len(g))
	out := make([]N, 0, len(g))
	add := func(n N) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	for from, succ := range g {
		add(from)
		for _, to := range succ {
			add(to)
		}
	}

	return out
}

// Path is a longest path and its total weight.
type Path[N comparable] struct {
	Score int64
	Nodes []N
}

// String renders the path as "a->b->c".
func (p Path[N]) String() string {
	return joinNodes(p.Nodes)
}

// CycleError reports a cycle found while ordering nodes.
// Cycle is closed: its first and last elements are the same node.
type CycleError[N comparable] struct {
	Cycle []N
}

// Error implements error.
func (e *CycleError[N]) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotADag, joinNodes(e.Cycle))
}

// Unwrap makes errors.Is(err, ErrNotADag) hold.
func (e *CycleError[N]) Unwrap() error {
	return ErrNotADag
}

// Option configures LongestPath and TopologicalSort.
type Option[N comparable] func(*options[N])

type options[N comparable] struct {
	ctx     context.Context
	onRelax func(from, to N, value int64)
}

func defaultOptions[N comparable]() options[N] {
	return options[N]{ctx: context.Background()}
}

// WithCancelContext makes the ordering loop stop with ctx.Err() once ctx
// is done. A nil ctx has no effect.
func WithCancelContext[N comparable](ctx context.Context) Option[N] {
	return func(o *options[N]) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnRelax registers fn to be called whenever LongestPath improves the
// best known score of to, with value the new score, reached via from.
func WithOnRelax[N comparable](fn func(from, to N, value int64)) Option[N] {
	return func(o *options[N]) {
		o.onRelax = fn
	}
}

func joinNodes[N comparable](nodes []N) string {
	var sb strings.Builder
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString("->")
		}
		fmt.Fprint(&sb, n)
	}

	return sb.String()
}
