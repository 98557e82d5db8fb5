package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvbio/dag"
)

// ErrSyntax indicates malformed input.
var ErrSyntax = errors.New("textio: syntax error")

// lines calls fn for every non-blank, trimmed line of r with its number.
func lines(r io.Reader, fn func(no int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 16<<20)
	no := 0
	for sc.Scan() {
		no++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(no, line); err != nil {
			return err
		}
	}

	return sc.Err()
}

func syntaxf(no int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, no, fmt.Sprintf(format, args...))
}

// ParseWeightedGraph reads one "from->to:weight" edge per line.
// Spaces around the arrow are allowed.
func ParseWeightedGraph(r io.Reader) (dag.Graph[string], error) {
	g := dag.Graph[string]{}
	err := lines(r, func(no int, line string) error {
		from, to, w, err := parseWeightedEdge(line)
		if err != nil {
			return syntaxf(no, "%v", err)
		}
		g.AddEdge(from, to, w)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

func parseWeightedEdge(line string) (from, to string, w int64, err error) {
	from, rest, ok := strings.Cut(line, "->")
	if !ok {
		return "", "", 0, fmt.Errorf("missing \"->\" in %q", line)
	}
	to, weight, ok := strings.Cut(rest, ":")
	if !ok {
		return "", "", 0, fmt.Errorf("missing \":weight\" in %q", line)
	}
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" || to == "" {
		return "", "", 0, fmt.Errorf("empty node in %q", line)
	}
	w, err = strconv.ParseInt(strings.TrimSpace(weight), 10, 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("bad weight in %q", line)
	}

	return from, to, w, nil
}

// ParseLongestPathProblem reads a source line, a sink line, then weighted
// edges as in ParseWeightedGraph.
func ParseLongestPathProblem(r io.Reader) (source, sink string, g dag.Graph[string], err error) {
	g = dag.Graph[string]{}
	seen := 0
	err = lines(r, func(no int, line string) error {
		switch seen {
		case 0:
			source = line
		case 1:
			sink = line
		default:
			from, to, w, err := parseWeightedEdge(line)
			if err != nil {
				return syntaxf(no, "%v", err)
			}
			g.AddEdge(from, to, w)
		}
		seen++

		return nil
	})
	if err != nil {
		return "", "", nil, err
	}
	if seen < 2 {
		return "", "", nil, fmt.Errorf("%w: missing source or sink line", ErrSyntax)
	}

	return source, sink, g, nil
}

// ParseAdjacency reads "from -> to1,to2,..." lines. A node may appear on
// several lines; its successors accumulate.
func ParseAdjacency(r io.Reader) (dag.Unweighted[string], error) {
	g := dag.Unweighted[string]{}
	err := lines(r, func(no int, line string) error {
		from, rest, ok := strings.Cut(line, "->")
		if !ok {
			return syntaxf(no, "missing \"->\" in %q", line)
		}
		from = strings.TrimSpace(from)
		if from == "" {
			return syntaxf(no, "empty node in %q", line)
		}
		for _, to := range strings.Split(rest, ",") {
			to = strings.TrimSpace(to)
			if to == "" {
				return syntaxf(no, "empty successor in %q", line)
			}
			g.AddEdge(from, to)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// FormatAdjacency writes g as "from -> to1,to2" lines sorted by node;
// successors keep their stored order. Nodes without successors are
// omitted.
func FormatAdjacency(g dag.Unweighted[string]) string {
	keys := make([]string, 0, len(g))
	for k, succ := range g {
		if len(succ) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteString(" -> ")
		sb.WriteString(strings.Join(g[k], ","))
		sb.WriteByte('\n')
	}

	return sb.String()
}
