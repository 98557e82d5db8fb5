package textio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbio/dag"
	"github.com/katalvlaran/lvbio/grid"
	"github.com/katalvlaran/lvbio/textio"
)

// TestParseWeightedGraph reads edges with and without spaces.
func TestParseWeightedGraph(t *testing.T) {
	g, err := textio.ParseWeightedGraph(strings.NewReader(`
0->1:7
0 -> 2:4

2->3:2
`))
	require.NoError(t, err)
	assert.Equal(t, dag.Graph[string]{
		"0": {{To: "1", Weight: 7}, {To: "2", Weight: 4}},
		"2": {{To: "3", Weight: 2}},
	}, g)
}

// TestParseWeightedGraph_Errors reports the offending line.
func TestParseWeightedGraph_Errors(t *testing.T) {
	for _, in := range []string{"0-1:7", "0->1", "0->1:x", "->1:2"} {
		_, err := textio.ParseWeightedGraph(strings.NewReader("a->b:1\n" + in))
		require.ErrorIs(t, err, textio.ErrSyntax, in)
		assert.Contains(t, err.Error(), "line 2", in)
	}
}

// TestParseLongestPathProblem solves the parsed problem end to end.
func TestParseLongestPathProblem(t *testing.T) {
	src, sink, g, err := textio.ParseLongestPathProblem(strings.NewReader("0\n4\n0->1:7\n0->2:4\n2->3:2\n1->4:1\n3->4:3\n"))
	require.NoError(t, err)
	assert.Equal(t, "0", src)
	assert.Equal(t, "4", sink)

	p, err := dag.LongestPath(g, src, sink)
	require.NoError(t, err)
	assert.EqualValues(t, 9, p.Score)
	assert.Equal(t, "0->2->3->4", p.String())

	_, _, _, err = textio.ParseLongestPathProblem(strings.NewReader("0\n"))
	assert.ErrorIs(t, err, textio.ErrSyntax)
}

// TestAdjacency_RoundTrip parses and re-formats an adjacency list.
func TestAdjacency_RoundTrip(t *testing.T) {
	in := "1 -> 2\n0 -> 1,2\n2 -> 3\n"
	g, err := textio.ParseAdjacency(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, g["0"])
	assert.Equal(t, "0 -> 1,2\n1 -> 2\n2 -> 3\n", textio.FormatAdjacency(g))

	_, err = textio.ParseAdjacency(strings.NewReader("0 -> 1,,2"))
	assert.ErrorIs(t, err, textio.ErrSyntax)
	_, err = textio.ParseAdjacency(strings.NewReader("0 1"))
	assert.ErrorIs(t, err, textio.ErrSyntax)
}

// TestParseTourist feeds the classic grid to the solver.
func TestParseTourist(t *testing.T) {
	down, right, err := textio.ParseTourist(strings.NewReader(`
4 4
1 0 2 4 3
4 6 5 2 1
4 4 5 2 1
5 6 8 5 3
-
3 2 4 0
3 2 4 2
0 7 3 3
3 3 0 2
1 3 2 2
`))
	require.NoError(t, err)
	require.Len(t, down, 4)
	require.Len(t, right, 5)

	best, err := grid.ManhattanTourist(down, right)
	require.NoError(t, err)
	assert.Equal(t, 34, best)
}

// TestParseTourist_Errors covers header, row and count problems.
func TestParseTourist_Errors(t *testing.T) {
	for _, in := range []string{
		"4\n",
		"1 1\n1 2 3\n-\n1\n1\n",
		"1 1\n1 2\n-\n1\n",
		"1 1\n1 2\n-\n1\n-\n1\n",
		"1 1\n1 x\n-\n1\n1\n",
	} {
		_, _, err := textio.ParseTourist(strings.NewReader(in))
		assert.ErrorIs(t, err, textio.ErrSyntax, in)
	}
}

// TestReadSequences reads a small FASTA file.
func TestReadSequences(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pair.fasta")
	require.NoError(t, os.WriteFile(file, []byte(">v first\nPLEASANT\nLY\n>w\nMEANLY\n"), 0o644))

	recs, err := textio.ReadSequences(file)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "v", recs[0].ID)
	assert.Equal(t, "PLEASANTLY", recs[0].Seq)
	assert.Equal(t, textio.Record{ID: "w", Seq: "MEANLY"}, recs[1])

	_, err = textio.ReadSequences(filepath.Join(t.TempDir(), "missing.fa"))
	assert.Error(t, err)
}

// TestOpenText reads a plain file line by line.
func TestOpenText(t *testing.T) {
	file := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(file, []byte("a -> b\n"), 0o644))

	fh, err := textio.OpenText(file)
	require.NoError(t, err)
	defer fh.Close()

	g, err := textio.ParseAdjacency(fh)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, g["a"])
}
