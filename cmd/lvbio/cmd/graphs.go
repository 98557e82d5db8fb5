package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbio/assembly"
	"github.com/katalvlaran/lvbio/dag"
	"github.com/katalvlaran/lvbio/textio"
)

var longestPathCmd = &cobra.Command{
	Use:   "longest-path [flags] [input.txt]",
	Short: "longest path between two nodes of a weighted DAG",
	Long: `longest path between two nodes of a weighted DAG

Input:
  line 1     source node
  line 2     sink node
  following  one edge per line, "from->to:weight"

Output:
  1. path score
  2. path, "a->b->c"

Cycles outside the routes from source to sink are ignored.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		file := inputFile(args)

		checkError(withInput(file, func(r io.Reader) error {
			return withOutput(opt.OutFile, func(w io.Writer) error {
				return runLongestPath(r, w)
			})
		}))
	},
}

func runLongestPath(r io.Reader, w io.Writer) error {
	source, sink, g, err := textio.ParseLongestPathProblem(r)
	if err != nil {
		return err
	}
	p, err := dag.LongestPath(g, source, sink)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d\n%s\n", p.Score, p)
	return err
}

var toposortCmd = &cobra.Command{
	Use:   "toposort [input.txt]",
	Short: "topological order of a directed graph",
	Long: `topological order of a directed graph

Input is an adjacency list, one "from -> to1,to2" line per node. When
several orders are valid any one of them is printed. A cycle is reported
with the nodes on it.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		file := inputFile(args)

		checkError(withInput(file, func(r io.Reader) error {
			return withOutput(opt.OutFile, func(w io.Writer) error {
				return runToposort(r, w)
			})
		}))
	},
}

func runToposort(r io.Reader, w io.Writer) error {
	g, err := textio.ParseAdjacency(r)
	if err != nil {
		return err
	}
	order, err := dag.TopologicalSort(g)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(order, ", "))
	return err
}

var overlapGraphCmd = &cobra.Command{
	Use:   "overlap-graph [input.txt]",
	Short: "overlap graph of equal-length reads",
	Long: `overlap graph of equal-length reads

Input is whitespace-separated reads. Read a links to read b when the last
k-1 symbols of a equal the first k-1 of b.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		file := inputFile(args)

		checkError(withInput(file, func(r io.Reader) error {
			return withOutput(opt.OutFile, func(w io.Writer) error {
				return runOverlapGraph(r, w)
			})
		}))
	},
}

func runOverlapGraph(r io.Reader, w io.Writer) error {
	reads, err := readWords(r)
	if err != nil {
		return err
	}
	g, err := assembly.OverlapGraph(reads)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, textio.FormatAdjacency(g))
	return err
}

var deBruijnCmd = &cobra.Command{
	Use:   "debruijn [flags] [input.txt]",
	Short: "de Bruijn graph of a text or of a k-mer collection",
	Long: `de Bruijn graph of a text or of a k-mer collection

By default the input is a text and -k/--kmer-len is required. With
--kmers the input is whitespace-separated k-mers instead.

`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)
		file := inputFile(args)
		k := getFlagNonNegativeInt(cmd, "kmer-len")
		fromKmers := getFlagBool(cmd, "kmers")

		checkError(withInput(file, func(r io.Reader) error {
			return withOutput(opt.OutFile, func(w io.Writer) error {
				return runDeBruijn(r, w, k, fromKmers)
			})
		}))
	},
}

func runDeBruijn(r io.Reader, w io.Writer, k int, fromKmers bool) error {
	words, err := readWords(r)
	if err != nil {
		return err
	}

	var g dag.Unweighted[string]
	if fromKmers {
		g, err = assembly.DeBruijnFromKmers(words)
	} else {
		g, err = assembly.DeBruijn(k, strings.Join(words, ""))
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, textio.FormatAdjacency(g))
	return err
}

func init() {
	RootCmd.AddCommand(longestPathCmd)
	RootCmd.AddCommand(toposortCmd)
	RootCmd.AddCommand(overlapGraphCmd)
	RootCmd.AddCommand(deBruijnCmd)

	deBruijnCmd.Flags().IntP("kmer-len", "k", 0,
		formatFlagUsage("K-mer length, at least 2."))
	deBruijnCmd.Flags().BoolP("kmers", "", false,
		formatFlagUsage("Input is a k-mer collection rather than a text."))
}
