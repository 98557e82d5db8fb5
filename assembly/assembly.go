package assembly

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvbio/dag"
)

var (
	// ErrMixedLength indicates patterns of differing lengths.
	ErrMixedLength = errors.New("assembly: patterns must share one length")

	// ErrBadK indicates k < 2 or k longer than the text.
	ErrBadK = errors.New("assembly: invalid k")
)

// OverlapGraph links pattern a to pattern b whenever the suffix of a and
// the prefix of b of length k-1 coincide. Two occurrences of the same
// pattern may link to each other; one occurrence never links to itself.
//
// Example:
//
//	OverlapGraph([]string{"ATGCG", "GCATG", "CATGC", "AGGCA", "GGCAT"})
//	// AGGCA -> GGCAT, CATGC -> ATGCG, GCATG -> CATGC, GGCAT -> GCATG
func OverlapGraph(patterns []string) (dag.Unweighted[string], error) {
	g := dag.Unweighted[string]{}
	if len(patterns) == 0 {
		return g, nil
	}

	// 1. All patterns must be k long
	k := len(patterns[0])
	for i, p := range patterns {
		if len(p) != k || k == 0 {
			return nil, fmt.Errorf("%w: pattern %d has length %d, want %d", ErrMixedLength, i, len(p), k)
		}
	}

	// 2. Index occurrences by prefix
	byPrefix := make(map[string][]int, len(patterns))
	for i, p := range patterns {
		byPrefix[p[:k-1]] = append(byPrefix[p[:k-1]], i)
	}

	// 3. Match each suffix against the index
	for i, p := range patterns {
		for _, j := range byPrefix[p[1:]] {
			if i != j {
				g.AddEdge(p, patterns[j])
			}
		}
	}
	sortSuccessors(g)

	return g, nil
}

// DeBruijn returns the de Bruijn graph of text: one node per (k-1)-mer and
// one edge prefix→suffix per k-mer occurrence.
//
// Example:
//
//	DeBruijn(4, "AAGATTCTCTAAGA")
//	// AAG -> AGA,AGA  AGA -> GAT  ...  TCT -> CTA,CTC
func DeBruijn(k int, text string) (dag.Unweighted[string], error) {
	if k < 2 || k > len(text) {
		return nil, fmt.Errorf("%w: %d for text of length %d", ErrBadK, k, len(text))
	}
	g := dag.Unweighted[string]{}
	for i := 0; i+k <= len(text); i++ {
		kmer := text[i : i+k]
		g.AddEdge(kmer[:k-1], kmer[1:])
	}
	sortSuccessors(g)

	return g, nil
}

// DeBruijnFromKmers builds the de Bruijn graph of a k-mer collection, one
// edge per element, without a backing text.
func DeBruijnFromKmers(kmers []string) (dag.Unweighted[string], error) {
	g := dag.Unweighted[string]{}
	for i, kmer := range kmers {
		if len(kmer) < 2 || len(kmer) != len(kmers[0]) {
			return nil, fmt.Errorf("%w: k-mer %d has length %d", ErrMixedLength, i, len(kmer))
		}
		g.AddEdge(kmer[:len(kmer)-1], kmer[1:])
	}
	sortSuccessors(g)

	return g, nil
}

func sortSuccessors(g dag.Unweighted[string]) {
	for _, succ := range g {
		sort.Strings(succ)
	}
}
