package motif

import (
	"errors"
	"fmt"
	"math"

	"github.com/shenwei356/kmers"
)

// MaxK is the largest k MedianStrings accepts.
const MaxK = 12

var (
	// ErrLengthMismatch indicates strings that must be comparable position
	// by position are not.
	ErrLengthMismatch = errors.New("motif: length mismatch")

	// ErrBadK indicates k outside 1..MaxK or longer than one of the texts.
	ErrBadK = errors.New("motif: invalid k")

	// ErrNoText indicates an empty collection of texts.
	ErrNoText = errors.New("motif: no texts given")
)

// Hamming returns the number of positions where a and b differ.
func Hamming(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	return hamming(a, b), nil
}

func hamming(a, b string) int {
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d
}

// MinDistance returns the smallest Hamming distance between pattern and a
// len(pattern)-long window of text. Every window is tried, the last one
// included.
func MinDistance(pattern, text string) (int, error) {
	k := len(pattern)
	if k > len(text) {
		return 0, fmt.Errorf("%w: pattern of %d is longer than text of %d", ErrLengthMismatch, k, len(text))
	}
	best := math.MaxInt
	for i := 0; i+k <= len(text); i++ {
		if d := hamming(pattern, text[i:i+k]); d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}

	return best, nil
}

// TotalDistance returns the sum of MinDistance(pattern, text) over dna.
func TotalDistance(pattern string, dna []string) (int, error) {
	total := 0
	for i, text := range dna {
		d, err := MinDistance(pattern, text)
		if err != nil {
			return 0, fmt.Errorf("text %d: %w", i, err)
		}
		total += d
	}

	return total, nil
}

// MedianStrings returns, in lexicographic order, every k-mer over
// {A,C,G,T} whose TotalDistance to dna is minimal, and that distance.
//
// Example:
//
//	dna := []string{"AAATTGACGCAT", "GACGACCACGTT", "CGTCAGCGCCTG", "GCTGAGCACCGG", "AGTACGGGACAG"}
//	MedianStrings(dna, 3) // [ACG GAC], 2
func MedianStrings(dna []string, k int) ([]string, int, error) {
	// 1. Validate
	if len(dna) == 0 {
		return nil, 0, ErrNoText
	}
	if k < 1 || k > MaxK {
		return nil, 0, fmt.Errorf("%w: %d not in 1..%d", ErrBadK, k, MaxK)
	}
	for i, text := range dna {
		if len(text) < k {
			return nil, 0, fmt.Errorf("%w: %d exceeds length %d of text %d", ErrBadK, k, len(text), i)
		}
	}

	// 2. Codes 0..4^k-1 decode to k-mers in lexicographic order
	var (
		best    = math.MaxInt
		medians []string
		n       = uint64(1) << (2 * uint(k))
	)
	for code := uint64(0); code < n; code++ {
		pattern := string(kmers.MustDecode(code, k))
		d, _ := TotalDistance(pattern, dna) // lengths checked above
		switch {
		case d < best:
			best = d
			medians = append(medians[:0], pattern)
		case d == best:
			medians = append(medians, pattern)
		}
	}

	return medians, best, nil
}

// Encode returns the 2-bit code of a k-mer over {A,C,G,T}; it is the
// position of the k-mer in MedianStrings' enumeration order.
func Encode(kmer string) (uint64, error) {
	code, err := kmers.Encode([]byte(kmer))
	if err != nil {
		return 0, fmt.Errorf("motif: encode %q: %w", kmer, err)
	}

	return code, nil
}
