// Package motif implements brute-force motif finding over DNA strings.
//
// What:
//
//   - Hamming counts mismatching positions of two equal-length strings.
//   - MinDistance is the smallest Hamming distance between a pattern and any
//     window of a text.
//   - TotalDistance sums MinDistance over a collection of texts.
//   - MedianStrings returns every k-mer over {A,C,G,T} with the smallest
//     TotalDistance.
//
// MedianStrings enumerates all 4^k k-mers through their 2-bit codes, in
// lexicographic order, so k is capped at MaxK.
//
// Complexity (MedianStrings): O(4^k · t · L · k) for t texts of length L.
package motif
