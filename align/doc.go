// Package align computes optimal pairwise alignments of two strings under an
// affine gap penalty, in one of four boundary modes.
//
// 🚀 What is it?
//
//	A three-layer (Gotoh) dynamic program over an (|V|+1)x(|W|+1) grid:
//	  • M: best score ending with V[i-1] paired to W[j-1]
//	  • Ix: best score ending with V[i-1] paired to a gap
//	  • Iy: best score ending with a gap paired to W[j-1]
//
//	The recurrence is the same in every mode; only the free-start cells and
//	the end cells change:
//
//	  Global   start (0,0)            end (|V|,|W|)
//	  Local    start anywhere         end at the grid maximum
//	  Fitting  start in column 0      end in column |W|   (all of W inside V)
//	  Overlap  start in column 0      end in row |V|      (suffix of V, prefix of W)
//
// ✨ Key features:
//   - any scoring.Scorer: Constant, BLOSUM62, PAM250 or a custom Matrix
//   - deterministic traceback (see Tie-break below)
//   - score-only entry point (Score) that keeps two rows in memory
//   - Levenshtein as the unit-cost specialization of Score
//   - Batch for many independent pairs over a bounded worker pool
//
// Tie-break:
//
//	At the end cell the layers are preferred M, Ix, Iy and the earliest cell
//	in row-major order wins. Walking back through the match layer the
//	predecessor layers are tried Ix, M, Iy; a gap layer prefers opening from
//	M over extending itself.
//
// ⚙️ Usage:
//
//	res, err := align.Align(align.Global, "PLEASANTLY", "MEANLY",
//		scoring.BLOSUM62(), 5, 5)
//	// res.Score == 8, res.AlignedV == "PLEASANTLY", res.AlignedW == "-MEA--N-LY"
//
// Performance:
//
//   - Time:   O(|V|·|W|)
//   - Memory: O(|V|·|W|) for Align, O(|W|) for Score and Levenshtein
//
// Errors:
//   - ErrEmptySequence: either input is empty.
//   - ErrUnknownSymbol: the scorer cannot score an input pair.
//   - ErrUnknownMode: mode outside Global..Overlap.
//   - ErrNilScorer: no scorer supplied.
package align
