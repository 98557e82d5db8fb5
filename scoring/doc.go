// Package scoring supplies substitution scores and gap costs for the
// alignment engine in package align.
//
// What:
//
//   - Scorer: anything that scores a pair of symbols, failing with
//     ErrUnknownSymbol when a symbol is outside its alphabet.
//   - Constant: a total match/mismatch scorer (any byte pair is defined).
//   - Matrix: a dense substitution table over a finite alphabet.
//     BLOSUM62 and PAM250 are built once per process and never mutated.
//   - Gap: an affine gap cost, Cost(L) = Open + (L-1)*Extend.
//
// Why:
//
//   - Alignment modes differ only in boundary handling; the scoring model
//     is the other axis of configuration and is kept independent of it.
//   - Shared tables are read-only, so one *Matrix can serve many
//     concurrent alignments without locking.
//
// Errors:
//
//   - ErrUnknownSymbol  a symbol pair cannot be scored by a Matrix.
//   - ErrBadMatrix      a custom matrix is malformed.
//   - ErrUnknownMatrix  ByName got a name it does not know.
//   - ErrNegativeGap    a Gap has a negative component.
//
// Example:
//
//	sc := scoring.BLOSUM62()
//	s, err := sc.Score('W', 'W') // 11
//	gap := scoring.Gap{Open: 11, Extend: 1}
//	fmt.Println(gap.Cost(3)) // 13
package scoring
