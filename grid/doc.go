// Package grid holds the two-move grid DPs that underlie sequence
// alignment: the Manhattan tourist problem and the longest common
// subsequence.
//
// What:
//
//   - ManhattanTourist: heaviest path from the north-west to the south-east
//     corner of an n×m street grid moving only down or right.
//   - LCS / LCSBacktrack: longest common subsequence of two strings and the
//     pointer table it is read from.
//
// Shapes (ManhattanTourist):
//
//   - down is n rows of m+1 weights; down[i][j] is the street from (i,j)
//     to (i+1,j).
//   - right is n+1 rows of m weights; right[i][j] is the street from (i,j)
//     to (i,j+1).
//
// Tie-break (LCS): a matching diagonal always wins; otherwise Down is
// preferred over Right.
//
// Complexity:
//
//   - Time:   O(n·m) for both.
//   - Memory: O(m) for ManhattanTourist, O(n·m) for LCS (pointer table).
//
// Errors:
//
//   - ErrEmptyGrid: ManhattanTourist got no down rows or no right columns.
//   - ErrShapeMismatch: a row of down or right has the wrong length.
package grid
