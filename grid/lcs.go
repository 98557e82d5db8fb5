package grid

// Direction is one LCS backtrack pointer.
type Direction uint8

const (
	// None marks row 0 and column 0, where the walk ends.
	None Direction = iota
	// Down skips V[i-1].
	Down
	// Right skips W[j-1].
	Right
	// Diagonal keeps V[i-1] == W[j-1].
	Diagonal
)

// String returns an arrow glyph, or a space for None.
func (d Direction) String() string {
	switch d {
	case Down:
		return "↓"
	case Right:
		return "→"
	case Diagonal:
		return "↘"
	}

	return " "
}

// LCSBacktrack fills the LCS table of v and w and returns its pointers:
// len(v)+1 rows of len(w)+1 directions.
func LCSBacktrack(v, w string) [][]Direction {
	n, m := len(v), len(w)
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	back := make([][]Direction, n+1)
	back[0] = make([]Direction, m+1)

	for i := 1; i <= n; i++ {
		back[i] = make([]Direction, m+1)
		for j := 1; j <= m; j++ {
			switch {
			case v[i-1] == w[j-1]:
				cur[j], back[i][j] = prev[j-1]+1, Diagonal
			case prev[j] >= cur[j-1]:
				cur[j], back[i][j] = prev[j], Down
			default:
				cur[j], back[i][j] = cur[j-1], Right
			}
		}
		prev, cur = cur, prev
	}

	return back
}

// LCS returns a longest common subsequence of v and w.
//
// Example:
//
//	LCS("AACCTTGG", "ACACTGTGA") // "AACTTG"
func LCS(v, w string) string {
	back := LCSBacktrack(v, w)

	// walk from the far corner, collecting matched symbols backwards
	out := make([]byte, 0, min(len(v), len(w)))
	for i, j := len(v), len(w); i > 0 && j > 0; {
		switch back[i][j] {
		case Diagonal:
			out = append(out, v[i-1])
			i, j = i-1, j-1
		case Down:
			i--
		default:
			j--
		}
	}
	for a, b := 0, len(out)-1; a < b; a, b = a+1, b-1 {
		out[a], out[b] = out[b], out[a]
	}

	return string(out)
}
