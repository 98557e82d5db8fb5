package scoring

import (
	"fmt"
	"strings"
)

// Matrix is a dense substitution table over a finite alphabet.
// It is immutable after construction and safe for concurrent reads.
type Matrix struct {
	name     string
	alphabet string
	index    [256]int16 // symbol → row/column, -1 when absent
	table    [][]int
}

// NewMatrix builds a custom substitution matrix. rows[i][j] is the score of
// aligning alphabet[i] against alphabet[j]. The rows are copied.
//
// Returns ErrBadMatrix when the alphabet is empty, repeats a symbol, or the
// table is not len(alphabet) x len(alphabet).
func NewMatrix(name, alphabet string, rows [][]int) (*Matrix, error) {
	n := len(alphabet)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty alphabet", ErrBadMatrix)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%w: %d rows for %d symbols", ErrBadMatrix, len(rows), n)
	}

	m := &Matrix{name: name, alphabet: alphabet, table: make([][]int, n)}
	for i := range m.index {
		m.index[i] = -1
	}
	for i := 0; i < n; i++ {
		c := alphabet[i]
		if m.index[c] >= 0 {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrBadMatrix, c)
		}
		m.index[c] = int16(i)

		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %q has %d columns, want %d", ErrBadMatrix, c, len(rows[i]), n)
		}
		m.table[i] = append([]int(nil), rows[i]...)
	}

	return m, nil
}

// mustMatrix is used for the built-in tables only.
func mustMatrix(name, alphabet string, rows [][]int) *Matrix {
	m, err := NewMatrix(name, alphabet, rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Score implements Scorer. Both symbols must belong to the alphabet.
func (m *Matrix) Score(a, b byte) (int, error) {
	ia, ib := m.index[a], m.index[b]
	if ia < 0 || ib < 0 {
		return 0, fmt.Errorf("%w: pair (%q, %q) not covered by %s", ErrUnknownSymbol, a, b, m.Name())
	}

	return m.table[ia][ib], nil
}

// Name returns the matrix name given at construction ("custom" if empty).
func (m *Matrix) Name() string {
	if m.name == "" {
		return "custom"
	}

	return m.name
}

// Alphabet returns the symbols in table order.
func (m *Matrix) Alphabet() string {
	return m.alphabet
}

// Covers reports whether every byte of s is in the alphabet.
func (m *Matrix) Covers(s string) bool {
	for i := 0; i < len(s); i++ {
		if m.index[s[i]] < 0 {
			return false
		}
	}

	return true
}

// Symmetric reports whether Score(a,b) == Score(b,a) for every pair.
func (m *Matrix) Symmetric() bool {
	for i := range m.table {
		for j := 0; j < i; j++ {
			if m.table[i][j] != m.table[j][i] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix in the same layout ParseMatrix reads.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < len(m.alphabet); i++ {
		fmt.Fprintf(&sb, "%4c", m.alphabet[i])
	}
	sb.WriteByte('\n')
	for i, row := range m.table {
		sb.WriteByte(m.alphabet[i])
		for _, v := range row {
			fmt.Fprintf(&sb, "%4d", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
