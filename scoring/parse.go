package scoring

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseMatrix reads a substitution matrix in the common text layout:
//
//	   A  C  D
//	A  4  0 -2
//	C  0  9 -3
//	D -2 -3  6
//
// Blank lines and lines starting with '#' are skipped. Every symbol must be a
// single byte. The header order defines the alphabet; row labels may appear in
// any order but must cover the header exactly.
func ParseMatrix(name string, r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	var (
		alphabet string
		rows     map[byte][]int
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		// 1. Header row
		if rows == nil {
			var sb strings.Builder
			for _, f := range fields {
				if len(f) != 1 {
					return nil, fmt.Errorf("%w: line %d: symbol %q is not a single byte", ErrBadMatrix, lineNo, f)
				}
				sb.WriteByte(f[0])
			}
			alphabet = sb.String()
			rows = make(map[byte][]int, len(alphabet))
			continue
		}

		// 2. Labelled score rows
		if len(fields[0]) != 1 {
			return nil, fmt.Errorf("%w: line %d: row label %q is not a single byte", ErrBadMatrix, lineNo, fields[0])
		}
		label := fields[0][0]
		if _, dup := rows[label]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate row %q", ErrBadMatrix, lineNo, label)
		}
		vals := make([]int, 0, len(fields)-1)
		for _, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadMatrix, lineNo, err)
			}
			vals = append(vals, v)
		}
		rows[label] = vals
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, fmt.Errorf("%w: no header row", ErrBadMatrix)
	}

	// 3. Reorder rows to the header order
	table := make([][]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		row, ok := rows[alphabet[i]]
		if !ok {
			return nil, fmt.Errorf("%w: missing row %q", ErrBadMatrix, alphabet[i])
		}
		table[i] = row
	}
	if len(rows) != len(alphabet) {
		return nil, fmt.Errorf("%w: %d rows for %d header symbols", ErrBadMatrix, len(rows), len(alphabet))
	}

	return NewMatrix(name, alphabet, table)
}
