package textio

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseTourist reads a Manhattan tourist grid: a "n m" line, n rows of
// m+1 down weights, a "-" line, then n+1 rows of m right weights. Row
// lengths are checked here; grid.ManhattanTourist checks them again.
func ParseTourist(r io.Reader) (down, right [][]int, err error) {
	var (
		n, m   = -1, -1
		inDown = true
		sawSep bool
	)
	err = lines(r, func(no int, line string) error {
		// 1. Header
		if n < 0 {
			f := strings.Fields(line)
			if len(f) != 2 {
				return syntaxf(no, "want \"n m\", got %q", line)
			}
			var e1, e2 error
			n, e1 = strconv.Atoi(f[0])
			m, e2 = strconv.Atoi(f[1])
			if e1 != nil || e2 != nil || n < 1 || m < 1 {
				return syntaxf(no, "bad grid size %q", line)
			}

			return nil
		}
		// 2. Separator
		if line == "-" {
			if sawSep {
				return syntaxf(no, "second separator")
			}
			sawSep, inDown = true, false

			return nil
		}
		// 3. Weight row
		row, err := ints(line)
		if err != nil {
			return syntaxf(no, "%v", err)
		}
		if inDown {
			if len(row) != m+1 {
				return syntaxf(no, "down row has %d weights, want %d", len(row), m+1)
			}
			down = append(down, row)
		} else {
			if len(row) != m {
				return syntaxf(no, "right row has %d weights, want %d", len(row), m)
			}
			right = append(right, row)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if n < 0 || !sawSep || len(down) != n || len(right) != n+1 {
		return nil, nil, fmt.Errorf("%w: want %d down and %d right rows, got %d and %d", ErrSyntax, n, n+1, len(down), len(right))
	}

	return down, right, nil
}

func ints(line string) ([]int, error) {
	f := strings.Fields(line)
	out := make([]int, len(f))
	for i, s := range f {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
