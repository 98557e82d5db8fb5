package grid

import "fmt"

// ManhattanTourist returns the weight of the heaviest down/right path
// through the grid described by down and right (see package doc for the
// shapes).
//
// Recurrence:
//
//	s(0,0) = 0
//	s(i,0) = s(i-1,0) + down[i-1][0]
//	s(0,j) = s(0,j-1) + right[0][j-1]
//	s(i,j) = max(s(i-1,j) + down[i-1][j], s(i,j-1) + right[i][j-1])
//
// Only one row of s is kept.
func ManhattanTourist(down, right [][]int) (int, error) {
	// 1. Validate shapes
	n, m, err := shape(down, right)
	if err != nil {
		return 0, err
	}

	// 2. Row 0 accumulates along right only
	row := make([]int, m+1)
	for j := 1; j <= m; j++ {
		row[j] = row[j-1] + right[0][j-1]
	}

	// 3. Each later row reads the previous one in place
	for i := 1; i <= n; i++ {
		row[0] += down[i-1][0]
		for j := 1; j <= m; j++ {
			row[j] = max(row[j]+down[i-1][j], row[j-1]+right[i][j-1])
		}
	}

	return row[m], nil
}

// shape derives n and m and checks every row length.
func shape(down, right [][]int) (n, m int, err error) {
	n = len(down)
	if n == 0 || len(right) == 0 || len(right[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	m = len(right[0])
	if len(right) != n+1 {
		return 0, 0, fmt.Errorf("%w: %d down rows need %d right rows, got %d", ErrShapeMismatch, n, n+1, len(right))
	}
	for i, r := range down {
		if len(r) != m+1 {
			return 0, 0, fmt.Errorf("%w: down row %d has %d weights, want %d", ErrShapeMismatch, i, len(r), m+1)
		}
	}
	for i, r := range right {
		if len(r) != m {
			return 0, 0, fmt.Errorf("%w: right row %d has %d weights, want %d", ErrShapeMismatch, i, len(r), m)
		}
	}

	return n, m, nil
}
