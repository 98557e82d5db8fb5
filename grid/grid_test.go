package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbio/grid"
)

// classic is the 4×4 tourist grid whose best path weighs 34.
func classic() (down, right [][]int) {
	down = [][]int{
		{1, 0, 2, 4, 3},
		{4, 6, 5, 2, 1},
		{4, 4, 5, 2, 1},
		{5, 6, 8, 5, 3},
	}
	right = [][]int{
		{3, 2, 4, 0},
		{3, 2, 4, 2},
		{0, 7, 3, 3},
		{3, 3, 0, 2},
		{1, 3, 2, 2},
	}

	return down, right
}

// TestManhattanTourist_Classic checks the reference grid.
func TestManhattanTourist_Classic(t *testing.T) {
	down, right := classic()
	got, err := grid.ManhattanTourist(down, right)
	require.NoError(t, err)
	assert.Equal(t, 34, got)
}

// TestManhattanTourist_SingleBlock picks the heavier of the two routes
// around one block.
func TestManhattanTourist_SingleBlock(t *testing.T) {
	got, err := grid.ManhattanTourist([][]int{{5, 1}}, [][]int{{2}, {9}})
	require.NoError(t, err)
	assert.Equal(t, 14, got) // down 5 then right 9
}

// TestManhattanTourist_Errors covers empty and ragged inputs.
func TestManhattanTourist_Errors(t *testing.T) {
	_, err := grid.ManhattanTourist(nil, nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.ManhattanTourist([][]int{{1, 2}}, [][]int{{1}})
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)

	_, err = grid.ManhattanTourist([][]int{{1}}, [][]int{{1}, {2}})
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)

	down, right := classic()
	right[3] = right[3][:2]
	_, err = grid.ManhattanTourist(down, right)
	assert.ErrorIs(t, err, grid.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "right row 3")
}

// TestLCS_Vectors covers the reference pair and edge cases.
func TestLCS_Vectors(t *testing.T) {
	cases := []struct{ v, w, want string }{
		{"AACCTTGG", "ACACTGTGA", "AACTTG"},
		{"GACT", "ATG", "AT"},
		{"ABC", "XYZ", ""},
		{"", "ABC", ""},
		{"SAME", "SAME", "SAME"},
		{"AC", "CA", "A"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, grid.LCS(c.v, c.w), "%s / %s", c.v, c.w)
	}
}

// TestLCSBacktrack_Pointers checks the table shape and tie-breaks.
func TestLCSBacktrack_Pointers(t *testing.T) {
	back := grid.LCSBacktrack("AC", "CA")
	require.Len(t, back, 3)
	for _, row := range back {
		require.Len(t, row, 3)
	}
	assert.Equal(t, grid.None, back[0][1])
	assert.Equal(t, grid.Down, back[1][1])     // tie between up and left
	assert.Equal(t, grid.Diagonal, back[1][2]) // A == A
	assert.Equal(t, grid.Diagonal, back[2][1]) // C == C
	assert.Equal(t, grid.Down, back[2][2])

	assert.Equal(t, "↘", grid.Diagonal.String())
	assert.Equal(t, "↓", grid.Down.String())
	assert.Equal(t, "→", grid.Right.String())
	assert.Equal(t, " ", grid.None.String())
}
