package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrShapeMismatch indicates down and right disagree with each other or
	// with the grid size.
	ErrShapeMismatch = errors.New("grid: down and right weights do not describe one grid")
)
