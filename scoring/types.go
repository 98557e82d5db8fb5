package scoring

import (
	"errors"
)

// Sentinel errors for scoring operations.
var (
	// ErrUnknownSymbol indicates a symbol outside the scorer's alphabet.
	ErrUnknownSymbol = errors.New("scoring: unknown symbol")

	// ErrBadMatrix indicates a malformed custom substitution matrix.
	ErrBadMatrix = errors.New("scoring: malformed substitution matrix")

	// ErrUnknownMatrix indicates that ByName received an unsupported name.
	ErrUnknownMatrix = errors.New("scoring: unknown matrix name")

	// ErrNegativeGap indicates a negative gap-open or gap-extend cost.
	ErrNegativeGap = errors.New("scoring: gap costs must be non-negative")
)

// Scorer returns the substitution score of aligning symbol a against b.
//
// Implementations must be safe for concurrent use once constructed;
// all scorers in this package are immutable.
type Scorer interface {
	Score(a, b byte) (int, error)
}

// Gap describes an affine gap penalty. Both fields are costs, so they are
// subtracted from an alignment score.
//
//   - Open: cost of the first position of a gap.
//   - Extend: cost of every following position.
//
// Open == Extend is the linear model.
type Gap struct {
	Open   int
	Extend int
}
