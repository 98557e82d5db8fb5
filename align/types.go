package align

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvbio/scoring"
)

var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")

	// ErrUnknownSymbol is scoring.ErrUnknownSymbol, re-exported so callers
	// of this package need not import scoring to test for it.
	ErrUnknownSymbol = scoring.ErrUnknownSymbol

	// ErrUnknownMode indicates a Mode value outside the declared set.
	ErrUnknownMode = errors.New("align: unknown alignment mode")

	// ErrNilScorer indicates that no substitution scorer was supplied.
	ErrNilScorer = errors.New("align: scorer is nil")
)

// GapChar is the glyph emitted opposite a consumed symbol.
const GapChar = '-'

// Mode selects the boundary conditions of the alignment.
type Mode int

const (
	// Global aligns both sequences end to end.
	Global Mode = iota

	// Local aligns the best-scoring substring of V against a substring of W.
	Local

	// Fitting aligns the whole of W against a substring of V.
	Fitting

	// Overlap aligns a suffix of V against a prefix of W.
	Overlap
)

var modeNames = [...]string{"global", "local", "fitting", "overlap"}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < Global || m > Overlap {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps a mode name (case-insensitive) to its Mode.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Move is one traceback step. The three layers map one-to-one onto the
// step they emit: M → Diagonal, Ix → Up, Iy → Left.
type Move uint8

const (
	// Stop marks a cell where the alignment starts; nothing is emitted.
	Stop Move = iota
	// Diagonal pairs V[i-1] with W[j-1].
	Diagonal
	// Up pairs V[i-1] with a gap.
	Up
	// Left pairs a gap with W[j-1].
	Left
)

// String returns an arrow glyph for the move.
func (mv Move) String() string {
	switch mv {
	case Diagonal:
		return "↘"
	case Up:
		return "↓"
	case Left:
		return "→"
	case Stop:
		return "×"
	}

	return "?"
}

// Result is an optimal alignment.
//
// StartV/EndV and StartW/EndW are the half-open, 0-based ranges of V and W
// consumed by the alignment; for Global they are always the full strings.
type Result struct {
	Mode     Mode
	Score    int
	AlignedV string
	AlignedW string

	StartV, EndV int
	StartW, EndW int
}

// String renders the result as three lines: score, aligned V, aligned W.
func (r Result) String() string {
	return fmt.Sprintf("%d\n%s\n%s", r.Score, r.AlignedV, r.AlignedW)
}

// Len returns the number of alignment columns.
func (r Result) Len() int {
	return len(r.AlignedV)
}

// Identity returns the fraction of columns holding identical symbols,
// or 0 for an empty alignment.
func (r Result) Identity() float64 {
	if len(r.AlignedV) == 0 {
		return 0
	}
	same := 0
	for i := 0; i < len(r.AlignedV); i++ {
		if r.AlignedV[i] == r.AlignedW[i] && r.AlignedV[i] != GapChar {
			same++
		}
	}

	return float64(same) / float64(len(r.AlignedV))
}

// Config bundles the alignment parameters that are usually fixed across
// many calls.
type Config struct {
	Mode   Mode
	Scorer scoring.Scorer
	Gap    scoring.Gap
}

// DefaultConfig returns global alignment with BLOSUM62 and a linear gap
// cost of 5 per position.
func DefaultConfig() Config {
	return Config{
		Mode:   Global,
		Scorer: scoring.BLOSUM62(),
		Gap:    scoring.LinearGap(5),
	}
}

// Align runs Align with the receiver's parameters.
func (c Config) Align(v, w string) (Result, error) {
	return Align(c.Mode, v, w, c.Scorer, c.Gap.Open, c.Gap.Extend)
}

// Score runs Score with the receiver's parameters.
func (c Config) Score(v, w string) (int, error) {
	return Score(c.Mode, v, w, c.Scorer, c.Gap.Open, c.Gap.Extend)
}
