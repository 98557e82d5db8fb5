package scoring

import (
	"fmt"
	"strings"
)

// Constant scores identical symbols with Match and any other pair with
// Mismatch. It is defined for every byte pair and never fails.
type Constant struct {
	Match    int
	Mismatch int
}

// Score implements Scorer.
func (c Constant) Score(a, b byte) (int, error) {
	if a == b {
		return c.Match, nil
	}

	return c.Mismatch, nil
}

// Unit returns the scorer behind edit distance: 0 for a match, -1 otherwise.
func Unit() Constant {
	return Constant{Match: 0, Mismatch: -1}
}

// LinearGap returns a Gap where every position costs p.
func LinearGap(p int) Gap {
	return Gap{Open: p, Extend: p}
}

// GapFromPenalties converts the "u + o*L" form (u paid once per gap,
// o paid per position) into Open/Extend.
func GapFromPenalties(u, o int) Gap {
	return Gap{Open: u + o, Extend: o}
}

// Cost returns the total penalty of a gap of the given length.
// Lengths below one cost nothing.
func (g Gap) Cost(length int) int {
	if length <= 0 {
		return 0
	}

	return g.Open + (length-1)*g.Extend
}

// Validate reports ErrNegativeGap when either component is negative.
func (g Gap) Validate() error {
	if g.Open < 0 || g.Extend < 0 {
		return fmt.Errorf("%w: open=%d extend=%d", ErrNegativeGap, g.Open, g.Extend)
	}

	return nil
}

// ByName resolves the scorer names accepted on the command line and in
// configuration files: "blosum62", "pam250" and "unit" (case-insensitive).
func ByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blosum62":
		return BLOSUM62(), nil
	case "pam250":
		return PAM250(), nil
	case "unit", "levenshtein":
		return Unit(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMatrix, name)
}
