package align_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lvbio/align"
	"github.com/katalvlaran/lvbio/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceCase is one published input/output vector.
type referenceCase struct {
	name     string
	mode     align.Mode
	v, w     string
	sc       scoring.Scorer
	gap      scoring.Gap
	score    int
	alignedV string
	alignedW string
}

// referenceCases use the "u + o*L" gap form of the exercise set, converted
// with GapFromPenalties.
func referenceCases() []referenceCase {
	return []referenceCase{
		{"global", align.Global, "PLEASANTLY", "MEANLY", scoring.BLOSUM62(), scoring.GapFromPenalties(0, 5), 8, "PLEASANTLY", "-MEA--N-LY"},
		{"local", align.Local, "MEANLY", "PENALTY", scoring.PAM250(), scoring.GapFromPenalties(0, 5), 15, "EANL-Y", "ENALTY"},
		{"fitting", align.Fitting, "GTAGGCTTAAGGTTA", "TAGATA", scoring.Constant{Match: 1, Mismatch: -1}, scoring.GapFromPenalties(0, 1), 2, "TAGGCTTA", "TAGA-T-A"},
		{"overlap", align.Overlap, "PAWHEAE", "HEAGAWGHEE", scoring.Constant{Match: 1, Mismatch: -2}, scoring.GapFromPenalties(0, 2), 1, "HEAE", "HEA-"},
	}
}

// TestAlign_ReferenceVectors checks score and exact traceback for each mode.
func TestAlign_ReferenceVectors(t *testing.T) {
	for _, tc := range referenceCases() {
		t.Run(tc.name, func(t *testing.T) {
			res, err := align.Align(tc.mode, tc.v, tc.w, tc.sc, tc.gap.Open, tc.gap.Extend)
			require.NoError(t, err)
			assert.Equal(t, tc.score, res.Score, "score")
			assert.Equal(t, tc.alignedV, res.AlignedV, "aligned V")
			assert.Equal(t, tc.alignedW, res.AlignedW, "aligned W")
			assert.Equal(t, tc.mode, res.Mode)

			s, err := align.Score(tc.mode, tc.v, tc.w, tc.sc, tc.gap.Open, tc.gap.Extend)
			require.NoError(t, err)
			assert.Equal(t, tc.score, s, "score-only path must agree")
		})
	}
}

// TestAlign_Coordinates verifies the consumed ranges reported for each mode.
func TestAlign_Coordinates(t *testing.T) {
	cases := referenceCases()

	g, _ := align.Align(cases[0].mode, cases[0].v, cases[0].w, cases[0].sc, 5, 5)
	assert.Equal(t, [4]int{0, 10, 0, 6}, [4]int{g.StartV, g.EndV, g.StartW, g.EndW})

	l, _ := align.Align(cases[1].mode, cases[1].v, cases[1].w, cases[1].sc, 5, 5)
	assert.Equal(t, [4]int{1, 6, 1, 7}, [4]int{l.StartV, l.EndV, l.StartW, l.EndW})

	f, _ := align.Align(cases[2].mode, cases[2].v, cases[2].w, cases[2].sc, 1, 1)
	assert.Equal(t, [4]int{1, 9, 0, 6}, [4]int{f.StartV, f.EndV, f.StartW, f.EndW})

	o, _ := align.Align(cases[3].mode, cases[3].v, cases[3].w, cases[3].sc, 2, 2)
	assert.Equal(t, [4]int{3, 7, 0, 3}, [4]int{o.StartV, o.EndV, o.StartW, o.EndW})
}

// TestAlign_MoreVectors covers affine costs and degenerate local results.
func TestAlign_MoreVectors(t *testing.T) {
	dna := scoring.Constant{Match: 1, Mismatch: -1}

	res, err := align.Align(align.Global, "GATTACA", "GCATGCT", dna, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, "G-ATTACA", res.AlignedV)
	assert.Equal(t, "GCATG-CT", res.AlignedW)

	// one gap of length 4 under open=3, extend=1: 2*2 - (3+3)
	res, err = align.Align(align.Global, "ACGTTT", "AC", scoring.Constant{Match: 2, Mismatch: -1}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, -2, res.Score)
	assert.Equal(t, "AC----", res.AlignedW)

	res, err = align.Align(align.Local, "TTTACGTAAA", "CCACGTCC", scoring.Constant{Match: 2, Mismatch: -1}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Score)
	assert.Equal(t, "ACGT", res.AlignedV)
	assert.Equal(t, [4]int{3, 7, 2, 6}, [4]int{res.StartV, res.EndV, res.StartW, res.EndW})

	// nothing positive to find: the empty local alignment scores 0
	res, err = align.Align(align.Local, "AAA", "CCC", dna, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.AlignedV)
	assert.Empty(t, res.AlignedW)
}

// TestLevenshtein checks the unit-cost specialization.
func TestLevenshtein(t *testing.T) {
	cases := []struct {
		v, w string
		want int
	}{
		{"PLEASANTLY", "MEANLY", 5},
		{"kitten", "sitting", 3},
		{"GATTACA", "GATTACA", 0},
		{"A", "TTT", 3},
	}
	for _, tc := range cases {
		d, err := align.Levenshtein(tc.v, tc.w)
		require.NoError(t, err)
		assert.Equalf(t, tc.want, d, "%s/%s", tc.v, tc.w)
	}

	_, err := align.Levenshtein("", "A")
	assert.ErrorIs(t, err, align.ErrEmptySequence)
}

// TestAlign_Errors covers every validation failure.
func TestAlign_Errors(t *testing.T) {
	b62 := scoring.BLOSUM62()

	_, err := align.Align(align.Global, "", "MEANLY", b62, 5, 5)
	assert.ErrorIs(t, err, align.ErrEmptySequence)
	_, err = align.Score(align.Local, "MEANLY", "", b62, 5, 5)
	assert.ErrorIs(t, err, align.ErrEmptySequence)

	_, err = align.Align(align.Global, "MEANLY", "PLEASANTLYB", b62, 5, 5)
	require.ErrorIs(t, err, align.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "'B'")

	_, err = align.Align(align.Mode(9), "A", "A", b62, 5, 5)
	assert.ErrorIs(t, err, align.ErrUnknownMode)

	_, err = align.Align(align.Global, "A", "A", nil, 5, 5)
	assert.ErrorIs(t, err, align.ErrNilScorer)

	_, err = align.Align(align.Global, "A", "A", b62, -1, 0)
	assert.ErrorIs(t, err, scoring.ErrNegativeGap)
}

// TestMode covers String and ParseMode.
func TestMode(t *testing.T) {
	for _, m := range []align.Mode{align.Global, align.Local, align.Fitting, align.Overlap} {
		got, err := align.ParseMode(strings.ToUpper(m.String()))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, "Mode(7)", align.Mode(7).String())
	_, err := align.ParseMode("semiglobal")
	assert.ErrorIs(t, err, align.ErrUnknownMode)

	assert.Equal(t, "↘", align.Diagonal.String())
	assert.Equal(t, "↓", align.Up.String())
	assert.Equal(t, "→", align.Left.String())
	assert.Equal(t, "×", align.Stop.String())
}

// TestResult_Helpers covers rendering and identity.
func TestResult_Helpers(t *testing.T) {
	res, err := align.DefaultConfig().Align("PLEASANTLY", "MEANLY")
	require.NoError(t, err)
	assert.Equal(t, "8\nPLEASANTLY\n-MEA--N-LY", res.String())
	assert.Equal(t, 10, res.Len())
	assert.InDelta(t, 0.5, res.Identity(), 1e-9)
	assert.Equal(t, 0.0, align.Result{}.Identity())

	s, err := align.DefaultConfig().Score("PLEASANTLY", "MEANLY")
	require.NoError(t, err)
	assert.Equal(t, 8, s)
}

// strip removes gap glyphs.
func strip(s string) string {
	return strings.ReplaceAll(s, string(align.GapChar), "")
}

// rescore recomputes the score of an emitted alignment column by column.
func rescore(t *testing.T, r align.Result, sc scoring.Scorer, gap scoring.Gap) int {
	t.Helper()
	total, prev := 0, byte(0) // prev: 'x' gap in W, 'y' gap in V, 0 otherwise
	for k := 0; k < len(r.AlignedV); k++ {
		a, b := r.AlignedV[k], r.AlignedW[k]
		switch {
		case b == align.GapChar:
			if prev == 'x' {
				total -= gap.Extend
			} else {
				total -= gap.Open
			}
			prev = 'x'
		case a == align.GapChar:
			if prev == 'y' {
				total -= gap.Extend
			} else {
				total -= gap.Open
			}
			prev = 'y'
		default:
			s, err := sc.Score(a, b)
			require.NoError(t, err)
			total += s
			prev = 0
		}
	}

	return total
}

// TestAlign_Properties checks, on random DNA, that
//   - the emitted columns rescore to the reported score,
//   - stripping gaps reproduces the consumed ranges required by the mode,
//   - Score agrees with Align and repeated calls are identical.
func TestAlign_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randDNA := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = "ACGT"[rng.Intn(4)]
		}

		return string(b)
	}
	sc := scoring.Constant{Match: 2, Mismatch: -3}
	gaps := []scoring.Gap{{Open: 5, Extend: 2}, scoring.LinearGap(2), {Open: 0, Extend: 0}}
	modes := []align.Mode{align.Global, align.Local, align.Fitting, align.Overlap}

	for iter := 0; iter < 60; iter++ {
		v, w := randDNA(1+rng.Intn(25)), randDNA(1+rng.Intn(25))
		gap := gaps[iter%len(gaps)]
		for _, mode := range modes {
			res, err := align.Align(mode, v, w, sc, gap.Open, gap.Extend)
			require.NoError(t, err)

			require.Equal(t, len(res.AlignedV), len(res.AlignedW), "%s %s/%s", mode, v, w)
			assert.Equal(t, res.Score, rescore(t, res, sc, gap), "%s %s/%s", mode, v, w)
			assert.Equal(t, v[res.StartV:res.EndV], strip(res.AlignedV), "%s %s/%s", mode, v, w)
			assert.Equal(t, w[res.StartW:res.EndW], strip(res.AlignedW), "%s %s/%s", mode, v, w)

			switch mode {
			case align.Global:
				assert.Equal(t, v, strip(res.AlignedV))
				assert.Equal(t, w, strip(res.AlignedW))
			case align.Fitting:
				assert.Equal(t, w, strip(res.AlignedW))
			case align.Overlap:
				assert.Equal(t, len(v), res.EndV, "overlap must reach the end of V")
				assert.Equal(t, 0, res.StartW, "overlap must start at the beginning of W")
			case align.Local:
				assert.GreaterOrEqual(t, res.Score, 0)
			}

			s, err := align.Score(mode, v, w, sc, gap.Open, gap.Extend)
			require.NoError(t, err)
			assert.Equal(t, res.Score, s, "%s %s/%s", mode, v, w)

			again, err := align.Align(mode, v, w, sc, gap.Open, gap.Extend)
			require.NoError(t, err)
			assert.Equal(t, res, again)
		}
	}
}

// TestAlign_ModeOrdering checks score relations implied by the boundary rules.
func TestAlign_ModeOrdering(t *testing.T) {
	sc := scoring.Constant{Match: 1, Mismatch: -1}
	v, w := "ACGTACGTTGCA", "GTACG"
	g, _ := align.Score(align.Global, v, w, sc, 2, 1)
	f, _ := align.Score(align.Fitting, v, w, sc, 2, 1)
	l, _ := align.Score(align.Local, v, w, sc, 2, 1)

	assert.GreaterOrEqual(t, f, g, "fitting relaxes global")
	assert.GreaterOrEqual(t, l, f, "local relaxes fitting")
	assert.Equal(t, 5, f, "W occurs verbatim in V")
}
