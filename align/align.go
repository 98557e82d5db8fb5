package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbio/scoring"
)

// Align: affine-gap pairwise alignment
//
// Algorithm Outline (FullMatrix):
//  1. Let n = len(V), m = len(W). Allocate (n+1)x(m+1) cells of three layers.
//  2. Visit cells in row-major order; every cell reads only (i-1,j-1),
//     (i-1,j) and (i,j-1), so all three layers of a predecessor are final.
//     M  = max(Ix, M, Iy)(i-1,j-1) + score(V[i-1], W[j-1])
//     Ix = max(M(i-1,j) - open, Ix(i-1,j) - extend)
//     Iy = max(M(i,j-1) - open, Iy(i,j-1) - extend)
//  3. Where the mode allows a free start, M is raised to 0 with a Stop
//     pointer (Smith–Waterman floor for Local, column 0 for Fitting and
//     Overlap, the origin for Global).
//  4. Track the best end cell permitted by the mode while filling.
//  5. Walk the pointers back to the first Stop and reverse the emitted pairs.
//
// Memory Modes:
//   - fullMatrix: every row plus pointers; needed for the traceback.
//   - twoRows: current and previous row only; score without alignment.

// negInf marks an unreachable layer. Nothing is ever derived from it, so
// unreachable layers stay exactly negInf and never overflow.
const negInf = math.MinInt / 2

// Layer indices inside a cell.
const (
	layerM = iota
	layerX
	layerY
)

type memoryMode int

const (
	fullMatrix memoryMode = iota
	twoRows
)

// cell holds the M, Ix and Iy values of one grid position.
type cell [3]int

// table is the private DP state of a single call.
type table struct {
	mode         Mode
	v, w         string
	sc           scoring.Scorer
	open, extend int
	mem          memoryMode

	val [][]cell    // n+1 rows, or 2 rows in twoRows mode
	ptr [][][3]Move // per layer, the Move of the predecessor's layer

	best      int
	bestI     int
	bestJ     int
	bestLayer int
}

// Align computes an optimal alignment of v and w under mode.
//
// gapOpen is the cost of the first position of a gap and gapExtend the
// cost of each further position; both are subtracted from the score.
//
// Example:
//
//	res, err := Align(Local, "MEANLY", "PENALTY", scoring.PAM250(), 5, 5)
//	// 15, "EANL-Y", "ENALTY"
func Align(mode Mode, v, w string, sc scoring.Scorer, gapOpen, gapExtend int) (Result, error) {
	t, err := newTable(mode, v, w, sc, gapOpen, gapExtend, fullMatrix)
	if err != nil {
		return Result{}, err
	}
	if err = t.fill(); err != nil {
		return Result{}, err
	}

	return t.traceback(), nil
}

// Score returns the optimal alignment score only. It agrees with
// Align(...).Score but keeps just two rows of the grid in memory.
func Score(mode Mode, v, w string, sc scoring.Scorer, gapOpen, gapExtend int) (int, error) {
	t, err := newTable(mode, v, w, sc, gapOpen, gapExtend, twoRows)
	if err != nil {
		return 0, err
	}
	if err = t.fill(); err != nil {
		return 0, err
	}

	return t.best, nil
}

// Levenshtein returns the edit distance between v and w: global alignment
// with unit mismatch and gap costs, negated.
func Levenshtein(v, w string) (int, error) {
	s, err := Score(Global, v, w, scoring.Unit(), 1, 1)
	if err != nil {
		return 0, err
	}

	return -s, nil
}

func newTable(mode Mode, v, w string, sc scoring.Scorer, open, extend int, mem memoryMode) (*table, error) {
	// 1. Validate inputs
	if len(v) == 0 || len(w) == 0 {
		return nil, ErrEmptySequence
	}
	if mode < Global || mode > Overlap {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if sc == nil {
		return nil, ErrNilScorer
	}
	if err := (scoring.Gap{Open: open, Extend: extend}).Validate(); err != nil {
		return nil, err
	}

	// 2. Allocate DP storage
	n, m := len(v), len(w)
	rows := n + 1
	if mem == twoRows {
		rows = 2
	}
	t := &table{
		mode:   mode,
		v:      v,
		w:      w,
		sc:     sc,
		open:   open,
		extend: extend,
		mem:    mem,
		val:    make([][]cell, rows),
		best:   negInf,
	}
	for i := range t.val {
		t.val[i] = make([]cell, m+1)
	}
	if mem == fullMatrix {
		t.ptr = make([][][3]Move, n+1)
		for i := range t.ptr {
			t.ptr[i] = make([][3]Move, m+1)
		}
	}

	return t, nil
}

// row returns the storage of row i.
func (t *table) row(i int) []cell {
	if t.mem == twoRows {
		return t.val[i%2]
	}

	return t.val[i]
}

// fill computes every cell in row-major order and tracks the end cell.
func (t *table) fill() error {
	n, m := len(t.v), len(t.w)
	for i := 0; i <= n; i++ {
		cur := t.row(i)
		var prev []cell
		if i > 0 {
			prev = t.row(i - 1)
		}
		for j := 0; j <= m; j++ {
			vals, from, err := t.eval(i, j, prev, cur)
			if err != nil {
				return err
			}
			cur[j] = vals
			if t.ptr != nil {
				t.ptr[i][j] = from
			}
			if t.isEnd(i, j) {
				t.consider(i, j, vals)
			}
		}
	}

	return nil
}

// eval evaluates the three layers at (i,j). prev is row i-1 (nil for i=0)
// and cur is row i with columns < j already final.
func (t *table) eval(i, j int, prev, cur []cell) (cell, [3]Move, error) {
	vals := cell{negInf, negInf, negInf}
	var from [3]Move

	// 1. Match layer: a diagonal step out of any layer of (i-1,j-1)
	if i > 0 && j > 0 {
		s, err := t.sc.Score(t.v[i-1], t.w[j-1])
		if err != nil {
			return vals, from, fmt.Errorf("align: V[%d] vs W[%d]: %w", i-1, j-1, err)
		}
		d := prev[j-1]
		best, src := d[layerX], Up
		if d[layerM] > best {
			best, src = d[layerM], Diagonal
		}
		if d[layerY] > best {
			best, src = d[layerY], Left
		}
		if best != negInf {
			vals[layerM], from[layerM] = best+s, src
		}
	}

	// 2. Free start: the alignment may begin here with score 0
	free := t.freeStart(i, j)
	if free && vals[layerM] < 0 {
		vals[layerM], from[layerM] = 0, Stop
	}

	// 3. Gap layers. Column-0 free starts never open a gap in W.
	if i > 0 && !(free && j == 0) {
		vals[layerX], from[layerX] = t.gap(prev[j], layerX)
	}
	if j > 0 {
		vals[layerY], from[layerY] = t.gap(cur[j-1], layerY)
	}

	return vals, from, nil
}

// gap opens a gap from the match layer of p or extends layer self of p.
// Opening wins ties.
func (t *table) gap(p cell, self int) (int, Move) {
	best, src := negInf, Stop
	if p[layerM] != negInf {
		best, src = p[layerM]-t.open, Diagonal
	}
	if p[self] != negInf && p[self]-t.extend > best {
		best, src = p[self]-t.extend, moveOf(self)
	}

	return best, src
}

// freeStart reports whether an alignment may begin at (i,j) for free.
func (t *table) freeStart(i, j int) bool {
	switch t.mode {
	case Local:
		return true
	case Fitting, Overlap:
		return j == 0
	default:
		return i == 0 && j == 0
	}
}

// isEnd reports whether (i,j) is a permitted end cell.
func (t *table) isEnd(i, j int) bool {
	n, m := len(t.v), len(t.w)
	switch t.mode {
	case Local:
		return true
	case Fitting:
		return j == m
	case Overlap:
		return i == n && j > 0
	default:
		return i == n && j == m
	}
}

// consider records (i,j) as the end cell if one of its layers beats the
// current best. Strict comparison keeps the earliest cell and the M, Ix,
// Iy layer order on ties.
func (t *table) consider(i, j int, vals cell) {
	for layer := layerM; layer <= layerY; layer++ {
		if vals[layer] != negInf && vals[layer] > t.best {
			t.best, t.bestI, t.bestJ, t.bestLayer = vals[layer], i, j, layer
		}
	}
}

// traceback walks from the recorded end cell to the first Stop pointer.
func (t *table) traceback() Result {
	i, j, layer := t.bestI, t.bestJ, t.bestLayer
	endV, endW := i, j
	av := make([]byte, 0, i+j)
	aw := make([]byte, 0, i+j)

	for {
		from := t.ptr[i][j][layer]
		if layer == layerM && from == Stop {
			break
		}
		switch layer {
		case layerM:
			av = append(av, t.v[i-1])
			aw = append(aw, t.w[j-1])
			i, j = i-1, j-1
		case layerX:
			av = append(av, t.v[i-1])
			aw = append(aw, GapChar)
			i--
		default:
			av = append(av, GapChar)
			aw = append(aw, t.w[j-1])
			j--
		}
		layer = layerOf(from)
	}

	// emission ran end to start
	reverse(av)
	reverse(aw)

	return Result{
		Mode:     t.mode,
		Score:    t.best,
		AlignedV: string(av),
		AlignedW: string(aw),
		StartV:   i,
		EndV:     endV,
		StartW:   j,
		EndW:     endW,
	}
}

func moveOf(layer int) Move { return Move(layer + 1) }

func layerOf(mv Move) int { return int(mv) - 1 }

func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
