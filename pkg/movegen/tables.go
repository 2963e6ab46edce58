// Package movegen generates pseudo-legal moves and answers "is this square
// attacked" queries, backed by ray and step tables precomputed once at
// package initialization. The tables are read-only afterward and may be
// shared freely across positions and goroutines.
package movegen

import "github.com/herohde/rulesengine/pkg/board"

// kindMask names which piece kinds could attack along a given ray step.
type kindMask uint8

const (
	maskPawn kindMask = 1 << iota
	maskKnight
	maskBishop
	maskRook
	maskQueen
	maskKing
)

// attackStep is one square along an attack-detection ray, paired with the
// set of enemy piece kinds that would attack the ray's origin if they stood
// there.
type attackStep struct {
	sq   board.Square
	mask kindMask
}

var (
	knightSteps [64][]board.Square
	kingSteps   [64][]board.Square

	bishopRays [64][][]board.Square
	rookRays   [64][][]board.Square
	queenRays  [64][][]board.Square

	whitePawnCaptures [64][]board.Square
	whitePawnAdvances [64][]board.Square
	blackPawnCaptures [64][]board.Square
	blackPawnAdvances [64][]board.Square

	attacksByWhite [64][][]attackStep
	attacksByBlack [64][][]attackStep
)

var (
	knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	diagDirs     = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthoDirs    = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

func allDirs() [8][2]int {
	var d [8][2]int
	copy(d[:4], diagDirs[:])
	copy(d[4:], orthoDirs[:])
	return d
}

func inBounds(f, r int) bool { return f >= 0 && f < 8 && r >= 0 && r < 8 }

func sq(f, r int) board.Square { return board.NewSquare(board.File(f), board.Rank(r)) }

func steps(f0, r0 int, deltas [][2]int) []board.Square {
	var out []board.Square
	for _, d := range deltas {
		f, r := f0+d[0], r0+d[1]
		if inBounds(f, r) {
			out = append(out, sq(f, r))
		}
	}
	return out
}

func rays(f0, r0 int, dirs [][2]int) [][]board.Square {
	var out [][]board.Square
	for _, d := range dirs {
		var ray []board.Square
		f, r := f0+d[0], r0+d[1]
		for inBounds(f, r) {
			ray = append(ray, sq(f, r))
			f, r = f+d[0], r+d[1]
		}
		if len(ray) > 0 {
			out = append(out, ray)
		}
	}
	return out
}

func init() {
	all := allDirs()
	allSlice := make([][2]int, len(all))
	copy(allSlice, all[:])
	diagSlice := make([][2]int, len(diagDirs))
	copy(diagSlice, diagDirs[:])
	orthoSlice := make([][2]int, len(orthoDirs))
	copy(orthoSlice, orthoDirs[:])
	knightSlice := make([][2]int, len(knightDeltas))
	copy(knightSlice, knightDeltas[:])

	for s := board.ZeroSquare; s < board.NumSquares; s++ {
		f0, r0 := int(s.File()), int(s.Rank())

		knightSteps[s] = steps(f0, r0, knightSlice)
		kingSteps[s] = steps(f0, r0, allSlice)

		bishopRays[s] = rays(f0, r0, diagSlice)
		rookRays[s] = rays(f0, r0, orthoSlice)
		queenRays[s] = rays(f0, r0, allSlice)

		whitePawnCaptures[s] = steps(f0, r0, [][2]int{{1, 1}, {-1, 1}})
		blackPawnCaptures[s] = steps(f0, r0, [][2]int{{1, -1}, {-1, -1}})

		whitePawnAdvances[s] = pawnAdvances(f0, r0, 1)
		blackPawnAdvances[s] = pawnAdvances(f0, r0, -1)

		attacksByWhite[s] = attackRays(f0, r0, [][2]int{{1, -1}, {-1, -1}})
		attacksByBlack[s] = attackRays(f0, r0, [][2]int{{1, 1}, {-1, 1}})
	}
}

// pawnAdvances returns the one or two squares a pawn on (f0,r0) can advance
// to, given the pawn's forward rank step dr (+1 for white, -1 for black).
func pawnAdvances(f0, r0, dr int) []board.Square {
	var out []board.Square
	r1 := r0 + dr
	if !inBounds(f0, r1) {
		return out
	}
	out = append(out, sq(f0, r1))

	onStartRank := (dr == 1 && r0 == 1) || (dr == -1 && r0 == 6)
	if onStartRank {
		r2 := r0 + 2*dr
		if inBounds(f0, r2) {
			out = append(out, sq(f0, r2))
		}
	}
	return out
}

// attackRays builds, for the square at (f0,r0), the full set of rays used by
// AttackedSquare: all 8 directions, each ray carrying maskBishop|maskQueen
// (diagonals) or maskRook|maskQueen (orthogonals) at every step, maskKing at
// the first step of every ray, and maskPawn at the first step of the two
// pawnDirs directions (the directions, from this square's point of view,
// a pawn of the attacking color would have to stand in to threaten it).
func attackRays(f0, r0 int, pawnDirs [][2]int) [][]attackStep {
	all := allDirs()
	var out [][]attackStep

	isPawnDir := func(d [2]int) bool {
		for _, p := range pawnDirs {
			if p == d {
				return true
			}
		}
		return false
	}
	isDiag := func(d [2]int) bool { return d[0] != 0 && d[1] != 0 }

	for _, d := range all {
		var ray []attackStep
		f, r := f0+d[0], r0+d[1]
		dist := 0
		for inBounds(f, r) {
			var m kindMask
			if isDiag(d) {
				m = maskBishop | maskQueen
			} else {
				m = maskRook | maskQueen
			}
			if dist == 0 {
				m |= maskKing
				if isPawnDir(d) {
					m |= maskPawn
				}
			}
			ray = append(ray, attackStep{sq: sq(f, r), mask: m})
			f, r = f+d[0], r+d[1]
			dist++
		}
		if len(ray) > 0 {
			out = append(out, ray)
		}
	}
	return out
}

// kindToMask maps a piece's Kind to its attack-mask bit.
func kindToMask(k board.Kind) kindMask {
	switch k {
	case board.KindPawn:
		return maskPawn
	case board.KindKnight:
		return maskKnight
	case board.KindBishop:
		return maskBishop
	case board.KindRook:
		return maskRook
	case board.KindQueen:
		return maskQueen
	case board.KindKing:
		return maskKing
	default:
		return 0
	}
}
