package movegen

import "github.com/herohde/rulesengine/pkg/board"

// AttackedSquare reports whether sq is attacked by a piece of byWhite's
// color, walking the precomputed rays outward from sq and probing the first
// occupied square on each; a ray stops at the first piece it hits, same as
// the pieces it represents. Knight attacks are checked separately since a
// knight's attack does not travel along a ray.
func AttackedSquare(pos *board.Position, s board.Square, byWhite bool) bool {
	table := &attacksByBlack
	if byWhite {
		table = &attacksByWhite
	}

	for _, ray := range table[s] {
		for _, step := range ray {
			pc := pos.At(step.sq)
			if pc.IsEmpty() {
				continue
			}
			c, _ := pc.Color()
			if (c == board.White) == byWhite {
				if kindToMask(pc.Kind())&step.mask != 0 {
					return true
				}
			}
			break // first occupied square on the ray ends it, hit or not
		}
	}

	for _, n := range knightSteps[s] {
		pc := pos.At(n)
		if pc.Kind() != board.KindKnight {
			continue
		}
		c, _ := pc.Color()
		if (c == board.White) == byWhite {
			return true
		}
	}
	return false
}

// AttackedPiece reports whether the piece on sq is attacked by the opposing
// color. sq must be occupied.
func AttackedPiece(pos *board.Position, s board.Square) bool {
	pc := pos.At(s)
	c, _ := pc.Color()
	return AttackedSquare(pos, s, c == board.Black)
}
