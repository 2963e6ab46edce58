package rules

import (
	"github.com/herohde/rulesengine/pkg/board"
	"github.com/herohde/rulesengine/pkg/movegen"
)

// IsLegal reports whether pos is a structurally sound chess position: pawns
// off the back ranks, exactly one king per side, the side not to move not
// leaving its king en-prise, and piece counts within what 16 starting men
// per side can produce. ok is true iff reason is zero.
func IsLegal(pos *board.Position) (reason IllegalReason, ok bool) {
	var wkings, bkings, wpawns, bpawns, wpieces, bpieces int
	opponentKing := board.NoSquare

	for s := board.ZeroSquare; s < board.NumSquares; s++ {
		pc := pos.At(s)
		if pc.IsEmpty() {
			continue
		}
		if (pc == board.WP || pc == board.BP) && (s.Rank() == board.Rank1 || s.Rank() == board.Rank8) {
			reason |= PawnOnBackRank
		}

		switch {
		case pc.IsWhite():
			if pc == board.WP {
				wpawns++
			} else {
				wpieces++
				if pc == board.WK {
					wkings++
					if pos.SideToMove() == board.Black {
						opponentKing = s
					}
				}
			}
		case pc.IsBlack():
			if pc == board.BP {
				bpawns++
			} else {
				bpieces++
				if pc == board.BK {
					bkings++
					if pos.SideToMove() == board.White {
						opponentKing = s
					}
				}
			}
		}
	}

	if wkings != 1 || bkings != 1 {
		reason |= NotOneKingEach
	}
	if opponentKing != board.NoSquare && movegen.AttackedPiece(pos, opponentKing) {
		reason |= CanTakeOpposingKing
	}
	if wpieces > 8 && wpieces+wpawns > 16 {
		reason |= WhiteTooManyPieces
	}
	if bpieces > 8 && bpieces+bpawns > 16 {
		reason |= BlackTooManyPieces
	}
	if wpawns > 8 {
		reason |= WhiteTooManyPawns
	}
	if bpawns > 8 {
		reason |= BlackTooManyPawns
	}
	return reason, reason == 0
}
