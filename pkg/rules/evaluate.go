package rules

import (
	"errors"

	"github.com/herohde/rulesengine/pkg/board"
	"github.com/herohde/rulesengine/pkg/movegen"
)

// ErrIllegalPosition means the side not to move has its king attacked,
// which can only happen if the preceding move was illegal.
var ErrIllegalPosition = errors.New("rules: side not to move has king attacked")

// Evaluate classifies pos. It returns ErrIllegalPosition if the side NOT to
// move is in check; otherwise it reports Normal, or one of the four
// checkmate/stalemate terminals if the side to move has no legal reply.
func Evaluate(pos *board.Position) (Terminal, error) {
	justMoved := pos.SideToMove().Opponent()
	if movegen.AttackedPiece(pos, pos.KingSquare(justMoved)) {
		return Normal, ErrIllegalPosition
	}

	toMove := pos.SideToMove()
	for _, m := range movegen.GenMoveList(pos) {
		pos.PushMove(m)
		replyOK := !movegen.AttackedPiece(pos, pos.KingSquare(toMove))
		pos.PopMove(m)
		if replyOK {
			return Normal, nil
		}
	}

	white := toMove == board.White
	if movegen.AttackedPiece(pos, pos.KingSquare(toMove)) {
		if white {
			return WCheckmate, nil
		}
		return BCheckmate, nil
	}
	if white {
		return WStalemate, nil
	}
	return BStalemate, nil
}
