package rules

import (
	"github.com/herohde/rulesengine/pkg/board"
	"github.com/herohde/rulesengine/pkg/movegen"
)

// LegalMove pairs a legal move with the terminal status it produces, for
// callers (e.g. SAN printing) that need to know whether a move gives check
// or mate without re-deriving it themselves.
type LegalMove struct {
	Move      board.Move
	Check     bool
	Mate      bool
	Stalemate bool
}

// GenLegalMoveList filters movegen.GenMoveList down to moves that do not
// leave the mover's own king attacked.
func GenLegalMoveList(pos *board.Position) []board.Move {
	mover := pos.SideToMove()
	var out []board.Move
	for _, m := range movegen.GenMoveList(pos) {
		pos.PushMove(m)
		ok := !movegen.AttackedPiece(pos, pos.KingSquare(mover))
		pos.PopMove(m)
		if ok {
			out = append(out, m)
		}
	}
	return out
}

// GenLegalMoveListDetailed is GenLegalMoveList with the check/mate/stalemate
// flags of the position each move produces.
func GenLegalMoveListDetailed(pos *board.Position) []LegalMove {
	mover := pos.SideToMove()
	var out []LegalMove
	for _, m := range movegen.GenMoveList(pos) {
		pos.PushMove(m)
		if !movegen.AttackedPiece(pos, pos.KingSquare(mover)) {
			terminal, _ := Evaluate(pos)
			mate := terminal == WCheckmate || terminal == BCheckmate
			stalemate := terminal == WStalemate || terminal == BStalemate
			check := !mate && movegen.AttackedPiece(pos, pos.KingSquare(pos.SideToMove()))
			out = append(out, LegalMove{Move: m, Check: check, Mate: mate, Stalemate: stalemate})
		}
		pos.PopMove(m)
	}
	return out
}
