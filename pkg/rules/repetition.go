package rules

import "github.com/herohde/rulesengine/pkg/board"

// repetitionCount returns how many times pos has occurred, counting pos
// itself, by replaying history backward with PopMove and comparing each
// resulting position against pos. Castling rights and en-passant targets
// are compared semantically, not bitwise: a castling right counts only if
// the king and rook are still on the squares it depends on, and an
// en-passant target counts only if an enemy pawn actually stands adjacent
// to exploit it. The walk stops as soon as it crosses a pawn move or a
// capture, since no repetition can survive one, and pos is restored to its
// original state before returning.
func repetitionCount(pos *board.Position) int {
	matches := 0
	snapshot := *pos

	for i, n := 0, pos.HistoryLen(); i < n; i++ {
		m := pos.HistoryAt(i)
		if m.IsZero() {
			break
		}
		pos.PopMove(m)

		if pos.BoardEquals(&snapshot) && sameRelevantState(pos, &snapshot) {
			matches++
		}

		mover := pos.At(m.From())
		if mover == board.WP || mover == board.BP || m.Capture() != board.Empty {
			break
		}
	}

	*pos = snapshot
	return matches + 1
}

func sameRelevantState(a, b *board.Position) bool {
	return realCastlingRights(a) == realCastlingRights(b) && realEnPassant(a) == realEnPassant(b)
}

// realCastlingRights masks out any right whose king and rook no longer
// stand on the squares that right depends on, which can happen without the
// raw rights bit ever being cleared (e.g. a FEN record granting a right
// whose rook is not on its home square).
func realCastlingRights(pos *board.Position) board.CastlingRights {
	c := pos.Castling()
	var real board.CastlingRights
	if c.Has(board.CastleWK) && pos.At(board.E1) == board.WK && pos.At(board.H1) == board.WR {
		real |= board.CastleWK
	}
	if c.Has(board.CastleWQ) && pos.At(board.E1) == board.WK && pos.At(board.A1) == board.WR {
		real |= board.CastleWQ
	}
	if c.Has(board.CastleBK) && pos.At(board.E8) == board.BK && pos.At(board.H8) == board.BR {
		real |= board.CastleBK
	}
	if c.Has(board.CastleBQ) && pos.At(board.E8) == board.BK && pos.At(board.A8) == board.BR {
		real |= board.CastleBQ
	}
	return real
}

// realEnPassant reports whether pos's en-passant target is actually
// capturable, i.e. an enemy pawn stands adjacent and could make the
// capture; a double pawn push with no such neighbor leaves a cosmetic
// target that must not distinguish positions for repetition purposes.
func realEnPassant(pos *board.Position) board.Square {
	ep := pos.EnPassant()
	if ep == board.NoSquare {
		return board.NoSquare
	}

	var behind board.Square
	var attacker board.Piece
	switch ep.Rank() {
	case board.Rank6:
		behind, attacker = ep.South(), board.WP
	case board.Rank3:
		behind, attacker = ep.North(), board.BP
	default:
		return board.NoSquare
	}

	f := ep.File()
	if f > board.FileA && pos.At(behind.West()) == attacker {
		return ep
	}
	if f < board.FileH && pos.At(behind.East()) == attacker {
		return ep
	}
	return board.NoSquare
}
