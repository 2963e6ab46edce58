package movegen

import "github.com/herohde/rulesengine/pkg/board"

// GenMoveList returns every pseudo-legal move for the side to move: moves
// that respect piece geometry, board occupancy, en-passant and castling
// preconditions, but may leave the mover's own king in check. Callers that
// need legal moves must filter with a king-safety check of their own (see
// package rules).
func GenMoveList(pos *board.Position) []board.Move {
	var out []board.Move
	white := pos.SideToMove() == board.White

	for s := board.ZeroSquare; s < board.NumSquares; s++ {
		pc := pos.At(s)
		if pc.IsEmpty() {
			continue
		}
		c, _ := pc.Color()
		if (c == board.White) != white {
			continue
		}

		switch pc.Kind() {
		case board.KindPawn:
			if white {
				out = genWhitePawnMoves(pos, s, out)
			} else {
				out = genBlackPawnMoves(pos, s, out)
			}
		case board.KindKnight:
			out = genStepMoves(pos, s, knightSteps[s], board.SpecialNone, out)
		case board.KindBishop:
			out = genSlideMoves(pos, s, bishopRays[s], out)
		case board.KindRook:
			out = genSlideMoves(pos, s, rookRays[s], out)
		case board.KindQueen:
			out = genSlideMoves(pos, s, queenRays[s], out)
		case board.KindKing:
			out = genStepMoves(pos, s, kingSteps[s], board.SpecialKingMove, out)
			out = genCastles(pos, s, out)
		}
	}
	return out
}

func genSlideMoves(pos *board.Position, from board.Square, dirRays [][]board.Square, out []board.Move) []board.Move {
	white := pos.At(from).IsWhite()
	for _, ray := range dirRays {
		for _, to := range ray {
			target := pos.At(to)
			if target.IsEmpty() {
				out = append(out, board.NewMove(from, to, board.Empty, board.SpecialNone))
				continue
			}
			if target.IsWhite() != white {
				out = append(out, board.NewMove(from, to, target, board.SpecialNone))
			}
			break
		}
	}
	return out
}

func genStepMoves(pos *board.Position, from board.Square, targets []board.Square, special board.Special, out []board.Move) []board.Move {
	white := pos.At(from).IsWhite()
	for _, to := range targets {
		target := pos.At(to)
		if target.IsEmpty() {
			out = append(out, board.NewMove(from, to, board.Empty, special))
		} else if target.IsWhite() != white {
			out = append(out, board.NewMove(from, to, target, special))
		}
	}
	return out
}

func genWhitePawnMoves(pos *board.Position, from board.Square, out []board.Move) []board.Move {
	promotion := from.Rank() == board.Rank7
	ep := pos.EnPassant()

	for _, to := range whitePawnCaptures[from] {
		switch {
		case to == ep && ep != board.NoSquare:
			out = append(out, board.NewMove(from, to, board.BP, board.SpecialWEnPassant))
		case pos.At(to).IsBlack():
			out = appendPawnMove(out, from, to, pos.At(to), promotion, board.SpecialNone)
		}
	}

	for i, to := range whitePawnAdvances[from] {
		if !pos.At(to).IsEmpty() {
			break
		}
		special := board.SpecialNone
		if i == 1 {
			special = board.SpecialWPawn2
		}
		out = appendPawnMove(out, from, to, board.Empty, promotion, special)
	}
	return out
}

func genBlackPawnMoves(pos *board.Position, from board.Square, out []board.Move) []board.Move {
	promotion := from.Rank() == board.Rank2
	ep := pos.EnPassant()

	for _, to := range blackPawnCaptures[from] {
		switch {
		case to == ep && ep != board.NoSquare:
			out = append(out, board.NewMove(from, to, board.WP, board.SpecialBEnPassant))
		case pos.At(to).IsWhite():
			out = appendPawnMove(out, from, to, pos.At(to), promotion, board.SpecialNone)
		}
	}

	for i, to := range blackPawnAdvances[from] {
		if !pos.At(to).IsEmpty() {
			break
		}
		special := board.SpecialNone
		if i == 1 {
			special = board.SpecialBPawn2
		}
		out = appendPawnMove(out, from, to, board.Empty, promotion, special)
	}
	return out
}

// appendPawnMove appends a single pawn move, or all four promotion variants
// in Q, N, B, R order when promotion is true.
func appendPawnMove(out []board.Move, from, to board.Square, capture board.Piece, promotion bool, special board.Special) []board.Move {
	if !promotion {
		return append(out, board.NewMove(from, to, capture, special))
	}
	return append(out,
		board.NewMove(from, to, capture, board.SpecialPromoteQ),
		board.NewMove(from, to, capture, board.SpecialPromoteN),
		board.NewMove(from, to, capture, board.SpecialPromoteB),
		board.NewMove(from, to, capture, board.SpecialPromoteR),
	)
}

func genCastles(pos *board.Position, kingSq board.Square, out []board.Move) []board.Move {
	switch kingSq {
	case board.E1:
		if pos.Castling().Has(board.CastleWK) &&
			pos.At(board.F1).IsEmpty() && pos.At(board.G1).IsEmpty() && pos.At(board.H1) == board.WR &&
			!AttackedSquare(pos, board.E1, false) && !AttackedSquare(pos, board.F1, false) && !AttackedSquare(pos, board.G1, false) {
			out = append(out, board.NewMove(board.E1, board.G1, board.Empty, board.SpecialWKCastle))
		}
		if pos.Castling().Has(board.CastleWQ) &&
			pos.At(board.B1).IsEmpty() && pos.At(board.C1).IsEmpty() && pos.At(board.D1).IsEmpty() && pos.At(board.A1) == board.WR &&
			!AttackedSquare(pos, board.E1, false) && !AttackedSquare(pos, board.D1, false) && !AttackedSquare(pos, board.C1, false) {
			out = append(out, board.NewMove(board.E1, board.C1, board.Empty, board.SpecialWQCastle))
		}
	case board.E8:
		if pos.Castling().Has(board.CastleBK) &&
			pos.At(board.F8).IsEmpty() && pos.At(board.G8).IsEmpty() && pos.At(board.H8) == board.BR &&
			!AttackedSquare(pos, board.E8, true) && !AttackedSquare(pos, board.F8, true) && !AttackedSquare(pos, board.G8, true) {
			out = append(out, board.NewMove(board.E8, board.G8, board.Empty, board.SpecialBKCastle))
		}
		if pos.Castling().Has(board.CastleBQ) &&
			pos.At(board.B8).IsEmpty() && pos.At(board.C8).IsEmpty() && pos.At(board.D8).IsEmpty() && pos.At(board.A8) == board.BR &&
			!AttackedSquare(pos, board.E8, true) && !AttackedSquare(pos, board.D8, true) && !AttackedSquare(pos, board.C8, true) {
			out = append(out, board.NewMove(board.E8, board.C8, board.Empty, board.SpecialBQCastle))
		}
	}
	return out
}
