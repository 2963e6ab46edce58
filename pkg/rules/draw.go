package rules

import "github.com/herohde/rulesengine/pkg/board"

const (
	fiftyMoveLimit  = 100
	repetitionLimit = 3
)

// IsDraw answers a draw claim by whiteAsks: insufficient material first
// (which does not depend on who asks except for the lone-king claim), then
// the 50-move rule, then threefold repetition.
func IsDraw(pos *board.Position, whiteAsks bool) (DrawKind, bool) {
	if kind, ok := insufficientMaterial(pos, whiteAsks); ok {
		return kind, true
	}
	if pos.HalfMoveClock() >= fiftyMoveLimit {
		return DrawFiftyMove, true
	}
	if repetitionCount(pos) >= repetitionLimit {
		return DrawRepetition, true
	}
	return NoDraw, false
}

// insufficientMaterial grants an automatic draw for K v K, K v K+N, and K v
// K+B (K+B v K+N is deliberately excluded: corner selfmates are possible).
// Otherwise the side facing a lone king may claim a draw.
func insufficientMaterial(pos *board.Position, whiteAsks bool) (DrawKind, bool) {
	pieceCount := 0
	bishopOrKnight := false
	loneWhiteKing := true
	loneBlackKing := true

	for s := board.ZeroSquare; s < board.NumSquares; s++ {
		switch pc := pos.At(s); pc {
		case board.WB, board.WN, board.BB, board.BN:
			bishopOrKnight = true
			fallthrough
		case board.WQ, board.WR, board.WP, board.BQ, board.BR, board.BP:
			pieceCount++
			if pc.IsWhite() {
				loneWhiteKing = false
			} else {
				loneBlackKing = false
			}
		}
	}

	switch {
	case pieceCount == 0, pieceCount == 1 && bishopOrKnight:
		return DrawInsufficientMaterialAuto, true
	case whiteAsks && loneBlackKing:
		return DrawInsufficientMaterialClaim, true
	case !whiteAsks && loneWhiteKing:
		return DrawInsufficientMaterialClaim, true
	default:
		return NoDraw, false
	}
}
