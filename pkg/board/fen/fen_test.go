package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herohde/rulesengine/pkg/board"
)

func TestDecodeInitial(t *testing.T) {
	pos, halfMove, fullMove, err := Decode(Initial)
	require.NoError(t, err)
	assert.Equal(t, board.WR, pos.At(board.A1))
	assert.Equal(t, board.BR, pos.At(board.A8))
	assert.Equal(t, board.White, pos.SideToMove())
	assert.Equal(t, board.FullCastlingRights, pos.Castling())
	assert.Equal(t, board.NoSquare, pos.EnPassant())
	assert.Equal(t, 0, halfMove)
	assert.Equal(t, 1, fullMove)
}

func TestEncodeInitial(t *testing.T) {
	pos, halfMove, fullMove, err := Decode(Initial)
	require.NoError(t, err)
	assert.Equal(t, Initial, Encode(pos, halfMove, fullMove))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		Initial,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		"8/8/8/8/8/8/8/K6k w - - 0 1",
	}
	for _, fen := range tests {
		pos, halfMove, fullMove, err := Decode(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, Encode(pos, halfMove, fullMove), fen)
	}
}

func TestDecodeMissingTrailingFieldsDefault(t *testing.T) {
	pos, halfMove, fullMove, err := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, board.FullCastlingRights, pos.Castling())
	assert.Equal(t, board.NoSquare, pos.EnPassant())
	assert.Equal(t, 0, halfMove)
	assert.Equal(t, 1, fullMove)

	pos, halfMove, fullMove, err = Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w")
	require.NoError(t, err)
	assert.Equal(t, board.FullCastlingRights, pos.Castling())
	assert.Equal(t, board.NoSquare, pos.EnPassant())
	assert.Equal(t, 0, halfMove)
	assert.Equal(t, 1, fullMove)
}

func TestDecodeTooFewFieldsIsRejected(t *testing.T) {
	_, _, _, err := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFEN)
}

func TestDecodeZeroFullMoveIsAccepted(t *testing.T) {
	pos, halfMove, fullMove, err := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0")
	require.NoError(t, err)
	assert.NotNil(t, pos)
	assert.Equal(t, 0, halfMove)
	assert.Equal(t, 0, fullMove)
}

func TestDecodeInvalidPiece(t *testing.T) {
	_, _, _, err := Decode("xnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFEN)
}

func TestDecodeInvalidRankOverflow(t *testing.T) {
	_, _, _, err := Decode("rnbqkbnr9/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.Error(t, err)
}

func TestDecodeInvalidActiveColor(t *testing.T) {
	_, _, _, err := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	require.Error(t, err)
}

func TestDecodeInvalidCastling(t *testing.T) {
	_, _, _, err := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XYZQ - 0 1")
	require.Error(t, err)
}

func TestDecodeInvalidEnPassant(t *testing.T) {
	_, _, _, err := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	require.Error(t, err)
}

func TestDecodeMissingKingIsRejected(t *testing.T) {
	_, _, _, err := Decode("rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq - 0 1")
	require.Error(t, err)
}
