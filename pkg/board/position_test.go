package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitialPosition(t *testing.T) {
	p := NewInitialPosition()
	assert.Equal(t, WR, p.At(A1))
	assert.Equal(t, BR, p.At(A8))
	assert.Equal(t, WK, p.At(E1))
	assert.Equal(t, BK, p.At(E8))
	assert.Equal(t, Empty, p.At(E4))
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, FullCastlingRights, p.Castling())
	assert.Equal(t, NoSquare, p.EnPassant())
	assert.Equal(t, E1, p.KingSquare(White))
	assert.Equal(t, E8, p.KingSquare(Black))
}

func TestNewPositionRejectsMissingKing(t *testing.T) {
	squares := [64]Piece{}
	for i := range squares {
		squares[i] = Empty
	}
	squares[E1] = WK
	// no black king at all.
	_, err := NewPosition(squares, White, FullCastlingRights, NoSquare, 0, 1)
	require.Error(t, err)
}

func TestNewPositionAcceptsStructurallyIllegalKingCount(t *testing.T) {
	squares := [64]Piece{}
	for i := range squares {
		squares[i] = Empty
	}
	squares[E1] = WK
	squares[A1] = WK
	squares[E8] = BK
	p, err := NewPosition(squares, White, 0, NoSquare, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, A1, p.KingSquare(White))
}

func TestPositionEquals(t *testing.T) {
	a := NewInitialPosition()
	b := NewInitialPosition()
	assert.True(t, a.Equals(b))

	b.ToggleSideToMove()
	assert.False(t, a.Equals(b))
}

func TestPositionValueCopyIsIndependent(t *testing.T) {
	a := NewInitialPosition()
	snapshot := *a

	m := NewMove(E2, E4, Empty, SpecialWPawn2)
	a.PushMove(m)

	assert.Equal(t, WP, snapshot.At(E2))
	assert.Equal(t, Empty, snapshot.At(E4))
	assert.NotEqual(t, snapshot.SideToMove(), a.SideToMove())
}

func TestPushPopMoveRoundTrip(t *testing.T) {
	p := NewInitialPosition()
	before := *p

	m := NewMove(E2, E4, Empty, SpecialWPawn2)
	p.PushMove(m)
	assert.Equal(t, Empty, p.At(E2))
	assert.Equal(t, WP, p.At(E4))
	assert.Equal(t, E3, p.EnPassant())
	assert.Equal(t, Black, p.SideToMove())

	p.PopMove(m)
	assert.True(t, before.Equals(p))
	assert.Equal(t, before.EnPassant(), p.EnPassant())
}

func TestPushPopCapture(t *testing.T) {
	squares := initialSquares()
	squares[E4] = WN
	squares[D6] = BP
	p, err := NewPosition(squares, White, FullCastlingRights, NoSquare, 0, 1)
	require.NoError(t, err)

	m := NewMove(E4, D6, BP, SpecialNone)
	p.PushMove(m)
	assert.Equal(t, WN, p.At(D6))
	assert.Equal(t, Empty, p.At(E4))

	p.PopMove(m)
	assert.Equal(t, WN, p.At(E4))
	assert.Equal(t, BP, p.At(D6))
}

func TestPushPopKingMoveUpdatesCachedSquare(t *testing.T) {
	squares := [64]Piece{}
	for i := range squares {
		squares[i] = Empty
	}
	squares[E1] = WK
	squares[E8] = BK
	p, err := NewPosition(squares, White, 0, NoSquare, 0, 1)
	require.NoError(t, err)

	m := NewMove(E1, F1, Empty, SpecialKingMove)
	p.PushMove(m)
	assert.Equal(t, F1, p.KingSquare(White))

	p.PopMove(m)
	assert.Equal(t, E1, p.KingSquare(White))
}

func TestPushPopWhiteKingsideCastle(t *testing.T) {
	squares := [64]Piece{}
	for i := range squares {
		squares[i] = Empty
	}
	squares[E1] = WK
	squares[H1] = WR
	squares[E8] = BK
	p, err := NewPosition(squares, White, FullCastlingRights, NoSquare, 0, 1)
	require.NoError(t, err)
	before := *p

	m := NewMove(E1, G1, Empty, SpecialWKCastle)
	p.PushMove(m)
	assert.Equal(t, WK, p.At(G1))
	assert.Equal(t, WR, p.At(F1))
	assert.Equal(t, Empty, p.At(E1))
	assert.Equal(t, Empty, p.At(H1))
	assert.Equal(t, G1, p.KingSquare(White))
	assert.False(t, p.Castling().Has(CastleWK))
	assert.False(t, p.Castling().Has(CastleWQ))

	p.PopMove(m)
	assert.True(t, before.Equals(p))
}

func TestPushPopEnPassantCapture(t *testing.T) {
	squares := [64]Piece{}
	for i := range squares {
		squares[i] = Empty
	}
	squares[E1] = WK
	squares[E8] = BK
	squares[D5] = WP
	squares[E5] = BP
	p, err := NewPosition(squares, White, 0, E6, 0, 1)
	require.NoError(t, err)
	before := *p

	m := NewMove(D5, E6, Empty, SpecialWEnPassant)
	p.PushMove(m)
	assert.Equal(t, WP, p.At(E6))
	assert.Equal(t, Empty, p.At(D5))
	assert.Equal(t, Empty, p.At(E5))

	p.PopMove(m)
	assert.True(t, before.Equals(p))
	assert.Equal(t, BP, p.At(E5))
}

func TestPushPopPromotion(t *testing.T) {
	squares := [64]Piece{}
	for i := range squares {
		squares[i] = Empty
	}
	squares[E1] = WK
	squares[E8] = BK
	squares[A7] = WP
	p, err := NewPosition(squares, White, 0, NoSquare, 0, 1)
	require.NoError(t, err)

	m := NewMove(A7, A8, Empty, SpecialPromoteQ)
	p.PushMove(m)
	assert.Equal(t, WQ, p.At(A8))
	assert.Equal(t, Empty, p.At(A7))

	p.PopMove(m)
	assert.Equal(t, WP, p.At(A7))
	assert.Equal(t, Empty, p.At(A8))
}

func TestPlayMoveUpdatesCountersAndHistory(t *testing.T) {
	p := NewInitialPosition()
	m := NewMove(E2, E4, Empty, SpecialWPawn2)
	p.PlayMove(m)

	assert.Equal(t, 1, p.HistoryLen())
	assert.Equal(t, m, p.HistoryAt(0))
	assert.Equal(t, 1, p.FullMoveNumber())
	assert.Equal(t, 0, p.HalfMoveClock())

	reply := NewMove(E7, E5, Empty, SpecialBPawn2)
	p.PlayMove(reply)
	assert.Equal(t, 2, p.FullMoveNumber())
	assert.Equal(t, 2, p.HistoryLen())
	assert.Equal(t, reply, p.HistoryAt(0))
	assert.Equal(t, m, p.HistoryAt(1))
}

func TestPlayMoveResetsHalfMoveClockOnCapture(t *testing.T) {
	squares := initialSquares()
	squares[E4] = WN
	squares[D6] = BP
	p, err := NewPosition(squares, White, FullCastlingRights, NoSquare, 5, 1)
	require.NoError(t, err)

	p.PlayMove(NewMove(E4, D6, BP, SpecialNone))
	assert.Equal(t, 0, p.HalfMoveClock())
}
