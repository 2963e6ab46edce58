package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveRoundTrip(t *testing.T) {
	m := NewMove(E2, E4, Empty, SpecialWPawn2)
	assert.Equal(t, E2, m.From())
	assert.Equal(t, E4, m.To())
	assert.Equal(t, Empty, m.Capture())
	assert.Equal(t, SpecialWPawn2, m.Special())
}

func TestMoveEqualityIsBitwise(t *testing.T) {
	a := NewMove(E2, E4, Empty, SpecialWPawn2)
	b := NewMove(E2, E4, Empty, SpecialWPawn2)
	c := NewMove(E2, E4, BP, SpecialWPawn2)

	assert.Equal(t, a, b)
	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestMoveCapture(t *testing.T) {
	m := NewMove(D4, E5, BP, SpecialNone)
	assert.Equal(t, BP, m.Capture())
}

func TestMoveZero(t *testing.T) {
	var m Move
	assert.True(t, m.IsZero())

	m = NewMove(E2, E4, Empty, SpecialNone)
	assert.False(t, m.IsZero())
}

func TestSpecialPromotionKind(t *testing.T) {
	assert.Equal(t, KindQueen, SpecialPromoteQ.PromotionKind())
	assert.Equal(t, KindKnight, SpecialPromoteN.PromotionKind())
	assert.Equal(t, NoKind, SpecialNone.PromotionKind())
}

func TestSpecialIsPromotion(t *testing.T) {
	assert.True(t, SpecialPromoteQ.IsPromotion())
	assert.False(t, SpecialNone.IsPromotion())
}

func TestSpecialIsCastle(t *testing.T) {
	assert.True(t, SpecialWKCastle.IsCastle())
	assert.True(t, SpecialBQCastle.IsCastle())
	assert.False(t, SpecialNone.IsCastle())
}
