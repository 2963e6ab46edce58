package board

import "fmt"

// Special is the closed set of move kinds that need bespoke push/pop
// handling beyond "move whatever is on src to dst".
type Special uint8

const (
	SpecialNone Special = iota
	SpecialKingMove
	SpecialWPawn2
	SpecialBPawn2
	SpecialWEnPassant
	SpecialBEnPassant
	SpecialWKCastle
	SpecialWQCastle
	SpecialBKCastle
	SpecialBQCastle
	SpecialPromoteQ
	SpecialPromoteR
	SpecialPromoteB
	SpecialPromoteN
)

func (s Special) IsPromotion() bool {
	return s == SpecialPromoteQ || s == SpecialPromoteR || s == SpecialPromoteB || s == SpecialPromoteN
}

// PromotionKind returns the piece kind a promotion special tag produces.
func (s Special) PromotionKind() Kind {
	switch s {
	case SpecialPromoteQ:
		return KindQueen
	case SpecialPromoteR:
		return KindRook
	case SpecialPromoteB:
		return KindBishop
	case SpecialPromoteN:
		return KindKnight
	default:
		return NoKind
	}
}

func (s Special) IsCastle() bool {
	return s == SpecialWKCastle || s == SpecialWQCastle || s == SpecialBKCastle || s == SpecialBQCastle
}

// Move is a packed 32-bit move record: source square, destination square,
// captured piece (for undo; Empty if none), and a special tag. Equality is
// the Go "==" operator on the underlying uint32, i.e. bitwise, as required:
// two moves compare equal iff all four fields match.
//
//	bits  0- 5: source square
//	bits  6-11: destination square
//	bits 12-19: captured piece (raw byte)
//	bits 20-25: special tag
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	moveCaptureShift = 12
	moveSpecialShift = 20

	moveSquareMask  = 0x3F
	moveByteMask    = 0xFF
	moveSpecialMask = 0x3F
)

// NewMove packs a move record.
func NewMove(from, to Square, capture Piece, special Special) Move {
	return Move(uint32(from&moveSquareMask)<<moveFromShift |
		uint32(to&moveSquareMask)<<moveToShift |
		uint32(byte(capture))<<moveCaptureShift |
		uint32(special&moveSpecialMask)<<moveSpecialShift)
}

func (m Move) From() Square {
	return Square((uint32(m) >> moveFromShift) & moveSquareMask)
}

func (m Move) To() Square {
	return Square((uint32(m) >> moveToShift) & moveSquareMask)
}

func (m Move) Capture() Piece {
	return Piece((uint32(m) >> moveCaptureShift) & moveByteMask)
}

func (m Move) Special() Special {
	return Special((uint32(m) >> moveSpecialShift) & moveSpecialMask)
}

// IsZero reports whether a move is the zero value. A move can never
// legally have equal source and destination, so the zero value (From==To==A8,
// no capture, no special) is an unambiguous "unused" sentinel for History.
func (m Move) IsZero() bool {
	return m == 0
}

func (m Move) String() string {
	return fmt.Sprintf("%v%v", m.From(), m.To())
}
