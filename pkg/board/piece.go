package board

// Piece is a single board-square character: one of "KQRBNPkqrbnp" for an
// occupied square, or a space for an empty one. Upper case is white, lower
// case is black. There is deliberately no separate enum-and-color pair: the
// character IS the representation, which is what makes the board array
// directly printable and FEN emission nearly free.
type Piece byte

const (
	Empty Piece = ' '

	WK Piece = 'K'
	WQ Piece = 'Q'
	WR Piece = 'R'
	WB Piece = 'B'
	WN Piece = 'N'
	WP Piece = 'P'

	BK Piece = 'k'
	BQ Piece = 'q'
	BR Piece = 'r'
	BB Piece = 'b'
	BN Piece = 'n'
	BP Piece = 'p'
)

// Kind is the piece type without color, used to dispatch move generation.
type Kind uint8

const (
	NoKind Kind = iota
	KindPawn
	KindKnight
	KindBishop
	KindRook
	KindQueen
	KindKing
)

// ParsePiece validates a FEN piece character.
func ParsePiece(r byte) (Piece, bool) {
	switch Piece(r) {
	case WK, WQ, WR, WB, WN, WP, BK, BQ, BR, BB, BN, BP:
		return Piece(r), true
	default:
		return Empty, false
	}
}

func (p Piece) IsEmpty() bool { return p == Empty }

func (p Piece) IsWhite() bool { return p >= 'A' && p <= 'Z' }

func (p Piece) IsBlack() bool { return p >= 'a' && p <= 'z' }

// Color reports the color of an occupied square; ok is false for Empty.
func (p Piece) Color() (Color, bool) {
	switch {
	case p.IsWhite():
		return White, true
	case p.IsBlack():
		return Black, true
	default:
		return 0, false
	}
}

// Kind reports the piece type, ignoring color; NoKind for Empty.
func (p Piece) Kind() Kind {
	switch p {
	case WP, BP:
		return KindPawn
	case WN, BN:
		return KindKnight
	case WB, BB:
		return KindBishop
	case WR, BR:
		return KindRook
	case WQ, BQ:
		return KindQueen
	case WK, BK:
		return KindKing
	default:
		return NoKind
	}
}

// ForColor returns the piece of the given kind in the given color, e.g.
// KindQueen.ForColor(Black) == BQ.
func (k Kind) ForColor(c Color) Piece {
	white := [...]Piece{Empty, WP, WN, WB, WR, WQ, WK}
	black := [...]Piece{Empty, BP, BN, BB, BR, BQ, BK}
	if c == White {
		return white[k]
	}
	return black[k]
}

func (p Piece) String() string {
	return string(rune(p))
}
