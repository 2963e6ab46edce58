package board

import "strings"

// CastlingRights is the set of four independent flags: each means "this
// castling was not permanently revoked by a king or corresponding rook
// move". Actual castleability at a given moment additionally requires the
// king and rook to occupy their initial squares and the king's path to be
// unattacked (checked by movegen, not stored here). 4 bits.
type CastlingRights uint8

const (
	CastleWK CastlingRights = 1 << iota
	CastleWQ
	CastleBK
	CastleBQ
)

const FullCastlingRights = CastleWK | CastleWQ | CastleBK | CastleBQ

// Has returns true iff all of the given rights are set.
func (c CastlingRights) Has(rights CastlingRights) bool {
	return c&rights == rights
}

// castlingRevokedBy is keyed on the destination (or source) square of any
// move and masks out the rights that move permanently revokes. A move to or
// from e1 revokes both white rights; to or from h1 revokes CastleWK; etc. No
// branching on piece type is needed: legality additionally requires the king
// and rook to physically stand on their home squares, so applying this table
// to every move's source and destination square is always safe.
var castlingRevokedBy [NumSquares]CastlingRights

func init() {
	for i := range castlingRevokedBy {
		castlingRevokedBy[i] = FullCastlingRights
	}
	castlingRevokedBy[A1] &^= CastleWQ
	castlingRevokedBy[E1] &^= CastleWK | CastleWQ
	castlingRevokedBy[H1] &^= CastleWK
	castlingRevokedBy[A8] &^= CastleBQ
	castlingRevokedBy[E8] &^= CastleBK | CastleBQ
	castlingRevokedBy[H8] &^= CastleBK
}

// RevokedBy returns the rights remaining after a move touching sq (as
// either its source or destination) is made.
func (c CastlingRights) RevokedBy(sq Square) CastlingRights {
	return c & castlingRevokedBy[sq]
}

func (c CastlingRights) String() string {
	if c == 0 {
		return "-"
	}
	var sb strings.Builder
	if c.Has(CastleWK) {
		sb.WriteByte('K')
	}
	if c.Has(CastleWQ) {
		sb.WriteByte('Q')
	}
	if c.Has(CastleBK) {
		sb.WriteByte('k')
	}
	if c.Has(CastleBQ) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// ParseCastlingRights parses the FEN castling-availability field.
func ParseCastlingRights(s string) (CastlingRights, bool) {
	if s == "-" {
		return 0, true
	}
	var c CastlingRights
	for _, r := range s {
		switch r {
		case 'K':
			c |= CastleWK
		case 'Q':
			c |= CastleWQ
		case 'k':
			c |= CastleBK
		case 'q':
			c |= CastleBQ
		default:
			return 0, false
		}
	}
	return c, true
}
