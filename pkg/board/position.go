package board

import "fmt"

// historyCapacity and detailCapacity are hard ceilings on the history ring
// and the undo detail stack. The original C++ engine this design is ported
// from relies on an unsigned-char index to wrap automatically; Go gives us
// the same trick for free by using uint8 indices into fixed-size arrays, so
// the capacity is enforced by the type system rather than a runtime check.
// Deep searches that need more than 256 plies of undo history must chunk
// their traversal or hold a separate, larger stack of their own.
const (
	historyCapacity = 256
	detailCapacity  = 256
)

// Position is a complete, self-contained chess position: the 64-square
// board, side to move, castling rights, en-passant target, cached king
// squares, move counters, and the fixed-capacity history ring and undo
// detail stack needed to push and pop moves. It holds no pointers or
// slices, so a Position is a plain value: copying it (by assignment or
// passing by value) clones the entire position with no heap allocation,
// which is exactly what lets callers fork cheap, independent search
// branches.
type Position struct {
	squares   [64]Piece
	side      Color
	castling  CastlingRights
	enPassant Square
	kings     [2]Square

	halfMoveClock  int
	fullMoveNumber int
	history        [historyCapacity]Move
	historyIdx     uint8
	detailStack    [detailCapacity]uint32
	detailIdx      uint8
}

// NewInitialPosition returns the standard chess starting position.
func NewInitialPosition() *Position {
	p, err := NewPosition(initialSquares(), White, FullCastlingRights, NoSquare, 0, 1)
	if err != nil {
		panic(fmt.Sprintf("board: initial position must be valid: %v", err))
	}
	return p
}

func initialSquares() [64]Piece {
	var sq [64]Piece
	back := [8]Kind{KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook}
	for f := 0; f < 8; f++ {
		sq[NewSquare(File(f), Rank8)] = back[f].ForColor(Black)
		sq[NewSquare(File(f), Rank7)] = BP
		sq[NewSquare(File(f), Rank2)] = WP
		sq[NewSquare(File(f), Rank1)] = back[f].ForColor(White)
	}
	for i := range sq {
		if sq[i] == 0 {
			sq[i] = Empty
		}
	}
	return sq
}

// NewPosition builds a position from a full piece placement and metadata.
// It does not reject a structurally unsound placement (missing or
// duplicated kings, pawns on the back rank, and the like): a FEN record can
// be syntactically well-formed and still describe a chess-illegal position,
// and rules.IsLegal is the place that tells the two apart. The only thing
// NewPosition itself cannot tolerate is the total absence of a king for a
// color, since KingSquare would otherwise have nothing to report; that case
// returns an error.
func NewPosition(squares [64]Piece, side Color, castling CastlingRights, enPassant Square, halfMoveClock, fullMoveNumber int) (*Position, error) {
	p := &Position{
		squares:        squares,
		side:           side,
		castling:       castling,
		enPassant:      enPassant,
		halfMoveClock:  halfMoveClock,
		fullMoveNumber: fullMoveNumber,
		kings:          [2]Square{NoSquare, NoSquare},
	}

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		switch squares[sq] {
		case WK:
			if p.kings[White] == NoSquare {
				p.kings[White] = sq
			}
		case BK:
			if p.kings[Black] == NoSquare {
				p.kings[Black] = sq
			}
		}
	}
	if p.kings[White] == NoSquare || p.kings[Black] == NoSquare {
		return nil, fmt.Errorf("board: position must have a king of each color")
	}
	return p, nil
}

// At returns the piece occupying sq, or Empty.
func (p *Position) At(sq Square) Piece {
	return p.squares[sq]
}

// put sets the piece occupying sq, for use by the push/pop move mutators;
// Empty clears the square.
func (p *Position) put(sq Square, pc Piece) {
	p.squares[sq] = pc
}

func (p *Position) SideToMove() Color {
	return p.side
}

// ToggleSideToMove flips whose turn it is.
func (p *Position) ToggleSideToMove() {
	p.side = p.side.Opponent()
}

func (p *Position) Castling() CastlingRights {
	return p.castling
}

func (p *Position) SetCastling(c CastlingRights) {
	p.castling = c
}

// EnPassant returns the en-passant target square, or NoSquare if the last
// move was not a two-square pawn push.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

func (p *Position) SetEnPassant(sq Square) {
	p.enPassant = sq
}

// KingSquare returns the cached square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kings[c]
}

func (p *Position) setKingSquare(c Color, sq Square) {
	p.kings[c] = sq
}

func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// HistoryLen returns the number of plies recorded by PlayMove so far,
// modulo historyCapacity: the ring index wraps, so after 256 plies the
// count starts again from 0.
func (p *Position) HistoryLen() int {
	if p.historyIdx == 0 {
		// Ambiguous with "never played": callers needing exact depth past
		// a full wrap should track it themselves. Repetition search walks
		// back only this many plies.
		return 0
	}
	return int(p.historyIdx)
}

// HistoryAt returns the move that was the i-th most recently played (0 =
// most recent), or the zero Move if none is recorded at that depth.
func (p *Position) HistoryAt(i int) Move {
	idx := p.historyIdx - 1 - uint8(i)
	return p.history[idx]
}

// Equals reports position equality per spec: move counters are ignored,
// but side to move, castling rights, en-passant target, board placement
// and king squares must all match.
func (p *Position) Equals(o *Position) bool {
	return p.squares == o.squares &&
		p.side == o.side &&
		p.castling == o.castling &&
		p.enPassant == o.enPassant &&
		p.kings == o.kings
}

// BoardEquals reports whether two positions share the same piece placement,
// side to move and king squares, ignoring castling rights and en-passant
// target: the raw bits that repetition detection must treat as potentially
// cosmetic rather than compare bitwise.
func (p *Position) BoardEquals(o *Position) bool {
	return p.squares == o.squares && p.side == o.side && p.kings == o.kings
}

// String renders the position as 8 ranks of space-separated piece
// characters, rank 8 first.
func (p *Position) String() string {
	var out []byte
	for r := 0; r < 8; r++ {
		if r > 0 {
			out = append(out, '\n')
		}
		for f := 0; f < 8; f++ {
			if f > 0 {
				out = append(out, ' ')
			}
			out = append(out, byte(p.squares[r*8+f]))
		}
	}
	return string(out)
}
