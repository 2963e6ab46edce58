// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/rulesengine/pkg/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every parse failure returned by Decode, so
// callers can test for it with errors.Is regardless of the specific reason.
var ErrInvalidFEN = errors.New("invalid FEN")

// Decode parses a FEN record into a position. Only the piece placement and
// active color fields are required; the castling availability, en passant
// target, halfmove clock and fullmove number fields may be omitted from the
// end of the record, in which case they default to "KQkq", "-", "0" and "1"
// respectively.
//
// The halfmove clock and fullmove number are returned alongside the position
// for convenience, since they are exactly the two Position fields Encode
// needs back to round-trip; both are also available afterward through
// pos.HalfMoveClock and pos.FullMoveNumber.
func Decode(fen string) (*board.Position, int, int, error) {
	parts := strings.Fields(strings.TrimSpace(fen))
	if len(parts) < 2 {
		return nil, 0, 0, fmt.Errorf("%w: expected at least 2 fields, got %d: %q", ErrInvalidFEN, len(parts), fen)
	}
	for len(parts) < 6 {
		parts = append(parts, [...]string{"KQkq", "-", "0", "1"}[len(parts)-2])
	}

	squares, err := decodePlacement(parts[0])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v: %q", ErrInvalidFEN, err, fen)
	}

	side, ok := board.ParseColor(parts[1])
	if !ok {
		return nil, 0, 0, fmt.Errorf("%w: invalid active color %q: %q", ErrInvalidFEN, parts[1], fen)
	}

	castling, ok := board.ParseCastlingRights(parts[2])
	if !ok {
		return nil, 0, 0, fmt.Errorf("%w: invalid castling availability %q: %q", ErrInvalidFEN, parts[2], fen)
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: invalid en passant target %q: %q", ErrInvalidFEN, parts[3], fen)
		}
		ep = sq
	}

	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 {
		return nil, 0, 0, fmt.Errorf("%w: invalid halfmove clock %q: %q", ErrInvalidFEN, parts[4], fen)
	}

	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 0 {
		return nil, 0, 0, fmt.Errorf("%w: invalid fullmove number %q: %q", ErrInvalidFEN, parts[5], fen)
	}

	pos, err := board.NewPosition(squares, side, castling, ep, halfMove, fullMove)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v: %q", ErrInvalidFEN, err, fen)
	}
	return pos, halfMove, fullMove, nil
}

// decodePlacement parses field 1: piece placement, rank 8 down to rank 1,
// file a through file h within each rank, matching the Square numbering in
// package board exactly so the scan index doubles as the square index.
func decodePlacement(field string) ([64]board.Piece, error) {
	var squares [64]board.Piece
	for i := range squares {
		squares[i] = board.Empty
	}

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return squares, fmt.Errorf("expected 8 ranks, got %d", len(ranks))
	}

	for r, rank := range ranks {
		file := 0
		for _, ch := range []byte(rank) {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				pc, ok := board.ParsePiece(ch)
				if !ok {
					return squares, fmt.Errorf("invalid piece character %q", ch)
				}
				if file >= 8 {
					return squares, fmt.Errorf("rank %d overflows 8 files", 8-r)
				}
				squares[r*8+file] = pc
				file++
			}
		}
		if file != 8 {
			return squares, fmt.Errorf("rank %d has %d files, want 8", 8-r, file)
		}
	}
	return squares, nil
}

// Encode renders a position and its move counters as a FEN record.
func Encode(pos *board.Position, halfMove, fullMove int) string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		blanks := 0
		for f := 0; f < 8; f++ {
			pc := pos.At(board.Square(r*8 + f))
			if pc.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteByte(byte(pc))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
	}

	ep := "-"
	if pos.EnPassant() != board.NoSquare {
		ep = pos.EnPassant().String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), colorField(pos.SideToMove()), pos.Castling(), ep, halfMove, fullMove)
}

func colorField(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}
